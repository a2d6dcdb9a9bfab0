// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Contract struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractType     string                 `protobuf:"bytes,2,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	Provider         string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	StartDate        string                 `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`                   // YYYY-MM-DD
	EndDate          string                 `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`                         // YYYY-MM-DD, empty when open-ended
	AnniversaryDate  string                 `protobuf:"bytes,6,opt,name=anniversary_date,json=anniversaryDate,proto3" json:"anniversary_date,omitempty"` // YYYY-MM-DD
	ContractData     string                 `protobuf:"bytes,7,opt,name=contract_data,json=contractData,proto3" json:"contract_data,omitempty"`          // JSON object
	OriginalFilename string                 `protobuf:"bytes,8,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	Validated        bool                   `protobuf:"varint,9,opt,name=validated,proto3" json:"validated,omitempty"`
	IsSimulation     bool                   `protobuf:"varint,10,opt,name=is_simulation,json=isSimulation,proto3" json:"is_simulation,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`       // RFC3339
	UpdatedAt        string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`       // RFC3339
	CostDisplay      string                 `protobuf:"bytes,13,opt,name=cost_display,json=costDisplay,proto3" json:"cost_display,omitempty"` // resolved cost, e.g. "45.00 €/mois" or "N/A"
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *Contract) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Contract) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Contract) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Contract) GetAnniversaryDate() string {
	if x != nil {
		return x.AnniversaryDate
	}
	return ""
}

func (x *Contract) GetContractData() string {
	if x != nil {
		return x.ContractData
	}
	return ""
}

func (x *Contract) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Contract) GetValidated() bool {
	if x != nil {
		return x.Validated
	}
	return false
}

func (x *Contract) GetIsSimulation() bool {
	if x != nil {
		return x.IsSimulation
	}
	return false
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Contract) GetCostDisplay() string {
	if x != nil {
		return x.CostDisplay
	}
	return ""
}

type Comparison struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractId         string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	ComparisonType     string                 `protobuf:"bytes,3,opt,name=comparison_type,json=comparisonType,proto3" json:"comparison_type,omitempty"` // market_analysis | competitor_quote
	CompetitorFilename string                 `protobuf:"bytes,4,opt,name=competitor_filename,json=competitorFilename,proto3" json:"competitor_filename,omitempty"`
	CompetitorData     string                 `protobuf:"bytes,5,opt,name=competitor_data,json=competitorData,proto3" json:"competitor_data,omitempty"`       // JSON object, empty for market analyses
	ComparisonResult   string                 `protobuf:"bytes,6,opt,name=comparison_result,json=comparisonResult,proto3" json:"comparison_result,omitempty"` // JSON object
	AnalysisSummary    string                 `protobuf:"bytes,7,opt,name=analysis_summary,json=analysisSummary,proto3" json:"analysis_summary,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Comparison) Reset() {
	*x = Comparison{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Comparison) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Comparison) ProtoMessage() {}

func (x *Comparison) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Comparison.ProtoReflect.Descriptor instead.
func (*Comparison) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *Comparison) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Comparison) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *Comparison) GetComparisonType() string {
	if x != nil {
		return x.ComparisonType
	}
	return ""
}

func (x *Comparison) GetCompetitorFilename() string {
	if x != nil {
		return x.CompetitorFilename
	}
	return ""
}

func (x *Comparison) GetCompetitorData() string {
	if x != nil {
		return x.CompetitorData
	}
	return ""
}

func (x *Comparison) GetComparisonResult() string {
	if x != nil {
		return x.ComparisonResult
	}
	return ""
}

func (x *Comparison) GetAnalysisSummary() string {
	if x != nil {
		return x.AnalysisSummary
	}
	return ""
}

func (x *Comparison) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PdfContent    []byte                 `protobuf:"bytes,1,opt,name=pdf_content,json=pdfContent,proto3" json:"pdf_content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContractType  string                 `protobuf:"bytes,3,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"` // storable type or "auto"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractContractRequest) Reset() {
	*x = ExtractContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractRequest) ProtoMessage() {}

func (x *ExtractContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractRequest.ProtoReflect.Descriptor instead.
func (*ExtractContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractContractRequest) GetPdfContent() []byte {
	if x != nil {
		return x.PdfContent
	}
	return nil
}

func (x *ExtractContractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractContractRequest) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

type ExtractContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExtractedData string                 `protobuf:"bytes,1,opt,name=extracted_data,json=extractedData,proto3" json:"extracted_data,omitempty"` // JSON object
	DocumentText  string                 `protobuf:"bytes,2,opt,name=document_text,json=documentText,proto3" json:"document_text,omitempty"`
	ResolvedType  string                 `protobuf:"bytes,3,opt,name=resolved_type,json=resolvedType,proto3" json:"resolved_type,omitempty"`    // "electricite_gaz" means two contracts to confirm
	PrefilledData string                 `protobuf:"bytes,4,opt,name=prefilled_data,json=prefilledData,proto3" json:"prefilled_data,omitempty"` // JSON object, flat record the builder derived
	// Set instead of prefilled_data when resolved_type is "electricite_gaz":
	// one derived record per energy leg.
	PrefilledElectricity string `protobuf:"bytes,5,opt,name=prefilled_electricity,json=prefilledElectricity,proto3" json:"prefilled_electricity,omitempty"` // JSON object
	PrefilledGas         string `protobuf:"bytes,6,opt,name=prefilled_gas,json=prefilledGas,proto3" json:"prefilled_gas,omitempty"`                         // JSON object
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ExtractContractResponse) Reset() {
	*x = ExtractContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractResponse) ProtoMessage() {}

func (x *ExtractContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractResponse.ProtoReflect.Descriptor instead.
func (*ExtractContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractContractResponse) GetExtractedData() string {
	if x != nil {
		return x.ExtractedData
	}
	return ""
}

func (x *ExtractContractResponse) GetDocumentText() string {
	if x != nil {
		return x.DocumentText
	}
	return ""
}

func (x *ExtractContractResponse) GetResolvedType() string {
	if x != nil {
		return x.ResolvedType
	}
	return ""
}

func (x *ExtractContractResponse) GetPrefilledData() string {
	if x != nil {
		return x.PrefilledData
	}
	return ""
}

func (x *ExtractContractResponse) GetPrefilledElectricity() string {
	if x != nil {
		return x.PrefilledElectricity
	}
	return ""
}

func (x *ExtractContractResponse) GetPrefilledGas() string {
	if x != nil {
		return x.PrefilledGas
	}
	return ""
}

type CreateContractRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ContractType    string                 `protobuf:"bytes,1,opt,name=contract_type,json=contractType,proto3" json:"contract_type,omitempty"`
	Provider        string                 `protobuf:"bytes,2,opt,name=provider,proto3" json:"provider,omitempty"`
	StartDate       string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`                   // YYYY-MM-DD
	EndDate         string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`                         // YYYY-MM-DD, optional
	AnniversaryDate string                 `protobuf:"bytes,5,opt,name=anniversary_date,json=anniversaryDate,proto3" json:"anniversary_date,omitempty"` // YYYY-MM-DD
	ContractData    string                 `protobuf:"bytes,6,opt,name=contract_data,json=contractData,proto3" json:"contract_data,omitempty"`          // JSON object
	PdfContent      []byte                 `protobuf:"bytes,7,opt,name=pdf_content,json=pdfContent,proto3" json:"pdf_content,omitempty"`
	Filename        string                 `protobuf:"bytes,8,opt,name=filename,proto3" json:"filename,omitempty"`
	IsSimulation    bool                   `protobuf:"varint,9,opt,name=is_simulation,json=isSimulation,proto3" json:"is_simulation,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateContractRequest) Reset() {
	*x = CreateContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContractRequest) ProtoMessage() {}

func (x *CreateContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContractRequest.ProtoReflect.Descriptor instead.
func (*CreateContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *CreateContractRequest) GetContractType() string {
	if x != nil {
		return x.ContractType
	}
	return ""
}

func (x *CreateContractRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *CreateContractRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *CreateContractRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *CreateContractRequest) GetAnniversaryDate() string {
	if x != nil {
		return x.AnniversaryDate
	}
	return ""
}

func (x *CreateContractRequest) GetContractData() string {
	if x != nil {
		return x.ContractData
	}
	return ""
}

func (x *CreateContractRequest) GetPdfContent() []byte {
	if x != nil {
		return x.PdfContent
	}
	return nil
}

func (x *CreateContractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateContractRequest) GetIsSimulation() bool {
	if x != nil {
		return x.IsSimulation
	}
	return false
}

type CreateContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateContractResponse) Reset() {
	*x = CreateContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateContractResponse) ProtoMessage() {}

func (x *CreateContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateContractResponse.ProtoReflect.Descriptor instead.
func (*CreateContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *CreateContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type EnergyLeg struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Provider        string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	StartDate       string                 `protobuf:"bytes,2,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`                   // YYYY-MM-DD
	AnniversaryDate string                 `protobuf:"bytes,3,opt,name=anniversary_date,json=anniversaryDate,proto3" json:"anniversary_date,omitempty"` // YYYY-MM-DD
	ContractData    string                 `protobuf:"bytes,4,opt,name=contract_data,json=contractData,proto3" json:"contract_data,omitempty"`          // JSON object
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *EnergyLeg) Reset() {
	*x = EnergyLeg{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnergyLeg) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnergyLeg) ProtoMessage() {}

func (x *EnergyLeg) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnergyLeg.ProtoReflect.Descriptor instead.
func (*EnergyLeg) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *EnergyLeg) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *EnergyLeg) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *EnergyLeg) GetAnniversaryDate() string {
	if x != nil {
		return x.AnniversaryDate
	}
	return ""
}

func (x *EnergyLeg) GetContractData() string {
	if x != nil {
		return x.ContractData
	}
	return ""
}

type CreateDualEnergyContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Electricity   *EnergyLeg             `protobuf:"bytes,1,opt,name=electricity,proto3" json:"electricity,omitempty"`
	Gas           *EnergyLeg             `protobuf:"bytes,2,opt,name=gas,proto3" json:"gas,omitempty"`
	PdfContent    []byte                 `protobuf:"bytes,3,opt,name=pdf_content,json=pdfContent,proto3" json:"pdf_content,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDualEnergyContractsRequest) Reset() {
	*x = CreateDualEnergyContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDualEnergyContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDualEnergyContractsRequest) ProtoMessage() {}

func (x *CreateDualEnergyContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDualEnergyContractsRequest.ProtoReflect.Descriptor instead.
func (*CreateDualEnergyContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *CreateDualEnergyContractsRequest) GetElectricity() *EnergyLeg {
	if x != nil {
		return x.Electricity
	}
	return nil
}

func (x *CreateDualEnergyContractsRequest) GetGas() *EnergyLeg {
	if x != nil {
		return x.Gas
	}
	return nil
}

func (x *CreateDualEnergyContractsRequest) GetPdfContent() []byte {
	if x != nil {
		return x.PdfContent
	}
	return nil
}

func (x *CreateDualEnergyContractsRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreateDualEnergyContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Electricity   *Contract              `protobuf:"bytes,1,opt,name=electricity,proto3" json:"electricity,omitempty"`
	Gas           *Contract              `protobuf:"bytes,2,opt,name=gas,proto3" json:"gas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDualEnergyContractsResponse) Reset() {
	*x = CreateDualEnergyContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDualEnergyContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDualEnergyContractsResponse) ProtoMessage() {}

func (x *CreateDualEnergyContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDualEnergyContractsResponse.ProtoReflect.Descriptor instead.
func (*CreateDualEnergyContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *CreateDualEnergyContractsResponse) GetElectricity() *Contract {
	if x != nil {
		return x.Electricity
	}
	return nil
}

func (x *CreateDualEnergyContractsResponse) GetGas() *Contract {
	if x != nil {
		return x.Gas
	}
	return nil
}

type ListContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *GetContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type ListContractsNeedingAttentionRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Days ahead to look; server default applies when 0.
	ThresholdDays int32 `protobuf:"varint,1,opt,name=threshold_days,json=thresholdDays,proto3" json:"threshold_days,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsNeedingAttentionRequest) Reset() {
	*x = ListContractsNeedingAttentionRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsNeedingAttentionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsNeedingAttentionRequest) ProtoMessage() {}

func (x *ListContractsNeedingAttentionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsNeedingAttentionRequest.ProtoReflect.Descriptor instead.
func (*ListContractsNeedingAttentionRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{13}
}

func (x *ListContractsNeedingAttentionRequest) GetThresholdDays() int32 {
	if x != nil {
		return x.ThresholdDays
	}
	return 0
}

type UpdateContractRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Provider        string                 `protobuf:"bytes,2,opt,name=provider,proto3" json:"provider,omitempty"`                                      // applied when non-empty
	StartDate       string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`                   // applied when non-empty, YYYY-MM-DD
	EndDate         string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`                         // applied when non-empty
	AnniversaryDate string                 `protobuf:"bytes,5,opt,name=anniversary_date,json=anniversaryDate,proto3" json:"anniversary_date,omitempty"` // applied when non-empty
	ContractData    string                 `protobuf:"bytes,6,opt,name=contract_data,json=contractData,proto3" json:"contract_data,omitempty"`          // applied when non-empty, JSON object
	Validated       *bool                  `protobuf:"varint,7,opt,name=validated,proto3,oneof" json:"validated,omitempty"`
	IsSimulation    *bool                  `protobuf:"varint,8,opt,name=is_simulation,json=isSimulation,proto3,oneof" json:"is_simulation,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateContractRequest) Reset() {
	*x = UpdateContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContractRequest) ProtoMessage() {}

func (x *UpdateContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContractRequest.ProtoReflect.Descriptor instead.
func (*UpdateContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{14}
}

func (x *UpdateContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateContractRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *UpdateContractRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *UpdateContractRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *UpdateContractRequest) GetAnniversaryDate() string {
	if x != nil {
		return x.AnniversaryDate
	}
	return ""
}

func (x *UpdateContractRequest) GetContractData() string {
	if x != nil {
		return x.ContractData
	}
	return ""
}

func (x *UpdateContractRequest) GetValidated() bool {
	if x != nil && x.Validated != nil {
		return *x.Validated
	}
	return false
}

func (x *UpdateContractRequest) GetIsSimulation() bool {
	if x != nil && x.IsSimulation != nil {
		return *x.IsSimulation
	}
	return false
}

type UpdateContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contract      *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateContractResponse) Reset() {
	*x = UpdateContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateContractResponse) ProtoMessage() {}

func (x *UpdateContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateContractResponse.ProtoReflect.Descriptor instead.
func (*UpdateContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{15}
}

func (x *UpdateContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type DeleteContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractRequest) Reset() {
	*x = DeleteContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractRequest) ProtoMessage() {}

func (x *DeleteContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractRequest.ProtoReflect.Descriptor instead.
func (*DeleteContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteContractRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContractResponse) Reset() {
	*x = DeleteContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContractResponse) ProtoMessage() {}

func (x *DeleteContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContractResponse.ProtoReflect.Descriptor instead.
func (*DeleteContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{17}
}

type CompareWithMarketRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompareWithMarketRequest) Reset() {
	*x = CompareWithMarketRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompareWithMarketRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareWithMarketRequest) ProtoMessage() {}

func (x *CompareWithMarketRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareWithMarketRequest.ProtoReflect.Descriptor instead.
func (*CompareWithMarketRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{18}
}

func (x *CompareWithMarketRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type CompareWithCompetitorRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ContractId         string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	CompetitorPdf      []byte                 `protobuf:"bytes,2,opt,name=competitor_pdf,json=competitorPdf,proto3" json:"competitor_pdf,omitempty"`
	CompetitorFilename string                 `protobuf:"bytes,3,opt,name=competitor_filename,json=competitorFilename,proto3" json:"competitor_filename,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CompareWithCompetitorRequest) Reset() {
	*x = CompareWithCompetitorRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompareWithCompetitorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareWithCompetitorRequest) ProtoMessage() {}

func (x *CompareWithCompetitorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareWithCompetitorRequest.ProtoReflect.Descriptor instead.
func (*CompareWithCompetitorRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{19}
}

func (x *CompareWithCompetitorRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *CompareWithCompetitorRequest) GetCompetitorPdf() []byte {
	if x != nil {
		return x.CompetitorPdf
	}
	return nil
}

func (x *CompareWithCompetitorRequest) GetCompetitorFilename() string {
	if x != nil {
		return x.CompetitorFilename
	}
	return ""
}

type ComparisonResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Comparison *Comparison            `protobuf:"bytes,1,opt,name=comparison,proto3" json:"comparison,omitempty"`
	// Potential annual saving resolved from the result, 0 when absent.
	PotentialAnnualSavings float64 `protobuf:"fixed64,2,opt,name=potential_annual_savings,json=potentialAnnualSavings,proto3" json:"potential_annual_savings,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *ComparisonResponse) Reset() {
	*x = ComparisonResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComparisonResponse) ProtoMessage() {}

func (x *ComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComparisonResponse.ProtoReflect.Descriptor instead.
func (*ComparisonResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{20}
}

func (x *ComparisonResponse) GetComparison() *Comparison {
	if x != nil {
		return x.Comparison
	}
	return nil
}

func (x *ComparisonResponse) GetPotentialAnnualSavings() float64 {
	if x != nil {
		return x.PotentialAnnualSavings
	}
	return 0
}

type ListComparisonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListComparisonsRequest) Reset() {
	*x = ListComparisonsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListComparisonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListComparisonsRequest) ProtoMessage() {}

func (x *ListComparisonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListComparisonsRequest.ProtoReflect.Descriptor instead.
func (*ListComparisonsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{21}
}

func (x *ListComparisonsRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type ListAllComparisonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAllComparisonsRequest) Reset() {
	*x = ListAllComparisonsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAllComparisonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAllComparisonsRequest) ProtoMessage() {}

func (x *ListAllComparisonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAllComparisonsRequest.ProtoReflect.Descriptor instead.
func (*ListAllComparisonsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{22}
}

type ListComparisonsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Comparisons   []*Comparison          `protobuf:"bytes,1,rep,name=comparisons,proto3" json:"comparisons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListComparisonsResponse) Reset() {
	*x = ListComparisonsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListComparisonsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListComparisonsResponse) ProtoMessage() {}

func (x *ListComparisonsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListComparisonsResponse.ProtoReflect.Descriptor instead.
func (*ListComparisonsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{23}
}

func (x *ListComparisonsResponse) GetComparisons() []*Comparison {
	if x != nil {
		return x.Comparisons
	}
	return nil
}

type ExportContractsXlsxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsXlsxRequest) Reset() {
	*x = ExportContractsXlsxRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsXlsxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsXlsxRequest) ProtoMessage() {}

func (x *ExportContractsXlsxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsXlsxRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsXlsxRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{24}
}

type ExportContractsXlsxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	XlsxContent   []byte                 `protobuf:"bytes,1,opt,name=xlsx_content,json=xlsxContent,proto3" json:"xlsx_content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsXlsxResponse) Reset() {
	*x = ExportContractsXlsxResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsXlsxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsXlsxResponse) ProtoMessage() {}

func (x *ExportContractsXlsxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsXlsxResponse.ProtoReflect.Descriptor instead.
func (*ExportContractsXlsxResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{25}
}

func (x *ExportContractsXlsxResponse) GetXlsxContent() []byte {
	if x != nil {
		return x.XlsxContent
	}
	return nil
}

func (x *ExportContractsXlsxResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"\xb6\x03\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rcontract_type\x18\x02 \x01(\tR\fcontractType\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"start_date\x18\x04 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x05 \x01(\tR\aendDate\x12)\n" +
	"\x10anniversary_date\x18\x06 \x01(\tR\x0fanniversaryDate\x12#\n" +
	"\rcontract_data\x18\a \x01(\tR\fcontractData\x12+\n" +
	"\x11original_filename\x18\b \x01(\tR\x10originalFilename\x12\x1c\n" +
	"\tvalidated\x18\t \x01(\bR\tvalidated\x12#\n" +
	"\ris_simulation\x18\n" +
	" \x01(\bR\fisSimulation\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\x12!\n" +
	"\fcost_display\x18\r \x01(\tR\vcostDisplay\"\xb7\x02\n" +
	"\n" +
	"Comparison\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12'\n" +
	"\x0fcomparison_type\x18\x03 \x01(\tR\x0ecomparisonType\x12/\n" +
	"\x13competitor_filename\x18\x04 \x01(\tR\x12competitorFilename\x12'\n" +
	"\x0fcompetitor_data\x18\x05 \x01(\tR\x0ecompetitorData\x12+\n" +
	"\x11comparison_result\x18\x06 \x01(\tR\x10comparisonResult\x12)\n" +
	"\x10analysis_summary\x18\a \x01(\tR\x0fanalysisSummary\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"z\n" +
	"\x16ExtractContractRequest\x12\x1f\n" +
	"\vpdf_content\x18\x01 \x01(\fR\n" +
	"pdfContent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rcontract_type\x18\x03 \x01(\tR\fcontractType\"\x8b\x02\n" +
	"\x17ExtractContractResponse\x12%\n" +
	"\x0eextracted_data\x18\x01 \x01(\tR\rextractedData\x12#\n" +
	"\rdocument_text\x18\x02 \x01(\tR\fdocumentText\x12#\n" +
	"\rresolved_type\x18\x03 \x01(\tR\fresolvedType\x12%\n" +
	"\x0eprefilled_data\x18\x04 \x01(\tR\rprefilledData\x123\n" +
	"\x15prefilled_electricity\x18\x05 \x01(\tR\x14prefilledElectricity\x12#\n" +
	"\rprefilled_gas\x18\x06 \x01(\tR\fprefilledGas\"\xc4\x02\n" +
	"\x15CreateContractRequest\x12#\n" +
	"\rcontract_type\x18\x01 \x01(\tR\fcontractType\x12\x1a\n" +
	"\bprovider\x18\x02 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x12)\n" +
	"\x10anniversary_date\x18\x05 \x01(\tR\x0fanniversaryDate\x12#\n" +
	"\rcontract_data\x18\x06 \x01(\tR\fcontractData\x12\x1f\n" +
	"\vpdf_content\x18\a \x01(\fR\n" +
	"pdfContent\x12\x1a\n" +
	"\bfilename\x18\b \x01(\tR\bfilename\x12#\n" +
	"\ris_simulation\x18\t \x01(\bR\fisSimulation\"L\n" +
	"\x16CreateContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\"\x96\x01\n" +
	"\tEnergyLeg\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"start_date\x18\x02 \x01(\tR\tstartDate\x12)\n" +
	"\x10anniversary_date\x18\x03 \x01(\tR\x0fanniversaryDate\x12#\n" +
	"\rcontract_data\x18\x04 \x01(\tR\fcontractData\"\xc5\x01\n" +
	" CreateDualEnergyContractsRequest\x129\n" +
	"\velectricity\x18\x01 \x01(\v2\x17.contracts.v1.EnergyLegR\velectricity\x12)\n" +
	"\x03gas\x18\x02 \x01(\v2\x17.contracts.v1.EnergyLegR\x03gas\x12\x1f\n" +
	"\vpdf_content\x18\x03 \x01(\fR\n" +
	"pdfContent\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\"\x87\x01\n" +
	"!CreateDualEnergyContractsResponse\x128\n" +
	"\velectricity\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\velectricity\x12(\n" +
	"\x03gas\x18\x02 \x01(\v2\x16.contracts.v1.ContractR\x03gas\"\x16\n" +
	"\x14ListContractsRequest\"M\n" +
	"\x15ListContractsResponse\x124\n" +
	"\tcontracts\x18\x01 \x03(\v2\x16.contracts.v1.ContractR\tcontracts\"$\n" +
	"\x12GetContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"I\n" +
	"\x13GetContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\"M\n" +
	"$ListContractsNeedingAttentionRequest\x12%\n" +
	"\x0ethreshold_days\x18\x01 \x01(\x05R\rthresholdDays\"\xba\x02\n" +
	"\x15UpdateContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bprovider\x18\x02 \x01(\tR\bprovider\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x12)\n" +
	"\x10anniversary_date\x18\x05 \x01(\tR\x0fanniversaryDate\x12#\n" +
	"\rcontract_data\x18\x06 \x01(\tR\fcontractData\x12!\n" +
	"\tvalidated\x18\a \x01(\bH\x00R\tvalidated\x88\x01\x01\x12(\n" +
	"\ris_simulation\x18\b \x01(\bH\x01R\fisSimulation\x88\x01\x01B\f\n" +
	"\n" +
	"_validatedB\x10\n" +
	"\x0e_is_simulation\"L\n" +
	"\x16UpdateContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\"'\n" +
	"\x15DeleteContractRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteContractResponse\";\n" +
	"\x18CompareWithMarketRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"\x97\x01\n" +
	"\x1cCompareWithCompetitorRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\x12%\n" +
	"\x0ecompetitor_pdf\x18\x02 \x01(\fR\rcompetitorPdf\x12/\n" +
	"\x13competitor_filename\x18\x03 \x01(\tR\x12competitorFilename\"\x88\x01\n" +
	"\x12ComparisonResponse\x128\n" +
	"\n" +
	"comparison\x18\x01 \x01(\v2\x18.contracts.v1.ComparisonR\n" +
	"comparison\x128\n" +
	"\x18potential_annual_savings\x18\x02 \x01(\x01R\x16potentialAnnualSavings\"9\n" +
	"\x16ListComparisonsRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"\x1b\n" +
	"\x19ListAllComparisonsRequest\"U\n" +
	"\x17ListComparisonsResponse\x12:\n" +
	"\vcomparisons\x18\x01 \x03(\v2\x18.contracts.v1.ComparisonR\vcomparisons\"\x1c\n" +
	"\x1aExportContractsXlsxRequest\"\\\n" +
	"\x1bExportContractsXlsxResponse\x12!\n" +
	"\fxlsx_content\x18\x01 \x01(\fR\vxlsxContent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xa7\n" +
	"\n" +
	"\x10ContractsService\x12^\n" +
	"\x0fExtractContract\x12$.contracts.v1.ExtractContractRequest\x1a%.contracts.v1.ExtractContractResponse\x12[\n" +
	"\x0eCreateContract\x12#.contracts.v1.CreateContractRequest\x1a$.contracts.v1.CreateContractResponse\x12|\n" +
	"\x19CreateDualEnergyContracts\x12..contracts.v1.CreateDualEnergyContractsRequest\x1a/.contracts.v1.CreateDualEnergyContractsResponse\x12X\n" +
	"\rListContracts\x12\".contracts.v1.ListContractsRequest\x1a#.contracts.v1.ListContractsResponse\x12R\n" +
	"\vGetContract\x12 .contracts.v1.GetContractRequest\x1a!.contracts.v1.GetContractResponse\x12x\n" +
	"\x1dListContractsNeedingAttention\x122.contracts.v1.ListContractsNeedingAttentionRequest\x1a#.contracts.v1.ListContractsResponse\x12[\n" +
	"\x0eUpdateContract\x12#.contracts.v1.UpdateContractRequest\x1a$.contracts.v1.UpdateContractResponse\x12[\n" +
	"\x0eDeleteContract\x12#.contracts.v1.DeleteContractRequest\x1a$.contracts.v1.DeleteContractResponse\x12]\n" +
	"\x11CompareWithMarket\x12&.contracts.v1.CompareWithMarketRequest\x1a .contracts.v1.ComparisonResponse\x12e\n" +
	"\x15CompareWithCompetitor\x12*.contracts.v1.CompareWithCompetitorRequest\x1a .contracts.v1.ComparisonResponse\x12^\n" +
	"\x0fListComparisons\x12$.contracts.v1.ListComparisonsRequest\x1a%.contracts.v1.ListComparisonsResponse\x12d\n" +
	"\x12ListAllComparisons\x12'.contracts.v1.ListAllComparisonsRequest\x1a%.contracts.v1.ListComparisonsResponse\x12j\n" +
	"\x13ExportContractsXlsx\x12(.contracts.v1.ExportContractsXlsxRequest\x1a).contracts.v1.ExportContractsXlsxResponseBBZ@github.com/aperrin/gardetonor/gen/proto/contracts/v1;contractspbb\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 26)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*Contract)(nil),                             // 0: contracts.v1.Contract
	(*Comparison)(nil),                           // 1: contracts.v1.Comparison
	(*ExtractContractRequest)(nil),               // 2: contracts.v1.ExtractContractRequest
	(*ExtractContractResponse)(nil),              // 3: contracts.v1.ExtractContractResponse
	(*CreateContractRequest)(nil),                // 4: contracts.v1.CreateContractRequest
	(*CreateContractResponse)(nil),               // 5: contracts.v1.CreateContractResponse
	(*EnergyLeg)(nil),                            // 6: contracts.v1.EnergyLeg
	(*CreateDualEnergyContractsRequest)(nil),     // 7: contracts.v1.CreateDualEnergyContractsRequest
	(*CreateDualEnergyContractsResponse)(nil),    // 8: contracts.v1.CreateDualEnergyContractsResponse
	(*ListContractsRequest)(nil),                 // 9: contracts.v1.ListContractsRequest
	(*ListContractsResponse)(nil),                // 10: contracts.v1.ListContractsResponse
	(*GetContractRequest)(nil),                   // 11: contracts.v1.GetContractRequest
	(*GetContractResponse)(nil),                  // 12: contracts.v1.GetContractResponse
	(*ListContractsNeedingAttentionRequest)(nil), // 13: contracts.v1.ListContractsNeedingAttentionRequest
	(*UpdateContractRequest)(nil),                // 14: contracts.v1.UpdateContractRequest
	(*UpdateContractResponse)(nil),               // 15: contracts.v1.UpdateContractResponse
	(*DeleteContractRequest)(nil),                // 16: contracts.v1.DeleteContractRequest
	(*DeleteContractResponse)(nil),               // 17: contracts.v1.DeleteContractResponse
	(*CompareWithMarketRequest)(nil),             // 18: contracts.v1.CompareWithMarketRequest
	(*CompareWithCompetitorRequest)(nil),         // 19: contracts.v1.CompareWithCompetitorRequest
	(*ComparisonResponse)(nil),                   // 20: contracts.v1.ComparisonResponse
	(*ListComparisonsRequest)(nil),               // 21: contracts.v1.ListComparisonsRequest
	(*ListAllComparisonsRequest)(nil),            // 22: contracts.v1.ListAllComparisonsRequest
	(*ListComparisonsResponse)(nil),              // 23: contracts.v1.ListComparisonsResponse
	(*ExportContractsXlsxRequest)(nil),           // 24: contracts.v1.ExportContractsXlsxRequest
	(*ExportContractsXlsxResponse)(nil),          // 25: contracts.v1.ExportContractsXlsxResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	0,  // 0: contracts.v1.CreateContractResponse.contract:type_name -> contracts.v1.Contract
	6,  // 1: contracts.v1.CreateDualEnergyContractsRequest.electricity:type_name -> contracts.v1.EnergyLeg
	6,  // 2: contracts.v1.CreateDualEnergyContractsRequest.gas:type_name -> contracts.v1.EnergyLeg
	0,  // 3: contracts.v1.CreateDualEnergyContractsResponse.electricity:type_name -> contracts.v1.Contract
	0,  // 4: contracts.v1.CreateDualEnergyContractsResponse.gas:type_name -> contracts.v1.Contract
	0,  // 5: contracts.v1.ListContractsResponse.contracts:type_name -> contracts.v1.Contract
	0,  // 6: contracts.v1.GetContractResponse.contract:type_name -> contracts.v1.Contract
	0,  // 7: contracts.v1.UpdateContractResponse.contract:type_name -> contracts.v1.Contract
	1,  // 8: contracts.v1.ComparisonResponse.comparison:type_name -> contracts.v1.Comparison
	1,  // 9: contracts.v1.ListComparisonsResponse.comparisons:type_name -> contracts.v1.Comparison
	2,  // 10: contracts.v1.ContractsService.ExtractContract:input_type -> contracts.v1.ExtractContractRequest
	4,  // 11: contracts.v1.ContractsService.CreateContract:input_type -> contracts.v1.CreateContractRequest
	7,  // 12: contracts.v1.ContractsService.CreateDualEnergyContracts:input_type -> contracts.v1.CreateDualEnergyContractsRequest
	9,  // 13: contracts.v1.ContractsService.ListContracts:input_type -> contracts.v1.ListContractsRequest
	11, // 14: contracts.v1.ContractsService.GetContract:input_type -> contracts.v1.GetContractRequest
	13, // 15: contracts.v1.ContractsService.ListContractsNeedingAttention:input_type -> contracts.v1.ListContractsNeedingAttentionRequest
	14, // 16: contracts.v1.ContractsService.UpdateContract:input_type -> contracts.v1.UpdateContractRequest
	16, // 17: contracts.v1.ContractsService.DeleteContract:input_type -> contracts.v1.DeleteContractRequest
	18, // 18: contracts.v1.ContractsService.CompareWithMarket:input_type -> contracts.v1.CompareWithMarketRequest
	19, // 19: contracts.v1.ContractsService.CompareWithCompetitor:input_type -> contracts.v1.CompareWithCompetitorRequest
	21, // 20: contracts.v1.ContractsService.ListComparisons:input_type -> contracts.v1.ListComparisonsRequest
	22, // 21: contracts.v1.ContractsService.ListAllComparisons:input_type -> contracts.v1.ListAllComparisonsRequest
	24, // 22: contracts.v1.ContractsService.ExportContractsXlsx:input_type -> contracts.v1.ExportContractsXlsxRequest
	3,  // 23: contracts.v1.ContractsService.ExtractContract:output_type -> contracts.v1.ExtractContractResponse
	5,  // 24: contracts.v1.ContractsService.CreateContract:output_type -> contracts.v1.CreateContractResponse
	8,  // 25: contracts.v1.ContractsService.CreateDualEnergyContracts:output_type -> contracts.v1.CreateDualEnergyContractsResponse
	10, // 26: contracts.v1.ContractsService.ListContracts:output_type -> contracts.v1.ListContractsResponse
	12, // 27: contracts.v1.ContractsService.GetContract:output_type -> contracts.v1.GetContractResponse
	10, // 28: contracts.v1.ContractsService.ListContractsNeedingAttention:output_type -> contracts.v1.ListContractsResponse
	15, // 29: contracts.v1.ContractsService.UpdateContract:output_type -> contracts.v1.UpdateContractResponse
	17, // 30: contracts.v1.ContractsService.DeleteContract:output_type -> contracts.v1.DeleteContractResponse
	20, // 31: contracts.v1.ContractsService.CompareWithMarket:output_type -> contracts.v1.ComparisonResponse
	20, // 32: contracts.v1.ContractsService.CompareWithCompetitor:output_type -> contracts.v1.ComparisonResponse
	23, // 33: contracts.v1.ContractsService.ListComparisons:output_type -> contracts.v1.ListComparisonsResponse
	23, // 34: contracts.v1.ContractsService.ListAllComparisons:output_type -> contracts.v1.ListComparisonsResponse
	25, // 35: contracts.v1.ContractsService.ExportContractsXlsx:output_type -> contracts.v1.ExportContractsXlsxResponse
	23, // [23:36] is the sub-list for method output_type
	10, // [10:23] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	file_contracts_v1_contracts_proto_msgTypes[14].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   26,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
