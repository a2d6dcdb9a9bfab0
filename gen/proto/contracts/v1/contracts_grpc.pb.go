// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: contracts/v1/contracts.proto

package contractspb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ContractsService_ExtractContract_FullMethodName               = "/contracts.v1.ContractsService/ExtractContract"
	ContractsService_CreateContract_FullMethodName                = "/contracts.v1.ContractsService/CreateContract"
	ContractsService_CreateDualEnergyContracts_FullMethodName     = "/contracts.v1.ContractsService/CreateDualEnergyContracts"
	ContractsService_ListContracts_FullMethodName                 = "/contracts.v1.ContractsService/ListContracts"
	ContractsService_GetContract_FullMethodName                   = "/contracts.v1.ContractsService/GetContract"
	ContractsService_ListContractsNeedingAttention_FullMethodName = "/contracts.v1.ContractsService/ListContractsNeedingAttention"
	ContractsService_UpdateContract_FullMethodName                = "/contracts.v1.ContractsService/UpdateContract"
	ContractsService_DeleteContract_FullMethodName                = "/contracts.v1.ContractsService/DeleteContract"
	ContractsService_CompareWithMarket_FullMethodName             = "/contracts.v1.ContractsService/CompareWithMarket"
	ContractsService_CompareWithCompetitor_FullMethodName         = "/contracts.v1.ContractsService/CompareWithCompetitor"
	ContractsService_ListComparisons_FullMethodName               = "/contracts.v1.ContractsService/ListComparisons"
	ContractsService_ListAllComparisons_FullMethodName            = "/contracts.v1.ContractsService/ListAllComparisons"
	ContractsService_ExportContractsXlsx_FullMethodName           = "/contracts.v1.ContractsService/ExportContractsXlsx"
)

// ContractsServiceClient is the client API for ContractsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ContractsService exposes the contract tracker to clients. Structured
// contract data crosses the wire as serialized JSON strings: the shape
// varies per contract type and schema generation, so a fixed message
// would lie.
type ContractsServiceClient interface {
	ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error)
	CreateContract(ctx context.Context, in *CreateContractRequest, opts ...grpc.CallOption) (*CreateContractResponse, error)
	CreateDualEnergyContracts(ctx context.Context, in *CreateDualEnergyContractsRequest, opts ...grpc.CallOption) (*CreateDualEnergyContractsResponse, error)
	ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
	GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error)
	ListContractsNeedingAttention(ctx context.Context, in *ListContractsNeedingAttentionRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
	UpdateContract(ctx context.Context, in *UpdateContractRequest, opts ...grpc.CallOption) (*UpdateContractResponse, error)
	DeleteContract(ctx context.Context, in *DeleteContractRequest, opts ...grpc.CallOption) (*DeleteContractResponse, error)
	CompareWithMarket(ctx context.Context, in *CompareWithMarketRequest, opts ...grpc.CallOption) (*ComparisonResponse, error)
	CompareWithCompetitor(ctx context.Context, in *CompareWithCompetitorRequest, opts ...grpc.CallOption) (*ComparisonResponse, error)
	ListComparisons(ctx context.Context, in *ListComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error)
	ListAllComparisons(ctx context.Context, in *ListAllComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error)
	ExportContractsXlsx(ctx context.Context, in *ExportContractsXlsxRequest, opts ...grpc.CallOption) (*ExportContractsXlsxResponse, error)
}

type contractsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContractsServiceClient(cc grpc.ClientConnInterface) ContractsServiceClient {
	return &contractsServiceClient{cc}
}

func (c *contractsServiceClient) ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_ExtractContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) CreateContract(ctx context.Context, in *CreateContractRequest, opts ...grpc.CallOption) (*CreateContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_CreateContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) CreateDualEnergyContracts(ctx context.Context, in *CreateDualEnergyContractsRequest, opts ...grpc.CallOption) (*CreateDualEnergyContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateDualEnergyContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_CreateDualEnergyContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListContractsNeedingAttention(ctx context.Context, in *ListContractsNeedingAttentionRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListContractsNeedingAttention_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) UpdateContract(ctx context.Context, in *UpdateContractRequest, opts ...grpc.CallOption) (*UpdateContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_UpdateContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) DeleteContract(ctx context.Context, in *DeleteContractRequest, opts ...grpc.CallOption) (*DeleteContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_DeleteContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) CompareWithMarket(ctx context.Context, in *CompareWithMarketRequest, opts ...grpc.CallOption) (*ComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComparisonResponse)
	err := c.cc.Invoke(ctx, ContractsService_CompareWithMarket_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) CompareWithCompetitor(ctx context.Context, in *CompareWithCompetitorRequest, opts ...grpc.CallOption) (*ComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComparisonResponse)
	err := c.cc.Invoke(ctx, ContractsService_CompareWithCompetitor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListComparisons(ctx context.Context, in *ListComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListComparisonsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListComparisons_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListAllComparisons(ctx context.Context, in *ListAllComparisonsRequest, opts ...grpc.CallOption) (*ListComparisonsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListComparisonsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListAllComparisons_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ExportContractsXlsx(ctx context.Context, in *ExportContractsXlsxRequest, opts ...grpc.CallOption) (*ExportContractsXlsxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportContractsXlsxResponse)
	err := c.cc.Invoke(ctx, ContractsService_ExportContractsXlsx_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContractsServiceServer is the server API for ContractsService service.
// All implementations must embed UnimplementedContractsServiceServer
// for forward compatibility.
//
// ContractsService exposes the contract tracker to clients. Structured
// contract data crosses the wire as serialized JSON strings: the shape
// varies per contract type and schema generation, so a fixed message
// would lie.
type ContractsServiceServer interface {
	ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error)
	CreateContract(context.Context, *CreateContractRequest) (*CreateContractResponse, error)
	CreateDualEnergyContracts(context.Context, *CreateDualEnergyContractsRequest) (*CreateDualEnergyContractsResponse, error)
	ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error)
	GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error)
	ListContractsNeedingAttention(context.Context, *ListContractsNeedingAttentionRequest) (*ListContractsResponse, error)
	UpdateContract(context.Context, *UpdateContractRequest) (*UpdateContractResponse, error)
	DeleteContract(context.Context, *DeleteContractRequest) (*DeleteContractResponse, error)
	CompareWithMarket(context.Context, *CompareWithMarketRequest) (*ComparisonResponse, error)
	CompareWithCompetitor(context.Context, *CompareWithCompetitorRequest) (*ComparisonResponse, error)
	ListComparisons(context.Context, *ListComparisonsRequest) (*ListComparisonsResponse, error)
	ListAllComparisons(context.Context, *ListAllComparisonsRequest) (*ListComparisonsResponse, error)
	ExportContractsXlsx(context.Context, *ExportContractsXlsxRequest) (*ExportContractsXlsxResponse, error)
	mustEmbedUnimplementedContractsServiceServer()
}

// UnimplementedContractsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContractsServiceServer struct{}

func (UnimplementedContractsServiceServer) ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractContract not implemented")
}
func (UnimplementedContractsServiceServer) CreateContract(context.Context, *CreateContractRequest) (*CreateContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateContract not implemented")
}
func (UnimplementedContractsServiceServer) CreateDualEnergyContracts(context.Context, *CreateDualEnergyContractsRequest) (*CreateDualEnergyContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateDualEnergyContracts not implemented")
}
func (UnimplementedContractsServiceServer) ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContracts not implemented")
}
func (UnimplementedContractsServiceServer) GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedContractsServiceServer) ListContractsNeedingAttention(context.Context, *ListContractsNeedingAttentionRequest) (*ListContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContractsNeedingAttention not implemented")
}
func (UnimplementedContractsServiceServer) UpdateContract(context.Context, *UpdateContractRequest) (*UpdateContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateContract not implemented")
}
func (UnimplementedContractsServiceServer) DeleteContract(context.Context, *DeleteContractRequest) (*DeleteContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteContract not implemented")
}
func (UnimplementedContractsServiceServer) CompareWithMarket(context.Context, *CompareWithMarketRequest) (*ComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareWithMarket not implemented")
}
func (UnimplementedContractsServiceServer) CompareWithCompetitor(context.Context, *CompareWithCompetitorRequest) (*ComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareWithCompetitor not implemented")
}
func (UnimplementedContractsServiceServer) ListComparisons(context.Context, *ListComparisonsRequest) (*ListComparisonsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListComparisons not implemented")
}
func (UnimplementedContractsServiceServer) ListAllComparisons(context.Context, *ListAllComparisonsRequest) (*ListComparisonsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAllComparisons not implemented")
}
func (UnimplementedContractsServiceServer) ExportContractsXlsx(context.Context, *ExportContractsXlsxRequest) (*ExportContractsXlsxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContractsXlsx not implemented")
}
func (UnimplementedContractsServiceServer) mustEmbedUnimplementedContractsServiceServer() {}
func (UnimplementedContractsServiceServer) testEmbeddedByValue()                          {}

// UnsafeContractsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContractsServiceServer will
// result in compilation errors.
type UnsafeContractsServiceServer interface {
	mustEmbedUnimplementedContractsServiceServer()
}

func RegisterContractsServiceServer(s grpc.ServiceRegistrar, srv ContractsServiceServer) {
	// If the following call pancis, it indicates UnimplementedContractsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContractsService_ServiceDesc, srv)
}

func _ContractsService_ExtractContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ExtractContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ExtractContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ExtractContract(ctx, req.(*ExtractContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_CreateContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).CreateContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_CreateContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).CreateContract(ctx, req.(*CreateContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_CreateDualEnergyContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDualEnergyContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).CreateDualEnergyContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_CreateDualEnergyContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).CreateDualEnergyContracts(ctx, req.(*CreateDualEnergyContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListContracts(ctx, req.(*ListContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).GetContract(ctx, req.(*GetContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListContractsNeedingAttention_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsNeedingAttentionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListContractsNeedingAttention(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListContractsNeedingAttention_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListContractsNeedingAttention(ctx, req.(*ListContractsNeedingAttentionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_UpdateContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).UpdateContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_UpdateContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).UpdateContract(ctx, req.(*UpdateContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_DeleteContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).DeleteContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_DeleteContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).DeleteContract(ctx, req.(*DeleteContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_CompareWithMarket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareWithMarketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).CompareWithMarket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_CompareWithMarket_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).CompareWithMarket(ctx, req.(*CompareWithMarketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_CompareWithCompetitor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareWithCompetitorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).CompareWithCompetitor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_CompareWithCompetitor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).CompareWithCompetitor(ctx, req.(*CompareWithCompetitorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListComparisons_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListComparisonsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListComparisons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListComparisons_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListComparisons(ctx, req.(*ListComparisonsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListAllComparisons_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAllComparisonsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListAllComparisons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListAllComparisons_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListAllComparisons(ctx, req.(*ListAllComparisonsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ExportContractsXlsx_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractsXlsxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ExportContractsXlsx(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ExportContractsXlsx_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ExportContractsXlsx(ctx, req.(*ExportContractsXlsxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContractsService_ServiceDesc is the grpc.ServiceDesc for ContractsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContractsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ContractsService",
	HandlerType: (*ContractsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractContract",
			Handler:    _ContractsService_ExtractContract_Handler,
		},
		{
			MethodName: "CreateContract",
			Handler:    _ContractsService_CreateContract_Handler,
		},
		{
			MethodName: "CreateDualEnergyContracts",
			Handler:    _ContractsService_CreateDualEnergyContracts_Handler,
		},
		{
			MethodName: "ListContracts",
			Handler:    _ContractsService_ListContracts_Handler,
		},
		{
			MethodName: "GetContract",
			Handler:    _ContractsService_GetContract_Handler,
		},
		{
			MethodName: "ListContractsNeedingAttention",
			Handler:    _ContractsService_ListContractsNeedingAttention_Handler,
		},
		{
			MethodName: "UpdateContract",
			Handler:    _ContractsService_UpdateContract_Handler,
		},
		{
			MethodName: "DeleteContract",
			Handler:    _ContractsService_DeleteContract_Handler,
		},
		{
			MethodName: "CompareWithMarket",
			Handler:    _ContractsService_CompareWithMarket_Handler,
		},
		{
			MethodName: "CompareWithCompetitor",
			Handler:    _ContractsService_CompareWithCompetitor_Handler,
		},
		{
			MethodName: "ListComparisons",
			Handler:    _ContractsService_ListComparisons_Handler,
		},
		{
			MethodName: "ListAllComparisons",
			Handler:    _ContractsService_ListAllComparisons_Handler,
		},
		{
			MethodName: "ExportContractsXlsx",
			Handler:    _ContractsService_ExportContractsXlsx_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}
