package server

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aperrin/gardetonor/constants"
	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/contracts"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/resolve"
	"github.com/aperrin/gardetonor/internal/utils"
)

func (s *ContractsServer) ExtractContract(ctx context.Context, req *contractspb.ExtractContractRequest) (*contractspb.ExtractContractResponse, error) {
	if len(req.GetPdfContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "pdf_content is required")
	}
	ctype := constants.ContractType(strings.TrimSpace(req.GetContractType()))
	if ctype == "" {
		ctype = constants.AutoDetect
	}
	if _, ok := constants.ParseContractType(string(ctype)); !ok && ctype != constants.AutoDetect {
		return nil, status.Errorf(codes.InvalidArgument, "unknown contract type %q", ctype)
	}

	prepared, err := s.contracts.ExtractAndPrepare(ctx, req.GetPdfContent(), req.GetFilename(), ctype)
	if err != nil {
		s.logger.Error("extract contract failed", "filename", req.GetFilename(), "error", err)
		return nil, common.StatusFromError(err)
	}

	resp := &contractspb.ExtractContractResponse{
		ExtractedData: utils.JSONString(prepared.Data),
		DocumentText:  prepared.DocumentText,
		ResolvedType:  string(prepared.ResolvedType),
	}
	// Combined documents carry one derived record per energy leg; a
	// single resolved type gets its flat record.
	if prepared.ResolvedType == constants.ElectriciteGaz {
		resp.PrefilledElectricity = utils.JSONString(
			contracts.BuildContractData(constants.Electricite, prepared.Data))
		resp.PrefilledGas = utils.JSONString(
			contracts.BuildContractData(constants.Gaz, prepared.Data))
	} else {
		resp.PrefilledData = utils.JSONString(
			contracts.BuildContractData(prepared.ResolvedType, prepared.Data))
	}
	return resp, nil
}

func (s *ContractsServer) CreateContract(ctx context.Context, req *contractspb.CreateContractRequest) (*contractspb.CreateContractResponse, error) {
	startDate, err := utils.ParseYMD(strings.TrimSpace(req.GetStartDate()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
	}
	anniversary, err := utils.ParseYMD(strings.TrimSpace(req.GetAnniversaryDate()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "anniversary_date must be YYYY-MM-DD")
	}

	var endDate *time.Time
	if ed := strings.TrimSpace(req.GetEndDate()); ed != "" {
		t, err := utils.ParseYMD(ed)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "end_date must be YYYY-MM-DD")
		}
		endDate = &t
	}

	data, err := decodeJSONObject(req.GetContractData())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "contract_data must be a JSON object")
	}

	c, err := s.contracts.Create(ctx, contracts.CreateRequest{
		ContractType:    constants.ContractType(req.GetContractType()),
		Provider:        strings.TrimSpace(req.GetProvider()),
		StartDate:       startDate,
		EndDate:         endDate,
		AnniversaryDate: anniversary,
		ContractData:    data,
		PDFContent:      req.GetPdfContent(),
		Filename:        req.GetFilename(),
		IsSimulation:    req.GetIsSimulation(),
	})
	if err != nil {
		s.logger.Error("create contract failed", "contract_type", req.GetContractType(), "error", err)
		return nil, common.StatusFromError(err)
	}

	return &contractspb.CreateContractResponse{Contract: toPBWithCost(c)}, nil
}

func (s *ContractsServer) CreateDualEnergyContracts(ctx context.Context, req *contractspb.CreateDualEnergyContractsRequest) (*contractspb.CreateDualEnergyContractsResponse, error) {
	elecLeg, err := toEnergyLeg(req.GetElectricity())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "electricity: %v", err)
	}
	gasLeg, err := toEnergyLeg(req.GetGas())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "gas: %v", err)
	}

	elec, gaz, err := s.contracts.CreateDualEnergy(ctx, contracts.DualEnergyRequest{
		Electricity: *elecLeg,
		Gas:         *gasLeg,
		PDFContent:  req.GetPdfContent(),
		Filename:    req.GetFilename(),
	})
	if err != nil {
		s.logger.Error("create dual energy contracts failed", "error", err)
		// The electricity leg may have been persisted; the client learns
		// about the partial state from the error detail.
		if elec != nil {
			return nil, status.Errorf(codes.Internal,
				"gas contract failed after electricity contract %s was created: %v", elec.ID, err)
		}
		return nil, common.StatusFromError(err)
	}

	return &contractspb.CreateDualEnergyContractsResponse{
		Electricity: toPBWithCost(elec),
		Gas:         toPBWithCost(gaz),
	}, nil
}

func (s *ContractsServer) ListContracts(ctx context.Context, _ *contractspb.ListContractsRequest) (*contractspb.ListContractsResponse, error) {
	recs, err := s.contracts.List(ctx)
	if err != nil {
		s.logger.Error("list contracts failed", "error", err)
		return nil, common.StatusFromError(err)
	}

	out := make([]*contractspb.Contract, 0, len(recs))
	for _, c := range recs {
		out = append(out, toPBWithCost(c))
	}
	return &contractspb.ListContractsResponse{Contracts: out}, nil
}

func (s *ContractsServer) GetContract(ctx context.Context, req *contractspb.GetContractRequest) (*contractspb.GetContractResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, common.StatusFromError(err)
	}
	return &contractspb.GetContractResponse{Contract: toPBWithCost(c)}, nil
}

func (s *ContractsServer) ListContractsNeedingAttention(ctx context.Context, req *contractspb.ListContractsNeedingAttentionRequest) (*contractspb.ListContractsResponse, error) {
	days := int(req.GetThresholdDays())
	if days <= 0 {
		days = s.attentionDays
	}

	recs, err := s.contracts.ListNeedingAttention(ctx, days)
	if err != nil {
		s.logger.Error("list contracts needing attention failed", "error", err)
		return nil, common.StatusFromError(err)
	}

	out := make([]*contractspb.Contract, 0, len(recs))
	for _, c := range recs {
		out = append(out, toPBWithCost(c))
	}
	return &contractspb.ListContractsResponse{Contracts: out}, nil
}

func (s *ContractsServer) UpdateContract(ctx context.Context, req *contractspb.UpdateContractRequest) (*contractspb.UpdateContractResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if p := strings.TrimSpace(req.GetProvider()); p != "" {
		fields["provider"] = p
	}
	if sd := strings.TrimSpace(req.GetStartDate()); sd != "" {
		t, err := utils.ParseYMD(sd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
		}
		fields["start_date"] = t
	}
	if ed := strings.TrimSpace(req.GetEndDate()); ed != "" {
		t, err := utils.ParseYMD(ed)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "end_date must be YYYY-MM-DD")
		}
		fields["end_date"] = t
	}
	if ad := strings.TrimSpace(req.GetAnniversaryDate()); ad != "" {
		t, err := utils.ParseYMD(ad)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "anniversary_date must be YYYY-MM-DD")
		}
		fields["anniversary_date"] = t
	}
	if cd := strings.TrimSpace(req.GetContractData()); cd != "" {
		data, err := decodeJSONObject(cd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "contract_data must be a JSON object")
		}
		fields["contract_data"] = data
	}
	if req.Validated != nil {
		fields["validated"] = req.GetValidated()
	}
	if req.IsSimulation != nil {
		fields["is_simulation"] = req.GetIsSimulation()
	}

	c, err := s.contracts.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error("update contract failed", "contract_id", id, "error", err)
		return nil, common.StatusFromError(err)
	}
	return &contractspb.UpdateContractResponse{Contract: toPBWithCost(c)}, nil
}

func (s *ContractsServer) DeleteContract(ctx context.Context, req *contractspb.DeleteContractRequest) (*contractspb.DeleteContractResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}

	if err := s.contracts.Delete(ctx, id); err != nil {
		s.logger.Error("delete contract failed", "contract_id", id, "error", err)
		return nil, common.StatusFromError(err)
	}
	return &contractspb.DeleteContractResponse{}, nil
}

func toEnergyLeg(pb *contractspb.EnergyLeg) (*contracts.EnergyLeg, error) {
	if pb == nil {
		return nil, status.Error(codes.InvalidArgument, "leg is required")
	}
	startDate, err := utils.ParseYMD(strings.TrimSpace(pb.GetStartDate()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
	}
	anniversary, err := utils.ParseYMD(strings.TrimSpace(pb.GetAnniversaryDate()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "anniversary_date must be YYYY-MM-DD")
	}
	data, err := decodeJSONObject(pb.GetContractData())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "contract_data must be a JSON object")
	}
	return &contracts.EnergyLeg{
		Provider:        strings.TrimSpace(pb.GetProvider()),
		StartDate:       startDate,
		AnniversaryDate: anniversary,
		ContractData:    data,
	}, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	return id, nil
}

func decodeJSONObject(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toPBWithCost(c *entity.Contract) *contractspb.Contract {
	pb := utils.ToPBContract(c)
	pb.CostDisplay = resolve.Cost(c.ContractType, c.ContractData).Display
	return pb
}
