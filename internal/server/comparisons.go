package server

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/resolve"
	"github.com/aperrin/gardetonor/internal/utils"
)

func (s *ContractsServer) CompareWithMarket(ctx context.Context, req *contractspb.CompareWithMarketRequest) (*contractspb.ComparisonResponse, error) {
	id, err := parseID(req.GetContractId())
	if err != nil {
		return nil, err
	}

	comp, err := s.comparisons.CompareWithMarket(ctx, id)
	if err != nil {
		s.logger.Error("market comparison failed", "contract_id", id, "error", err)
		return nil, common.StatusFromError(err)
	}

	return &contractspb.ComparisonResponse{
		Comparison:             utils.ToPBComparison(comp),
		PotentialAnnualSavings: resolve.Savings(comp.ComparisonResult),
	}, nil
}

func (s *ContractsServer) CompareWithCompetitor(ctx context.Context, req *contractspb.CompareWithCompetitorRequest) (*contractspb.ComparisonResponse, error) {
	id, err := parseID(req.GetContractId())
	if err != nil {
		return nil, err
	}
	if len(req.GetCompetitorPdf()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "competitor_pdf is required")
	}

	comp, err := s.comparisons.CompareWithCompetitor(ctx, id, req.GetCompetitorPdf(), req.GetCompetitorFilename())
	if err != nil {
		s.logger.Error("competitor comparison failed", "contract_id", id, "error", err)
		return nil, common.StatusFromError(err)
	}

	return &contractspb.ComparisonResponse{
		Comparison:             utils.ToPBComparison(comp),
		PotentialAnnualSavings: resolve.Savings(comp.ComparisonResult),
	}, nil
}

func (s *ContractsServer) ListComparisons(ctx context.Context, req *contractspb.ListComparisonsRequest) (*contractspb.ListComparisonsResponse, error) {
	id, err := parseID(req.GetContractId())
	if err != nil {
		return nil, err
	}

	recs, err := s.comparisons.ListForContract(ctx, id)
	if err != nil {
		s.logger.Error("list comparisons failed", "contract_id", id, "error", err)
		return nil, common.StatusFromError(err)
	}

	out := make([]*contractspb.Comparison, 0, len(recs))
	for _, c := range recs {
		out = append(out, utils.ToPBComparison(c))
	}
	return &contractspb.ListComparisonsResponse{Comparisons: out}, nil
}

func (s *ContractsServer) ListAllComparisons(ctx context.Context, _ *contractspb.ListAllComparisonsRequest) (*contractspb.ListComparisonsResponse, error) {
	recs, err := s.comparisons.ListAll(ctx)
	if err != nil {
		s.logger.Error("list all comparisons failed", "error", err)
		return nil, common.StatusFromError(err)
	}

	out := make([]*contractspb.Comparison, 0, len(recs))
	for _, c := range recs {
		out = append(out, utils.ToPBComparison(c))
	}
	return &contractspb.ListComparisonsResponse{Comparisons: out}, nil
}

func (s *ContractsServer) ExportContractsXlsx(ctx context.Context, _ *contractspb.ExportContractsXlsxRequest) (*contractspb.ExportContractsXlsxResponse, error) {
	content, err := s.exporter.ContractsXLSX(ctx)
	if err != nil {
		s.logger.Error("xlsx export failed", "error", err)
		return nil, common.StatusFromError(err)
	}

	return &contractspb.ExportContractsXlsxResponse{
		XlsxContent: content,
		Filename:    fmt.Sprintf("contrats-%s.xlsx", time.Now().Format("2006-01-02")),
	}, nil
}
