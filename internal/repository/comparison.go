package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/gen/ent"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/utils"
)

// CreateComparisonRequest wraps parameters for persisting one analysis
// run. Competitor fields stay empty for market analyses.
type CreateComparisonRequest struct {
	ContractID         uuid.UUID
	ComparisonType     constants.ComparisonType
	CompetitorFilename string
	CompetitorPDF      []byte
	CompetitorData     map[string]any
	GPTPrompt          string
	GPTResponse        string
	ComparisonResult   map[string]any
	AnalysisSummary    string
}

type ComparisonRepository interface {
	Create(ctx context.Context, req *CreateComparisonRequest) (*entity.Comparison, error)
	ListForContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Comparison, error)
	ListAll(ctx context.Context) ([]*entity.Comparison, error)
}

type comparisonRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewComparisonRepository(client *ent.Client, logger *slog.Logger) ComparisonRepository {
	return &comparisonRepository{
		client: client,
		logger: logger,
	}
}

func (r *comparisonRepository) Create(ctx context.Context, req *CreateComparisonRequest) (*entity.Comparison, error) {
	builder := r.client.Comparison.Create().
		SetContractID(req.ContractID).
		SetComparisonType(string(req.ComparisonType)).
		SetGptPrompt(req.GPTPrompt).
		SetGptResponse(req.GPTResponse)

	if req.ComparisonResult != nil {
		builder = builder.SetComparisonResult(req.ComparisonResult)
	}
	if req.AnalysisSummary != "" {
		builder = builder.SetAnalysisSummary(req.AnalysisSummary)
	}
	if req.CompetitorFilename != "" {
		builder = builder.SetCompetitorFilename(req.CompetitorFilename)
	}
	if len(req.CompetitorPDF) > 0 {
		builder = builder.SetCompetitorPdf(req.CompetitorPDF)
	}
	if req.CompetitorData != nil {
		builder = builder.SetCompetitorData(req.CompetitorData)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create comparison",
			"contract_id", req.ContractID, "comparison_type", req.ComparisonType, "error", err)
		return nil, err
	}
	return utils.ToComparison(rec), nil
}

// ListForContract returns a contract's analysis history, newest first.
func (r *comparisonRepository) ListForContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Comparison, error) {
	recs, err := r.client.Comparison.Query().
		Where(comparison.ContractID(contractID)).
		Order(comparison.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list comparisons", "contract_id", contractID, "error", err)
		return nil, err
	}

	result := make([]*entity.Comparison, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToComparison(rec)
	}
	return result, nil
}

func (r *comparisonRepository) ListAll(ctx context.Context) ([]*entity.Comparison, error) {
	recs, err := r.client.Comparison.Query().
		Order(comparison.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list all comparisons", "error", err)
		return nil, err
	}

	result := make([]*entity.Comparison, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToComparison(rec)
	}
	return result, nil
}

// comparisonContractID exposes the contract FK predicate to the
// contract repository's cleanup path.
func comparisonContractID(id uuid.UUID) predicate.Comparison {
	return comparison.ContractID(id)
}
