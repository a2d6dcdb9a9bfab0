package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/aperrin/gardetonor/gen/ent"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/utils"
)

// ExtractionLogRepository is the append-only audit trail of oracle
// extractions. Rows are never updated or deleted.
type ExtractionLogRepository interface {
	LogSuccess(ctx context.Context, log *entity.ExtractionLog) error
	LogFailure(ctx context.Context, log *entity.ExtractionLog) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ExtractionLog, error)
}

type extractionLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionLogRepository(client *ent.Client, logger *slog.Logger) ExtractionLogRepository {
	return &extractionLogRepository{
		client: client,
		logger: logger,
	}
}

func (r *extractionLogRepository) LogSuccess(ctx context.Context, log *entity.ExtractionLog) error {
	builder := r.client.ExtractionLog.Create().
		SetFilename(log.Filename).
		SetContractType(log.ContractType).
		SetGptPrompt(log.GPTPrompt).
		SetGptResponse(log.GPTResponse).
		SetSuccess(true)

	if log.ExtractedData != nil {
		builder = builder.SetExtractedData(log.ExtractedData)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to write extraction log",
			"filename", log.Filename, "contract_type", log.ContractType, "error", err)
		return err
	}
	return nil
}

// LogFailure records a failed attempt with its error message. The
// extraction pipeline currently only logs successes; this exists for
// callers that want the full audit trail.
func (r *extractionLogRepository) LogFailure(ctx context.Context, log *entity.ExtractionLog) error {
	builder := r.client.ExtractionLog.Create().
		SetFilename(log.Filename).
		SetContractType(log.ContractType).
		SetGptPrompt(log.GPTPrompt).
		SetGptResponse(log.GPTResponse).
		SetSuccess(false)

	if log.ErrorMessage != "" {
		builder = builder.SetErrorMessage(log.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to write extraction failure log",
			"filename", log.Filename, "contract_type", log.ContractType, "error", err)
		return err
	}
	return nil
}

func (r *extractionLogRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ExtractionLog, error) {
	q := r.client.ExtractionLog.Query().
		Order(extractionlog.ByCreatedAt(sql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}

	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list extraction logs", "error", err)
		return nil, err
	}

	result := make([]*entity.ExtractionLog, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToExtractionLog(rec)
	}
	return result, nil
}
