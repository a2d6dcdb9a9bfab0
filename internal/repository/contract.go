package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/gen/ent"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/utils"
)

// CreateContractRequest wraps parameters for persisting one contract.
type CreateContractRequest struct {
	ContractType     constants.ContractType
	Provider         string
	StartDate        time.Time
	EndDate          *time.Time
	AnniversaryDate  time.Time
	ContractData     map[string]any
	PDFContent       []byte
	OriginalFilename string
	Validated        bool
	IsSimulation     bool
}

type ContractRepository interface {
	Create(ctx context.Context, req *CreateContractRequest) (*entity.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	List(ctx context.Context) ([]*entity.Contract, error)
	ListAnniversaryBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) Create(ctx context.Context, req *CreateContractRequest) (*entity.Contract, error) {
	builder := r.client.Contract.Create().
		SetContractType(string(req.ContractType)).
		SetProvider(req.Provider).
		SetStartDate(req.StartDate).
		SetAnniversaryDate(req.AnniversaryDate).
		SetContractData(req.ContractData).
		SetPdfContent(req.PDFContent).
		SetValidated(req.Validated).
		SetIsSimulation(req.IsSimulation).
		SetNillableEndDate(req.EndDate)

	if req.OriginalFilename != "" {
		builder = builder.SetOriginalFilename(req.OriginalFilename)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract",
			"contract_type", req.ContractType, "provider", req.Provider, "error", err)
		return nil, err
	}
	return utils.ToContract(rec), nil
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	rec, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get contract", "contract_id", id, "error", err)
		return nil, err
	}
	return utils.ToContract(rec), nil
}

// List returns every contract ordered by anniversary date, soonest
// renewal first.
func (r *contractRepository) List(ctx context.Context) ([]*entity.Contract, error) {
	recs, err := r.client.Contract.Query().
		Order(contract.ByAnniversaryDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToContract(rec)
	}
	return result, nil
}

func (r *contractRepository) ListAnniversaryBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error) {
	recs, err := r.client.Contract.Query().
		Where(
			contract.AnniversaryDateGTE(from),
			contract.AnniversaryDateLTE(to),
		).
		Order(contract.ByAnniversaryDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts by anniversary window",
			"from", from, "to", to, "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToContract(rec)
	}
	return result, nil
}

// Update patches the given fields on one contract. Unknown field names
// are rejected rather than ignored.
func (r *contractRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Contract, error) {
	builder := r.client.Contract.UpdateOneID(id)

	for name, value := range fields {
		switch name {
		case "provider":
			v, ok := value.(string)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetProvider(v)
		case "start_date":
			v, ok := value.(time.Time)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetStartDate(v)
		case "end_date":
			switch v := value.(type) {
			case nil:
				builder = builder.ClearEndDate()
			case time.Time:
				builder = builder.SetEndDate(v)
			default:
				return nil, common.ErrInvalidInput
			}
		case "anniversary_date":
			v, ok := value.(time.Time)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetAnniversaryDate(v)
		case "contract_data":
			v, ok := value.(map[string]any)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetContractData(v)
		case "validated":
			v, ok := value.(bool)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetValidated(v)
		case "is_simulation":
			v, ok := value.(bool)
			if !ok {
				return nil, common.ErrInvalidInput
			}
			builder = builder.SetIsSimulation(v)
		default:
			r.logger.Warn("rejecting update of unknown contract field", "field", name)
			return nil, common.ErrInvalidInput
		}
	}

	rec, err := builder.SetUpdatedAt(time.Now()).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update contract", "contract_id", id, "error", err)
		return nil, err
	}
	return utils.ToContract(rec), nil
}

// Delete removes a contract and its comparison history. The schema has
// a cascading FK, but sqlite installs predating the foreign_keys pragma
// may not enforce it, so comparisons are cleared explicitly first.
func (r *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	comparisonsDeleted, err := r.client.Comparison.Delete().
		Where(comparisonContractID(id)).
		Exec(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		r.logger.Error("failed to delete contract comparisons", "contract_id", id, "error", err)
		return err
	}

	if err := r.client.Contract.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to delete contract", "contract_id", id, "error", err)
		return err
	}

	r.logger.Info("contract deleted", "contract_id", id, "comparisons_deleted", comparisonsDeleted)
	return nil
}
