package contracts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/extraction"
	"github.com/aperrin/gardetonor/internal/pdftext"
	"github.com/aperrin/gardetonor/internal/repository"
)

// Prepared is the outcome of extracting one document: the raw record,
// the document text for display, and the resolved contract type (auto
// detection applied).
type Prepared struct {
	Data         map[string]any
	DocumentText string
	ResolvedType constants.ContractType
}

// CreateRequest carries one confirmed contract to persist.
type CreateRequest struct {
	ContractType    constants.ContractType
	Provider        string
	StartDate       time.Time
	EndDate         *time.Time
	AnniversaryDate time.Time
	ContractData    map[string]any
	PDFContent      []byte
	Filename        string
	IsSimulation    bool
}

// EnergyLeg is one half of a combined electricity+gas document.
type EnergyLeg struct {
	Provider        string
	StartDate       time.Time
	AnniversaryDate time.Time
	ContractData    map[string]any
}

// DualEnergyRequest creates two contracts sharing one source PDF.
type DualEnergyRequest struct {
	Electricity EnergyLeg
	Gas         EnergyLeg
	PDFContent  []byte
	Filename    string
}

// Service owns the contract lifecycle: document intake, record
// persistence and renewal tracking.
type Service struct {
	contracts repository.ContractRepository
	norm      *extraction.Normalizer
	pdf       *pdftext.Extractor
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, norm *extraction.Normalizer, pdf *pdftext.Extractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, norm: norm, pdf: pdf, logger: logger}
}

// ExtractAndPrepare validates the document, pulls its text layer and
// runs the oracle extraction. The caller reviews the returned record
// before Create; nothing is persisted here except the extraction audit
// log.
func (s *Service) ExtractAndPrepare(ctx context.Context, pdf []byte, filename string, contractType constants.ContractType) (*Prepared, error) {
	if !s.pdf.IsValidPDF(ctx, pdf) {
		return nil, fmt.Errorf("%w: %s is not a valid PDF", common.ErrValidation, filename)
	}

	text, err := s.pdf.ExtractText(ctx, pdf)
	if err != nil {
		return nil, err
	}

	res, err := s.norm.Extract(ctx, text, contractType, filename)
	if err != nil {
		return nil, err
	}

	resolved := contractType
	if contractType == constants.AutoDetect {
		resolved = DetectType(res.Data)
		s.logger.Info("contracts.type_detected",
			"filename", filename, "resolved_type", resolved)
	}

	return &Prepared{
		Data:         res.Data,
		DocumentText: text,
		ResolvedType: resolved,
	}, nil
}

// Create persists one confirmed contract. Confirmation marks it
// validated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*entity.Contract, error) {
	if _, ok := constants.ParseContractType(string(req.ContractType)); !ok {
		return nil, fmt.Errorf("%w: unknown contract type %q", common.ErrInvalidInput, req.ContractType)
	}
	if req.Provider == "" {
		return nil, fmt.Errorf("%w: provider is required", common.ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.AnniversaryDate.IsZero() {
		return nil, fmt.Errorf("%w: start and anniversary dates are required", common.ErrInvalidInput)
	}

	c, err := s.contracts.Create(ctx, &repository.CreateContractRequest{
		ContractType:     req.ContractType,
		Provider:         req.Provider,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		AnniversaryDate:  req.AnniversaryDate,
		ContractData:     req.ContractData,
		PDFContent:       req.PDFContent,
		OriginalFilename: req.Filename,
		Validated:        true,
		IsSimulation:     req.IsSimulation,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contracts.created",
		"contract_id", c.ID,
		"contract_type", c.ContractType,
		"provider", c.Provider,
	)
	return c, nil
}

// CreateDualEnergy persists the two halves of a combined document
// sequentially. Creation is not transactional: when the gas leg fails
// the electricity contract stays, and both the partial result and the
// error are returned.
func (s *Service) CreateDualEnergy(ctx context.Context, req DualEnergyRequest) (*entity.Contract, *entity.Contract, error) {
	elec, err := s.Create(ctx, CreateRequest{
		ContractType:    constants.Electricite,
		Provider:        req.Electricity.Provider,
		StartDate:       req.Electricity.StartDate,
		AnniversaryDate: req.Electricity.AnniversaryDate,
		ContractData:    req.Electricity.ContractData,
		PDFContent:      req.PDFContent,
		Filename:        req.Filename,
	})
	if err != nil {
		return nil, nil, err
	}

	gaz, err := s.Create(ctx, CreateRequest{
		ContractType:    constants.Gaz,
		Provider:        req.Gas.Provider,
		StartDate:       req.Gas.StartDate,
		AnniversaryDate: req.Gas.AnniversaryDate,
		ContractData:    req.Gas.ContractData,
		PDFContent:      req.PDFContent,
		Filename:        req.Filename,
	})
	if err != nil {
		s.logger.Error("contracts.dual_partial_failure",
			"electricity_id", elec.ID, "error", err)
		return elec, nil, err
	}

	return elec, gaz, nil
}

func (s *Service) List(ctx context.Context) ([]*entity.Contract, error) {
	return s.contracts.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	return s.contracts.GetByID(ctx, id)
}

// ListNeedingAttention returns contracts whose anniversary falls within
// the next thresholdDays, soonest first. Anniversaries already past are
// excluded.
func (s *Service) ListNeedingAttention(ctx context.Context, thresholdDays int) ([]*entity.Contract, error) {
	now := time.Now()
	return s.contracts.ListAnniversaryBetween(ctx, now, now.AddDate(0, 0, thresholdDays))
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Contract, error) {
	if len(fields) == 0 {
		return s.contracts.GetByID(ctx, id)
	}
	return s.contracts.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contracts.Delete(ctx, id)
}
