package comparison

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/extraction"
	"github.com/aperrin/gardetonor/internal/llm"
	"github.com/aperrin/gardetonor/internal/pdftext"
	"github.com/aperrin/gardetonor/internal/repository"
)

// Service runs market and competitor analyses over stored contracts.
// Every run appends a new Comparison row; nothing is persisted when the
// oracle call or the parse fails.
type Service struct {
	contracts   repository.ContractRepository
	comparisons repository.ComparisonRepository
	norm        *extraction.Normalizer
	pdf         *pdftext.Extractor
	oracle      llm.Oracle
	logger      *slog.Logger
}

func NewService(
	contracts repository.ContractRepository,
	comparisons repository.ComparisonRepository,
	norm *extraction.Normalizer,
	pdf *pdftext.Extractor,
	oracle llm.Oracle,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		contracts:   contracts,
		comparisons: comparisons,
		norm:        norm,
		pdf:         pdf,
		oracle:      oracle,
		logger:      logger,
	}
}

// CompareWithMarket asks the oracle how the contract stands against the
// current French market and persists the analysis.
func (s *Service) CompareWithMarket(ctx context.Context, contractID uuid.UUID) (*entity.Comparison, error) {
	contract, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	prompt := BuildMarketPrompt(constants.ContractType(contract.ContractType), contract.ContractData, start)

	s.logger.Info("compare.market.start",
		"contract_id", contractID, "contract_type", contract.ContractType)

	raw, err := s.oracle.ChatComplete(ctx, llm.ChatRequest{
		System:      marketSystemPrompt,
		User:        prompt,
		Temperature: marketTemperature,
		ForceJSON:   true,
	})
	if err != nil {
		s.logger.Error("compare.market.oracle_error", "contract_id", contractID, "error", err)
		return nil, &common.ComparisonError{Stage: "oracle", Err: err}
	}

	result, err := llm.DecodeObject(raw)
	if err != nil {
		s.logger.Error("compare.market.decode_error", "contract_id", contractID, "error", err)
		return nil, &common.ComparisonError{Stage: "decode", Err: err}
	}

	comp, err := s.comparisons.Create(ctx, &repository.CreateComparisonRequest{
		ContractID:       contractID,
		ComparisonType:   constants.MarketAnalysis,
		GPTPrompt:        prompt,
		GPTResponse:      raw,
		ComparisonResult: result,
		AnalysisSummary:  recommendation(result),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("compare.market.ok",
		"contract_id", contractID,
		"comparison_id", comp.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return comp, nil
}

// CompareWithCompetitor extracts a competitor quote with the base
// contract's type, then asks the oracle for a side-by-side verdict.
// The competitor document is assumed to describe the same service
// category; no cross-type check is made.
func (s *Service) CompareWithCompetitor(ctx context.Context, contractID uuid.UUID, competitorPDF []byte, competitorFilename string) (*entity.Comparison, error) {
	contract, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	contractType := constants.ContractType(contract.ContractType)

	s.logger.Info("compare.competitor.start",
		"contract_id", contractID,
		"contract_type", contract.ContractType,
		"competitor_filename", competitorFilename,
	)

	text, err := s.pdf.ExtractText(ctx, competitorPDF)
	if err != nil {
		return nil, err
	}
	extracted, err := s.norm.Extract(ctx, text, contractType, competitorFilename)
	if err != nil {
		return nil, err
	}

	prompt := BuildCompetitorPrompt(contractType, contract.ContractData, extracted.Data)
	raw, err := s.oracle.ChatComplete(ctx, llm.ChatRequest{
		System:      competitorSystemPrompt,
		User:        prompt,
		Temperature: competitorTemperature,
		ForceJSON:   true,
	})
	if err != nil {
		s.logger.Error("compare.competitor.oracle_error", "contract_id", contractID, "error", err)
		return nil, &common.ComparisonError{Stage: "oracle", Err: err}
	}

	result, err := llm.DecodeObject(raw)
	if err != nil {
		s.logger.Error("compare.competitor.decode_error", "contract_id", contractID, "error", err)
		return nil, &common.ComparisonError{Stage: "decode", Err: err}
	}

	comp, err := s.comparisons.Create(ctx, &repository.CreateComparisonRequest{
		ContractID:         contractID,
		ComparisonType:     constants.CompetitorQuote,
		CompetitorFilename: competitorFilename,
		CompetitorPDF:      competitorPDF,
		CompetitorData:     extracted.Data,
		GPTPrompt:          prompt,
		GPTResponse:        raw,
		ComparisonResult:   result,
		AnalysisSummary:    recommendation(result),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("compare.competitor.ok",
		"contract_id", contractID,
		"comparison_id", comp.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return comp, nil
}

func (s *Service) ListForContract(ctx context.Context, contractID uuid.UUID) ([]*entity.Comparison, error) {
	return s.comparisons.ListForContract(ctx, contractID)
}

func (s *Service) ListAll(ctx context.Context) ([]*entity.Comparison, error) {
	return s.comparisons.ListAll(ctx)
}

// recommendation pulls the summary line out of an oracle result,
// preferring the nested analyse block over the top level.
func recommendation(result map[string]any) string {
	if analyse, ok := result["analyse"].(map[string]any); ok {
		if r, ok := analyse["recommandation"].(string); ok && r != "" {
			return r
		}
	}
	r, _ := result["recommandation"].(string)
	return r
}
