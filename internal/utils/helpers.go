package utils

import (
	"encoding/json"
	"time"

	"github.com/aperrin/gardetonor/gen/ent"
	contractspb "github.com/aperrin/gardetonor/gen/proto/contracts/v1"
	"github.com/aperrin/gardetonor/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD date at midnight UTC to match DATE
// semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseFlexibleDate accepts both date layouts seen in extracted data:
// the DD/MM/YYYY the oracle is instructed to produce and the
// YYYY-MM-DD of older records.
func ParseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("02/01/2006", s, time.UTC); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return ParseYMD(s)
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:               e.ID,
		ContractType:     e.ContractType,
		Provider:         e.Provider,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		AnniversaryDate:  e.AnniversaryDate,
		ContractData:     e.ContractData,
		OriginalFilename: strOrEmpty(e.OriginalFilename),
		PDFContent:       e.PdfContent,
		Validated:        e.Validated,
		IsSimulation:     e.IsSimulation,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToComparison(e *ent.Comparison) *entity.Comparison {
	return &entity.Comparison{
		ID:                 e.ID,
		ContractID:         e.ContractID,
		ComparisonType:     e.ComparisonType,
		CompetitorFilename: strOrEmpty(e.CompetitorFilename),
		CompetitorPDF:      e.CompetitorPdf,
		CompetitorData:     e.CompetitorData,
		GPTPrompt:          e.GptPrompt,
		GPTResponse:        e.GptResponse,
		ComparisonResult:   e.ComparisonResult,
		AnalysisSummary:    strOrEmpty(e.AnalysisSummary),
		CreatedAt:          e.CreatedAt,
	}
}

func ToExtractionLog(e *ent.ExtractionLog) *entity.ExtractionLog {
	return &entity.ExtractionLog{
		ID:            e.ID,
		Filename:      e.Filename,
		ContractType:  e.ContractType,
		GPTPrompt:     e.GptPrompt,
		GPTResponse:   e.GptResponse,
		ExtractedData: e.ExtractedData,
		Success:       e.Success,
		ErrorMessage:  strOrEmpty(e.ErrorMessage),
		CreatedAt:     e.CreatedAt,
	}
}

// JSONString renders a decoded map for the wire; contract data crosses
// gRPC as serialized JSON rather than structpb trees.
func JSONString(m map[string]any) string {
	if m == nil {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

func ToPBContract(c *entity.Contract) *contractspb.Contract {
	pb := &contractspb.Contract{
		Id:               c.ID.String(),
		ContractType:     c.ContractType,
		Provider:         c.Provider,
		StartDate:        c.StartDate.Format("2006-01-02"),
		AnniversaryDate:  c.AnniversaryDate.Format("2006-01-02"),
		ContractData:     JSONString(c.ContractData),
		OriginalFilename: c.OriginalFilename,
		Validated:        c.Validated,
		IsSimulation:     c.IsSimulation,
		CreatedAt:        c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if c.EndDate != nil {
		pb.EndDate = c.EndDate.Format("2006-01-02")
	}
	return pb
}

func ToPBComparison(c *entity.Comparison) *contractspb.Comparison {
	return &contractspb.Comparison{
		Id:                 c.ID.String(),
		ContractId:         c.ContractID.String(),
		ComparisonType:     c.ComparisonType,
		CompetitorFilename: c.CompetitorFilename,
		CompetitorData:     JSONString(c.CompetitorData),
		ComparisonResult:   JSONString(c.ComparisonResult),
		AnalysisSummary:    c.AnalysisSummary,
		CreatedAt:          c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
