package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comparison represents one analysis run against a contract.
type Comparison struct {
	ID                 uuid.UUID      `json:"id"`
	ContractID         uuid.UUID      `json:"contract_id"`
	ComparisonType     string         `json:"comparison_type"`
	CompetitorFilename string         `json:"competitor_filename,omitempty"`
	CompetitorPDF      []byte         `json:"-"`
	CompetitorData     map[string]any `json:"competitor_data,omitempty"`
	GPTPrompt          string         `json:"gpt_prompt"`
	GPTResponse        string         `json:"gpt_response"`
	ComparisonResult   map[string]any `json:"comparison_result,omitempty"`
	AnalysisSummary    string         `json:"analysis_summary,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}
