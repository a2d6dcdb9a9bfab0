package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionLog is one audit row for an extraction attempt.
type ExtractionLog struct {
	ID            uuid.UUID      `json:"id"`
	Filename      string         `json:"filename"`
	ContractType  string         `json:"contract_type"`
	GPTPrompt     string         `json:"gpt_prompt"`
	GPTResponse   string         `json:"gpt_response"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
	Success       bool           `json:"success"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
