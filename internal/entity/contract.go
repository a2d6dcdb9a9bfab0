package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract represents a contract for data transfer between layers.
type Contract struct {
	ID               uuid.UUID      `json:"id"`
	ContractType     string         `json:"contract_type"`
	Provider         string         `json:"provider"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	AnniversaryDate  time.Time      `json:"anniversary_date"`
	ContractData     map[string]any `json:"contract_data"`
	OriginalFilename string         `json:"original_filename,omitempty"`
	PDFContent       []byte         `json:"-"`
	Validated        bool           `json:"validated"`
	IsSimulation     bool           `json:"is_simulation"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
