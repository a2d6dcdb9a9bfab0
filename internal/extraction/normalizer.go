package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/common"
	"github.com/aperrin/gardetonor/internal/entity"
	"github.com/aperrin/gardetonor/internal/llm"
	"github.com/aperrin/gardetonor/internal/schema"
)

const systemPrompt = "Tu es un assistant expert en analyse de contrats. " +
	"Tu dois extraire les informations clés d'un contrat et les retourner " +
	"au format JSON structuré. Sois précis et exhaustif."

// extractionTemperature stays low: the task is extractive, not generative.
const extractionTemperature = 0.1

// LogStore is the slice of the extraction-log repository the normalizer
// needs. Only successful extractions are recorded.
type LogStore interface {
	LogSuccess(ctx context.Context, log *entity.ExtractionLog) error
}

// Result is one successful normalization: the decoded record plus the
// full prompt/response pair for the audit trail.
type Result struct {
	Data        map[string]any
	Prompt      string
	RawResponse string
}

// Normalizer turns raw document text into a structured record matching
// the canonical schema for a contract type.
type Normalizer struct {
	oracle llm.Oracle
	logs   LogStore
	logger *slog.Logger
}

func NewNormalizer(oracle llm.Oracle, logs LogStore, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{oracle: oracle, logs: logs, logger: logger}
}

// Extract runs a single oracle call over the document text and decodes
// the reply into the canonical shape for contractType. One call, no
// retry: a failed call or unparseable reply returns an
// *common.ExtractionError and nothing is logged.
func (n *Normalizer) Extract(ctx context.Context, documentText string, contractType constants.ContractType, filename string) (*Result, error) {
	start := time.Now()
	prompt := BuildPrompt(contractType, documentText)

	n.logger.Info("extraction.start",
		"contract_type", contractType,
		"filename", filename,
		"text_len", len(documentText),
	)

	raw, err := n.oracle.ChatComplete(ctx, llm.ChatRequest{
		System:      systemPrompt,
		User:        prompt,
		Temperature: extractionTemperature,
		ForceJSON:   true,
	})
	if err != nil {
		n.logger.Error("extraction.oracle_error",
			"contract_type", contractType, "filename", filename, "error", err,
		)
		return nil, &common.ExtractionError{Stage: "oracle", Err: err}
	}

	data, err := llm.DecodeObject(raw)
	if err != nil {
		n.logger.Error("extraction.decode_error",
			"contract_type", contractType, "filename", filename, "error", err,
		)
		return nil, &common.ExtractionError{Stage: "decode", Err: err}
	}

	llm.ValidateAdvisory(schema.ForType(contractType), data, n.logger)

	if n.logs != nil {
		logErr := n.logs.LogSuccess(ctx, &entity.ExtractionLog{
			Filename:      filename,
			ContractType:  string(contractType),
			GPTPrompt:     prompt,
			GPTResponse:   raw,
			ExtractedData: data,
			Success:       true,
		})
		if logErr != nil {
			// Audit write failure must not fail the extraction itself.
			n.logger.Warn("extraction.log_write_error",
				"filename", filename, "error", logErr,
			)
		}
	}

	n.logger.Info("extraction.ok",
		"contract_type", contractType,
		"filename", filename,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Data: data, Prompt: prompt, RawResponse: raw}, nil
}

// BuildPrompt embeds the canonical schema for the contract type and the
// document text into the extraction instruction.
func BuildPrompt(contractType constants.ContractType, documentText string) string {
	tpl := schema.ForType(contractType)
	schemaJSON, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		// The registry trees are static literals; this cannot happen in
		// practice, but the prompt must never be silently empty.
		schemaJSON = []byte("{}")
	}

	return fmt.Sprintf(`Analyse ce contrat de type '%s' et extrais toutes les informations pertinentes.

SCHÉMA JSON ATTENDU :
%s

RÈGLES :
1. Extrais TOUTES les informations du document
2. Pour les champs non trouvés, mets null
3. Dates au format DD/MM/YYYY
4. Montants en nombres décimaux
5. Réponds UNIQUEMENT avec du JSON valide

CONTENU DU CONTRAT :
%s

JSON de réponse :`, contractType, schemaJSON, documentText)
}
