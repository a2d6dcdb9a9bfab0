package llm

import (
	"encoding/json"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaFromTemplate derives a JSON-Schema (draft 2020-12 subset) from a
// registry shape tree. Placeholder conventions: "" -> nullable string,
// nil -> nullable number, false -> nullable boolean, []any -> nullable
// array, nested map -> object. Everything stays permissive
// (additionalProperties allowed, nothing required): validation is
// advisory, prompt drift must not fail the pipeline.
func SchemaFromTemplate(template map[string]any) map[string]any {
	return objectSchema(template)
}

func objectSchema(tpl map[string]any) map[string]any {
	props := make(map[string]any, len(tpl))
	for key, placeholder := range tpl {
		props[key] = propSchema(placeholder)
	}
	return map[string]any{
		"type":       []any{"object", "null"},
		"properties": props,
	}
}

func propSchema(placeholder any) map[string]any {
	switch v := placeholder.(type) {
	case map[string]any:
		return objectSchema(v)
	case []any:
		return map[string]any{"type": []any{"array", "null"}}
	case bool:
		return map[string]any{"type": []any{"boolean", "null"}}
	case string:
		return map[string]any{"type": []any{"string", "null"}}
	default:
		// nil placeholders are numeric fields; accept strings too, the
		// oracle occasionally quotes numbers.
		return map[string]any{"type": []any{"number", "string", "null"}}
	}
}

// ValidateAdvisory checks a decoded oracle document against the schema
// derived from the registry template and logs mismatches. It never fails:
// the persisted record keeps whatever the oracle returned, and the
// shape-tolerant read path absorbs the difference.
func ValidateAdvisory(template map[string]any, doc map[string]any, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := json.Marshal(SchemaFromTemplate(template))
	if err != nil {
		logger.Warn("llm.validate.schema_encode_error", "error", err)
		return
	}
	sch, err := jsonschema.CompileString("extraction.schema.json", string(raw))
	if err != nil {
		logger.Warn("llm.validate.schema_compile_error", "error", err)
		return
	}

	// jsonschema validates the generic decoded form.
	var generic any = mapToGeneric(doc)
	if err := sch.Validate(generic); err != nil {
		logger.Warn("llm.validate.mismatch", "error", err)
	}
}

func mapToGeneric(doc map[string]any) any {
	b, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return doc
	}
	return v
}
