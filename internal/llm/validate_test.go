package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFromTemplate(t *testing.T) {
	tpl := map[string]any{
		"fournisseur": "",
		"prix":        nil,
		"actif":       false,
		"options":     []any{},
		"tarifs": map[string]any{
			"prix_kwh_ttc": nil,
		},
	}

	sch := SchemaFromTemplate(tpl)
	props := sch["properties"].(map[string]any)

	assert.Equal(t, []any{"string", "null"}, props["fournisseur"].(map[string]any)["type"])
	// nil placeholders accept quoted numbers too
	assert.Equal(t, []any{"number", "string", "null"}, props["prix"].(map[string]any)["type"])
	assert.Equal(t, []any{"boolean", "null"}, props["actif"].(map[string]any)["type"])
	assert.Equal(t, []any{"array", "null"}, props["options"].(map[string]any)["type"])

	nested := props["tarifs"].(map[string]any)
	require.Equal(t, []any{"object", "null"}, nested["type"])
	assert.Contains(t, nested["properties"].(map[string]any), "prix_kwh_ttc")
}

func TestValidateAdvisoryNeverPanics(t *testing.T) {
	tpl := map[string]any{"fournisseur": "", "prix": nil}

	// Conforming, mismatched and empty documents all pass through.
	ValidateAdvisory(tpl, map[string]any{"fournisseur": "EDF", "prix": 12.5}, nil)
	ValidateAdvisory(tpl, map[string]any{"fournisseur": 42, "prix": []any{"x"}}, nil)
	ValidateAdvisory(tpl, map[string]any{}, nil)
	ValidateAdvisory(map[string]any{}, nil, nil)
}
