package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around fence", "Voici le JSON :\n```json\n{\"a\": 1}\n```\nVoilà.", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}

func TestDecodeObject(t *testing.T) {
	m, err := DecodeObject("```json\n{\"fournisseur\": \"EDF\", \"tarifs\": {\"prix_kwh_ttc\": 0.25}}\n```")
	require.NoError(t, err)
	assert.Equal(t, "EDF", m["fournisseur"])

	_, err = DecodeObject("pas du json")
	assert.Error(t, err)

	_, err = DecodeObject(`["un", "tableau"]`)
	assert.Error(t, err)
}
