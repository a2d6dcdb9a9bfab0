package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := map[string]any{
		"electricite": map[string]any{
			"tarifs": map[string]any{
				"prix_kwh_ttc": 0.2516,
			},
		},
		"fournisseur": "EDF",
	}

	assert.Equal(t, 0.2516, Get(data, "electricite", "tarifs", "prix_kwh_ttc"))
	assert.Equal(t, "EDF", Get(data, "fournisseur"))
	assert.Nil(t, Get(data, "gaz", "tarifs"))
	assert.Nil(t, Get(data, "fournisseur", "nested"))
	assert.Nil(t, Get(nil, "anything"))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(map[string]any{}))
	assert.False(t, Truthy([]any{}))

	assert.True(t, Truthy("EDF"))
	assert.True(t, Truthy(12.5))
	assert.True(t, Truthy(true))
	assert.True(t, Truthy(map[string]any{"pdl": "123"}))
	assert.True(t, Truthy([]any{"x"}))
}

func TestFirstTruthy(t *testing.T) {
	assert.Equal(t, 12.5, FirstTruthy(nil, "", 0.0, 12.5, "later"))
	assert.Nil(t, FirstTruthy(nil, "", 0.0))
	assert.Nil(t, FirstTruthy())
}

func TestNumber(t *testing.T) {
	n, ok := Number(12.5)
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	n, ok = Number(7)
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)

	_, ok = Number("12.5")
	assert.False(t, ok)
	_, ok = Number(nil)
	assert.False(t, ok)

	assert.Equal(t, 0.0, NumberOrZero("not a number"))
	assert.Equal(t, 3.0, NumberOrZero(3.0))
}
