package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYMD(t *testing.T) {
	d, err := ParseYMD("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseYMD("15/03/2025")
	assert.Error(t, err)
	_, err = ParseYMD("")
	assert.Error(t, err)
}

func TestParseFlexibleDate(t *testing.T) {
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	d, err := ParseFlexibleDate("15/03/2025")
	require.NoError(t, err)
	assert.Equal(t, want, d)

	d, err = ParseFlexibleDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, want, d)

	_, err = ParseFlexibleDate("mars 2025")
	assert.Error(t, err)
}

func TestJSONString(t *testing.T) {
	assert.Empty(t, JSONString(nil))
	assert.Equal(t, `{"fournisseur":"EDF"}`, JSONString(map[string]any{"fournisseur": "EDF"}))
}
