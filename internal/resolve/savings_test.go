package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavingsAnnualWins(t *testing.T) {
	v := Savings(map[string]any{
		"economie_potentielle_annuelle":  100.0,
		"economie_potentielle_mensuelle": 5.0,
	})
	assert.Equal(t, 100.0, v)
}

func TestSavingsMonthlyTimesTwelve(t *testing.T) {
	v := Savings(map[string]any{"economie_potentielle_mensuelle": 5.0})
	assert.Equal(t, 60.0, v)
}

func TestSavingsNestedAnalyse(t *testing.T) {
	v := Savings(map[string]any{
		"analyse": map[string]any{"economie_potentielle_annuelle": 72.0},
	})
	assert.Equal(t, 72.0, v)

	v = Savings(map[string]any{
		"analyse": map[string]any{"economie_potentielle_mensuelle": 6.0},
	})
	assert.Equal(t, 72.0, v)
}

func TestSavingsCompetitorFallback(t *testing.T) {
	v := Savings(map[string]any{
		"comparaison_prix": map[string]any{"economie_potentielle": 45.0},
	})
	assert.Equal(t, 45.0, v)
}

func TestSavingsTotal(t *testing.T) {
	assert.Equal(t, 0.0, Savings(nil))
	assert.Equal(t, 0.0, Savings(map[string]any{}))
	assert.Equal(t, 0.0, Savings(map[string]any{"economie_potentielle_annuelle": "cent"}))
	assert.Equal(t, 0.0, Savings(map[string]any{"economie_potentielle_annuelle": 0.0}))
}
