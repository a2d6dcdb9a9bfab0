package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostTelephone(t *testing.T) {
	c := Cost("telephone", map[string]any{"prix_mensuel": 19.99})
	assert.Equal(t, "19.99 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 239.88, *c.AnnualEquivalent, 0.001)
}

func TestCostInsuranceMonthlyBeatsAnnual(t *testing.T) {
	c := Cost("assurance_pno", map[string]any{
		"prime_mensuelle": 12.5,
		"prime_annuelle":  999.0,
	})
	assert.Equal(t, "12.50 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 150.0, *c.AnnualEquivalent, 0.001)
}

func TestCostInsuranceAnnualFallback(t *testing.T) {
	c := Cost("assurance_pno", map[string]any{"prime_annuelle": 180.0})
	assert.Equal(t, "180.00 €/an", c.Display)
}

func TestCostHabitationNestedTarifs(t *testing.T) {
	c := Cost("assurance_habitation", map[string]any{
		"tarifs": map[string]any{"prime_mensuelle_ttc": 25.0},
	})
	assert.Equal(t, "25.00 €/mois", c.Display)
}

func TestCostEnergyNestedBudget(t *testing.T) {
	c := Cost("electricite", map[string]any{
		"electricite": map[string]any{"budget_annuel_estime_ttc": 1200.0},
		// legacy field present but must lose to the nested budget
		"estimation_facture_annuelle": 9999.0,
	})
	assert.Equal(t, "1200.00 €/an (100.00 €/mois)", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 1200.0, *c.AnnualEquivalent, 0.001)
}

func TestCostEnergyLegacyAnnualEstimate(t *testing.T) {
	c := Cost("gaz", map[string]any{"estimation_facture_annuelle": 840.0})
	assert.Equal(t, "840.00 €/an (70.00 €/mois)", c.Display)
}

func TestCostEnergySubscriptionFallback(t *testing.T) {
	c := Cost("electricite", map[string]any{
		"electricite": map[string]any{
			"tarifs": map[string]any{"abonnement_mensuel_ttc": 13.09},
		},
	})
	assert.Equal(t, "13.09 €/mois", c.Display)
}

func TestCostEnergyLegacyFlatSubscription(t *testing.T) {
	c := Cost("electricite", map[string]any{"prix_abonnement_mensuel": 11.5})
	assert.Equal(t, "11.50 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 138.0, *c.AnnualEquivalent, 0.001)
}

func TestCostEnergyLegacyDerivedAnnual(t *testing.T) {
	// Legacy record with tariff components but no stored annual
	// estimate: the annual equivalent is abonnement*12 + kwh*conso,
	// while the display stays monthly.
	c := Cost("electricite", map[string]any{
		"prix_kwh":                      0.15,
		"prix_abonnement_mensuel":       10.0,
		"estimation_conso_annuelle_kwh": 3000.0,
	})
	assert.Equal(t, "10.00 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 570.0, *c.AnnualEquivalent, 0.01)
}

func TestCostEnergyLegacyDerivedAnnualDictKWh(t *testing.T) {
	c := Cost("electricite", map[string]any{
		"prix_kwh":                      map[string]any{"base": 0.2, "heures_creuses": 0.15},
		"prix_abonnement_mensuel":       12.0,
		"estimation_conso_annuelle_kwh": 2000.0,
	})
	assert.Equal(t, "12.00 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 544.0, *c.AnnualEquivalent, 0.01)
}

func TestCostEnergyNestedDerivedAnnual(t *testing.T) {
	c := Cost("gaz", map[string]any{
		"gaz": map[string]any{
			"tarifs":                            map[string]any{"abonnement_mensuel_ttc": 8.0, "prix_kwh_ttc": 0.1},
			"consommation_estimee_annuelle_kwh": 9000.0,
		},
	})
	assert.Equal(t, "8.00 €/mois", c.Display)
	require.NotNil(t, c.AnnualEquivalent)
	assert.InDelta(t, 996.0, *c.AnnualEquivalent, 0.01)
}

func TestCostUnresolvable(t *testing.T) {
	for _, data := range []map[string]any{nil, {}, {"electricite": map[string]any{}}} {
		c := Cost("electricite", data)
		assert.Equal(t, "N/A", c.Display)
		assert.Nil(t, c.AnnualEquivalent)
	}
	c := Cost("unknown_type", map[string]any{"prix_mensuel": 10.0})
	assert.Equal(t, "N/A", c.Display)
}

func TestKWhPriceNestedBeatsLegacy(t *testing.T) {
	v, ok := KWhPrice("electricite", map[string]any{
		"electricite": map[string]any{
			"tarifs": map[string]any{"prix_kwh_ttc": 0.2},
		},
		"prix_kwh": map[string]any{"base": 0.99},
	})
	assert.True(t, ok)
	assert.Equal(t, 0.2, v)
}

func TestKWhPriceFlatNested(t *testing.T) {
	v, ok := KWhPrice("gaz", map[string]any{
		"gaz": map[string]any{"prix_kwh_ttc": 0.1121},
	})
	assert.True(t, ok)
	assert.Equal(t, 0.1121, v)
}

func TestKWhPriceLegacyDict(t *testing.T) {
	v, ok := KWhPrice("electricite", map[string]any{
		"prix_kwh": map[string]any{"base": 0.2516},
	})
	assert.True(t, ok)
	assert.Equal(t, 0.2516, v)

	// heures_pleines stands in when base is absent
	v, ok = KWhPrice("electricite", map[string]any{
		"prix_kwh": map[string]any{"heures_pleines": 0.27},
	})
	assert.True(t, ok)
	assert.Equal(t, 0.27, v)
}

func TestKWhPriceLegacyScalar(t *testing.T) {
	v, ok := KWhPrice("gaz", map[string]any{"prix_kwh": 0.1043})
	assert.True(t, ok)
	assert.Equal(t, 0.1043, v)
}

func TestKWhPriceRootIgnoredOnNestedRecords(t *testing.T) {
	// A record with a gaz sub-object is current-generation; its stray
	// root prix_kwh must not be read.
	_, ok := KWhPrice("gaz", map[string]any{
		"gaz":      map[string]any{"pce": "GI000000"},
		"prix_kwh": 0.5,
	})
	assert.False(t, ok)
}
