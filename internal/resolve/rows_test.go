package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowByLabel(t *testing.T, rows []Row, label string) Row {
	t.Helper()
	for _, r := range rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no row labeled %q", label)
	return Row{}
}

func TestRowsElectricityMixedGenerations(t *testing.T) {
	// Current record in the nested shape, offer in the legacy flat shape.
	current := map[string]any{
		"fournisseur": "EDF",
		"electricite": map[string]any{
			"tarifs":                   map[string]any{"abonnement_mensuel_ttc": 13.09, "prix_kwh_ttc": 0.2516},
			"budget_annuel_estime_ttc": 1100.0,
		},
	}
	offer := map[string]any{
		"fournisseur":                 "TotalEnergies",
		"prix_abonnement_mensuel":     11.5,
		"prix_kwh":                    map[string]any{"base": 0.21},
		"estimation_facture_annuelle": 950.0,
	}

	rows := Rows("electricite", current, offer)
	require.Len(t, rows, 4)

	assert.Equal(t, "EDF", rowByLabel(t, rows, "Fournisseur").Current)
	assert.Equal(t, "TotalEnergies", rowByLabel(t, rows, "Fournisseur").Offer)

	abo := rowByLabel(t, rows, "Abonnement (€/mois)")
	assert.Equal(t, 13.09, abo.Current)
	assert.Equal(t, 11.5, abo.Offer)

	kwh := rowByLabel(t, rows, "Prix kWh (€)")
	assert.Equal(t, 0.2516, kwh.Current)
	assert.Equal(t, 0.21, kwh.Offer)

	annual := rowByLabel(t, rows, "Coût annuel estimé (€)")
	assert.Equal(t, 1100.0, annual.Current)
	assert.Equal(t, 950.0, annual.Offer)
}

func TestRowsGasLegacyScalarKWh(t *testing.T) {
	current := map[string]any{"fournisseur": "Engie", "prix_kwh": 0.1043}
	rows := Rows("gaz", current, nil)

	kwh := rowByLabel(t, rows, "Prix kWh (€)")
	assert.Equal(t, 0.1043, kwh.Current)
	assert.Nil(t, kwh.Offer)
}

func TestRowsTelephone(t *testing.T) {
	current := map[string]any{
		"fournisseur":  "Free",
		"forfait_nom":  "Forfait Free 5G",
		"data_go":      210.0,
		"prix_mensuel": 19.99,
	}
	rows := Rows("telephone", current, map[string]any{})
	require.Len(t, rows, 4)
	assert.Equal(t, "Forfait Free 5G", rowByLabel(t, rows, "Forfait").Current)
	assert.Equal(t, 19.99, rowByLabel(t, rows, "Prix mensuel (€)").Current)
}

func TestRowsHabitationGuaranteeCount(t *testing.T) {
	current := map[string]any{
		"assureur":           "MAIF",
		"tarifs":             map[string]any{"prime_annuelle_ttc": 312.0},
		"franchises":         map[string]any{"franchise_generale": 150.0},
		"garanties_incluses": []any{"incendie", "degats_des_eaux", "vol"},
	}
	rows := Rows("assurance_habitation", current, map[string]any{})
	require.Len(t, rows, 4)
	assert.Equal(t, 312.0, rowByLabel(t, rows, "Prime annuelle (€)").Current)
	assert.Equal(t, 3, rowByLabel(t, rows, "Garanties").Current)
	assert.Equal(t, 0, rowByLabel(t, rows, "Garanties").Offer)
}

func TestRowsUnknownType(t *testing.T) {
	assert.Nil(t, Rows("velo", map[string]any{}, map[string]any{}))
}
