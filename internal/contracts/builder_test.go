package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/gardetonor/constants"
)

func TestDetectTypeBothEnergies(t *testing.T) {
	extracted := map[string]any{
		"electricite": map[string]any{"pdl": "14552000000000"},
		"gaz":         map[string]any{"pce": "GI099999"},
	}
	assert.Equal(t, constants.ElectriciteGaz, DetectType(extracted))
}

func TestDetectTypeGasOnly(t *testing.T) {
	extracted := map[string]any{
		// Empty skeleton for electricity: the oracle fills both
		// sub-objects on auto extractions even for single-energy docs.
		"electricite": map[string]any{"pdl": "", "matricule_compteur": nil},
		"gaz":         map[string]any{"pce": "GI099999"},
	}
	assert.Equal(t, constants.Gaz, DetectType(extracted))
}

func TestDetectTypeMeterFallback(t *testing.T) {
	extracted := map[string]any{
		"electricite": map[string]any{"pdl": "", "matricule_compteur": "21 60 123456"},
	}
	assert.Equal(t, constants.Electricite, DetectType(extracted))
}

func TestDetectTypeDefaultsToElectricity(t *testing.T) {
	assert.Equal(t, constants.Electricite, DetectType(map[string]any{}))
	assert.Equal(t, constants.Electricite, DetectType(map[string]any{
		"electricite": map[string]any{},
		"gaz":         map[string]any{},
	}))
}

func TestBuildElectricityData(t *testing.T) {
	extracted := map[string]any{
		"fournisseur":    "EDF",
		"numero_contrat": "E-123",
		"adresses":       map[string]any{"site_de_consommation": "12 rue de la Paix, Paris"},
		"dates": map[string]any{
			"date_debut":        "15/03/2025",
			"date_anniversaire": "15/03/2026",
		},
		"electricite": map[string]any{
			"pdl":                     "14552000000000",
			"puissance_souscrite_kva": 6.0,
			"option_tarifaire":        "Heures Creuses",
			"tarifs": map[string]any{
				"abonnement_mensuel_ttc": 13.0,
				"prix_kwh_ttc":           0.25,
			},
			"consommation_estimee_annuelle_kwh": 3000.0,
		},
		"conditions_resiliation": "Sans frais",
	}

	data := BuildContractData(constants.Electricite, extracted)

	assert.Equal(t, "EDF", data["fournisseur"])
	assert.Equal(t, "Heures Creuses", data["option_tarifaire"])
	assert.Equal(t, "14552000000000", data["pdl"])
	assert.Equal(t, "2025-03-15", data["date_debut"])
	assert.Equal(t, "2026-03-15", data["date_anniversaire"])
	assert.Equal(t, map[string]any{"base": 0.25}, data["prix_kwh"])
	// 13*12 + 0.25*3000
	assert.InDelta(t, 906.0, data["estimation_facture_annuelle"].(float64), 0.001)
}

func TestBuildGasDataScalarKWh(t *testing.T) {
	extracted := map[string]any{
		"fournisseur": "Engie",
		"gaz": map[string]any{
			"pce": "GI099999",
			"tarifs": map[string]any{
				"abonnement_mensuel_ttc": 10.0,
				"prix_kwh_ttc":           0.1,
			},
			"consommation_estimee_annuelle_kwh": 9000.0,
		},
	}

	data := BuildContractData(constants.Gaz, extracted)

	assert.Equal(t, "GI099999", data["pce"])
	assert.Equal(t, 0.1, data["prix_kwh"])
	assert.Equal(t, "Base", data["classe_consommation"])
	assert.InDelta(t, 1020.0, data["estimation_facture_annuelle"].(float64), 0.001)
}

func TestBuildTelephoneDataNestedWithFlatFallback(t *testing.T) {
	extracted := map[string]any{
		"telephone": map[string]any{
			"operateur":    "Free",
			"forfait":      "Forfait Free 5G",
			"data_go":      210.0,
			"prix_mensuel": 19.99,
		},
	}

	data := BuildContractData(constants.Telephone, extracted)

	assert.Equal(t, "Free", data["fournisseur"])
	assert.Equal(t, "Forfait Free 5G", data["forfait_nom"])
	assert.Equal(t, 19.99, data["prix_mensuel"])
	assert.Equal(t, "illimité", data["minutes"])
	assert.Equal(t, "illimité", data["sms"])
	assert.Equal(t, []any{}, data["options"])
}

func TestBuildPNODataGuaranteesKeptAsIs(t *testing.T) {
	// Legacy map-shaped guarantees survive the build untouched.
	garanties := map[string]any{"incendie": 50000.0, "degats_des_eaux": 20000.0}
	extracted := map[string]any{
		"fournisseur": "Generali",
		"garanties":   garanties,
		"assurance": map[string]any{
			"prime_annuelle": 180.0,
			"franchise":      300.0,
		},
	}

	data := BuildContractData(constants.AssurancePNO, extracted)

	assert.Equal(t, "Generali", data["assureur"])
	assert.Equal(t, garanties, data["garanties"])
	assert.Equal(t, 180.0, data["prime_annuelle"])
	assert.Equal(t, 300.0, data["franchise"])
}

func TestBuildHabitationDataNestedDates(t *testing.T) {
	extracted := map[string]any{
		"assureur": "MAIF",
		"bien_assure": map[string]any{
			"adresse":       "8 avenue Victor Hugo, Lyon",
			"type_logement": "appartement",
			"surface_m2":    62.0,
			"nombre_pieces": 3.0,
			"cheminee":      true,
		},
		"garanties_incluses": []any{"incendie", "vol"},
		"tarifs":             map[string]any{"prime_annuelle_ttc": 312.0},
		"franchises":         map[string]any{"franchise_generale": 150.0},
		"dates": map[string]any{
			"date_debut":        "01/09/2025",
			"date_anniversaire": "01/09/2026",
		},
	}

	data := BuildContractData(constants.AssuranceHabitation, extracted)

	bien := data["bien_assure"].(map[string]any)
	assert.Equal(t, "appartement", bien["type_logement"])
	assert.Equal(t, true, bien["cheminee"])
	assert.Equal(t, false, bien["piscine"])

	// Habitation dates stay nested and DD/MM/YYYY.
	dates := data["dates"].(map[string]any)
	assert.Equal(t, "01/09/2025", dates["date_debut"])
	assert.Equal(t, "01/09/2026", dates["date_anniversaire"])
}

func TestBuildDatesDefaultToToday(t *testing.T) {
	data := BuildContractData(constants.Electricite, map[string]any{})
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, data["date_debut"])
	assert.Equal(t, today, data["date_anniversaire"])
}

func TestBuildUnknownTypePassesThrough(t *testing.T) {
	extracted := map[string]any{"anything": "goes"}
	data := BuildContractData(constants.ContractType("velo"), extracted)
	require.Equal(t, extracted, data)
}

func TestAnnualEstimate(t *testing.T) {
	assert.InDelta(t, 570.0, AnnualEstimate(10, 0.15, 3000), 0.001)
	assert.Equal(t, 0.0, AnnualEstimate(0, 0, 0))
}
