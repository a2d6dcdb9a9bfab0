package resolve

import (
	"github.com/aperrin/gardetonor/constants"
)

// Row is one line of the current-vs-best-offer table. Values keep
// their decoded JSON types; missing values stay nil and render empty.
type Row struct {
	Label   string
	Current any
	Offer   any
}

// Rows builds the per-type comparison table between a contract's data
// and the best market offer. The row set is intentionally different
// per contract type.
func Rows(contractType string, current, offer map[string]any) []Row {
	switch constants.ContractType(contractType) {
	case constants.Electricite:
		return energyRows("electricite", current, offer)
	case constants.Gaz:
		return energyRows("gaz", current, offer)
	case constants.Telephone:
		return []Row{
			{"Fournisseur", Get(current, "fournisseur"), Get(offer, "fournisseur")},
			{"Forfait", Get(current, "forfait_nom"), Get(offer, "forfait_nom")},
			{"Data (Go)", Get(current, "data_go"), Get(offer, "data_go")},
			{"Prix mensuel (€)", Get(current, "prix_mensuel"), Get(offer, "prix_mensuel")},
		}
	case constants.AssurancePNO:
		return []Row{
			{"Assureur", Get(current, "assureur"), Get(offer, "assureur")},
			{"Prime annuelle (€)", Get(current, "prime_annuelle"), Get(offer, "prime_annuelle")},
			{"Franchise (€)", Get(current, "franchise"), Get(offer, "franchise")},
		}
	case constants.AssuranceHabitation:
		return []Row{
			{"Assureur", Get(current, "assureur"), Get(offer, "assureur")},
			{"Prime annuelle (€)",
				Get(current, "tarifs", "prime_annuelle_ttc"),
				Get(offer, "tarifs", "prime_annuelle_ttc")},
			{"Franchise (€)",
				Get(current, "franchises", "franchise_generale"),
				Get(offer, "franchises", "franchise_generale")},
			{"Garanties", guaranteeCount(current), guaranteeCount(offer)},
		}
	default:
		return nil
	}
}

func energyRows(key string, current, offer map[string]any) []Row {
	kwhCurrent := FirstTruthy(
		Get(current, key, "tarifs", "prix_kwh_ttc"),
		legacyKWh(key, current),
	)
	kwhOffer := FirstTruthy(
		Get(offer, key, "tarifs", "prix_kwh_ttc"),
		legacyKWh(key, offer),
	)

	return []Row{
		{"Fournisseur", Get(current, "fournisseur"), Get(offer, "fournisseur")},
		{"Abonnement (€/mois)",
			FirstTruthy(Get(current, key, "tarifs", "abonnement_mensuel_ttc"), Get(current, "prix_abonnement_mensuel")),
			FirstTruthy(Get(offer, key, "tarifs", "abonnement_mensuel_ttc"), Get(offer, "prix_abonnement_mensuel"))},
		{"Prix kWh (€)", kwhCurrent, kwhOffer},
		{"Coût annuel estimé (€)",
			FirstTruthy(Get(current, key, "budget_annuel_estime_ttc"), Get(current, "estimation_facture_annuelle")),
			FirstTruthy(Get(offer, key, "budget_annuel_estime_ttc"), Get(offer, "estimation_facture_annuelle"))},
	}
}

// legacyKWh reads the root prix_kwh field: a {base, ...} mapping for
// electricity, a plain number for gas.
func legacyKWh(key string, data map[string]any) any {
	if data == nil {
		return nil
	}
	if key == "electricite" {
		return Get(data, "prix_kwh", "base")
	}
	return data["prix_kwh"]
}

func guaranteeCount(data map[string]any) int {
	list, _ := Get(data, "garanties_incluses").([]any)
	return len(list)
}
