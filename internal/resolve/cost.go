package resolve

import (
	"fmt"

	"github.com/aperrin/gardetonor/constants"
)

// CostSummary is a contract's cost as shown in listings. Display keeps
// the period suffix ("/mois", "/an"); AnnualEquivalent is nil when no
// cost field resolves at all.
type CostSummary struct {
	Display          string
	AnnualEquivalent *float64
}

// Cost resolves a contract's cost from its extracted data, across both
// schema generations. Never errors: unresolvable records come back as
// "N/A" with a nil annual equivalent.
func Cost(contractType string, data map[string]any) CostSummary {
	switch constants.ContractType(contractType) {
	case constants.Telephone:
		return monthlyCost(NumberOrZero(data["prix_mensuel"]))

	case constants.AssurancePNO, constants.AssuranceHabitation:
		return premiumCost(data)

	case constants.Electricite, constants.Gaz:
		return energyCost(contractType, data)

	default:
		return CostSummary{Display: "N/A"}
	}
}

func monthlyCost(monthly float64) CostSummary {
	annual := monthly * 12
	return CostSummary{
		Display:          fmt.Sprintf("%.2f €/mois", monthly),
		AnnualEquivalent: &annual,
	}
}

// premiumCost prefers a non-zero monthly premium, falling back to the
// annual one. Both the flat PNO keys and the nested habitation
// tarifs.* keys are supported for either insurance type.
func premiumCost(data map[string]any) CostSummary {
	monthly := FirstTruthy(
		data["prime_mensuelle"],
		Get(data, "tarifs", "prime_mensuelle_ttc"),
	)
	if m, ok := Number(monthly); ok && m != 0 {
		return monthlyCost(m)
	}

	annual := NumberOrZero(FirstTruthy(
		data["prime_annuelle"],
		Get(data, "tarifs", "prime_annuelle_ttc"),
	))
	return CostSummary{
		Display:          fmt.Sprintf("%.2f €/an", annual),
		AnnualEquivalent: &annual,
	}
}

// isLegacyFlat reports whether an energy record predates the nested
// schema: no type-keyed sub-object at all means the cost fields sit on
// the root. Partially-populated records can fool this check; the
// fallback chains below keep reads safe regardless.
func isLegacyFlat(contractType string, data map[string]any) bool {
	if Truthy(data[contractType]) {
		return false
	}
	return !Truthy(data["electricite"]) && !Truthy(data["gaz"])
}

func energyCost(contractType string, data map[string]any) CostSummary {
	annual := FirstTruthy(
		Get(data, contractType, "budget_annuel_estime_ttc"),
		data["estimation_facture_annuelle"],
	)
	if a, ok := Number(annual); ok && a != 0 {
		return CostSummary{
			Display:          fmt.Sprintf("%.2f €/an (%.2f €/mois)", a, a/12),
			AnnualEquivalent: &a,
		}
	}

	abo := FirstTruthy(
		Get(data, contractType, "tarifs", "abonnement_mensuel_ttc"),
		Get(data, contractType, "abonnement_mensuel_ttc"),
		data["prix_abonnement_mensuel"],
	)
	if m, ok := Number(abo); ok && m != 0 {
		// No stored annual estimate: derive it from the tariff components
		// when both the kWh price and a consumption figure resolve.
		if kwh, ok := KWhPrice(contractType, data); ok {
			conso := NumberOrZero(FirstTruthy(
				Get(data, contractType, "consommation_estimee_annuelle_kwh"),
				data["estimation_conso_annuelle_kwh"],
			))
			if conso != 0 {
				derived := m*12 + kwh*conso
				return CostSummary{
					Display:          fmt.Sprintf("%.2f €/mois", m),
					AnnualEquivalent: &derived,
				}
			}
		}
		return monthlyCost(m)
	}

	return CostSummary{Display: "N/A"}
}

// KWhPrice resolves the per-kWh price of an energy contract. The
// legacy root prix_kwh field is only consulted on legacy-flat records;
// it may be a plain number or a {base, heures_pleines, heures_creuses}
// mapping.
func KWhPrice(contractType string, data map[string]any) (float64, bool) {
	if v, ok := Number(Get(data, contractType, "tarifs", "prix_kwh_ttc")); ok && v != 0 {
		return v, true
	}
	if v, ok := Number(Get(data, contractType, "prix_kwh_ttc")); ok && v != 0 {
		return v, true
	}

	if !isLegacyFlat(contractType, data) {
		return 0, false
	}
	switch legacy := data["prix_kwh"].(type) {
	case map[string]any:
		v := FirstTruthy(legacy["base"], legacy["heures_pleines"])
		if n, ok := Number(v); ok {
			return n, true
		}
		return 0, false
	default:
		if n, ok := Number(legacy); ok && n != 0 {
			return n, true
		}
		return 0, false
	}
}
