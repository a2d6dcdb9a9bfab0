package contracts

import (
	"time"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/resolve"
	"github.com/aperrin/gardetonor/internal/utils"
)

// DetectType resolves the "auto" contract type from an extracted
// record: an energy sub-object only counts when its meter identifier
// came back non-empty, since the oracle returns empty skeletons for
// both energies on single-energy documents. Unresolvable records
// default to electricity.
func DetectType(extracted map[string]any) constants.ContractType {
	hasElec := resolve.Truthy(extracted["electricite"]) &&
		(resolve.Truthy(resolve.Get(extracted, "electricite", "pdl")) ||
			resolve.Truthy(resolve.Get(extracted, "electricite", "matricule_compteur")))
	hasGaz := resolve.Truthy(extracted["gaz"]) &&
		(resolve.Truthy(resolve.Get(extracted, "gaz", "pce")) ||
			resolve.Truthy(resolve.Get(extracted, "gaz", "matricule_compteur")))

	switch {
	case hasElec && hasGaz:
		return constants.ElectriciteGaz
	case hasGaz:
		return constants.Gaz
	default:
		return constants.Electricite
	}
}

// BuildContractData derives the persisted record for one contract type
// from the raw extracted document. The output is what the confirmation
// UI pre-fills; callers may edit the returned map before Create. For
// energy types the annual estimate is computed here, once, and stored.
func BuildContractData(contractType constants.ContractType, extracted map[string]any) map[string]any {
	switch contractType {
	case constants.Electricite:
		return buildElectricityData(extracted)
	case constants.Gaz:
		return buildGasData(extracted)
	case constants.Telephone:
		return buildTelephoneData(extracted)
	case constants.AssurancePNO:
		return buildPNOData(extracted)
	case constants.AssuranceHabitation:
		return buildHabitationData(extracted)
	default:
		return extracted
	}
}

// AnnualEstimate is the derived annual bill for energy contracts.
// Computed at save time and stored; never recomputed afterwards, so a
// later edit of one input leaves it stale on purpose.
func AnnualEstimate(monthlySubscription, pricePerKWh, annualConsumptionKWh float64) float64 {
	return monthlySubscription*12 + pricePerKWh*annualConsumptionKWh
}

func buildElectricityData(extracted map[string]any) map[string]any {
	prixAbo := resolve.NumberOrZero(resolve.Get(extracted, "electricite", "tarifs", "abonnement_mensuel_ttc"))
	prixKWh := resolve.NumberOrZero(resolve.Get(extracted, "electricite", "tarifs", "prix_kwh_ttc"))
	conso := resolve.NumberOrZero(resolve.Get(extracted, "electricite", "consommation_estimee_annuelle_kwh"))

	return map[string]any{
		"fournisseur":             str(extracted["fournisseur"]),
		"numero_contrat":          str(extracted["numero_contrat"]),
		"type_offre":              str(resolve.Get(extracted, "electricite", "option_tarifaire")),
		"puissance_souscrite_kva": resolve.NumberOrZero(resolve.Get(extracted, "electricite", "puissance_souscrite_kva")),
		"option_tarifaire":        strDefault(resolve.Get(extracted, "electricite", "option_tarifaire"), "Base"),
		"prix_abonnement_mensuel": prixAbo,
		"prix_kwh":                map[string]any{"base": prixKWh},
		"adresse_fourniture":      str(resolve.Get(extracted, "adresses", "site_de_consommation")),
		"pdl":                     str(resolve.Get(extracted, "electricite", "pdl")),
		"date_debut":              ymdOrToday(resolve.Get(extracted, "dates", "date_debut")),
		"date_anniversaire":       ymdOrToday(resolve.Get(extracted, "dates", "date_anniversaire")),
		"estimation_conso_annuelle_kwh": conso,
		"estimation_facture_annuelle":   AnnualEstimate(prixAbo, prixKWh, conso),
		"conditions_resiliation":        str(extracted["conditions_resiliation"]),
	}
}

func buildGasData(extracted map[string]any) map[string]any {
	prixAbo := resolve.NumberOrZero(resolve.Get(extracted, "gaz", "tarifs", "abonnement_mensuel_ttc"))
	prixKWh := resolve.NumberOrZero(resolve.Get(extracted, "gaz", "tarifs", "prix_kwh_ttc"))
	conso := resolve.NumberOrZero(resolve.Get(extracted, "gaz", "consommation_estimee_annuelle_kwh"))

	return map[string]any{
		"fournisseur":             str(extracted["fournisseur"]),
		"numero_contrat":          str(extracted["numero_contrat"]),
		"type_offre":              str(resolve.Get(extracted, "gaz", "option_tarifaire")),
		"classe_consommation":     strDefault(resolve.Get(extracted, "gaz", "option_tarifaire"), "Base"),
		"zone_tarifaire":          resolve.Get(extracted, "gaz", "zone_tarifaire"),
		"prix_abonnement_mensuel": prixAbo,
		// Gas stores a single scalar; only electricity keeps the
		// base/heures_pleines split.
		"prix_kwh":           prixKWh,
		"adresse_fourniture": str(resolve.Get(extracted, "adresses", "site_de_consommation")),
		"pce":                str(resolve.Get(extracted, "gaz", "pce")),
		"date_debut":         ymdOrToday(resolve.Get(extracted, "dates", "date_debut")),
		"date_anniversaire":  ymdOrToday(resolve.Get(extracted, "dates", "date_anniversaire")),
		"estimation_conso_annuelle_kwh": conso,
		"estimation_facture_annuelle":   AnnualEstimate(prixAbo, prixKWh, conso),
		"conditions_resiliation":        str(extracted["conditions_resiliation"]),
	}
}

func buildTelephoneData(extracted map[string]any) map[string]any {
	return map[string]any{
		"fournisseur": strDefault(
			resolve.FirstTruthy(extracted["fournisseur"], resolve.Get(extracted, "telephone", "operateur")), ""),
		"forfait_nom": strDefault(
			resolve.FirstTruthy(resolve.Get(extracted, "telephone", "forfait"), extracted["forfait_nom"]), ""),
		"data_go": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "telephone", "data_go"), extracted["data_go"])),
		"minutes": strDefault(extracted["minutes"], "illimité"),
		"sms":     strDefault(extracted["sms"], "illimité"),
		"prix_mensuel": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "telephone", "prix_mensuel"), extracted["prix_mensuel"])),
		"engagement_mois": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "telephone", "engagement_mois"), extracted["engagement_mois"])),
		"date_debut": ymdOrToday(
			resolve.FirstTruthy(resolve.Get(extracted, "dates", "date_debut"), extracted["date_debut"])),
		"date_anniversaire": ymdOrToday(
			resolve.FirstTruthy(resolve.Get(extracted, "dates", "date_anniversaire"), extracted["date_anniversaire"])),
		"options": listOrEmpty(
			resolve.FirstTruthy(resolve.Get(extracted, "telephone", "options"), extracted["options"])),
		"conditions_particulieres": str(extracted["conditions_particulieres"]),
	}
}

func buildPNOData(extracted map[string]any) map[string]any {
	return map[string]any{
		"assureur": strDefault(
			resolve.FirstTruthy(
				resolve.Get(extracted, "assurance", "assureur"),
				extracted["assureur"],
				extracted["fournisseur"],
			), ""),
		"numero_contrat": strDefault(
			resolve.FirstTruthy(
				resolve.Get(extracted, "assurance", "numero_police"),
				extracted["numero_contrat"],
			), ""),
		"bien_assure": map[string]any{
			"adresse": strDefault(
				resolve.FirstTruthy(
					resolve.Get(extracted, "assurance", "adresse_bien"),
					resolve.Get(extracted, "bien_assure", "adresse"),
				), ""),
			"type": strDefault(
				resolve.FirstTruthy(
					resolve.Get(extracted, "assurance", "type_bien"),
					resolve.Get(extracted, "bien_assure", "type"),
				), ""),
			"surface_m2": resolve.NumberOrZero(
				resolve.FirstTruthy(
					resolve.Get(extracted, "assurance", "surface_m2"),
					resolve.Get(extracted, "bien_assure", "surface_m2"),
				)),
			"nombre_pieces": resolve.NumberOrZero(resolve.Get(extracted, "bien_assure", "nombre_pieces")),
		},
		// Legacy extractions carried a per-risk amount map, newer ones a
		// plain list; both are stored as-is.
		"garanties": resolve.FirstTruthy(
			extracted["garanties"],
			resolve.Get(extracted, "assurance", "garanties"),
		),
		"franchise": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "assurance", "franchise"), extracted["franchise"])),
		"prime_annuelle": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "assurance", "prime_annuelle"), extracted["prime_annuelle"])),
		"prime_mensuelle": resolve.NumberOrZero(
			resolve.FirstTruthy(resolve.Get(extracted, "assurance", "prime_mensuelle"), extracted["prime_mensuelle"])),
		"date_effet": ymdOrToday(
			resolve.FirstTruthy(resolve.Get(extracted, "dates", "date_debut"), extracted["date_effet"])),
		"date_anniversaire": ymdOrToday(
			resolve.FirstTruthy(resolve.Get(extracted, "dates", "date_anniversaire"), extracted["date_anniversaire"])),
		"conditions_particulieres": str(extracted["conditions_particulieres"]),
	}
}

func buildHabitationData(extracted map[string]any) map[string]any {
	bien, _ := extracted["bien_assure"].(map[string]any)

	return map[string]any{
		"assureur":       str(extracted["assureur"]),
		"numero_contrat": str(extracted["numero_contrat"]),
		"bien_assure": map[string]any{
			"adresse":       str(resolve.Get(bien, "adresse")),
			"type_logement": str(resolve.Get(bien, "type_logement")),
			"surface_m2":    resolve.NumberOrZero(resolve.Get(bien, "surface_m2")),
			"nombre_pieces": resolve.NumberOrZero(resolve.Get(bien, "nombre_pieces")),
			"cheminee":      boolOf(resolve.Get(bien, "cheminee")),
			"piscine":       boolOf(resolve.Get(bien, "piscine")),
			"veranda":       boolOf(resolve.Get(bien, "veranda")),
			"dependances":   boolOf(resolve.Get(bien, "dependances")),
		},
		"garanties_incluses": listOrEmpty(extracted["garanties_incluses"]),
		"tarifs": map[string]any{
			"prime_annuelle_ttc":  resolve.NumberOrZero(resolve.Get(extracted, "tarifs", "prime_annuelle_ttc")),
			"prime_mensuelle_ttc": resolve.NumberOrZero(resolve.Get(extracted, "tarifs", "prime_mensuelle_ttc")),
		},
		"franchises": map[string]any{
			"franchise_generale": resolve.NumberOrZero(resolve.Get(extracted, "franchises", "franchise_generale")),
		},
		// Habitation keeps its dates nested and in DD/MM/YYYY, unlike
		// the other types. Historical inconsistency, preserved.
		"dates": map[string]any{
			"date_debut":        dmyOrToday(resolve.Get(extracted, "dates", "date_debut")),
			"date_anniversaire": dmyOrToday(resolve.Get(extracted, "dates", "date_anniversaire")),
		},
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func strDefault(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func boolOf(v any) bool {
	b, _ := v.(bool)
	return b
}

func listOrEmpty(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return []any{}
}

func ymdOrToday(v any) string {
	if t, err := utils.ParseFlexibleDate(str(v)); err == nil {
		return t.Format("2006-01-02")
	}
	return time.Now().Format("2006-01-02")
}

func dmyOrToday(v any) string {
	if t, err := utils.ParseFlexibleDate(str(v)); err == nil {
		return t.Format("02/01/2006")
	}
	return time.Now().Format("02/01/2006")
}
