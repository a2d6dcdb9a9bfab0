// Package schema holds the canonical extraction shape per contract type.
// The trees below are pure data: they are embedded verbatim in the
// extraction prompt and drive the advisory validation of oracle output.
package schema

import (
	"github.com/aperrin/gardetonor/constants"
)

// ForType returns the canonical nested shape the extraction step must
// target for the given contract type. Placeholder conventions: "" for
// strings the oracle should fill, nil for numbers, false for booleans,
// empty slices for lists. Unknown fields must come back as null.
func ForType(contractType constants.ContractType) map[string]any {
	base := map[string]any{
		"type_contrat":   string(contractType),
		"fournisseur":    "",
		"numero_contrat": "",
		"client": map[string]any{
			"noms":             []any{},
			"email":            "",
			"telephone":        "",
			"date_naissance":   "",
			"reference_client": "",
		},
		"dates": map[string]any{
			"signature_contrat":   "",
			"date_debut":          "",
			"date_anniversaire":   "",
			"retractation_limite": "",
		},
		"paiements": map[string]any{
			"mode":             "",
			"date_prelevement": "",
		},
		"service_client": map[string]any{
			"tel_souscription":    "",
			"tel_service_client":  "",
			"contact_courrier":    "",
		},
	}

	switch contractType {
	case constants.Electricite:
		base["adresses"] = consumptionAddresses()
		base["electricite"] = map[string]any{
			"pdl":                      "",
			"puissance_souscrite_kva":  nil,
			"option_tarifaire":         "",
			"matricule_compteur":       "",
			"date_debut_previsionnelle": "",
			"tarifs":                   energyTariffs(),
			"promotion":                energyPromotion(),
			"consommation_estimee_annuelle_kwh": nil,
			"budget_annuel_estime_ttc":          nil,
		}
		base["paiements"] = map[string]any{
			"mensualite_electricite_ttc": nil,
			"mode":                       "",
			"date_prelevement":           "",
		}

	case constants.Gaz:
		base["adresses"] = consumptionAddresses()
		base["gaz"] = map[string]any{
			"pce":                      "",
			"option_tarifaire":         "",
			"zone_tarifaire":           nil,
			"matricule_compteur":       "",
			"date_debut_previsionnelle": "",
			"tarifs":                   energyTariffs(),
			"promotion":                energyPromotion(),
			"consommation_estimee_annuelle_kwh": nil,
			"budget_annuel_estime_ttc":          nil,
		}
		base["paiements"] = map[string]any{
			"mensualite_gaz_ttc": nil,
			"mode":               "",
			"date_prelevement":   "",
		}

	case constants.Telephone:
		base["telephone"] = map[string]any{
			"operateur":        "",
			"numero":           "",
			"forfait":          "",
			"data_go":          nil,
			"appels_illimites": false,
			"sms_illimites":    false,
			"prix_mensuel":     nil,
			"engagement_mois":  nil,
			"options":          []any{},
		}

	case constants.AssurancePNO:
		base["assurance"] = map[string]any{
			"assureur":         "",
			"numero_police":    "",
			"type_bien":        "",
			"adresse_bien":     "",
			"surface_m2":       nil,
			"garanties":        []any{},
			"franchise":        nil,
			"capital_mobilier": nil,
			"prime_annuelle":   nil,
			"prime_mensuelle":  nil,
		}

	case constants.AssuranceHabitation:
		base["assureur"] = ""
		base["bien_assure"] = map[string]any{
			"adresse":          "",
			"type_logement":    "",
			"statut_occupant":  "",
			"residence":        "",
			"surface_m2":       nil,
			"nombre_pieces":    nil,
			"dependances":      false,
			"veranda":          false,
			"cheminee":         false,
			"piscine":          false,
			"systeme_securite": false,
		}
		base["garanties_incluses"] = []any{}
		base["capitaux"] = map[string]any{
			"capital_mobilier": nil,
			"objets_valeur":    nil,
		}
		base["franchises"] = map[string]any{
			"franchise_generale": nil,
			"franchise_cat_nat":  nil,
		}
		base["tarifs"] = map[string]any{
			"prime_annuelle_ttc":  nil,
			"prime_mensuelle_ttc": nil,
			"frais_dossier":       nil,
		}

	case constants.AutoDetect:
		// Combined energy documents: ask for both sub-objects so the real
		// type can be resolved afterwards from pdl/pce presence.
		base["adresses"] = consumptionAddresses()
		elec := ForType(constants.Electricite)
		gaz := ForType(constants.Gaz)
		base["electricite"] = elec["electricite"]
		base["gaz"] = gaz["gaz"]
	}

	return base
}

func consumptionAddresses() map[string]any {
	return map[string]any{
		"site_de_consommation": "",
		"adresse_facturation":  "",
	}
}

func energyTariffs() map[string]any {
	return map[string]any{
		"abonnement_mensuel_ttc": nil,
		"prix_kwh_ht":            nil,
		"prix_kwh_ttc":           nil,
	}
}

func energyPromotion() map[string]any {
	return map[string]any{
		"remise_kwh_ht_percent": nil,
		"duree_mois":            nil,
	}
}
