package comparison

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aperrin/gardetonor/constants"
	"github.com/aperrin/gardetonor/internal/schema"
)

const marketSystemPrompt = "Tu es un expert en comparaison de contrats et d'offres commerciales. " +
	"Tu connais le marché français et ses tarifs actuels. " +
	"Fournis une analyse objective et des recommandations concrètes au format JSON."

const competitorSystemPrompt = "Tu es un expert en comparaison de contrats. " +
	"Analyse objectivement les deux offres et fournis une recommandation " +
	"claire au format JSON avec les avantages et inconvénients de chaque offre."

// Market comparisons are generative, competitor comparisons judgmental
// over fixed inputs; extraction runs colder than both.
const (
	marketTemperature     = 0.3
	competitorTemperature = 0.2
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func currentPeriod(now time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[now.Month()-1], now.Year())
}

// BuildMarketPrompt embeds the contract and the canonical offer shape,
// asking for two top-level keys: "analyse" (narrative and numeric
// fields) and "meilleure_offre" (a hypothetical superior offer shaped
// like the contract record, so the tabular comparison can read it with
// the same resolvers as the contract itself).
func BuildMarketPrompt(contractType constants.ContractType, contractData map[string]any, now time.Time) string {
	contractJSON := mustJSON(contractData)
	offerJSON := mustJSON(schema.ForType(contractType))

	return fmt.Sprintf(`Compare ce contrat de type '%s' avec les offres actuelles du marché français en %s.

CONTRAT ACTUEL :
%s

Retourne un JSON avec EXACTEMENT deux clés de premier niveau :

"analyse" : {
    "tarif_actuel": tarif actuel (nombre),
    "estimation_marche": {
        "tarif_min": tarif minimum trouvable pour des conditions similaires (nombre),
        "tarif_moyen": tarif moyen du marché (nombre),
        "tarif_max": tarif maximum (nombre)
    },
    "economie_potentielle_mensuelle": économie mensuelle possible en euros (nombre, peut être négative),
    "economie_potentielle_annuelle": économie annuelle possible en euros (nombre),
    "offres_similaires": [
        {
            "fournisseur": "nom",
            "offre": "nom de l'offre",
            "prix_mensuel": prix (nombre),
            "avantages": ["liste des avantages"],
            "inconvenients": ["liste des inconvénients"]
        }
    ],
    "recommandation": "recommendation claire (garder/changer)",
    "justification": "explication détaillée de la recommandation",
    "niveau_competitivite": "excellent/bon/moyen/faible"
}

"meilleure_offre" : la meilleure offre concurrente réelle, au même format que ce schéma :
%s

Base-toi sur les offres réelles des fournisseurs français.`,
		contractType, currentPeriod(now), contractJSON, offerJSON)
}

// BuildCompetitorPrompt compares the stored contract against an
// extracted competitor quote of the same type.
func BuildCompetitorPrompt(contractType constants.ContractType, current, competitor map[string]any) string {
	return fmt.Sprintf(`Compare ces deux contrats de type %s et fournis une analyse détaillée.

CONTRAT ACTUEL:
%s

OFFRE CONCURRENTE:
%s

Fournis une analyse comparative au format JSON avec:
{
    "comparaison_prix": {
        "prix_actuel": prix actuel (nombre),
        "prix_concurrent": prix concurrent (nombre),
        "difference_mensuelle": différence mensuelle en euros (nombre, positif = concurrent plus cher),
        "difference_annuelle": différence annuelle en euros (nombre),
        "economie_potentielle": économie si changement (nombre)
    },
    "comparaison_services": {
        "avantages_contrat_actuel": ["liste des avantages de l'offre actuelle"],
        "avantages_concurrent": ["liste des avantages de l'offre concurrente"],
        "services_identiques": ["liste des services identiques"],
        "differences_majeures": ["liste des différences importantes"]
    },
    "analyse_qualitative": {
        "qualite_actuelle": note sur 10 (nombre),
        "qualite_concurrent": note sur 10 (nombre),
        "rapport_qualite_prix_actuel": note sur 10 (nombre),
        "rapport_qualite_prix_concurrent": note sur 10 (nombre)
    },
    "points_vigilance": ["points importants à considérer avant de changer"],
    "recommandation": "recommendation claire (garder contrat actuel/changer pour concurrent)",
    "justification": "explication détaillée et argumentée de la recommandation",
    "score_global": {
        "contrat_actuel": note globale sur 10 (nombre),
        "offre_concurrente": note globale sur 10 (nombre)
    }
}`, contractType, mustJSON(current), mustJSON(competitor))
}

func mustJSON(m map[string]any) string {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
