package resolve

// Savings extracts the potential annual saving from a comparison
// result. Fallback order: annual key, monthly key times 12, the same
// pair nested under "analyse", then the competitor-mode
// comparaison_prix key as a catch-all. Resolves to 0 when nothing
// matches so sums over comparison history stay total.
func Savings(result map[string]any) float64 {
	if result == nil {
		return 0
	}

	if v, ok := Number(result["economie_potentielle_annuelle"]); ok && v != 0 {
		return v
	}
	if v, ok := Number(result["economie_potentielle_mensuelle"]); ok && v != 0 {
		return v * 12
	}
	if v, ok := Number(Get(result, "analyse", "economie_potentielle_annuelle")); ok && v != 0 {
		return v
	}
	if v, ok := Number(Get(result, "analyse", "economie_potentielle_mensuelle")); ok && v != 0 {
		return v * 12
	}
	if v, ok := Number(Get(result, "comparaison_prix", "economie_potentielle")); ok && v != 0 {
		return v
	}
	return 0
}
