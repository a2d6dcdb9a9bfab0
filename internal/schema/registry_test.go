package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperrin/gardetonor/constants"
)

func TestForTypeCommonBase(t *testing.T) {
	for _, ct := range []constants.ContractType{
		constants.Electricite, constants.Gaz, constants.Telephone,
		constants.AssurancePNO, constants.AssuranceHabitation,
	} {
		tpl := ForType(ct)
		assert.Equal(t, string(ct), tpl["type_contrat"], "type_contrat for %s", ct)
		assert.Contains(t, tpl, "fournisseur")
		assert.Contains(t, tpl, "dates")
		assert.Contains(t, tpl, "paiements")
	}
}

func TestForTypeElectricity(t *testing.T) {
	tpl := ForType(constants.Electricite)

	elec, ok := tpl["electricite"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, elec, "pdl")
	assert.Contains(t, elec, "matricule_compteur")

	tarifs, ok := elec["tarifs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tarifs, "abonnement_mensuel_ttc")
	assert.Contains(t, tarifs, "prix_kwh_ttc")

	assert.NotContains(t, tpl, "gaz")
}

func TestForTypeGas(t *testing.T) {
	tpl := ForType(constants.Gaz)

	gaz, ok := tpl["gaz"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, gaz, "pce")
	assert.Contains(t, gaz, "zone_tarifaire")
	assert.NotContains(t, tpl, "electricite")
}

func TestForTypeTelephone(t *testing.T) {
	tpl := ForType(constants.Telephone)

	tel, ok := tpl["telephone"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, tel, "forfait")
	assert.Contains(t, tel, "data_go")
	assert.Contains(t, tel, "engagement_mois")
}

func TestForTypeHabitation(t *testing.T) {
	tpl := ForType(constants.AssuranceHabitation)

	bien, ok := tpl["bien_assure"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, bien, "surface_m2")
	assert.Contains(t, bien, "piscine")

	assert.Contains(t, tpl, "garanties_incluses")
	assert.Contains(t, tpl, "franchises")
	assert.Contains(t, tpl, "tarifs")
}

func TestForTypeAutoDetectHasBothEnergies(t *testing.T) {
	tpl := ForType(constants.AutoDetect)

	elec, ok := tpl["electricite"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, elec, "pdl")

	gaz, ok := tpl["gaz"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, gaz, "pce")
}
