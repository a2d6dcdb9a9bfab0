package constants

import "strings"

// ContractType identifies the service category of a contract.
type ContractType string

// Stable values (store these exact strings in DB).
const (
	Telephone           ContractType = "telephone"
	AssurancePNO        ContractType = "assurance_pno"
	AssuranceHabitation ContractType = "assurance_habitation"
	Electricite         ContractType = "electricite"
	Gaz                 ContractType = "gaz"

	// AutoDetect is an input-only pseudo type: extraction runs with the combined
	// energy schema and the real type is resolved from the extracted data.
	AutoDetect ContractType = "auto"

	// ElectriciteGaz is a resolution result for combined energy documents; two
	// separate contracts are created, it is never stored as a contract_type.
	ElectriciteGaz ContractType = "electricite_gaz"
)

var allContractTypes = []ContractType{
	Telephone,
	AssurancePNO,
	AssuranceHabitation,
	Electricite,
	Gaz,
}

// ContractTypes returns the storable contract types as strings.
func ContractTypes() []string {
	result := make([]string, len(allContractTypes))
	for i, ct := range allContractTypes {
		result[i] = string(ct)
	}
	return result
}

// ParseContractType validates a storable contract type string.
func ParseContractType(input string) (ContractType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, ct := range allContractTypes {
		if normalized == string(ct) {
			return ct, true
		}
	}
	return "", false
}

// IsEnergy reports whether the type has a tariff/consumption cost model.
func IsEnergy(ct ContractType) bool {
	return ct == Electricite || ct == Gaz
}

// IsInsurance reports whether the type has a premium cost model.
func IsInsurance(ct ContractType) bool {
	return ct == AssurancePNO || ct == AssuranceHabitation
}
