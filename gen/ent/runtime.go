// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aperrin/gardetonor/db/ent/schema"
	"github.com/aperrin/gardetonor/gen/ent/comparison"
	"github.com/aperrin/gardetonor/gen/ent/contract"
	"github.com/aperrin/gardetonor/gen/ent/extractionlog"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	comparisonFields := schema.Comparison{}.Fields()
	_ = comparisonFields
	// comparisonDescComparisonType is the schema descriptor for comparison_type field.
	comparisonDescComparisonType := comparisonFields[2].Descriptor()
	// comparison.ComparisonTypeValidator is a validator for the "comparison_type" field. It is called by the builders before save.
	comparison.ComparisonTypeValidator = func() func(string) error {
		validators := comparisonDescComparisonType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(comparison_type string) error {
			for _, fn := range fns {
				if err := fn(comparison_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// comparisonDescGptPrompt is the schema descriptor for gpt_prompt field.
	comparisonDescGptPrompt := comparisonFields[6].Descriptor()
	// comparison.GptPromptValidator is a validator for the "gpt_prompt" field. It is called by the builders before save.
	comparison.GptPromptValidator = comparisonDescGptPrompt.Validators[0].(func(string) error)
	// comparisonDescGptResponse is the schema descriptor for gpt_response field.
	comparisonDescGptResponse := comparisonFields[7].Descriptor()
	// comparison.GptResponseValidator is a validator for the "gpt_response" field. It is called by the builders before save.
	comparison.GptResponseValidator = comparisonDescGptResponse.Validators[0].(func(string) error)
	// comparisonDescCreatedAt is the schema descriptor for created_at field.
	comparisonDescCreatedAt := comparisonFields[10].Descriptor()
	// comparison.DefaultCreatedAt holds the default value on creation for the created_at field.
	comparison.DefaultCreatedAt = comparisonDescCreatedAt.Default.(func() time.Time)
	// comparisonDescID is the schema descriptor for id field.
	comparisonDescID := comparisonFields[0].Descriptor()
	// comparison.DefaultID holds the default value on creation for the id field.
	comparison.DefaultID = comparisonDescID.Default.(func() uuid.UUID)
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescContractType is the schema descriptor for contract_type field.
	contractDescContractType := contractFields[1].Descriptor()
	// contract.ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	contract.ContractTypeValidator = func() func(string) error {
		validators := contractDescContractType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(contract_type string) error {
			for _, fn := range fns {
				if err := fn(contract_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescProvider is the schema descriptor for provider field.
	contractDescProvider := contractFields[2].Descriptor()
	// contract.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	contract.ProviderValidator = contractDescProvider.Validators[0].(func(string) error)
	// contractDescValidated is the schema descriptor for validated field.
	contractDescValidated := contractFields[9].Descriptor()
	// contract.DefaultValidated holds the default value on creation for the validated field.
	contract.DefaultValidated = contractDescValidated.Default.(bool)
	// contractDescIsSimulation is the schema descriptor for is_simulation field.
	contractDescIsSimulation := contractFields[10].Descriptor()
	// contract.DefaultIsSimulation holds the default value on creation for the is_simulation field.
	contract.DefaultIsSimulation = contractDescIsSimulation.Default.(bool)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[11].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[12].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	extractionlogFields := schema.ExtractionLog{}.Fields()
	_ = extractionlogFields
	// extractionlogDescFilename is the schema descriptor for filename field.
	extractionlogDescFilename := extractionlogFields[1].Descriptor()
	// extractionlog.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	extractionlog.FilenameValidator = extractionlogDescFilename.Validators[0].(func(string) error)
	// extractionlogDescContractType is the schema descriptor for contract_type field.
	extractionlogDescContractType := extractionlogFields[2].Descriptor()
	// extractionlog.ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	extractionlog.ContractTypeValidator = extractionlogDescContractType.Validators[0].(func(string) error)
	// extractionlogDescGptPrompt is the schema descriptor for gpt_prompt field.
	extractionlogDescGptPrompt := extractionlogFields[3].Descriptor()
	// extractionlog.GptPromptValidator is a validator for the "gpt_prompt" field. It is called by the builders before save.
	extractionlog.GptPromptValidator = extractionlogDescGptPrompt.Validators[0].(func(string) error)
	// extractionlogDescGptResponse is the schema descriptor for gpt_response field.
	extractionlogDescGptResponse := extractionlogFields[4].Descriptor()
	// extractionlog.GptResponseValidator is a validator for the "gpt_response" field. It is called by the builders before save.
	extractionlog.GptResponseValidator = extractionlogDescGptResponse.Validators[0].(func(string) error)
	// extractionlogDescSuccess is the schema descriptor for success field.
	extractionlogDescSuccess := extractionlogFields[6].Descriptor()
	// extractionlog.DefaultSuccess holds the default value on creation for the success field.
	extractionlog.DefaultSuccess = extractionlogDescSuccess.Default.(bool)
	// extractionlogDescCreatedAt is the schema descriptor for created_at field.
	extractionlogDescCreatedAt := extractionlogFields[8].Descriptor()
	// extractionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionlog.DefaultCreatedAt = extractionlogDescCreatedAt.Default.(func() time.Time)
	// extractionlogDescID is the schema descriptor for id field.
	extractionlogDescID := extractionlogFields[0].Descriptor()
	// extractionlog.DefaultID holds the default value on creation for the id field.
	extractionlog.DefaultID = extractionlogDescID.Default.(func() uuid.UUID)
}
