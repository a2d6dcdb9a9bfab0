// Code generated by ent, DO NOT EDIT.

package extractionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFilename, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldContractType, v))
}

// GptPrompt applies equality check predicate on the "gpt_prompt" field. It's identical to GptPromptEQ.
func GptPrompt(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldGptPrompt, v))
}

// GptResponse applies equality check predicate on the "gpt_response" field. It's identical to GptResponseEQ.
func GptResponse(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldGptResponse, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldFilename, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldContractType, v))
}

// GptPromptEQ applies the EQ predicate on the "gpt_prompt" field.
func GptPromptEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldGptPrompt, v))
}

// GptPromptNEQ applies the NEQ predicate on the "gpt_prompt" field.
func GptPromptNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldGptPrompt, v))
}

// GptPromptIn applies the In predicate on the "gpt_prompt" field.
func GptPromptIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldGptPrompt, vs...))
}

// GptPromptNotIn applies the NotIn predicate on the "gpt_prompt" field.
func GptPromptNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldGptPrompt, vs...))
}

// GptPromptGT applies the GT predicate on the "gpt_prompt" field.
func GptPromptGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldGptPrompt, v))
}

// GptPromptGTE applies the GTE predicate on the "gpt_prompt" field.
func GptPromptGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldGptPrompt, v))
}

// GptPromptLT applies the LT predicate on the "gpt_prompt" field.
func GptPromptLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldGptPrompt, v))
}

// GptPromptLTE applies the LTE predicate on the "gpt_prompt" field.
func GptPromptLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldGptPrompt, v))
}

// GptPromptContains applies the Contains predicate on the "gpt_prompt" field.
func GptPromptContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldGptPrompt, v))
}

// GptPromptHasPrefix applies the HasPrefix predicate on the "gpt_prompt" field.
func GptPromptHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldGptPrompt, v))
}

// GptPromptHasSuffix applies the HasSuffix predicate on the "gpt_prompt" field.
func GptPromptHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldGptPrompt, v))
}

// GptPromptEqualFold applies the EqualFold predicate on the "gpt_prompt" field.
func GptPromptEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldGptPrompt, v))
}

// GptPromptContainsFold applies the ContainsFold predicate on the "gpt_prompt" field.
func GptPromptContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldGptPrompt, v))
}

// GptResponseEQ applies the EQ predicate on the "gpt_response" field.
func GptResponseEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldGptResponse, v))
}

// GptResponseNEQ applies the NEQ predicate on the "gpt_response" field.
func GptResponseNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldGptResponse, v))
}

// GptResponseIn applies the In predicate on the "gpt_response" field.
func GptResponseIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldGptResponse, vs...))
}

// GptResponseNotIn applies the NotIn predicate on the "gpt_response" field.
func GptResponseNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldGptResponse, vs...))
}

// GptResponseGT applies the GT predicate on the "gpt_response" field.
func GptResponseGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldGptResponse, v))
}

// GptResponseGTE applies the GTE predicate on the "gpt_response" field.
func GptResponseGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldGptResponse, v))
}

// GptResponseLT applies the LT predicate on the "gpt_response" field.
func GptResponseLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldGptResponse, v))
}

// GptResponseLTE applies the LTE predicate on the "gpt_response" field.
func GptResponseLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldGptResponse, v))
}

// GptResponseContains applies the Contains predicate on the "gpt_response" field.
func GptResponseContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldGptResponse, v))
}

// GptResponseHasPrefix applies the HasPrefix predicate on the "gpt_response" field.
func GptResponseHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldGptResponse, v))
}

// GptResponseHasSuffix applies the HasSuffix predicate on the "gpt_response" field.
func GptResponseHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldGptResponse, v))
}

// GptResponseEqualFold applies the EqualFold predicate on the "gpt_response" field.
func GptResponseEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldGptResponse, v))
}

// GptResponseContainsFold applies the ContainsFold predicate on the "gpt_response" field.
func GptResponseContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldGptResponse, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldExtractedData))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionLog) predicate.ExtractionLog {
	return predicate.ExtractionLog(sql.NotPredicates(p))
}
