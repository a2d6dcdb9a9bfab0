// Code generated by ent, DO NOT EDIT.

package comparison

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/aperrin/gardetonor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldContractID, v))
}

// ComparisonType applies equality check predicate on the "comparison_type" field. It's identical to ComparisonTypeEQ.
func ComparisonType(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldComparisonType, v))
}

// CompetitorFilename applies equality check predicate on the "competitor_filename" field. It's identical to CompetitorFilenameEQ.
func CompetitorFilename(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCompetitorFilename, v))
}

// CompetitorPdf applies equality check predicate on the "competitor_pdf" field. It's identical to CompetitorPdfEQ.
func CompetitorPdf(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCompetitorPdf, v))
}

// GptPrompt applies equality check predicate on the "gpt_prompt" field. It's identical to GptPromptEQ.
func GptPrompt(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldGptPrompt, v))
}

// GptResponse applies equality check predicate on the "gpt_response" field. It's identical to GptResponseEQ.
func GptResponse(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldGptResponse, v))
}

// AnalysisSummary applies equality check predicate on the "analysis_summary" field. It's identical to AnalysisSummaryEQ.
func AnalysisSummary(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldAnalysisSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCreatedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldContractID, vs...))
}

// ComparisonTypeEQ applies the EQ predicate on the "comparison_type" field.
func ComparisonTypeEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldComparisonType, v))
}

// ComparisonTypeNEQ applies the NEQ predicate on the "comparison_type" field.
func ComparisonTypeNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldComparisonType, v))
}

// ComparisonTypeIn applies the In predicate on the "comparison_type" field.
func ComparisonTypeIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldComparisonType, vs...))
}

// ComparisonTypeNotIn applies the NotIn predicate on the "comparison_type" field.
func ComparisonTypeNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldComparisonType, vs...))
}

// ComparisonTypeGT applies the GT predicate on the "comparison_type" field.
func ComparisonTypeGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldComparisonType, v))
}

// ComparisonTypeGTE applies the GTE predicate on the "comparison_type" field.
func ComparisonTypeGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldComparisonType, v))
}

// ComparisonTypeLT applies the LT predicate on the "comparison_type" field.
func ComparisonTypeLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldComparisonType, v))
}

// ComparisonTypeLTE applies the LTE predicate on the "comparison_type" field.
func ComparisonTypeLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldComparisonType, v))
}

// ComparisonTypeContains applies the Contains predicate on the "comparison_type" field.
func ComparisonTypeContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldComparisonType, v))
}

// ComparisonTypeHasPrefix applies the HasPrefix predicate on the "comparison_type" field.
func ComparisonTypeHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldComparisonType, v))
}

// ComparisonTypeHasSuffix applies the HasSuffix predicate on the "comparison_type" field.
func ComparisonTypeHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldComparisonType, v))
}

// ComparisonTypeEqualFold applies the EqualFold predicate on the "comparison_type" field.
func ComparisonTypeEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldComparisonType, v))
}

// ComparisonTypeContainsFold applies the ContainsFold predicate on the "comparison_type" field.
func ComparisonTypeContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldComparisonType, v))
}

// CompetitorFilenameEQ applies the EQ predicate on the "competitor_filename" field.
func CompetitorFilenameEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCompetitorFilename, v))
}

// CompetitorFilenameNEQ applies the NEQ predicate on the "competitor_filename" field.
func CompetitorFilenameNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldCompetitorFilename, v))
}

// CompetitorFilenameIn applies the In predicate on the "competitor_filename" field.
func CompetitorFilenameIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldCompetitorFilename, vs...))
}

// CompetitorFilenameNotIn applies the NotIn predicate on the "competitor_filename" field.
func CompetitorFilenameNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldCompetitorFilename, vs...))
}

// CompetitorFilenameGT applies the GT predicate on the "competitor_filename" field.
func CompetitorFilenameGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldCompetitorFilename, v))
}

// CompetitorFilenameGTE applies the GTE predicate on the "competitor_filename" field.
func CompetitorFilenameGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldCompetitorFilename, v))
}

// CompetitorFilenameLT applies the LT predicate on the "competitor_filename" field.
func CompetitorFilenameLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldCompetitorFilename, v))
}

// CompetitorFilenameLTE applies the LTE predicate on the "competitor_filename" field.
func CompetitorFilenameLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldCompetitorFilename, v))
}

// CompetitorFilenameContains applies the Contains predicate on the "competitor_filename" field.
func CompetitorFilenameContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldCompetitorFilename, v))
}

// CompetitorFilenameHasPrefix applies the HasPrefix predicate on the "competitor_filename" field.
func CompetitorFilenameHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldCompetitorFilename, v))
}

// CompetitorFilenameHasSuffix applies the HasSuffix predicate on the "competitor_filename" field.
func CompetitorFilenameHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldCompetitorFilename, v))
}

// CompetitorFilenameIsNil applies the IsNil predicate on the "competitor_filename" field.
func CompetitorFilenameIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldCompetitorFilename))
}

// CompetitorFilenameNotNil applies the NotNil predicate on the "competitor_filename" field.
func CompetitorFilenameNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldCompetitorFilename))
}

// CompetitorFilenameEqualFold applies the EqualFold predicate on the "competitor_filename" field.
func CompetitorFilenameEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldCompetitorFilename, v))
}

// CompetitorFilenameContainsFold applies the ContainsFold predicate on the "competitor_filename" field.
func CompetitorFilenameContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldCompetitorFilename, v))
}

// CompetitorPdfEQ applies the EQ predicate on the "competitor_pdf" field.
func CompetitorPdfEQ(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCompetitorPdf, v))
}

// CompetitorPdfNEQ applies the NEQ predicate on the "competitor_pdf" field.
func CompetitorPdfNEQ(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldCompetitorPdf, v))
}

// CompetitorPdfIn applies the In predicate on the "competitor_pdf" field.
func CompetitorPdfIn(vs ...[]byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldCompetitorPdf, vs...))
}

// CompetitorPdfNotIn applies the NotIn predicate on the "competitor_pdf" field.
func CompetitorPdfNotIn(vs ...[]byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldCompetitorPdf, vs...))
}

// CompetitorPdfGT applies the GT predicate on the "competitor_pdf" field.
func CompetitorPdfGT(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldCompetitorPdf, v))
}

// CompetitorPdfGTE applies the GTE predicate on the "competitor_pdf" field.
func CompetitorPdfGTE(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldCompetitorPdf, v))
}

// CompetitorPdfLT applies the LT predicate on the "competitor_pdf" field.
func CompetitorPdfLT(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldCompetitorPdf, v))
}

// CompetitorPdfLTE applies the LTE predicate on the "competitor_pdf" field.
func CompetitorPdfLTE(v []byte) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldCompetitorPdf, v))
}

// CompetitorPdfIsNil applies the IsNil predicate on the "competitor_pdf" field.
func CompetitorPdfIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldCompetitorPdf))
}

// CompetitorPdfNotNil applies the NotNil predicate on the "competitor_pdf" field.
func CompetitorPdfNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldCompetitorPdf))
}

// CompetitorDataIsNil applies the IsNil predicate on the "competitor_data" field.
func CompetitorDataIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldCompetitorData))
}

// CompetitorDataNotNil applies the NotNil predicate on the "competitor_data" field.
func CompetitorDataNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldCompetitorData))
}

// GptPromptEQ applies the EQ predicate on the "gpt_prompt" field.
func GptPromptEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldGptPrompt, v))
}

// GptPromptNEQ applies the NEQ predicate on the "gpt_prompt" field.
func GptPromptNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldGptPrompt, v))
}

// GptPromptIn applies the In predicate on the "gpt_prompt" field.
func GptPromptIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldGptPrompt, vs...))
}

// GptPromptNotIn applies the NotIn predicate on the "gpt_prompt" field.
func GptPromptNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldGptPrompt, vs...))
}

// GptPromptGT applies the GT predicate on the "gpt_prompt" field.
func GptPromptGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldGptPrompt, v))
}

// GptPromptGTE applies the GTE predicate on the "gpt_prompt" field.
func GptPromptGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldGptPrompt, v))
}

// GptPromptLT applies the LT predicate on the "gpt_prompt" field.
func GptPromptLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldGptPrompt, v))
}

// GptPromptLTE applies the LTE predicate on the "gpt_prompt" field.
func GptPromptLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldGptPrompt, v))
}

// GptPromptContains applies the Contains predicate on the "gpt_prompt" field.
func GptPromptContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldGptPrompt, v))
}

// GptPromptHasPrefix applies the HasPrefix predicate on the "gpt_prompt" field.
func GptPromptHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldGptPrompt, v))
}

// GptPromptHasSuffix applies the HasSuffix predicate on the "gpt_prompt" field.
func GptPromptHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldGptPrompt, v))
}

// GptPromptEqualFold applies the EqualFold predicate on the "gpt_prompt" field.
func GptPromptEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldGptPrompt, v))
}

// GptPromptContainsFold applies the ContainsFold predicate on the "gpt_prompt" field.
func GptPromptContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldGptPrompt, v))
}

// GptResponseEQ applies the EQ predicate on the "gpt_response" field.
func GptResponseEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldGptResponse, v))
}

// GptResponseNEQ applies the NEQ predicate on the "gpt_response" field.
func GptResponseNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldGptResponse, v))
}

// GptResponseIn applies the In predicate on the "gpt_response" field.
func GptResponseIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldGptResponse, vs...))
}

// GptResponseNotIn applies the NotIn predicate on the "gpt_response" field.
func GptResponseNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldGptResponse, vs...))
}

// GptResponseGT applies the GT predicate on the "gpt_response" field.
func GptResponseGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldGptResponse, v))
}

// GptResponseGTE applies the GTE predicate on the "gpt_response" field.
func GptResponseGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldGptResponse, v))
}

// GptResponseLT applies the LT predicate on the "gpt_response" field.
func GptResponseLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldGptResponse, v))
}

// GptResponseLTE applies the LTE predicate on the "gpt_response" field.
func GptResponseLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldGptResponse, v))
}

// GptResponseContains applies the Contains predicate on the "gpt_response" field.
func GptResponseContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldGptResponse, v))
}

// GptResponseHasPrefix applies the HasPrefix predicate on the "gpt_response" field.
func GptResponseHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldGptResponse, v))
}

// GptResponseHasSuffix applies the HasSuffix predicate on the "gpt_response" field.
func GptResponseHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldGptResponse, v))
}

// GptResponseEqualFold applies the EqualFold predicate on the "gpt_response" field.
func GptResponseEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldGptResponse, v))
}

// GptResponseContainsFold applies the ContainsFold predicate on the "gpt_response" field.
func GptResponseContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldGptResponse, v))
}

// ComparisonResultIsNil applies the IsNil predicate on the "comparison_result" field.
func ComparisonResultIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldComparisonResult))
}

// ComparisonResultNotNil applies the NotNil predicate on the "comparison_result" field.
func ComparisonResultNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldComparisonResult))
}

// AnalysisSummaryEQ applies the EQ predicate on the "analysis_summary" field.
func AnalysisSummaryEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldAnalysisSummary, v))
}

// AnalysisSummaryNEQ applies the NEQ predicate on the "analysis_summary" field.
func AnalysisSummaryNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldAnalysisSummary, v))
}

// AnalysisSummaryIn applies the In predicate on the "analysis_summary" field.
func AnalysisSummaryIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldAnalysisSummary, vs...))
}

// AnalysisSummaryNotIn applies the NotIn predicate on the "analysis_summary" field.
func AnalysisSummaryNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldAnalysisSummary, vs...))
}

// AnalysisSummaryGT applies the GT predicate on the "analysis_summary" field.
func AnalysisSummaryGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldAnalysisSummary, v))
}

// AnalysisSummaryGTE applies the GTE predicate on the "analysis_summary" field.
func AnalysisSummaryGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldAnalysisSummary, v))
}

// AnalysisSummaryLT applies the LT predicate on the "analysis_summary" field.
func AnalysisSummaryLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldAnalysisSummary, v))
}

// AnalysisSummaryLTE applies the LTE predicate on the "analysis_summary" field.
func AnalysisSummaryLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldAnalysisSummary, v))
}

// AnalysisSummaryContains applies the Contains predicate on the "analysis_summary" field.
func AnalysisSummaryContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldAnalysisSummary, v))
}

// AnalysisSummaryHasPrefix applies the HasPrefix predicate on the "analysis_summary" field.
func AnalysisSummaryHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldAnalysisSummary, v))
}

// AnalysisSummaryHasSuffix applies the HasSuffix predicate on the "analysis_summary" field.
func AnalysisSummaryHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldAnalysisSummary, v))
}

// AnalysisSummaryIsNil applies the IsNil predicate on the "analysis_summary" field.
func AnalysisSummaryIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldAnalysisSummary))
}

// AnalysisSummaryNotNil applies the NotNil predicate on the "analysis_summary" field.
func AnalysisSummaryNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldAnalysisSummary))
}

// AnalysisSummaryEqualFold applies the EqualFold predicate on the "analysis_summary" field.
func AnalysisSummaryEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldAnalysisSummary, v))
}

// AnalysisSummaryContainsFold applies the ContainsFold predicate on the "analysis_summary" field.
func AnalysisSummaryContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldAnalysisSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldCreatedAt, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Comparison {
	return predicate.Comparison(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Comparison {
	return predicate.Comparison(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.NotPredicates(p))
}
