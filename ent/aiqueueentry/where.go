// Code generated by ent, DO NOT EDIT.

package aiqueueentry

import (
	"time"

	"a11ysentinel.io/sentinel/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScanID applies equality check predicate on the "scan_id" field. It's identical to ScanIDEQ.
func ScanID(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldScanID, v))
}

// ReservationID applies equality check predicate on the "reservation_id" field. It's identical to ReservationIDEQ.
func ReservationID(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldReservationID, v))
}

// AiInputTokens applies equality check predicate on the "ai_input_tokens" field. It's identical to AiInputTokensEQ.
func AiInputTokens(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiInputTokens, v))
}

// AiOutputTokens applies equality check predicate on the "ai_output_tokens" field. It's identical to AiOutputTokensEQ.
func AiOutputTokens(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiOutputTokens, v))
}

// AiTotalTokens applies equality check predicate on the "ai_total_tokens" field. It's identical to AiTotalTokensEQ.
func AiTotalTokens(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiTotalTokens, v))
}

// AiModel applies equality check predicate on the "ai_model" field. It's identical to AiModelEQ.
func AiModel(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiModel, v))
}

// AiProcessingMs applies equality check predicate on the "ai_processing_ms" field. It's identical to AiProcessingMsEQ.
func AiProcessingMs(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiProcessingMs, v))
}

// AiProcessedAt applies equality check predicate on the "ai_processed_at" field. It's identical to AiProcessedAtEQ.
func AiProcessedAt(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// ScanIDEQ applies the EQ predicate on the "scan_id" field.
func ScanIDEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldScanID, v))
}

// ScanIDNEQ applies the NEQ predicate on the "scan_id" field.
func ScanIDNEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldScanID, v))
}

// ScanIDIn applies the In predicate on the "scan_id" field.
func ScanIDIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldScanID, vs...))
}

// ScanIDNotIn applies the NotIn predicate on the "scan_id" field.
func ScanIDNotIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldScanID, vs...))
}

// ScanIDGT applies the GT predicate on the "scan_id" field.
func ScanIDGT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldScanID, v))
}

// ScanIDGTE applies the GTE predicate on the "scan_id" field.
func ScanIDGTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldScanID, v))
}

// ScanIDLT applies the LT predicate on the "scan_id" field.
func ScanIDLT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldScanID, v))
}

// ScanIDLTE applies the LTE predicate on the "scan_id" field.
func ScanIDLTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldScanID, v))
}

// ScanIDContains applies the Contains predicate on the "scan_id" field.
func ScanIDContains(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContains(FieldScanID, v))
}

// ScanIDHasPrefix applies the HasPrefix predicate on the "scan_id" field.
func ScanIDHasPrefix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasPrefix(FieldScanID, v))
}

// ScanIDHasSuffix applies the HasSuffix predicate on the "scan_id" field.
func ScanIDHasSuffix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasSuffix(FieldScanID, v))
}

// ScanIDEqualFold applies the EqualFold predicate on the "scan_id" field.
func ScanIDEqualFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEqualFold(FieldScanID, v))
}

// ScanIDContainsFold applies the ContainsFold predicate on the "scan_id" field.
func ScanIDContainsFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContainsFold(FieldScanID, v))
}

// ReservationIDEQ applies the EQ predicate on the "reservation_id" field.
func ReservationIDEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldReservationID, v))
}

// ReservationIDNEQ applies the NEQ predicate on the "reservation_id" field.
func ReservationIDNEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldReservationID, v))
}

// ReservationIDIn applies the In predicate on the "reservation_id" field.
func ReservationIDIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldReservationID, vs...))
}

// ReservationIDNotIn applies the NotIn predicate on the "reservation_id" field.
func ReservationIDNotIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldReservationID, vs...))
}

// ReservationIDGT applies the GT predicate on the "reservation_id" field.
func ReservationIDGT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldReservationID, v))
}

// ReservationIDGTE applies the GTE predicate on the "reservation_id" field.
func ReservationIDGTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldReservationID, v))
}

// ReservationIDLT applies the LT predicate on the "reservation_id" field.
func ReservationIDLT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldReservationID, v))
}

// ReservationIDLTE applies the LTE predicate on the "reservation_id" field.
func ReservationIDLTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldReservationID, v))
}

// ReservationIDContains applies the Contains predicate on the "reservation_id" field.
func ReservationIDContains(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContains(FieldReservationID, v))
}

// ReservationIDHasPrefix applies the HasPrefix predicate on the "reservation_id" field.
func ReservationIDHasPrefix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasPrefix(FieldReservationID, v))
}

// ReservationIDHasSuffix applies the HasSuffix predicate on the "reservation_id" field.
func ReservationIDHasSuffix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasSuffix(FieldReservationID, v))
}

// ReservationIDEqualFold applies the EqualFold predicate on the "reservation_id" field.
func ReservationIDEqualFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEqualFold(FieldReservationID, v))
}

// ReservationIDContainsFold applies the ContainsFold predicate on the "reservation_id" field.
func ReservationIDContainsFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContainsFold(FieldReservationID, v))
}

// AiStatusEQ applies the EQ predicate on the "ai_status" field.
func AiStatusEQ(v AiStatus) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiStatus, v))
}

// AiStatusNEQ applies the NEQ predicate on the "ai_status" field.
func AiStatusNEQ(v AiStatus) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiStatus, v))
}

// AiStatusIn applies the In predicate on the "ai_status" field.
func AiStatusIn(vs ...AiStatus) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiStatus, vs...))
}

// AiStatusNotIn applies the NotIn predicate on the "ai_status" field.
func AiStatusNotIn(vs ...AiStatus) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiStatus, vs...))
}

// AiInputTokensEQ applies the EQ predicate on the "ai_input_tokens" field.
func AiInputTokensEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiInputTokens, v))
}

// AiInputTokensNEQ applies the NEQ predicate on the "ai_input_tokens" field.
func AiInputTokensNEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiInputTokens, v))
}

// AiInputTokensIn applies the In predicate on the "ai_input_tokens" field.
func AiInputTokensIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiInputTokens, vs...))
}

// AiInputTokensNotIn applies the NotIn predicate on the "ai_input_tokens" field.
func AiInputTokensNotIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiInputTokens, vs...))
}

// AiInputTokensGT applies the GT predicate on the "ai_input_tokens" field.
func AiInputTokensGT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiInputTokens, v))
}

// AiInputTokensGTE applies the GTE predicate on the "ai_input_tokens" field.
func AiInputTokensGTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiInputTokens, v))
}

// AiInputTokensLT applies the LT predicate on the "ai_input_tokens" field.
func AiInputTokensLT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiInputTokens, v))
}

// AiInputTokensLTE applies the LTE predicate on the "ai_input_tokens" field.
func AiInputTokensLTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiInputTokens, v))
}

// AiOutputTokensEQ applies the EQ predicate on the "ai_output_tokens" field.
func AiOutputTokensEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiOutputTokens, v))
}

// AiOutputTokensNEQ applies the NEQ predicate on the "ai_output_tokens" field.
func AiOutputTokensNEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiOutputTokens, v))
}

// AiOutputTokensIn applies the In predicate on the "ai_output_tokens" field.
func AiOutputTokensIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiOutputTokens, vs...))
}

// AiOutputTokensNotIn applies the NotIn predicate on the "ai_output_tokens" field.
func AiOutputTokensNotIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiOutputTokens, vs...))
}

// AiOutputTokensGT applies the GT predicate on the "ai_output_tokens" field.
func AiOutputTokensGT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiOutputTokens, v))
}

// AiOutputTokensGTE applies the GTE predicate on the "ai_output_tokens" field.
func AiOutputTokensGTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiOutputTokens, v))
}

// AiOutputTokensLT applies the LT predicate on the "ai_output_tokens" field.
func AiOutputTokensLT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiOutputTokens, v))
}

// AiOutputTokensLTE applies the LTE predicate on the "ai_output_tokens" field.
func AiOutputTokensLTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiOutputTokens, v))
}

// AiTotalTokensEQ applies the EQ predicate on the "ai_total_tokens" field.
func AiTotalTokensEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiTotalTokens, v))
}

// AiTotalTokensNEQ applies the NEQ predicate on the "ai_total_tokens" field.
func AiTotalTokensNEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiTotalTokens, v))
}

// AiTotalTokensIn applies the In predicate on the "ai_total_tokens" field.
func AiTotalTokensIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiTotalTokens, vs...))
}

// AiTotalTokensNotIn applies the NotIn predicate on the "ai_total_tokens" field.
func AiTotalTokensNotIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiTotalTokens, vs...))
}

// AiTotalTokensGT applies the GT predicate on the "ai_total_tokens" field.
func AiTotalTokensGT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiTotalTokens, v))
}

// AiTotalTokensGTE applies the GTE predicate on the "ai_total_tokens" field.
func AiTotalTokensGTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiTotalTokens, v))
}

// AiTotalTokensLT applies the LT predicate on the "ai_total_tokens" field.
func AiTotalTokensLT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiTotalTokens, v))
}

// AiTotalTokensLTE applies the LTE predicate on the "ai_total_tokens" field.
func AiTotalTokensLTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiTotalTokens, v))
}

// AiModelEQ applies the EQ predicate on the "ai_model" field.
func AiModelEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiModel, v))
}

// AiModelNEQ applies the NEQ predicate on the "ai_model" field.
func AiModelNEQ(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiModel, v))
}

// AiModelIn applies the In predicate on the "ai_model" field.
func AiModelIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiModel, vs...))
}

// AiModelNotIn applies the NotIn predicate on the "ai_model" field.
func AiModelNotIn(vs ...string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiModel, vs...))
}

// AiModelGT applies the GT predicate on the "ai_model" field.
func AiModelGT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiModel, v))
}

// AiModelGTE applies the GTE predicate on the "ai_model" field.
func AiModelGTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiModel, v))
}

// AiModelLT applies the LT predicate on the "ai_model" field.
func AiModelLT(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiModel, v))
}

// AiModelLTE applies the LTE predicate on the "ai_model" field.
func AiModelLTE(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiModel, v))
}

// AiModelContains applies the Contains predicate on the "ai_model" field.
func AiModelContains(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContains(FieldAiModel, v))
}

// AiModelHasPrefix applies the HasPrefix predicate on the "ai_model" field.
func AiModelHasPrefix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasPrefix(FieldAiModel, v))
}

// AiModelHasSuffix applies the HasSuffix predicate on the "ai_model" field.
func AiModelHasSuffix(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldHasSuffix(FieldAiModel, v))
}

// AiModelIsNil applies the IsNil predicate on the "ai_model" field.
func AiModelIsNil() predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIsNull(FieldAiModel))
}

// AiModelNotNil applies the NotNil predicate on the "ai_model" field.
func AiModelNotNil() predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotNull(FieldAiModel))
}

// AiModelEqualFold applies the EqualFold predicate on the "ai_model" field.
func AiModelEqualFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEqualFold(FieldAiModel, v))
}

// AiModelContainsFold applies the ContainsFold predicate on the "ai_model" field.
func AiModelContainsFold(v string) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldContainsFold(FieldAiModel, v))
}

// AiProcessingMsEQ applies the EQ predicate on the "ai_processing_ms" field.
func AiProcessingMsEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiProcessingMs, v))
}

// AiProcessingMsNEQ applies the NEQ predicate on the "ai_processing_ms" field.
func AiProcessingMsNEQ(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiProcessingMs, v))
}

// AiProcessingMsIn applies the In predicate on the "ai_processing_ms" field.
func AiProcessingMsIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiProcessingMs, vs...))
}

// AiProcessingMsNotIn applies the NotIn predicate on the "ai_processing_ms" field.
func AiProcessingMsNotIn(vs ...int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiProcessingMs, vs...))
}

// AiProcessingMsGT applies the GT predicate on the "ai_processing_ms" field.
func AiProcessingMsGT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiProcessingMs, v))
}

// AiProcessingMsGTE applies the GTE predicate on the "ai_processing_ms" field.
func AiProcessingMsGTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiProcessingMs, v))
}

// AiProcessingMsLT applies the LT predicate on the "ai_processing_ms" field.
func AiProcessingMsLT(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiProcessingMs, v))
}

// AiProcessingMsLTE applies the LTE predicate on the "ai_processing_ms" field.
func AiProcessingMsLTE(v int64) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiProcessingMs, v))
}

// AiProcessedAtEQ applies the EQ predicate on the "ai_processed_at" field.
func AiProcessedAtEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldEQ(FieldAiProcessedAt, v))
}

// AiProcessedAtNEQ applies the NEQ predicate on the "ai_processed_at" field.
func AiProcessedAtNEQ(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNEQ(FieldAiProcessedAt, v))
}

// AiProcessedAtIn applies the In predicate on the "ai_processed_at" field.
func AiProcessedAtIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIn(FieldAiProcessedAt, vs...))
}

// AiProcessedAtNotIn applies the NotIn predicate on the "ai_processed_at" field.
func AiProcessedAtNotIn(vs ...time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotIn(FieldAiProcessedAt, vs...))
}

// AiProcessedAtGT applies the GT predicate on the "ai_processed_at" field.
func AiProcessedAtGT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGT(FieldAiProcessedAt, v))
}

// AiProcessedAtGTE applies the GTE predicate on the "ai_processed_at" field.
func AiProcessedAtGTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldGTE(FieldAiProcessedAt, v))
}

// AiProcessedAtLT applies the LT predicate on the "ai_processed_at" field.
func AiProcessedAtLT(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLT(FieldAiProcessedAt, v))
}

// AiProcessedAtLTE applies the LTE predicate on the "ai_processed_at" field.
func AiProcessedAtLTE(v time.Time) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldLTE(FieldAiProcessedAt, v))
}

// AiProcessedAtIsNil applies the IsNil predicate on the "ai_processed_at" field.
func AiProcessedAtIsNil() predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldIsNull(FieldAiProcessedAt))
}

// AiProcessedAtNotNil applies the NotNil predicate on the "ai_processed_at" field.
func AiProcessedAtNotNil() predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.FieldNotNull(FieldAiProcessedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AiQueueEntry) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AiQueueEntry) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AiQueueEntry) predicate.AiQueueEntry {
	return predicate.AiQueueEntry(sql.NotPredicates(p))
}
