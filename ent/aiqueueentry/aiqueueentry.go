// Code generated by ent, DO NOT EDIT.

package aiqueueentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the aiqueueentry type in the database.
	Label = "ai_queue_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldScanID holds the string denoting the scan_id field in the database.
	FieldScanID = "scan_id"
	// FieldReservationID holds the string denoting the reservation_id field in the database.
	FieldReservationID = "reservation_id"
	// FieldAiStatus holds the string denoting the ai_status field in the database.
	FieldAiStatus = "ai_status"
	// FieldAiInputTokens holds the string denoting the ai_input_tokens field in the database.
	FieldAiInputTokens = "ai_input_tokens"
	// FieldAiOutputTokens holds the string denoting the ai_output_tokens field in the database.
	FieldAiOutputTokens = "ai_output_tokens"
	// FieldAiTotalTokens holds the string denoting the ai_total_tokens field in the database.
	FieldAiTotalTokens = "ai_total_tokens"
	// FieldAiModel holds the string denoting the ai_model field in the database.
	FieldAiModel = "ai_model"
	// FieldAiProcessingMs holds the string denoting the ai_processing_ms field in the database.
	FieldAiProcessingMs = "ai_processing_ms"
	// FieldAiProcessedAt holds the string denoting the ai_processed_at field in the database.
	FieldAiProcessedAt = "ai_processed_at"
	// Table holds the table name of the aiqueueentry in the database.
	Table = "ai_queue_entries"
)

// Columns holds all SQL columns for aiqueueentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldScanID,
	FieldReservationID,
	FieldAiStatus,
	FieldAiInputTokens,
	FieldAiOutputTokens,
	FieldAiTotalTokens,
	FieldAiModel,
	FieldAiProcessingMs,
	FieldAiProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// ReservationIDValidator is a validator for the "reservation_id" field. It is called by the builders before save.
	ReservationIDValidator func(string) error
	// DefaultAiInputTokens holds the default value on creation for the "ai_input_tokens" field.
	DefaultAiInputTokens int64
	// AiInputTokensValidator is a validator for the "ai_input_tokens" field. It is called by the builders before save.
	AiInputTokensValidator func(int64) error
	// DefaultAiOutputTokens holds the default value on creation for the "ai_output_tokens" field.
	DefaultAiOutputTokens int64
	// AiOutputTokensValidator is a validator for the "ai_output_tokens" field. It is called by the builders before save.
	AiOutputTokensValidator func(int64) error
	// DefaultAiTotalTokens holds the default value on creation for the "ai_total_tokens" field.
	DefaultAiTotalTokens int64
	// AiTotalTokensValidator is a validator for the "ai_total_tokens" field. It is called by the builders before save.
	AiTotalTokensValidator func(int64) error
	// DefaultAiProcessingMs holds the default value on creation for the "ai_processing_ms" field.
	DefaultAiProcessingMs int64
	// AiProcessingMsValidator is a validator for the "ai_processing_ms" field. It is called by the builders before save.
	AiProcessingMsValidator func(int64) error
)

// AiStatus defines the type for the "ai_status" enum field.
type AiStatus string

// AiStatusPENDING is the default value of the AiStatus enum.
const DefaultAiStatus = AiStatusPENDING

// AiStatus values.
const (
	AiStatusPENDING    AiStatus = "PENDING"
	AiStatusDOWNLOADED AiStatus = "DOWNLOADED"
	AiStatusPROCESSING AiStatus = "PROCESSING"
	AiStatusCOMPLETED  AiStatus = "COMPLETED"
	AiStatusFAILED     AiStatus = "FAILED"
)

func (as AiStatus) String() string {
	return string(as)
}

// AiStatusValidator is a validator for the "ai_status" field enum values. It is called by the builders before save.
func AiStatusValidator(as AiStatus) error {
	switch as {
	case AiStatusPENDING, AiStatusDOWNLOADED, AiStatusPROCESSING, AiStatusCOMPLETED, AiStatusFAILED:
		return nil
	default:
		return fmt.Errorf("aiqueueentry: invalid enum value for ai_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the AiQueueEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScanID orders the results by the scan_id field.
func ByScanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanID, opts...).ToFunc()
}

// ByReservationID orders the results by the reservation_id field.
func ByReservationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservationID, opts...).ToFunc()
}

// ByAiStatus orders the results by the ai_status field.
func ByAiStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiStatus, opts...).ToFunc()
}

// ByAiInputTokens orders the results by the ai_input_tokens field.
func ByAiInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiInputTokens, opts...).ToFunc()
}

// ByAiOutputTokens orders the results by the ai_output_tokens field.
func ByAiOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiOutputTokens, opts...).ToFunc()
}

// ByAiTotalTokens orders the results by the ai_total_tokens field.
func ByAiTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiTotalTokens, opts...).ToFunc()
}

// ByAiModel orders the results by the ai_model field.
func ByAiModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiModel, opts...).ToFunc()
}

// ByAiProcessingMs orders the results by the ai_processing_ms field.
func ByAiProcessingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiProcessingMs, opts...).ToFunc()
}

// ByAiProcessedAt orders the results by the ai_processed_at field.
func ByAiProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiProcessedAt, opts...).ToFunc()
}
