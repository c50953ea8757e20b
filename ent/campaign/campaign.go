// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTotalTokenBudget holds the string denoting the total_token_budget field in the database.
	FieldTotalTokenBudget = "total_token_budget"
	// FieldUsedTokens holds the string denoting the used_tokens field in the database.
	FieldUsedTokens = "used_tokens"
	// FieldReservedTokens holds the string denoting the reserved_tokens field in the database.
	FieldReservedTokens = "reserved_tokens"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartsAt holds the string denoting the starts_at field in the database.
	FieldStartsAt = "starts_at"
	// FieldEndsAt holds the string denoting the ends_at field in the database.
	FieldEndsAt = "ends_at"
	// FieldCompletedAiScans holds the string denoting the completed_ai_scans field in the database.
	FieldCompletedAiScans = "completed_ai_scans"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldTotalTokenBudget,
	FieldUsedTokens,
	FieldReservedTokens,
	FieldStatus,
	FieldStartsAt,
	FieldEndsAt,
	FieldCompletedAiScans,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TotalTokenBudgetValidator is a validator for the "total_token_budget" field. It is called by the builders before save.
	TotalTokenBudgetValidator func(int64) error
	// DefaultUsedTokens holds the default value on creation for the "used_tokens" field.
	DefaultUsedTokens int64
	// UsedTokensValidator is a validator for the "used_tokens" field. It is called by the builders before save.
	UsedTokensValidator func(int64) error
	// DefaultReservedTokens holds the default value on creation for the "reserved_tokens" field.
	DefaultReservedTokens int64
	// ReservedTokensValidator is a validator for the "reserved_tokens" field. It is called by the builders before save.
	ReservedTokensValidator func(int64) error
	// DefaultCompletedAiScans holds the default value on creation for the "completed_ai_scans" field.
	DefaultCompletedAiScans int
	// CompletedAiScansValidator is a validator for the "completed_ai_scans" field. It is called by the builders before save.
	CompletedAiScansValidator func(int) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusACTIVE is the default value of the Status enum.
const DefaultStatus = StatusACTIVE

// Status values.
const (
	StatusACTIVE   Status = "ACTIVE"
	StatusPAUSED   Status = "PAUSED"
	StatusDEPLETED Status = "DEPLETED"
	StatusENDED    Status = "ENDED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusACTIVE, StatusPAUSED, StatusDEPLETED, StatusENDED:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTotalTokenBudget orders the results by the total_token_budget field.
func ByTotalTokenBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokenBudget, opts...).ToFunc()
}

// ByUsedTokens orders the results by the used_tokens field.
func ByUsedTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedTokens, opts...).ToFunc()
}

// ByReservedTokens orders the results by the reserved_tokens field.
func ByReservedTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReservedTokens, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartsAt orders the results by the starts_at field.
func ByStartsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartsAt, opts...).ToFunc()
}

// ByEndsAt orders the results by the ends_at field.
func ByEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndsAt, opts...).ToFunc()
}

// ByCompletedAiScans orders the results by the completed_ai_scans field.
func ByCompletedAiScans(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAiScans, opts...).ToFunc()
}
