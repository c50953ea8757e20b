// Code generated by ent, DO NOT EDIT.

package batch

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the batch type in the database.
	Label = "batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHomepageURL holds the string denoting the homepage_url field in the database.
	FieldHomepageURL = "homepage_url"
	// FieldWcagLevel holds the string denoting the wcag_level field in the database.
	FieldWcagLevel = "wcag_level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalUrls holds the string denoting the total_urls field in the database.
	FieldTotalUrls = "total_urls"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldTotalIssues holds the string denoting the total_issues field in the database.
	FieldTotalIssues = "total_issues"
	// FieldCriticalIssues holds the string denoting the critical_issues field in the database.
	FieldCriticalIssues = "critical_issues"
	// FieldSeriousIssues holds the string denoting the serious_issues field in the database.
	FieldSeriousIssues = "serious_issues"
	// FieldModerateIssues holds the string denoting the moderate_issues field in the database.
	FieldModerateIssues = "moderate_issues"
	// FieldMinorIssues holds the string denoting the minor_issues field in the database.
	FieldMinorIssues = "minor_issues"
	// FieldPassedChecks holds the string denoting the passed_checks field in the database.
	FieldPassedChecks = "passed_checks"
	// FieldAiEnabled holds the string denoting the ai_enabled field in the database.
	FieldAiEnabled = "ai_enabled"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// Table holds the table name of the batch in the database.
	Table = "batches"
)

// Columns holds all SQL columns for batch fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHomepageURL,
	FieldWcagLevel,
	FieldStatus,
	FieldTotalUrls,
	FieldCompletedCount,
	FieldFailedCount,
	FieldTotalIssues,
	FieldCriticalIssues,
	FieldSeriousIssues,
	FieldModerateIssues,
	FieldMinorIssues,
	FieldPassedChecks,
	FieldAiEnabled,
	FieldCreatedBy,
	FieldCompletedAt,
	FieldCancelledAt,
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
	// HomepageURLValidator is a validator for the "homepage_url" field. It is called by the builders before save.
	HomepageURLValidator func(string) error
	// TotalUrlsValidator is a validator for the "total_urls" field. It is called by the builders before save.
	TotalUrlsValidator func(int) error
	// DefaultCompletedCount holds the default value on creation for the "completed_count" field.
	DefaultCompletedCount int
	// CompletedCountValidator is a validator for the "completed_count" field. It is called by the builders before save.
	CompletedCountValidator func(int) error
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	FailedCountValidator func(int) error
	// DefaultTotalIssues holds the default value on creation for the "total_issues" field.
	DefaultTotalIssues int
	// TotalIssuesValidator is a validator for the "total_issues" field. It is called by the builders before save.
	TotalIssuesValidator func(int) error
	// DefaultCriticalIssues holds the default value on creation for the "critical_issues" field.
	DefaultCriticalIssues int
	// CriticalIssuesValidator is a validator for the "critical_issues" field. It is called by the builders before save.
	CriticalIssuesValidator func(int) error
	// DefaultSeriousIssues holds the default value on creation for the "serious_issues" field.
	DefaultSeriousIssues int
	// SeriousIssuesValidator is a validator for the "serious_issues" field. It is called by the builders before save.
	SeriousIssuesValidator func(int) error
	// DefaultModerateIssues holds the default value on creation for the "moderate_issues" field.
	DefaultModerateIssues int
	// ModerateIssuesValidator is a validator for the "moderate_issues" field. It is called by the builders before save.
	ModerateIssuesValidator func(int) error
	// DefaultMinorIssues holds the default value on creation for the "minor_issues" field.
	DefaultMinorIssues int
	// MinorIssuesValidator is a validator for the "minor_issues" field. It is called by the builders before save.
	MinorIssuesValidator func(int) error
	// DefaultPassedChecks holds the default value on creation for the "passed_checks" field.
	DefaultPassedChecks int
	// PassedChecksValidator is a validator for the "passed_checks" field. It is called by the builders before save.
	PassedChecksValidator func(int) error
	// DefaultAiEnabled holds the default value on creation for the "ai_enabled" field.
	DefaultAiEnabled bool
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// WcagLevel defines the type for the "wcag_level" enum field.
type WcagLevel string

// WcagLevelAA is the default value of the WcagLevel enum.
const DefaultWcagLevel = WcagLevelAA

// WcagLevel values.
const (
	WcagLevelA   WcagLevel = "A"
	WcagLevelAA  WcagLevel = "AA"
	WcagLevelAAA WcagLevel = "AAA"
)

func (wl WcagLevel) String() string {
	return string(wl)
}

// WcagLevelValidator is a validator for the "wcag_level" field enum values. It is called by the builders before save.
func WcagLevelValidator(wl WcagLevel) error {
	switch wl {
	case WcagLevelA, WcagLevelAA, WcagLevelAAA:
		return nil
	default:
		return fmt.Errorf("batch: invalid enum value for wcag_level field: %q", wl)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPENDING is the default value of the Status enum.
const DefaultStatus = StatusPENDING

// Status values.
const (
	StatusPENDING   Status = "PENDING"
	StatusRUNNING   Status = "RUNNING"
	StatusCOMPLETED Status = "COMPLETED"
	StatusFAILED    Status = "FAILED"
	StatusCANCELLED Status = "CANCELLED"
	StatusSTALE     Status = "STALE"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusRUNNING, StatusCOMPLETED, StatusFAILED, StatusCANCELLED, StatusSTALE:
		return nil
	default:
		return fmt.Errorf("batch: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Batch queries.
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

// ByHomepageURL orders the results by the homepage_url field.
func ByHomepageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHomepageURL, opts...).ToFunc()
}

// ByWcagLevel orders the results by the wcag_level field.
func ByWcagLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWcagLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalUrls orders the results by the total_urls field.
func ByTotalUrls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalUrls, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByTotalIssues orders the results by the total_issues field.
func ByTotalIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalIssues, opts...).ToFunc()
}

// ByCriticalIssues orders the results by the critical_issues field.
func ByCriticalIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalIssues, opts...).ToFunc()
}

// BySeriousIssues orders the results by the serious_issues field.
func BySeriousIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeriousIssues, opts...).ToFunc()
}

// ByModerateIssues orders the results by the moderate_issues field.
func ByModerateIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModerateIssues, opts...).ToFunc()
}

// ByMinorIssues orders the results by the minor_issues field.
func ByMinorIssues(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinorIssues, opts...).ToFunc()
}

// ByPassedChecks orders the results by the passed_checks field.
func ByPassedChecks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedChecks, opts...).ToFunc()
}

// ByAiEnabled orders the results by the ai_enabled field.
func ByAiEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiEnabled, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}
