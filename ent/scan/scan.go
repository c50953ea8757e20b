// Code generated by ent, DO NOT EDIT.

package scan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scan type in the database.
	Label = "scan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPageTitle holds the string denoting the page_title field in the database.
	FieldPageTitle = "page_title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
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
	// FieldIssues holds the string denoting the issues field in the database.
	FieldIssues = "issues"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldContentSnapshot holds the string denoting the content_snapshot field in the database.
	FieldContentSnapshot = "content_snapshot"
	// FieldAiEnabled holds the string denoting the ai_enabled field in the database.
	FieldAiEnabled = "ai_enabled"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the scan in the database.
	Table = "scans"
)

// Columns holds all SQL columns for scan fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldBatchID,
	FieldURL,
	FieldPageTitle,
	FieldStatus,
	FieldTotalIssues,
	FieldCriticalIssues,
	FieldSeriousIssues,
	FieldModerateIssues,
	FieldMinorIssues,
	FieldPassedChecks,
	FieldIssues,
	FieldErrorMessage,
	FieldJobID,
	FieldContentSnapshot,
	FieldAiEnabled,
	FieldCompletedAt,
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
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
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
)

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
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPENDING, StatusRUNNING, StatusCOMPLETED, StatusFAILED, StatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("scan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Scan queries.
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

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPageTitle orders the results by the page_title field.
func ByPageTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
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

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByContentSnapshot orders the results by the content_snapshot field.
func ByContentSnapshot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentSnapshot, opts...).ToFunc()
}

// ByAiEnabled orders the results by the ai_enabled field.
func ByAiEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiEnabled, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
