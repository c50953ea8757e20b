// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"a11ysentinel.io/sentinel/ent/scan"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Scan is the model entity for the Scan schema.
type Scan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// PageTitle holds the value of the "page_title" field.
	PageTitle string `json:"page_title,omitempty"`
	// Status holds the value of the "status" field.
	Status scan.Status `json:"status,omitempty"`
	// TotalIssues holds the value of the "total_issues" field.
	TotalIssues int `json:"total_issues,omitempty"`
	// CriticalIssues holds the value of the "critical_issues" field.
	CriticalIssues int `json:"critical_issues,omitempty"`
	// SeriousIssues holds the value of the "serious_issues" field.
	SeriousIssues int `json:"serious_issues,omitempty"`
	// ModerateIssues holds the value of the "moderate_issues" field.
	ModerateIssues int `json:"moderate_issues,omitempty"`
	// MinorIssues holds the value of the "minor_issues" field.
	MinorIssues int `json:"minor_issues,omitempty"`
	// PassedChecks holds the value of the "passed_checks" field.
	PassedChecks int `json:"passed_checks,omitempty"`
	// Issues holds the value of the "issues" field.
	Issues []map[string]interface{} `json:"issues,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// ContentSnapshot holds the value of the "content_snapshot" field.
	ContentSnapshot string `json:"content_snapshot,omitempty"`
	// AiEnabled holds the value of the "ai_enabled" field.
	AiEnabled bool `json:"ai_enabled,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Scan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scan.FieldIssues:
			values[i] = new([]byte)
		case scan.FieldAiEnabled:
			values[i] = new(sql.NullBool)
		case scan.FieldTotalIssues, scan.FieldCriticalIssues, scan.FieldSeriousIssues, scan.FieldModerateIssues, scan.FieldMinorIssues, scan.FieldPassedChecks:
			values[i] = new(sql.NullInt64)
		case scan.FieldID, scan.FieldBatchID, scan.FieldURL, scan.FieldPageTitle, scan.FieldStatus, scan.FieldErrorMessage, scan.FieldJobID, scan.FieldContentSnapshot:
			values[i] = new(sql.NullString)
		case scan.FieldCreatedAt, scan.FieldUpdatedAt, scan.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Scan fields.
func (_m *Scan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case scan.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case scan.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case scan.FieldPageTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_title", values[i])
			} else if value.Valid {
				_m.PageTitle = value.String
			}
		case scan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scan.Status(value.String)
			}
		case scan.FieldTotalIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_issues", values[i])
			} else if value.Valid {
				_m.TotalIssues = int(value.Int64)
			}
		case scan.FieldCriticalIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field critical_issues", values[i])
			} else if value.Valid {
				_m.CriticalIssues = int(value.Int64)
			}
		case scan.FieldSeriousIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field serious_issues", values[i])
			} else if value.Valid {
				_m.SeriousIssues = int(value.Int64)
			}
		case scan.FieldModerateIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field moderate_issues", values[i])
			} else if value.Valid {
				_m.ModerateIssues = int(value.Int64)
			}
		case scan.FieldMinorIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minor_issues", values[i])
			} else if value.Valid {
				_m.MinorIssues = int(value.Int64)
			}
		case scan.FieldPassedChecks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passed_checks", values[i])
			} else if value.Valid {
				_m.PassedChecks = int(value.Int64)
			}
		case scan.FieldIssues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field issues", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Issues); err != nil {
					return fmt.Errorf("unmarshal field issues: %w", err)
				}
			}
		case scan.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case scan.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case scan.FieldContentSnapshot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_snapshot", values[i])
			} else if value.Valid {
				_m.ContentSnapshot = value.String
			}
		case scan.FieldAiEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_enabled", values[i])
			} else if value.Valid {
				_m.AiEnabled = value.Bool
			}
		case scan.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Scan.
// This includes values selected through modifiers, order, etc.
func (_m *Scan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Scan.
// Note that you need to call Scan.Unwrap() before calling this method if this Scan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Scan) Update() *ScanUpdateOne {
	return NewScanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Scan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Scan) Unwrap() *Scan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Scan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Scan) String() string {
	var builder strings.Builder
	builder.WriteString("Scan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("page_title=")
	builder.WriteString(_m.PageTitle)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalIssues))
	builder.WriteString(", ")
	builder.WriteString("critical_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriticalIssues))
	builder.WriteString(", ")
	builder.WriteString("serious_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeriousIssues))
	builder.WriteString(", ")
	builder.WriteString("moderate_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModerateIssues))
	builder.WriteString(", ")
	builder.WriteString("minor_issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinorIssues))
	builder.WriteString(", ")
	builder.WriteString("passed_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassedChecks))
	builder.WriteString(", ")
	builder.WriteString("issues=")
	builder.WriteString(fmt.Sprintf("%v", _m.Issues))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("content_snapshot=")
	builder.WriteString(_m.ContentSnapshot)
	builder.WriteString(", ")
	builder.WriteString("ai_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiEnabled))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Scans is a parsable slice of Scan.
type Scans []*Scan
