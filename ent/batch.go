// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"a11ysentinel.io/sentinel/ent/batch"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Batch is the model entity for the Batch schema.
type Batch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HomepageURL holds the value of the "homepage_url" field.
	HomepageURL string `json:"homepage_url,omitempty"`
	// WcagLevel holds the value of the "wcag_level" field.
	WcagLevel batch.WcagLevel `json:"wcag_level,omitempty"`
	// Status holds the value of the "status" field.
	Status batch.Status `json:"status,omitempty"`
	// TotalUrls holds the value of the "total_urls" field.
	TotalUrls int `json:"total_urls,omitempty"`
	// CompletedCount holds the value of the "completed_count" field.
	CompletedCount int `json:"completed_count,omitempty"`
	// FailedCount holds the value of the "failed_count" field.
	FailedCount int `json:"failed_count,omitempty"`
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
	// AiEnabled holds the value of the "ai_enabled" field.
	AiEnabled bool `json:"ai_enabled,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Batch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batch.FieldAiEnabled:
			values[i] = new(sql.NullBool)
		case batch.FieldTotalUrls, batch.FieldCompletedCount, batch.FieldFailedCount, batch.FieldTotalIssues, batch.FieldCriticalIssues, batch.FieldSeriousIssues, batch.FieldModerateIssues, batch.FieldMinorIssues, batch.FieldPassedChecks:
			values[i] = new(sql.NullInt64)
		case batch.FieldID, batch.FieldHomepageURL, batch.FieldWcagLevel, batch.FieldStatus, batch.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case batch.FieldCreatedAt, batch.FieldUpdatedAt, batch.FieldCompletedAt, batch.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Batch fields.
func (_m *Batch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case batch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case batch.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case batch.FieldHomepageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field homepage_url", values[i])
			} else if value.Valid {
				_m.HomepageURL = value.String
			}
		case batch.FieldWcagLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wcag_level", values[i])
			} else if value.Valid {
				_m.WcagLevel = batch.WcagLevel(value.String)
			}
		case batch.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = batch.Status(value.String)
			}
		case batch.FieldTotalUrls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_urls", values[i])
			} else if value.Valid {
				_m.TotalUrls = int(value.Int64)
			}
		case batch.FieldCompletedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_count", values[i])
			} else if value.Valid {
				_m.CompletedCount = int(value.Int64)
			}
		case batch.FieldFailedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_count", values[i])
			} else if value.Valid {
				_m.FailedCount = int(value.Int64)
			}
		case batch.FieldTotalIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_issues", values[i])
			} else if value.Valid {
				_m.TotalIssues = int(value.Int64)
			}
		case batch.FieldCriticalIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field critical_issues", values[i])
			} else if value.Valid {
				_m.CriticalIssues = int(value.Int64)
			}
		case batch.FieldSeriousIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field serious_issues", values[i])
			} else if value.Valid {
				_m.SeriousIssues = int(value.Int64)
			}
		case batch.FieldModerateIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field moderate_issues", values[i])
			} else if value.Valid {
				_m.ModerateIssues = int(value.Int64)
			}
		case batch.FieldMinorIssues:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minor_issues", values[i])
			} else if value.Valid {
				_m.MinorIssues = int(value.Int64)
			}
		case batch.FieldPassedChecks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field passed_checks", values[i])
			} else if value.Valid {
				_m.PassedChecks = int(value.Int64)
			}
		case batch.FieldAiEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_enabled", values[i])
			} else if value.Valid {
				_m.AiEnabled = value.Bool
			}
		case batch.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case batch.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case batch.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Batch.
// This includes values selected through modifiers, order, etc.
func (_m *Batch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Batch.
// Note that you need to call Batch.Unwrap() before calling this method if this Batch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Batch) Update() *BatchUpdateOne {
	return NewBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Batch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Batch) Unwrap() *Batch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Batch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Batch) String() string {
	var builder strings.Builder
	builder.WriteString("Batch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("homepage_url=")
	builder.WriteString(_m.HomepageURL)
	builder.WriteString(", ")
	builder.WriteString("wcag_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.WcagLevel))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalUrls))
	builder.WriteString(", ")
	builder.WriteString("completed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCount))
	builder.WriteString(", ")
	builder.WriteString("failed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCount))
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
	builder.WriteString("ai_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiEnabled))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Batches is a parsable slice of Batch.
type Batches []*Batch
