// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// AiQueueEntry is the model entity for the AiQueueEntry schema.
type AiQueueEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID string `json:"scan_id,omitempty"`
	// ReservationID holds the value of the "reservation_id" field.
	ReservationID string `json:"reservation_id,omitempty"`
	// AiStatus holds the value of the "ai_status" field.
	AiStatus aiqueueentry.AiStatus `json:"ai_status,omitempty"`
	// AiInputTokens holds the value of the "ai_input_tokens" field.
	AiInputTokens int64 `json:"ai_input_tokens,omitempty"`
	// AiOutputTokens holds the value of the "ai_output_tokens" field.
	AiOutputTokens int64 `json:"ai_output_tokens,omitempty"`
	// AiTotalTokens holds the value of the "ai_total_tokens" field.
	AiTotalTokens int64 `json:"ai_total_tokens,omitempty"`
	// AiModel holds the value of the "ai_model" field.
	AiModel string `json:"ai_model,omitempty"`
	// AiProcessingMs holds the value of the "ai_processing_ms" field.
	AiProcessingMs int64 `json:"ai_processing_ms,omitempty"`
	// AiProcessedAt holds the value of the "ai_processed_at" field.
	AiProcessedAt *time.Time `json:"ai_processed_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AiQueueEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aiqueueentry.FieldAiInputTokens, aiqueueentry.FieldAiOutputTokens, aiqueueentry.FieldAiTotalTokens, aiqueueentry.FieldAiProcessingMs:
			values[i] = new(sql.NullInt64)
		case aiqueueentry.FieldID, aiqueueentry.FieldScanID, aiqueueentry.FieldReservationID, aiqueueentry.FieldAiStatus, aiqueueentry.FieldAiModel:
			values[i] = new(sql.NullString)
		case aiqueueentry.FieldCreatedAt, aiqueueentry.FieldUpdatedAt, aiqueueentry.FieldAiProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AiQueueEntry fields.
func (_m *AiQueueEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aiqueueentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case aiqueueentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case aiqueueentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case aiqueueentry.FieldScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = value.String
			}
		case aiqueueentry.FieldReservationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reservation_id", values[i])
			} else if value.Valid {
				_m.ReservationID = value.String
			}
		case aiqueueentry.FieldAiStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_status", values[i])
			} else if value.Valid {
				_m.AiStatus = aiqueueentry.AiStatus(value.String)
			}
		case aiqueueentry.FieldAiInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_input_tokens", values[i])
			} else if value.Valid {
				_m.AiInputTokens = value.Int64
			}
		case aiqueueentry.FieldAiOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_output_tokens", values[i])
			} else if value.Valid {
				_m.AiOutputTokens = value.Int64
			}
		case aiqueueentry.FieldAiTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_total_tokens", values[i])
			} else if value.Valid {
				_m.AiTotalTokens = value.Int64
			}
		case aiqueueentry.FieldAiModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_model", values[i])
			} else if value.Valid {
				_m.AiModel = value.String
			}
		case aiqueueentry.FieldAiProcessingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ai_processing_ms", values[i])
			} else if value.Valid {
				_m.AiProcessingMs = value.Int64
			}
		case aiqueueentry.FieldAiProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ai_processed_at", values[i])
			} else if value.Valid {
				_m.AiProcessedAt = new(time.Time)
				*_m.AiProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AiQueueEntry.
// This includes values selected through modifiers, order, etc.
func (_m *AiQueueEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AiQueueEntry.
// Note that you need to call AiQueueEntry.Unwrap() before calling this method if this AiQueueEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AiQueueEntry) Update() *AiQueueEntryUpdateOne {
	return NewAiQueueEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AiQueueEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AiQueueEntry) Unwrap() *AiQueueEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AiQueueEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AiQueueEntry) String() string {
	var builder strings.Builder
	builder.WriteString("AiQueueEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("scan_id=")
	builder.WriteString(_m.ScanID)
	builder.WriteString(", ")
	builder.WriteString("reservation_id=")
	builder.WriteString(_m.ReservationID)
	builder.WriteString(", ")
	builder.WriteString("ai_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiStatus))
	builder.WriteString(", ")
	builder.WriteString("ai_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiInputTokens))
	builder.WriteString(", ")
	builder.WriteString("ai_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("ai_total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiTotalTokens))
	builder.WriteString(", ")
	builder.WriteString("ai_model=")
	builder.WriteString(_m.AiModel)
	builder.WriteString(", ")
	builder.WriteString("ai_processing_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiProcessingMs))
	builder.WriteString(", ")
	if v := _m.AiProcessedAt; v != nil {
		builder.WriteString("ai_processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AiQueueEntries is a parsable slice of AiQueueEntry.
type AiQueueEntries []*AiQueueEntry
