// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/ent/auditlog"
	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/campaign"
	"a11ysentinel.io/sentinel/ent/predicate"
	"a11ysentinel.io/sentinel/ent/reservation"
	"a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/ent/user"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAiQueueEntry = "AiQueueEntry"
	TypeAuditLog     = "AuditLog"
	TypeBatch        = "Batch"
	TypeCampaign     = "Campaign"
	TypeReservation  = "Reservation"
	TypeScan         = "Scan"
	TypeUser         = "User"
)

// AiQueueEntryMutation represents an operation that mutates the AiQueueEntry nodes in the graph.
type AiQueueEntryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	scan_id             *string
	reservation_id      *string
	ai_status           *aiqueueentry.AiStatus
	ai_input_tokens     *int64
	addai_input_tokens  *int64
	ai_output_tokens    *int64
	addai_output_tokens *int64
	ai_total_tokens     *int64
	addai_total_tokens  *int64
	ai_model            *string
	ai_processing_ms    *int64
	addai_processing_ms *int64
	ai_processed_at     *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*AiQueueEntry, error)
	predicates          []predicate.AiQueueEntry
}

var _ ent.Mutation = (*AiQueueEntryMutation)(nil)

// aiqueueentryOption allows management of the mutation configuration using functional options.
type aiqueueentryOption func(*AiQueueEntryMutation)

// newAiQueueEntryMutation creates new mutation for the AiQueueEntry entity.
func newAiQueueEntryMutation(c config, op Op, opts ...aiqueueentryOption) *AiQueueEntryMutation {
	m := &AiQueueEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAiQueueEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAiQueueEntryID sets the ID field of the mutation.
func withAiQueueEntryID(id string) aiqueueentryOption {
	return func(m *AiQueueEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AiQueueEntry
		)
		m.oldValue = func(ctx context.Context) (*AiQueueEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AiQueueEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAiQueueEntry sets the old AiQueueEntry of the mutation.
func withAiQueueEntry(node *AiQueueEntry) aiqueueentryOption {
	return func(m *AiQueueEntryMutation) {
		m.oldValue = func(context.Context) (*AiQueueEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AiQueueEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AiQueueEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AiQueueEntry entities.
func (m *AiQueueEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AiQueueEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AiQueueEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AiQueueEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AiQueueEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AiQueueEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AiQueueEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AiQueueEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AiQueueEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AiQueueEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetScanID sets the "scan_id" field.
func (m *AiQueueEntryMutation) SetScanID(s string) {
	m.scan_id = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *AiQueueEntryMutation) ScanID() (r string, exists bool) {
	v := m.scan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *AiQueueEntryMutation) ResetScanID() {
	m.scan_id = nil
}

// SetReservationID sets the "reservation_id" field.
func (m *AiQueueEntryMutation) SetReservationID(s string) {
	m.reservation_id = &s
}

// ReservationID returns the value of the "reservation_id" field in the mutation.
func (m *AiQueueEntryMutation) ReservationID() (r string, exists bool) {
	v := m.reservation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReservationID returns the old "reservation_id" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldReservationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservationID: %w", err)
	}
	return oldValue.ReservationID, nil
}

// ResetReservationID resets all changes to the "reservation_id" field.
func (m *AiQueueEntryMutation) ResetReservationID() {
	m.reservation_id = nil
}

// SetAiStatus sets the "ai_status" field.
func (m *AiQueueEntryMutation) SetAiStatus(as aiqueueentry.AiStatus) {
	m.ai_status = &as
}

// AiStatus returns the value of the "ai_status" field in the mutation.
func (m *AiQueueEntryMutation) AiStatus() (r aiqueueentry.AiStatus, exists bool) {
	v := m.ai_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAiStatus returns the old "ai_status" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiStatus(ctx context.Context) (v aiqueueentry.AiStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiStatus: %w", err)
	}
	return oldValue.AiStatus, nil
}

// ResetAiStatus resets all changes to the "ai_status" field.
func (m *AiQueueEntryMutation) ResetAiStatus() {
	m.ai_status = nil
}

// SetAiInputTokens sets the "ai_input_tokens" field.
func (m *AiQueueEntryMutation) SetAiInputTokens(i int64) {
	m.ai_input_tokens = &i
	m.addai_input_tokens = nil
}

// AiInputTokens returns the value of the "ai_input_tokens" field in the mutation.
func (m *AiQueueEntryMutation) AiInputTokens() (r int64, exists bool) {
	v := m.ai_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldAiInputTokens returns the old "ai_input_tokens" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiInputTokens: %w", err)
	}
	return oldValue.AiInputTokens, nil
}

// AddAiInputTokens adds i to the "ai_input_tokens" field.
func (m *AiQueueEntryMutation) AddAiInputTokens(i int64) {
	if m.addai_input_tokens != nil {
		*m.addai_input_tokens += i
	} else {
		m.addai_input_tokens = &i
	}
}

// AddedAiInputTokens returns the value that was added to the "ai_input_tokens" field in this mutation.
func (m *AiQueueEntryMutation) AddedAiInputTokens() (r int64, exists bool) {
	v := m.addai_input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiInputTokens resets all changes to the "ai_input_tokens" field.
func (m *AiQueueEntryMutation) ResetAiInputTokens() {
	m.ai_input_tokens = nil
	m.addai_input_tokens = nil
}

// SetAiOutputTokens sets the "ai_output_tokens" field.
func (m *AiQueueEntryMutation) SetAiOutputTokens(i int64) {
	m.ai_output_tokens = &i
	m.addai_output_tokens = nil
}

// AiOutputTokens returns the value of the "ai_output_tokens" field in the mutation.
func (m *AiQueueEntryMutation) AiOutputTokens() (r int64, exists bool) {
	v := m.ai_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldAiOutputTokens returns the old "ai_output_tokens" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiOutputTokens: %w", err)
	}
	return oldValue.AiOutputTokens, nil
}

// AddAiOutputTokens adds i to the "ai_output_tokens" field.
func (m *AiQueueEntryMutation) AddAiOutputTokens(i int64) {
	if m.addai_output_tokens != nil {
		*m.addai_output_tokens += i
	} else {
		m.addai_output_tokens = &i
	}
}

// AddedAiOutputTokens returns the value that was added to the "ai_output_tokens" field in this mutation.
func (m *AiQueueEntryMutation) AddedAiOutputTokens() (r int64, exists bool) {
	v := m.addai_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiOutputTokens resets all changes to the "ai_output_tokens" field.
func (m *AiQueueEntryMutation) ResetAiOutputTokens() {
	m.ai_output_tokens = nil
	m.addai_output_tokens = nil
}

// SetAiTotalTokens sets the "ai_total_tokens" field.
func (m *AiQueueEntryMutation) SetAiTotalTokens(i int64) {
	m.ai_total_tokens = &i
	m.addai_total_tokens = nil
}

// AiTotalTokens returns the value of the "ai_total_tokens" field in the mutation.
func (m *AiQueueEntryMutation) AiTotalTokens() (r int64, exists bool) {
	v := m.ai_total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldAiTotalTokens returns the old "ai_total_tokens" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiTotalTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiTotalTokens: %w", err)
	}
	return oldValue.AiTotalTokens, nil
}

// AddAiTotalTokens adds i to the "ai_total_tokens" field.
func (m *AiQueueEntryMutation) AddAiTotalTokens(i int64) {
	if m.addai_total_tokens != nil {
		*m.addai_total_tokens += i
	} else {
		m.addai_total_tokens = &i
	}
}

// AddedAiTotalTokens returns the value that was added to the "ai_total_tokens" field in this mutation.
func (m *AiQueueEntryMutation) AddedAiTotalTokens() (r int64, exists bool) {
	v := m.addai_total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiTotalTokens resets all changes to the "ai_total_tokens" field.
func (m *AiQueueEntryMutation) ResetAiTotalTokens() {
	m.ai_total_tokens = nil
	m.addai_total_tokens = nil
}

// SetAiModel sets the "ai_model" field.
func (m *AiQueueEntryMutation) SetAiModel(s string) {
	m.ai_model = &s
}

// AiModel returns the value of the "ai_model" field in the mutation.
func (m *AiQueueEntryMutation) AiModel() (r string, exists bool) {
	v := m.ai_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAiModel returns the old "ai_model" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiModel: %w", err)
	}
	return oldValue.AiModel, nil
}

// ClearAiModel clears the value of the "ai_model" field.
func (m *AiQueueEntryMutation) ClearAiModel() {
	m.ai_model = nil
	m.clearedFields[aiqueueentry.FieldAiModel] = struct{}{}
}

// AiModelCleared returns if the "ai_model" field was cleared in this mutation.
func (m *AiQueueEntryMutation) AiModelCleared() bool {
	_, ok := m.clearedFields[aiqueueentry.FieldAiModel]
	return ok
}

// ResetAiModel resets all changes to the "ai_model" field.
func (m *AiQueueEntryMutation) ResetAiModel() {
	m.ai_model = nil
	delete(m.clearedFields, aiqueueentry.FieldAiModel)
}

// SetAiProcessingMs sets the "ai_processing_ms" field.
func (m *AiQueueEntryMutation) SetAiProcessingMs(i int64) {
	m.ai_processing_ms = &i
	m.addai_processing_ms = nil
}

// AiProcessingMs returns the value of the "ai_processing_ms" field in the mutation.
func (m *AiQueueEntryMutation) AiProcessingMs() (r int64, exists bool) {
	v := m.ai_processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAiProcessingMs returns the old "ai_processing_ms" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiProcessingMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiProcessingMs: %w", err)
	}
	return oldValue.AiProcessingMs, nil
}

// AddAiProcessingMs adds i to the "ai_processing_ms" field.
func (m *AiQueueEntryMutation) AddAiProcessingMs(i int64) {
	if m.addai_processing_ms != nil {
		*m.addai_processing_ms += i
	} else {
		m.addai_processing_ms = &i
	}
}

// AddedAiProcessingMs returns the value that was added to the "ai_processing_ms" field in this mutation.
func (m *AiQueueEntryMutation) AddedAiProcessingMs() (r int64, exists bool) {
	v := m.addai_processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiProcessingMs resets all changes to the "ai_processing_ms" field.
func (m *AiQueueEntryMutation) ResetAiProcessingMs() {
	m.ai_processing_ms = nil
	m.addai_processing_ms = nil
}

// SetAiProcessedAt sets the "ai_processed_at" field.
func (m *AiQueueEntryMutation) SetAiProcessedAt(t time.Time) {
	m.ai_processed_at = &t
}

// AiProcessedAt returns the value of the "ai_processed_at" field in the mutation.
func (m *AiQueueEntryMutation) AiProcessedAt() (r time.Time, exists bool) {
	v := m.ai_processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAiProcessedAt returns the old "ai_processed_at" field's value of the AiQueueEntry entity.
// If the AiQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AiQueueEntryMutation) OldAiProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiProcessedAt: %w", err)
	}
	return oldValue.AiProcessedAt, nil
}

// ClearAiProcessedAt clears the value of the "ai_processed_at" field.
func (m *AiQueueEntryMutation) ClearAiProcessedAt() {
	m.ai_processed_at = nil
	m.clearedFields[aiqueueentry.FieldAiProcessedAt] = struct{}{}
}

// AiProcessedAtCleared returns if the "ai_processed_at" field was cleared in this mutation.
func (m *AiQueueEntryMutation) AiProcessedAtCleared() bool {
	_, ok := m.clearedFields[aiqueueentry.FieldAiProcessedAt]
	return ok
}

// ResetAiProcessedAt resets all changes to the "ai_processed_at" field.
func (m *AiQueueEntryMutation) ResetAiProcessedAt() {
	m.ai_processed_at = nil
	delete(m.clearedFields, aiqueueentry.FieldAiProcessedAt)
}

// Where appends a list predicates to the AiQueueEntryMutation builder.
func (m *AiQueueEntryMutation) Where(ps ...predicate.AiQueueEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AiQueueEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AiQueueEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AiQueueEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AiQueueEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AiQueueEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AiQueueEntry).
func (m *AiQueueEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AiQueueEntryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, aiqueueentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, aiqueueentry.FieldUpdatedAt)
	}
	if m.scan_id != nil {
		fields = append(fields, aiqueueentry.FieldScanID)
	}
	if m.reservation_id != nil {
		fields = append(fields, aiqueueentry.FieldReservationID)
	}
	if m.ai_status != nil {
		fields = append(fields, aiqueueentry.FieldAiStatus)
	}
	if m.ai_input_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiInputTokens)
	}
	if m.ai_output_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiOutputTokens)
	}
	if m.ai_total_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiTotalTokens)
	}
	if m.ai_model != nil {
		fields = append(fields, aiqueueentry.FieldAiModel)
	}
	if m.ai_processing_ms != nil {
		fields = append(fields, aiqueueentry.FieldAiProcessingMs)
	}
	if m.ai_processed_at != nil {
		fields = append(fields, aiqueueentry.FieldAiProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AiQueueEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aiqueueentry.FieldCreatedAt:
		return m.CreatedAt()
	case aiqueueentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case aiqueueentry.FieldScanID:
		return m.ScanID()
	case aiqueueentry.FieldReservationID:
		return m.ReservationID()
	case aiqueueentry.FieldAiStatus:
		return m.AiStatus()
	case aiqueueentry.FieldAiInputTokens:
		return m.AiInputTokens()
	case aiqueueentry.FieldAiOutputTokens:
		return m.AiOutputTokens()
	case aiqueueentry.FieldAiTotalTokens:
		return m.AiTotalTokens()
	case aiqueueentry.FieldAiModel:
		return m.AiModel()
	case aiqueueentry.FieldAiProcessingMs:
		return m.AiProcessingMs()
	case aiqueueentry.FieldAiProcessedAt:
		return m.AiProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AiQueueEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aiqueueentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case aiqueueentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case aiqueueentry.FieldScanID:
		return m.OldScanID(ctx)
	case aiqueueentry.FieldReservationID:
		return m.OldReservationID(ctx)
	case aiqueueentry.FieldAiStatus:
		return m.OldAiStatus(ctx)
	case aiqueueentry.FieldAiInputTokens:
		return m.OldAiInputTokens(ctx)
	case aiqueueentry.FieldAiOutputTokens:
		return m.OldAiOutputTokens(ctx)
	case aiqueueentry.FieldAiTotalTokens:
		return m.OldAiTotalTokens(ctx)
	case aiqueueentry.FieldAiModel:
		return m.OldAiModel(ctx)
	case aiqueueentry.FieldAiProcessingMs:
		return m.OldAiProcessingMs(ctx)
	case aiqueueentry.FieldAiProcessedAt:
		return m.OldAiProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AiQueueEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AiQueueEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aiqueueentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case aiqueueentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case aiqueueentry.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case aiqueueentry.FieldReservationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservationID(v)
		return nil
	case aiqueueentry.FieldAiStatus:
		v, ok := value.(aiqueueentry.AiStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiStatus(v)
		return nil
	case aiqueueentry.FieldAiInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiInputTokens(v)
		return nil
	case aiqueueentry.FieldAiOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiOutputTokens(v)
		return nil
	case aiqueueentry.FieldAiTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiTotalTokens(v)
		return nil
	case aiqueueentry.FieldAiModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiModel(v)
		return nil
	case aiqueueentry.FieldAiProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiProcessingMs(v)
		return nil
	case aiqueueentry.FieldAiProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AiQueueEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AiQueueEntryMutation) AddedFields() []string {
	var fields []string
	if m.addai_input_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiInputTokens)
	}
	if m.addai_output_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiOutputTokens)
	}
	if m.addai_total_tokens != nil {
		fields = append(fields, aiqueueentry.FieldAiTotalTokens)
	}
	if m.addai_processing_ms != nil {
		fields = append(fields, aiqueueentry.FieldAiProcessingMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AiQueueEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aiqueueentry.FieldAiInputTokens:
		return m.AddedAiInputTokens()
	case aiqueueentry.FieldAiOutputTokens:
		return m.AddedAiOutputTokens()
	case aiqueueentry.FieldAiTotalTokens:
		return m.AddedAiTotalTokens()
	case aiqueueentry.FieldAiProcessingMs:
		return m.AddedAiProcessingMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AiQueueEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aiqueueentry.FieldAiInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiInputTokens(v)
		return nil
	case aiqueueentry.FieldAiOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiOutputTokens(v)
		return nil
	case aiqueueentry.FieldAiTotalTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiTotalTokens(v)
		return nil
	case aiqueueentry.FieldAiProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiProcessingMs(v)
		return nil
	}
	return fmt.Errorf("unknown AiQueueEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AiQueueEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aiqueueentry.FieldAiModel) {
		fields = append(fields, aiqueueentry.FieldAiModel)
	}
	if m.FieldCleared(aiqueueentry.FieldAiProcessedAt) {
		fields = append(fields, aiqueueentry.FieldAiProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AiQueueEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AiQueueEntryMutation) ClearField(name string) error {
	switch name {
	case aiqueueentry.FieldAiModel:
		m.ClearAiModel()
		return nil
	case aiqueueentry.FieldAiProcessedAt:
		m.ClearAiProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown AiQueueEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AiQueueEntryMutation) ResetField(name string) error {
	switch name {
	case aiqueueentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case aiqueueentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case aiqueueentry.FieldScanID:
		m.ResetScanID()
		return nil
	case aiqueueentry.FieldReservationID:
		m.ResetReservationID()
		return nil
	case aiqueueentry.FieldAiStatus:
		m.ResetAiStatus()
		return nil
	case aiqueueentry.FieldAiInputTokens:
		m.ResetAiInputTokens()
		return nil
	case aiqueueentry.FieldAiOutputTokens:
		m.ResetAiOutputTokens()
		return nil
	case aiqueueentry.FieldAiTotalTokens:
		m.ResetAiTotalTokens()
		return nil
	case aiqueueentry.FieldAiModel:
		m.ResetAiModel()
		return nil
	case aiqueueentry.FieldAiProcessingMs:
		m.ResetAiProcessingMs()
		return nil
	case aiqueueentry.FieldAiProcessedAt:
		m.ResetAiProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown AiQueueEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AiQueueEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AiQueueEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AiQueueEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AiQueueEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AiQueueEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AiQueueEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AiQueueEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AiQueueEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AiQueueEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AiQueueEntry edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	action        *string
	resource_type *string
	resource_id   *string
	actor         *string
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetResourceType sets the "resource_type" field.
func (m *AuditLogMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *AuditLogMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *AuditLogMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *AuditLogMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *AuditLogMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *AuditLogMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.resource_type != nil {
		fields = append(fields, auditlog.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, auditlog.FieldResourceID)
	}
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldResourceType:
		return m.ResourceType()
	case auditlog.FieldResourceID:
		return m.ResourceID()
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldResourceType:
		return m.OldResourceType(ctx)
	case auditlog.FieldResourceID:
		return m.OldResourceID(ctx)
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case auditlog.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldResourceType:
		m.ResetResourceType()
		return nil
	case auditlog.FieldResourceID:
		m.ResetResourceID()
		return nil
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	homepage_url       *string
	wcag_level         *batch.WcagLevel
	status             *batch.Status
	total_urls         *int
	addtotal_urls      *int
	completed_count    *int
	addcompleted_count *int
	failed_count       *int
	addfailed_count    *int
	total_issues       *int
	addtotal_issues    *int
	critical_issues    *int
	addcritical_issues *int
	serious_issues     *int
	addserious_issues  *int
	moderate_issues    *int
	addmoderate_issues *int
	minor_issues       *int
	addminor_issues    *int
	passed_checks      *int
	addpassed_checks   *int
	ai_enabled         *bool
	created_by         *string
	completed_at       *time.Time
	cancelled_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Batch, error)
	predicates         []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id string) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetHomepageURL sets the "homepage_url" field.
func (m *BatchMutation) SetHomepageURL(s string) {
	m.homepage_url = &s
}

// HomepageURL returns the value of the "homepage_url" field in the mutation.
func (m *BatchMutation) HomepageURL() (r string, exists bool) {
	v := m.homepage_url
	if v == nil {
		return
	}
	return *v, true
}

// OldHomepageURL returns the old "homepage_url" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldHomepageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHomepageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHomepageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHomepageURL: %w", err)
	}
	return oldValue.HomepageURL, nil
}

// ResetHomepageURL resets all changes to the "homepage_url" field.
func (m *BatchMutation) ResetHomepageURL() {
	m.homepage_url = nil
}

// SetWcagLevel sets the "wcag_level" field.
func (m *BatchMutation) SetWcagLevel(bl batch.WcagLevel) {
	m.wcag_level = &bl
}

// WcagLevel returns the value of the "wcag_level" field in the mutation.
func (m *BatchMutation) WcagLevel() (r batch.WcagLevel, exists bool) {
	v := m.wcag_level
	if v == nil {
		return
	}
	return *v, true
}

// OldWcagLevel returns the old "wcag_level" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldWcagLevel(ctx context.Context) (v batch.WcagLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWcagLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWcagLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWcagLevel: %w", err)
	}
	return oldValue.WcagLevel, nil
}

// ResetWcagLevel resets all changes to the "wcag_level" field.
func (m *BatchMutation) ResetWcagLevel() {
	m.wcag_level = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(b batch.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r batch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v batch.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetTotalUrls sets the "total_urls" field.
func (m *BatchMutation) SetTotalUrls(i int) {
	m.total_urls = &i
	m.addtotal_urls = nil
}

// TotalUrls returns the value of the "total_urls" field in the mutation.
func (m *BatchMutation) TotalUrls() (r int, exists bool) {
	v := m.total_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUrls returns the old "total_urls" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalUrls(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUrls: %w", err)
	}
	return oldValue.TotalUrls, nil
}

// AddTotalUrls adds i to the "total_urls" field.
func (m *BatchMutation) AddTotalUrls(i int) {
	if m.addtotal_urls != nil {
		*m.addtotal_urls += i
	} else {
		m.addtotal_urls = &i
	}
}

// AddedTotalUrls returns the value that was added to the "total_urls" field in this mutation.
func (m *BatchMutation) AddedTotalUrls() (r int, exists bool) {
	v := m.addtotal_urls
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalUrls resets all changes to the "total_urls" field.
func (m *BatchMutation) ResetTotalUrls() {
	m.total_urls = nil
	m.addtotal_urls = nil
}

// SetCompletedCount sets the "completed_count" field.
func (m *BatchMutation) SetCompletedCount(i int) {
	m.completed_count = &i
	m.addcompleted_count = nil
}

// CompletedCount returns the value of the "completed_count" field in the mutation.
func (m *BatchMutation) CompletedCount() (r int, exists bool) {
	v := m.completed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCount returns the old "completed_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCompletedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCount: %w", err)
	}
	return oldValue.CompletedCount, nil
}

// AddCompletedCount adds i to the "completed_count" field.
func (m *BatchMutation) AddCompletedCount(i int) {
	if m.addcompleted_count != nil {
		*m.addcompleted_count += i
	} else {
		m.addcompleted_count = &i
	}
}

// AddedCompletedCount returns the value that was added to the "completed_count" field in this mutation.
func (m *BatchMutation) AddedCompletedCount() (r int, exists bool) {
	v := m.addcompleted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCount resets all changes to the "completed_count" field.
func (m *BatchMutation) ResetCompletedCount() {
	m.completed_count = nil
	m.addcompleted_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *BatchMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *BatchMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *BatchMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *BatchMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *BatchMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetTotalIssues sets the "total_issues" field.
func (m *BatchMutation) SetTotalIssues(i int) {
	m.total_issues = &i
	m.addtotal_issues = nil
}

// TotalIssues returns the value of the "total_issues" field in the mutation.
func (m *BatchMutation) TotalIssues() (r int, exists bool) {
	v := m.total_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalIssues returns the old "total_issues" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalIssues: %w", err)
	}
	return oldValue.TotalIssues, nil
}

// AddTotalIssues adds i to the "total_issues" field.
func (m *BatchMutation) AddTotalIssues(i int) {
	if m.addtotal_issues != nil {
		*m.addtotal_issues += i
	} else {
		m.addtotal_issues = &i
	}
}

// AddedTotalIssues returns the value that was added to the "total_issues" field in this mutation.
func (m *BatchMutation) AddedTotalIssues() (r int, exists bool) {
	v := m.addtotal_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalIssues resets all changes to the "total_issues" field.
func (m *BatchMutation) ResetTotalIssues() {
	m.total_issues = nil
	m.addtotal_issues = nil
}

// SetCriticalIssues sets the "critical_issues" field.
func (m *BatchMutation) SetCriticalIssues(i int) {
	m.critical_issues = &i
	m.addcritical_issues = nil
}

// CriticalIssues returns the value of the "critical_issues" field in the mutation.
func (m *BatchMutation) CriticalIssues() (r int, exists bool) {
	v := m.critical_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalIssues returns the old "critical_issues" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCriticalIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalIssues: %w", err)
	}
	return oldValue.CriticalIssues, nil
}

// AddCriticalIssues adds i to the "critical_issues" field.
func (m *BatchMutation) AddCriticalIssues(i int) {
	if m.addcritical_issues != nil {
		*m.addcritical_issues += i
	} else {
		m.addcritical_issues = &i
	}
}

// AddedCriticalIssues returns the value that was added to the "critical_issues" field in this mutation.
func (m *BatchMutation) AddedCriticalIssues() (r int, exists bool) {
	v := m.addcritical_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticalIssues resets all changes to the "critical_issues" field.
func (m *BatchMutation) ResetCriticalIssues() {
	m.critical_issues = nil
	m.addcritical_issues = nil
}

// SetSeriousIssues sets the "serious_issues" field.
func (m *BatchMutation) SetSeriousIssues(i int) {
	m.serious_issues = &i
	m.addserious_issues = nil
}

// SeriousIssues returns the value of the "serious_issues" field in the mutation.
func (m *BatchMutation) SeriousIssues() (r int, exists bool) {
	v := m.serious_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriousIssues returns the old "serious_issues" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSeriousIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriousIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriousIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriousIssues: %w", err)
	}
	return oldValue.SeriousIssues, nil
}

// AddSeriousIssues adds i to the "serious_issues" field.
func (m *BatchMutation) AddSeriousIssues(i int) {
	if m.addserious_issues != nil {
		*m.addserious_issues += i
	} else {
		m.addserious_issues = &i
	}
}

// AddedSeriousIssues returns the value that was added to the "serious_issues" field in this mutation.
func (m *BatchMutation) AddedSeriousIssues() (r int, exists bool) {
	v := m.addserious_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeriousIssues resets all changes to the "serious_issues" field.
func (m *BatchMutation) ResetSeriousIssues() {
	m.serious_issues = nil
	m.addserious_issues = nil
}

// SetModerateIssues sets the "moderate_issues" field.
func (m *BatchMutation) SetModerateIssues(i int) {
	m.moderate_issues = &i
	m.addmoderate_issues = nil
}

// ModerateIssues returns the value of the "moderate_issues" field in the mutation.
func (m *BatchMutation) ModerateIssues() (r int, exists bool) {
	v := m.moderate_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldModerateIssues returns the old "moderate_issues" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldModerateIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModerateIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModerateIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModerateIssues: %w", err)
	}
	return oldValue.ModerateIssues, nil
}

// AddModerateIssues adds i to the "moderate_issues" field.
func (m *BatchMutation) AddModerateIssues(i int) {
	if m.addmoderate_issues != nil {
		*m.addmoderate_issues += i
	} else {
		m.addmoderate_issues = &i
	}
}

// AddedModerateIssues returns the value that was added to the "moderate_issues" field in this mutation.
func (m *BatchMutation) AddedModerateIssues() (r int, exists bool) {
	v := m.addmoderate_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetModerateIssues resets all changes to the "moderate_issues" field.
func (m *BatchMutation) ResetModerateIssues() {
	m.moderate_issues = nil
	m.addmoderate_issues = nil
}

// SetMinorIssues sets the "minor_issues" field.
func (m *BatchMutation) SetMinorIssues(i int) {
	m.minor_issues = &i
	m.addminor_issues = nil
}

// MinorIssues returns the value of the "minor_issues" field in the mutation.
func (m *BatchMutation) MinorIssues() (r int, exists bool) {
	v := m.minor_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorIssues returns the old "minor_issues" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldMinorIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorIssues: %w", err)
	}
	return oldValue.MinorIssues, nil
}

// AddMinorIssues adds i to the "minor_issues" field.
func (m *BatchMutation) AddMinorIssues(i int) {
	if m.addminor_issues != nil {
		*m.addminor_issues += i
	} else {
		m.addminor_issues = &i
	}
}

// AddedMinorIssues returns the value that was added to the "minor_issues" field in this mutation.
func (m *BatchMutation) AddedMinorIssues() (r int, exists bool) {
	v := m.addminor_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinorIssues resets all changes to the "minor_issues" field.
func (m *BatchMutation) ResetMinorIssues() {
	m.minor_issues = nil
	m.addminor_issues = nil
}

// SetPassedChecks sets the "passed_checks" field.
func (m *BatchMutation) SetPassedChecks(i int) {
	m.passed_checks = &i
	m.addpassed_checks = nil
}

// PassedChecks returns the value of the "passed_checks" field in the mutation.
func (m *BatchMutation) PassedChecks() (r int, exists bool) {
	v := m.passed_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedChecks returns the old "passed_checks" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldPassedChecks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedChecks: %w", err)
	}
	return oldValue.PassedChecks, nil
}

// AddPassedChecks adds i to the "passed_checks" field.
func (m *BatchMutation) AddPassedChecks(i int) {
	if m.addpassed_checks != nil {
		*m.addpassed_checks += i
	} else {
		m.addpassed_checks = &i
	}
}

// AddedPassedChecks returns the value that was added to the "passed_checks" field in this mutation.
func (m *BatchMutation) AddedPassedChecks() (r int, exists bool) {
	v := m.addpassed_checks
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassedChecks resets all changes to the "passed_checks" field.
func (m *BatchMutation) ResetPassedChecks() {
	m.passed_checks = nil
	m.addpassed_checks = nil
}

// SetAiEnabled sets the "ai_enabled" field.
func (m *BatchMutation) SetAiEnabled(b bool) {
	m.ai_enabled = &b
}

// AiEnabled returns the value of the "ai_enabled" field in the mutation.
func (m *BatchMutation) AiEnabled() (r bool, exists bool) {
	v := m.ai_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAiEnabled returns the old "ai_enabled" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldAiEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiEnabled: %w", err)
	}
	return oldValue.AiEnabled, nil
}

// ResetAiEnabled resets all changes to the "ai_enabled" field.
func (m *BatchMutation) ResetAiEnabled() {
	m.ai_enabled = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *BatchMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *BatchMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *BatchMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *BatchMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BatchMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BatchMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[batch.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BatchMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BatchMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, batch.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *BatchMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *BatchMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *BatchMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[batch.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *BatchMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *BatchMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, batch.FieldCancelledAt)
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, batch.FieldUpdatedAt)
	}
	if m.homepage_url != nil {
		fields = append(fields, batch.FieldHomepageURL)
	}
	if m.wcag_level != nil {
		fields = append(fields, batch.FieldWcagLevel)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.total_urls != nil {
		fields = append(fields, batch.FieldTotalUrls)
	}
	if m.completed_count != nil {
		fields = append(fields, batch.FieldCompletedCount)
	}
	if m.failed_count != nil {
		fields = append(fields, batch.FieldFailedCount)
	}
	if m.total_issues != nil {
		fields = append(fields, batch.FieldTotalIssues)
	}
	if m.critical_issues != nil {
		fields = append(fields, batch.FieldCriticalIssues)
	}
	if m.serious_issues != nil {
		fields = append(fields, batch.FieldSeriousIssues)
	}
	if m.moderate_issues != nil {
		fields = append(fields, batch.FieldModerateIssues)
	}
	if m.minor_issues != nil {
		fields = append(fields, batch.FieldMinorIssues)
	}
	if m.passed_checks != nil {
		fields = append(fields, batch.FieldPassedChecks)
	}
	if m.ai_enabled != nil {
		fields = append(fields, batch.FieldAiEnabled)
	}
	if m.created_by != nil {
		fields = append(fields, batch.FieldCreatedBy)
	}
	if m.completed_at != nil {
		fields = append(fields, batch.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, batch.FieldCancelledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldUpdatedAt:
		return m.UpdatedAt()
	case batch.FieldHomepageURL:
		return m.HomepageURL()
	case batch.FieldWcagLevel:
		return m.WcagLevel()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldTotalUrls:
		return m.TotalUrls()
	case batch.FieldCompletedCount:
		return m.CompletedCount()
	case batch.FieldFailedCount:
		return m.FailedCount()
	case batch.FieldTotalIssues:
		return m.TotalIssues()
	case batch.FieldCriticalIssues:
		return m.CriticalIssues()
	case batch.FieldSeriousIssues:
		return m.SeriousIssues()
	case batch.FieldModerateIssues:
		return m.ModerateIssues()
	case batch.FieldMinorIssues:
		return m.MinorIssues()
	case batch.FieldPassedChecks:
		return m.PassedChecks()
	case batch.FieldAiEnabled:
		return m.AiEnabled()
	case batch.FieldCreatedBy:
		return m.CreatedBy()
	case batch.FieldCompletedAt:
		return m.CompletedAt()
	case batch.FieldCancelledAt:
		return m.CancelledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case batch.FieldHomepageURL:
		return m.OldHomepageURL(ctx)
	case batch.FieldWcagLevel:
		return m.OldWcagLevel(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldTotalUrls:
		return m.OldTotalUrls(ctx)
	case batch.FieldCompletedCount:
		return m.OldCompletedCount(ctx)
	case batch.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case batch.FieldTotalIssues:
		return m.OldTotalIssues(ctx)
	case batch.FieldCriticalIssues:
		return m.OldCriticalIssues(ctx)
	case batch.FieldSeriousIssues:
		return m.OldSeriousIssues(ctx)
	case batch.FieldModerateIssues:
		return m.OldModerateIssues(ctx)
	case batch.FieldMinorIssues:
		return m.OldMinorIssues(ctx)
	case batch.FieldPassedChecks:
		return m.OldPassedChecks(ctx)
	case batch.FieldAiEnabled:
		return m.OldAiEnabled(ctx)
	case batch.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case batch.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case batch.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case batch.FieldHomepageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHomepageURL(v)
		return nil
	case batch.FieldWcagLevel:
		v, ok := value.(batch.WcagLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWcagLevel(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(batch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldTotalUrls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUrls(v)
		return nil
	case batch.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCount(v)
		return nil
	case batch.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case batch.FieldTotalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalIssues(v)
		return nil
	case batch.FieldCriticalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalIssues(v)
		return nil
	case batch.FieldSeriousIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriousIssues(v)
		return nil
	case batch.FieldModerateIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModerateIssues(v)
		return nil
	case batch.FieldMinorIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorIssues(v)
		return nil
	case batch.FieldPassedChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedChecks(v)
		return nil
	case batch.FieldAiEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiEnabled(v)
		return nil
	case batch.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case batch.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case batch.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_urls != nil {
		fields = append(fields, batch.FieldTotalUrls)
	}
	if m.addcompleted_count != nil {
		fields = append(fields, batch.FieldCompletedCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, batch.FieldFailedCount)
	}
	if m.addtotal_issues != nil {
		fields = append(fields, batch.FieldTotalIssues)
	}
	if m.addcritical_issues != nil {
		fields = append(fields, batch.FieldCriticalIssues)
	}
	if m.addserious_issues != nil {
		fields = append(fields, batch.FieldSeriousIssues)
	}
	if m.addmoderate_issues != nil {
		fields = append(fields, batch.FieldModerateIssues)
	}
	if m.addminor_issues != nil {
		fields = append(fields, batch.FieldMinorIssues)
	}
	if m.addpassed_checks != nil {
		fields = append(fields, batch.FieldPassedChecks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotalUrls:
		return m.AddedTotalUrls()
	case batch.FieldCompletedCount:
		return m.AddedCompletedCount()
	case batch.FieldFailedCount:
		return m.AddedFailedCount()
	case batch.FieldTotalIssues:
		return m.AddedTotalIssues()
	case batch.FieldCriticalIssues:
		return m.AddedCriticalIssues()
	case batch.FieldSeriousIssues:
		return m.AddedSeriousIssues()
	case batch.FieldModerateIssues:
		return m.AddedModerateIssues()
	case batch.FieldMinorIssues:
		return m.AddedMinorIssues()
	case batch.FieldPassedChecks:
		return m.AddedPassedChecks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotalUrls:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalUrls(v)
		return nil
	case batch.FieldCompletedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCount(v)
		return nil
	case batch.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case batch.FieldTotalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalIssues(v)
		return nil
	case batch.FieldCriticalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticalIssues(v)
		return nil
	case batch.FieldSeriousIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeriousIssues(v)
		return nil
	case batch.FieldModerateIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModerateIssues(v)
		return nil
	case batch.FieldMinorIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinorIssues(v)
		return nil
	case batch.FieldPassedChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassedChecks(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batch.FieldCompletedAt) {
		fields = append(fields, batch.FieldCompletedAt)
	}
	if m.FieldCleared(batch.FieldCancelledAt) {
		fields = append(fields, batch.FieldCancelledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	switch name {
	case batch.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case batch.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case batch.FieldHomepageURL:
		m.ResetHomepageURL()
		return nil
	case batch.FieldWcagLevel:
		m.ResetWcagLevel()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldTotalUrls:
		m.ResetTotalUrls()
		return nil
	case batch.FieldCompletedCount:
		m.ResetCompletedCount()
		return nil
	case batch.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case batch.FieldTotalIssues:
		m.ResetTotalIssues()
		return nil
	case batch.FieldCriticalIssues:
		m.ResetCriticalIssues()
		return nil
	case batch.FieldSeriousIssues:
		m.ResetSeriousIssues()
		return nil
	case batch.FieldModerateIssues:
		m.ResetModerateIssues()
		return nil
	case batch.FieldMinorIssues:
		m.ResetMinorIssues()
		return nil
	case batch.FieldPassedChecks:
		m.ResetPassedChecks()
		return nil
	case batch.FieldAiEnabled:
		m.ResetAiEnabled()
		return nil
	case batch.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case batch.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case batch.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Batch edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	created_at            *time.Time
	updated_at            *time.Time
	name                  *string
	total_token_budget    *int64
	addtotal_token_budget *int64
	used_tokens           *int64
	addused_tokens        *int64
	reserved_tokens       *int64
	addreserved_tokens    *int64
	status                *campaign.Status
	starts_at             *time.Time
	ends_at               *time.Time
	completed_ai_scans    *int
	addcompleted_ai_scans *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Campaign, error)
	predicates            []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id string) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Campaign entities.
func (m *CampaignMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetTotalTokenBudget sets the "total_token_budget" field.
func (m *CampaignMutation) SetTotalTokenBudget(i int64) {
	m.total_token_budget = &i
	m.addtotal_token_budget = nil
}

// TotalTokenBudget returns the value of the "total_token_budget" field in the mutation.
func (m *CampaignMutation) TotalTokenBudget() (r int64, exists bool) {
	v := m.total_token_budget
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokenBudget returns the old "total_token_budget" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldTotalTokenBudget(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokenBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokenBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokenBudget: %w", err)
	}
	return oldValue.TotalTokenBudget, nil
}

// AddTotalTokenBudget adds i to the "total_token_budget" field.
func (m *CampaignMutation) AddTotalTokenBudget(i int64) {
	if m.addtotal_token_budget != nil {
		*m.addtotal_token_budget += i
	} else {
		m.addtotal_token_budget = &i
	}
}

// AddedTotalTokenBudget returns the value that was added to the "total_token_budget" field in this mutation.
func (m *CampaignMutation) AddedTotalTokenBudget() (r int64, exists bool) {
	v := m.addtotal_token_budget
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokenBudget resets all changes to the "total_token_budget" field.
func (m *CampaignMutation) ResetTotalTokenBudget() {
	m.total_token_budget = nil
	m.addtotal_token_budget = nil
}

// SetUsedTokens sets the "used_tokens" field.
func (m *CampaignMutation) SetUsedTokens(i int64) {
	m.used_tokens = &i
	m.addused_tokens = nil
}

// UsedTokens returns the value of the "used_tokens" field in the mutation.
func (m *CampaignMutation) UsedTokens() (r int64, exists bool) {
	v := m.used_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedTokens returns the old "used_tokens" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUsedTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedTokens: %w", err)
	}
	return oldValue.UsedTokens, nil
}

// AddUsedTokens adds i to the "used_tokens" field.
func (m *CampaignMutation) AddUsedTokens(i int64) {
	if m.addused_tokens != nil {
		*m.addused_tokens += i
	} else {
		m.addused_tokens = &i
	}
}

// AddedUsedTokens returns the value that was added to the "used_tokens" field in this mutation.
func (m *CampaignMutation) AddedUsedTokens() (r int64, exists bool) {
	v := m.addused_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsedTokens resets all changes to the "used_tokens" field.
func (m *CampaignMutation) ResetUsedTokens() {
	m.used_tokens = nil
	m.addused_tokens = nil
}

// SetReservedTokens sets the "reserved_tokens" field.
func (m *CampaignMutation) SetReservedTokens(i int64) {
	m.reserved_tokens = &i
	m.addreserved_tokens = nil
}

// ReservedTokens returns the value of the "reserved_tokens" field in the mutation.
func (m *CampaignMutation) ReservedTokens() (r int64, exists bool) {
	v := m.reserved_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldReservedTokens returns the old "reserved_tokens" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldReservedTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReservedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReservedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReservedTokens: %w", err)
	}
	return oldValue.ReservedTokens, nil
}

// AddReservedTokens adds i to the "reserved_tokens" field.
func (m *CampaignMutation) AddReservedTokens(i int64) {
	if m.addreserved_tokens != nil {
		*m.addreserved_tokens += i
	} else {
		m.addreserved_tokens = &i
	}
}

// AddedReservedTokens returns the value that was added to the "reserved_tokens" field in this mutation.
func (m *CampaignMutation) AddedReservedTokens() (r int64, exists bool) {
	v := m.addreserved_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetReservedTokens resets all changes to the "reserved_tokens" field.
func (m *CampaignMutation) ResetReservedTokens() {
	m.reserved_tokens = nil
	m.addreserved_tokens = nil
}

// SetStatus sets the "status" field.
func (m *CampaignMutation) SetStatus(c campaign.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CampaignMutation) Status() (r campaign.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStatus(ctx context.Context) (v campaign.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CampaignMutation) ResetStatus() {
	m.status = nil
}

// SetStartsAt sets the "starts_at" field.
func (m *CampaignMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *CampaignMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *CampaignMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *CampaignMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *CampaignMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldEndsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *CampaignMutation) ResetEndsAt() {
	m.ends_at = nil
}

// SetCompletedAiScans sets the "completed_ai_scans" field.
func (m *CampaignMutation) SetCompletedAiScans(i int) {
	m.completed_ai_scans = &i
	m.addcompleted_ai_scans = nil
}

// CompletedAiScans returns the value of the "completed_ai_scans" field in the mutation.
func (m *CampaignMutation) CompletedAiScans() (r int, exists bool) {
	v := m.completed_ai_scans
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAiScans returns the old "completed_ai_scans" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCompletedAiScans(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAiScans is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAiScans requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAiScans: %w", err)
	}
	return oldValue.CompletedAiScans, nil
}

// AddCompletedAiScans adds i to the "completed_ai_scans" field.
func (m *CampaignMutation) AddCompletedAiScans(i int) {
	if m.addcompleted_ai_scans != nil {
		*m.addcompleted_ai_scans += i
	} else {
		m.addcompleted_ai_scans = &i
	}
}

// AddedCompletedAiScans returns the value that was added to the "completed_ai_scans" field in this mutation.
func (m *CampaignMutation) AddedCompletedAiScans() (r int, exists bool) {
	v := m.addcompleted_ai_scans
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedAiScans resets all changes to the "completed_ai_scans" field.
func (m *CampaignMutation) ResetCompletedAiScans() {
	m.completed_ai_scans = nil
	m.addcompleted_ai_scans = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.total_token_budget != nil {
		fields = append(fields, campaign.FieldTotalTokenBudget)
	}
	if m.used_tokens != nil {
		fields = append(fields, campaign.FieldUsedTokens)
	}
	if m.reserved_tokens != nil {
		fields = append(fields, campaign.FieldReservedTokens)
	}
	if m.status != nil {
		fields = append(fields, campaign.FieldStatus)
	}
	if m.starts_at != nil {
		fields = append(fields, campaign.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, campaign.FieldEndsAt)
	}
	if m.completed_ai_scans != nil {
		fields = append(fields, campaign.FieldCompletedAiScans)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldTotalTokenBudget:
		return m.TotalTokenBudget()
	case campaign.FieldUsedTokens:
		return m.UsedTokens()
	case campaign.FieldReservedTokens:
		return m.ReservedTokens()
	case campaign.FieldStatus:
		return m.Status()
	case campaign.FieldStartsAt:
		return m.StartsAt()
	case campaign.FieldEndsAt:
		return m.EndsAt()
	case campaign.FieldCompletedAiScans:
		return m.CompletedAiScans()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldTotalTokenBudget:
		return m.OldTotalTokenBudget(ctx)
	case campaign.FieldUsedTokens:
		return m.OldUsedTokens(ctx)
	case campaign.FieldReservedTokens:
		return m.OldReservedTokens(ctx)
	case campaign.FieldStatus:
		return m.OldStatus(ctx)
	case campaign.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case campaign.FieldEndsAt:
		return m.OldEndsAt(ctx)
	case campaign.FieldCompletedAiScans:
		return m.OldCompletedAiScans(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldTotalTokenBudget:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokenBudget(v)
		return nil
	case campaign.FieldUsedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedTokens(v)
		return nil
	case campaign.FieldReservedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReservedTokens(v)
		return nil
	case campaign.FieldStatus:
		v, ok := value.(campaign.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case campaign.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case campaign.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	case campaign.FieldCompletedAiScans:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAiScans(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_token_budget != nil {
		fields = append(fields, campaign.FieldTotalTokenBudget)
	}
	if m.addused_tokens != nil {
		fields = append(fields, campaign.FieldUsedTokens)
	}
	if m.addreserved_tokens != nil {
		fields = append(fields, campaign.FieldReservedTokens)
	}
	if m.addcompleted_ai_scans != nil {
		fields = append(fields, campaign.FieldCompletedAiScans)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldTotalTokenBudget:
		return m.AddedTotalTokenBudget()
	case campaign.FieldUsedTokens:
		return m.AddedUsedTokens()
	case campaign.FieldReservedTokens:
		return m.AddedReservedTokens()
	case campaign.FieldCompletedAiScans:
		return m.AddedCompletedAiScans()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldTotalTokenBudget:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokenBudget(v)
		return nil
	case campaign.FieldUsedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsedTokens(v)
		return nil
	case campaign.FieldReservedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReservedTokens(v)
		return nil
	case campaign.FieldCompletedAiScans:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAiScans(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldTotalTokenBudget:
		m.ResetTotalTokenBudget()
		return nil
	case campaign.FieldUsedTokens:
		m.ResetUsedTokens()
		return nil
	case campaign.FieldReservedTokens:
		m.ResetReservedTokens()
		return nil
	case campaign.FieldStatus:
		m.ResetStatus()
		return nil
	case campaign.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case campaign.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	case campaign.FieldCompletedAiScans:
		m.ResetCompletedAiScans()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// ReservationMutation represents an operation that mutates the Reservation nodes in the graph.
type ReservationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	updated_at          *time.Time
	campaign_id         *string
	scan_id             *string
	estimated_tokens    *int64
	addestimated_tokens *int64
	settled             *bool
	settled_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Reservation, error)
	predicates          []predicate.Reservation
}

var _ ent.Mutation = (*ReservationMutation)(nil)

// reservationOption allows management of the mutation configuration using functional options.
type reservationOption func(*ReservationMutation)

// newReservationMutation creates new mutation for the Reservation entity.
func newReservationMutation(c config, op Op, opts ...reservationOption) *ReservationMutation {
	m := &ReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReservationID sets the ID field of the mutation.
func withReservationID(id string) reservationOption {
	return func(m *ReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Reservation
		)
		m.oldValue = func(ctx context.Context) (*Reservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Reservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReservation sets the old Reservation of the mutation.
func withReservation(node *Reservation) reservationOption {
	return func(m *ReservationMutation) {
		m.oldValue = func(context.Context) (*Reservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Reservation entities.
func (m *ReservationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReservationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReservationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Reservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReservationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReservationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReservationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *ReservationMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *ReservationMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *ReservationMutation) ResetCampaignID() {
	m.campaign_id = nil
}

// SetScanID sets the "scan_id" field.
func (m *ReservationMutation) SetScanID(s string) {
	m.scan_id = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *ReservationMutation) ScanID() (r string, exists bool) {
	v := m.scan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *ReservationMutation) ResetScanID() {
	m.scan_id = nil
}

// SetEstimatedTokens sets the "estimated_tokens" field.
func (m *ReservationMutation) SetEstimatedTokens(i int64) {
	m.estimated_tokens = &i
	m.addestimated_tokens = nil
}

// EstimatedTokens returns the value of the "estimated_tokens" field in the mutation.
func (m *ReservationMutation) EstimatedTokens() (r int64, exists bool) {
	v := m.estimated_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedTokens returns the old "estimated_tokens" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldEstimatedTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedTokens: %w", err)
	}
	return oldValue.EstimatedTokens, nil
}

// AddEstimatedTokens adds i to the "estimated_tokens" field.
func (m *ReservationMutation) AddEstimatedTokens(i int64) {
	if m.addestimated_tokens != nil {
		*m.addestimated_tokens += i
	} else {
		m.addestimated_tokens = &i
	}
}

// AddedEstimatedTokens returns the value that was added to the "estimated_tokens" field in this mutation.
func (m *ReservationMutation) AddedEstimatedTokens() (r int64, exists bool) {
	v := m.addestimated_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedTokens resets all changes to the "estimated_tokens" field.
func (m *ReservationMutation) ResetEstimatedTokens() {
	m.estimated_tokens = nil
	m.addestimated_tokens = nil
}

// SetSettled sets the "settled" field.
func (m *ReservationMutation) SetSettled(b bool) {
	m.settled = &b
}

// Settled returns the value of the "settled" field in the mutation.
func (m *ReservationMutation) Settled() (r bool, exists bool) {
	v := m.settled
	if v == nil {
		return
	}
	return *v, true
}

// OldSettled returns the old "settled" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldSettled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettled: %w", err)
	}
	return oldValue.Settled, nil
}

// ResetSettled resets all changes to the "settled" field.
func (m *ReservationMutation) ResetSettled() {
	m.settled = nil
}

// SetSettledAt sets the "settled_at" field.
func (m *ReservationMutation) SetSettledAt(t time.Time) {
	m.settled_at = &t
}

// SettledAt returns the value of the "settled_at" field in the mutation.
func (m *ReservationMutation) SettledAt() (r time.Time, exists bool) {
	v := m.settled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSettledAt returns the old "settled_at" field's value of the Reservation entity.
// If the Reservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReservationMutation) OldSettledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettledAt: %w", err)
	}
	return oldValue.SettledAt, nil
}

// ClearSettledAt clears the value of the "settled_at" field.
func (m *ReservationMutation) ClearSettledAt() {
	m.settled_at = nil
	m.clearedFields[reservation.FieldSettledAt] = struct{}{}
}

// SettledAtCleared returns if the "settled_at" field was cleared in this mutation.
func (m *ReservationMutation) SettledAtCleared() bool {
	_, ok := m.clearedFields[reservation.FieldSettledAt]
	return ok
}

// ResetSettledAt resets all changes to the "settled_at" field.
func (m *ReservationMutation) ResetSettledAt() {
	m.settled_at = nil
	delete(m.clearedFields, reservation.FieldSettledAt)
}

// Where appends a list predicates to the ReservationMutation builder.
func (m *ReservationMutation) Where(ps ...predicate.Reservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Reservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Reservation).
func (m *ReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReservationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, reservation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reservation.FieldUpdatedAt)
	}
	if m.campaign_id != nil {
		fields = append(fields, reservation.FieldCampaignID)
	}
	if m.scan_id != nil {
		fields = append(fields, reservation.FieldScanID)
	}
	if m.estimated_tokens != nil {
		fields = append(fields, reservation.FieldEstimatedTokens)
	}
	if m.settled != nil {
		fields = append(fields, reservation.FieldSettled)
	}
	if m.settled_at != nil {
		fields = append(fields, reservation.FieldSettledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldCreatedAt:
		return m.CreatedAt()
	case reservation.FieldUpdatedAt:
		return m.UpdatedAt()
	case reservation.FieldCampaignID:
		return m.CampaignID()
	case reservation.FieldScanID:
		return m.ScanID()
	case reservation.FieldEstimatedTokens:
		return m.EstimatedTokens()
	case reservation.FieldSettled:
		return m.Settled()
	case reservation.FieldSettledAt:
		return m.SettledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reservation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reservation.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case reservation.FieldScanID:
		return m.OldScanID(ctx)
	case reservation.FieldEstimatedTokens:
		return m.OldEstimatedTokens(ctx)
	case reservation.FieldSettled:
		return m.OldSettled(ctx)
	case reservation.FieldSettledAt:
		return m.OldSettledAt(ctx)
	}
	return nil, fmt.Errorf("unknown Reservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reservation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reservation.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case reservation.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case reservation.FieldEstimatedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedTokens(v)
		return nil
	case reservation.FieldSettled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettled(v)
		return nil
	case reservation.FieldSettledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettledAt(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReservationMutation) AddedFields() []string {
	var fields []string
	if m.addestimated_tokens != nil {
		fields = append(fields, reservation.FieldEstimatedTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reservation.FieldEstimatedTokens:
		return m.AddedEstimatedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reservation.FieldEstimatedTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Reservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reservation.FieldSettledAt) {
		fields = append(fields, reservation.FieldSettledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReservationMutation) ClearField(name string) error {
	switch name {
	case reservation.FieldSettledAt:
		m.ClearSettledAt()
		return nil
	}
	return fmt.Errorf("unknown Reservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReservationMutation) ResetField(name string) error {
	switch name {
	case reservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reservation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reservation.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case reservation.FieldScanID:
		m.ResetScanID()
		return nil
	case reservation.FieldEstimatedTokens:
		m.ResetEstimatedTokens()
		return nil
	case reservation.FieldSettled:
		m.ResetSettled()
		return nil
	case reservation.FieldSettledAt:
		m.ResetSettledAt()
		return nil
	}
	return fmt.Errorf("unknown Reservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Reservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Reservation edge %s", name)
}

// ScanMutation represents an operation that mutates the Scan nodes in the graph.
type ScanMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	updated_at         *time.Time
	batch_id           *string
	url                *string
	page_title         *string
	status             *scan.Status
	total_issues       *int
	addtotal_issues    *int
	critical_issues    *int
	addcritical_issues *int
	serious_issues     *int
	addserious_issues  *int
	moderate_issues    *int
	addmoderate_issues *int
	minor_issues       *int
	addminor_issues    *int
	passed_checks      *int
	addpassed_checks   *int
	issues             *[]map[string]interface{}
	appendissues       []map[string]interface{}
	error_message      *string
	job_id             *string
	content_snapshot   *string
	ai_enabled         *bool
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Scan, error)
	predicates         []predicate.Scan
}

var _ ent.Mutation = (*ScanMutation)(nil)

// scanOption allows management of the mutation configuration using functional options.
type scanOption func(*ScanMutation)

// newScanMutation creates new mutation for the Scan entity.
func newScanMutation(c config, op Op, opts ...scanOption) *ScanMutation {
	m := &ScanMutation{
		config:        c,
		op:            op,
		typ:           TypeScan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanID sets the ID field of the mutation.
func withScanID(id string) scanOption {
	return func(m *ScanMutation) {
		var (
			err   error
			once  sync.Once
			value *Scan
		)
		m.oldValue = func(ctx context.Context) (*Scan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScan sets the old Scan of the mutation.
func withScan(node *Scan) scanOption {
	return func(m *ScanMutation) {
		m.oldValue = func(context.Context) (*Scan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Scan entities.
func (m *ScanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ScanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScanMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScanMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScanMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBatchID sets the "batch_id" field.
func (m *ScanMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ScanMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *ScanMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[scan.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *ScanMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[scan.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ScanMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, scan.FieldBatchID)
}

// SetURL sets the "url" field.
func (m *ScanMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ScanMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ScanMutation) ResetURL() {
	m.url = nil
}

// SetPageTitle sets the "page_title" field.
func (m *ScanMutation) SetPageTitle(s string) {
	m.page_title = &s
}

// PageTitle returns the value of the "page_title" field in the mutation.
func (m *ScanMutation) PageTitle() (r string, exists bool) {
	v := m.page_title
	if v == nil {
		return
	}
	return *v, true
}

// OldPageTitle returns the old "page_title" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldPageTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageTitle: %w", err)
	}
	return oldValue.PageTitle, nil
}

// ClearPageTitle clears the value of the "page_title" field.
func (m *ScanMutation) ClearPageTitle() {
	m.page_title = nil
	m.clearedFields[scan.FieldPageTitle] = struct{}{}
}

// PageTitleCleared returns if the "page_title" field was cleared in this mutation.
func (m *ScanMutation) PageTitleCleared() bool {
	_, ok := m.clearedFields[scan.FieldPageTitle]
	return ok
}

// ResetPageTitle resets all changes to the "page_title" field.
func (m *ScanMutation) ResetPageTitle() {
	m.page_title = nil
	delete(m.clearedFields, scan.FieldPageTitle)
}

// SetStatus sets the "status" field.
func (m *ScanMutation) SetStatus(s scan.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanMutation) Status() (r scan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldStatus(ctx context.Context) (v scan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanMutation) ResetStatus() {
	m.status = nil
}

// SetTotalIssues sets the "total_issues" field.
func (m *ScanMutation) SetTotalIssues(i int) {
	m.total_issues = &i
	m.addtotal_issues = nil
}

// TotalIssues returns the value of the "total_issues" field in the mutation.
func (m *ScanMutation) TotalIssues() (r int, exists bool) {
	v := m.total_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalIssues returns the old "total_issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldTotalIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalIssues: %w", err)
	}
	return oldValue.TotalIssues, nil
}

// AddTotalIssues adds i to the "total_issues" field.
func (m *ScanMutation) AddTotalIssues(i int) {
	if m.addtotal_issues != nil {
		*m.addtotal_issues += i
	} else {
		m.addtotal_issues = &i
	}
}

// AddedTotalIssues returns the value that was added to the "total_issues" field in this mutation.
func (m *ScanMutation) AddedTotalIssues() (r int, exists bool) {
	v := m.addtotal_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalIssues resets all changes to the "total_issues" field.
func (m *ScanMutation) ResetTotalIssues() {
	m.total_issues = nil
	m.addtotal_issues = nil
}

// SetCriticalIssues sets the "critical_issues" field.
func (m *ScanMutation) SetCriticalIssues(i int) {
	m.critical_issues = &i
	m.addcritical_issues = nil
}

// CriticalIssues returns the value of the "critical_issues" field in the mutation.
func (m *ScanMutation) CriticalIssues() (r int, exists bool) {
	v := m.critical_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldCriticalIssues returns the old "critical_issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldCriticalIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriticalIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriticalIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriticalIssues: %w", err)
	}
	return oldValue.CriticalIssues, nil
}

// AddCriticalIssues adds i to the "critical_issues" field.
func (m *ScanMutation) AddCriticalIssues(i int) {
	if m.addcritical_issues != nil {
		*m.addcritical_issues += i
	} else {
		m.addcritical_issues = &i
	}
}

// AddedCriticalIssues returns the value that was added to the "critical_issues" field in this mutation.
func (m *ScanMutation) AddedCriticalIssues() (r int, exists bool) {
	v := m.addcritical_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetCriticalIssues resets all changes to the "critical_issues" field.
func (m *ScanMutation) ResetCriticalIssues() {
	m.critical_issues = nil
	m.addcritical_issues = nil
}

// SetSeriousIssues sets the "serious_issues" field.
func (m *ScanMutation) SetSeriousIssues(i int) {
	m.serious_issues = &i
	m.addserious_issues = nil
}

// SeriousIssues returns the value of the "serious_issues" field in the mutation.
func (m *ScanMutation) SeriousIssues() (r int, exists bool) {
	v := m.serious_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriousIssues returns the old "serious_issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldSeriousIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriousIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriousIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriousIssues: %w", err)
	}
	return oldValue.SeriousIssues, nil
}

// AddSeriousIssues adds i to the "serious_issues" field.
func (m *ScanMutation) AddSeriousIssues(i int) {
	if m.addserious_issues != nil {
		*m.addserious_issues += i
	} else {
		m.addserious_issues = &i
	}
}

// AddedSeriousIssues returns the value that was added to the "serious_issues" field in this mutation.
func (m *ScanMutation) AddedSeriousIssues() (r int, exists bool) {
	v := m.addserious_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeriousIssues resets all changes to the "serious_issues" field.
func (m *ScanMutation) ResetSeriousIssues() {
	m.serious_issues = nil
	m.addserious_issues = nil
}

// SetModerateIssues sets the "moderate_issues" field.
func (m *ScanMutation) SetModerateIssues(i int) {
	m.moderate_issues = &i
	m.addmoderate_issues = nil
}

// ModerateIssues returns the value of the "moderate_issues" field in the mutation.
func (m *ScanMutation) ModerateIssues() (r int, exists bool) {
	v := m.moderate_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldModerateIssues returns the old "moderate_issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldModerateIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModerateIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModerateIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModerateIssues: %w", err)
	}
	return oldValue.ModerateIssues, nil
}

// AddModerateIssues adds i to the "moderate_issues" field.
func (m *ScanMutation) AddModerateIssues(i int) {
	if m.addmoderate_issues != nil {
		*m.addmoderate_issues += i
	} else {
		m.addmoderate_issues = &i
	}
}

// AddedModerateIssues returns the value that was added to the "moderate_issues" field in this mutation.
func (m *ScanMutation) AddedModerateIssues() (r int, exists bool) {
	v := m.addmoderate_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetModerateIssues resets all changes to the "moderate_issues" field.
func (m *ScanMutation) ResetModerateIssues() {
	m.moderate_issues = nil
	m.addmoderate_issues = nil
}

// SetMinorIssues sets the "minor_issues" field.
func (m *ScanMutation) SetMinorIssues(i int) {
	m.minor_issues = &i
	m.addminor_issues = nil
}

// MinorIssues returns the value of the "minor_issues" field in the mutation.
func (m *ScanMutation) MinorIssues() (r int, exists bool) {
	v := m.minor_issues
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorIssues returns the old "minor_issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldMinorIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorIssues: %w", err)
	}
	return oldValue.MinorIssues, nil
}

// AddMinorIssues adds i to the "minor_issues" field.
func (m *ScanMutation) AddMinorIssues(i int) {
	if m.addminor_issues != nil {
		*m.addminor_issues += i
	} else {
		m.addminor_issues = &i
	}
}

// AddedMinorIssues returns the value that was added to the "minor_issues" field in this mutation.
func (m *ScanMutation) AddedMinorIssues() (r int, exists bool) {
	v := m.addminor_issues
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinorIssues resets all changes to the "minor_issues" field.
func (m *ScanMutation) ResetMinorIssues() {
	m.minor_issues = nil
	m.addminor_issues = nil
}

// SetPassedChecks sets the "passed_checks" field.
func (m *ScanMutation) SetPassedChecks(i int) {
	m.passed_checks = &i
	m.addpassed_checks = nil
}

// PassedChecks returns the value of the "passed_checks" field in the mutation.
func (m *ScanMutation) PassedChecks() (r int, exists bool) {
	v := m.passed_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldPassedChecks returns the old "passed_checks" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldPassedChecks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassedChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassedChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassedChecks: %w", err)
	}
	return oldValue.PassedChecks, nil
}

// AddPassedChecks adds i to the "passed_checks" field.
func (m *ScanMutation) AddPassedChecks(i int) {
	if m.addpassed_checks != nil {
		*m.addpassed_checks += i
	} else {
		m.addpassed_checks = &i
	}
}

// AddedPassedChecks returns the value that was added to the "passed_checks" field in this mutation.
func (m *ScanMutation) AddedPassedChecks() (r int, exists bool) {
	v := m.addpassed_checks
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassedChecks resets all changes to the "passed_checks" field.
func (m *ScanMutation) ResetPassedChecks() {
	m.passed_checks = nil
	m.addpassed_checks = nil
}

// SetIssues sets the "issues" field.
func (m *ScanMutation) SetIssues(value []map[string]interface{}) {
	m.issues = &value
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *ScanMutation) Issues() (r []map[string]interface{}, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldIssues(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds value to the "issues" field.
func (m *ScanMutation) AppendIssues(value []map[string]interface{}) {
	m.appendissues = append(m.appendissues, value...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *ScanMutation) AppendedIssues() ([]map[string]interface{}, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *ScanMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[scan.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *ScanMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[scan.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *ScanMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, scan.FieldIssues)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scan.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scan.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scan.FieldErrorMessage)
}

// SetJobID sets the "job_id" field.
func (m *ScanMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ScanMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *ScanMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[scan.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *ScanMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[scan.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ScanMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, scan.FieldJobID)
}

// SetContentSnapshot sets the "content_snapshot" field.
func (m *ScanMutation) SetContentSnapshot(s string) {
	m.content_snapshot = &s
}

// ContentSnapshot returns the value of the "content_snapshot" field in the mutation.
func (m *ScanMutation) ContentSnapshot() (r string, exists bool) {
	v := m.content_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldContentSnapshot returns the old "content_snapshot" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldContentSnapshot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentSnapshot: %w", err)
	}
	return oldValue.ContentSnapshot, nil
}

// ClearContentSnapshot clears the value of the "content_snapshot" field.
func (m *ScanMutation) ClearContentSnapshot() {
	m.content_snapshot = nil
	m.clearedFields[scan.FieldContentSnapshot] = struct{}{}
}

// ContentSnapshotCleared returns if the "content_snapshot" field was cleared in this mutation.
func (m *ScanMutation) ContentSnapshotCleared() bool {
	_, ok := m.clearedFields[scan.FieldContentSnapshot]
	return ok
}

// ResetContentSnapshot resets all changes to the "content_snapshot" field.
func (m *ScanMutation) ResetContentSnapshot() {
	m.content_snapshot = nil
	delete(m.clearedFields, scan.FieldContentSnapshot)
}

// SetAiEnabled sets the "ai_enabled" field.
func (m *ScanMutation) SetAiEnabled(b bool) {
	m.ai_enabled = &b
}

// AiEnabled returns the value of the "ai_enabled" field in the mutation.
func (m *ScanMutation) AiEnabled() (r bool, exists bool) {
	v := m.ai_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAiEnabled returns the old "ai_enabled" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldAiEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiEnabled: %w", err)
	}
	return oldValue.AiEnabled, nil
}

// ResetAiEnabled resets all changes to the "ai_enabled" field.
func (m *ScanMutation) ResetAiEnabled() {
	m.ai_enabled = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ScanMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ScanMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Scan entity.
// If the Scan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ScanMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[scan.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ScanMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[scan.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ScanMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, scan.FieldCompletedAt)
}

// Where appends a list predicates to the ScanMutation builder.
func (m *ScanMutation) Where(ps ...predicate.Scan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scan).
func (m *ScanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, scan.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scan.FieldUpdatedAt)
	}
	if m.batch_id != nil {
		fields = append(fields, scan.FieldBatchID)
	}
	if m.url != nil {
		fields = append(fields, scan.FieldURL)
	}
	if m.page_title != nil {
		fields = append(fields, scan.FieldPageTitle)
	}
	if m.status != nil {
		fields = append(fields, scan.FieldStatus)
	}
	if m.total_issues != nil {
		fields = append(fields, scan.FieldTotalIssues)
	}
	if m.critical_issues != nil {
		fields = append(fields, scan.FieldCriticalIssues)
	}
	if m.serious_issues != nil {
		fields = append(fields, scan.FieldSeriousIssues)
	}
	if m.moderate_issues != nil {
		fields = append(fields, scan.FieldModerateIssues)
	}
	if m.minor_issues != nil {
		fields = append(fields, scan.FieldMinorIssues)
	}
	if m.passed_checks != nil {
		fields = append(fields, scan.FieldPassedChecks)
	}
	if m.issues != nil {
		fields = append(fields, scan.FieldIssues)
	}
	if m.error_message != nil {
		fields = append(fields, scan.FieldErrorMessage)
	}
	if m.job_id != nil {
		fields = append(fields, scan.FieldJobID)
	}
	if m.content_snapshot != nil {
		fields = append(fields, scan.FieldContentSnapshot)
	}
	if m.ai_enabled != nil {
		fields = append(fields, scan.FieldAiEnabled)
	}
	if m.completed_at != nil {
		fields = append(fields, scan.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scan.FieldCreatedAt:
		return m.CreatedAt()
	case scan.FieldUpdatedAt:
		return m.UpdatedAt()
	case scan.FieldBatchID:
		return m.BatchID()
	case scan.FieldURL:
		return m.URL()
	case scan.FieldPageTitle:
		return m.PageTitle()
	case scan.FieldStatus:
		return m.Status()
	case scan.FieldTotalIssues:
		return m.TotalIssues()
	case scan.FieldCriticalIssues:
		return m.CriticalIssues()
	case scan.FieldSeriousIssues:
		return m.SeriousIssues()
	case scan.FieldModerateIssues:
		return m.ModerateIssues()
	case scan.FieldMinorIssues:
		return m.MinorIssues()
	case scan.FieldPassedChecks:
		return m.PassedChecks()
	case scan.FieldIssues:
		return m.Issues()
	case scan.FieldErrorMessage:
		return m.ErrorMessage()
	case scan.FieldJobID:
		return m.JobID()
	case scan.FieldContentSnapshot:
		return m.ContentSnapshot()
	case scan.FieldAiEnabled:
		return m.AiEnabled()
	case scan.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scan.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case scan.FieldBatchID:
		return m.OldBatchID(ctx)
	case scan.FieldURL:
		return m.OldURL(ctx)
	case scan.FieldPageTitle:
		return m.OldPageTitle(ctx)
	case scan.FieldStatus:
		return m.OldStatus(ctx)
	case scan.FieldTotalIssues:
		return m.OldTotalIssues(ctx)
	case scan.FieldCriticalIssues:
		return m.OldCriticalIssues(ctx)
	case scan.FieldSeriousIssues:
		return m.OldSeriousIssues(ctx)
	case scan.FieldModerateIssues:
		return m.OldModerateIssues(ctx)
	case scan.FieldMinorIssues:
		return m.OldMinorIssues(ctx)
	case scan.FieldPassedChecks:
		return m.OldPassedChecks(ctx)
	case scan.FieldIssues:
		return m.OldIssues(ctx)
	case scan.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scan.FieldJobID:
		return m.OldJobID(ctx)
	case scan.FieldContentSnapshot:
		return m.OldContentSnapshot(ctx)
	case scan.FieldAiEnabled:
		return m.OldAiEnabled(ctx)
	case scan.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scan.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case scan.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case scan.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case scan.FieldPageTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageTitle(v)
		return nil
	case scan.FieldStatus:
		v, ok := value.(scan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scan.FieldTotalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalIssues(v)
		return nil
	case scan.FieldCriticalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriticalIssues(v)
		return nil
	case scan.FieldSeriousIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriousIssues(v)
		return nil
	case scan.FieldModerateIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModerateIssues(v)
		return nil
	case scan.FieldMinorIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorIssues(v)
		return nil
	case scan.FieldPassedChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassedChecks(v)
		return nil
	case scan.FieldIssues:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case scan.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scan.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case scan.FieldContentSnapshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentSnapshot(v)
		return nil
	case scan.FieldAiEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiEnabled(v)
		return nil
	case scan.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_issues != nil {
		fields = append(fields, scan.FieldTotalIssues)
	}
	if m.addcritical_issues != nil {
		fields = append(fields, scan.FieldCriticalIssues)
	}
	if m.addserious_issues != nil {
		fields = append(fields, scan.FieldSeriousIssues)
	}
	if m.addmoderate_issues != nil {
		fields = append(fields, scan.FieldModerateIssues)
	}
	if m.addminor_issues != nil {
		fields = append(fields, scan.FieldMinorIssues)
	}
	if m.addpassed_checks != nil {
		fields = append(fields, scan.FieldPassedChecks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scan.FieldTotalIssues:
		return m.AddedTotalIssues()
	case scan.FieldCriticalIssues:
		return m.AddedCriticalIssues()
	case scan.FieldSeriousIssues:
		return m.AddedSeriousIssues()
	case scan.FieldModerateIssues:
		return m.AddedModerateIssues()
	case scan.FieldMinorIssues:
		return m.AddedMinorIssues()
	case scan.FieldPassedChecks:
		return m.AddedPassedChecks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scan.FieldTotalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalIssues(v)
		return nil
	case scan.FieldCriticalIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCriticalIssues(v)
		return nil
	case scan.FieldSeriousIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeriousIssues(v)
		return nil
	case scan.FieldModerateIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModerateIssues(v)
		return nil
	case scan.FieldMinorIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinorIssues(v)
		return nil
	case scan.FieldPassedChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassedChecks(v)
		return nil
	}
	return fmt.Errorf("unknown Scan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scan.FieldBatchID) {
		fields = append(fields, scan.FieldBatchID)
	}
	if m.FieldCleared(scan.FieldPageTitle) {
		fields = append(fields, scan.FieldPageTitle)
	}
	if m.FieldCleared(scan.FieldIssues) {
		fields = append(fields, scan.FieldIssues)
	}
	if m.FieldCleared(scan.FieldErrorMessage) {
		fields = append(fields, scan.FieldErrorMessage)
	}
	if m.FieldCleared(scan.FieldJobID) {
		fields = append(fields, scan.FieldJobID)
	}
	if m.FieldCleared(scan.FieldContentSnapshot) {
		fields = append(fields, scan.FieldContentSnapshot)
	}
	if m.FieldCleared(scan.FieldCompletedAt) {
		fields = append(fields, scan.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanMutation) ClearField(name string) error {
	switch name {
	case scan.FieldBatchID:
		m.ClearBatchID()
		return nil
	case scan.FieldPageTitle:
		m.ClearPageTitle()
		return nil
	case scan.FieldIssues:
		m.ClearIssues()
		return nil
	case scan.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scan.FieldJobID:
		m.ClearJobID()
		return nil
	case scan.FieldContentSnapshot:
		m.ClearContentSnapshot()
		return nil
	case scan.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Scan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanMutation) ResetField(name string) error {
	switch name {
	case scan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scan.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case scan.FieldBatchID:
		m.ResetBatchID()
		return nil
	case scan.FieldURL:
		m.ResetURL()
		return nil
	case scan.FieldPageTitle:
		m.ResetPageTitle()
		return nil
	case scan.FieldStatus:
		m.ResetStatus()
		return nil
	case scan.FieldTotalIssues:
		m.ResetTotalIssues()
		return nil
	case scan.FieldCriticalIssues:
		m.ResetCriticalIssues()
		return nil
	case scan.FieldSeriousIssues:
		m.ResetSeriousIssues()
		return nil
	case scan.FieldModerateIssues:
		m.ResetModerateIssues()
		return nil
	case scan.FieldMinorIssues:
		m.ResetMinorIssues()
		return nil
	case scan.FieldPassedChecks:
		m.ResetPassedChecks()
		return nil
	case scan.FieldIssues:
		m.ResetIssues()
		return nil
	case scan.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scan.FieldJobID:
		m.ResetJobID()
		return nil
	case scan.FieldContentSnapshot:
		m.ResetContentSnapshot()
		return nil
	case scan.FieldAiEnabled:
		m.ResetAiEnabled()
		return nil
	case scan.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Scan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Scan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Scan edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	updated_at        *time.Time
	username          *string
	password_hash     *string
	permissions       *[]string
	appendpermissions []string
	enabled           *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*User, error)
	predicates        []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetPermissions sets the "permissions" field.
func (m *UserMutation) SetPermissions(s []string) {
	m.permissions = &s
	m.appendpermissions = nil
}

// Permissions returns the value of the "permissions" field in the mutation.
func (m *UserMutation) Permissions() (r []string, exists bool) {
	v := m.permissions
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissions returns the old "permissions" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPermissions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissions: %w", err)
	}
	return oldValue.Permissions, nil
}

// AppendPermissions adds s to the "permissions" field.
func (m *UserMutation) AppendPermissions(s []string) {
	m.appendpermissions = append(m.appendpermissions, s...)
}

// AppendedPermissions returns the list of values that were appended to the "permissions" field in this mutation.
func (m *UserMutation) AppendedPermissions() ([]string, bool) {
	if len(m.appendpermissions) == 0 {
		return nil, false
	}
	return m.appendpermissions, true
}

// ResetPermissions resets all changes to the "permissions" field.
func (m *UserMutation) ResetPermissions() {
	m.permissions = nil
	m.appendpermissions = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.permissions != nil {
		fields = append(fields, user.FieldPermissions)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldPermissions:
		return m.Permissions()
	case user.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldPermissions:
		return m.OldPermissions(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldPermissions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissions(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldPermissions:
		m.ResetPermissions()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
