// Package aiqueue implements the offline AI-enhancement pipeline: a
// queue of admitted scans exported as CSV for external processing and
// settled back against the token budget on import.
package aiqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// BudgetController is the slice of the campaign admission controller
// the processor needs: settlement for imports, re-admission for
// retries, and the refusal context to shape retry errors.
type BudgetController interface {
	Admit(ctx context.Context, scanID string, estimatedTokens int64) (admitted bool, reservationID string, err error)
	Settle(ctx context.Context, reservationID string, actualTokens int64, succeeded bool) error
	ActiveReservation(ctx context.Context, scanID string) (reservationID string, ok bool, err error)
	AdmissionState(ctx context.Context) (status string, remainingTokens int64, err error)
}

// ScanCompleter delivers a scan outcome into the batch lifecycle.
// Duplicate deliveries are no-ops there, so the processor can call it
// unconditionally.
type ScanCompleter interface {
	OnScanCompleted(ctx context.Context, outcome domain.ScanOutcome) error
}

// Processor owns the AiQueueEntry state machine.
//
// PENDING -> DOWNLOADED -> PROCESSING -> {COMPLETED, FAILED};
// FAILED -> PENDING only via RetryScan.
type Processor struct {
	entClient *ent.Client
	pool      *pgxpool.Pool
	budget    BudgetController
	lifecycle ScanCompleter
	events    *domain.EventDispatcher

	exportBatchSize int
	estimatedTokens int64
}

// Config tunes the processor.
type Config struct {
	// ExportBatchSize caps how many entries one export claims when the
	// caller does not pass an explicit limit.
	ExportBatchSize int
	// EstimatedTokensPerScan is the reservation size used when a retry
	// must re-run admission.
	EstimatedTokensPerScan int64
}

// NewProcessor creates an AI queue Processor. The lifecycle dependency
// is set separately to break the construction cycle with the batch
// lifecycle manager.
func NewProcessor(entClient *ent.Client, pool *pgxpool.Pool, budget BudgetController, events *domain.EventDispatcher, cfg Config) *Processor {
	if cfg.ExportBatchSize <= 0 {
		cfg.ExportBatchSize = 100
	}
	return &Processor{
		entClient:       entClient,
		pool:            pool,
		budget:          budget,
		events:          events,
		exportBatchSize: cfg.ExportBatchSize,
		estimatedTokens: cfg.EstimatedTokensPerScan,
	}
}

// SetLifecycle wires the batch lifecycle completion path. Must be
// called before ImportResults is used.
func (p *Processor) SetLifecycle(lc ScanCompleter) {
	p.lifecycle = lc
}

// Enqueue creates a PENDING queue entry for an admitted scan.
func (p *Processor) Enqueue(ctx context.Context, scanID, reservationID string) error {
	if scanID == "" || reservationID == "" {
		return fmt.Errorf("scan id and reservation id are required to enqueue")
	}
	err := p.entClient.AiQueueEntry.Create().
		SetID(generateEntryID()).
		SetScanID(scanID).
		SetReservationID(reservationID).
		SetAiStatus(aiqueueentry.AiStatusPENDING).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// One entry per scan; an existing one wins.
			return nil
		}
		return fmt.Errorf("enqueue scan %s for AI processing: %w", scanID, err)
	}
	return nil
}

// ReopenScan returns a scan's FAILED entry to PENDING and points it at
// the reservation backing the retry. Without the rewrite a reopened
// entry would still reference its settled reservation and the next
// import would settle nothing. Returns false when the scan has no
// FAILED entry.
func (p *Processor) ReopenScan(ctx context.Context, scanID, reservationID string) (bool, error) {
	if reservationID == "" {
		return false, fmt.Errorf("reservation id is required to reopen scan %s", scanID)
	}
	tag, err := p.pool.Exec(ctx, `
		UPDATE ai_queue_entries SET
			ai_status = 'PENDING',
			reservation_id = $2,
			ai_input_tokens = 0, ai_output_tokens = 0, ai_total_tokens = 0,
			ai_processing_ms = 0, ai_processed_at = NULL,
			updated_at = now()
		WHERE scan_id = $1 AND ai_status = 'FAILED'`,
		scanID, reservationID,
	)
	if err != nil {
		return false, fmt.Errorf("reopen queue entry for scan %s: %w", scanID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteForScans removes queue entries owned by the given scans.
// Used by batch delete; reservations are released separately.
func (p *Processor) DeleteForScans(ctx context.Context, scanIDs []string) (int, error) {
	if len(scanIDs) == 0 {
		return 0, nil
	}
	deleted, err := p.entClient.AiQueueEntry.Delete().
		Where(aiqueueentry.ScanIDIn(scanIDs...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete queue entries: %w", err)
	}
	return deleted, nil
}

// RetryScan resets one FAILED entry to PENDING. A still-unsettled
// reservation keeps backing the retry; otherwise admission re-runs and
// refusal is surfaced to the caller instead of granting a free AI pass.
func (p *Processor) RetryScan(ctx context.Context, scanID, actor string) error {
	if _, err := p.entClient.Scan.Get(ctx, scanID); err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrScanNotFoundf(scanID)
		}
		return fmt.Errorf("fetch scan %s: %w", scanID, err)
	}
	failed, err := p.entClient.AiQueueEntry.Query().
		Where(aiqueueentry.ScanIDEQ(scanID), aiqueueentry.AiStatusEQ(aiqueueentry.AiStatusFAILED)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check queue entry for scan %s: %w", scanID, err)
	}
	if !failed {
		return apperrors.NotFound(apperrors.CodeQueueEntryNotFound,
			"no failed AI queue entry for scan").
			WithParams(map[string]interface{}{"scan_id": scanID})
	}

	reservationID, held, err := p.budget.ActiveReservation(ctx, scanID)
	if err != nil {
		return fmt.Errorf("lookup reservation for scan %s: %w", scanID, err)
	}
	admittedFresh := false
	if !held {
		admitted, freshID, admitErr := p.budget.Admit(ctx, scanID, p.estimatedTokens)
		if admitErr != nil {
			return fmt.Errorf("re-admit scan %s: %w", scanID, admitErr)
		}
		if !admitted {
			return p.refusalError(ctx)
		}
		reservationID = freshID
		admittedFresh = true
	}

	reopened, err := p.ReopenScan(ctx, scanID, reservationID)
	if err == nil && !reopened {
		err = apperrors.NotFound(apperrors.CodeQueueEntryNotFound,
			"no failed AI queue entry for scan").
			WithParams(map[string]interface{}{"scan_id": scanID})
	}
	if err != nil {
		// A reservation made for this retry must not outlive it.
		if admittedFresh {
			if settleErr := p.budget.Settle(ctx, reservationID, 0, false); settleErr != nil {
				logger.Error("failed to release retry reservation",
					zap.String("scan_id", scanID),
					zap.String("reservation_id", reservationID),
					zap.Error(settleErr),
				)
			}
		}
		return err
	}

	p.dispatch(ctx, domain.EventAiScanRetried, actor, domain.AiQueueEventPayload{ScanIDs: []string{scanID}})
	logger.Info("AI queue entry reset for retry",
		zap.String("scan_id", scanID),
		zap.String("actor", actor),
		zap.String("reservation_id", reservationID),
	)
	return nil
}

// refusalError distinguishes a closed campaign from exhausted headroom
// after Admit said no.
func (p *Processor) refusalError(ctx context.Context) error {
	status, remaining, err := p.budget.AdmissionState(ctx)
	if err != nil {
		return fmt.Errorf("fetch admission state: %w", err)
	}
	if status != string(domain.CampaignStatusActive) {
		return apperrors.Conflict(apperrors.CodeCampaignInactive,
			"campaign is not accepting AI admissions").
			WithParams(map[string]interface{}{"status": status})
	}
	return apperrors.ErrBudgetExhaustedf(p.estimatedTokens, remaining)
}

// ListFilter narrows List results.
type ListFilter struct {
	Status string
	Cursor string // Last entry id of the previous page
	Limit  int
}

// List returns queue entries in creation order with cursor pagination.
func (p *Processor) List(ctx context.Context, f ListFilter) ([]*ent.AiQueueEntry, error) {
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := p.entClient.AiQueueEntry.Query().
		Order(ent.Asc(aiqueueentry.FieldCreatedAt), ent.Asc(aiqueueentry.FieldID)).
		Limit(limit)
	if f.Status != "" {
		q = q.Where(aiqueueentry.AiStatusEQ(aiqueueentry.AiStatus(f.Status)))
	}
	if f.Cursor != "" {
		after, err := p.entClient.AiQueueEntry.Get(ctx, f.Cursor)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, apperrors.NotFound(apperrors.CodeQueueEntryNotFound, "cursor entry not found")
			}
			return nil, fmt.Errorf("resolve list cursor: %w", err)
		}
		q = q.Where(aiqueueentry.Or(
			aiqueueentry.CreatedAtGT(after.CreatedAt),
			aiqueueentry.And(
				aiqueueentry.CreatedAtEQ(after.CreatedAt),
				aiqueueentry.IDGT(after.ID),
			),
		))
	}
	entries, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list queue entries: %w", err)
	}
	return entries, nil
}

// Stats summarizes the queue by state.
type Stats struct {
	Pending     int   `json:"pending"`
	Downloaded  int   `json:"downloaded"`
	Processing  int   `json:"processing"`
	Completed   int   `json:"completed"`
	Failed      int   `json:"failed"`
	TotalTokens int64 `json:"total_tokens"`
}

// GetStats returns per-state counts and total recorded token spend.
func (p *Processor) GetStats(ctx context.Context) (*Stats, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT ai_status, count(*), COALESCE(sum(ai_total_tokens), 0)
		FROM ai_queue_entries GROUP BY ai_status`)
	if err != nil {
		return nil, fmt.Errorf("queue stats: %w", err)
	}
	defer rows.Close()

	stats := &Stats{}
	for rows.Next() {
		var status string
		var count int
		var tokens int64
		if err := rows.Scan(&status, &count, &tokens); err != nil {
			return nil, fmt.Errorf("scan queue stats row: %w", err)
		}
		switch status {
		case "PENDING":
			stats.Pending = count
		case "DOWNLOADED":
			stats.Downloaded = count
		case "PROCESSING":
			stats.Processing = count
		case "COMPLETED":
			stats.Completed = count
		case "FAILED":
			stats.Failed = count
		}
		stats.TotalTokens += tokens
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queue stats: %w", err)
	}
	return stats, nil
}

func (p *Processor) dispatch(ctx context.Context, eventType domain.EventType, actor string, payload domain.AiQueueEventPayload) {
	if p.events == nil {
		return
	}
	data, err := payload.ToJSON()
	if err != nil {
		return
	}
	_ = p.events.Dispatch(ctx, &domain.DomainEvent{
		EventID:       generateEventID(),
		EventType:     eventType,
		AggregateType: "ai_queue",
		AggregateID:   "ai_queue",
		Payload:       data,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "aiq-" + uuid.New().String()
	}
	return "aiq-" + id.String()
}

func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "evt-" + uuid.New().String()
	}
	return "evt-" + id.String()
}
