package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/jobs"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// MarkScanRunning flips a PENDING scan to RUNNING and nudges its parent
// batch out of PENDING. Returns false when the scan is no longer
// runnable (cancelled, already picked up).
func (m *Manager) MarkScanRunning(ctx context.Context, scanID string) (bool, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin scan start tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var batchID string
	err = tx.QueryRow(ctx, `
		UPDATE scans SET status = 'RUNNING', updated_at = now()
		WHERE id = $1 AND status = 'PENDING'
		RETURNING COALESCE(batch_id, '')`,
		scanID,
	).Scan(&batchID)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("mark scan %s running: %w", scanID, err)
	}

	if batchID != "" {
		if _, err := tx.Exec(ctx, `
			UPDATE batches SET status = 'RUNNING', updated_at = now()
			WHERE id = $1 AND status = 'PENDING'`,
			batchID,
		); err != nil {
			return false, fmt.Errorf("mark batch %s running: %w", batchID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit scan start tx: %w", err)
	}
	return true, nil
}

// CancelResult reports what Cancel touched.
type CancelResult struct {
	CancelledCount int `json:"cancelled_count"`
	PreservedCount int `json:"preserved_count"`
}

// Cancel marks every PENDING/RUNNING child scan CANCELLED and the batch
// CANCELLED. Scans already COMPLETED or FAILED are preserved untouched.
// Cancellation is cooperative: in-flight executors see the flipped state
// and their late completions are ignored by the guarded counter update.
func (m *Manager) Cancel(ctx context.Context, batchID, actor string) (*CancelResult, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch cancel tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var totalURLs, completed, failed int
	err = tx.QueryRow(ctx, `
		UPDATE batches SET status = 'CANCELLED', cancelled_at = now(), updated_at = now()
		WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
		RETURNING total_urls, completed_count, failed_count`,
		batchID,
	).Scan(&totalURLs, &completed, &failed)
	if err != nil {
		if isNoRows(err) {
			return nil, m.cancelStateError(ctx, batchID)
		}
		return nil, fmt.Errorf("cancel batch %s: %w", batchID, err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE scans SET status = 'CANCELLED', updated_at = now()
		WHERE batch_id = $1 AND status IN ('PENDING', 'RUNNING')`,
		batchID,
	); err != nil {
		return nil, fmt.Errorf("cancel scans for batch %s: %w", batchID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch cancel tx: %w", err)
	}

	preserved := completed + failed
	result := &CancelResult{
		CancelledCount: totalURLs - preserved,
		PreservedCount: preserved,
	}

	m.releaseAbandonedReservations(ctx, batchID)

	m.dispatch(ctx, domain.EventBatchCancelled, batchID, actor, domain.BatchEventPayload{
		BatchID:        batchID,
		CompletedCount: completed,
		FailedCount:    failed,
	})
	logger.Info("Batch cancelled",
		zap.String("batch_id", batchID),
		zap.Int("cancelled", result.CancelledCount),
		zap.Int("preserved", result.PreservedCount),
	)
	return result, nil
}

// cancelStateError distinguishes NOT_FOUND from INVALID_STATE after a
// guarded update touched zero rows.
func (m *Manager) cancelStateError(ctx context.Context, batchID string) error {
	b, err := m.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.ErrBatchNotFoundf(batchID)
		}
		return fmt.Errorf("fetch batch %s: %w", batchID, err)
	}
	return apperrors.ErrInvalidStatef(string(b.Status), "cancel")
}

// releaseAbandonedReservations returns unsettled AI budget held by scans
// that will never run. Best effort: budget release only shrinks
// reserved_tokens, so a missed release is corrected by settlement, never
// compounded.
func (m *Manager) releaseAbandonedReservations(ctx context.Context, batchID string) {
	ids, err := m.entClient.Scan.Query().
		Where(scan.BatchIDEQ(batchID), scan.StatusEQ(scan.StatusCANCELLED), scan.AiEnabledEQ(true)).
		IDs(ctx)
	if err != nil {
		logger.Error("failed to list cancelled AI scans", zap.String("batch_id", batchID), zap.Error(err))
		return
	}
	if len(ids) == 0 {
		return
	}
	released, err := m.budget.ReleaseForScans(ctx, ids)
	if err != nil {
		logger.Error("failed to release reservations for cancelled scans",
			zap.String("batch_id", batchID),
			zap.Error(err),
		)
		return
	}
	if _, err := m.queue.DeleteForScans(ctx, ids); err != nil {
		logger.Error("failed to drop queue entries for cancelled scans",
			zap.String("batch_id", batchID),
			zap.Error(err),
		)
	}
	logger.Info("Released AI reservations for cancelled scans",
		zap.String("batch_id", batchID),
		zap.Int("released", released),
	)
}

// RetryResult reports what RetryFailed touched.
type RetryResult struct {
	RetriedCount int      `json:"retried_count"`
	JobIDs       []string `json:"job_ids"`
}

// RetryFailed resets exactly the FAILED child scans to PENDING with
// fresh job ids and re-enqueues them. A terminal batch is re-opened to
// RUNNING. Zero failed scans is a successful no-op, not an error.
func (m *Manager) RetryFailed(ctx context.Context, batchID, actor string) (*RetryResult, error) {
	b, err := m.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrBatchNotFoundf(batchID)
		}
		return nil, fmt.Errorf("fetch batch %s: %w", batchID, err)
	}
	if b.Status == batch.StatusCANCELLED {
		return nil, apperrors.ErrInvalidStatef(string(b.Status), "retry")
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch retry tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		SELECT id, ai_enabled FROM scans
		WHERE batch_id = $1 AND status = 'FAILED'
		FOR UPDATE`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("select failed scans for batch %s: %w", batchID, err)
	}
	type failedScan struct {
		id        string
		aiEnabled bool
	}
	var failedScans []failedScan
	for rows.Next() {
		var fs failedScan
		if err := rows.Scan(&fs.id, &fs.aiEnabled); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan failed-scan row: %w", err)
		}
		failedScans = append(failedScans, fs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failed scans: %w", err)
	}

	if len(failedScans) == 0 {
		return &RetryResult{RetriedCount: 0, JobIDs: []string{}}, nil
	}

	result := &RetryResult{JobIDs: make([]string, 0, len(failedScans))}
	jobParams := make([]river.InsertManyParams, 0, len(failedScans))
	for _, fs := range failedScans {
		jobID := generateID("job")
		if _, err := tx.Exec(ctx, `
			UPDATE scans SET
				status = 'PENDING', error_message = '', completed_at = NULL,
				job_id = $2, updated_at = now()
			WHERE id = $1 AND status = 'FAILED'`,
			fs.id, jobID,
		); err != nil {
			return nil, fmt.Errorf("reset failed scan %s: %w", fs.id, err)
		}
		result.JobIDs = append(result.JobIDs, jobID)
		jobParams = append(jobParams, river.InsertManyParams{Args: jobs.PageScanArgs{ScanID: fs.id, JobID: jobID}})
	}
	result.RetriedCount = len(failedScans)

	// Counters must keep completed+failed <= total once the retried
	// scans complete again, so the failed increments are handed back and
	// a terminal batch re-opens.
	if _, err := tx.Exec(ctx, `
		UPDATE batches SET
			failed_count = failed_count - $2,
			status = CASE WHEN status IN ('COMPLETED', 'FAILED', 'STALE') THEN 'RUNNING' ELSE status END,
			completed_at = NULL,
			updated_at = now()
		WHERE id = $1 AND failed_count >= $2`,
		batchID, len(failedScans),
	); err != nil {
		return nil, fmt.Errorf("reopen batch %s: %w", batchID, err)
	}

	if _, err := m.riverClient.InsertManyTx(ctx, tx, jobParams); err != nil {
		return nil, fmt.Errorf("enqueue retry jobs for batch %s: %w", batchID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch retry tx: %w", err)
	}

	var aiScanIDs []string
	for _, fs := range failedScans {
		if fs.aiEnabled {
			aiScanIDs = append(aiScanIDs, fs.id)
		}
	}
	m.reopenAiEntries(ctx, aiScanIDs)

	m.dispatch(ctx, domain.EventBatchRetried, batchID, actor, domain.BatchEventPayload{
		BatchID: batchID,
		Reason:  fmt.Sprintf("retried %d failed scans", result.RetriedCount),
	})
	logger.Info("Batch failed scans retried",
		zap.String("batch_id", batchID),
		zap.Int("retried", result.RetriedCount),
	)
	return result, nil
}

// reopenAiEntries returns FAILED queue entries to PENDING for retried
// AI scans, each under the reservation backing its retry. A scan whose
// reservation was already released at settlement must re-run admission;
// refusal downgrades it to a non-AI retry and its stale entry is
// dropped rather than reopened.
func (m *Manager) reopenAiEntries(ctx context.Context, scanIDs []string) {
	for _, id := range scanIDs {
		reservationID, held, err := m.budget.ActiveReservation(ctx, id)
		if err != nil {
			logger.Error("reservation lookup failed during retry", zap.String("scan_id", id), zap.Error(err))
			continue
		}
		if !held {
			admitted, freshID, admitErr := m.budget.Admit(ctx, id, m.cfg.EstimatedTokensPerScan)
			if admitErr != nil || !admitted {
				m.downgradeToPlainScan(ctx, id)
				continue
			}
			reservationID = freshID
		}
		if _, err := m.queue.ReopenScan(ctx, id, reservationID); err != nil {
			logger.Error("failed to reopen AI queue entry", zap.String("scan_id", id), zap.Error(err))
		}
	}
}

// downgradeToPlainScan strips AI from a retried scan after admission
// was refused. The page scan still runs; only the AI pass is dropped.
func (m *Manager) downgradeToPlainScan(ctx context.Context, scanID string) {
	if _, err := m.entClient.Scan.UpdateOneID(scanID).SetAiEnabled(false).Save(ctx); err != nil {
		logger.Error("failed to downgrade retried scan to non-AI", zap.String("scan_id", scanID), zap.Error(err))
	}
	if _, err := m.queue.DeleteForScans(ctx, []string{scanID}); err != nil {
		logger.Error("failed to drop queue entry for downgraded scan", zap.String("scan_id", scanID), zap.Error(err))
	}
}

// DeleteResult reports what Delete removed, for the audit trail.
type DeleteResult struct {
	ScansDeleted        int `json:"scans_deleted"`
	QueueEntriesDeleted int `json:"queue_entries_deleted"`
	ReservationsFreed   int `json:"reservations_freed"`
}

// Delete permanently removes a batch with its scans and queue entries.
// Privilege is enforced by the API layer, not here. Irreversible.
func (m *Manager) Delete(ctx context.Context, batchID, actor string) (*DeleteResult, error) {
	_, err := m.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrBatchNotFoundf(batchID)
		}
		return nil, fmt.Errorf("fetch batch %s: %w", batchID, err)
	}

	scanIDs, err := m.entClient.Scan.Query().Where(scan.BatchIDEQ(batchID)).IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scans for batch %s: %w", batchID, err)
	}

	result := &DeleteResult{}
	if len(scanIDs) > 0 {
		freed, err := m.budget.ReleaseForScans(ctx, scanIDs)
		if err != nil {
			return nil, fmt.Errorf("release reservations for batch %s: %w", batchID, err)
		}
		result.ReservationsFreed = freed

		dropped, err := m.queue.DeleteForScans(ctx, scanIDs)
		if err != nil {
			return nil, fmt.Errorf("delete queue entries for batch %s: %w", batchID, err)
		}
		result.QueueEntriesDeleted = dropped
	}

	deleted, err := m.entClient.Scan.Delete().Where(scan.BatchIDEQ(batchID)).Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete scans for batch %s: %w", batchID, err)
	}
	result.ScansDeleted = deleted

	if err := m.entClient.Batch.DeleteOneID(batchID).Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete batch %s: %w", batchID, err)
	}

	m.dispatch(ctx, domain.EventBatchDeleted, batchID, actor, domain.BatchEventPayload{
		BatchID: batchID,
		Reason:  fmt.Sprintf("deleted %d scans", result.ScansDeleted),
	})
	logger.Info("Batch deleted",
		zap.String("batch_id", batchID),
		zap.String("actor", actor),
		zap.Int("scans_deleted", result.ScansDeleted),
	)
	return result, nil
}

// DetectStale sweeps batches still PENDING/RUNNING whose most recent
// child-scan activity is older than the staleness window and marks them
// STALE. Idempotent: an already-STALE batch is untouched. Returns the
// swept batch ids.
func (m *Manager) DetectStale(ctx context.Context) ([]string, error) {
	cutoff := time.Now().UTC().Add(-m.cfg.StalenessWindow)

	rows, err := m.pool.Query(ctx, `
		UPDATE batches b SET status = 'STALE', updated_at = now()
		WHERE b.status IN ('PENDING', 'RUNNING')
		  AND GREATEST(
			b.updated_at,
			COALESCE((SELECT MAX(s.updated_at) FROM scans s WHERE s.batch_id = b.id), b.updated_at)
		  ) < $1
		RETURNING b.id`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("sweep stale batches: %w", err)
	}
	var staleIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan stale batch id: %w", err)
		}
		staleIDs = append(staleIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale batches: %w", err)
	}

	for _, id := range staleIDs {
		if _, err := m.pool.Exec(ctx, `
			UPDATE scans SET status = 'CANCELLED', updated_at = now()
			WHERE batch_id = $1 AND status IN ('PENDING', 'RUNNING')`,
			id,
		); err != nil {
			return staleIDs, fmt.Errorf("cancel scans of stale batch %s: %w", id, err)
		}
		m.releaseAbandonedReservations(ctx, id)
		m.dispatch(ctx, domain.EventBatchStale, id, "system", domain.BatchEventPayload{
			BatchID: id,
			Reason:  "no scan activity within staleness window",
		})
	}

	if len(staleIDs) > 0 {
		logger.Info("Stale batches swept",
			zap.Int("count", len(staleIDs)),
			zap.Duration("window", m.cfg.StalenessWindow),
		)
	}
	return staleIDs, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
