package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// OnScanCompleted records the outcome of one page scan and folds it into
// the parent batch's counters in a single transaction.
//
// This is the concurrency-sensitive hot path: multiple siblings complete
// in parallel, so every update is a guarded single-statement
// increment-and-check, never read-then-write. A scan that is already
// terminal (duplicate delivery, cancelled batch) is a no-op.
func (m *Manager) OnScanCompleted(ctx context.Context, outcome domain.ScanOutcome) error {
	if outcome.ScanID == "" {
		return fmt.Errorf("scan outcome has empty scan id")
	}

	status := string(domain.ScanStatusCompleted)
	if !outcome.Succeeded {
		status = string(domain.ScanStatusFailed)
	}

	var issuesJSON []byte
	if len(outcome.Issues) > 0 {
		var err error
		issuesJSON, err = json.Marshal(outcome.Issues)
		if err != nil {
			return fmt.Errorf("marshal issues for scan %s: %w", outcome.ScanID, err)
		}
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin scan completion tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Guarded scan update: only a non-terminal scan may complete. Zero
	// rows affected means a duplicate or late delivery; skip silently so
	// retried executors and CSV imports stay idempotent.
	var batchID string
	err = tx.QueryRow(ctx, `
		UPDATE scans SET
			status = $2,
			page_title = COALESCE(NULLIF($3, ''), page_title),
			total_issues = $4, critical_issues = $5, serious_issues = $6,
			moderate_issues = $7, minor_issues = $8, passed_checks = $9,
			issues = COALESCE($10, issues),
			error_message = $11,
			content_snapshot = COALESCE(NULLIF($12, ''), content_snapshot),
			completed_at = now(),
			updated_at = now()
		WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
		RETURNING COALESCE(batch_id, '')`,
		outcome.ScanID, status, outcome.PageTitle,
		outcome.Counts.Total, outcome.Counts.Critical, outcome.Counts.Serious,
		outcome.Counts.Moderate, outcome.Counts.Minor, outcome.Counts.PassedChecks,
		issuesJSON, outcome.ErrorMessage, outcome.ContentSnapshot,
	).Scan(&batchID)
	if err != nil {
		if isNoRows(err) {
			logger.Debug("scan already terminal, completion ignored",
				zap.String("scan_id", outcome.ScanID),
				zap.String("outcome", status),
			)
			return nil
		}
		return fmt.Errorf("update scan %s: %w", outcome.ScanID, err)
	}

	// Standalone scans have no batch counters to fold into.
	if batchID == "" {
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit scan completion tx: %w", err)
		}
		m.dispatchScanEvent(ctx, outcome, "", status)
		return nil
	}

	completedInc, failedInc := 0, 0
	counts := domain.IssueCounts{}
	if outcome.Succeeded {
		completedInc = 1
		counts = outcome.Counts
	} else {
		failedInc = 1
	}

	// Guarded counter increment: a terminal batch absorbs no more counts.
	var totalURLs, completed, failed int
	err = tx.QueryRow(ctx, `
		UPDATE batches SET
			completed_count = completed_count + $2,
			failed_count = failed_count + $3,
			total_issues = total_issues + $4,
			critical_issues = critical_issues + $5,
			serious_issues = serious_issues + $6,
			moderate_issues = moderate_issues + $7,
			minor_issues = minor_issues + $8,
			passed_checks = passed_checks + $9,
			status = CASE WHEN status = 'PENDING' THEN 'RUNNING' ELSE status END,
			updated_at = now()
		WHERE id = $1
		  AND status IN ('PENDING', 'RUNNING')
		  AND completed_count + failed_count < total_urls
		RETURNING total_urls, completed_count, failed_count`,
		batchID, completedInc, failedInc,
		counts.Total, counts.Critical, counts.Serious,
		counts.Moderate, counts.Minor, counts.PassedChecks,
	).Scan(&totalURLs, &completed, &failed)
	if err != nil {
		if isNoRows(err) {
			// Batch went terminal while this scan was in flight. The
			// scan row keeps its outcome but does not count.
			if err := tx.Commit(ctx); err != nil {
				return fmt.Errorf("commit scan completion tx: %w", err)
			}
			logger.Debug("batch terminal, scan outcome not counted",
				zap.String("batch_id", batchID),
				zap.String("scan_id", outcome.ScanID),
			)
			return nil
		}
		return fmt.Errorf("increment batch %s counters: %w", batchID, err)
	}

	finalized := ""
	if completed+failed == totalURLs {
		// Last sibling in: finalize. COMPLETED when at least one scan
		// succeeded, FAILED when every one errored.
		err = tx.QueryRow(ctx, `
			UPDATE batches SET
				status = CASE WHEN completed_count > 0 THEN 'COMPLETED' ELSE 'FAILED' END,
				completed_at = now(),
				updated_at = now()
			WHERE id = $1
			  AND status = 'RUNNING'
			  AND completed_count + failed_count = total_urls
			RETURNING status`,
			batchID,
		).Scan(&finalized)
		if err != nil && !isNoRows(err) {
			return fmt.Errorf("finalize batch %s: %w", batchID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit scan completion tx: %w", err)
	}

	m.dispatchScanEvent(ctx, outcome, batchID, status)

	switch finalized {
	case string(domain.BatchStatusCompleted):
		m.dispatch(ctx, domain.EventBatchCompleted, batchID, "system", domain.BatchEventPayload{
			BatchID:        batchID,
			CompletedCount: completed,
			FailedCount:    failed,
		})
		logger.Info("Batch completed",
			zap.String("batch_id", batchID),
			zap.Int("completed", completed),
			zap.Int("failed", failed),
		)
	case string(domain.BatchStatusFailed):
		m.dispatch(ctx, domain.EventBatchFailed, batchID, "system", domain.BatchEventPayload{
			BatchID:     batchID,
			FailedCount: failed,
		})
		logger.Warn("Batch failed, every scan errored",
			zap.String("batch_id", batchID),
			zap.Int("failed", failed),
		)
	}
	return nil
}

func (m *Manager) dispatchScanEvent(ctx context.Context, outcome domain.ScanOutcome, batchID, status string) {
	if m.events == nil {
		return
	}
	eventType := domain.EventScanCompleted
	if status == string(domain.ScanStatusFailed) {
		eventType = domain.EventScanFailed
	}
	payload, err := (domain.ScanEventPayload{
		ScanID:       outcome.ScanID,
		BatchID:      batchID,
		TotalIssues:  outcome.Counts.Total,
		ErrorMessage: outcome.ErrorMessage,
	}).ToJSON()
	if err != nil {
		return
	}
	_ = m.events.Dispatch(ctx, &domain.DomainEvent{
		EventID:       generateID("evt"),
		EventType:     eventType,
		AggregateType: "scan",
		AggregateID:   outcome.ScanID,
		Payload:       payload,
		Actor:         "system",
		CreatedAt:     outcome.FinishedAt,
	})
}
