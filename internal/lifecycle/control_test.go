package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent/batch"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
)

func TestCancel_PreservesSettledScans(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 4, false)
	completeScan(t, h, result.Scans[0].ScanID, true)
	completeScan(t, h, result.Scans[1].ScanID, false)

	cancelled, err := h.manager.Cancel(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 2, cancelled.CancelledCount)
	require.Equal(t, 2, cancelled.PreservedCount)

	b, scans, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCANCELLED, b.Status)
	require.NotNil(t, b.CancelledAt)

	statuses := map[entscan.Status]int{}
	for _, s := range scans {
		statuses[s.Status]++
	}
	require.Equal(t, 1, statuses[entscan.StatusCOMPLETED])
	require.Equal(t, 1, statuses[entscan.StatusFAILED])
	require.Equal(t, 2, statuses[entscan.StatusCANCELLED])
}

func TestCancel_TerminalBatchIsInvalidState(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 1, false)
	completeScan(t, h, result.Scans[0].ScanID, true)

	_, err := h.manager.Cancel(ctx, result.BatchID, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidState, appErr.Code)
	require.Equal(t, "COMPLETED", appErr.Params["current"])

	_, err = h.manager.Cancel(ctx, "batch-missing", "admin")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBatchNotFound, appErr.Code)
}

func TestCancel_ReleasesAiReservations(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 2, true)
	require.Equal(t, 2, result.AiAdmitted)

	_, err := h.manager.Cancel(ctx, result.BatchID, "admin")
	require.NoError(t, err)

	require.Len(t, h.budget.released, 2)
	require.Empty(t, h.queue.entries)
}

func TestRetryFailed_TouchesOnlyFailedScans(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 3, false)
	completeScan(t, h, result.Scans[0].ScanID, true)
	completeScan(t, h, result.Scans[1].ScanID, false)
	completeScan(t, h, result.Scans[2].ScanID, false)

	completedBefore, err := h.client.Scan.Get(ctx, result.Scans[0].ScanID)
	require.NoError(t, err)

	retried, err := h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 2, retried.RetriedCount)
	require.Len(t, retried.JobIDs, 2)

	// The completed scan is untouched.
	completedAfter, err := h.client.Scan.Get(ctx, result.Scans[0].ScanID)
	require.NoError(t, err)
	require.Equal(t, completedBefore.Status, completedAfter.Status)
	require.Equal(t, completedBefore.JobID, completedAfter.JobID)
	require.Equal(t, completedBefore.UpdatedAt, completedAfter.UpdatedAt)

	// The terminal batch re-opened and handed back the failed counts.
	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusRUNNING, b.Status)
	require.Equal(t, 1, b.CompletedCount)
	require.Equal(t, 0, b.FailedCount)

	for _, ref := range result.Scans[1:] {
		s, err := h.client.Scan.Get(ctx, ref.ScanID)
		require.NoError(t, err)
		require.Equal(t, entscan.StatusPENDING, s.Status)
		require.Empty(t, s.ErrorMessage)
	}

	// Retried scans complete again without breaking the counters.
	completeScan(t, h, result.Scans[1].ScanID, true)
	completeScan(t, h, result.Scans[2].ScanID, true)
	b, _, err = h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCOMPLETED, b.Status)
	require.Equal(t, 3, b.CompletedCount)
}

func TestRetryFailed_SecondRetryIsZero(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 2, false)
	completeScan(t, h, result.Scans[0].ScanID, true)
	completeScan(t, h, result.Scans[1].ScanID, false)

	retried, err := h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 1, retried.RetriedCount)

	retried, err = h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 0, retried.RetriedCount)
	require.Empty(t, retried.JobIDs)
}

func TestRetryFailed_CancelledBatchRejected(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 1, false)
	_, err := h.manager.Cancel(ctx, result.BatchID, "admin")
	require.NoError(t, err)

	_, err = h.manager.RetryFailed(ctx, result.BatchID, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidState, appErr.Code)
}

func TestRetryFailed_AiScanWithoutReservationReadmits(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 1, true)
	scanID := result.Scans[0].ScanID
	completeScan(t, h, scanID, false)

	// Settlement released the reservation; retry must re-admit.
	_, err := h.budget.ReleaseForScans(ctx, []string{scanID})
	require.NoError(t, err)

	retried, err := h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 1, retried.RetriedCount)

	rsv, held, err := h.budget.ActiveReservation(ctx, scanID)
	require.NoError(t, err)
	require.True(t, held)
	require.Contains(t, h.queue.reopened, scanID)

	// The reopened entry settles against the fresh reservation.
	require.Equal(t, rsv, h.queue.entries[scanID])
}

func TestRetryFailed_AiScanReusesHeldReservation(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 1, true)
	scanID := result.Scans[0].ScanID
	original := h.queue.entries[scanID]
	completeScan(t, h, scanID, false)

	retried, err := h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 1, retried.RetriedCount)

	// The unsettled reservation is reused, not duplicated.
	require.Equal(t, 1, h.budget.nextID)
	require.Equal(t, original, h.queue.entries[scanID])
}

func TestRetryFailed_EnqueuesFreshJob(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 1, false)
	scanID := result.Scans[0].ScanID
	completeScan(t, h, scanID, false)

	retried, err := h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 1, retried.RetriedCount)

	// Each attempt rides its own queue job. The retry insert must not
	// collapse into the first job's unique key.
	var jobCount int
	err = h.pool.QueryRow(ctx, `
		SELECT count(*) FROM river_job
		WHERE kind = 'page_scan' AND args->>'scan_id' = $1`,
		scanID,
	).Scan(&jobCount)
	require.NoError(t, err)
	require.Equal(t, 2, jobCount)

	s, err := h.client.Scan.Get(ctx, scanID)
	require.NoError(t, err)

	var latestJobID string
	err = h.pool.QueryRow(ctx, `
		SELECT args->>'job_id' FROM river_job
		WHERE kind = 'page_scan' AND args->>'scan_id' = $1
		ORDER BY id DESC LIMIT 1`,
		scanID,
	).Scan(&latestJobID)
	require.NoError(t, err)
	require.Equal(t, s.JobID, latestJobID)
}

func TestRetryFailed_AiRefusalDowngradesScan(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 1, true)
	scanID := result.Scans[0].ScanID
	completeScan(t, h, scanID, false)

	_, err := h.budget.ReleaseForScans(ctx, []string{scanID})
	require.NoError(t, err)
	h.budget.refuse = true

	_, err = h.manager.RetryFailed(ctx, result.BatchID, "admin")
	require.NoError(t, err)

	s, err := h.client.Scan.Get(ctx, scanID)
	require.NoError(t, err)
	require.False(t, s.AiEnabled)

	// The stale FAILED entry is removed rather than reopened.
	require.Empty(t, h.queue.entries)
	require.Contains(t, h.queue.deleted, scanID)
}

func TestDelete_RemovesEverything(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 3, true)

	deleted, err := h.manager.Delete(ctx, result.BatchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 3, deleted.ScansDeleted)
	require.Equal(t, 3, deleted.QueueEntriesDeleted)
	require.Equal(t, 3, deleted.ReservationsFreed)

	_, _, err = h.manager.Detail(ctx, result.BatchID)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBatchNotFound, appErr.Code)

	count, err := h.client.Scan.Query().Where(entscan.BatchIDEQ(result.BatchID)).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = h.manager.Delete(ctx, result.BatchID, "admin")
	_, ok = apperrors.IsAppError(err)
	require.True(t, ok)
}

func TestDetectStale(t *testing.T) {
	h := newTestManager(t, Config{StalenessWindow: 24 * time.Hour})
	ctx := context.Background()

	stale := createBatch(t, h, 2, false)
	fresh := createBatch(t, h, 1, false)

	// Age the stale batch and its scans beyond the window.
	_, err := h.pool.Exec(ctx, `UPDATE batches SET updated_at = now() - interval '48 hours' WHERE id = $1`, stale.BatchID)
	require.NoError(t, err)
	_, err = h.pool.Exec(ctx, `UPDATE scans SET updated_at = now() - interval '48 hours' WHERE batch_id = $1`, stale.BatchID)
	require.NoError(t, err)

	staleIDs, err := h.manager.DetectStale(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{stale.BatchID}, staleIDs)

	b, scans, err := h.manager.Detail(ctx, stale.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusSTALE, b.Status)
	for _, s := range scans {
		require.Equal(t, entscan.StatusCANCELLED, s.Status)
	}

	freshBatch, _, err := h.manager.Detail(ctx, fresh.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusPENDING, freshBatch.Status)

	// Re-running the sweep is a no-op.
	staleIDs, err = h.manager.DetectStale(ctx)
	require.NoError(t, err)
	require.Empty(t, staleIDs)
}

func TestDetectStale_RecentScanActivityKeepsBatchAlive(t *testing.T) {
	h := newTestManager(t, Config{StalenessWindow: 24 * time.Hour})
	ctx := context.Background()

	result := createBatch(t, h, 2, false)

	// Old batch row, but one scan progressed recently.
	_, err := h.pool.Exec(ctx, `UPDATE batches SET updated_at = now() - interval '48 hours' WHERE id = $1`, result.BatchID)
	require.NoError(t, err)
	_, err = h.pool.Exec(ctx, `UPDATE scans SET updated_at = now() - interval '48 hours' WHERE batch_id = $1`, result.BatchID)
	require.NoError(t, err)
	_, err = h.pool.Exec(ctx, `UPDATE scans SET updated_at = now() WHERE id = $1`, result.Scans[0].ScanID)
	require.NoError(t, err)

	staleIDs, err := h.manager.DetectStale(ctx)
	require.NoError(t, err)
	require.Empty(t, staleIDs)
}
