package lifecycle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent/batch"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
)

func TestOnScanCompleted_CountersAndAggregates(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 3, false)

	completeScan(t, h, result.Scans[0].ScanID, true)
	completeScan(t, h, result.Scans[1].ScanID, false)

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusRUNNING, b.Status)
	require.Equal(t, 1, b.CompletedCount)
	require.Equal(t, 1, b.FailedCount)
	require.Equal(t, 5, b.TotalIssues)
	require.Equal(t, 30, b.PassedChecks)

	completeScan(t, h, result.Scans[2].ScanID, true)

	b, _, err = h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCOMPLETED, b.Status)
	require.Equal(t, 2, b.CompletedCount)
	require.Equal(t, 1, b.FailedCount)
	require.Equal(t, 10, b.TotalIssues)
	require.NotNil(t, b.CompletedAt)

	// Aggregates equal the sum over COMPLETED children.
	scans, err := h.client.Scan.Query().
		Where(entscan.BatchIDEQ(result.BatchID), entscan.StatusEQ(entscan.StatusCOMPLETED)).
		All(ctx)
	require.NoError(t, err)
	sum := 0
	for _, s := range scans {
		sum += s.TotalIssues
	}
	require.Equal(t, b.TotalIssues, sum)
}

func TestOnScanCompleted_AllFailedBatchFails(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 2, false)
	completeScan(t, h, result.Scans[0].ScanID, false)
	completeScan(t, h, result.Scans[1].ScanID, false)

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusFAILED, b.Status)
	require.Equal(t, 0, b.CompletedCount)
	require.Equal(t, 2, b.FailedCount)
}

func TestOnScanCompleted_DuplicateDeliveryIsNoOp(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 2, false)
	scanID := result.Scans[0].ScanID

	completeScan(t, h, scanID, true)
	completeScan(t, h, scanID, true)
	completeScan(t, h, scanID, false)

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, 1, b.CompletedCount)
	require.Equal(t, 0, b.FailedCount)
	require.Equal(t, 5, b.TotalIssues)

	s, err := h.client.Scan.Get(ctx, scanID)
	require.NoError(t, err)
	require.Equal(t, entscan.StatusCOMPLETED, s.Status)
}

func TestOnScanCompleted_ConcurrentSiblings(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	const n = 20
	result := createBatch(t, h, n, false)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i, ref := range result.Scans {
		wg.Add(1)
		go func(scanID string, succeed bool) {
			defer wg.Done()
			outcome := domain.ScanOutcome{
				ScanID:     scanID,
				Succeeded:  succeed,
				FinishedAt: time.Now().UTC(),
			}
			if succeed {
				outcome.Counts = domain.IssueCounts{Total: 2, Minor: 2, PassedChecks: 10}
			} else {
				outcome.ErrorMessage = "timeout"
			}
			errs <- h.manager.OnScanCompleted(ctx, outcome)
		}(ref.ScanID, i%4 != 0)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCOMPLETED, b.Status)
	require.Equal(t, n, b.CompletedCount+b.FailedCount)
	require.Equal(t, 15, b.CompletedCount)
	require.Equal(t, 5, b.FailedCount)
	require.Equal(t, 15*2, b.TotalIssues)
}

func TestOnScanCompleted_StandaloneScan(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	err := h.client.Scan.Create().
		SetID("scan-standalone").
		SetURL("https://example.com/one-off").
		Exec(ctx)
	require.NoError(t, err)

	completeScan(t, h, "scan-standalone", true)

	s, err := h.client.Scan.Get(ctx, "scan-standalone")
	require.NoError(t, err)
	require.Equal(t, entscan.StatusCOMPLETED, s.Status)
	require.Equal(t, 5, s.TotalIssues)
}

func TestOnScanCompleted_LateDeliveryAfterCancel(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 2, false)
	_, err := h.manager.Cancel(ctx, result.BatchID, "admin")
	require.NoError(t, err)

	// The executor finishes after the cancel: outcome must be dropped.
	completeScan(t, h, result.Scans[0].ScanID, true)

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCANCELLED, b.Status)
	require.Zero(t, b.CompletedCount)

	s, err := h.client.Scan.Get(ctx, result.Scans[0].ScanID)
	require.NoError(t, err)
	require.Equal(t, entscan.StatusCANCELLED, s.Status)
}
