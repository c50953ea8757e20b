package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/batch"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/testutil"
)

func init() {
	logger.Init("error", "console")
}

type stubBudget struct {
	mu       sync.Mutex
	refuse   bool
	admits   map[string]string
	released []string
	nextID   int
}

func newStubBudget() *stubBudget {
	return &stubBudget{admits: map[string]string{}}
}

func (b *stubBudget) Admit(_ context.Context, scanID string, _ int64) (bool, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.refuse {
		return false, "", nil
	}
	b.nextID++
	rsv := fmt.Sprintf("rsv-%04d", b.nextID)
	b.admits[scanID] = rsv
	return true, rsv, nil
}

func (b *stubBudget) ActiveReservation(_ context.Context, scanID string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rsv, ok := b.admits[scanID]
	return rsv, ok, nil
}

func (b *stubBudget) ReleaseForScans(_ context.Context, scanIDs []string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	released := 0
	for _, id := range scanIDs {
		if _, ok := b.admits[id]; ok {
			delete(b.admits, id)
			b.released = append(b.released, id)
			released++
		}
	}
	return released, nil
}

type stubQueue struct {
	mu       sync.Mutex
	entries  map[string]string
	reopened []string
	deleted  []string
}

func newStubQueue() *stubQueue {
	return &stubQueue{entries: map[string]string{}}
}

func (q *stubQueue) Enqueue(_ context.Context, scanID, reservationID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[scanID] = reservationID
	return nil
}

func (q *stubQueue) ReopenScan(_ context.Context, scanID, reservationID string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.entries[scanID]; !ok {
		return false, nil
	}
	q.entries[scanID] = reservationID
	q.reopened = append(q.reopened, scanID)
	return true, nil
}

func (q *stubQueue) DeleteForScans(_ context.Context, scanIDs []string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	deleted := 0
	for _, id := range scanIDs {
		if _, ok := q.entries[id]; ok {
			delete(q.entries, id)
			deleted++
		}
		q.deleted = append(q.deleted, id)
	}
	return deleted, nil
}

type testHarness struct {
	manager *Manager
	client  *ent.Client
	pool    *pgxpool.Pool
	budget  *stubBudget
	queue   *stubQueue
}

func newTestManager(t *testing.T, cfg Config) *testHarness {
	t.Helper()
	client, pool := testutil.OpenEntWithPool(t, "lifecycle")
	riverClient := testutil.OpenRiverClient(t, pool)
	budget := newStubBudget()
	queue := newStubQueue()
	m := NewManager(client, pool, riverClient, budget, queue, domain.NewEventDispatcher(), cfg)
	return &testHarness{manager: m, client: client, pool: pool, budget: budget, queue: queue}
}

func urls(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://example.com/page-%d", i)
	}
	return out
}

func createBatch(t *testing.T, h *testHarness, n int, aiEnabled bool) *CreateResult {
	t.Helper()
	result, err := h.manager.Create(context.Background(), CreateInput{
		HomepageURL: "https://example.com",
		URLs:        urls(n),
		WCAGLevel:   domain.WCAGLevelAA,
		AiEnabled:   aiEnabled,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	return result
}

func TestCreate_Validation(t *testing.T) {
	h := newTestManager(t, Config{MaxBatchURLs: 50})
	ctx := context.Background()

	tests := []struct {
		name     string
		in       CreateInput
		wantCode string
	}{
		{
			name:     "no urls",
			in:       CreateInput{HomepageURL: "https://example.com", WCAGLevel: domain.WCAGLevelAA, CreatedBy: "admin"},
			wantCode: apperrors.CodeEmptyURLSet,
		},
		{
			name:     "too many urls",
			in:       CreateInput{HomepageURL: "https://example.com", URLs: urls(51), WCAGLevel: domain.WCAGLevelAA, CreatedBy: "admin"},
			wantCode: apperrors.CodeTooManyURLs,
		},
		{
			name:     "bad wcag level",
			in:       CreateInput{HomepageURL: "https://example.com", URLs: urls(1), WCAGLevel: "AAAA", CreatedBy: "admin"},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "missing creator",
			in:       CreateInput{HomepageURL: "https://example.com", URLs: urls(1), WCAGLevel: domain.WCAGLevelAA},
			wantCode: apperrors.CodeValidationFailed,
		},
		{
			name:     "blank url entry",
			in:       CreateInput{HomepageURL: "https://example.com", URLs: []string{"https://example.com", "  "}, WCAGLevel: domain.WCAGLevelAA, CreatedBy: "admin"},
			wantCode: apperrors.CodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.manager.Create(ctx, tt.in)
			appErr, ok := apperrors.IsAppError(err)
			require.True(t, ok)
			require.Equal(t, tt.wantCode, appErr.Code)
		})
	}

	// Exactly at the limit is accepted.
	result := createBatch(t, h, 50, false)
	require.Len(t, result.Scans, 50)
}

func TestCreate_BatchScansAndJobs(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 3, false)
	require.Len(t, result.Scans, 3)
	require.Zero(t, result.AiAdmitted)

	b, scans, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusPENDING, b.Status)
	require.Equal(t, 3, b.TotalUrls)
	require.Zero(t, b.CompletedCount)
	require.Len(t, scans, 3)
	for _, s := range scans {
		require.Equal(t, entscan.StatusPENDING, s.Status)
		require.NotEmpty(t, s.JobID)
	}
}

func TestCreate_AiAdmissionPerScan(t *testing.T) {
	h := newTestManager(t, Config{EstimatedTokensPerScan: 12_000})
	ctx := context.Background()

	result := createBatch(t, h, 3, true)
	require.Equal(t, 3, result.AiAdmitted)
	require.Zero(t, result.AiRefused)
	require.Len(t, h.queue.entries, 3)

	// Refusal downgrades every scan instead of failing batch creation.
	h.budget.refuse = true
	result = createBatch(t, h, 2, true)
	require.Zero(t, result.AiAdmitted)
	require.Equal(t, 2, result.AiRefused)

	for _, ref := range result.Scans {
		s, err := h.client.Scan.Get(ctx, ref.ScanID)
		require.NoError(t, err)
		require.False(t, s.AiEnabled)
	}
}

func TestListAndMetrics(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	first := createBatch(t, h, 2, false)
	createBatch(t, h, 3, false)

	items, total, err := h.manager.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, items, 2)

	items, total, err = h.manager.List(ctx, ListFilter{Status: "PENDING", Limit: 1})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, items, 1)

	items, _, err = h.manager.List(ctx, ListFilter{CreatedBy: "somebody-else"})
	require.NoError(t, err)
	require.Empty(t, items)

	metrics, err := h.manager.Metrics(ctx, first.BatchID)
	require.NoError(t, err)
	require.Equal(t, 2, metrics.TotalURLs)
	require.Zero(t, metrics.ProgressPercent)

	_, err = h.manager.Metrics(ctx, "batch-missing")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBatchNotFound, appErr.Code)
}

func TestMarkScanRunning(t *testing.T) {
	h := newTestManager(t, Config{})
	ctx := context.Background()

	result := createBatch(t, h, 1, false)
	scanID := result.Scans[0].ScanID

	ok, err := h.manager.MarkScanRunning(ctx, scanID)
	require.NoError(t, err)
	require.True(t, ok)

	b, _, err := h.manager.Detail(ctx, result.BatchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusRUNNING, b.Status)

	// Second start attempt loses the guard.
	ok, err = h.manager.MarkScanRunning(ctx, scanID)
	require.NoError(t, err)
	require.False(t, ok)
}

func completeScan(t *testing.T, h *testHarness, scanID string, succeeded bool) {
	t.Helper()
	outcome := domain.ScanOutcome{
		ScanID:     scanID,
		Succeeded:  succeeded,
		FinishedAt: time.Now().UTC(),
	}
	if succeeded {
		outcome.PageTitle = "Example Page"
		outcome.Counts = domain.IssueCounts{Total: 5, Critical: 1, Serious: 2, Moderate: 1, Minor: 1, PassedChecks: 30}
	} else {
		outcome.ErrorMessage = "connection refused"
	}
	require.NoError(t, h.manager.OnScanCompleted(context.Background(), outcome))
}
