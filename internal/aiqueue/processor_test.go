package aiqueue

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/testutil"
)

func init() {
	logger.Init("error", "console")
}

type settleCall struct {
	reservationID string
	actualTokens  int64
	succeeded     bool
}

type stubBudget struct {
	mu        sync.Mutex
	calls     []settleCall
	err       error
	refuse    bool
	status    string
	remaining int64
	active    map[string]string
	nextID    int
}

func newStubBudget() *stubBudget {
	return &stubBudget{status: string(domain.CampaignStatusActive), active: map[string]string{}}
}

func (s *stubBudget) Admit(_ context.Context, scanID string, _ int64) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refuse {
		return false, "", nil
	}
	s.nextID++
	rsv := fmt.Sprintf("rsv-fresh-%02d", s.nextID)
	s.active[scanID] = rsv
	return true, rsv, nil
}

func (s *stubBudget) Settle(_ context.Context, reservationID string, actualTokens int64, succeeded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, settleCall{reservationID, actualTokens, succeeded})
	for scanID, rsv := range s.active {
		if rsv == reservationID {
			delete(s.active, scanID)
		}
	}
	return nil
}

func (s *stubBudget) ActiveReservation(_ context.Context, scanID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rsv, ok := s.active[scanID]
	return rsv, ok, nil
}

func (s *stubBudget) AdmissionState(_ context.Context) (string, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.remaining, nil
}

type stubCompleter struct {
	mu       sync.Mutex
	outcomes []domain.ScanOutcome
}

func (s *stubCompleter) OnScanCompleted(_ context.Context, outcome domain.ScanOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

func newTestProcessor(t *testing.T) (*Processor, *ent.Client, *stubBudget, *stubCompleter) {
	t.Helper()
	client, pool := testutil.OpenEntWithPool(t, "aiqueue")
	budget := newStubBudget()
	completer := &stubCompleter{}
	p := NewProcessor(client, pool, budget, domain.NewEventDispatcher(), Config{ExportBatchSize: 100, EstimatedTokensPerScan: 10_000})
	p.SetLifecycle(completer)
	return p, client, budget, completer
}

func seedEntry(t *testing.T, p *Processor, client *ent.Client, n int) (scanID, reservationID string) {
	t.Helper()
	ctx := context.Background()
	scanID = fmt.Sprintf("scan-%04d", n)
	reservationID = fmt.Sprintf("rsv-%04d", n)
	err := client.Scan.Create().
		SetID(scanID).
		SetURL(fmt.Sprintf("https://example.com/page-%d", n)).
		SetContentSnapshot(fmt.Sprintf("page %d body text", n)).
		SetAiEnabled(true).
		Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, p.Enqueue(ctx, scanID, reservationID))
	return scanID, reservationID
}

func TestEnqueue_DuplicateScanIsNoOp(t *testing.T) {
	ctx := context.Background()
	p, client, _, _ := newTestProcessor(t)
	scanID, reservationID := seedEntry(t, p, client, 1)

	require.NoError(t, p.Enqueue(ctx, scanID, reservationID))

	count, err := client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestExportPending_ClaimsAndTransitions(t *testing.T) {
	ctx := context.Background()
	p, client, _, _ := newTestProcessor(t)
	for i := 0; i < 3; i++ {
		seedEntry(t, p, client, i)
	}

	rows, err := p.ExportPending(ctx, 2, "admin")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotEmpty(t, row.URL)
		require.NotEmpty(t, row.ContentSnapshot)
	}

	downloaded, err := client.AiQueueEntry.Query().
		Where(aiqueueentry.AiStatusEQ(aiqueueentry.AiStatusDOWNLOADED)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, downloaded)

	// The remaining entry is claimed by the next export.
	rows, err = p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Empty queue: empty result, no error.
	rows, err = p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestExportPending_ConcurrentClaimsAreDisjoint(t *testing.T) {
	ctx := context.Background()
	p, client, _, _ := newTestProcessor(t)
	for i := 0; i < 8; i++ {
		seedEntry(t, p, client, i)
	}

	type result struct {
		rows []ExportRow
		err  error
	}
	results := make(chan result, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := p.ExportPending(ctx, 5, "admin")
			results <- result{rows, err}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]int{}
	total := 0
	for res := range results {
		require.NoError(t, res.err)
		for _, row := range res.rows {
			seen[row.ScanID]++
			total++
		}
	}
	require.LessOrEqual(t, total, 8)
	for scanID, n := range seen {
		require.Equalf(t, 1, n, "scan %s claimed %d times", scanID, n)
	}
}

func TestWriteExportCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteExportCSV(&buf, []ExportRow{
		{ScanID: "scan-1", URL: "https://example.com", ContentSnapshot: "hello, \"quoted\" text"},
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "scan_id,url,content_snapshot")
	require.Contains(t, buf.String(), `"hello, ""quoted"" text"`)
}

func TestImportResults_PartialFailure(t *testing.T) {
	ctx := context.Background()
	p, client, budget, completer := newTestProcessor(t)
	for i := 0; i < 9; i++ {
		seedEntry(t, p, client, i)
	}
	_, err := p.ExportPending(ctx, 100, "admin")
	require.NoError(t, err)

	var csvBody strings.Builder
	csvBody.WriteString("scan_id,status,input_tokens,output_tokens,model,processing_ms,error_message\n")
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&csvBody, "scan-%04d,COMPLETED,8000,2000,claude-sonnet-4-5,1500,\n", i)
	}
	csvBody.WriteString("scan-9999,COMPLETED,not-a-number,2000,claude-sonnet-4-5,1500,\n")

	summary, err := p.ImportResults(ctx, strings.NewReader(csvBody.String()), "admin")
	require.NoError(t, err)
	require.Equal(t, 9, summary.Processed)
	require.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	require.Equal(t, "scan-9999", summary.Errors[0].ScanID)
	require.Equal(t, int64(9*10_000), summary.TokensDeducted)
	require.Equal(t, apperrors.CodePartialFailure, summary.Code)

	completed, err := client.AiQueueEntry.Query().
		Where(aiqueueentry.AiStatusEQ(aiqueueentry.AiStatusCOMPLETED)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, completed)

	require.Len(t, budget.calls, 9)
	for _, call := range budget.calls {
		require.True(t, call.succeeded)
		require.Equal(t, int64(10_000), call.actualTokens)
	}
	require.Len(t, completer.outcomes, 9)
}

func TestImportResults_FailedRowSettlesWithoutSpend(t *testing.T) {
	ctx := context.Background()
	p, client, budget, _ := newTestProcessor(t)
	scanID, reservationID := seedEntry(t, p, client, 1)
	_, err := p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)

	body := fmt.Sprintf("%s,FAILED,0,0,claude-sonnet-4-5,800,model timeout\n", scanID)
	summary, err := p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)
	require.Equal(t, int64(0), summary.TokensDeducted)
	require.Empty(t, summary.Code)

	require.Len(t, budget.calls, 1)
	require.Equal(t, reservationID, budget.calls[0].reservationID)
	require.False(t, budget.calls[0].succeeded)

	entry, err := client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, aiqueueentry.AiStatusFAILED, entry.AiStatus)
}

func TestImportResults_UnclaimedEntryIsRowError(t *testing.T) {
	ctx := context.Background()
	p, client, _, _ := newTestProcessor(t)
	scanID, _ := seedEntry(t, p, client, 1)

	// Still PENDING: results for an unexported scan are rejected.
	body := fmt.Sprintf("%s,COMPLETED,100,50,claude-sonnet-4-5,900,\n", scanID)
	summary, err := p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)
	require.Equal(t, 0, summary.Processed)
	require.Equal(t, 1, summary.Failed)
	require.Contains(t, summary.Errors[0].Message, "no importable queue entry")
}

func TestImportResults_DuplicateUploadIsRowError(t *testing.T) {
	ctx := context.Background()
	p, client, budget, _ := newTestProcessor(t)
	scanID, _ := seedEntry(t, p, client, 1)
	_, err := p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)

	body := fmt.Sprintf("%s,COMPLETED,100,50,claude-sonnet-4-5,900,\n", scanID)
	summary, err := p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)

	summary, err = p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)
	require.Equal(t, 0, summary.Processed)
	require.Equal(t, 1, summary.Failed)

	// The reservation settled exactly once.
	require.Len(t, budget.calls, 1)
}

func TestRetryScan(t *testing.T) {
	ctx := context.Background()
	p, client, budget, _ := newTestProcessor(t)
	scanID, seededRsv := seedEntry(t, p, client, 1)
	_, err := p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)

	// Not FAILED yet: retry is rejected.
	err = p.RetryScan(ctx, scanID, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeQueueEntryNotFound, appErr.Code)

	body := fmt.Sprintf("%s,FAILED,0,0,claude-sonnet-4-5,800,model timeout\n", scanID)
	_, err = p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)

	require.NoError(t, p.RetryScan(ctx, scanID, "admin"))

	// The failed settlement released the seeded reservation, so the
	// retry was admitted under a fresh one and the entry follows it.
	entry, err := client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, aiqueueentry.AiStatusPENDING, entry.AiStatus)
	require.Zero(t, entry.AiTotalTokens)
	require.NotEqual(t, seededRsv, entry.ReservationID)

	fresh, held, err := budget.ActiveReservation(ctx, scanID)
	require.NoError(t, err)
	require.True(t, held)
	require.Equal(t, fresh, entry.ReservationID)

	err = p.RetryScan(ctx, "scan-missing", "admin")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeScanNotFound, appErr.Code)
}

func TestRetryScan_ReusesHeldReservation(t *testing.T) {
	ctx := context.Background()
	p, client, budget, _ := newTestProcessor(t)
	scanID, seededRsv := seedEntry(t, p, client, 1)
	_, err := p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)

	body := fmt.Sprintf("%s,FAILED,0,0,claude-sonnet-4-5,800,model timeout\n", scanID)
	_, err = p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)

	// An unsettled reservation survived the failure: no re-admission.
	budget.active[scanID] = seededRsv
	require.NoError(t, p.RetryScan(ctx, scanID, "admin"))
	require.Zero(t, budget.nextID)

	entry, err := client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, seededRsv, entry.ReservationID)
}

func TestRetryScan_AdmissionRefused(t *testing.T) {
	ctx := context.Background()
	p, client, budget, _ := newTestProcessor(t)
	scanID, _ := seedEntry(t, p, client, 1)
	_, err := p.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)

	body := fmt.Sprintf("%s,FAILED,0,0,claude-sonnet-4-5,800,model timeout\n", scanID)
	_, err = p.ImportResults(ctx, strings.NewReader(body), "admin")
	require.NoError(t, err)

	budget.refuse = true
	budget.remaining = 4_000

	err = p.RetryScan(ctx, scanID, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBudgetExhausted, appErr.Code)
	require.Equal(t, int64(10_000), appErr.Params["requested"])
	require.Equal(t, int64(4_000), appErr.Params["remaining"])

	budget.status = string(domain.CampaignStatusPaused)
	err = p.RetryScan(ctx, scanID, "admin")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeCampaignInactive, appErr.Code)

	// The refused entry stays FAILED.
	entry, err := client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, aiqueueentry.AiStatusFAILED, entry.AiStatus)
}

func TestListAndStats(t *testing.T) {
	ctx := context.Background()
	p, client, _, _ := newTestProcessor(t)
	for i := 0; i < 5; i++ {
		seedEntry(t, p, client, i)
	}
	_, err := p.ExportPending(ctx, 2, "admin")
	require.NoError(t, err)

	pending, err := p.List(ctx, ListFilter{Status: "PENDING"})
	require.NoError(t, err)
	require.Len(t, pending, 3)

	// Cursor pagination walks the full queue without overlap.
	page1, err := p.List(ctx, ListFilter{Limit: 3})
	require.NoError(t, err)
	require.Len(t, page1, 3)
	page2, err := p.List(ctx, ListFilter{Limit: 3, Cursor: page1[2].ID})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	for _, a := range page1 {
		for _, b := range page2 {
			require.NotEqual(t, a.ID, b.ID)
		}
	}

	stats, err := p.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Pending)
	require.Equal(t, 2, stats.Downloaded)
	require.Equal(t, 0, stats.Completed)
}
