package aiqueue

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/aiqueueentry"
	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/reservation"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/lifecycle"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/testutil"
)

// roundTripHarness wires the real campaign controller, queue processor
// and batch manager together so settlement flows cross module seams the
// way they do in production.
type roundTripHarness struct {
	manager    *lifecycle.Manager
	processor  *Processor
	controller *campaign.Controller
	client     *ent.Client
}

func newRoundTripHarness(t *testing.T, tokenBudget int64) *roundTripHarness {
	t.Helper()
	ctx := context.Background()
	client, pool := testutil.OpenEntWithPool(t, "settlement")
	riverClient := testutil.OpenRiverClient(t, pool)
	events := domain.NewEventDispatcher()

	cc := campaign.NewController(client, pool, events)
	require.NoError(t, cc.Ensure(ctx, campaign.SeedConfig{TokenBudget: tokenBudget}))

	p := NewProcessor(client, pool, cc, events, Config{ExportBatchSize: 100, EstimatedTokensPerScan: 12_000})
	m := lifecycle.NewManager(client, pool, riverClient, cc, p, events, lifecycle.Config{EstimatedTokensPerScan: 12_000})
	p.SetLifecycle(m)

	return &roundTripHarness{manager: m, processor: p, controller: cc, client: client}
}

func (h *roundTripHarness) createAiScan(t *testing.T) (batchID, scanID string) {
	t.Helper()
	result, err := h.manager.Create(context.Background(), lifecycle.CreateInput{
		HomepageURL: "https://example.com",
		URLs:        []string{"https://example.com/pricing"},
		WCAGLevel:   domain.WCAGLevelAA,
		AiEnabled:   true,
		CreatedBy:   "admin",
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.AiAdmitted)
	return result.BatchID, result.Scans[0].ScanID
}

func (h *roundTripHarness) importOne(t *testing.T, scanID, status string, inputTokens, outputTokens int64, errMsg string) *ImportSummary {
	t.Helper()
	body := fmt.Sprintf("%s,%s,%d,%d,claude-sonnet-4-5,1500,%s\n",
		scanID, status, inputTokens, outputTokens, errMsg)
	summary, err := h.processor.ImportResults(context.Background(), strings.NewReader(body), "admin")
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)
	return summary
}

func TestBatchRetryRoundTrip_ChargesActualSpendOnce(t *testing.T) {
	ctx := context.Background()
	h := newRoundTripHarness(t, 100_000)
	batchID, scanID := h.createAiScan(t)

	status, err := h.controller.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12_000), status.ReservedTokens)

	rows, err := h.processor.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Failed offline run: the entry fails, the failure replays into the
	// batch, and the reservation settles with no spend.
	summary := h.importOne(t, scanID, "FAILED", 0, 0, "model timeout")
	require.Equal(t, int64(0), summary.TokensDeducted)

	status, err = h.controller.GetStatus(ctx)
	require.NoError(t, err)
	require.Zero(t, status.ReservedTokens)
	require.Zero(t, status.UsedTokens)

	b, _, err := h.manager.Detail(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusFAILED, b.Status)

	retried, err := h.manager.RetryFailed(ctx, batchID, "admin")
	require.NoError(t, err)
	require.Equal(t, 1, retried.RetriedCount)

	// The retry runs under a fresh reservation and the reopened entry
	// follows it.
	freshRsv, held, err := h.controller.ActiveReservation(ctx, scanID)
	require.NoError(t, err)
	require.True(t, held)

	entry, err := h.client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, aiqueueentry.AiStatusPENDING, entry.AiStatus)
	require.Equal(t, freshRsv, entry.ReservationID)

	status, err = h.controller.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12_000), status.ReservedTokens)

	rows, err = h.processor.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	summary = h.importOne(t, scanID, "COMPLETED", 7_000, 2_500, "")
	require.Equal(t, int64(9_500), summary.TokensDeducted)

	// The campaign charged the actual spend, once, and holds nothing.
	status, err = h.controller.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(9_500), status.UsedTokens)
	require.Zero(t, status.ReservedTokens)

	count, err := h.client.Reservation.Query().Where(reservation.ScanIDEQ(scanID)).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	b, _, err = h.manager.Detail(ctx, batchID)
	require.NoError(t, err)
	require.Equal(t, batch.StatusCOMPLETED, b.Status)
}

func TestRetryScan_RefusalAndRecoveryAgainstRealBudget(t *testing.T) {
	ctx := context.Background()
	h := newRoundTripHarness(t, 20_000)
	_, scanID := h.createAiScan(t)

	_, err := h.processor.ExportPending(ctx, 10, "admin")
	require.NoError(t, err)
	h.importOne(t, scanID, "FAILED", 0, 0, "model timeout")

	// Another scan soaks up most of the freed headroom.
	admitted, blocker, err := h.controller.Admit(ctx, "scan-other", 15_000)
	require.NoError(t, err)
	require.True(t, admitted)

	err = h.processor.RetryScan(ctx, scanID, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeBudgetExhausted, appErr.Code)
	require.Equal(t, int64(12_000), appErr.Params["requested"])
	require.Equal(t, int64(5_000), appErr.Params["remaining"])

	// A paused campaign refuses with its state, not with headroom.
	require.NoError(t, h.controller.Pause(ctx, "admin"))
	err = h.processor.RetryScan(ctx, scanID, "admin")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeCampaignInactive, appErr.Code)
	require.NoError(t, h.controller.Resume(ctx, "admin"))

	// Releasing the blocker restores headroom and the retry goes through.
	require.NoError(t, h.controller.Settle(ctx, blocker, 0, false))
	require.NoError(t, h.processor.RetryScan(ctx, scanID, "admin"))

	entry, err := h.client.AiQueueEntry.Query().Where(aiqueueentry.ScanIDEQ(scanID)).Only(ctx)
	require.NoError(t, err)
	require.Equal(t, aiqueueentry.AiStatusPENDING, entry.AiStatus)

	rsv, held, err := h.controller.ActiveReservation(ctx, scanID)
	require.NoError(t, err)
	require.True(t, held)
	require.Equal(t, rsv, entry.ReservationID)
}
