package campaign

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/ent/reservation"
	"a11ysentinel.io/sentinel/internal/domain"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/testutil"
)

func init() {
	logger.Init("error", "console")
}

func newTestController(t *testing.T, budget int64) *Controller {
	t.Helper()
	client, pool := testutil.OpenEntWithPool(t, "campaign")
	c := NewController(client, pool, domain.NewEventDispatcher())
	require.NoError(t, c.Ensure(context.Background(), SeedConfig{TokenBudget: budget}))
	return c
}

func TestEnsure_ExistingBudgetNotResized(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	// Re-running bootstrap with a different budget must not touch the row.
	require.NoError(t, c.Ensure(ctx, SeedConfig{TokenBudget: 999}))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100_000), status.TotalTokenBudget)
}

func TestAdmit_ReservesUntilHeadroomGone(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 30_000)

	admitted, rsv1, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)
	require.NotEmpty(t, rsv1)

	admitted, rsv2, err := c.Admit(ctx, "scan-b", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)
	require.NotEqual(t, rsv1, rsv2)

	// 24k of 30k reserved: a third 12k request does not fit.
	admitted, rsv3, err := c.Admit(ctx, "scan-c", 12_000)
	require.NoError(t, err)
	require.False(t, admitted)
	require.Empty(t, rsv3)

	// A smaller request still fits in the remaining headroom.
	admitted, _, err = c.Admit(ctx, "scan-d", 6_000)
	require.NoError(t, err)
	require.True(t, admitted)

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(30_000), status.ReservedTokens)
	require.Equal(t, int64(0), status.UsedTokens)
}

func TestAdmit_RefusedWhenPaused(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)
	require.NoError(t, c.Pause(ctx, "admin"))

	admitted, _, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.False(t, admitted)

	require.NoError(t, c.Resume(ctx, "admin"))
	admitted, _, err = c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)
}

func TestAdmit_RefusedOutsideWindow(t *testing.T) {
	ctx := context.Background()
	client, pool := testutil.OpenEntWithPool(t, "campaign")
	c := NewController(client, pool, domain.NewEventDispatcher())
	require.NoError(t, c.Ensure(ctx, SeedConfig{
		TokenBudget: 100_000,
		StartsAt:    time.Now().Add(time.Hour),
		EndsAt:      time.Now().Add(2 * time.Hour),
	}))

	admitted, _, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.False(t, admitted)
}

func TestSettle_SuccessConsumesActualTokens(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)

	// Actual spend differs from the estimate; only the actual counts.
	require.NoError(t, c.Settle(ctx, rsv, 9_500, true))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(9_500), status.UsedTokens)
	require.Equal(t, int64(0), status.ReservedTokens)
	require.Equal(t, 1, status.CompletedAiScans)
	require.Equal(t, int64(9_500), status.AvgTokensPerScan)
}

func TestSettle_FailureReleasesWithoutSpending(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)

	require.NoError(t, c.Settle(ctx, rsv, 0, false))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), status.UsedTokens)
	require.Equal(t, int64(0), status.ReservedTokens)
	require.Equal(t, 0, status.CompletedAiScans)
}

func TestSettle_DoubleSettlementIsRejected(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Settle(ctx, rsv, 10_000, true))

	err = c.Settle(ctx, rsv, 10_000, true)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeQueueEntryNotFound, appErr.Code)

	// The budget moved exactly once.
	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(10_000), status.UsedTokens)
}

func TestSettle_DepletesCampaignAtBudget(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 20_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Settle(ctx, rsv, 20_000, true))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusDepleted, status.Status)
	require.Equal(t, domain.UrgencyDepleted, status.Urgency)

	admitted, _, err := c.Admit(ctx, "scan-b", 1_000)
	require.NoError(t, err)
	require.False(t, admitted)
}

func TestReleaseForScans_ReturnsHeadroom(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	_, _, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	_, rsvB, err := c.Admit(ctx, "scan-b", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Settle(ctx, rsvB, 11_000, true))

	// scan-b is already settled; only scan-a's reservation is live.
	released, err := c.ReleaseForScans(ctx, []string{"scan-a", "scan-b", "scan-unknown"})
	require.NoError(t, err)
	require.Equal(t, 1, released)

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), status.ReservedTokens)
	require.Equal(t, int64(11_000), status.UsedTokens)

	_, held, err := c.ActiveReservation(ctx, "scan-a")
	require.NoError(t, err)
	require.False(t, held)
}

func TestPause_RejectedWhenNotActive(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)
	require.NoError(t, c.Pause(ctx, "admin"))

	err := c.Pause(ctx, "admin")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidState, appErr.Code)

	err = c.Resume(ctx, "admin")
	require.NoError(t, err)
	err = c.Resume(ctx, "admin")
	_, ok = apperrors.IsAppError(err)
	require.True(t, ok)
}

func TestTick_EndsExpiredCampaign(t *testing.T) {
	ctx := context.Background()
	client, pool := testutil.OpenEntWithPool(t, "campaign")
	c := NewController(client, pool, domain.NewEventDispatcher())
	require.NoError(t, c.Ensure(ctx, SeedConfig{
		TokenBudget: 100_000,
		StartsAt:    time.Now().Add(-48 * time.Hour),
		EndsAt:      time.Now().Add(-time.Hour),
	}))

	require.NoError(t, c.Tick(ctx))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusEnded, status.Status)

	// Second tick is a no-op.
	require.NoError(t, c.Tick(ctx))
}

func TestAdmit_ConcurrentRequestsNeverOversell(t *testing.T) {
	ctx := context.Background()
	// Room for exactly 5 reservations.
	c := newTestController(t, 60_000)

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted, _, err := c.Admit(ctx, generateReservationID(), 12_000)
			if err != nil {
				errs <- err
				return
			}
			results <- admitted
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	granted := 0
	for admitted := range results {
		if admitted {
			granted++
		}
	}
	require.Equal(t, 5, granted)

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(60_000), status.ReservedTokens)
	require.Equal(t, int64(0), status.RemainingTokens)
}

func TestGetStatus_ProjectedSlots(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	// No settled scans yet: remaining tokens are the optimistic bound.
	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), status.AvgTokensPerScan)
	require.Equal(t, int64(100_000), status.ProjectedSlotsRemaining)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Settle(ctx, rsv, 10_000, true))

	status, err = c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(10_000), status.AvgTokensPerScan)
	require.Equal(t, int64(9), status.ProjectedSlotsRemaining)
}

func TestPublicMetrics_OmitsAbsoluteFigures(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Settle(ctx, rsv, 25_000, true))

	metrics, err := c.PublicMetrics(ctx)
	require.NoError(t, err)
	require.InDelta(t, 25.0, metrics.PercentUsed, 0.001)
	require.InDelta(t, 75.0, metrics.PercentRemaining, 0.001)
	require.Equal(t, domain.UrgencyNormal, metrics.Urgency)
	require.Equal(t, 1, metrics.CompletedAiScans)
}

func TestAdmit_PersistsReservationRow(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	admitted, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)

	row, err := c.entClient.Reservation.Get(ctx, rsv)
	require.NoError(t, err)
	require.Equal(t, "scan-a", row.ScanID)
	require.Equal(t, DefaultCampaignID, row.CampaignID)
	require.Equal(t, int64(12_000), row.EstimatedTokens)
	require.False(t, row.Settled)
	require.False(t, row.CreatedAt.IsZero())
	require.False(t, row.UpdatedAt.IsZero())
}

func TestAdmit_AfterSettlementIssuesFreshReservation(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 100_000)

	admitted, first, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)

	// One live reservation per scan: a second admit cannot stack, and
	// the failed attempt reserves nothing.
	_, _, err = c.Admit(ctx, "scan-a", 12_000)
	require.Error(t, err)

	require.NoError(t, c.Settle(ctx, first, 0, false))

	admitted, second, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.True(t, admitted)
	require.NotEqual(t, first, second)

	// Settled history stays alongside the live reservation.
	count, err := c.entClient.Reservation.Query().
		Where(reservation.ScanIDEQ("scan-a")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(12_000), status.ReservedTokens)
	require.Equal(t, int64(0), status.UsedTokens)
}

func TestSettle_DepletesPausedCampaign(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 20_000)

	_, rsv, err := c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Pause(ctx, "admin"))

	// Reaching the budget depletes the campaign even while paused.
	require.NoError(t, c.Settle(ctx, rsv, 20_000, true))

	status, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusDepleted, status.Status)
}

func TestAdmissionState(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, 30_000)

	status, remaining, err := c.AdmissionState(ctx)
	require.NoError(t, err)
	require.Equal(t, "ACTIVE", status)
	require.Equal(t, int64(30_000), remaining)

	_, _, err = c.Admit(ctx, "scan-a", 12_000)
	require.NoError(t, err)
	require.NoError(t, c.Pause(ctx, "admin"))

	status, remaining, err = c.AdmissionState(ctx)
	require.NoError(t, err)
	require.Equal(t, "PAUSED", status)
	require.Equal(t, int64(18_000), remaining)
}
