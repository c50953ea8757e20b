package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestBatchEventPayload_ToJSON(t *testing.T) {
	payload := BatchEventPayload{
		BatchID:        "batch-1",
		HomepageURL:    "https://example.com",
		TotalURLs:      12,
		CompletedCount: 10,
		FailedCount:    2,
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded BatchEventPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}

func TestBatchStatus_Terminal(t *testing.T) {
	tests := []struct {
		status BatchStatus
		want   bool
	}{
		{BatchStatusPending, false},
		{BatchStatusRunning, false},
		{BatchStatusCompleted, true},
		{BatchStatusFailed, true},
		{BatchStatusCancelled, true},
		{BatchStatusStale, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.status.Terminal(), "status %s", tt.status)
	}
}

func TestScanStatus_Terminal(t *testing.T) {
	require.False(t, ScanStatusPending.Terminal())
	require.False(t, ScanStatusRunning.Terminal())
	require.True(t, ScanStatusCompleted.Terminal())
	require.True(t, ScanStatusFailed.Terminal())
	require.True(t, ScanStatusCancelled.Terminal())
}

func TestWCAGLevel_Valid(t *testing.T) {
	require.True(t, WCAGLevelA.Valid())
	require.True(t, WCAGLevelAA.Valid())
	require.True(t, WCAGLevelAAA.Valid())
	require.False(t, WCAGLevel("B").Valid())
	require.False(t, WCAGLevel("").Valid())
}

func TestIssueCounts_Add(t *testing.T) {
	a := IssueCounts{Total: 5, Critical: 1, Serious: 2, Moderate: 1, Minor: 1, PassedChecks: 40}
	b := IssueCounts{Total: 3, Critical: 0, Serious: 1, Moderate: 2, Minor: 0, PassedChecks: 10}

	sum := a.Add(b)
	require.Equal(t, IssueCounts{Total: 8, Critical: 1, Serious: 3, Moderate: 3, Minor: 1, PassedChecks: 50}, sum)
}

func TestTokenUsage_Total(t *testing.T) {
	u := TokenUsage{InputTokens: 8000, OutputTokens: 2500}
	require.Equal(t, int64(10500), u.Total())
}

func TestEventDispatcher_Dispatch(t *testing.T) {
	d := NewEventDispatcher()

	var seen []string
	d.Register(EventBatchCreated, func(ctx context.Context, e *DomainEvent) error {
		seen = append(seen, e.AggregateID)
		return nil
	})

	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:       "evt-1",
		EventType:     EventBatchCreated,
		AggregateType: "batch",
		AggregateID:   "batch-1",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"batch-1"}, seen)

	// Unregistered event types are a no-op, not an error
	require.NoError(t, d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-2",
		EventType: EventCampaignPaused,
	}))
}

func TestEventDispatcher_HandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewEventDispatcher()

	var secondCalled bool
	d.Register(EventScanCompleted, func(ctx context.Context, e *DomainEvent) error {
		return errors.New("boom")
	})
	d.Register(EventScanCompleted, func(ctx context.Context, e *DomainEvent) error {
		secondCalled = true
		return nil
	})

	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-3",
		EventType: EventScanCompleted,
	})
	require.Error(t, err)
	require.True(t, secondCalled)
}
