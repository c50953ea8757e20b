package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"a11ysentinel.io/sentinel/internal/domain"
)

func TestMockScanner_Deterministic(t *testing.T) {
	s := NewMockScanner()
	ctx := context.Background()

	first, err := s.ScanPage(ctx, Request{ScanID: "scan-1", URL: "https://example.com/about", WCAGLevel: domain.WCAGLevelAA})
	require.NoError(t, err)
	require.True(t, first.Succeeded)

	second, err := s.ScanPage(ctx, Request{ScanID: "scan-2", URL: "https://example.com/about", WCAGLevel: domain.WCAGLevelAA})
	require.NoError(t, err)
	require.Equal(t, first.Counts, second.Counts)
	require.Len(t, first.Issues, first.Counts.Total)
}

func TestMockScanner_FailURLs(t *testing.T) {
	s := NewMockScanner()
	s.FailURLsContaining("broken")

	outcome, err := s.ScanPage(context.Background(), Request{ScanID: "scan-3", URL: "https://example.com/broken-page"})
	require.NoError(t, err)
	require.False(t, outcome.Succeeded)
	require.NotEmpty(t, outcome.ErrorMessage)
	require.Zero(t, outcome.Counts.Total)
}

func TestMockScanner_Snapshot(t *testing.T) {
	s := NewMockScanner()

	outcome, err := s.ScanPage(context.Background(), Request{ScanID: "scan-4", URL: "https://example.com", CaptureSnapshot: true})
	require.NoError(t, err)
	require.Contains(t, outcome.ContentSnapshot, "example.com")

	outcome, err = s.ScanPage(context.Background(), Request{ScanID: "scan-5", URL: "https://example.com"})
	require.NoError(t, err)
	require.Empty(t, outcome.ContentSnapshot)
	require.Equal(t, 2, s.Calls())
}
