// Package scanner defines the page scanning provider interface.
//
// All providers return domain types, NOT engine-specific types
// (Anti-Corruption Layer).
package scanner

import (
	"context"

	"a11ysentinel.io/sentinel/internal/domain"
)

// Request describes one page to scan.
type Request struct {
	ScanID    string
	URL       string
	WCAGLevel domain.WCAGLevel
	// CaptureSnapshot asks the provider to return the rendered page text
	// for later AI enhancement.
	CaptureSnapshot bool
}

// PageScanner runs an accessibility scan against a single page.
type PageScanner interface {
	Name() string

	// ScanPage blocks until the page is scanned or ctx is cancelled.
	// Engine failures are reported inside the outcome (Succeeded=false),
	// not as an error; the error return is for transport-level problems.
	ScanPage(ctx context.Context, req Request) (*domain.ScanOutcome, error)
}
