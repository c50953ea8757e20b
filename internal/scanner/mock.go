package scanner

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"a11ysentinel.io/sentinel/internal/domain"
)

// MockScanner implements PageScanner for testing without a browser engine.
// Results are deterministic per URL so tests can assert on counts.
type MockScanner struct {
	mu sync.RWMutex

	// failURLs lists substrings; any URL containing one fails.
	failURLs []string
	delay    time.Duration
	calls    int
}

// NewMockScanner creates a new MockScanner.
func NewMockScanner() *MockScanner {
	return &MockScanner{}
}

// FailURLsContaining makes scans fail for URLs containing any of the given substrings.
func (s *MockScanner) FailURLsContaining(substrings ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failURLs = append(s.failURLs, substrings...)
}

// SetDelay adds an artificial per-scan delay.
func (s *MockScanner) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Calls returns the number of ScanPage invocations.
func (s *MockScanner) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

// Reset clears all mock state.
func (s *MockScanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failURLs = nil
	s.delay = 0
	s.calls = 0
}

func (s *MockScanner) Name() string { return "mock" }

func (s *MockScanner) ScanPage(ctx context.Context, req Request) (*domain.ScanOutcome, error) {
	s.mu.Lock()
	s.calls++
	failURLs := append([]string(nil), s.failURLs...)
	delay := s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, sub := range failURLs {
		if strings.Contains(req.URL, sub) {
			return &domain.ScanOutcome{
				ScanID:       req.ScanID,
				Succeeded:    false,
				ErrorMessage: fmt.Sprintf("mock scan failure for %s", req.URL),
				FinishedAt:   time.Now().UTC(),
			}, nil
		}
	}

	counts := deterministicCounts(req.URL)
	outcome := &domain.ScanOutcome{
		ScanID:     req.ScanID,
		Succeeded:  true,
		PageTitle:  "Mock page: " + req.URL,
		Counts:     counts,
		Issues:     deterministicIssues(req.URL, counts),
		FinishedAt: time.Now().UTC(),
	}
	if req.CaptureSnapshot {
		outcome.ContentSnapshot = "<main>mock content for " + req.URL + "</main>"
	}
	return outcome, nil
}

// deterministicCounts derives issue counts from a URL hash so repeated
// scans of the same page agree.
func deterministicCounts(url string) domain.IssueCounts {
	h := fnv.New32a()
	h.Write([]byte(url))
	n := h.Sum32()

	critical := int(n % 3)
	serious := int((n / 3) % 4)
	moderate := int((n / 12) % 5)
	minor := int((n / 60) % 6)
	return domain.IssueCounts{
		Total:        critical + serious + moderate + minor,
		Critical:     critical,
		Serious:      serious,
		Moderate:     moderate,
		Minor:        minor,
		PassedChecks: 20 + int(n%30),
	}
}

func deterministicIssues(url string, counts domain.IssueCounts) []domain.Issue {
	var issues []domain.Issue
	add := func(severity string, n int, rule string) {
		for i := 0; i < n; i++ {
			issues = append(issues, domain.Issue{
				RuleID:   rule,
				Severity: severity,
				Selector: fmt.Sprintf("#el-%s-%d", severity, i),
				Message:  fmt.Sprintf("%s violation on %s", rule, url),
			})
		}
	}
	add("critical", counts.Critical, "image-alt")
	add("serious", counts.Serious, "color-contrast")
	add("moderate", counts.Moderate, "landmark-one-main")
	add("minor", counts.Minor, "region")
	return issues
}
