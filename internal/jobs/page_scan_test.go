package jobs

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/scanner"
	"a11ysentinel.io/sentinel/internal/testutil"
)

type stubLifecycle struct {
	running  []string
	outcomes []domain.ScanOutcome
}

func (s *stubLifecycle) MarkScanRunning(_ context.Context, scanID string) (bool, error) {
	s.running = append(s.running, scanID)
	return true, nil
}

func (s *stubLifecycle) OnScanCompleted(_ context.Context, outcome domain.ScanOutcome) error {
	s.outcomes = append(s.outcomes, outcome)
	return nil
}

func TestPageScanWorkerSkipsSupersededDelivery(t *testing.T) {
	ctx := context.Background()
	client := testutil.OpenEntPostgres(t, "jobs")
	lc := &stubLifecycle{}
	w := NewPageScanWorker(client, scanner.NewMockScanner(), lc)

	err := client.Scan.Create().
		SetID("scan-retry").
		SetURL("https://example.com/page").
		SetJobID("job-new").
		Exec(ctx)
	if err != nil {
		t.Fatalf("create scan: %v", err)
	}

	// A delivery from before the retry carries the old job id and must
	// not touch the scan.
	job := &river.Job[PageScanArgs]{
		JobRow: &rivertype.JobRow{Attempt: 1, MaxAttempts: 3},
		Args:   PageScanArgs{ScanID: "scan-retry", JobID: "job-old"},
	}
	if err := w.Work(ctx, job); err != nil {
		t.Fatalf("Work() error = %v", err)
	}
	if len(lc.running) != 0 || len(lc.outcomes) != 0 {
		t.Fatalf("stale delivery reached the lifecycle: running=%v outcomes=%d", lc.running, len(lc.outcomes))
	}
	row, err := client.Scan.Get(ctx, "scan-retry")
	if err != nil {
		t.Fatalf("fetch scan: %v", err)
	}
	if row.Status != entscan.StatusPENDING {
		t.Fatalf("scan status = %s, want PENDING", row.Status)
	}

	// The delivery carrying the current job id is worked normally.
	job.Args.JobID = "job-new"
	if err := w.Work(ctx, job); err != nil {
		t.Fatalf("Work() error = %v", err)
	}
	if len(lc.running) != 1 || len(lc.outcomes) != 1 {
		t.Fatalf("current delivery skipped: running=%v outcomes=%d", lc.running, len(lc.outcomes))
	}
}
