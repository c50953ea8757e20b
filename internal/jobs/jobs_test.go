package jobs

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestPageScanArgsKind(t *testing.T) {
	t.Parallel()

	if got := (PageScanArgs{}).Kind(); got != "page_scan" {
		t.Fatalf("Kind() = %q, want %q", got, "page_scan")
	}
}

func TestPageScanArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (PageScanArgs{}).InsertOpts()
	if opts.Queue != "scan_operations" {
		t.Fatalf("Queue = %q, want %q", opts.Queue, "scan_operations")
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
}

func TestPeriodicArgsInsertOpts(t *testing.T) {
	t.Parallel()

	sweep := (StaleSweepArgs{}).InsertOpts()
	if sweep.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("stale sweep ByPeriod = %s, want %s", sweep.UniqueOpts.ByPeriod, time.Hour)
	}
	tick := (CampaignTickArgs{}).InsertOpts()
	if tick.UniqueOpts.ByPeriod != time.Minute {
		t.Fatalf("campaign tick ByPeriod = %s, want %s", tick.UniqueOpts.ByPeriod, time.Minute)
	}
	for _, opts := range []river.InsertOpts{sweep, tick} {
		if opts.MaxAttempts != 1 {
			t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
		}
	}
}

type stubDetector struct {
	staleIDs []string
	err      error
	calls    int
}

func (d *stubDetector) DetectStale(context.Context) ([]string, error) {
	d.calls++
	return d.staleIDs, d.err
}

func TestStaleSweepWorkerWork(t *testing.T) {
	t.Parallel()

	t.Run("propagates detector errors", func(t *testing.T) {
		w := NewStaleSweepWorker(&stubDetector{err: fmt.Errorf("db down")})
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "db down") {
			t.Fatalf("Work() error = %v, want contains %q", err, "db down")
		}
	})

	t.Run("runs the sweep once per invocation", func(t *testing.T) {
		d := &stubDetector{staleIDs: []string{"batch-1", "batch-2"}}
		w := NewStaleSweepWorker(d)
		if err := w.Work(context.Background(), nil); err != nil {
			t.Fatalf("Work() error = %v", err)
		}
		if d.calls != 1 {
			t.Fatalf("detector calls = %d, want 1", d.calls)
		}
	})

	t.Run("nil receiver", func(t *testing.T) {
		var w *StaleSweepWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

type stubTicker struct {
	err   error
	calls int
}

func (s *stubTicker) Tick(context.Context) error {
	s.calls++
	return s.err
}

func TestCampaignTickWorkerWork(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the ticker", func(t *testing.T) {
		ticker := &stubTicker{}
		w := NewCampaignTickWorker(ticker)
		if err := w.Work(context.Background(), nil); err != nil {
			t.Fatalf("Work() error = %v", err)
		}
		if ticker.calls != 1 {
			t.Fatalf("ticker calls = %d, want 1", ticker.calls)
		}
	})

	t.Run("propagates ticker errors", func(t *testing.T) {
		w := NewCampaignTickWorker(&stubTicker{err: fmt.Errorf("campaign gone")})
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "campaign gone") {
			t.Fatalf("Work() error = %v, want contains %q", err, "campaign gone")
		}
	})
}

func TestPeriodicJobs(t *testing.T) {
	t.Parallel()

	jobs := PeriodicJobs(0, 0)
	if len(jobs) != 2 {
		t.Fatalf("len(PeriodicJobs) = %d, want 2", len(jobs))
	}
}
