package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	entscan "a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/scanner"
)

// ScanLifecycle is the slice of the batch lifecycle a scan worker needs.
type ScanLifecycle interface {
	MarkScanRunning(ctx context.Context, scanID string) (bool, error)
	OnScanCompleted(ctx context.Context, outcome domain.ScanOutcome) error
}

// PageScanWorker executes one accessibility page scan.
//
// Execution flow:
//  1. Fetch the Scan row by id (claim-check)
//  2. Skip terminal or superseded scans: duplicate deliveries are no-ops
//  3. Guarded PENDING -> RUNNING transition
//  4. Run the scan engine, capturing a content snapshot for AI scans
//  5. Deliver the outcome through the lifecycle completion path
type PageScanWorker struct {
	river.WorkerDefaults[PageScanArgs]
	entClient *ent.Client
	engine    scanner.PageScanner
	lifecycle ScanLifecycle
}

// NewPageScanWorker creates a PageScanWorker with all dependencies.
func NewPageScanWorker(entClient *ent.Client, engine scanner.PageScanner, lifecycle ScanLifecycle) *PageScanWorker {
	return &PageScanWorker{entClient: entClient, engine: engine, lifecycle: lifecycle}
}

// SetLifecycle late-binds the lifecycle manager. Workers are registered
// before the River client exists, and the lifecycle manager needs that
// client to enqueue retries.
func (w *PageScanWorker) SetLifecycle(lc ScanLifecycle) {
	w.lifecycle = lc
}

// Work executes the page scan.
func (w *PageScanWorker) Work(ctx context.Context, job *river.Job[PageScanArgs]) error {
	scanID := job.Args.ScanID

	if w.lifecycle == nil {
		return fmt.Errorf("page scan worker is not initialized")
	}

	logger.Info("Processing page scan job",
		zap.String("scan_id", scanID),
		zap.Int("attempt", job.Attempt),
	)

	row, err := w.entClient.Scan.Get(ctx, scanID)
	if err != nil {
		if ent.IsNotFound(err) {
			// The batch was deleted after enqueue.
			return river.JobCancel(fmt.Errorf("scan %s no longer exists", scanID))
		}
		return fmt.Errorf("fetch scan %s: %w", scanID, err)
	}
	if row.Status != entscan.StatusPENDING && row.Status != entscan.StatusRUNNING {
		logger.Info("scan already settled, skipping duplicate execution",
			zap.String("scan_id", scanID),
			zap.String("status", row.Status.String()),
		)
		return nil
	}
	if job.Args.JobID != "" && row.JobID != job.Args.JobID {
		// A retry re-enqueued this scan under a newer job id.
		logger.Info("scan superseded by a newer job, skipping stale delivery",
			zap.String("scan_id", scanID),
			zap.String("job_id", job.Args.JobID),
		)
		return nil
	}

	runnable, err := w.lifecycle.MarkScanRunning(ctx, scanID)
	if err != nil {
		return fmt.Errorf("mark scan %s running: %w", scanID, err)
	}
	if !runnable && row.Status != entscan.StatusRUNNING {
		// Lost the race against a cancel.
		return nil
	}

	level, err := w.resolveLevel(ctx, row.BatchID)
	if err != nil {
		return err
	}

	outcome, err := w.engine.ScanPage(ctx, scanner.Request{
		ScanID:          scanID,
		URL:             row.URL,
		WCAGLevel:       level,
		CaptureSnapshot: row.AiEnabled,
	})
	if err != nil {
		// Transport failure: retry until the attempt budget runs out,
		// then settle the scan as FAILED so the batch can finish.
		if job.Attempt >= job.MaxAttempts {
			failed := domain.ScanOutcome{
				ScanID:       scanID,
				Succeeded:    false,
				ErrorMessage: err.Error(),
				FinishedAt:   time.Now().UTC(),
			}
			if dErr := w.lifecycle.OnScanCompleted(ctx, failed); dErr != nil {
				logger.Error("failed to record scan failure",
					zap.String("scan_id", scanID),
					zap.Error(dErr),
				)
			}
			return river.JobCancel(fmt.Errorf("scan %s exhausted attempts: %w", scanID, err))
		}
		return fmt.Errorf("scan page for %s: %w", scanID, err)
	}

	if err := w.lifecycle.OnScanCompleted(ctx, *outcome); err != nil {
		return fmt.Errorf("deliver outcome for scan %s: %w", scanID, err)
	}
	return nil
}

// resolveLevel reads the conformance level from the owning batch.
// Standalone scans default to AA.
func (w *PageScanWorker) resolveLevel(ctx context.Context, batchID string) (domain.WCAGLevel, error) {
	if batchID == "" {
		return domain.WCAGLevelAA, nil
	}
	b, err := w.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.WCAGLevelAA, nil
		}
		return "", fmt.Errorf("fetch batch %s: %w", batchID, err)
	}
	return domain.WCAGLevel(b.WcagLevel), nil
}
