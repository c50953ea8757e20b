package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// StaleDetector marks abandoned batches STALE.
type StaleDetector interface {
	DetectStale(ctx context.Context) ([]string, error)
}

// CampaignTicker ends the campaign once its window closes.
type CampaignTicker interface {
	Tick(ctx context.Context) error
}

// StaleSweepWorker runs the periodic staleness sweep.
type StaleSweepWorker struct {
	river.WorkerDefaults[StaleSweepArgs]
	detector StaleDetector
}

// NewStaleSweepWorker creates a StaleSweepWorker.
func NewStaleSweepWorker(detector StaleDetector) *StaleSweepWorker {
	return &StaleSweepWorker{detector: detector}
}

// SetDetector late-binds the stale detector, which is constructed after
// the River client the workers are registered on.
func (w *StaleSweepWorker) SetDetector(detector StaleDetector) {
	w.detector = detector
}

// Work marks abandoned batches stale.
func (w *StaleSweepWorker) Work(ctx context.Context, _ *river.Job[StaleSweepArgs]) error {
	if w == nil || w.detector == nil {
		return fmt.Errorf("stale sweep worker is not initialized")
	}
	staleIDs, err := w.detector.DetectStale(ctx)
	if err != nil {
		return fmt.Errorf("stale sweep: %w", err)
	}
	if len(staleIDs) > 0 {
		logger.Info("stale sweep completed",
			zap.Int("stale_batches", len(staleIDs)),
			zap.Strings("batch_ids", staleIDs),
		)
	}
	return nil
}

// CampaignTickWorker runs the periodic campaign window check.
type CampaignTickWorker struct {
	river.WorkerDefaults[CampaignTickArgs]
	ticker CampaignTicker
}

// NewCampaignTickWorker creates a CampaignTickWorker.
func NewCampaignTickWorker(ticker CampaignTicker) *CampaignTickWorker {
	return &CampaignTickWorker{ticker: ticker}
}

// Work ends the campaign if its promotion window has closed.
func (w *CampaignTickWorker) Work(ctx context.Context, _ *river.Job[CampaignTickArgs]) error {
	if w == nil || w.ticker == nil {
		return fmt.Errorf("campaign tick worker is not initialized")
	}
	if err := w.ticker.Tick(ctx); err != nil {
		return fmt.Errorf("campaign tick: %w", err)
	}
	return nil
}

// PeriodicJobs builds the periodic schedule handed to the River client.
func PeriodicJobs(staleSweepEvery, campaignTickEvery time.Duration) []*river.PeriodicJob {
	if staleSweepEvery <= 0 {
		staleSweepEvery = time.Hour
	}
	if campaignTickEvery <= 0 {
		campaignTickEvery = time.Minute
	}
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(staleSweepEvery),
			func() (river.JobArgs, *river.InsertOpts) {
				return StaleSweepArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			river.PeriodicInterval(campaignTickEvery),
			func() (river.JobArgs, *river.InsertOpts) {
				return CampaignTickArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}
