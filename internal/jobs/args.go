// Package jobs defines River Queue job types for async processing.
//
// Jobs carry only row ids (claim-check pattern); the authoritative state
// lives in the database and is re-fetched by the worker.
package jobs

import (
	"time"

	"github.com/riverqueue/river"
)

// PageScanArgs carries the scan id plus the per-enqueue job id. The
// job id makes each retry a distinct unique key: without it a retry
// would be deduplicated against the completed job of the previous
// attempt and silently skipped. The worker re-fetches the scan row and
// drops deliveries whose job id was superseded.
type PageScanArgs struct {
	ScanID string `json:"scan_id"`
	JobID  string `json:"job_id"`
}

// Kind returns the job kind identifier for page scans.
func (PageScanArgs) Kind() string { return "page_scan" }

// InsertOpts deduplicates by (scan id, job id) within the scan queue.
func (PageScanArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "scan_operations",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// StaleSweepArgs is the periodic sweep that marks abandoned batches STALE.
type StaleSweepArgs struct{}

// Kind returns the job kind identifier for the stale sweep.
func (StaleSweepArgs) Kind() string { return "stale_sweep" }

// InsertOpts ensures at most one sweep is enqueued per hour.
func (StaleSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CampaignTickArgs is the periodic check that ends the campaign once its
// promotion window closes.
type CampaignTickArgs struct{}

// Kind returns the job kind identifier for the campaign tick.
func (CampaignTickArgs) Kind() string { return "campaign_tick" }

// InsertOpts ensures at most one tick is enqueued per minute.
func (CampaignTickArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}
