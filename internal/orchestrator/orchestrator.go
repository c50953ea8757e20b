// Package orchestrator composes the batch lifecycle, campaign
// admission, AI queue, and report components behind one facade for the
// API layer. Every mutating operation emits a fire-and-forget audit
// record; auditing never blocks or fails the operation itself.
package orchestrator

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/aiqueue"
	"a11ysentinel.io/sentinel/internal/audit"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/lifecycle"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
	"a11ysentinel.io/sentinel/internal/pkg/worker"
	"a11ysentinel.io/sentinel/internal/report"
)

// Orchestrator is the application facade over the scanning core.
type Orchestrator struct {
	lifecycle *lifecycle.Manager
	campaign  *campaign.Controller
	queue     *aiqueue.Processor
	reports   *report.Generator
	audit     *audit.Logger
	pools     *worker.Pools
}

// New wires the facade. The audit logger is also registered on the
// event dispatcher by the caller so domain events land in the trail.
func New(
	lc *lifecycle.Manager,
	cc *campaign.Controller,
	queue *aiqueue.Processor,
	reports *report.Generator,
	auditLogger *audit.Logger,
	pools *worker.Pools,
) *Orchestrator {
	return &Orchestrator{
		lifecycle: lc,
		campaign:  cc,
		queue:     queue,
		reports:   reports,
		audit:     auditLogger,
		pools:     pools,
	}
}

// auditAsync records an audit entry on the general worker pool so the
// caller's request path never waits on the audit sink.
func (o *Orchestrator) auditAsync(action, resourceType, resourceID, actor string, details map[string]interface{}) {
	if o.audit == nil || o.pools == nil {
		return
	}
	err := o.pools.SubmitDetached("general", func(ctx context.Context) {
		auditCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := o.audit.LogAction(auditCtx, action, resourceType, resourceID, actor, details); err != nil {
			logger.Warn("audit write failed",
				zap.String("action", action),
				zap.String("resource_id", resourceID),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Warn("audit task rejected", zap.String("action", action), zap.Error(err))
	}
}

// CreateBatch creates a batch of page scans.
func (o *Orchestrator) CreateBatch(ctx context.Context, in lifecycle.CreateInput) (*lifecycle.CreateResult, error) {
	result, err := o.lifecycle.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	o.auditAsync("batch.create", "batch", result.BatchID, in.CreatedBy, map[string]interface{}{
		"total_urls": len(in.URLs),
		"ai_enabled": in.AiEnabled,
		"ai_refused": result.AiRefused,
		"wcag_level": string(in.WCAGLevel),
		"homepage":   in.HomepageURL,
	})
	return result, nil
}

// CreateScan creates a standalone single-page scan.
func (o *Orchestrator) CreateScan(ctx context.Context, in lifecycle.ScanInput) (*lifecycle.ScanResult, error) {
	result, err := o.lifecycle.CreateScan(ctx, in)
	if err != nil {
		return nil, err
	}
	o.auditAsync("scan.create", "scan", result.ScanID, in.CreatedBy, map[string]interface{}{
		"url":         in.URL,
		"ai_enabled":  in.AiEnabled,
		"ai_admitted": result.AiAdmitted,
	})
	return result, nil
}

// GetBatchDetail returns one batch with its scans.
func (o *Orchestrator) GetBatchDetail(ctx context.Context, batchID string) (*ent.Batch, []*ent.Scan, error) {
	return o.lifecycle.Detail(ctx, batchID)
}

// ListBatches returns batches matching the filter plus the total count.
func (o *Orchestrator) ListBatches(ctx context.Context, f lifecycle.ListFilter) ([]*ent.Batch, int, error) {
	return o.lifecycle.List(ctx, f)
}

// GetBatchMetrics returns the aggregate progress view for one batch.
func (o *Orchestrator) GetBatchMetrics(ctx context.Context, batchID string) (*lifecycle.BatchMetrics, error) {
	return o.lifecycle.Metrics(ctx, batchID)
}

// CancelBatch cancels all pending and running scans of a batch.
func (o *Orchestrator) CancelBatch(ctx context.Context, batchID, actor string) (*lifecycle.CancelResult, error) {
	result, err := o.lifecycle.Cancel(ctx, batchID, actor)
	if err != nil {
		return nil, err
	}
	o.auditAsync("batch.cancel", "batch", batchID, actor, map[string]interface{}{
		"cancelled_count": result.CancelledCount,
		"preserved_count": result.PreservedCount,
	})
	return result, nil
}

// RetryFailedScans re-queues all FAILED scans of a batch.
func (o *Orchestrator) RetryFailedScans(ctx context.Context, batchID, actor string) (*lifecycle.RetryResult, error) {
	result, err := o.lifecycle.RetryFailed(ctx, batchID, actor)
	if err != nil {
		return nil, err
	}
	o.auditAsync("batch.retry", "batch", batchID, actor, map[string]interface{}{
		"retried_count": result.RetriedCount,
	})
	return result, nil
}

// DeleteBatch permanently removes a batch and everything it owns.
// Privilege is enforced by the API layer.
func (o *Orchestrator) DeleteBatch(ctx context.Context, batchID, actor string) (*lifecycle.DeleteResult, error) {
	result, err := o.lifecycle.Delete(ctx, batchID, actor)
	if err != nil {
		return nil, err
	}
	o.auditAsync("batch.delete", "batch", batchID, actor, map[string]interface{}{
		"scans_deleted":         result.ScansDeleted,
		"queue_entries_deleted": result.QueueEntriesDeleted,
		"reservations_freed":    result.ReservationsFreed,
	})
	return result, nil
}

// ExportBatch renders a batch report in the requested format.
func (o *Orchestrator) ExportBatch(ctx context.Context, batchID string, format report.Format, actor string) (*report.Export, error) {
	export, err := o.reports.ExportBatch(ctx, batchID, format)
	if err != nil {
		return nil, err
	}
	o.auditAsync("batch.export", "batch", batchID, actor, map[string]interface{}{
		"format": string(format),
	})
	return export, nil
}

// GetCampaignStatus returns the privileged campaign ledger view.
func (o *Orchestrator) GetCampaignStatus(ctx context.Context) (*campaign.Status, error) {
	return o.campaign.GetStatus(ctx)
}

// GetCampaignMetrics returns the percentage-only public view.
func (o *Orchestrator) GetCampaignMetrics(ctx context.Context) (*domain.CampaignMetrics, error) {
	return o.campaign.PublicMetrics(ctx)
}

// PauseCampaign stops new AI admissions.
func (o *Orchestrator) PauseCampaign(ctx context.Context, actor string) error {
	if err := o.campaign.Pause(ctx, actor); err != nil {
		return err
	}
	o.auditAsync("campaign.pause", "campaign", campaign.DefaultCampaignID, actor, nil)
	return nil
}

// ResumeCampaign re-enables AI admissions.
func (o *Orchestrator) ResumeCampaign(ctx context.Context, actor string) error {
	if err := o.campaign.Resume(ctx, actor); err != nil {
		return err
	}
	o.auditAsync("campaign.resume", "campaign", campaign.DefaultCampaignID, actor, nil)
	return nil
}

// ListAiQueue returns AI queue entries with cursor pagination.
func (o *Orchestrator) ListAiQueue(ctx context.Context, f aiqueue.ListFilter) ([]*ent.AiQueueEntry, error) {
	return o.queue.List(ctx, f)
}

// GetQueueStats summarizes the AI queue by state.
func (o *Orchestrator) GetQueueStats(ctx context.Context) (*aiqueue.Stats, error) {
	return o.queue.GetStats(ctx)
}

// ExportPendingAiScans claims pending queue entries and returns them as
// CSV rows for offline processing.
func (o *Orchestrator) ExportPendingAiScans(ctx context.Context, limit int, actor string) ([]aiqueue.ExportRow, error) {
	rows, err := o.queue.ExportPending(ctx, limit, actor)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		o.auditAsync("ai_queue.export", "ai_queue", "ai_queue", actor, map[string]interface{}{
			"claimed": len(rows),
		})
	}
	return rows, nil
}

// ImportAiResults processes an uploaded CSV of offline AI results.
func (o *Orchestrator) ImportAiResults(ctx context.Context, r io.Reader, actor string) (*aiqueue.ImportSummary, error) {
	summary, err := o.queue.ImportResults(ctx, r, actor)
	if err != nil {
		return nil, err
	}
	o.auditAsync("ai_queue.import", "ai_queue", "ai_queue", actor, map[string]interface{}{
		"processed":       summary.Processed,
		"failed":          summary.Failed,
		"tokens_deducted": summary.TokensDeducted,
	})
	return summary, nil
}

// RetryAiScan resets one FAILED AI queue entry to PENDING.
func (o *Orchestrator) RetryAiScan(ctx context.Context, scanID, actor string) error {
	if err := o.queue.RetryScan(ctx, scanID, actor); err != nil {
		return err
	}
	o.auditAsync("ai_queue.retry", "ai_queue", scanID, actor, nil)
	return nil
}
