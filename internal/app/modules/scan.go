package modules

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"a11ysentinel.io/sentinel/internal/aiqueue"
	"a11ysentinel.io/sentinel/internal/api/handlers"
	"a11ysentinel.io/sentinel/internal/campaign"
	"a11ysentinel.io/sentinel/internal/jobs"
	"a11ysentinel.io/sentinel/internal/lifecycle"
	"a11ysentinel.io/sentinel/internal/orchestrator"
	"a11ysentinel.io/sentinel/internal/report"
)

// ScanModule wires the batch lifecycle, AI queue, reports and the scan
// workers. The lifecycle manager needs the River client to enqueue
// jobs, and the River client needs the workers registered up front, so
// construction is split: workers are created here with late-bound
// dependencies and BindRiver completes the wiring once the client
// exists.
type ScanModule struct {
	infra       *Infrastructure
	budget      *campaign.Controller
	queue       *aiqueue.Processor
	reports     *report.Generator
	pageWorker  *jobs.PageScanWorker
	staleWorker *jobs.StaleSweepWorker

	manager *lifecycle.Manager
	orch    *orchestrator.Orchestrator
}

// NewScanModule creates the scan module. BindRiver must be called after
// the River client is initialized.
func NewScanModule(infra *Infrastructure, budget *campaign.Controller) *ScanModule {
	cfg := infra.Config
	queue := aiqueue.NewProcessor(infra.EntClient, infra.Pool, budget, infra.Events, aiqueue.Config{
		ExportBatchSize:        cfg.AI.ExportBatchSize,
		EstimatedTokensPerScan: cfg.AI.EstimatedTokensPerScan,
	})
	return &ScanModule{
		infra:       infra,
		budget:      budget,
		queue:       queue,
		reports:     report.NewGenerator(infra.EntClient, cfg.Report),
		pageWorker:  jobs.NewPageScanWorker(infra.EntClient, infra.Scanner, nil),
		staleWorker: jobs.NewStaleSweepWorker(nil),
	}
}

// BindRiver builds the lifecycle manager and orchestrator on top of the
// initialized River client and closes the late-bound worker loops.
func (m *ScanModule) BindRiver(infra *Infrastructure) error {
	if infra == nil || infra.RiverClient == nil {
		return fmt.Errorf("scan module requires an initialized river client")
	}
	cfg := infra.Config

	m.manager = lifecycle.NewManager(
		infra.EntClient,
		infra.Pool,
		infra.RiverClient,
		m.budget,
		m.queue,
		infra.Events,
		lifecycle.Config{
			MaxBatchURLs:           cfg.Scan.MaxBatchURLs,
			StalenessWindow:        cfg.Scan.StalenessWindow,
			EstimatedTokensPerScan: cfg.AI.EstimatedTokensPerScan,
		},
	)
	m.queue.SetLifecycle(m.manager)
	m.pageWorker.SetLifecycle(m.manager)
	m.staleWorker.SetDetector(m.manager)

	m.orch = orchestrator.New(m.manager, m.budget, m.queue, m.reports, infra.AuditLogger, infra.Pools)
	return nil
}

func (m *ScanModule) Name() string { return "scan" }

func (m *ScanModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Orchestrator = m.orch
}

func (m *ScanModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil {
		return
	}
	river.AddWorker(workers, m.pageWorker)
	river.AddWorker(workers, m.staleWorker)
}

func (m *ScanModule) Shutdown(context.Context) error { return nil }
