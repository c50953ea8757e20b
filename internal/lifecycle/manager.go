// Package lifecycle implements the batch scan lifecycle manager.
//
// It owns the Batch/Scan state machines: creation, progress aggregation,
// cancellation, retry, staleness detection. Counter updates ride in a
// single pgx transaction so concurrent sibling completions never lose
// increments.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/ent/batch"
	"a11ysentinel.io/sentinel/ent/scan"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/jobs"
	apperrors "a11ysentinel.io/sentinel/internal/pkg/errors"
	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// BudgetController is the slice of the campaign admission controller the
// lifecycle manager needs. Admission refusal is not an error: refused
// scans proceed without AI.
type BudgetController interface {
	Admit(ctx context.Context, scanID string, estimatedTokens int64) (admitted bool, reservationID string, err error)
	// ActiveReservation returns the unsettled reservation held by a scan, if any.
	ActiveReservation(ctx context.Context, scanID string) (reservationID string, ok bool, err error)
	// ReleaseForScans releases unsettled reservations held by the given scans
	// and returns the number of reservations released.
	ReleaseForScans(ctx context.Context, scanIDs []string) (int, error)
}

// QueueController is the slice of the AI queue processor the lifecycle
// manager needs.
type QueueController interface {
	// Enqueue creates a PENDING AiQueueEntry for an admitted scan.
	Enqueue(ctx context.Context, scanID, reservationID string) error
	// ReopenScan returns a scan's FAILED entry to PENDING under the
	// given reservation.
	ReopenScan(ctx context.Context, scanID, reservationID string) (bool, error)
	// DeleteForScans removes queue entries owned by the given scans.
	DeleteForScans(ctx context.Context, scanIDs []string) (int, error)
}

// Config carries the lifecycle policy knobs.
type Config struct {
	MaxBatchURLs           int
	StalenessWindow        time.Duration
	EstimatedTokensPerScan int64
}

// Manager owns the Batch and Scan state machines.
type Manager struct {
	entClient   *ent.Client
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
	budget      BudgetController
	queue       QueueController
	events      *domain.EventDispatcher
	cfg         Config
}

// NewManager creates a lifecycle Manager with all dependencies (manual DI).
func NewManager(
	entClient *ent.Client,
	pool *pgxpool.Pool,
	riverClient *river.Client[pgx.Tx],
	budget BudgetController,
	queue QueueController,
	events *domain.EventDispatcher,
	cfg Config,
) *Manager {
	if cfg.MaxBatchURLs <= 0 {
		cfg.MaxBatchURLs = 50
	}
	if cfg.StalenessWindow <= 0 {
		cfg.StalenessWindow = 24 * time.Hour
	}
	return &Manager{
		entClient:   entClient,
		pool:        pool,
		riverClient: riverClient,
		budget:      budget,
		queue:       queue,
		events:      events,
		cfg:         cfg,
	}
}

// CreateInput is the request to create one batch.
type CreateInput struct {
	HomepageURL string
	URLs        []string
	WCAGLevel   domain.WCAGLevel
	AiEnabled   bool
	CreatedBy   string
}

// ScanRef pairs a submitted URL with its created scan id.
type ScanRef struct {
	ScanID string `json:"scan_id"`
	URL    string `json:"url"`
}

// CreateResult reports what Create produced.
type CreateResult struct {
	BatchID    string    `json:"batch_id"`
	Scans      []ScanRef `json:"scans"`
	AiAdmitted int       `json:"ai_admitted"`
	AiRefused  int       `json:"ai_refused"`
}

// Create creates one Batch plus one PENDING Scan per URL and enqueues a
// page_scan job for each, all in a single transaction. AI admission runs
// after commit: refused scans are downgraded to non-AI scans, never a
// creation failure.
func (m *Manager) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if err := m.validateCreate(in); err != nil {
		return nil, err
	}

	batchID := generateID("batch")
	scans := make([]ScanRef, 0, len(in.URLs))

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin batch create tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO batches (
			id, homepage_url, wcag_level, status, total_urls,
			completed_count, failed_count,
			total_issues, critical_issues, serious_issues, moderate_issues, minor_issues, passed_checks,
			ai_enabled, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, 'PENDING', $4, 0, 0, 0, 0, 0, 0, 0, 0, $5, $6, now(), now())`,
		batchID, in.HomepageURL, string(in.WCAGLevel), len(in.URLs), in.AiEnabled, in.CreatedBy,
	); err != nil {
		return nil, fmt.Errorf("insert batch %s: %w", batchID, err)
	}

	jobParams := make([]river.InsertManyParams, 0, len(in.URLs))
	for _, url := range in.URLs {
		scanID := generateID("scan")
		jobID := generateID("job")
		if _, err := tx.Exec(ctx, `
			INSERT INTO scans (id, batch_id, url, status, ai_enabled, job_id, created_at, updated_at)
			VALUES ($1, $2, $3, 'PENDING', $4, $5, now(), now())`,
			scanID, batchID, url, in.AiEnabled, jobID,
		); err != nil {
			return nil, fmt.Errorf("insert scan for %s: %w", url, err)
		}
		scans = append(scans, ScanRef{ScanID: scanID, URL: url})
		jobParams = append(jobParams, river.InsertManyParams{Args: jobs.PageScanArgs{ScanID: scanID, JobID: jobID}})
	}

	if _, err := m.riverClient.InsertManyTx(ctx, tx, jobParams); err != nil {
		return nil, fmt.Errorf("enqueue page_scan jobs for batch %s: %w", batchID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit batch create tx: %w", err)
	}

	result := &CreateResult{BatchID: batchID, Scans: scans}

	if in.AiEnabled {
		for _, ref := range scans {
			admitted, reservationID, err := m.budget.Admit(ctx, ref.ScanID, m.cfg.EstimatedTokensPerScan)
			if err != nil {
				logger.Error("AI admission check failed, scan proceeds without AI",
					zap.String("scan_id", ref.ScanID),
					zap.Error(err),
				)
				admitted = false
			}
			if !admitted {
				result.AiRefused++
				if _, err := m.entClient.Scan.UpdateOneID(ref.ScanID).SetAiEnabled(false).Save(ctx); err != nil {
					logger.Error("failed to downgrade refused scan to non-AI",
						zap.String("scan_id", ref.ScanID),
						zap.Error(err),
					)
				}
				continue
			}
			if err := m.queue.Enqueue(ctx, ref.ScanID, reservationID); err != nil {
				return nil, fmt.Errorf("enqueue ai entry for scan %s: %w", ref.ScanID, err)
			}
			result.AiAdmitted++
		}
	}

	m.dispatch(ctx, domain.EventBatchCreated, batchID, in.CreatedBy, domain.BatchEventPayload{
		BatchID:     batchID,
		HomepageURL: in.HomepageURL,
		TotalURLs:   len(in.URLs),
	})

	logger.Info("Batch created",
		zap.String("batch_id", batchID),
		zap.Int("total_urls", len(in.URLs)),
		zap.Int("ai_admitted", result.AiAdmitted),
	)
	return result, nil
}

// ScanInput is the request to create one standalone scan.
type ScanInput struct {
	URL       string
	AiEnabled bool
	CreatedBy string
}

// ScanResult reports what CreateScan produced.
type ScanResult struct {
	ScanID     string `json:"scan_id"`
	URL        string `json:"url"`
	AiAdmitted bool   `json:"ai_admitted"`
}

// CreateScan creates one standalone Scan (no parent batch) and enqueues
// its page_scan job. Standalone scans are audited at WCAG AA.
func (m *Manager) CreateScan(ctx context.Context, in ScanInput) (*ScanResult, error) {
	if strings.TrimSpace(in.URL) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "url is required")
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "created_by is required")
	}

	scanID := generateID("scan")
	jobID := generateID("job")

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin scan create tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO scans (id, url, status, ai_enabled, job_id, created_at, updated_at)
		VALUES ($1, $2, 'PENDING', $3, $4, now(), now())`,
		scanID, in.URL, in.AiEnabled, jobID,
	); err != nil {
		return nil, fmt.Errorf("insert standalone scan for %s: %w", in.URL, err)
	}
	if _, err := m.riverClient.InsertTx(ctx, tx, jobs.PageScanArgs{ScanID: scanID, JobID: jobID}, nil); err != nil {
		return nil, fmt.Errorf("enqueue page_scan job for scan %s: %w", scanID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit scan create tx: %w", err)
	}

	result := &ScanResult{ScanID: scanID, URL: in.URL}

	if in.AiEnabled {
		admitted, reservationID, err := m.budget.Admit(ctx, scanID, m.cfg.EstimatedTokensPerScan)
		if err != nil {
			logger.Error("AI admission check failed, scan proceeds without AI",
				zap.String("scan_id", scanID),
				zap.Error(err),
			)
			admitted = false
		}
		if admitted {
			if err := m.queue.Enqueue(ctx, scanID, reservationID); err != nil {
				return nil, fmt.Errorf("enqueue ai entry for scan %s: %w", scanID, err)
			}
			result.AiAdmitted = true
		} else if _, err := m.entClient.Scan.UpdateOneID(scanID).SetAiEnabled(false).Save(ctx); err != nil {
			logger.Error("failed to downgrade refused scan to non-AI",
				zap.String("scan_id", scanID),
				zap.Error(err),
			)
		}
	}

	logger.Info("Standalone scan created",
		zap.String("scan_id", scanID),
		zap.String("url", in.URL),
		zap.Bool("ai_admitted", result.AiAdmitted),
	)
	return result, nil
}

func (m *Manager) validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.HomepageURL) == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "homepage_url is required")
	}
	if strings.TrimSpace(in.CreatedBy) == "" {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "created_by is required")
	}
	if !in.WCAGLevel.Valid() {
		return apperrors.BadRequest(apperrors.CodeValidationFailed, "wcag_level must be one of A, AA, AAA")
	}
	if len(in.URLs) < 1 {
		return apperrors.BadRequest(apperrors.CodeEmptyURLSet, "at least one url is required")
	}
	if len(in.URLs) > m.cfg.MaxBatchURLs {
		return apperrors.BadRequest(apperrors.CodeTooManyURLs,
			fmt.Sprintf("url count %d exceeds limit %d", len(in.URLs), m.cfg.MaxBatchURLs)).
			WithParams(map[string]interface{}{"count": len(in.URLs), "limit": m.cfg.MaxBatchURLs})
	}
	for _, u := range in.URLs {
		if strings.TrimSpace(u) == "" {
			return apperrors.BadRequest(apperrors.CodeValidationFailed, "urls must not contain empty entries")
		}
	}
	return nil
}

// Detail returns one batch with its child scans.
func (m *Manager) Detail(ctx context.Context, batchID string) (*ent.Batch, []*ent.Scan, error) {
	b, err := m.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, apperrors.ErrBatchNotFoundf(batchID)
		}
		return nil, nil, fmt.Errorf("fetch batch %s: %w", batchID, err)
	}
	scans, err := m.entClient.Scan.Query().
		Where(scan.BatchIDEQ(batchID)).
		Order(ent.Asc(scan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch scans for batch %s: %w", batchID, err)
	}
	return b, scans, nil
}

// ListFilter narrows List results.
type ListFilter struct {
	Status    string
	CreatedBy string
	Limit     int
	Offset    int
}

// List returns batches matching the filter, newest first, plus the total count.
func (m *Manager) List(ctx context.Context, f ListFilter) ([]*ent.Batch, int, error) {
	q := m.entClient.Batch.Query()
	if f.Status != "" {
		q = q.Where(batch.StatusEQ(batch.Status(f.Status)))
	}
	if f.CreatedBy != "" {
		q = q.Where(batch.CreatedByEQ(f.CreatedBy))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count batches: %w", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, err := q.
		Order(ent.Desc(batch.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list batches: %w", err)
	}
	return items, total, nil
}

// BatchMetrics is the aggregate progress view for one batch.
type BatchMetrics struct {
	BatchID         string             `json:"batch_id"`
	Status          domain.BatchStatus `json:"status"`
	TotalURLs       int                `json:"total_urls"`
	CompletedCount  int                `json:"completed_count"`
	FailedCount     int                `json:"failed_count"`
	ProgressPercent float64            `json:"progress_percent"`
	Issues          domain.IssueCounts `json:"issues"`
	AiEnabledScans  int                `json:"ai_enabled_scans"`
}

// Metrics returns the aggregate progress view for one batch.
func (m *Manager) Metrics(ctx context.Context, batchID string) (*BatchMetrics, error) {
	b, err := m.entClient.Batch.Get(ctx, batchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrBatchNotFoundf(batchID)
		}
		return nil, fmt.Errorf("fetch batch %s: %w", batchID, err)
	}

	aiScans, err := m.entClient.Scan.Query().
		Where(scan.BatchIDEQ(batchID), scan.AiEnabledEQ(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ai scans for batch %s: %w", batchID, err)
	}

	progress := 0.0
	if b.TotalUrls > 0 {
		progress = float64(b.CompletedCount+b.FailedCount) / float64(b.TotalUrls) * 100
	}
	return &BatchMetrics{
		BatchID:         b.ID,
		Status:          domain.BatchStatus(b.Status),
		TotalURLs:       b.TotalUrls,
		CompletedCount:  b.CompletedCount,
		FailedCount:     b.FailedCount,
		ProgressPercent: progress,
		Issues: domain.IssueCounts{
			Total:        b.TotalIssues,
			Critical:     b.CriticalIssues,
			Serious:      b.SeriousIssues,
			Moderate:     b.ModerateIssues,
			Minor:        b.MinorIssues,
			PassedChecks: b.PassedChecks,
		},
		AiEnabledScans: aiScans,
	}, nil
}

func (m *Manager) dispatch(ctx context.Context, eventType domain.EventType, aggregateID, actor string, payload interface{ ToJSON() ([]byte, error) }) {
	if m.events == nil {
		return
	}
	data, err := payload.ToJSON()
	if err != nil {
		logger.Error("failed to marshal event payload", zap.Error(err))
		return
	}
	_ = m.events.Dispatch(ctx, &domain.DomainEvent{
		EventID:       generateID("evt"),
		EventType:     eventType,
		AggregateType: "batch",
		AggregateID:   aggregateID,
		Payload:       data,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})
}

func generateID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.New().String()
	}
	return prefix + "-" + id.String()
}
