package modules

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"a11ysentinel.io/sentinel/ent"
	"a11ysentinel.io/sentinel/internal/audit"
	"a11ysentinel.io/sentinel/internal/config"
	"a11ysentinel.io/sentinel/internal/domain"
	"a11ysentinel.io/sentinel/internal/infrastructure"
	"a11ysentinel.io/sentinel/internal/pkg/worker"
	"a11ysentinel.io/sentinel/internal/scanner"
)

// Infrastructure holds shared cross-cutting dependencies for all modules.
// It is a provider, not a Module.
type Infrastructure struct {
	Config      *config.Config
	DB          *infrastructure.DatabaseClients
	Pools       *worker.Pools
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	RiverClient *river.Client[pgx.Tx]
	AuditLogger *audit.Logger
	Events      *domain.EventDispatcher
	Scanner     scanner.PageScanner
}

// NewInfrastructure initializes DB/pools and shared services.
func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		ScanPoolSize:    cfg.Worker.ScanPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	auditLogger := audit.NewLogger(db.EntClient)
	events := domain.NewEventDispatcher()
	for _, eventType := range []domain.EventType{
		domain.EventBatchCreated, domain.EventBatchCompleted, domain.EventBatchFailed,
		domain.EventBatchCancelled, domain.EventBatchRetried, domain.EventBatchDeleted,
		domain.EventBatchStale,
		domain.EventCampaignPaused, domain.EventCampaignResumed,
		domain.EventCampaignDepleted, domain.EventCampaignEnded,
		domain.EventAiBatchExported, domain.EventAiResultsImported, domain.EventAiScanRetried,
	} {
		events.Register(eventType, auditLogger.HandleEvent)
	}

	return &Infrastructure{
		Config:      cfg,
		DB:          db,
		Pools:       pools,
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		RiverClient: db.RiverClient,
		AuditLogger: auditLogger,
		Events:      events,
		// TODO: swap in the axe-core scan engine once its sidecar lands.
		Scanner: scanner.NewMockScanner(),
	}, nil
}

// InitRiver initializes the River client on top of a prepared worker registry.
func (i *Infrastructure) InitRiver(workers *river.Workers, periodic []*river.PeriodicJob) error {
	if i == nil || i.DB == nil || i.Config == nil {
		return fmt.Errorf("infrastructure is not initialized")
	}
	if err := i.DB.InitRiverClient(workers, i.Config.River, periodic); err != nil {
		return fmt.Errorf("init river: %w", err)
	}
	i.RiverClient = i.DB.RiverClient
	return nil
}

// Close releases infra resources in reverse dependency order.
func (i *Infrastructure) Close() {
	if i == nil {
		return
	}
	if i.Pools != nil {
		i.Pools.Shutdown()
	}
	if i.DB != nil {
		i.DB.Close()
	}
}
