// Package worker routes all background goroutines through bounded ants
// pools. Nothing in Sentinel spawns a naked goroutine; tasks carry a
// context and stop at shutdown.
package worker

import (
	"context"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

const releaseTimeout = 30 * time.Second

// Task is a context-aware unit of background work.
type Task func(ctx context.Context)

// Pool wraps one ants pool.
type Pool struct {
	name string
	pool *ants.Pool
}

// Pools groups the two Sentinel pools: General for short audit and
// bookkeeping tasks, Scan for page-scan followup work.
type Pools struct {
	General *Pool
	Scan    *Pool

	// detachedCtx outlives any single request and is cancelled only at
	// shutdown.
	detachedCtx    context.Context
	detachedCancel context.CancelFunc
}

// PoolConfig sizes the pools.
type PoolConfig struct {
	GeneralPoolSize int
	ScanPoolSize    int
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{GeneralPoolSize: 100, ScanPoolSize: 25}
}

func newPool(name string, size int, idleExpiry time.Duration) (*Pool, error) {
	p, err := ants.NewPool(size,
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(idleExpiry),
		ants.WithPanicHandler(func(r interface{}) {
			logger.Error("Worker panic recovered",
				zap.String("pool", name),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{name: name, pool: p}, nil
}

// NewPools builds the pool set. The given context bounds the lifetime
// of detached tasks.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	detachedCtx, cancel := context.WithCancel(ctx)

	general, err := newPool("general", cfg.GeneralPoolSize, 10*time.Second)
	if err != nil {
		cancel()
		return nil, err
	}
	scan, err := newPool("scan", cfg.ScanPoolSize, 30*time.Second)
	if err != nil {
		general.pool.Release()
		cancel()
		return nil, err
	}

	return &Pools{
		General:        general,
		Scan:           scan,
		detachedCtx:    detachedCtx,
		detachedCancel: cancel,
	}, nil
}

// Submit schedules a task bound to the caller's context. A context
// already cancelled fails fast; one cancelled while queued makes the
// task a no-op.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.pool.Submit(func() {
		if ctx.Err() != nil {
			logger.Debug("Task skipped: context cancelled",
				zap.String("pool", p.name),
				zap.Error(ctx.Err()),
			)
			return
		}
		task(ctx)
	})
}

// SubmitDetached schedules work on the named pool under the service
// lifetime context, for tasks that must survive the request that
// spawned them. Unknown pool names fall back to the general pool.
func (p *Pools) SubmitDetached(poolName string, task Task) error {
	pool := p.General
	if poolName == "scan" {
		pool = p.Scan
	}

	return pool.pool.Submit(func() {
		if p.detachedCtx.Err() != nil {
			logger.Debug("Detached task skipped: service shutting down",
				zap.String("pool", pool.name),
			)
			return
		}
		task(p.detachedCtx)
	})
}

// Shutdown cancels detached work and waits for running tasks, bounded
// by releaseTimeout per pool.
func (p *Pools) Shutdown() {
	p.detachedCancel()

	for _, pool := range []*Pool{p.General, p.Scan} {
		if err := pool.pool.ReleaseTimeout(releaseTimeout); err != nil {
			logger.Warn("Pool shutdown timed out",
				zap.String("pool", pool.name),
				zap.Error(err),
			)
		}
	}
}

// Metrics reports per-pool occupancy.
func (p *Pools) Metrics() map[string]interface{} {
	report := func(pool *Pool) map[string]int {
		return map[string]int{
			"running": pool.pool.Running(),
			"free":    pool.pool.Free(),
			"cap":     pool.pool.Cap(),
		}
	}
	return map[string]interface{}{
		"general": report(p.General),
		"scan":    report(p.Scan),
	}
}
