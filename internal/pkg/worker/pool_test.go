package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T, general, scan int) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: general,
		ScanPoolSize:    scan,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	return pools
}

func TestNewPools(t *testing.T) {
	pools := newTestPools(t, 10, 5)
	defer pools.Shutdown()

	if pools.General == nil || pools.Scan == nil {
		t.Fatal("NewPools() returned nil pool")
	}
}

func TestPool_Submit(t *testing.T) {
	pools := newTestPools(t, 10, 5)
	defer pools.Shutdown()

	var ran atomic.Bool
	done := make(chan struct{})
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		ran.Store(true)
		close(done)
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	<-done
	if !ran.Load() {
		t.Fatal("task did not run")
	}
}

func TestPool_Submit_CancelledContext(t *testing.T) {
	pools := newTestPools(t, 10, 5)
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task ran despite cancelled context")
	})
	if err != context.Canceled {
		t.Fatalf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestPools_SubmitDetached(t *testing.T) {
	tests := []struct {
		name     string
		poolName string
	}{
		{name: "general pool", poolName: "general"},
		{name: "scan pool", poolName: "scan"},
		{name: "unknown name falls back to general", poolName: "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pools := newTestPools(t, 4, 2)

			done := make(chan struct{})
			err := pools.SubmitDetached(tt.poolName, func(ctx context.Context) {
				close(done)
			})
			if err != nil {
				t.Fatalf("SubmitDetached(%q) error = %v", tt.poolName, err)
			}

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("SubmitDetached(%q) task never ran", tt.poolName)
			}
			pools.Shutdown()
		})
	}
}

func TestPools_Metrics(t *testing.T) {
	pools := newTestPools(t, 10, 5)
	defer pools.Shutdown()

	metrics := pools.Metrics()
	general, ok := metrics["general"].(map[string]int)
	if !ok {
		t.Fatal("missing general metrics")
	}
	if general["cap"] != 10 {
		t.Fatalf("general cap = %d, want 10", general["cap"])
	}
	scan, ok := metrics["scan"].(map[string]int)
	if !ok {
		t.Fatal("missing scan metrics")
	}
	if scan["cap"] != 5 {
		t.Fatalf("scan cap = %d, want 5", scan["cap"])
	}
}

func TestPools_Shutdown_NoLeakedWorkers(t *testing.T) {
	defer goleak.VerifyNone(t)

	pools := newTestPools(t, 4, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		_ = pools.General.Submit(context.Background(), func(ctx context.Context) {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		})
	}
	wg.Wait()

	pools.Shutdown()
}

func TestPool_Submit_ContextCancelledWhileQueued(t *testing.T) {
	pools := newTestPools(t, 1, 1)
	defer pools.Shutdown()

	// Occupy the single worker so the next submit queues behind it.
	release := make(chan struct{})
	started := make(chan struct{})
	_ = pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	submitted := make(chan struct{})
	go func() {
		defer close(submitted)
		_ = pools.General.Submit(ctx, func(ctx context.Context) {})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	close(release)
	<-submitted
}
