package realtysdk_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasupateljsk089-byte/Real-Estate/pkg/realtysdk"
)

func TestEnsureFreshCollapsesConcurrentCallers(t *testing.T) {
	var calls atomic.Int32
	rc := realtysdk.NewRefreshCoordinator(func(ctx context.Context) error {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return nil
	})

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = rc.EnsureFresh(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent callers must share one refresh")
	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestEnsureFreshSharesFailure(t *testing.T) {
	var calls atomic.Int32
	rc := realtysdk.NewRefreshCoordinator(func(ctx context.Context) error {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond)
		return realtysdk.ErrSessionExpired
	})

	const workers = 10
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = rc.EnsureFresh(context.Background())
		}(i)
	}
	wg.Wait()

	// One doomed refresh answers for everyone.
	assert.Equal(t, int32(1), calls.Load())
	for _, err := range errs {
		assert.ErrorIs(t, err, realtysdk.ErrSessionExpired)
	}
}

func TestEnsureFreshSequentialCallsRefreshAgain(t *testing.T) {
	var calls atomic.Int32
	rc := realtysdk.NewRefreshCoordinator(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, rc.EnsureFresh(context.Background()))
	require.NoError(t, rc.EnsureFresh(context.Background()))
	assert.Equal(t, int32(2), calls.Load(), "flights must not be cached after completion")
}

func TestEnsureFreshHonorsCallerCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	rc := realtysdk.NewRefreshCoordinator(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rc.EnsureFresh(ctx) }()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("EnsureFresh did not return after cancellation")
	}
	close(release)
}

func TestEnsureFreshAppliesTimeout(t *testing.T) {
	rc := realtysdk.NewRefreshCoordinator(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "refresh context must carry a deadline")
		assert.LessOrEqual(t, time.Until(deadline), 100*time.Millisecond)
		return nil
	})
	rc.Timeout = 100 * time.Millisecond

	require.NoError(t, rc.EnsureFresh(context.Background()))
}
