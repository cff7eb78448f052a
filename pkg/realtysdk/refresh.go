package realtysdk

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultRefreshTimeout bounds how long a refresh call may take. A
// hung refresh would otherwise stall every request waiting on it.
const DefaultRefreshTimeout = 10 * time.Second

// RefreshCoordinator collapses concurrent token refreshes into a
// single HTTP call. However many requests notice an expired access
// token at once, only one refresh goes over the wire; all waiters
// share that call's outcome, success or failure alike. Sharing
// failures matters as much as sharing successes: when the refresh
// token is dead, one failed call answers for everyone instead of a
// stampede of doomed retries.
type RefreshCoordinator struct {
	// Timeout bounds each refresh call. Zero means DefaultRefreshTimeout.
	Timeout time.Duration

	group   singleflight.Group
	refresh func(context.Context) error
}

// NewRefreshCoordinator wraps a refresh function. The Client wires in
// its own; tests and embedders may supply anything with the same shape.
func NewRefreshCoordinator(refresh func(context.Context) error) *RefreshCoordinator {
	return &RefreshCoordinator{refresh: refresh}
}

// EnsureFresh guarantees a refresh attempt has completed after the
// moment of the call. Concurrent callers coalesce onto one in-flight
// attempt and all receive its result.
func (rc *RefreshCoordinator) EnsureFresh(ctx context.Context) error {
	result := rc.group.DoChan("refresh", func() (any, error) {
		timeout := rc.Timeout
		if timeout == 0 {
			timeout = DefaultRefreshTimeout
		}

		// The flight is shared, so it must not die with the first
		// caller's context. It gets its own deadline instead.
		refreshCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return nil, rc.refresh(refreshCtx)
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		// The caller gave up; the shared flight keeps running for the
		// others.
		return ctx.Err()
	}
}
