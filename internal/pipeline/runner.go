package pipeline

import (
	"context"
	"sync"

	"assetgen/internal/infra"
)

// Runner dispatches background generation tasks, one goroutine per job with
// the job id as correlation key. There is no queue, no backpressure, and no
// cancellation once a task starts; tasks are detached from the originating
// request's lifetime.
type Runner struct {
	base   context.Context
	logger infra.Logger
	wg     sync.WaitGroup
}

// NewRunner creates a runner whose tasks inherit the given base context,
// typically the process lifetime context.
func NewRunner(base context.Context, logger infra.Logger) *Runner {
	if base == nil {
		base = context.Background()
	}
	return &Runner{base: base, logger: logger}
}

// Dispatch fires fn on its own goroutine. A panic in the task is logged and
// swallowed so one job cannot take the process down.
func (r *Runner) Dispatch(jobID string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error().Str("job_id", jobID).Interface("panic", rec).Msg("runner: background task panicked")
			}
		}()
		fn(r.base)
	}()
}

// Wait blocks until all in-flight tasks finish or ctx expires.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
