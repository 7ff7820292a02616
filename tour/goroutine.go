package tour

import (
	"context"

	"go.uber.org/zap"
)

// demoFireAndForget starts one task and returns without waiting for it. The
// task captures nothing mutable, so it needs no locking beyond the output
// writer's.
//
// With an executor the task is queued there and the executor's owner decides
// whether to drain it before exit. Without one it is a bare goroutine, and the
// process may well exit before it prints.
func (r *Runner) demoFireAndForget(ctx context.Context) error {
	if r.exec == nil {
		go r.println("Thread running")
		return nil
	}

	task := func(context.Context) error {
		r.println("Thread running")
		return nil
	}

	name := "thread-" + r.runID
	if err := r.exec.Submit(ctx, name, task); err != nil {
		return err
	}
	r.log.Debug("background task submitted", zap.String("task", name))
	return nil
}
