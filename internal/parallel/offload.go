// Package parallel provides the single host-offloading primitive the
// core's concurrency model needs (spec.md §5): running one cancellable
// task on its own goroutine. The core itself is single-threaded; this is
// strictly a caller-side convenience for running it off the calling
// goroutine.
package parallel

import (
	"context"

	"systemz/pkg/logic"
)

// Offload runs fn on its own goroutine and returns its result, unless ctx
// is cancelled first, in which case it returns the zero value of T and a
// *logic.CancelledError — the same cooperative-cancellation contract the
// search's progress sink uses (spec.md §5/§7). fn itself is responsible
// for reacting to ctx; Offload does not stop fn's goroutine, only stops
// waiting on it.
func Offload[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)

	go func() {
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, &logic.CancelledError{}
	}
}
