// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/helios-keeper/internal/logger"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrRuntimeClosed is returned by Do and Go after Shutdown was called.
	ErrRuntimeClosed = errors.New("runtime is shut down")

	// ErrTaskPanicked is returned by Do when the task panics.
	ErrTaskPanicked = errors.New("task panicked")
)

// Runtime executes blocking tasks with bounded concurrency and hosts
// long-lived workers. The zero value is not usable; use NewRuntime.
type Runtime struct {
	size   int64
	logger *logger.Logger

	once   sync.Once
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewRuntime returns a Runtime allowing at most size concurrent Do tasks.
// Nothing is allocated until the first Do or Go call.
func NewRuntime(size int, log *logger.Logger) *Runtime {
	if size < 1 {
		size = 1
	}
	return &Runtime{size: int64(size), logger: log}
}

func (r *Runtime) init() {
	r.once.Do(func() {
		r.sem = semaphore.NewWeighted(r.size)
		r.ctx, r.cancel = context.WithCancel(context.Background())
		r.logger.Debug().Int64("size", r.size).Msg("task runtime initialised")
	})
}

func (r *Runtime) enter() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	r.wg.Add(1)
	return true
}

// bind returns a context cancelled when either ctx or the runtime is done.
func (r *Runtime) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	taskCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(r.ctx, cancel)
	return taskCtx, func() {
		stop()
		cancel()
	}
}

type taskResult[T any] struct {
	value T
	err   error
}

// Do runs fn on a runtime goroutine and blocks the caller until fn returns
// or ctx is done, whichever comes first. fn receives a context cancelled
// when ctx is cancelled or the runtime shuts down. When all slots are busy
// Do waits for one, or returns ctx.Err().
func Do[T any](ctx context.Context, r *Runtime, fn func(ctx context.Context) (T, error)) (T, error) {
	return DoWithRelease(ctx, r, fn, nil)
}

// DoWithRelease is Do for tasks producing resources. When the caller stops
// waiting and fn later succeeds, release is called with the value on the
// task goroutine so it is not leaked.
func DoWithRelease[T any](ctx context.Context, r *Runtime, fn func(ctx context.Context) (T, error), release func(T)) (T, error) {
	var zero T

	r.init()
	if !r.enter() {
		return zero, ErrRuntimeClosed
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		r.wg.Done()
		return zero, err
	}

	taskCtx, cancel := r.bind(ctx)

	var (
		mu        sync.Mutex
		abandoned bool
	)
	done := make(chan taskResult[T], 1)

	go func() {
		defer r.wg.Done()
		defer r.sem.Release(1)
		defer cancel()

		var res taskResult[T]
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error().Interface("panic", p).Msg("task panicked")
				res = taskResult[T]{err: fmt.Errorf("%w: %v", ErrTaskPanicked, p)}
			}

			mu.Lock()
			if !abandoned {
				done <- res
				mu.Unlock()
				return
			}
			mu.Unlock()

			if res.err == nil && release != nil {
				release(res.value)
			}
		}()

		res.value, res.err = fn(taskCtx)
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		mu.Lock()
		defer mu.Unlock()
		select {
		case res := <-done:
			return res.value, res.err
		default:
			abandoned = true
			return zero, ctx.Err()
		}
	}
}

// Go starts w in its own goroutine. The worker context is cancelled when
// ctx is cancelled or the runtime shuts down; Shutdown waits for it.
func (r *Runtime) Go(ctx context.Context, w Worker) error {
	r.init()
	if !r.enter() {
		return ErrRuntimeClosed
	}

	workerCtx, cancel := r.bind(ctx)
	go func() {
		defer r.wg.Done()
		defer cancel()
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error().Interface("panic", p).Msg("worker panicked")
			}
		}()
		w.Run(workerCtx)
	}()

	return nil
}

// Shutdown rejects new work, cancels running tasks and workers, and waits
// for them to return or for ctx to expire.
func (r *Runtime) Shutdown(ctx context.Context) error {
	r.init()

	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Debug().Msg("task runtime stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("runtime shutdown: %w", ctx.Err())
	}
}
