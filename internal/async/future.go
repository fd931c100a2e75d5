// Package async provides a single-value future used by the catalog service
// to hand results back without blocking the caller.
package async

import (
	"context"
	"sync"
)

// Future holds the eventual result of one operation. It completes exactly
// once, with either a value or an error; later reads return the same result.
type Future[T any] struct {
	done chan struct{}
	once sync.Once

	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go starts fn on its own goroutine and returns a future for its result.
// fn runs exactly once, however many times the future is awaited.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		value, err := fn(ctx)
		f.complete(value, err)
	}()
	return f
}

// Resolved returns a future already completed with value.
func Resolved[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.complete(value, nil)
	return f
}

// Failed returns a future already completed with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}

func (f *Future[T]) complete(value T, err error) {
	f.once.Do(func() {
		f.value, f.err = value, err
		close(f.done)
	})
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. A cancelled ctx
// only stops the wait; the operation itself keeps running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Subscribe calls onSuccess or onError, exactly one of them and once, on a
// separate goroutine when the result is available. Either handler may be nil.
func (f *Future[T]) Subscribe(onSuccess func(T), onError func(error)) {
	go func() {
		<-f.done
		if f.err != nil {
			if onError != nil {
				onError(f.err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(f.value)
		}
	}()
}
