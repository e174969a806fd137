package actor

import (
	"context"
	"sync"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// promiseImpl is the concrete Promise/Future implementation used by Ask and
// by Query. A single completion channel is closed exactly once; subsequent
// reads observe the stored result.
type promiseImpl[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	completed bool
	result    fn.Result[T]
}

// NewPromise creates a new, uncompleted Promise.
func NewPromise[T any]() Promise[T] {
	return &promiseImpl[T]{
		done: make(chan struct{}),
	}
}

// Complete implements Promise.
func (p *promiseImpl[T]) Complete(result fn.Result[T]) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed {
		return false
	}

	p.result = result
	p.completed = true
	close(p.done)

	return true
}

// Future implements Promise.
func (p *promiseImpl[T]) Future() Future[T] {
	return p
}

// Await implements Future.
func (p *promiseImpl[T]) Await(ctx context.Context) fn.Result[T] {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()

		return p.result

	case <-ctx.Done():
		return fn.Err[T](ctx.Err())
	}
}

// ThenApply implements Future.
func (p *promiseImpl[T]) ThenApply(ctx context.Context, apply func(T) T) Future[T] {
	next := NewPromise[T]()

	go func() {
		result := p.Await(ctx)

		result.WhenOk(func(val T) {
			next.Complete(fn.Ok(apply(val)))
		})
		result.WhenErr(func(err error) {
			next.Complete(fn.Err[T](err))
		})
	}()

	return next.Future()
}

// OnComplete implements Future.
func (p *promiseImpl[T]) OnComplete(ctx context.Context, callback func(fn.Result[T])) {
	go func() {
		callback(p.Await(ctx))
	}()
}

// Compile-time interface assertions.
var (
	_ Promise[int] = (*promiseImpl[int])(nil)
	_ Future[int]  = (*promiseImpl[int])(nil)
)
