package outcome

import (
	"context"
	"errors"
)

// ErrNotResolved is returned by TryGet on a future that is still pending.
var ErrNotResolved = errors.New("outcome: future not resolved")

// Future is a value that becomes available once the function producing it
// returns. A future resolves exactly once. Panics raised while producing
// the value are captured and re-raised by Await.
type Future[T any] struct {
	done     chan struct{}
	value    T
	panicVal any
	panicked bool
	cancel   context.CancelFunc
}

// Go runs fn in a new goroutine and returns a future for its result. The
// context passed to fn is cancelled by Cancel or when fn returns.
func Go[T any](ctx context.Context, fn func(context.Context) T) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer cancel()
		f.resolve(func() T { return fn(ctx) })
	}()
	return f
}

// Resolved returns a future that is already resolved to v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Then returns a future resolving to fn applied to src's value. fn runs
// once, after src resolves; inline when src is already resolved. Cancel on
// the returned future cancels src. A panic in src skips fn and carries over.
func Then[A, B any](src *Future[A], fn func(A) B) *Future[B] {
	f := &Future[B]{done: make(chan struct{}), cancel: src.cancel}
	cont := func() {
		if src.panicked {
			f.panicVal, f.panicked = src.panicVal, true
			close(f.done)
			return
		}
		f.resolve(func() B { return fn(src.value) })
	}

	select {
	case <-src.done:
		cont()
	default:
		go func() {
			<-src.done
			cont()
		}()
	}
	return f
}

func (f *Future[T]) resolve(fn func() T) {
	defer close(f.done)
	defer func() {
		if p := recover(); p != nil {
			f.panicVal, f.panicked = p, true
		}
	}()
	f.value = fn()
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Cancel cancels the context of the function producing the value. The
// future still resolves to whatever that function returns.
func (f *Future[T]) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Await blocks until the future resolves or ctx is done. It returns
// ctx.Err() in the latter case and leaves the future running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.get(), nil
	default:
	}

	select {
	case <-f.done:
		return f.get(), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the value without blocking, or ErrNotResolved.
func (f *Future[T]) TryGet() (T, error) {
	select {
	case <-f.done:
		return f.get(), nil
	default:
		var zero T
		return zero, ErrNotResolved
	}
}

func (f *Future[T]) get() T {
	if f.panicked {
		panic(f.panicVal)
	}
	return f.value
}
