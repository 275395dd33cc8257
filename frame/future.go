package frame

import (
	"context"
	"sync"
)

// Future is a completion signal which fires at most once.
//
// A future may alternatively fail. A failed future never completes; Wait
// returns the failure instead.
type Future struct {
	mx       sync.Mutex
	done     chan struct{}
	failed   chan struct{}
	resolved bool
	err      error
	then     []func()
	catch    []func(error)
}

// NewFuture creates an unresolved future.
func NewFuture() *Future {
	return &Future{
		done:   make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// Completed returns a future which is already resolved.
func Completed() *Future {
	f := NewFuture()
	f.Resolve()
	return f
}

// Resolve fires the future. Callbacks registered with Then are called
// synchronously, in order of registration. Only the first call has an effect
// and returns true; resolving a failed future has no effect.
func (f *Future) Resolve() bool {
	f.mx.Lock()
	if f.resolved || f.err != nil {
		f.mx.Unlock()
		return false
	}
	f.resolved = true
	close(f.done)
	then := f.then
	f.then, f.catch = nil, nil
	f.mx.Unlock()
	for _, fn := range then {
		fn()
	}
	return true
}

// Fail marks the future as failed. Only the first call on an unresolved future
// has an effect and returns true.
func (f *Future) Fail(err error) bool {
	if err == nil {
		panic("frame: future failed with nil error")
	}
	f.mx.Lock()
	if f.resolved || f.err != nil {
		f.mx.Unlock()
		return false
	}
	f.err = err
	close(f.failed)
	catch := f.catch
	f.then, f.catch = nil, nil
	f.mx.Unlock()
	for _, fn := range catch {
		fn(err)
	}
	return true
}

// Done returns a channel which is closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Resolved returns true if the future has fired.
func (f *Future) Resolved() bool {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.resolved
}

// Err returns the failure of the future, if any.
func (f *Future) Err() error {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.err
}

// Then registers a callback for the resolution of the future. If the future
// has already been resolved, fn is called immediately.
func (f *Future) Then(fn func()) *Future {
	f.mx.Lock()
	if f.resolved {
		f.mx.Unlock()
		fn()
		return f
	}
	if f.err == nil {
		f.then = append(f.then, fn)
	}
	f.mx.Unlock()
	return f
}

// Catch registers a callback for the failure of the future. If the future
// has already failed, fn is called immediately.
func (f *Future) Catch(fn func(error)) *Future {
	f.mx.Lock()
	if err := f.err; err != nil {
		f.mx.Unlock()
		fn(err)
		return f
	}
	if !f.resolved {
		f.catch = append(f.catch, fn)
	}
	f.mx.Unlock()
	return f
}

// Wait blocks until the future resolves, fails or ctx is done.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-f.failed:
		return f.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// All returns a future which resolves as soon as all given futures have
// resolved, or fails with the first failure. Without arguments, the future
// is resolved immediately.
func All(futures ...*Future) *Future {
	all := NewFuture()
	if len(futures) == 0 {
		all.Resolve()
		return all
	}
	var mx sync.Mutex
	pending := len(futures)
	for _, f := range futures {
		f.Then(func() {
			mx.Lock()
			pending--
			last := pending == 0
			mx.Unlock()
			if last {
				all.Resolve()
			}
		}).Catch(func(err error) {
			all.Fail(err)
		})
	}
	return all
}
