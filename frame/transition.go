package frame

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/maybe"
	"github.com/npillmayer/animsync/num"
)

// State is the state of a transition run.
type State int8

// States of a transition run. Running and EarlyResolved request more frames;
// Finished and Halted are terminal.
const (
	Running       State = iota // frames running, completion pending
	EarlyResolved              // completion fired, frames still running
	Finished                   // final frame done, completion fired
	Halted                     // a callback failed, completion will never fire
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case EarlyResolved:
		return "EarlyResolved"
	case Finished:
		return "Finished"
	case Halted:
		return "Halted"
	}
	return fmt.Sprintf("State(%d)", int8(s))
}

// Callback is called for every frame of a transition, with shaped progress
// t ∈ [0,1] and the snapshot of targets the transition was started with.
// Returning an error halts the transition.
type Callback[T any] func(t float64, snapshot []T) error

// Run is a transition in flight.
type Run[T any] struct {
	engine   *Engine
	created  time.Time
	duration time.Duration
	next     maybe.Maybe[time.Duration]
	timing   easing.Func
	callback Callback[T]
	snapshot []T
	future   *Future

	mx       sync.Mutex
	state    State
	resolved bool
	frames   int
	err      error
}

// Transition starts a run. snapshot is copied, so later changes of the
// caller's slice do not affect the run. next is the optional offset after
// which the completion fires early; a nil timing function is linear.
//
// The first frame is executed synchronously. A duration ≤ 0 executes only the
// final frame, with progress 1.
func Transition[T any](e *Engine, snapshot []T, d time.Duration, next maybe.Maybe[time.Duration],
	f easing.Func, cb Callback[T]) *Run[T] {
	//
	if f == nil {
		f = easing.Linear
	}
	r := &Run[T]{
		engine:   e,
		created:  e.sched.Now(),
		duration: d,
		next:     maybe.Of(next),
		timing:   f,
		callback: cb,
		snapshot: append([]T(nil), snapshot...),
		future:   NewFuture(),
	}
	tracer().Debugf("transition: start duration=%v next=%v targets=%d", d, r.next, len(r.snapshot))
	r.frame()
	return r
}

func (r *Run[T]) frame() {
	elapsed := r.engine.sched.Now().Sub(r.created)
	if r.duration > 0 && elapsed < r.duration {
		raw := float64(elapsed) / float64(r.duration)
		if !r.invoke(num.Clamp(r.timing(raw), 0, 1)) {
			return
		}
		if offset, ok := r.next.Get(); ok && elapsed >= offset {
			r.resolve(EarlyResolved)
		}
		r.engine.sched.RequestFrame(r.frame)
		return
	}
	if !r.invoke(1) {
		return
	}
	r.resolve(Finished)
}

// invoke calls the callback, halting the run on failure.
func (r *Run[T]) invoke(t float64) bool {
	r.mx.Lock()
	r.frames++
	r.mx.Unlock()
	var err error
	if r.callback != nil {
		if perr := protect(func() { err = r.callback(t, r.snapshot) }); perr != nil {
			err = perr
		}
	}
	if err == nil {
		return true
	}
	err = fmt.Errorf("%w: transition at t=%.3f: %w", ErrCallbackFailure, t, err)
	r.mx.Lock()
	r.state, r.err = Halted, err
	r.mx.Unlock()
	r.engine.Report(err)
	r.future.Fail(err)
	return false
}

func (r *Run[T]) resolve(s State) {
	r.mx.Lock()
	r.state = s
	fire := !r.resolved
	r.resolved = true
	r.mx.Unlock()
	if fire {
		tracer().Debugf("transition: resolved in state %s after %d frame(s)", s, r.Frames())
		r.future.Resolve()
	}
}

// State returns the current state of the run.
func (r *Run[T]) State() State {
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.state
}

// Frames returns the number of callback invocations so far.
func (r *Run[T]) Frames() int {
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.frames
}

// Err returns the failure which halted the run, if any.
func (r *Run[T]) Err() error {
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.err
}

// Snapshot returns a copy of the targets of the run.
func (r *Run[T]) Snapshot() []T {
	return append([]T(nil), r.snapshot...)
}

// Future returns the completion signal of the run.
func (r *Run[T]) Future() *Future {
	return r.future
}

// Done returns a channel which is closed on completion.
func (r *Run[T]) Done() <-chan struct{} {
	return r.future.Done()
}

// Wait blocks until the run completes, ctx is done, or a callback fails.
func (r *Run[T]) Wait(ctx context.Context) error {
	return r.future.Wait(ctx)
}
