package frame

import (
	"errors"
	"fmt"
	"time"
)

// ErrCallbackFailure is wrapped by all errors reporting a failing frame or
// timer callback.
var ErrCallbackFailure = errors.New("animation callback failed")

// Engine runs transitions and delays on a scheduler.
type Engine struct {
	sched  Scheduler
	report func(error)
}

// Option configures an engine.
type Option func(*Engine)

// WithErrorReporter sets the function asynchronous failures are reported to.
// The default reporter traces errors.
func WithErrorReporter(report func(error)) Option {
	return func(e *Engine) {
		if report != nil {
			e.report = report
		}
	}
}

// NewEngine creates an engine requesting frames from s.
func NewEngine(s Scheduler, opts ...Option) *Engine {
	if s == nil {
		panic("frame: engine needs a scheduler")
	}
	e := &Engine{
		sched: s,
		report: func(err error) {
			tracer().Errorf("%v", err)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scheduler returns the engine's scheduler.
func (e *Engine) Scheduler() Scheduler {
	return e.sched
}

// Report hands an asynchronous failure to the engine's error reporter.
func (e *Engine) Report(err error) {
	if err != nil {
		e.report(err)
	}
}

// Delay returns a future which resolves after d. If cb is non-nil, it is
// called right before the future resolves. If cb panics, the failure is
// reported and the future fails instead.
func (e *Engine) Delay(d time.Duration, cb func()) *Future {
	f := NewFuture()
	e.sched.AfterFunc(d, func() {
		if cb != nil {
			if err := protect(cb); err != nil {
				err = fmt.Errorf("%w: delay of %v: %w", ErrCallbackFailure, d, err)
				e.Report(err)
				f.Fail(err)
				return
			}
		}
		f.Resolve()
	})
	return f
}

// protect calls fn, turning a panic into an error.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
