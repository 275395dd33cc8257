package frame

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func newManual() (*Manual, *Engine, *[]error) {
	sched := NewManual(epoch, 16*time.Millisecond)
	var errs []error
	engine := NewEngine(sched, WithErrorReporter(func(err error) { errs = append(errs, err) }))
	return sched, engine, &errs
}

func TestEarlyResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.frame")
	defer teardown()
	//
	sched, engine, _ := newManual()
	var progress []float64
	var resolvedAt time.Duration = -1
	run := Transition(engine, []string{"a"}, time.Second, maybe.Just(500*time.Millisecond), easing.Linear,
		func(t float64, targets []string) error {
			progress = append(progress, t)
			return nil
		})
	run.Future().Then(func() {
		resolvedAt = sched.Now().Sub(epoch)
	})
	require.Len(t, progress, 1, "first frame runs synchronously")
	assert.Equal(t, 0.0, progress[0])
	assert.Equal(t, Running, run.State())

	_, err := sched.RunUntilIdle(1000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, resolvedAt, 500*time.Millisecond)
	assert.Less(t, resolvedAt, 500*time.Millisecond+sched.Interval())
	assert.Equal(t, Finished, run.State())

	ones := 0
	for i, p := range progress {
		if i > 0 {
			assert.GreaterOrEqual(t, p, progress[i-1], "progress must not decrease")
		}
		if p == 1 {
			ones++
		}
	}
	assert.Equal(t, 1, ones, "final frame has progress 1 exactly once")
	assert.Equal(t, 1.0, progress[len(progress)-1])
	assert.Equal(t, 1008*time.Millisecond, sched.Now().Sub(epoch), "frames run until duration elapsed")
	assert.Equal(t, len(progress), run.Frames())
}

func TestResolveOnlyAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.frame")
	defer teardown()
	//
	sched, engine, _ := newManual()
	fired := 0
	run := Transition[int](engine, nil, 100*time.Millisecond, maybe.Nothing[time.Duration](), easing.QuadIn,
		func(t float64, _ []int) error { return nil })
	run.Future().Then(func() { fired++ })
	for i := 0; i < 6; i++ {
		sched.Step()
		assert.False(t, run.Future().Resolved(), "resolved early at step %d", i)
	}
	sched.Step() // 112ms
	assert.True(t, run.Future().Resolved())
	assert.Zero(t, sched.Pending())
	assert.False(t, run.Future().Resolve(), "second resolve must be ignored")
	assert.Equal(t, 1, fired)
	assert.NoError(t, run.Wait(context.Background()))
}

func TestZeroAndNegativeDuration(t *testing.T) {
	sched, engine, _ := newManual()
	for _, d := range []time.Duration{0, -time.Second} {
		var progress []float64
		run := Transition(engine, []int{1}, d, maybe.Just(time.Duration(0)), nil,
			func(t float64, _ []int) error {
				progress = append(progress, t)
				return nil
			})
		assert.Equal(t, []float64{1}, progress, "duration %v", d)
		assert.True(t, run.Future().Resolved())
		assert.Equal(t, Finished, run.State())
		assert.Zero(t, sched.Pending())
	}
}

func TestClampOvershoot(t *testing.T) {
	sched, engine, _ := newManual()
	max := 0.0
	Transition(engine, []int{1}, 400*time.Millisecond, nil, easing.ElasticOut,
		func(t float64, _ []int) error {
			if t > max {
				max = t
			}
			return nil
		})
	sched.RunUntilIdle(100)
	assert.Equal(t, 1.0, max, "overshooting curve is clamped")
}

func TestSnapshotIsFrozen(t *testing.T) {
	sched, engine, _ := newManual()
	targets := []string{"a", "b"}
	var seen [][]string
	Transition(engine, targets, 50*time.Millisecond, nil, easing.Linear,
		func(t float64, snap []string) error {
			seen = append(seen, append([]string(nil), snap...))
			return nil
		})
	targets[0] = "x"
	targets = append(targets, "c")
	sched.RunUntilIdle(10)
	for _, s := range seen {
		assert.Equal(t, []string{"a", "b"}, s)
	}
}

func TestCallbackFailureHalts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.frame")
	defer teardown()
	//
	sched, engine, errs := newManual()
	boom := errors.New("boom")
	calls := 0
	failing := Transition(engine, []int{1}, time.Second, nil, easing.Linear,
		func(t float64, _ []int) error {
			calls++
			if calls == 3 {
				return boom
			}
			return nil
		})
	panicking := Transition(engine, []int{1}, time.Second, nil, easing.Linear,
		func(t float64, _ []int) error {
			if t > 0.5 {
				panic("frame exploded")
			}
			return nil
		})
	healthy := Transition(engine, []int{1}, 200*time.Millisecond, nil, easing.Linear,
		func(t float64, _ []int) error { return nil })

	_, err := sched.RunUntilIdle(1000)
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "no frames after failure")
	assert.Equal(t, Halted, failing.State())
	assert.Equal(t, Halted, panicking.State())
	assert.Equal(t, Finished, healthy.State())
	assert.False(t, failing.Future().Resolved())
	select {
	case <-failing.Done():
		t.Error("halted run must never complete")
	default:
	}
	err = failing.Wait(context.Background())
	assert.ErrorIs(t, err, ErrCallbackFailure)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, panicking.Err(), ErrCallbackFailure)
	assert.Len(t, *errs, 2)
}

func TestDelay(t *testing.T) {
	sched, engine, errs := newManual()
	var order []string
	f := engine.Delay(100*time.Millisecond, func() { order = append(order, "callback") })
	f.Then(func() { order = append(order, "resolved") })
	sched.Advance(96 * time.Millisecond)
	assert.Empty(t, order)
	sched.Step()
	assert.Equal(t, []string{"callback", "resolved"}, order)

	bad := engine.Delay(0, func() { panic("no") })
	sched.Step()
	assert.ErrorIs(t, bad.Err(), ErrCallbackFailure)
	assert.Len(t, *errs, 1)
}

func TestTransitionFromTimerStartsNextFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.frame")
	defer teardown()
	//
	sched, engine, _ := newManual()
	var steps []int
	var progress []float64
	engine.Delay(32*time.Millisecond, nil).Then(func() {
		Transition(engine, []int{1}, 160*time.Millisecond, maybe.Nothing[time.Duration](), easing.Linear,
			func(t float64, _ []int) error {
				steps = append(steps, sched.Steps())
				progress = append(progress, t)
				return nil
			})
	})
	_, err := sched.RunUntilIdle(100)
	require.NoError(t, err)
	require.True(t, len(steps) > 2)
	assert.Equal(t, 2, steps[0], "first frame runs within the timer's step")
	for i := 1; i < len(steps); i++ {
		assert.Equal(t, steps[i-1]+1, steps[i], "one frame per step")
	}
	assert.Equal(t, 0.0, progress[0])
	assert.Greater(t, progress[1], 0.0, "t=0 is not repeated")
}

func TestAll(t *testing.T) {
	a, b := NewFuture(), NewFuture()
	all := All(a, b)
	a.Resolve()
	assert.False(t, all.Resolved())
	b.Resolve()
	assert.True(t, all.Resolved())
	assert.True(t, All().Resolved())

	c, d := NewFuture(), NewFuture()
	failed := All(c, d)
	boom := errors.New("boom")
	d.Fail(boom)
	c.Resolve()
	assert.False(t, failed.Resolved())
	assert.ErrorIs(t, failed.Wait(context.Background()), boom)
}

func TestWaitContext(t *testing.T) {
	f := NewFuture()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.Wait(ctx), context.DeadlineExceeded)
}

func TestTicker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.frame")
	defer teardown()
	//
	ticker := NewTicker(200)
	defer ticker.Stop()
	engine := NewEngine(ticker)
	last := make(chan float64, 1)
	var run *Run[int]
	started := make(chan struct{})
	ticker.Do(func() {
		run = Transition(engine, []int{1}, 50*time.Millisecond, nil, easing.CubicInOut,
			func(t float64, _ []int) error {
				select {
				case <-last:
				default:
				}
				last <- t
				return nil
			})
		close(started)
	})
	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, run.Wait(ctx))
	assert.Equal(t, 1.0, <-last)
}
