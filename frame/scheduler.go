package frame

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Scheduler is the host's frame primitive. Implementations execute all
// callbacks on a single execution context.
type Scheduler interface {
	Now() time.Time                  // current reading of the scheduler's clock
	RequestFrame(func())             // call a function with the next frame
	AfterFunc(time.Duration, func()) // call a function after a delay
}

// DefaultFrameInterval is the interval between frames at 60 frames per second.
const DefaultFrameInterval = time.Second / 60

// FrameInterval returns the interval between frames for a frame rate.
// Non-positive rates yield DefaultFrameInterval.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return DefaultFrameInterval
	}
	return time.Second / time.Duration(fps)
}

// --- Manual scheduler -------------------------------------------------

// Manual is a scheduler with a simulated clock. Time advances only by calls
// to Step, Advance or RunUntilIdle, which execute due timers and frames on the
// calling goroutine.
type Manual struct {
	mx       sync.Mutex
	now      time.Time
	interval time.Duration
	frames   []func()
	timers   []timer
	seq      int
	steps    int
}

type timer struct {
	at  time.Time
	seq int
	fn  func()
}

var _ Scheduler = &Manual{}

// NewManual creates a manual scheduler with its clock set to start, advancing
// by interval with every step.
func NewManual(start time.Time, interval time.Duration) *Manual {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Manual{now: start, interval: interval}
}

// Now returns the simulated time.
func (m *Manual) Now() time.Time {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.now
}

// Interval returns the simulated time between two frames.
func (m *Manual) Interval() time.Duration {
	return m.interval
}

// RequestFrame queues fn for the next step.
func (m *Manual) RequestFrame(fn func()) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.frames = append(m.frames, fn)
}

// AfterFunc queues fn to be called with the first step at or after now+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.seq++
	m.timers = append(m.timers, timer{at: m.now.Add(d), seq: m.seq, fn: fn})
}

// Pending returns the number of queued frames and timers.
func (m *Manual) Pending() int {
	m.mx.Lock()
	defer m.mx.Unlock()
	return len(m.frames) + len(m.timers)
}

// Steps returns the number of steps performed so far.
func (m *Manual) Steps() int {
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.steps
}

// Step advances the clock by one frame interval, calls all timers due, then
// all frames requested before the step began. Frames requested by timers or
// frames of this step are deferred to the next step. Step returns the number
// of callbacks executed.
func (m *Manual) Step() int {
	m.mx.Lock()
	m.now = m.now.Add(m.interval)
	m.steps++
	due := m.dueTimers()
	frames := m.frames
	m.frames = nil
	m.mx.Unlock()
	n := 0
	for _, t := range due {
		t.fn()
		n++
	}
	for _, fn := range frames {
		fn()
		n++
	}
	return n
}

func (m *Manual) dueTimers() []timer {
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})
	i := 0
	for i < len(m.timers) && !m.timers[i].at.After(m.now) {
		i++
	}
	due := m.timers[:i:i]
	m.timers = m.timers[i:]
	return due
}

// Advance performs steps until the clock has advanced by at least d.
// It returns the number of steps performed.
func (m *Manual) Advance(d time.Duration) int {
	until := m.Now().Add(d)
	steps := 0
	for m.Now().Before(until) {
		m.Step()
		steps++
	}
	return steps
}

// RunUntilIdle performs steps until no frames or timers are pending. It gives
// up after maxSteps steps and returns an error if work is still pending then.
func (m *Manual) RunUntilIdle(maxSteps int) (int, error) {
	steps := 0
	for m.Pending() > 0 {
		if steps >= maxSteps {
			return steps, fmt.Errorf("scheduler still busy after %d steps (%d pending)", steps, m.Pending())
		}
		m.Step()
		steps++
	}
	return steps, nil
}

// --- Ticker -----------------------------------------------------------

// Ticker is a real-time scheduler. Frames are executed by a single goroutine
// at a fixed frame rate; timers and tasks posted with Do are executed by the
// same goroutine, so no two callbacks ever run concurrently.
type Ticker struct {
	interval time.Duration
	mx       sync.Mutex
	frames   []func()
	tasks    chan func()
	stop     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

var _ Scheduler = &Ticker{}

// NewTicker starts a real-time scheduler with a frame rate of fps.
// Clients must call Stop to release its goroutine.
func NewTicker(fps int) *Ticker {
	t := &Ticker{
		interval: FrameInterval(fps),
		tasks:    make(chan func(), 64),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go t.loop()
	return t
}

// Now returns the wall clock time.
func (t *Ticker) Now() time.Time {
	return time.Now()
}

// RequestFrame queues fn for the next tick.
func (t *Ticker) RequestFrame(fn func()) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.frames = append(t.frames, fn)
}

// AfterFunc calls fn on the ticker's goroutine after d.
func (t *Ticker) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { t.Do(fn) })
}

// Do calls fn on the ticker's goroutine. Clients use it to start
// animations from other goroutines. Tasks posted after Stop are dropped.
func (t *Ticker) Do(fn func()) {
	select {
	case t.tasks <- fn:
	case <-t.stop:
	}
}

// Stop halts the ticker. Pending frames are never executed. Stop must not be
// called from a callback running on the ticker.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.stopped
}

func (t *Ticker) loop() {
	defer close(t.stopped)
	tick := time.NewTicker(t.interval)
	defer tick.Stop()
	for {
		select {
		case <-t.stop:
			return
		case fn := <-t.tasks:
			t.run(fn)
		case <-tick.C:
			t.mx.Lock()
			frames := t.frames
			t.frames = nil
			t.mx.Unlock()
			for _, fn := range frames {
				t.run(fn)
			}
		}
	}
}

func (t *Ticker) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("ticker: recovered from panic: %v", r)
		}
	}()
	fn()
}
