/*
Package frame drives time-based transitions frame by frame.

A transition is started with a duration, an optional early-resolution offset,
a timing function and a per-frame callback. The engine computes the
normalized progress of every frame, shapes it with the timing function,
clamps it to [0,1] and hands it to the callback together with the snapshot
of targets the transition was started with. The completion of a transition
is signalled by a Future, which fires exactly once: either when the
early-resolution offset is reached, or together with the final frame.
Frames continue after an early resolution until the full duration has
elapsed; the final frame always receives progress 1.

	run := frame.Transition(engine, elements, time.Second, maybe.Just(500*time.Millisecond),
	    easing.CubicInOut, func(t float64, elems []*dom.Element) error {
	        …
	        return nil
	    })
	err := run.Wait(ctx)

Frames are requested from a Scheduler. Schedulers execute all callbacks on a
single execution context, so callbacks never run concurrently with each
other. Manual is a scheduler with a simulated clock, which makes animations
deterministic; Ticker runs frames in real time on a goroutine of its own.

A callback failing with an error or a panic halts its transition: no more
frames are requested and the completion never fires. The failure is
reported to the engine's error reporter and is returned by Wait.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync.frame'
func tracer() tracing.Trace {
	return tracing.Select("animsync.frame")
}
