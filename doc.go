/*
Package animsync drives CSS animations of DOM elements frame by frame.

An Animator binds a document to a transition engine. Selecting elements
yields an immutable Selection, which is the handle for all further
operations: class list changes, transform rewrites, event listeners and
animations. Every operation works on the elements the selection held at
the moment the operation was invoked; transitions keep operating on that
snapshot for their whole lifetime.

	doc, _ := dom.ParseString(page)
	sched := frame.NewManual(time.Now(), frame.DefaultFrameInterval)
	a := animsync.New(doc, frame.NewEngine(sched), animsync.DefaultConfig())
	sel, err := a.Select(".card")
	…
	run, err := sel.Change(effect.ChangeOptions{
	    Duration: time.Second,
	    Next:     maybe.Just(500 * time.Millisecond),
	    From:     map[string]float64{"x": 0},
	    To:       map[string]float64{"x": 100},
	})

Completion of animations is signalled by futures of package frame. An
animation resolving early allows the next animation to start while the
first one is still running.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package animsync

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync'
func tracer() tracing.Trace {
	return tracing.Select("animsync")
}
