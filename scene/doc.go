/*
Package scene plays declarative animation scripts.

A script is a YAML document with a list of steps. Every step performs one
action on the current selection; a step may change the selection by giving
a CSS selector.

	steps:
	  - select: .card
	    addClass: visible
	  - change:
	      duration: 1s
	      next: 400ms
	      easing: cubic-out
	      from: { x: -40, opacity: 0 }
	      to:   { x: 0, opacity: 1 }
	  - select: h1
	    typewriter: { text: Hello, duration: 800ms }
	  - wait: 1s

A step starts as soon as the previous step has resolved. Animations which
resolve early therefore overlap with their successors.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync.scene'
func tracer() tracing.Trace {
	return tracing.Select("animsync.scene")
}
