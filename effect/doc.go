/*
Package effect composes animations from transitions of package frame.

Effects operate on a snapshot of elements taken when the effect is started:

  - Change interpolates several style properties at once, either terms of
    the transform property or plain properties with a unit
  - Typewriter reveals a new text content character by character
  - PartReveal slides a container and its first child into view

Per-frame style changes go through the element's inline style. Transform
terms are rewritten with css.SetTransform, leaving all other terms of the
transform intact.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package effect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync.effect'
func tracer() tracing.Trace {
	return tracing.Select("animsync.effect")
}
