/*
Package style holds CSS property values, inline style declarations and
embedded stylesheets of a headless DOM.

Inline styles are kept as an ordered list of declarations, parsed from and
serialized to an element's `style` attribute. Stylesheets are taken from
`<style>` elements; rules are matched against elements with CSS selectors
and cascaded by importance, specificity and source order.

# Status

Only the subset of CSS needed to animate elements is supported: there is no
inheritance of computed values apart from the properties flagged by
IsCascading, and no support for @-rules.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync.dom'
func tracer() tracing.Trace {
	return tracing.Select("animsync.dom")
}
