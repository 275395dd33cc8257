/*
Package css implements the CSS value handling animations need: rewriting
single terms of a `transform` property and numeric values with units.

# Transform strings

A transform value is a whitespace separated list of function terms:

	translateX(10px) rotate(5deg)

SetTransform sets exactly one named term, appending it if it is missing and
leaving every other term untouched:

	s, _ := css.SetTransform("translateX(5px) rotate(20deg)", "rotate", "0deg")
	// s == "translateX(5px) rotate(0deg)"

Transform strings are tokenized with the CSS scanner of gorilla/css.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'animsync.css'.
func tracer() tracing.Trace {
	return tracing.Select("animsync.css")
}
