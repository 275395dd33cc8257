package effect

import (
	"math"
	"strings"
	"time"

	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/maybe"
)

// TypewriterOptions configures Typewriter.
type TypewriterOptions struct {
	Duration time.Duration
	Shift    int         // number of characters to remove from the start of the old text
	Timing   easing.Func // nil is cubic-in-out
}

// Typewriter replaces the text content of every element of sel by text, one
// character at a time. At progress t, the first round(len(text)·t) characters
// of the old text are overwritten by characters of the new text, after
// round(shift·t) characters have been removed from the start of the old text.
// Characters of the old text beyond the new text's length stay unless
// shifted out.
//
// An empty text clears the elements: it is replaced by as many empty
// characters as the element's old text has.
//
// Every element runs a transition of its own; the returned future resolves
// when all of them have completed.
func Typewriter(e *frame.Engine, sel []w3cdom.Element, text string, opts TypewriterOptions) *frame.Future {
	if opts.Timing == nil {
		opts.Timing = easing.CubicInOut
	}
	futures := make([]*frame.Future, 0, len(sel))
	for _, el := range sel {
		old := chars(el.TextContent())
		target := chars(text)
		if len(target) == 0 {
			target = make([]string, len(old))
		}
		if len(target) == 0 {
			target = []string{""}
		}
		typeFrame := func(t float64, elems []w3cdom.Element) error {
			n := int(math.Round(float64(len(target)) * t))
			shift := int(math.Round(float64(opts.Shift) * t))
			elems[0].SetTextContent(typed(old, target, n, shift))
			return nil
		}
		run := frame.Transition(e, []w3cdom.Element{el}, opts.Duration, maybe.Nothing[time.Duration](),
			opts.Timing, typeFrame)
		futures = append(futures, run.Future())
	}
	tracer().Debugf("typewriter: %d element(s) typing %q", len(sel), text)
	return frame.All(futures...)
}

func chars(s string) []string {
	r := []rune(s)
	c := make([]string, len(r))
	for i, x := range r {
		c[i] = string(x)
	}
	return c
}

func typed(old, target []string, n, shift int) string {
	if shift > len(old) {
		shift = len(old)
	}
	if shift < 0 {
		shift = 0
	}
	out := append([]string(nil), old[shift:]...)
	for i := 0; i < n && i < len(target); i++ {
		if i < len(out) {
			out[i] = target[i]
		} else {
			out = append(out, target[i])
		}
	}
	return strings.Join(out, "")
}
