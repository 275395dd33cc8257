package effect

import (
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/maybe"
)

// PartRevealOptions configures PartReveal.
type PartRevealOptions struct {
	Duration         time.Duration
	TranslatePercent float64     // initial vertical offset of the container, in percent
	SkewDeg          float64     // initial vertical skew of the child, in degrees
	Timing           easing.Func // nil is quint-out
}

// ErrNoChild is reported by PartReveal for containers without child elements.
var ErrNoChild = errors.New("part-reveal needs a child element")

// PartReveal slides every element of sel up into its place, while its first
// child element slides up by the container's height and straightens from a skew.
//
// Before starting, the computed transform of a container is copied to its
// inline style; on completion the inline transform is removed again.
// Failures are not returned, but reported to the engine's error reporter.
// The returned future resolves when all containers have been revealed.
func PartReveal(e *frame.Engine, sel []w3cdom.Element, opts PartRevealOptions) *frame.Future {
	if opts.Timing == nil {
		opts.Timing = easing.QuintOut
	}
	p, s := opts.TranslatePercent, opts.SkewDeg
	futures := make([]*frame.Future, 0, len(sel))
	for _, el := range sel {
		el := el
		child := el.FirstElementChild()
		h := el.BoundingClientRect().Height
		ComputedToInline(el, "transform")
		reveal := func(t float64, elems []w3cdom.Element) error {
			if child == nil {
				return fmt.Errorf("%s: %w", el.TagName(), ErrNoChild)
			}
			if err := SetTransform(elems[0], string(css.TranslateY), css.Percent(p-p*t).String()); err != nil {
				return err
			}
			if err := SetTransform(child, string(css.TranslateY), css.Px(h-h*t).String()); err != nil {
				return err
			}
			return SetTransform(child, string(css.Skew), "0deg, "+css.Deg(s-s*t).String())
		}
		run := frame.Transition(e, []w3cdom.Element{el}, opts.Duration, maybe.Nothing[time.Duration](),
			opts.Timing, reveal)
		run.Future().Then(func() {
			el.Style().RemoveProperty("transform")
		})
		futures = append(futures, run.Future())
	}
	return frame.All(futures...)
}
