package animsync

import (
	"time"

	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/effect"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/maybe"
)

// Selection is an immutable, ordered set of elements, created by
// Animator.Select. The zero value is an empty selection which supports
// class, transform and event operations, but must not be animated.
type Selection struct {
	a     *Animator
	elems []w3cdom.Element
}

// Len returns the number of selected elements.
func (s Selection) Len() int {
	return len(s.elems)
}

// At returns the i-th element, or nil if i is out of range.
func (s Selection) At(i int) w3cdom.Element {
	if i < 0 || i >= len(s.elems) {
		return nil
	}
	return s.elems[i]
}

// Elements returns a copy of the selected elements.
func (s Selection) Elements() []w3cdom.Element {
	elems := make([]w3cdom.Element, len(s.elems))
	copy(elems, s.elems)
	return elems
}

// Filter returns the sub-selection of elements for which keep is true.
func (s Selection) Filter(keep func(w3cdom.Element) bool) Selection {
	elems := make([]w3cdom.Element, 0, len(s.elems))
	for _, el := range s.elems {
		if keep(el) {
			elems = append(elems, el)
		}
	}
	return Selection{a: s.a, elems: elems}
}

// On adds an event listener to every element for each of the events.
func (s Selection) On(h w3cdom.Handler, events ...string) Selection {
	for _, el := range s.elems {
		for _, ev := range events {
			el.AddEventListener(ev, h)
		}
	}
	return s
}

// AddClass adds classes to every element.
func (s Selection) AddClass(classes ...string) Selection {
	for _, el := range s.elems {
		el.ClassList().Add(classes...)
	}
	return s
}

// RemoveClass removes classes from every element.
func (s Selection) RemoveClass(classes ...string) Selection {
	for _, el := range s.elems {
		el.ClassList().Remove(classes...)
	}
	return s
}

// ToggleClass toggles a class of every element.
func (s Selection) ToggleClass(class string) Selection {
	for _, el := range s.elems {
		el.ClassList().Toggle(class)
	}
	return s
}

// Transform sets a single transform term in the inline style of every
// element, keeping all other terms. An unsupported transform name yields a
// *css.UnsupportedTransformError and leaves all elements unchanged.
func (s Selection) Transform(name, value string) (Selection, error) {
	if _, ok := css.LookupTransform(name); !ok {
		return s, &css.UnsupportedTransformError{Name: name}
	}
	for _, el := range s.elems {
		if err := effect.SetTransform(el, name, value); err != nil {
			return s, err
		}
	}
	return s, nil
}

// ComputedToInline copies the computed value of a property of every element
// to its inline style.
func (s Selection) ComputedToInline(property string) Selection {
	for _, el := range s.elems {
		effect.ComputedToInline(el, property)
	}
	return s
}

// Transition starts a generic transition over the selected elements.
// A nil timing function selects the animator's default.
func (s Selection) Transition(d time.Duration, next maybe.Maybe[time.Duration], f easing.Func,
	cb frame.Callback[w3cdom.Element]) *frame.Run[w3cdom.Element] {
	//
	if f == nil {
		f = s.timing()
	}
	return frame.Transition(s.engine(), s.elems, d, next, f, cb)
}

// Change interpolates properties of all elements, see effect.Change. Unset
// unit and timing function are taken from the animator's configuration.
func (s Selection) Change(opts effect.ChangeOptions) (*frame.Run[w3cdom.Element], error) {
	if opts.Timing == nil {
		opts.Timing = s.timing()
	}
	if opts.Unit == "" && s.a != nil {
		opts.Unit = s.a.config.Unit
	}
	return effect.Change(s.engine(), s.elems, opts)
}

// Typewriter types text into all elements, see effect.Typewriter.
func (s Selection) Typewriter(text string, opts effect.TypewriterOptions) *frame.Future {
	return effect.Typewriter(s.engine(), s.elems, text, opts)
}

// PartReveal reveals all elements, see effect.PartReveal.
func (s Selection) PartReveal(opts effect.PartRevealOptions) *frame.Future {
	return effect.PartReveal(s.engine(), s.elems, opts)
}

func (s Selection) timing() easing.Func {
	if s.a == nil {
		return easing.Linear
	}
	return s.a.config.Timing()
}

func (s Selection) engine() *frame.Engine {
	if s.a == nil {
		panic("animsync: selection is not bound to an animator")
	}
	return s.a.engine
}
