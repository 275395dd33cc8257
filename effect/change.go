package effect

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/dom/style"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/maybe"
	"github.com/npillmayer/animsync/num"
)

// ChangeOptions configures Change.
type ChangeOptions struct {
	Duration time.Duration
	Next     maybe.Maybe[time.Duration] // early resolution offset
	Timing   easing.Func                // nil is linear
	Unit     string                     // unit of lengths; "" is "px"
	From     map[string]float64         // start values
	To       map[string]float64         // end values
	Colors   map[string]ColorRange      // color properties to interpolate
}

// ColorRange is the start and end color of a color property, in any notation
// style.Property.HexColor understands.
type ColorRange struct {
	From, To string
}

// shorthands for transform terms
var aliases = map[string]css.TransformName{
	"x":      css.TranslateX,
	"y":      css.TranslateY,
	"z":      css.TranslateZ,
	"scale":  css.Scale,
	"rotate": css.Rotate,
}

// Change starts a transition interpolating properties of all elements of sel.
//
// For every key of From which is present in To as well, the interpolated
// value is applied with each frame. Keys x, y and z denote the terms
// translateX/Y/Z of property transform, in the given unit; scale and rotate
// (in degrees) denote transform terms as well, as do all other supported
// transform names. Transform values are not rounded. Other keys denote plain
// properties, set to the rounded value suffixed by the unit. Keys missing
// in From are not animated.
//
// Color ranges are interpolated per component and set as hex colors. Colors
// which cannot be parsed are reported as an error before the transition starts.
func Change(e *frame.Engine, sel []w3cdom.Element, opts ChangeOptions) (*frame.Run[w3cdom.Element], error) {
	if opts.Unit == "" {
		opts.Unit = "px"
	}
	colors, err := normalizeColors(opts.Colors)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(opts.From))
	for k := range opts.From {
		if _, ok := opts.To[k]; ok {
			keys = append(keys, k)
		} else {
			tracer().Debugf("change: no end value for %q, skipping", k)
		}
	}
	sort.Strings(keys)
	apply := func(t float64, elems []w3cdom.Element) error {
		for _, el := range elems {
			if err := changeElement(el, t, keys, opts, colors); err != nil {
				return err
			}
		}
		return nil
	}
	return frame.Transition(e, sel, opts.Duration, opts.Next, opts.Timing, apply), nil
}

type colorKey struct {
	key      string
	from, to string
}

func normalizeColors(ranges map[string]ColorRange) ([]colorKey, error) {
	colors := make([]colorKey, 0, len(ranges))
	for k, r := range ranges {
		from, err := style.Property(r.From).HexColor()
		if err != nil {
			return nil, fmt.Errorf("change of %s: %w", k, err)
		}
		to, err := style.Property(r.To).HexColor()
		if err != nil {
			return nil, fmt.Errorf("change of %s: %w", k, err)
		}
		if len(from) != len(to) { // mixing 6 and 8 digit codes
			from, to = withAlpha(from), withAlpha(to)
		}
		colors = append(colors, colorKey{key: k, from: from, to: to})
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].key < colors[j].key })
	return colors, nil
}

func withAlpha(hex string) string {
	if len(hex) == 6 {
		return hex + "ff"
	}
	return hex
}

func changeElement(el w3cdom.Element, t float64, keys []string, opts ChangeOptions, colors []colorKey) error {
	st := el.Style()
	transform := st.GetPropertyValue("transform")
	transformed := false
	for _, key := range keys {
		v := num.Lerp(t, opts.From[key], opts.To[key])
		name, ok := aliases[key]
		if !ok {
			name, ok = css.LookupTransform(key)
		}
		if !ok {
			st.SetProperty(key, css.Number(math.Round(v))+opts.Unit)
			continue
		}
		var err error
		if transform, err = css.SetTransform(transform, string(name), transformValue(name, v, opts.Unit)); err != nil {
			return err
		}
		transformed = true
	}
	if transformed {
		st.SetProperty("transform", transform)
	}
	for _, c := range colors {
		hex, err := num.HexColorAt(t, c.from, c.to)
		if err != nil {
			return err
		}
		st.SetProperty(c.key, "#"+hex)
	}
	return nil
}

func transformValue(name css.TransformName, v float64, unit string) string {
	n := string(name)
	switch {
	case strings.HasPrefix(n, "translate"), name == css.Perspective:
		return css.Number(v) + unit
	case strings.HasPrefix(n, "rotate"), strings.HasPrefix(n, "skew"):
		return css.Deg(v).String()
	}
	return css.Number(v) // scale*, matrix*
}
