/*
Package easing holds the timing functions transitions are shaped with.

A timing function maps linear progress t ∈ [0,1] to shaped progress. Curves
are looked up by name:

	linear
	quad-in    quad-out    quad-in-out
	cubic-in   cubic-out   cubic-in-out
	quart-in   quart-out   quart-in-out
	quint-in   quint-out   quint-in-out
	circ-in    circ-out    circ-in-out
	expo-in    expo-out    expo-in-out
	elastic-out
	bounce-out

Elastic and bounce curves leave [0,1] mid-curve; this is intended.
Custom curves are created with Bezier or parsed from CSS
`cubic-bezier(…)` expressions (see Parse).

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package easing

import (
	"fmt"
	"math"
	"sort"
)

// Func is a timing function.
type Func func(t float64) float64

const (
	c4 = (2 * math.Pi) / 3 // elastic
	n1 = 7.5625            // bounce
	d1 = 2.75
)

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return t }

func QuadIn(t float64) float64  { return t * t }
func CubicIn(t float64) float64 { return t * t * t }
func QuartIn(t float64) float64 { return t * t * t * t }
func QuintIn(t float64) float64 { return t * t * t * t * t }
func CircIn(t float64) float64  { return 1 - math.Sqrt(1-math.Pow(t, 2)) }

func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func QuadOut(t float64) float64 { return t * (2 - t) }

func CubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

func QuartOut(t float64) float64 {
	t--
	return 1 - t*t*t*t
}

func QuintOut(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}

func CircOut(t float64) float64 { return math.Sqrt(1 - math.Pow(t-1, 2)) }

func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func QuadInOut(t float64) float64 {
	if t < .5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func CubicInOut(t float64) float64 {
	if t < .5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

func QuartInOut(t float64) float64 {
	if t < .5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func QuintInOut(t float64) float64 {
	if t < .5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

func CircInOut(t float64) float64 {
	if t < .5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

func ExpoInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// ElasticOut overshoots 1 and oscillates back.
func ElasticOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// BounceOut bounces towards 1.
func BounceOut(t float64) float64 {
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + .75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + .9375
	}
	t -= 2.625 / d1
	return n1*t*t + .984375
}

var table = map[string]Func{
	"linear":       Linear,
	"quad-in":      QuadIn,
	"cubic-in":     CubicIn,
	"quart-in":     QuartIn,
	"quint-in":     QuintIn,
	"circ-in":      CircIn,
	"expo-in":      ExpoIn,
	"quad-out":     QuadOut,
	"cubic-out":    CubicOut,
	"quart-out":    QuartOut,
	"quint-out":    QuintOut,
	"circ-out":     CircOut,
	"expo-out":     ExpoOut,
	"quad-in-out":  QuadInOut,
	"cubic-in-out": CubicInOut,
	"quart-in-out": QuartInOut,
	"quint-in-out": QuintInOut,
	"circ-in-out":  CircInOut,
	"expo-in-out":  ExpoInOut,
	"elastic-out":  ElasticOut,
	"bounce-out":   BounceOut,
}

// Lookup finds a timing function by name.
func Lookup(name string) (Func, bool) {
	f, ok := table[name]
	return f, ok
}

// MustLookup is like Lookup, but panics for unknown names.
func MustLookup(name string) Func {
	f, ok := table[name]
	if !ok {
		panic(fmt.Sprintf("easing: no timing function named %q", name))
	}
	return f
}

// Names returns the names of all built-in timing functions, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overshoots is true for curves which intentionally leave [0,1].
func Overshoots(name string) bool {
	return name == "elastic-out" || name == "bounce-out"
}
