package easing

// newtonIterations caps the Newton-Raphson search per evaluation.
const newtonIterations = 4

// Bezier creates a timing function from a unit cubic Bézier curve with
// control points (x1,y1) and (x2,y2), the way CSS `cubic-bezier()` does.
//
// For every x the curve parameter t is approximated with at most four
// Newton-Raphson steps; a zero slope stops the search early.
func Bezier(x1, y1, x2, y2 float64) Func {
	if x1 == y1 && x2 == y2 {
		return Linear
	}
	return func(x float64) float64 {
		return bezierAt(tForX(x, x1, x2), y1, y2)
	}
}

func coeffA(a1, a2 float64) float64 { return 1.0 - 3.0*a2 + 3.0*a1 }
func coeffB(a1, a2 float64) float64 { return 3.0*a2 - 6.0*a1 }
func coeffC(a1 float64) float64     { return 3.0 * a1 }

// bezierAt evaluates one coordinate of the curve at parameter t.
func bezierAt(t, a1, a2 float64) float64 {
	return ((coeffA(a1, a2)*t+coeffB(a1, a2))*t + coeffC(a1)) * t
}

func slope(t, a1, a2 float64) float64 {
	return 3.0*coeffA(a1, a2)*t*t + 2.0*coeffB(a1, a2)*t + coeffC(a1)
}

func tForX(x, x1, x2 float64) float64 {
	guess := x
	for i := 0; i < newtonIterations; i++ {
		s := slope(guess, x1, x2)
		if s == 0.0 {
			return guess
		}
		guess -= (bezierAt(guess, x1, x2) - x) / s
	}
	return guess
}
