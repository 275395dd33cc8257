package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Dimen is a CSS numeric value with an optional unit, e.g. `12.5px`,
// `50%`, `30deg` or a plain number.
type Dimen struct {
	Value float64
	Unit  string
}

// Of creates a dimension for value x with a given unit.
func Of(x float64, unit string) Dimen {
	return Dimen{Value: x, Unit: unit}
}

// Px creates a dimension in pixels.
func Px(x float64) Dimen { return Dimen{x, "px"} }

// Percent creates a %-relative dimension.
func Percent(x float64) Dimen { return Dimen{x, "%"} }

// Deg creates an angle in degrees.
func Deg(x float64) Dimen { return Dimen{x, "deg"} }

// Unitless creates a plain number.
func Unitless(x float64) Dimen { return Dimen{Value: x} }

func (d Dimen) String() string {
	return Number(d.Value) + d.Unit
}

// IsPx is true for pixel dimensions and for plain numbers.
func (d Dimen) IsPx() bool {
	return d.Unit == "px" || d.Unit == ""
}

// Number formats x with the shortest decimal representation which
// reads back as x, without exponent.
func Number(x float64) string {
	if x == 0 {
		return "0" // no negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ErrNotADimension is returned by ParseDimen for values which are not
// numeric.
var ErrNotADimension = errors.New("not a dimension")

// ParseDimen reads a numeric CSS value, e.g. "120px", "-4.5deg", "50%" or "3".
func ParseDimen(s string) (Dimen, error) {
	sc := scanner.New(strings.TrimSpace(s))
	sign := 1.0
	tok := sc.Next()
	if tok.Type == scanner.TokenChar && (tok.Value == "-" || tok.Value == "+") {
		if tok.Value == "-" {
			sign = -1
		}
		tok = sc.Next()
	}
	var d Dimen
	switch tok.Type {
	case scanner.TokenNumber:
		d.Value = floatOrNaN(tok.Value)
	case scanner.TokenPercentage:
		d = Dimen{floatOrNaN(strings.TrimSuffix(tok.Value, "%")), "%"}
	case scanner.TokenDimension:
		i := strings.IndexFunc(tok.Value, func(r rune) bool {
			return (r < '0' || r > '9') && r != '.'
		})
		d = Dimen{floatOrNaN(tok.Value[:i]), strings.ToLower(tok.Value[i:])}
	default:
		return Dimen{}, fmt.Errorf("%w: %q", ErrNotADimension, s)
	}
	if math.IsNaN(d.Value) {
		return Dimen{}, fmt.Errorf("%w: %q", ErrNotADimension, s)
	}
	if rest := sc.Next(); rest.Type != scanner.TokenEOF {
		return Dimen{}, fmt.Errorf("%w: trailing %q in %q", ErrNotADimension, rest.Value, s)
	}
	d.Value *= sign
	return d, nil
}

func floatOrNaN(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return x
}
