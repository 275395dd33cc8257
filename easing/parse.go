package easing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ErrUnknownTimingFunction is returned by Parse for expressions which neither
// name a built-in curve nor are a valid cubic-bezier().
var ErrUnknownTimingFunction = errors.New("unknown timing function")

// Parse returns a timing function for a curve name (see Lookup) or for a
// CSS expression of the form
//
//	cubic-bezier(x1, y1, x2, y2)
//
// An empty expression yields Linear.
func Parse(expr string) (Func, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Linear, nil
	}
	if f, ok := Lookup(expr); ok {
		return f, nil
	}
	params, err := parseBezierArgs(expr)
	if err != nil {
		return nil, err
	}
	return Bezier(params[0], params[1], params[2], params[3]), nil
}

func parseBezierArgs(expr string) ([]float64, error) {
	s := scanner.New(expr)
	tok := s.Next()
	for tok.Type == scanner.TokenS {
		tok = s.Next()
	}
	if tok.Type != scanner.TokenFunction || !strings.EqualFold(tok.Value, "cubic-bezier(") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimingFunction, expr)
	}
	var params []float64
	closed := false
	for !closed {
		tok = s.Next()
		switch tok.Type {
		case scanner.TokenS, scanner.TokenComment:
		case scanner.TokenNumber:
			x, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimingFunction, expr, err)
			}
			params = append(params, x)
		case scanner.TokenChar:
			switch tok.Value {
			case ",":
			case ")":
				closed = true
			case "-":
				// the scanner does not attach a sign to numbers
				next := s.Next()
				if next.Type != scanner.TokenNumber {
					return nil, fmt.Errorf("%w: %q", ErrUnknownTimingFunction, expr)
				}
				x, err := strconv.ParseFloat(next.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimingFunction, expr, err)
				}
				params = append(params, -x)
			default:
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrUnknownTimingFunction, tok.Value, expr)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %s in %q", ErrUnknownTimingFunction, tok.Type, expr)
		}
	}
	for tok = s.Next(); tok.Type != scanner.TokenEOF; tok = s.Next() {
		if tok.Type != scanner.TokenS && tok.Type != scanner.TokenComment {
			return nil, fmt.Errorf("%w: trailing %q in %q", ErrUnknownTimingFunction, tok.Value, expr)
		}
	}
	if len(params) != 4 {
		return nil, fmt.Errorf("%w: cubic-bezier needs 4 parameters, has %d", ErrUnknownTimingFunction, len(params))
	}
	return params, nil
}
