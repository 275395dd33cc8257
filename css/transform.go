package css

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// TransformName is the name of a CSS transform function.
type TransformName string

// Transform functions which may be set with SetTransform.
const (
	TranslateX  TransformName = "translateX"
	TranslateY  TransformName = "translateY"
	TranslateZ  TransformName = "translateZ"
	Rotate      TransformName = "rotate"
	RotateX     TransformName = "rotateX"
	RotateY     TransformName = "rotateY"
	RotateZ     TransformName = "rotateZ"
	Scale       TransformName = "scale"
	ScaleX      TransformName = "scaleX"
	ScaleY      TransformName = "scaleY"
	ScaleZ      TransformName = "scaleZ"
	Skew        TransformName = "skew"
	SkewX       TransformName = "skewX"
	SkewY       TransformName = "skewY"
	Perspective TransformName = "perspective"
	Matrix      TransformName = "matrix"
	Matrix3d    TransformName = "matrix3d"
)

var transformNames = func() map[string]TransformName {
	m := make(map[string]TransformName)
	for _, n := range []TransformName{
		TranslateX, TranslateY, TranslateZ,
		Rotate, RotateX, RotateY, RotateZ,
		Scale, ScaleX, ScaleY, ScaleZ,
		Skew, SkewX, SkewY,
		Perspective, Matrix, Matrix3d,
	} {
		m[strings.ToLower(string(n))] = n
	}
	return m
}()

// LookupTransform finds a supported transform function, ignoring case.
func LookupTransform(name string) (TransformName, bool) {
	n, ok := transformNames[strings.ToLower(name)]
	return n, ok
}

// UnsupportedTransformError is returned when a transform function is
// requested which SetTransform does not know about.
type UnsupportedTransformError struct {
	Name string
}

func (e *UnsupportedTransformError) Error() string {
	return fmt.Sprintf("cannot set transform property %q", e.Name)
}

// ErrMalformedTransform is returned for transform strings which cannot be
// tokenized into function terms.
var ErrMalformedTransform = errors.New("malformed transform")

// Term is a function term within a transform string.
// Start and End delimit the term (including its closing parenthesis) in
// the source string.
type Term struct {
	Name  string
	Args  string
	Start int
	End   int
}

func (t Term) String() string {
	return t.Name + "(" + t.Args + ")"
}

// ParseTransform splits a transform string into its function terms.
// Tokens outside of function terms (e.g., the keyword `none`) are skipped.
func ParseTransform(s string) ([]Term, error) {
	var terms []Term
	var term Term
	argStart, depth, pos := 0, 0, 0
	sc := scanner.New(s)
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth > 0 {
				return terms, fmt.Errorf("%w: unclosed %s( in %q", ErrMalformedTransform, term.Name, s)
			}
			return terms, nil
		case scanner.TokenError:
			return terms, fmt.Errorf("%w: %s in %q", ErrMalformedTransform, tok.Value, s)
		case scanner.TokenFunction:
			if depth == 0 {
				term = Term{Name: strings.TrimSuffix(tok.Value, "("), Start: pos}
				argStart = pos + len(tok.Value)
			}
			depth++
		case scanner.TokenChar:
			switch tok.Value {
			case "(":
				if depth > 0 {
					depth++
				}
			case ")":
				if depth == 0 {
					return terms, fmt.Errorf("%w: unbalanced ')' in %q", ErrMalformedTransform, s)
				}
				depth--
				if depth == 0 {
					term.Args = s[argStart:pos]
					term.End = pos + 1
					terms = append(terms, term)
				}
			}
		}
		pos += len(tok.Value)
	}
}

// SetTransform sets the term for transform function name to name(value)
// within the transform string existing.
//
// If existing has no term for name, an empty term is appended first. Only the
// first term for name is replaced; all other terms are left as they are.
// Requesting an unsupported transform function results in an
// *UnsupportedTransformError and existing is returned unchanged.
func SetTransform(existing string, name string, value string) (string, error) {
	tf, ok := LookupTransform(name)
	if !ok {
		return existing, &UnsupportedTransformError{Name: name}
	}
	s := existing
	if strings.TrimSpace(s) == "none" {
		s = ""
	}
	terms, err := ParseTransform(s)
	if err != nil {
		return existing, err
	}
	at := -1
	for i, t := range terms {
		if strings.EqualFold(t.Name, string(tf)) {
			at = i
			break
		}
	}
	if at < 0 {
		tracer().Debugf("appending transform term %s()", tf)
		if strings.TrimSpace(s) != "" && !strings.HasSuffix(s, " ") {
			s += " "
		}
		return s + string(tf) + "(" + value + ")", nil
	}
	t := terms[at]
	return s[:t.Start] + string(tf) + "(" + value + ")" + s[t.End:], nil
}
