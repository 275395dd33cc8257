package css

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetTransformOnEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.css")
	defer teardown()
	//
	s, err := SetTransform("", "translateX", "10px")
	if err != nil {
		t.Fatal(err)
	}
	if s != "translateX(10px)" {
		t.Errorf("expected translateX(10px), is %q", s)
	}
}

func TestSetTransformKeepsOtherTerms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "animsync.css")
	defer teardown()
	//
	s, _ := SetTransform("translateX(5px) rotate(20deg)", "rotate", "0deg")
	if s != "translateX(5px) rotate(0deg)" {
		t.Errorf("expected translateX(5px) rotate(0deg), is %q", s)
	}
	s, _ = SetTransform("translateX(5px) rotate(20deg)", "translateX", "7px")
	if s != "translateX(7px) rotate(20deg)" {
		t.Errorf("expected translateX(7px) rotate(20deg), is %q", s)
	}
	s, _ = SetTransform("translateX(5px) rotate(20deg)", "scale", "1.5")
	if s != "translateX(5px) rotate(20deg) scale(1.5)" {
		t.Errorf("expected scale to be appended, is %q", s)
	}
}

func TestSetTransformDistinguishesPrefixes(t *testing.T) {
	s, _ := SetTransform("rotateX(10deg)", "rotate", "5deg")
	if s != "rotateX(10deg) rotate(5deg)" {
		t.Errorf("expected rotate next to rotateX, is %q", s)
	}
	s, _ = SetTransform("scale(2) scaleX(3)", "scaleX", "1")
	if s != "scale(2) scaleX(1)" {
		t.Errorf("expected only scaleX to change, is %q", s)
	}
	s, _ = SetTransform("matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1)", "matrix", "1,0,0,1,0,0")
	if s != "matrix3d(1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1) matrix(1,0,0,1,0,0)" {
		t.Errorf("expected matrix next to matrix3d, is %q", s)
	}
}

func TestSetTransformNested(t *testing.T) {
	s, err := SetTransform("translateY(calc(100% - 4px)) skew(3deg, 4deg)", "translateY", "0px")
	if err != nil {
		t.Fatal(err)
	}
	if s != "translateY(0px) skew(3deg, 4deg)" {
		t.Errorf("expected nested calc() to be replaced as a whole, is %q", s)
	}
}

func TestSetTransformCaseInsensitive(t *testing.T) {
	s, _ := SetTransform("TRANSLATEX(1px)", "translatex", "2px")
	if s != "translateX(2px)" {
		t.Errorf("expected canonical translateX(2px), is %q", s)
	}
}

func TestSetTransformNone(t *testing.T) {
	s, _ := SetTransform("none", "skew", "0deg, 5deg")
	if s != "skew(0deg, 5deg)" {
		t.Errorf("expected 'none' to be replaced, is %q", s)
	}
}

func TestSetTransformUnsupported(t *testing.T) {
	s, err := SetTransform("rotate(1deg)", "wiggle", "3")
	var unsupported *UnsupportedTransformError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTransformError, is %v", err)
	}
	if unsupported.Name != "wiggle" || s != "rotate(1deg)" {
		t.Errorf("expected input to be left alone, is %q", s)
	}
}

func TestParseTransformMalformed(t *testing.T) {
	if _, err := ParseTransform("rotate(3deg"); !errors.Is(err, ErrMalformedTransform) {
		t.Errorf("expected unclosed term to fail, error is %v", err)
	}
	terms, err := ParseTransform("translateX(5px)  rotate(20deg)")
	if err != nil || len(terms) != 2 {
		t.Fatalf("expected 2 terms, have %v (%v)", terms, err)
	}
	if terms[1].Name != "rotate" || terms[1].Args != "20deg" || terms[1].Start != 17 {
		t.Errorf("unexpected second term %#v", terms[1])
	}
}

func TestDimen(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Dimen
	}{
		{"120px", Px(120)},
		{"-4.5deg", Deg(-4.5)},
		{"50%", Percent(50)},
		{"3", Unitless(3)},
		{".5EM", Of(0.5, "em")},
	} {
		d, err := ParseDimen(c.in)
		if err != nil || d != c.want {
			t.Errorf("expected %q to parse to %v, is %v (%v)", c.in, c.want, d, err)
		}
	}
	if _, err := ParseDimen("auto"); !errors.Is(err, ErrNotADimension) {
		t.Errorf("expected 'auto' not to be a dimension, error is %v", err)
	}
	if s := Px(50).String(); s != "50px" {
		t.Errorf("expected 50px, is %q", s)
	}
	if s := Percent(-0.0).String(); s != "0%" {
		t.Errorf("expected 0%%, is %q", s)
	}
	a, b := 0.1, 0.2
	if s := Number(a + b); s != "0.30000000000000004" {
		t.Errorf("expected shortest representation, is %q", s)
	}
}
