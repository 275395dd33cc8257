package num

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestLerp(t *testing.T) {
	if x := Lerp(0.5, 20, 70); x != 45 {
		t.Errorf("expected Lerp(0.5, 20, 70) to be 45, is %v", x)
	}
	if x := Lerp(0, -3, 8); x != -3 {
		t.Errorf("expected Lerp(0, from, to) to be from, is %v", x)
	}
	if x := Lerp(1, -3, 8); x != 8 {
		t.Errorf("expected Lerp(1, from, to) to be to, is %v", x)
	}
	if x := Lerp(1.5, 0, 10); x != 15 {
		t.Errorf("expected Lerp to overshoot to 15, is %v", x)
	}
	prev := Lerp(0, 10, 20)
	for i := 1; i <= 100; i++ {
		x := Lerp(float64(i)/100, 10, 20)
		if x < prev {
			t.Fatalf("expected Lerp to be monotonic, %v < %v at step %d", x, prev, i)
		}
		prev = x
	}
}

func TestClamp(t *testing.T) {
	for _, c := range []struct{ v, want float64 }{{-1, 0}, {5, 5}, {11, 10}} {
		if x := Clamp(c.v, 0, 10); x != c.want {
			t.Errorf("expected Clamp(%v, 0, 10) to be %v, is %v", c.v, c.want, x)
		}
	}
}

func TestAverage(t *testing.T) {
	if avg := Average(1, 2, 3, 4); avg != 2.5 {
		t.Errorf("expected average of 1…4 to be 2.5, is %v", avg)
	}
	if avg := Average(); !math.IsNaN(avg) {
		t.Errorf("expected average of nothing to be NaN, is %v", avg)
	}
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		n := RandomWith(r, 3, 6)
		if n < 3 || n > 6 {
			t.Fatalf("expected random number in [3,6], is %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all of 3…6 to be drawn, got %v", seen)
	}
	if n := Random(1, 1); n != 1 {
		t.Errorf("expected Random(1,1) to be 1, is %d", n)
	}
}

func TestHexByte(t *testing.T) {
	if h := HexByte(5); h != "05" {
		t.Errorf("expected 05, is %q", h)
	}
	if h := HexByte(221); h != "dd" {
		t.Errorf("expected dd, is %q", h)
	}
}

func TestHexToRGB(t *testing.T) {
	rgb, err := HexToRGB("#4cddca")
	if err != nil || rgb != "rgb(76, 221, 202)" {
		t.Errorf("expected rgb(76, 221, 202), is %q (%v)", rgb, err)
	}
	rgba, err := HexToRGB("4cddca80")
	if err != nil || rgba != "rgba(76, 221, 202, 0.501)" {
		t.Errorf("expected rgba(76, 221, 202, 0.501), is %q (%v)", rgba, err)
	}
	rgba, _ = HexToRGB("000000ff")
	if rgba != "rgba(0, 0, 0, 1)" {
		t.Errorf("expected opaque alpha to be 1, is %q", rgba)
	}
	if _, err = HexToRGB("#4cdzca"); !errors.Is(err, ErrMalformedColor) {
		t.Errorf("expected malformed hex to fail, error is %v", err)
	}
}

func TestRGBToHex(t *testing.T) {
	hex, err := RGBToHex("rgb(76, 221, 202)")
	if err != nil || hex != "#4cddca" {
		t.Errorf("expected #4cddca, is %q (%v)", hex, err)
	}
	hex, _ = RGBToHex("rgba(76, 221, 202, 0.5)")
	if hex != "#4cddca7f" {
		t.Errorf("expected truncated alpha 7f, is %q", hex)
	}
	if _, err = RGBToHex("rgb(1, 2)"); !errors.Is(err, ErrMalformedColor) {
		t.Errorf("expected rgb with two components to fail, error is %v", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	rgb, _ := HexToRGB("#4CDDCA")
	hex, _ := RGBToHex(rgb)
	if hex != "#4cddca" {
		t.Errorf("expected round trip to reproduce #4cddca, is %q", hex)
	}
}

func TestHexColorAt(t *testing.T) {
	c, err := HexColorAt(0.5, "000000", "ffffff")
	if err != nil || c != "7f7f7f" {
		t.Errorf("expected 7f7f7f, is %q (%v)", c, err)
	}
	c, _ = HexColorAt(1, "102030", "405060")
	if c != "405060" {
		t.Errorf("expected target color at t=1, is %q", c)
	}
	if _, err = HexColorAt(0.5, "000000", "ffffffff"); err == nil {
		t.Error("expected component count mismatch to fail")
	}
}
