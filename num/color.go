package num

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedColor is returned for color strings which cannot be decomposed
// into color components.
var ErrMalformedColor = errors.New("malformed color")

// chunks splits s into pairs of characters; an odd trailing character
// forms a chunk of its own.
func chunks(s string) []string {
	parts := make([]string, 0, (len(s)+1)/2)
	for len(s) > 2 {
		parts = append(parts, s[:2])
		s = s[2:]
	}
	if len(s) > 0 {
		parts = append(parts, s)
	}
	return parts
}

func parseHexComponents(hex string) ([]int, error) {
	parts := chunks(hex)
	comps := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedColor, hex, err)
		}
		comps[i] = int(n)
	}
	return comps, nil
}

// HexToRGB takes a hex color code (6 or 8 digits, optionally prefixed
// with '#') and returns a CSS color function.
//
//	HexToRGB("#4cddca")   // rgb(76, 221, 202)
//	HexToRGB("4cddca80")  // rgba(76, 221, 202, 0.501)
//
// An alpha byte is normalized to [0,1], and its decimal representation is
// truncated to 5 characters.
func HexToRGB(hex string) (string, error) {
	hex = strings.TrimPrefix(hex, "#")
	comps, err := parseHexComponents(hex)
	if err != nil {
		return "", err
	}
	if len(comps) != 3 && len(comps) != 4 {
		return "", fmt.Errorf("%w: %q has %d components", ErrMalformedColor, hex, len(comps))
	}
	parts := make([]string, len(comps))
	for i := 0; i < 3; i++ {
		parts[i] = strconv.Itoa(comps[i])
	}
	if len(comps) == 3 {
		return "rgb(" + strings.Join(parts, ", ") + ")", nil
	}
	// alpha is read as a hex byte like r, g and b; earlier versions read it base 10
	alpha := strconv.FormatFloat(float64(comps[3])/255, 'f', -1, 64)
	if len(alpha) > 5 {
		alpha = alpha[:5]
	}
	parts[3] = alpha
	return "rgba(" + strings.Join(parts, ", ") + ")", nil
}

var rgbNoise = strings.NewReplacer("rgba", "", "rgb", "", "(", "", ")", "", " ", "")

// RGBToHex takes a CSS rgb() or rgba() function and returns a hex color code,
// including a leading '#'.
//
//	RGBToHex("rgb(76, 221, 202)") // #4cddca
//
// An alpha channel in [0,1] is scaled to 255 and its integer part is written
// in hex without padding; fractional precision is lost.
func RGBToHex(s string) (string, error) {
	comps := strings.Split(rgbNoise.Replace(s), ",")
	if len(comps) != 3 && len(comps) != 4 {
		return "", fmt.Errorf("%w: %q has %d components", ErrMalformedColor, s, len(comps))
	}
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(comps[i])
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrMalformedColor, s, err)
		}
		comps[i] = HexByte(n)
	}
	if len(comps) == 4 {
		a, err := strconv.ParseFloat(comps[3], 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrMalformedColor, s, err)
		}
		comps[3] = strconv.FormatInt(int64(math.Trunc(a*255)), 16)
	}
	return "#" + strings.Join(comps, ""), nil
}

// HexColorAt returns the color between two hex color codes (without '#')
// at progress t of a transition.
//
//	HexColorAt(0.5, "000000", "ffffff") // 7f7f7f
//
// from and to must have the same number of components.
func HexColorAt(t float64, from, to string) (string, error) {
	f, err := parseHexComponents(from)
	if err != nil {
		return "", err
	}
	g, err := parseHexComponents(to)
	if err != nil {
		return "", err
	}
	if len(f) != len(g) {
		return "", fmt.Errorf("%w: cannot interpolate %q to %q", ErrMalformedColor, from, to)
	}
	var b strings.Builder
	for i := range g {
		b.WriteString(HexByte(int(math.Floor(Lerp(t, float64(f[i]), float64(g[i]))))))
	}
	return b.String(), nil
}
