package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/num"
)

// Dimen interprets a property as a CSS numeric value, e.g. "120px".
func (p Property) Dimen() (css.Dimen, error) {
	return css.ParseDimen(p.String())
}

// PxValue returns the pixel value of a property, with ok=false for values
// which are not absolute lengths ("auto", "50%", …).
func (p Property) PxValue() (float64, bool) {
	d, err := p.Dimen()
	if err != nil {
		return 0, false
	}
	if d.IsPx() || (d.Unit == "" && d.Value == 0) {
		return d.Value, true
	}
	return 0, false
}

// HexColor returns the color of a property as a lowercase hex code without
// leading '#', suitable for num.HexColorAt. Recognized are hex codes, rgb()
// and rgba() functions and a small set of color names.
func (p Property) HexColor() (string, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	if hex, ok := namedColors[s]; ok {
		return hex, nil
	}
	if strings.HasPrefix(s, "rgb") {
		hex, err := num.RGBToHex(s)
		if err != nil {
			return "", err
		}
		return strings.TrimPrefix(hex, "#"), nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 { // short notation
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if _, err := num.HexToRGB(s); err != nil {
		return "", fmt.Errorf("%q is not a color: %w", p, err)
	}
	return s, nil
}

var namedColors = map[string]string{
	"black":       "000000",
	"white":       "ffffff",
	"red":         "ff0000",
	"green":       "008000",
	"blue":        "0000ff",
	"gray":        "808080",
	"grey":        "808080",
	"yellow":      "ffff00",
	"orange":      "ffa500",
	"purple":      "800080",
	"powderblue":  "b0e0e6",
	"transparent": "00000000",
}
