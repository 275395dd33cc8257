package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone checks for keyword "none".
func (p Property) IsNone() bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), "none")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

// --- Declarations -----------------------------------------------------

// Declarations is an ordered list of style properties, as found in an
// element's style attribute. Keys are unique. nil is a legal (empty) list
// for reading.
type Declarations struct {
	decls []KeyValue
}

// ParseDeclarations parses the content of a style attribute, e.g.
//
//	"transform: rotate(3deg); opacity: 0.5"
//
// A later declaration for a key overrides an earlier one.
func ParseDeclarations(text string) (*Declarations, error) {
	d := &Declarations{}
	text = strings.TrimSpace(text)
	if text == "" {
		return d, nil
	}
	if !strings.HasSuffix(text, ";") { // parser would drop the last value otherwise
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return d, fmt.Errorf("malformed style declarations %q: %w", text, err)
	}
	for _, decl := range decls {
		if decl.Property == "" {
			continue
		}
		d.set(KeyValue{
			Key:       PropertyKey(decl.Property),
			Value:     Property(decl.Value),
			Important: decl.Important,
		})
	}
	return d, nil
}

// Len returns the number of declarations.
func (d *Declarations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.decls)
}

// Get a property's value.
func (d *Declarations) Get(key string) (Property, bool) {
	if d == nil {
		return NullStyle, false
	}
	key = PropertyKey(key)
	for _, kv := range d.decls {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value in place, if present,
// keeping its priority; otherwise appends the property. Setting an empty
// value removes the property.
func (d *Declarations) Set(key string, p Property) {
	if p.IsEmpty() {
		d.Remove(key)
		return
	}
	kv := KeyValue{Key: PropertyKey(key), Value: p}
	for _, old := range d.decls {
		if old.Key == kv.Key {
			kv.Important = old.Important
			break
		}
	}
	d.set(kv)
}

// PropertyKey normalizes a property name. Property names are
// case-insensitive, except for custom properties ("--name").
func PropertyKey(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}

func (d *Declarations) set(kv KeyValue) {
	for i := range d.decls {
		if d.decls[i].Key == kv.Key {
			d.decls[i] = kv
			return
		}
	}
	d.decls = append(d.decls, kv)
}

// Remove deletes a property, returning true if it had been present.
func (d *Declarations) Remove(key string) bool {
	key = PropertyKey(key)
	for i, kv := range d.decls {
		if kv.Key == key {
			d.decls = append(d.decls[:i], d.decls[i+1:]...)
			return true
		}
	}
	return false
}

// Properties returns a copy of all declarations, in order.
func (d *Declarations) Properties() []KeyValue {
	if d == nil {
		return nil
	}
	r := make([]KeyValue, len(d.decls))
	copy(r, d.decls)
	return r
}

// String serializes the declarations into style attribute format.
func (d *Declarations) String() string {
	if d.Len() == 0 {
		return ""
	}
	parts := make([]string, len(d.decls))
	for i, kv := range d.decls {
		decl := css.Declaration{Property: kv.Key, Value: kv.Value.String(), Important: kv.Important}
		parts[i] = decl.String()
	}
	return strings.Join(parts, " ")
}

// --- Compound properties ----------------------------------------------

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "--") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "visibility", "white-space":
		return true
	case "letter-spacing", "line-height", "quotes", "font-size", "font-family":
		return true
	case "word-spacing", "word-break", "word-wrap":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompountProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left  " => "3px"
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "inset":
		return feazeCompound4("", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound is true for shortcut properties SplitCompoundProperty can split.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "inset", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	// index of the field serving top/right/bottom/left, by number of fields
	pick := [5][4]int{
		{},
		{0, 0, 0, 0},
		{0, 1, 0, 1},
		{0, 1, 2, 1},
		{0, 1, 2, 3},
	}
	r := make([]KeyValue, 4)
	for i := range r {
		r[i] = KeyValue{Key: p(pre, suf, dirs[i]), Value: Property(fields[pick[l][i]])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if prefix == "" && suffix == "" {
		return tag
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
