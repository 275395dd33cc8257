package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/easing"
	"gopkg.in/yaml.v3"
)

// Errors of script validation.
var (
	ErrNoAction        = errors.New("step has no action")
	ErrAmbiguousStep   = errors.New("step has more than one action")
	ErrInvalidStep     = errors.New("invalid step")
	ErrInvalidDuration = errors.New("invalid duration")
)

// Script is a sequence of animation steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is a single action, optionally preceded by a change of selection.
// Exactly one of the action fields must be set.
type Step struct {
	Select      string            `yaml:"select,omitempty"`
	Change      *ChangeStep       `yaml:"change,omitempty"`
	Typewriter  *TypewriterStep   `yaml:"typewriter,omitempty"`
	PartReveal  *PartRevealStep   `yaml:"partReveal,omitempty"`
	Transform   map[string]string `yaml:"transform,omitempty"`
	AddClass    Words             `yaml:"addClass,omitempty"`
	RemoveClass Words             `yaml:"removeClass,omitempty"`
	ToggleClass Words             `yaml:"toggleClass,omitempty"`
	SetVar      map[string]string `yaml:"setVar,omitempty"`
	Inline      Words             `yaml:"inline,omitempty"`
	Wait        *Duration         `yaml:"wait,omitempty"`
}

// ChangeStep interpolates numeric properties and colors.
type ChangeStep struct {
	Duration Duration              `yaml:"duration"`
	Next     *Duration             `yaml:"next,omitempty"`
	Easing   string                `yaml:"easing,omitempty"`
	Unit     string                `yaml:"unit,omitempty"`
	From     map[string]float64    `yaml:"from"`
	To       map[string]float64    `yaml:"to"`
	Colors   map[string]ColorRange `yaml:"colors,omitempty"`
}

// ColorRange is the start and end color of a color property.
type ColorRange struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// TypewriterStep types text into the selected elements.
type TypewriterStep struct {
	Text     string   `yaml:"text"`
	Duration Duration `yaml:"duration"`
	Shift    int      `yaml:"shift,omitempty"`
	Easing   string   `yaml:"easing,omitempty"`
}

// PartRevealStep reveals the selected elements.
type PartRevealStep struct {
	Duration  Duration `yaml:"duration"`
	Translate float64  `yaml:"translate"` // percent
	Skew      float64  `yaml:"skew"`      // degrees
	Easing    string   `yaml:"easing,omitempty"`
}

// Duration is a time.Duration which reads from YAML either as a Go duration
// string ("1.5s", "300ms") or as a number of milliseconds.
type Duration time.Duration

// UnmarshalYAML is part of interface yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w at line %d: expected scalar", ErrInvalidDuration, node.Line)
	}
	if ms, err := strconv.ParseFloat(node.Value, 64); err == nil {
		*d = Duration(ms * float64(time.Millisecond))
		return nil
	}
	dur, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("%w at line %d: %v", ErrInvalidDuration, node.Line, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML is part of interface yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Words is a list of strings, which reads from YAML either as a sequence or
// as a single scalar.
type Words []string

// UnmarshalYAML is part of interface yaml.Unmarshaler.
func (w *Words) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*w = Words{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*w = list
		return nil
	}
	return fmt.Errorf("%w at line %d: expected word or list of words", ErrInvalidStep, node.Line)
}

// Action returns the name of the step's action, or "" if none is set.
func (st Step) Action() string {
	actions := st.actions()
	if len(actions) != 1 {
		return ""
	}
	return actions[0]
}

func (st Step) actions() []string {
	var actions []string
	add := func(set bool, name string) {
		if set {
			actions = append(actions, name)
		}
	}
	add(st.Change != nil, "change")
	add(st.Typewriter != nil, "typewriter")
	add(st.PartReveal != nil, "partReveal")
	add(len(st.Transform) > 0, "transform")
	add(len(st.AddClass) > 0, "addClass")
	add(len(st.RemoveClass) > 0, "removeClass")
	add(len(st.ToggleClass) > 0, "toggleClass")
	add(len(st.SetVar) > 0, "setVar")
	add(len(st.Inline) > 0, "inline")
	add(st.Wait != nil, "wait")
	return actions
}

// Validate checks that every step has exactly one action and that timing
// functions and transform names are known.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch actions := st.actions(); len(actions) {
	case 0:
		return ErrNoAction
	case 1:
	default:
		return fmt.Errorf("%w: %v", ErrAmbiguousStep, actions)
	}
	var curve string
	switch {
	case st.Change != nil:
		if len(st.Change.From) == 0 && len(st.Change.Colors) == 0 {
			return fmt.Errorf("%w: change without properties", ErrInvalidStep)
		}
		curve = st.Change.Easing
	case st.Typewriter != nil:
		if st.Typewriter.Shift < 0 {
			return fmt.Errorf("%w: negative shift", ErrInvalidStep)
		}
		curve = st.Typewriter.Easing
	case st.PartReveal != nil:
		curve = st.PartReveal.Easing
	case len(st.Transform) > 0:
		for name := range st.Transform {
			if _, ok := css.LookupTransform(name); !ok {
				return &css.UnsupportedTransformError{Name: name}
			}
		}
	}
	if curve != "" {
		if _, err := easing.Parse(curve); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads and validates a script.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	script := &Script{}
	if err := dec.Decode(script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot parse scene: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("scene has %d step(s)", len(script.Steps))
	return script, nil
}

// ParseString reads and validates a script from a string.
func ParseString(s string) (*Script, error) {
	return Parse(bytes.NewBufferString(s))
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// String returns the script in YAML format.
func (s *Script) String() string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<invalid scene: %v>", err)
	}
	return string(out)
}
