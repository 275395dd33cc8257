package animsync

import (
	"fmt"
	"time"

	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/schuko"
)

// Configuration keys.
const (
	KeyFPS    = "animsync.fps"    // frames per second of a real-time scheduler
	KeyEasing = "animsync.easing" // default timing function, name or cubic-bezier()
	KeyUnit   = "animsync.unit"   // default unit of Change
)

// Config holds defaults for animations.
type Config struct {
	FPS    int
	Easing string
	Unit   string
	timing easing.Func
}

// DefaultConfig returns 60 fps, linear timing and pixel units.
func DefaultConfig() Config {
	return Config{FPS: 60, Easing: "linear", Unit: "px", timing: easing.Linear}
}

// ConfigFrom reads configuration values, falling back to DefaultConfig for
// keys which are not set.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	c := DefaultConfig()
	if conf == nil {
		return c, nil
	}
	if conf.IsSet(KeyFPS) {
		if c.FPS = conf.GetInt(KeyFPS); c.FPS <= 0 {
			return c, fmt.Errorf("%s must be positive, is %q", KeyFPS, conf.GetString(KeyFPS))
		}
	}
	if conf.IsSet(KeyEasing) {
		c.Easing = conf.GetString(KeyEasing)
		f, err := easing.Parse(c.Easing)
		if err != nil {
			return c, fmt.Errorf("%s: %w", KeyEasing, err)
		}
		c.timing = f
	}
	if conf.IsSet(KeyUnit) {
		c.Unit = conf.GetString(KeyUnit)
	}
	tracer().Debugf("config: fps=%d easing=%s unit=%s", c.FPS, c.Easing, c.Unit)
	return c, nil
}

// Timing returns the default timing function.
func (c Config) Timing() easing.Func {
	if c.timing != nil {
		return c.timing
	}
	if f, err := easing.Parse(c.Easing); err == nil {
		return f
	}
	return easing.Linear
}

// FrameInterval returns the time between frames.
func (c Config) FrameInterval() time.Duration {
	return frame.FrameInterval(c.FPS)
}
