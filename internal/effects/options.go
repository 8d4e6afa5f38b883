package effects

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ivlev/pptxanim/internal/timing"
)

// Speed durations in milliseconds, as offered by presentation editors.
var speeds = map[string]int{
	"veryFast": 500,
	"fast":     1000,
	"medium":   2000,
	"slow":     3000,
	"verySlow": 5000,
}

const defaultSpeed = "medium"

// Duration is either a symbolic speed or an explicit length in seconds.
// It is resolved only when the behavior is written.
type Duration struct {
	Speed    string
	Seconds  float64
	Explicit bool
}

// SpeedDuration returns a duration named by one of the editor speeds.
func SpeedDuration(name string) Duration {
	return Duration{Speed: name}
}

// ExplicitDuration returns a duration of the given seconds.
func ExplicitDuration(seconds float64) Duration {
	return Duration{Seconds: seconds, Explicit: true}
}

// Millis resolves the duration. Unknown speed names resolve to medium.
func (d Duration) Millis() int {
	if d.Explicit {
		return timing.Millis(d.Seconds)
	}
	if ms, ok := speeds[d.Speed]; ok {
		return ms
	}
	return speeds[defaultSpeed]
}

// Tag returns the duration as a cTn attribute.
func (d Duration) Tag() string {
	return fmt.Sprintf("dur='%d'", d.Millis())
}

func (d Duration) String() string {
	if d.Explicit {
		return strconv.FormatFloat(d.Seconds, 'f', -1, 64) + "s"
	}
	return d.Speed
}

// Extras holds the settings whose meaning belongs to a single effect.
type Extras struct {
	Direction string
}

// Configuration is the state an effect is built from.
type Configuration struct {
	Trigger  timing.Trigger
	Delay    float64
	HasDelay bool
	Duration Duration
	Extras   Extras
}

// Condition builds the start-condition fragment for this configuration.
func (c Configuration) Condition() string {
	return timing.Condition(c.Trigger, c.Delay, c.HasDelay)
}

// KeyHandler handles an effect-specific option word. It receives the text
// after the first ':' of the directive, or "" for a bare word.
type KeyHandler func(x *Extras, value string)

// KeyTable maps option words to handlers for one effect type.
type KeyTable map[string]KeyHandler

// apply runs one directive against the configuration. Malformed numbers
// and words with no handler are ignored; a later directive always
// overwrites an earlier one on the same field.
func (c *Configuration) apply(directive string, keys KeyTable) {
	word, value, _ := strings.Cut(strings.TrimPrefix(directive, "/"), ":")

	if t, ok := timing.ParseTrigger(word); ok {
		c.Trigger = t
		return
	}

	switch word {
	case "delay":
		if secs, ok := parseSeconds(value); ok {
			c.Delay = secs
			c.HasDelay = true
		}
		return
	case "duration":
		if secs, ok := parseSeconds(value); ok {
			c.Duration = ExplicitDuration(secs)
		}
		return
	}

	if h, ok := keys[word]; ok {
		h(&c.Extras, value)
	}
}

// maxSeconds keeps every millisecond value within a 32-bit attribute.
const maxSeconds = math.MaxInt32 / 1000

func parseSeconds(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > maxSeconds {
		return 0, false
	}
	return v, true
}

// setDirection returns a handler that fixes the direction to dir.
func setDirection(dir string) KeyHandler {
	return func(x *Extras, _ string) {
		x.Direction = dir
	}
}
