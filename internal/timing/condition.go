package timing

import (
	"fmt"
	"math"
)

// Trigger says when an effect starts relative to the user and its siblings.
type Trigger int

const (
	OnClick Trigger = iota
	AfterPrevious
	WithPrevious
)

func (t Trigger) String() string {
	switch t {
	case AfterPrevious:
		return "afterPrev"
	case WithPrevious:
		return "withPrev"
	default:
		return "onClick"
	}
}

// NodeType returns the cTn nodeType a click group uses for this trigger.
func (t Trigger) NodeType() string {
	switch t {
	case AfterPrevious:
		return "afterEffect"
	case WithPrevious:
		return "withEffect"
	default:
		return "clickEffect"
	}
}

// event returns the trigger event the start condition is keyed to.
func (t Trigger) event() string {
	switch t {
	case AfterPrevious:
		return "onEnd"
	case WithPrevious:
		return "onBegin"
	default:
		return "onNext"
	}
}

// ParseTrigger maps an option word to a trigger.
func ParseTrigger(word string) (Trigger, bool) {
	switch word {
	case "onClick":
		return OnClick, true
	case "afterPrev":
		return AfterPrevious, true
	case "withPrev":
		return WithPrevious, true
	}
	return OnClick, false
}

// Condition builds the attribute text of a <p:cond/> element for the given
// trigger. The delay is added on top of the trigger event; an unset delay
// is written as zero.
func Condition(t Trigger, delaySeconds float64, hasDelay bool) string {
	ms := 0
	if hasDelay {
		ms = Millis(delaySeconds)
	}
	return fmt.Sprintf("evt='%s' delay='%d'", t.event(), ms)
}

// Millis converts seconds to whole milliseconds, clamped to
// [0, math.MaxInt32]. NaN converts to 0.
func Millis(seconds float64) int {
	ms := math.Round(seconds * 1000)
	switch {
	case math.IsNaN(ms) || ms < 0:
		return 0
	case ms > math.MaxInt32:
		return math.MaxInt32
	}
	return int(ms)
}
