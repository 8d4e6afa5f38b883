package effects

import "fmt"

var fadeInKeys = KeyTable{
	"across": setDirection("across"),
	"down":   setDirection("down"),
}

// FadeIn makes the shape appear gradually.
//
// Options: onClick, afterPrev, withPrev, delay:<sec>, duration:<sec>,
// across, down.
type FadeIn struct {
	Base
}

func NewFadeIn(shape Shape) *FadeIn {
	e := &FadeIn{Base: newBase("FadeIn", "presetID='10' presetClass='entr' presetSubtype='10'", shape, fadeInKeys)}
	e.config.Duration = SpeedDuration("medium")
	e.config.Extras.Direction = "across"
	return e
}

func (e *FadeIn) DumpBehavior(sink Sink, cond string) error {
	if err := e.begin(); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	e.writeVisibility(sink, cond, "visible")
	e.writeAnimEffect(sink, "in", "fade")
	return nil
}
