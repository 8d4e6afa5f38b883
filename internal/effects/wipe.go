package effects

import "fmt"

// Wipe reveals the shape edge by edge. The side it is revealed from is
// fixed per registered name, since editors record it in the preset
// subtype.
type Wipe struct {
	Base
}

// wipeSides maps the side a wipe starts from to its preset subtype and the
// direction the wipe travels.
var wipeSides = map[string]struct {
	subtype int
	travel  string
}{
	"Top":    {1, "down"},
	"Right":  {2, "left"},
	"Bottom": {4, "up"},
	"Left":   {8, "right"},
}

// NewWipe returns a wipe from the given side: Top, Right, Bottom or Left.
// An unknown side is treated as Bottom.
func NewWipe(side string, shape Shape) *Wipe {
	w, ok := wipeSides[side]
	if !ok {
		side = "Bottom"
		w = wipeSides[side]
	}
	preset := fmt.Sprintf("presetID='22' presetClass='entr' presetSubtype='%d'", w.subtype)
	e := &Wipe{Base: newBase("WipeFrom"+side, preset, shape, nil)}
	e.config.Duration = SpeedDuration("medium")
	e.config.Extras.Direction = w.travel
	return e
}

func (e *Wipe) DumpBehavior(sink Sink, cond string) error {
	if err := e.begin(); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	e.writeVisibility(sink, cond, "visible")
	e.writeAnimEffect(sink, "in", "wipe("+e.config.Extras.Direction+")")
	return nil
}
