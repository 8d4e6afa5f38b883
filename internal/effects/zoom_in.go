package effects

import "fmt"

// ZoomIn grows the shape from a point to its final extent.
type ZoomIn struct {
	Base
}

func NewZoomIn(shape Shape) *ZoomIn {
	e := &ZoomIn{Base: newBase("ZoomIn", "presetID='23' presetClass='entr' presetSubtype='16'", shape, nil)}
	e.config.Extras.Direction = "zoomIn"
	e.config.Duration = SpeedDuration("veryFast")
	return e
}

func (e *ZoomIn) DumpBehavior(sink Sink, cond string) error {
	if err := e.begin(); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	e.writeVisibility(sink, cond, "visible")
	e.writeAnim(sink, "ppt_w", growFrom("ppt_w"))
	e.writeAnim(sink, "ppt_h", growFrom("ppt_h"))
	return nil
}
