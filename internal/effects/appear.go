package effects

import "fmt"

// Appear shows the shape at once. Disappear hides it at once.
type Appear struct {
	Base
	state string
}

func NewAppear(shape Shape) *Appear {
	return &Appear{
		Base:  newBase("Appear", "presetID='1' presetClass='entr' presetSubtype='0'", shape, nil),
		state: "visible",
	}
}

func NewDisappear(shape Shape) *Appear {
	return &Appear{
		Base:  newBase("Disappear", "presetID='1' presetClass='exit' presetSubtype='0'", shape, nil),
		state: "hidden",
	}
}

func (e *Appear) DumpBehavior(sink Sink, cond string) error {
	if err := e.begin(); err != nil {
		return fmt.Errorf("%s: %w", e.name, err)
	}
	e.writeVisibility(sink, cond, e.state)
	return nil
}
