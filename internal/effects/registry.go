package effects

import (
	"fmt"
	"sort"
)

// Constructor builds an effect for a shape with its type defaults applied.
type Constructor func(shape Shape) Effect

var registry = map[string]Constructor{}

// Register associates an effect name with a constructor. It panics on
// duplicate names.
func Register(name string, ctor Constructor) {
	if _, exists := registry[name]; exists {
		panic("effects: duplicate registration for " + name)
	}
	registry[name] = ctor
}

// New creates the named effect for shape and applies directives in order.
func New(name string, shape Shape, directives ...string) (Effect, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, name)
	}
	e := ctor(shape)
	e.ApplyOptions(directives...)
	return e, nil
}

// Names returns the registered effect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("FadeIn", func(s Shape) Effect { return NewFadeIn(s) })
	Register("ZoomIn", func(s Shape) Effect { return NewZoomIn(s) })
	Register("Appear", func(s Shape) Effect { return NewAppear(s) })
	Register("Disappear", func(s Shape) Effect { return NewDisappear(s) })
	for _, side := range []string{"Top", "Right", "Bottom", "Left"} {
		Register("WipeFrom"+side, func(s Shape) Effect { return NewWipe(side, s) })
	}
}
