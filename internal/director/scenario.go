package director

import "fmt"

// Scenario describes the animations of a whole presentation
type Scenario struct {
	Version string  `yaml:"version"`
	Slides  []Slide `yaml:"slides"`
}

// Slide lists the shapes of one slide and the animations applied to them
// in click-sequence order
type Slide struct {
	ID         int         `yaml:"id"`
	Shapes     []Shape     `yaml:"shapes"`
	Animations []Animation `yaml:"animations"`
}

// Shape is a shape already placed on the slide
type Shape struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

func (s Shape) ShapeID() int {
	return s.ID
}

// Animation applies one named effect to a shape
type Animation struct {
	Shape   int      `yaml:"shape"`   // Shape ID
	Effect  string   `yaml:"effect"`  // Registered effect name
	Options []string `yaml:"options"` // Option directives, applied in order
}

// FindShape looks up a shape on the slide by id
func (s *Slide) FindShape(id int) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.ID == id {
			return sh, true
		}
	}
	return Shape{}, false
}

// Validate checks that slide ids are unique and every animation refers to
// a declared shape
func (sc *Scenario) Validate() error {
	seen := make(map[int]bool)
	for _, slide := range sc.Slides {
		if seen[slide.ID] {
			return fmt.Errorf("duplicate slide id %d", slide.ID)
		}
		seen[slide.ID] = true

		for i, a := range slide.Animations {
			if _, ok := slide.FindShape(a.Shape); !ok {
				return fmt.Errorf("slide %d animation %d: unknown shape %d", slide.ID, i+1, a.Shape)
			}
		}
	}
	return nil
}

// ExampleScenario returns a small scenario showing the option syntax
func ExampleScenario() *Scenario {
	return &Scenario{
		Version: "1.0",
		Slides: []Slide{
			{
				ID: 1,
				Shapes: []Shape{
					{ID: 2, Name: "Title"},
					{ID: 3, Name: "Body"},
					{ID: 4, Name: "Logo"},
				},
				Animations: []Animation{
					{Shape: 2, Effect: "FadeIn", Options: []string{"onClick", "duration:1"}},
					{Shape: 3, Effect: "WipeFromBottom", Options: []string{"afterPrev", "delay:0.5"}},
					{Shape: 4, Effect: "ZoomIn", Options: []string{"withPrev"}},
				},
			},
		},
	}
}
