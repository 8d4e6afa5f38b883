package effects

// Shape is the animated object. Only its id is read.
type Shape interface {
	ShapeID() int
}

// Sink receives the XML text of a document and owns the sequence ids of
// its time nodes. *pptx.Stream satisfies it.
type Sink interface {
	Print(text string)
	NextSequenceID() int
}

// Effect is one animated behavior applied to one shape.
type Effect interface {
	// Name is the registry name of the effect type.
	Name() string
	// PresetTag identifies the editor preset this behavior corresponds to.
	// It is constant for a type.
	PresetTag() string
	// DurationTag resolves the configured duration into a cTn attribute.
	DurationTag() string
	Shape() Shape
	Config() Configuration
	// ApplyOptions applies option directives in order. Unknown words are
	// ignored.
	ApplyOptions(directives ...string)
	// DumpBehavior writes the behavior subtree to sink, splicing cond into
	// the single start condition. It may be called once per effect.
	DumpBehavior(sink Sink, cond string) error
}

// Base carries the state shared by every effect type. Concrete effects
// embed it and set their defaults in their constructor before any
// directive is applied.
type Base struct {
	name   string
	preset string
	shape  Shape
	keys   KeyTable
	config Configuration
	dumped bool
}

func newBase(name, preset string, shape Shape, keys KeyTable) Base {
	return Base{
		name:   name,
		preset: preset,
		shape:  shape,
		keys:   keys,
	}
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) PresetTag() string {
	return b.preset
}

func (b *Base) DurationTag() string {
	return b.config.Duration.Tag()
}

func (b *Base) Shape() Shape {
	return b.shape
}

func (b *Base) Config() Configuration {
	return b.config
}

// ApplyOptions is a no-op once the behavior has been written.
func (b *Base) ApplyOptions(directives ...string) {
	if b.dumped {
		return
	}
	for _, d := range directives {
		b.config.apply(d, b.keys)
	}
}

// begin guards a DumpBehavior call. A shape whose ShapeID panics, such as
// a nil pointer stored in the interface, counts as unbound.
func (b *Base) begin() error {
	if b.shape == nil || !readable(b.shape) {
		return ErrNoShape
	}
	if b.dumped {
		return ErrAlreadyDumped
	}
	b.dumped = true
	return nil
}

func readable(s Shape) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	s.ShapeID()
	return true
}
