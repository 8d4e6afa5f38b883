package director

import (
	"fmt"

	"github.com/ivlev/pptxanim/internal/effects"
)

// EffectFactory creates a configured effect by name.
type EffectFactory func(name string, shape effects.Shape, directives ...string) (effects.Effect, error)

// Director arranges the animations of a slide into a main click sequence
// and writes the slide's <p:timing> element
type Director struct {
	NewEffect EffectFactory
}

// NewDirector creates a Director backed by the effect registry
func NewDirector() *Director {
	return &Director{
		NewEffect: effects.New,
	}
}

// Effects builds the slide's effects in sequence order
func (d *Director) Effects(slide Slide) ([]effects.Effect, error) {
	list := make([]effects.Effect, 0, len(slide.Animations))
	for i, a := range slide.Animations {
		shape, ok := slide.FindShape(a.Shape)
		if !ok {
			return nil, fmt.Errorf("animation %d: unknown shape %d", i+1, a.Shape)
		}
		eff, err := d.NewEffect(a.Effect, shape, a.Options...)
		if err != nil {
			return nil, fmt.Errorf("animation %d: %w", i+1, err)
		}
		list = append(list, eff)
	}
	return list, nil
}

// BuildSlide writes the timing tree of one slide to sink. A slide without
// animations writes nothing.
func (d *Director) BuildSlide(sink effects.Sink, slide Slide) error {
	list, err := d.Effects(slide)
	if err != nil {
		return fmt.Errorf("slide %d: %w", slide.ID, err)
	}
	if len(list) == 0 {
		return nil
	}

	sink.Print("<p:timing>")
	sink.Print("<p:tnLst>")
	sink.Print("<p:par>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' dur='indefinite' restart='never' nodeType='tmRoot'>", sink.NextSequenceID()))
	sink.Print("<p:childTnLst>")
	sink.Print("<p:seq concurrent='1' nextAc='seek'>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' dur='indefinite' nodeType='mainSeq'>", sink.NextSequenceID()))
	sink.Print("<p:childTnLst>")

	for _, eff := range list {
		if err := d.writeGroup(sink, eff); err != nil {
			return fmt.Errorf("slide %d: %w", slide.ID, err)
		}
	}

	sink.Print("</p:childTnLst>")
	sink.Print("</p:cTn>")
	sink.Print("<p:prevCondLst>")
	sink.Print("<p:cond evt='onPrev' delay='0'><p:tgtEl><p:sldTgt/></p:tgtEl></p:cond>")
	sink.Print("</p:prevCondLst>")
	sink.Print("<p:nextCondLst>")
	sink.Print("<p:cond evt='onNext' delay='0'><p:tgtEl><p:sldTgt/></p:tgtEl></p:cond>")
	sink.Print("</p:nextCondLst>")
	sink.Print("</p:seq>")
	sink.Print("</p:childTnLst>")
	sink.Print("</p:cTn>")
	sink.Print("</p:par>")
	sink.Print("</p:tnLst>")
	sink.Print("</p:timing>")
	return nil
}

// writeGroup wraps one effect's behavior in a par node tagged with its
// preset and trigger
func (d *Director) writeGroup(sink effects.Sink, eff effects.Effect) error {
	cfg := eff.Config()

	sink.Print("<p:par>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' %s fill='hold' grpId='0' nodeType='%s'>",
		sink.NextSequenceID(), eff.PresetTag(), cfg.Trigger.NodeType()))
	sink.Print("<p:childTnLst>")
	if err := eff.DumpBehavior(sink, cfg.Condition()); err != nil {
		return err
	}
	sink.Print("</p:childTnLst>")
	sink.Print("</p:cTn>")
	sink.Print("</p:par>")
	return nil
}
