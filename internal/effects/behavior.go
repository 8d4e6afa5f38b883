package effects

import "fmt"

// keyframe is one entry of a p:tavLst. Time is in thousandths of a
// percent of the node duration (100000 = end).
type keyframe struct {
	Time  int
	Value string
}

func fltVal(v float64) string {
	return fmt.Sprintf("<p:fltVal val='%g'/>", v)
}

func strVal(v string) string {
	return fmt.Sprintf("<p:strVal val='%s'/>", v)
}

// growFrom returns the two keyframes that scale a property from zero to
// the shape's own extent named by prop.
func growFrom(prop string) []keyframe {
	return []keyframe{
		{Time: 0, Value: fltVal(0)},
		{Time: 100000, Value: strVal("#" + prop)},
	}
}

func (b *Base) writeTarget(sink Sink) {
	sink.Print("<p:tgtEl>")
	sink.Print(fmt.Sprintf("<p:spTgt spid='%d'/>", b.shape.ShapeID()))
	sink.Print("</p:tgtEl>")
}

func writeAttrName(sink Sink, name string) {
	sink.Print("<p:attrNameLst>")
	sink.Print("<p:attrName>" + name + "</p:attrName>")
	sink.Print("</p:attrNameLst>")
}

// writeVisibility writes the set node that flips style.visibility to
// state. It carries the effect's start condition and always lasts one
// millisecond, held.
func (b *Base) writeVisibility(sink Sink, cond, state string) {
	sink.Print("<p:set>")
	sink.Print("<p:cBhvr>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' dur='1' fill='hold'>", sink.NextSequenceID()))
	sink.Print("<p:stCondLst>")
	sink.Print("<p:cond " + cond + "/>")
	sink.Print("</p:stCondLst>")
	sink.Print("</p:cTn>")
	b.writeTarget(sink)
	writeAttrName(sink, "style.visibility")
	sink.Print("</p:cBhvr>")
	sink.Print("<p:to>" + strVal(state) + "</p:to>")
	sink.Print("</p:set>")
}

// writeAnimEffect writes a filtered transition over the effect duration.
func (b *Base) writeAnimEffect(sink Sink, transition, filter string) {
	sink.Print(fmt.Sprintf("<p:animEffect transition='%s' filter='%s'>", transition, filter))
	sink.Print("<p:cBhvr>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' %s/>", sink.NextSequenceID(), b.DurationTag()))
	b.writeTarget(sink)
	sink.Print("</p:cBhvr>")
	sink.Print("</p:animEffect>")
}

// writeAnim writes a linear interpolation of attr through frames over the
// effect duration, held at the final value.
func (b *Base) writeAnim(sink Sink, attr string, frames []keyframe) {
	sink.Print("<p:anim calcmode='lin' valueType='num'>")
	sink.Print("<p:cBhvr>")
	sink.Print(fmt.Sprintf("<p:cTn id='%d' %s fill='hold'/>", sink.NextSequenceID(), b.DurationTag()))
	b.writeTarget(sink)
	writeAttrName(sink, attr)
	sink.Print("</p:cBhvr>")
	sink.Print("<p:tavLst>")
	for _, kf := range frames {
		sink.Print(fmt.Sprintf("<p:tav tm='%d'>", kf.Time))
		sink.Print("<p:val>" + kf.Value + "</p:val>")
		sink.Print("</p:tav>")
	}
	sink.Print("</p:tavLst>")
	sink.Print("</p:anim>")
}
