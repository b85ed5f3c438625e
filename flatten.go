package svg2vd

import "fmt"

// flattenGroup layers a group's own transform and style onto the
// inherited ones and flattens its children. The group's transform
// composes after the inherited transform; the group's style overrides
// inherited keys. Both accumulators are fresh values, so sibling
// subtrees never observe each other's merges.
func (c *Converter) flattenGroup(g *Element, m Matrix, inherited Style) []Drawable {
	groupStyle := ParseStyle(g.Attr("style"))
	if _, ok := groupStyle["fill"]; !ok {
		if f := g.Attr("fill"); f != "" {
			groupStyle["fill"] = f
		}
	}
	merged := inherited.Merge(groupStyle)

	if ts := g.Attr("transform"); ts != "" {
		m = m.Mul(ParseTransform(ts))
	}
	return c.flattenChildren(g, m, merged)
}

// flattenChildren walks the children of a group (or of the document
// root, which behaves like one) and produces the flat ordered element
// list. Shape kinds dispatch to the converter; nested groups recurse;
// unsupported renderable kinds are dropped with a warning; everything
// else (defs, gradient definitions, metadata) is skipped silently.
//
// Per-element failures are recovered here: a malformed shape becomes a
// warning and the rest of the document still converts.
func (c *Converter) flattenChildren(el *Element, m Matrix, inherited Style) []Drawable {
	var out []Drawable
	for _, ch := range el.Children {
		if kind, ok := shapeKindFor(ch.Tag); ok {
			pe, err := c.convertShape(kind, ch, m, inherited)
			if err != nil {
				c.warn.add(ch.Tag, ch.ID(), fmt.Sprintf("element skipped: %v", err))
				continue
			}
			if pe != nil {
				out = append(out, pe)
			}
			continue
		}
		switch ch.Tag {
		case "g":
			out = append(out, c.flattenGroup(ch, m, inherited)...)
		case "text", "clippath", "mask", "image":
			c.warn.add(ch.Tag, ch.ID(), fmt.Sprintf("<%s> is not supported, element dropped", ch.Tag))
		default:
			// defs, linearGradient, radialGradient, title, desc, ...
		}
	}
	return out
}
