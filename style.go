package svg2vd

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Style maps CSS property names to raw string values, as parsed from
// an inline style attribute. A Style is transient: it is built fresh
// at each merge step and never mutated afterwards, so sibling subtrees
// can never contaminate each other through a shared parent style.
type Style map[string]string

// ParseStyle parses an inline style attribute into a Style. Well-formed
// input goes through the CSS declaration parser; if the parser rejects
// the string, a lenient fallback splits on semicolons and the first
// colon, silently dropping segments without a colon.
func ParseStyle(s string) Style {
	st := Style{}
	if strings.TrimSpace(s) == "" {
		return st
	}
	if decls, err := parser.ParseDeclarations(s); err == nil {
		for _, d := range decls {
			prop := strings.TrimSpace(d.Property)
			if prop == "" {
				continue
			}
			st[prop] = strings.TrimSpace(d.Value)
		}
		return st
	}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		st[key] = strings.TrimSpace(value)
	}
	return st
}

// Merge returns a new Style combining s (the inherited style) with
// child entries overriding same-key entries. Neither input is
// modified.
func (s Style) Merge(child Style) Style {
	merged := make(Style, len(s)+len(child))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range child {
		merged[k] = v
	}
	return merged
}

// isGradientRef reports whether a fill value is a url(#id) gradient
// reference.
func isGradientRef(v string) bool {
	return strings.HasPrefix(v, "url(")
}

// gradientRefID extracts the id from a url(#id) reference, normalized
// to lowercase. Returns "" when the reference is malformed.
func gradientRefID(v string) string {
	i := strings.Index(v, "#")
	j := strings.Index(v, ")")
	if i < 0 || j < 0 || j <= i {
		return ""
	}
	return strings.ToLower(v[i+1 : j])
}

// fillValue resolves the raw fill value of an element before any
// gradient lookup: inline style first, then the fill attribute, then
// the inherited style. Empty means nothing specified anywhere.
func (c *Converter) fillValue(el *Element, inherited Style) string {
	fill := ownFillValue(el)
	if fill == "" {
		fill = inherited["fill"]
	}
	return fill
}

// ownFillValue resolves the fill the element itself declares, inline
// style over attribute, ignoring the inherited style. Empty means the
// element declares no fill of its own.
func ownFillValue(el *Element) string {
	fill := el.Attr("fill")
	if v, ok := ParseStyle(el.Attr("style"))["fill"]; ok {
		fill = v
	}
	return fill
}

// resolvedStyle is the outcome of fill and stroke resolution for one
// element. Exactly one of fill or gradient is meaningful; both may be
// empty when a gradient reference did not resolve.
type resolvedStyle struct {
	fill        string
	gradient    Gradient
	stroke      string
	strokeWidth string
}

// resolveStyle resolves the fill and stroke of an element.
//
// Fill precedence: inline style > fill attribute > inherited style >
// defaultFill. Stroke follows inline style > stroke attribute but does
// not consult the inherited style; the asymmetry against fill is
// intentional and kept as specified pending product confirmation.
// Stroke width is read from the stroke-width attribute only.
func (c *Converter) resolveStyle(el *Element, defaultFill string, inherited Style) resolvedStyle {
	style := ParseStyle(el.Attr("style"))
	fill := c.fillValue(el, inherited)

	var rs resolvedStyle
	if isGradientRef(fill) {
		rs.gradient = c.gradients.Resolve(gradientRefID(fill), c.viewport)
		if rs.gradient == nil {
			c.warn.add(el.Tag, el.ID(), fmt.Sprintf("unresolvable gradient reference %q", fill))
		}
	} else if fill != "" {
		rs.fill = fill
	} else {
		rs.fill = defaultFill
	}

	stroke := el.Attr("stroke")
	if v, ok := style["stroke"]; ok {
		stroke = v
	}
	rs.stroke = stroke
	rs.strokeWidth = el.Attr("stroke-width")
	return rs
}
