package svg2vd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/svg2vd/internal/pathdata"
)

// shapeKind enumerates the element kinds the shape converter handles.
// The set is closed; dispatch over it is exhaustive.
type shapeKind int

const (
	shapePath shapeKind = iota
	shapePolygon
	shapePolyline
	shapeCircle
	shapeEllipse
	shapeRect
	shapeLine
)

// shapeKindFor maps a lowercased tag name to its shape kind.
func shapeKindFor(tag string) (shapeKind, bool) {
	switch tag {
	case "path":
		return shapePath, true
	case "polygon":
		return shapePolygon, true
	case "polyline":
		return shapePolyline, true
	case "circle":
		return shapeCircle, true
	case "ellipse":
		return shapeEllipse, true
	case "rect":
		return shapeRect, true
	case "line":
		return shapeLine, true
	}
	return 0, false
}

// fmtNum formats a coordinate: integral floats print without a decimal
// part (10, not 10.0), everything else in shortest exact decimal form.
func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseFloatAttr reads a numeric attribute with a default for
// missing/empty values. A present but unparsable value is malformed
// geometry.
func parseFloatAttr(el *Element, name string, def float64) (float64, error) {
	v := el.Attr(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: <%s> attribute %s=%q", ErrMalformedGeometry, el.Tag, name, v)
	}
	return f, nil
}

func newPathElement(d string, rs resolvedStyle) *PathElement {
	return &PathElement{
		Data:        d,
		Fill:        rs.fill,
		Gradient:    rs.gradient,
		StrokeColor: rs.stroke,
		StrokeWidth: rs.strokeWidth,
	}
}

// convertShape converts one shape element under the accumulated
// transform and inherited style. A nil result with nil error means the
// element lacks required geometry and is skipped.
func (c *Converter) convertShape(kind shapeKind, el *Element, m Matrix, inherited Style) (*PathElement, error) {
	switch kind {
	case shapePath:
		return c.convertPath(el, m, inherited)
	case shapePolygon:
		return c.convertPoly(el, m, inherited, true)
	case shapePolyline:
		return c.convertPoly(el, m, inherited, false)
	case shapeCircle:
		return c.convertCircle(el, m, inherited)
	case shapeEllipse:
		return c.convertEllipse(el, m, inherited)
	case shapeRect:
		return c.convertRect(el, m, inherited)
	case shapeLine:
		return c.convertLine(el, m, inherited)
	}
	return nil, nil
}

// convertPath re-parses the d attribute into segments, transforms
// them, and re-serializes, but only when a non-identity transform is
// in effect; otherwise the original data passes through byte for byte.
// The element's own transform attribute is composed with the inherited
// one. A reparse failure keeps the original untransformed data and
// produces a warning rather than aborting the conversion.
func (c *Converter) convertPath(el *Element, m Matrix, inherited Style) (*PathElement, error) {
	d := el.Attr("d")
	if d == "" {
		return nil, nil
	}
	if own := el.Attr("transform"); own != "" {
		m = m.Mul(ParseTransform(own))
	}
	if !m.IsIdentity() {
		segs, err := pathdata.Parse(d)
		if err != nil {
			c.warn.add(el.Tag, el.ID(), fmt.Sprintf("path data not parseable, using untransformed data: %v", err))
		} else {
			segs = pathdata.Transform(segs, func(x, y float64) (float64, float64) {
				p := m.TransformPoint(Pt(x, y))
				return p.X, p.Y
			})
			d = pathdata.Serialize(segs)
		}
	}
	rs := c.resolveStyle(el, "#000000", inherited)
	return newPathElement(d, rs), nil
}

// convertPoly handles polygon (closed) and polyline (open). The points
// list is comma-or-whitespace separated; an odd coordinate count is
// malformed geometry. Open shapes default to no fill so a stroke-only
// polyline is not silently filled.
func (c *Converter) convertPoly(el *Element, m Matrix, inherited Style, closed bool) (*PathElement, error) {
	points := el.Attr("points")
	if strings.TrimSpace(points) == "" {
		return nil, nil
	}
	coords := strings.Fields(strings.ReplaceAll(points, ",", " "))
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: odd coordinate count %d in <%s> points", ErrMalformedGeometry, len(coords), el.Tag)
	}
	var b strings.Builder
	for i := 0; i < len(coords); i += 2 {
		x, errX := strconv.ParseFloat(coords[i], 64)
		y, errY := strconv.ParseFloat(coords[i+1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: bad coordinate pair (%q, %q) in <%s> points", ErrMalformedGeometry, coords[i], coords[i+1], el.Tag)
		}
		if !m.IsIdentity() {
			p := m.TransformPoint(Pt(x, y))
			x, y = p.X, p.Y
		}
		if i == 0 {
			fmt.Fprintf(&b, "M %s %s", fmtNum(x), fmtNum(y))
		} else {
			fmt.Fprintf(&b, " L %s %s", fmtNum(x), fmtNum(y))
		}
	}
	if closed {
		b.WriteString(" Z")
	}
	defaultFill := "#000000"
	if !closed {
		defaultFill = "none"
	}
	rs := c.resolveStyle(el, defaultFill, inherited)
	return newPathElement(b.String(), rs), nil
}

// convertCircle approximates the circle as two 180-degree arcs
// spanning the full diameter.
func (c *Converter) convertCircle(el *Element, m Matrix, inherited Style) (*PathElement, error) {
	if el.Attr("r") == "" {
		return nil, nil
	}
	cx, err := parseFloatAttr(el, "cx", 0)
	if err != nil {
		return nil, err
	}
	cy, err := parseFloatAttr(el, "cy", 0)
	if err != nil {
		return nil, err
	}
	r, err := parseFloatAttr(el, "r", 0)
	if err != nil {
		return nil, err
	}
	if !m.IsIdentity() {
		p := m.TransformPoint(Pt(cx, cy))
		cx, cy = p.X, p.Y
		r = transformedRadius(m, p, r, false)
	}
	d := fmt.Sprintf("M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 -%s 0",
		fmtNum(cx-r), fmtNum(cy),
		fmtNum(r), fmtNum(r), fmtNum(2*r),
		fmtNum(r), fmtNum(r), fmtNum(2*r))
	rs := c.resolveStyle(el, "#000000", inherited)
	return newPathElement(d, rs), nil
}

// convertEllipse uses the same two-arc construction with rx and ry.
// When the ellipse's own fill (attribute or inline style, never
// inherited) is a gradient reference, the referenced gradient's
// geometry is overridden with the transformed center and rx as the
// radius; only its stop colors are kept. A gradient fill inherited
// from a group resolves through the normal gradient path instead.
func (c *Converter) convertEllipse(el *Element, m Matrix, inherited Style) (*PathElement, error) {
	if el.Attr("rx") == "" || el.Attr("ry") == "" {
		return nil, nil
	}
	cx, err := parseFloatAttr(el, "cx", 0)
	if err != nil {
		return nil, err
	}
	cy, err := parseFloatAttr(el, "cy", 0)
	if err != nil {
		return nil, err
	}
	rx, err := parseFloatAttr(el, "rx", 0)
	if err != nil {
		return nil, err
	}
	ry, err := parseFloatAttr(el, "ry", 0)
	if err != nil {
		return nil, err
	}
	if !m.IsIdentity() {
		p := m.TransformPoint(Pt(cx, cy))
		cx, cy = p.X, p.Y
		rx = transformedRadius(m, p, rx, false)
		ry = transformedRadius(m, p, ry, true)
	}
	d := fmt.Sprintf("M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 -%s 0",
		fmtNum(cx-rx), fmtNum(cy),
		fmtNum(rx), fmtNum(ry), fmtNum(2*rx),
		fmtNum(rx), fmtNum(ry), fmtNum(2*rx))

	rs := c.resolveStyle(el, "#000000", inherited)
	if fv := ownFillValue(el); isGradientRef(fv) {
		rs.fill = ""
		rs.gradient = &RadialGradient{
			CenterX: cx,
			CenterY: cy,
			Radius:  rx,
			Stops:   c.gradients.stopsFor(gradientRefID(fv)),
		}
	}
	return newPathElement(d, rs), nil
}

// convertRect transforms the four corners individually, since the
// rectangle need not stay axis-aligned under the accumulated
// transform.
func (c *Converter) convertRect(el *Element, m Matrix, inherited Style) (*PathElement, error) {
	if el.Attr("width") == "" || el.Attr("height") == "" {
		return nil, nil
	}
	x, err := parseFloatAttr(el, "x", 0)
	if err != nil {
		return nil, err
	}
	y, err := parseFloatAttr(el, "y", 0)
	if err != nil {
		return nil, err
	}
	w, err := parseFloatAttr(el, "width", 0)
	if err != nil {
		return nil, err
	}
	h, err := parseFloatAttr(el, "height", 0)
	if err != nil {
		return nil, err
	}
	corners := [4]Point{
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	}
	if !m.IsIdentity() {
		for i, p := range corners {
			corners[i] = m.TransformPoint(p)
		}
	}
	d := fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s Z",
		fmtNum(corners[0].X), fmtNum(corners[0].Y),
		fmtNum(corners[1].X), fmtNum(corners[1].Y),
		fmtNum(corners[2].X), fmtNum(corners[2].Y),
		fmtNum(corners[3].X), fmtNum(corners[3].Y))
	rs := c.resolveStyle(el, "#000000", inherited)
	return newPathElement(d, rs), nil
}

// convertLine emits a move plus a single line, endpoints transformed
// individually. Lines default to no fill.
func (c *Converter) convertLine(el *Element, m Matrix, inherited Style) (*PathElement, error) {
	if el.Attr("x1") == "" && el.Attr("y1") == "" && el.Attr("x2") == "" && el.Attr("y2") == "" {
		return nil, nil
	}
	x1, err := parseFloatAttr(el, "x1", 0)
	if err != nil {
		return nil, err
	}
	y1, err := parseFloatAttr(el, "y1", 0)
	if err != nil {
		return nil, err
	}
	x2, err := parseFloatAttr(el, "x2", 0)
	if err != nil {
		return nil, err
	}
	y2, err := parseFloatAttr(el, "y2", 0)
	if err != nil {
		return nil, err
	}
	if !m.IsIdentity() {
		p1 := m.TransformPoint(Pt(x1, y1))
		p2 := m.TransformPoint(Pt(x2, y2))
		x1, y1, x2, y2 = p1.X, p1.Y, p2.X, p2.Y
	}
	d := fmt.Sprintf("M %s %s L %s %s", fmtNum(x1), fmtNum(y1), fmtNum(x2), fmtNum(y2))
	rs := c.resolveStyle(el, "none", inherited)
	return newPathElement(d, rs), nil
}
