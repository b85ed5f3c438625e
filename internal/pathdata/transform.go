package pathdata

import "math"

// PointFunc maps a point through an affine transformation. The
// converter supplies one so this package stays free of the matrix
// representation.
type PointFunc func(x, y float64) (float64, float64)

// Transform applies pt to the endpoints and control points of every
// segment. Arcs are first expanded into cubic Bezier curves, because
// an affine transform does not in general preserve an arc's
// center-and-radii parameterization; each resulting cubic is then
// transformed.
func Transform(segs []Segment, pt PointFunc) []Segment {
	out := make([]Segment, 0, len(segs))
	var x, y float64   // current point, untransformed
	var sx, sy float64 // subpath start, untransformed
	for _, seg := range segs {
		switch s := seg.(type) {
		case MoveTo:
			nx, ny := pt(s.X, s.Y)
			out = append(out, MoveTo{X: nx, Y: ny})
			x, y = s.X, s.Y
			sx, sy = s.X, s.Y
		case LineTo:
			nx, ny := pt(s.X, s.Y)
			out = append(out, LineTo{X: nx, Y: ny})
			x, y = s.X, s.Y
		case QuadTo:
			cx, cy := pt(s.CX, s.CY)
			nx, ny := pt(s.X, s.Y)
			out = append(out, QuadTo{CX: cx, CY: cy, X: nx, Y: ny})
			x, y = s.X, s.Y
		case CubicTo:
			c1x, c1y := pt(s.C1X, s.C1Y)
			c2x, c2y := pt(s.C2X, s.C2Y)
			nx, ny := pt(s.X, s.Y)
			out = append(out, CubicTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: nx, Y: ny})
			x, y = s.X, s.Y
		case Arc:
			for _, c := range s.Cubics(x, y) {
				c1x, c1y := pt(c.C1X, c.C1Y)
				c2x, c2y := pt(c.C2X, c.C2Y)
				nx, ny := pt(c.X, c.Y)
				out = append(out, CubicTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: nx, Y: ny})
			}
			x, y = s.X, s.Y
		case Close:
			out = append(out, Close{})
			x, y = sx, sy
		}
	}
	return out
}

// Cubics converts the arc, starting at (x0, y0), into an equivalent
// sequence of cubic Bezier curves, at most 90 degrees of sweep each.
// Follows the endpoint-to-center conversion of the SVG spec (F.6.5)
// with out-of-range radii scaled up as required.
func (a Arc) Cubics(x0, y0 float64) []CubicTo {
	rx := math.Abs(a.RX)
	ry := math.Abs(a.RY)
	if rx == 0 || ry == 0 || (x0 == a.X && y0 == a.Y) {
		// Degenerate arc renders as a straight line.
		return []CubicTo{{C1X: x0, C1Y: y0, C2X: a.X, C2Y: a.Y, X: a.X, Y: a.Y}}
	}

	phi := a.Rotation * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	dx := (x0 - a.X) / 2
	dy := (y0 - a.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the endpoints are too far apart for them.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	sq := 0.0
	if den != 0 && num > 0 {
		sq = math.Sqrt(num / den)
	}
	if a.LargeArc == a.Sweep {
		sq = -sq
	}
	cxp := sq * rx * y1p / ry
	cyp := -sq * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x0+a.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+a.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)

	point := func(theta float64) (float64, float64) {
		ct := math.Cos(theta)
		st := math.Sin(theta)
		return cx + rx*ct*cosPhi - ry*st*sinPhi,
			cy + rx*ct*sinPhi + ry*st*cosPhi
	}
	derivative := func(theta float64) (float64, float64) {
		ct := math.Cos(theta)
		st := math.Sin(theta)
		return -rx*st*cosPhi - ry*ct*sinPhi,
			-rx*st*sinPhi + ry*ct*cosPhi
	}

	curves := make([]CubicTo, 0, n)
	for i := 0; i < n; i++ {
		t1 := theta1 + float64(i)*step
		t2 := t1 + step
		alpha := 4.0 / 3.0 * math.Tan((t2-t1)/4)

		p1x, p1y := point(t1)
		p2x, p2y := point(t2)
		d1x, d1y := derivative(t1)
		d2x, d2y := derivative(t2)

		curves = append(curves, CubicTo{
			C1X: p1x + alpha*d1x,
			C1Y: p1y + alpha*d1y,
			C2X: p2x - alpha*d2x,
			C2Y: p2y - alpha*d2y,
			X:   p2x,
			Y:   p2y,
		})
	}
	return curves
}
