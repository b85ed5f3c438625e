package svg2vd

import (
	"math"
	"regexp"
	"strconv"
)

// Matrix represents a 2D affine transformation in SVG coefficient order
// (a, b, c, d, e, f), corresponding to the 3x3 matrix:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// Matrix is an immutable value type; all methods return new values.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: tx, F: ty}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, B: 0, C: 0, D: sy, E: 0, F: 0}
}

// Rotate creates a rotation matrix about the origin (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
}

// RotateAbout creates a rotation matrix about the pivot (cx, cy),
// angle in radians.
func RotateAbout(angle, cx, cy float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: sin, C: -sin, D: cos,
		E: -cx*cos + cx + cy*sin,
		F: -cx*sin - cy*cos + cy,
	}
}

// Mul multiplies two matrices (m * other). The product applied to a
// point is equivalent to applying other first and m second, so callers
// compose as outer.Mul(inner).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// IsIdentity returns true if the matrix is exactly the identity.
// Shape converters use this to pass coordinates through untouched.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

var (
	transformFuncRe = regexp.MustCompile(`(\w+)\(([^)]+)\)`)
	transformNumRe  = regexp.MustCompile(`-?[\d.]+(?:e[+-]?\d+)?`)
)

// ParseTransform parses an SVG transform attribute into a single
// matrix. Supported functions are translate, scale, rotate and matrix;
// an unrecognized function contributes an identity step. Each step is
// right-multiplied onto the accumulator in textual order, matching
// SVG's left-to-right transform-list semantics.
func ParseTransform(s string) Matrix {
	m := Identity()
	for _, part := range transformFuncRe.FindAllStringSubmatch(s, -1) {
		name := part[1]
		var vals []float64
		for _, tok := range transformNumRe.FindAllString(part[2], -1) {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			vals = append(vals, f)
		}
		step := Identity()
		switch {
		case name == "translate" && len(vals) >= 1:
			ty := 0.0
			if len(vals) > 1 {
				ty = vals[1]
			}
			step = Translate(vals[0], ty)
		case name == "scale" && len(vals) >= 1:
			sy := vals[0]
			if len(vals) > 1 {
				sy = vals[1]
			}
			step = Scale(vals[0], sy)
		case name == "rotate" && len(vals) >= 1:
			angle := vals[0] * math.Pi / 180
			if len(vals) > 2 {
				step = RotateAbout(angle, vals[1], vals[2])
			} else {
				step = Rotate(angle)
			}
		case name == "matrix" && len(vals) == 6:
			step = Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}
		}
		m = m.Mul(step)
	}
	return m
}

// transformedRadius approximates the radius of a circle or ellipse
// axis after transformation: a point at distance r along the axis from
// the already-transformed center is transformed, and the Euclidean
// distance to the center is taken. Exact only for similarity
// transforms (uniform scale, rotation, translation); non-uniform scale
// or shear yields deterministic but visually incorrect radii. Known
// limitation of the two-arc shape approximation.
func transformedRadius(m Matrix, center Point, r float64, alongY bool) float64 {
	edge := Point{X: center.X + r, Y: center.Y}
	if alongY {
		edge = Point{X: center.X, Y: center.Y + r}
	}
	return m.TransformPoint(edge).Distance(center)
}
