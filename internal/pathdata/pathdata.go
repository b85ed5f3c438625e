// Package pathdata parses, transforms, and serializes SVG path data
// strings. The parser normalizes every command to absolute
// coordinates, so the resulting segment list can be transformed point
// by point and written back out.
package pathdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single normalized path command. It is a closed set:
// MoveTo, LineTo, QuadTo, CubicTo, Arc, and Close.
type Segment interface {
	isSegment()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	X, Y float64
}

func (MoveTo) isSegment() {}

// LineTo draws a line to a point.
type LineTo struct {
	X, Y float64
}

func (LineTo) isSegment() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	CX, CY float64
	X, Y   float64
}

func (QuadTo) isSegment() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

func (CubicTo) isSegment() {}

// Arc draws an elliptical arc to a point. Rotation is in degrees, as
// in the source syntax.
type Arc struct {
	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
	X, Y     float64
}

func (Arc) isSegment() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isSegment() {}

func skipCommaWhitespace(d string, i int) int {
	for i < len(d) {
		switch d[i] {
		case ' ', ',', '\n', '\r', '\t':
			i++
		default:
			return i
		}
	}
	return i
}

// scanNum scans one float starting at i (after separators) and returns
// its value and the index past it.
func scanNum(d string, i int) (float64, int, error) {
	i = skipCommaWhitespace(d, i)
	start := i
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	if i < len(d) && d[i] == '.' {
		i++
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			i++
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '-' || d[j] == '+') {
			j++
		}
		if j < len(d) && d[j] >= '0' && d[j] <= '9' {
			for j < len(d) && d[j] >= '0' && d[j] <= '9' {
				j++
			}
			i = j
		}
	}
	if i == start {
		return 0, start, fmt.Errorf("pathdata: expected number at offset %d", start)
	}
	f, err := strconv.ParseFloat(d[start:i], 64)
	if err != nil {
		return 0, start, fmt.Errorf("pathdata: bad number %q: %w", d[start:i], err)
	}
	return f, i, nil
}

// scanFlag scans an arc flag. The grammar allows flags to run into
// the next number without a separator ("a1 1 0 011 1"), so exactly
// one digit is consumed and it must be 0 or 1.
func scanFlag(d string, i int) (bool, int, error) {
	i = skipCommaWhitespace(d, i)
	if i >= len(d) || (d[i] != '0' && d[i] != '1') {
		return false, i, fmt.Errorf("pathdata: expected arc flag at offset %d", i)
	}
	return d[i] == '1', i + 1, nil
}

// Parse parses an SVG path data string into absolute segments. All
// relative commands, horizontal/vertical shorthands, and smooth
// curve shorthands are normalized away. Implicit command repetition is
// honored (an M followed by extra coordinate pairs emits line-tos, per
// the SVG grammar).
func Parse(d string) ([]Segment, error) {
	var segs []Segment
	var cmd byte
	var x, y float64       // current point
	var sx, sy float64     // subpath start
	var cpx, cpy float64   // last control point (for S/T reflection)
	var prevCmd byte

	i := 0
	for i < len(d) {
		i = skipCommaWhitespace(d, i)
		if i >= len(d) {
			break
		}
		ch := d[i]
		if ch >= 'A' && ch <= 'z' && !(ch >= '0' && ch <= '9') && ch != '.' {
			cmd = ch
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("pathdata: path does not start with a command")
		} else if cmd == 'M' {
			// Implicit repetition of a moveto is a lineto.
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}

		rel := cmd >= 'a'
		var err error
		switch cmd {
		case 'M', 'm':
			var a, b float64
			if a, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if b, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if rel {
				a += x
				b += y
			}
			segs = append(segs, MoveTo{X: a, Y: b})
			x, y = a, b
			sx, sy = a, b
		case 'L', 'l':
			var a, b float64
			if a, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if b, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if rel {
				a += x
				b += y
			}
			segs = append(segs, LineTo{X: a, Y: b})
			x, y = a, b
		case 'H', 'h':
			var a float64
			if a, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if rel {
				a += x
			}
			segs = append(segs, LineTo{X: a, Y: y})
			x = a
		case 'V', 'v':
			var b float64
			if b, i, err = scanNum(d, i); err != nil {
				return nil, err
			}
			if rel {
				b += y
			}
			segs = append(segs, LineTo{X: x, Y: b})
			y = b
		case 'C', 'c':
			var n [6]float64
			for k := range n {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if rel {
				n[0] += x
				n[1] += y
				n[2] += x
				n[3] += y
				n[4] += x
				n[5] += y
			}
			segs = append(segs, CubicTo{C1X: n[0], C1Y: n[1], C2X: n[2], C2Y: n[3], X: n[4], Y: n[5]})
			cpx, cpy = n[2], n[3]
			x, y = n[4], n[5]
		case 'S', 's':
			var n [4]float64
			for k := range n {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if rel {
				n[0] += x
				n[1] += y
				n[2] += x
				n[3] += y
			}
			c1x, c1y := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1x, c1y = 2*x-cpx, 2*y-cpy
			}
			segs = append(segs, CubicTo{C1X: c1x, C1Y: c1y, C2X: n[0], C2Y: n[1], X: n[2], Y: n[3]})
			cpx, cpy = n[0], n[1]
			x, y = n[2], n[3]
		case 'Q', 'q':
			var n [4]float64
			for k := range n {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if rel {
				n[0] += x
				n[1] += y
				n[2] += x
				n[3] += y
			}
			segs = append(segs, QuadTo{CX: n[0], CY: n[1], X: n[2], Y: n[3]})
			cpx, cpy = n[0], n[1]
			x, y = n[2], n[3]
		case 'T', 't':
			var n [2]float64
			for k := range n {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if rel {
				n[0] += x
				n[1] += y
			}
			cx, cy := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx, cy = 2*x-cpx, 2*y-cpy
			}
			segs = append(segs, QuadTo{CX: cx, CY: cy, X: n[0], Y: n[1]})
			cpx, cpy = cx, cy
			x, y = n[0], n[1]
		case 'A', 'a':
			var n [5]float64
			var laf, sf bool
			for k := 0; k < 3; k++ {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if laf, i, err = scanFlag(d, i); err != nil {
				return nil, err
			}
			if sf, i, err = scanFlag(d, i); err != nil {
				return nil, err
			}
			for k := 3; k < 5; k++ {
				if n[k], i, err = scanNum(d, i); err != nil {
					return nil, err
				}
			}
			if rel {
				n[3] += x
				n[4] += y
			}
			segs = append(segs, Arc{
				RX:       n[0],
				RY:       n[1],
				Rotation: n[2],
				LargeArc: laf,
				Sweep:    sf,
				X:        n[3],
				Y:        n[4],
			})
			x, y = n[3], n[4]
		case 'Z', 'z':
			segs = append(segs, Close{})
			x, y = sx, sy
		default:
			return nil, fmt.Errorf("pathdata: unknown command %q", string(cmd))
		}
		prevCmd = cmd
	}
	return segs, nil
}

// num formats a coordinate: integral values print without a decimal
// part, everything else with the shortest exact decimal form.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Serialize writes segments back to a path data string with absolute
// commands and space-separated coordinates.
func Serialize(segs []Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s := seg.(type) {
		case MoveTo:
			fmt.Fprintf(&b, "M %s %s", num(s.X), num(s.Y))
		case LineTo:
			fmt.Fprintf(&b, "L %s %s", num(s.X), num(s.Y))
		case QuadTo:
			fmt.Fprintf(&b, "Q %s %s %s %s", num(s.CX), num(s.CY), num(s.X), num(s.Y))
		case CubicTo:
			fmt.Fprintf(&b, "C %s %s %s %s %s %s",
				num(s.C1X), num(s.C1Y), num(s.C2X), num(s.C2Y), num(s.X), num(s.Y))
		case Arc:
			fmt.Fprintf(&b, "A %s %s %s %s %s %s %s",
				num(s.RX), num(s.RY), num(s.Rotation),
				flag(s.LargeArc), flag(s.Sweep), num(s.X), num(s.Y))
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
