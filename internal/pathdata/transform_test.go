package pathdata

import (
	"math"
	"testing"
)

func translatePt(tx, ty float64) PointFunc {
	return func(x, y float64) (float64, float64) { return x + tx, y + ty }
}

func TestTransformTranslate(t *testing.T) {
	segs, err := Parse("M 0 0 L 10 0 Q 5 5 0 10 C 1 2 3 4 5 6 Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Serialize(Transform(segs, translatePt(10, 20)))
	want := "M 10 20 L 20 20 Q 15 25 10 30 C 11 22 13 24 15 26 Z"
	if got != want {
		t.Errorf("transformed = %q, want %q", got, want)
	}
}

func TestTransformIdentityFunc(t *testing.T) {
	segs, err := Parse("M 1 2 L 3 4")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Serialize(Transform(segs, func(x, y float64) (float64, float64) { return x, y }))
	if want := "M 1 2 L 3 4"; got != want {
		t.Errorf("transformed = %q, want %q", got, want)
	}
}

func TestTransformExpandsArcs(t *testing.T) {
	segs, err := Parse("M -5 0 A 5 5 0 1 0 5 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := Transform(segs, func(x, y float64) (float64, float64) { return x, y })

	if _, ok := out[0].(MoveTo); !ok {
		t.Fatalf("out[0] = %T, want MoveTo", out[0])
	}
	// A half circle splits into two quarter-circle cubics.
	if len(out) != 3 {
		t.Fatalf("segments = %d, want move plus 2 cubics: %+v", len(out), out)
	}
	for i, seg := range out[1:] {
		if _, ok := seg.(CubicTo); !ok {
			t.Errorf("out[%d] = %T, want CubicTo", i+1, seg)
		}
	}
	last := out[len(out)-1].(CubicTo)
	if math.Abs(last.X-5) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("arc endpoint = (%v, %v), want (5, 0)", last.X, last.Y)
	}
}

func TestArcCubicsApproximatesCircle(t *testing.T) {
	// Every cubic endpoint of an expanded circular arc lies on the
	// circle, and the control points stay close to it.
	a := Arc{RX: 5, RY: 5, LargeArc: true, Sweep: false, X: 5, Y: 0}
	curves := a.Cubics(-5, 0)
	if len(curves) != 2 {
		t.Fatalf("curves = %d, want 2", len(curves))
	}
	for i, c := range curves {
		if r := math.Hypot(c.X, c.Y); math.Abs(r-5) > 1e-9 {
			t.Errorf("curve %d endpoint radius = %v, want 5", i, r)
		}
	}
}

func TestArcCubicsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		arc  Arc
		x0   float64
		y0   float64
	}{
		{"zero radius", Arc{RX: 0, RY: 5, X: 10, Y: 0}, 0, 0},
		{"coincident endpoints", Arc{RX: 5, RY: 5, X: 3, Y: 4}, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curves := tt.arc.Cubics(tt.x0, tt.y0)
			if len(curves) != 1 {
				t.Fatalf("curves = %d, want single line substitute", len(curves))
			}
			if curves[0].X != tt.arc.X || curves[0].Y != tt.arc.Y {
				t.Errorf("endpoint = (%v, %v), want (%v, %v)",
					curves[0].X, curves[0].Y, tt.arc.X, tt.arc.Y)
			}
		})
	}
}

func TestArcCubicsScalesUndersizedRadii(t *testing.T) {
	// Radii too small for the endpoint distance are scaled up; the
	// expansion still ends exactly at the arc endpoint.
	a := Arc{RX: 1, RY: 1, Sweep: true, X: 10, Y: 0}
	curves := a.Cubics(0, 0)
	if len(curves) == 0 {
		t.Fatal("no curves")
	}
	last := curves[len(curves)-1]
	if math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("endpoint = (%v, %v), want (10, 0)", last.X, last.Y)
	}
}

func TestTransformTracksSubpathStart(t *testing.T) {
	// The arc after the close starts from the subpath start, not from
	// the last explicit point.
	segs := []Segment{
		MoveTo{X: 3, Y: 4},
		LineTo{X: 10, Y: 4},
		Close{},
		Arc{RX: 5, RY: 5, X: 3, Y: 4},
	}
	out := Transform(segs, func(x, y float64) (float64, float64) { return x, y })
	// Current point equals the arc endpoint, so the arc degenerates to
	// a single straight-line cubic.
	if len(out) != 4 {
		t.Fatalf("segments = %d, want 4: %+v", len(out), out)
	}
	if _, ok := out[3].(CubicTo); !ok {
		t.Errorf("out[3] = %T, want CubicTo", out[3])
	}
}
