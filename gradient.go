package svg2vd

import (
	"fmt"
	"strconv"
	"strings"
)

// Stop represents a color at a position along a gradient ramp. The
// color is a hex string and may carry an 8-digit #AARRGGBB form when a
// stop-opacity was composited in.
type Stop struct {
	Offset float64
	Color  string
}

// Gradient is a resolved gradient fill: either *LinearGradient or
// *RadialGradient, always reduced to two stops (the first and last
// stop of the source definition in document order; intermediate stops
// are discarded).
type Gradient interface {
	isGradient()
}

// LinearGradient is a linear color ramp between two points in absolute
// viewport units.
type LinearGradient struct {
	StartX, StartY float64
	EndX, EndY     float64
	Stops          []Stop
}

func (*LinearGradient) isGradient() {}

// RadialGradient is a radial color ramp around a center in absolute
// viewport units.
type RadialGradient struct {
	CenterX, CenterY float64
	Radius           float64
	Stops            []Stop
}

func (*RadialGradient) isGradient() {}

// GradientRegistry maps lowercased gradient ids to their definition
// elements. It is built once per document before conversion starts and
// read-only afterwards.
type GradientRegistry map[string]*Element

// buildGradientRegistry scans the whole tree for linearGradient and
// radialGradient definitions, wherever they appear.
func buildGradientRegistry(root *Element) GradientRegistry {
	reg := GradientRegistry{}
	var walk func(e *Element)
	walk = func(e *Element) {
		if e.Tag == "lineargradient" || e.Tag == "radialgradient" {
			if id := e.ID(); id != "" {
				reg[strings.ToLower(id)] = e
			}
		}
		for _, ch := range e.Children {
			walk(ch)
		}
	}
	walk(root)
	return reg
}

// Resolve converts the identified gradient definition into a two-stop
// Gradient with percentage coordinates resolved against the viewport.
// Returns nil when the id is unknown or the definition has no stop
// children.
func (r GradientRegistry) Resolve(id string, vp Viewport) Gradient {
	def, ok := r[id]
	if !ok {
		return nil
	}
	stops := reduceStops(def)
	if stops == nil {
		return nil
	}
	switch def.Tag {
	case "lineargradient":
		return &LinearGradient{
			StartX: resolveLength(attrOr(def, "x1", "0%"), vp.Width),
			StartY: resolveLength(attrOr(def, "y1", "0%"), vp.Height),
			EndX:   resolveLength(attrOr(def, "x2", "100%"), vp.Width),
			EndY:   resolveLength(attrOr(def, "y2", "0%"), vp.Height),
			Stops:  stops,
		}
	case "radialgradient":
		return &RadialGradient{
			CenterX: resolveLength(attrOr(def, "cx", "50%"), vp.Width),
			CenterY: resolveLength(attrOr(def, "cy", "50%"), vp.Height),
			Radius:  resolveLength(attrOr(def, "r", "50%"), min(vp.Width, vp.Height)),
			Stops:   stops,
		}
	}
	return nil
}

// stopsFor returns the reduced two-stop ramp for a gradient id, or nil
// when the id is unknown or stopless. Used by the ellipse converter's
// gradient override, which replaces the geometry but keeps the colors.
func (r GradientRegistry) stopsFor(id string) []Stop {
	def, ok := r[id]
	if !ok {
		return nil
	}
	return reduceStops(def)
}

// reduceStops collects all stop descendants of a gradient definition
// in document order and reduces them to offsets 0 and 1 carrying the
// first and last stop colors.
func reduceStops(def *Element) []Stop {
	var stops []*Element
	var walk func(e *Element)
	walk = func(e *Element) {
		for _, ch := range e.Children {
			if ch.Tag == "stop" {
				stops = append(stops, ch)
			}
			walk(ch)
		}
	}
	walk(def)
	if len(stops) == 0 {
		return nil
	}
	return []Stop{
		{Offset: 0, Color: extractStopColor(stops[0])},
		{Offset: 1, Color: extractStopColor(stops[len(stops)-1])},
	}
}

// extractStopColor reads the color of a stop element. The base color
// comes from the stop-color attribute (default #000000), overridden by
// an inline style's stop-color. A stop-opacity (style first, then
// attribute) that parses as a float is scaled by 255, truncated, and
// prepended as a 2-digit hex alpha, producing #AARRGGBB. Compositing
// only applies to colors of the exact #RRGGBB form; named colors and
// rgb() functions pass through unmodified. Known limitation.
func extractStopColor(stop *Element) string {
	color := stop.Attr("stop-color")
	if color == "" {
		color = "#000000"
	}
	opacity := stop.Attr("stop-opacity")
	if s := stop.Attr("style"); s != "" {
		style := ParseStyle(s)
		if v, ok := style["stop-color"]; ok {
			color = v
		}
		if v, ok := style["stop-opacity"]; ok {
			opacity = v
		}
	}
	if opacity != "" {
		if f, err := strconv.ParseFloat(opacity, 64); err == nil {
			if len(color) == 7 && color[0] == '#' {
				color = fmt.Sprintf("#%02X%s", int(f*255), color[1:])
			}
		}
	}
	return color
}

// resolveLength converts a possibly percentage-valued length into an
// absolute value against the given reference. Unparsable input yields
// zero; the source format would carry the raw string through, but
// every gradient coordinate here is a numeric field, so the narrowing
// only affects input that was already invalid.
func resolveLength(v string, ref float64) float64 {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0
		}
		return pct * ref / 100
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// attrOr returns the named attribute or a default when unset.
func attrOr(e *Element, name, def string) string {
	if v, ok := e.Attrs[name]; ok && v != "" {
		return v
	}
	return def
}
