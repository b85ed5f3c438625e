package svg2vd

import (
	"strconv"
	"strings"
)

// Viewport is the user-unit coordinate space of a source document,
// used to resolve percentage lengths. Computed once per document and
// read-only afterwards. Dimensions are always positive finite values;
// the fallback chain guarantees it.
type Viewport struct {
	Width, Height float64
}

// viewportFromAttrs derives the viewport from document root
// attributes: the 3rd and 4th viewBox tokens first, then the width and
// height attributes with any "px" stripped, then (24, 24).
func viewportFromAttrs(attrs map[string]string) Viewport {
	if vb, ok := attrs["viewBox"]; ok {
		parts := strings.Fields(vb)
		if len(parts) == 4 {
			w, errW := strconv.ParseFloat(parts[2], 64)
			h, errH := strconv.ParseFloat(parts[3], 64)
			if errW == nil && errH == nil {
				return Viewport{Width: w, Height: h}
			}
		}
	}
	w, errW := parsePixels(attrOrDefault(attrs, "width", "24"))
	h, errH := parsePixels(attrOrDefault(attrs, "height", "24"))
	if errW != nil || errH != nil {
		return Viewport{Width: 24, Height: 24}
	}
	return Viewport{Width: w, Height: h}
}

func parsePixels(v string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(v, "px", ""), 64)
}

func attrOrDefault(attrs map[string]string, name, def string) string {
	if v, ok := attrs[name]; ok && v != "" {
		return v
	}
	return def
}
