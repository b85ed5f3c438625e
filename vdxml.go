package svg2vd

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	androidNS = "http://schemas.android.com/apk/res/android"
	aaptNS    = "http://schemas.android.com/aapt"
)

// WriteVector serializes a conversion result as an Android vector
// drawable XML document: a <vector> root with dp dimensions and
// viewport size, one <path> per element, and gradient fills emitted as
// nested <aapt:attr> gradient blocks.
func WriteVector(w io.Writer, res *Result) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	e := xml.NewEncoder(w)
	e.Indent("", "    ")

	attrs := []xml.Attr{
		{Name: xml.Name{Local: "xmlns:android"}, Value: androidNS},
	}
	if hasGradient(res.Elements) {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:aapt"}, Value: aaptNS})
	}
	vw, vh := viewportDims(res)
	attrs = append(attrs,
		xml.Attr{Name: xml.Name{Local: "android:width"}, Value: dimensionDP(res.RootAttrs["width"], res.Viewport.Width)},
		xml.Attr{Name: xml.Name{Local: "android:height"}, Value: dimensionDP(res.RootAttrs["height"], res.Viewport.Height)},
		xml.Attr{Name: xml.Name{Local: "android:viewportWidth"}, Value: vw},
		xml.Attr{Name: xml.Name{Local: "android:viewportHeight"}, Value: vh},
	)

	root := xml.StartElement{Name: xml.Name{Local: "vector"}, Attr: attrs}
	if err := e.EncodeToken(root); err != nil {
		return err
	}
	for _, d := range res.Elements {
		if err := writeDrawable(e, d); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(root.End()); err != nil {
		return err
	}
	return e.Flush()
}

func hasGradient(elements []Drawable) bool {
	for _, d := range elements {
		switch el := d.(type) {
		case *PathElement:
			if el.Gradient != nil {
				return true
			}
		case *GroupElement:
			if hasGradient(el.Children) {
				return true
			}
		}
	}
	return false
}

func writeDrawable(e *xml.Encoder, d Drawable) error {
	switch el := d.(type) {
	case *PathElement:
		start := xml.StartElement{Name: xml.Name{Local: "path"}}
		if el.Data != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:pathData"}, Value: el.Data})
		}
		if c := normalizeColor(el.Fill); c != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:fillColor"}, Value: c})
		}
		if c := normalizeColor(el.StrokeColor); c != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:strokeColor"}, Value: c})
		}
		if el.StrokeWidth != "" {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:strokeWidth"}, Value: el.StrokeWidth})
		}
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		if el.Gradient != nil {
			if err := writeGradient(e, el.Gradient); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	case *GroupElement:
		start := xml.StartElement{Name: xml.Name{Local: "group"}}
		if el.TranslateX != 0 {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:translateX"}, Value: fmtNum(el.TranslateX)})
		}
		if el.TranslateY != 0 {
			start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "android:translateY"}, Value: fmtNum(el.TranslateY)})
		}
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		for _, ch := range el.Children {
			if err := writeDrawable(e, ch); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	}
	return nil
}

// writeGradient emits the aapt:attr block that replaces a solid
// android:fillColor with a gradient definition.
func writeGradient(e *xml.Encoder, g Gradient) error {
	aapt := xml.StartElement{
		Name: xml.Name{Local: "aapt:attr"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: "android:fillColor"}},
	}
	if err := e.EncodeToken(aapt); err != nil {
		return err
	}

	grad := xml.StartElement{Name: xml.Name{Local: "gradient"}}
	var stops []Stop
	switch gr := g.(type) {
	case *LinearGradient:
		grad.Attr = append(grad.Attr,
			xml.Attr{Name: xml.Name{Local: "android:type"}, Value: "linear"},
			xml.Attr{Name: xml.Name{Local: "android:startX"}, Value: fmtNum(gr.StartX)},
			xml.Attr{Name: xml.Name{Local: "android:startY"}, Value: fmtNum(gr.StartY)},
			xml.Attr{Name: xml.Name{Local: "android:endX"}, Value: fmtNum(gr.EndX)},
			xml.Attr{Name: xml.Name{Local: "android:endY"}, Value: fmtNum(gr.EndY)},
		)
		stops = gr.Stops
	case *RadialGradient:
		grad.Attr = append(grad.Attr,
			xml.Attr{Name: xml.Name{Local: "android:type"}, Value: "radial"},
			xml.Attr{Name: xml.Name{Local: "android:centerX"}, Value: fmtNum(gr.CenterX)},
			xml.Attr{Name: xml.Name{Local: "android:centerY"}, Value: fmtNum(gr.CenterY)},
			xml.Attr{Name: xml.Name{Local: "android:gradientRadius"}, Value: fmtNum(gr.Radius)},
		)
		stops = gr.Stops
	}
	if err := e.EncodeToken(grad); err != nil {
		return err
	}
	for _, s := range stops {
		item := xml.StartElement{
			Name: xml.Name{Local: "item"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "android:offset"}, Value: fmtNum(s.Offset)},
				{Name: xml.Name{Local: "android:color"}, Value: normalizeColor(s.Color)},
			},
		}
		if err := e.EncodeToken(item); err != nil {
			return err
		}
		if err := e.EncodeToken(item.End()); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(grad.End()); err != nil {
		return err
	}
	return e.EncodeToken(aapt.End())
}

// normalizeColor maps a source color value to a form the drawable
// format accepts: hex passes through, SVG named colors map to #RRGGBB
// through the x/image color table, "none" and empty yield "" so the
// attribute is omitted. Unrecognized values (rgb() functions and the
// like) pass through unchanged.
func normalizeColor(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return ""
	}
	if strings.HasPrefix(v, "#") {
		return v
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return v
}

// dimensionDP renders a source dimension attribute as an integral dp
// value, stripping any px suffix; unparsable or absent input falls
// back to the viewport dimension.
func dimensionDP(raw string, fallback float64) string {
	if raw != "" {
		if f, err := parsePixels(raw); err == nil {
			return fmt.Sprintf("%ddp", int(f))
		}
	}
	return fmt.Sprintf("%ddp", int(fallback))
}

// viewportDims renders the drawable viewport size, preferring the
// source viewBox and falling back to the derived viewport.
func viewportDims(res *Result) (string, string) {
	if vb := res.RootAttrs["viewBox"]; vb != "" {
		parts := strings.Fields(vb)
		if len(parts) == 4 {
			w, errW := strconv.ParseFloat(parts[2], 64)
			h, errH := strconv.ParseFloat(parts[3], 64)
			if errW == nil && errH == nil {
				return strconv.Itoa(int(w)), strconv.Itoa(int(h))
			}
		}
	}
	return strconv.Itoa(int(res.Viewport.Width)), strconv.Itoa(int(res.Viewport.Height))
}
