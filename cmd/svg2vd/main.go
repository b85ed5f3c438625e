// Command svg2vd converts a directory of SVG files into Android
// vector drawable XML files, optionally rasterizing PNG previews of
// the converted output for visual inspection.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/gogpu/svg2vd"
	"github.com/gogpu/svg2vd/internal/pathdata"
)

func main() {
	var (
		src     = flag.String("s", "", "source directory containing SVG files")
		out     = flag.String("o", "", "output directory for generated XML files")
		verbose = flag.Bool("v", false, "verbose logging")
		preview = flag.String("preview", "", "optional directory for rasterized PNG previews")
		scale   = flag.Float64("scale", 8, "preview raster scale factor")
	)
	flag.Parse()

	if *src == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		svg2vd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	batch, err := svg2vd.ConvertDir(*src, *out)
	if err != nil {
		log.Fatalf("Batch conversion failed: %v", err)
	}
	log.Printf("Converted %d file(s), %d failure(s)", len(batch.Converted), len(batch.Failed))
	for name, err := range batch.Failed {
		log.Printf("  %s: %v", name, err)
	}

	if *preview != "" {
		if err := renderPreviews(*src, *preview, *scale); err != nil {
			log.Fatalf("Preview rendering failed: %v", err)
		}
	}
	if len(batch.Failed) > 0 {
		os.Exit(1)
	}
}

// renderPreviews rasterizes every convertible SVG in srcDir to a PNG
// in outDir using gg's software renderer, replaying the converted path
// data rather than the source document, so what you see is what the
// drawable will contain.
func renderPreviews(srcDir, outDir string, scale float64) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	matches, err := filepath.Glob(filepath.Join(srcDir, "*.svg"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		f, err := os.Open(match)
		if err != nil {
			return err
		}
		root, err := svg2vd.ParseDocument(f)
		f.Close()
		if err != nil {
			// Already reported during conversion; not a preview error.
			continue
		}
		res := svg2vd.Convert(root)
		name := strings.TrimSuffix(filepath.Base(match), filepath.Ext(match)) + ".png"
		if err := renderPreview(res, filepath.Join(outDir, name), scale); err != nil {
			return err
		}
	}
	return nil
}

func renderPreview(res *svg2vd.Result, path string, scale float64) error {
	w := max(int(res.Viewport.Width*scale), 1)
	h := max(int(res.Viewport.Height*scale), 1)
	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	drawElements(dc, res.Elements)
	return dc.SavePNG(path)
}

func drawElements(dc *gg.Context, elements []svg2vd.Drawable) {
	for _, d := range elements {
		switch el := d.(type) {
		case *svg2vd.PathElement:
			segs, err := pathdata.Parse(el.Data)
			if err != nil {
				continue
			}
			tracePath(dc, segs)
			if el.Gradient != nil {
				if b := gradientBrush(el.Gradient); b != nil {
					dc.SetFillBrush(b)
					_ = dc.FillPreserve()
				}
			} else if c, ok := parseColor(el.Fill); ok {
				dc.SetFillBrush(gg.Solid(c))
				_ = dc.FillPreserve()
			}
			if c, ok := parseColor(el.StrokeColor); ok {
				width := 1.0
				if f, err := strconv.ParseFloat(el.StrokeWidth, 64); err == nil {
					width = f
				}
				dc.SetStrokeBrush(gg.Solid(c))
				dc.SetLineWidth(width)
				_ = dc.StrokePreserve()
			}
			dc.ClearPath()
		case *svg2vd.GroupElement:
			dc.Push()
			dc.Translate(el.TranslateX, el.TranslateY)
			drawElements(dc, el.Children)
			dc.Pop()
		}
	}
}

// tracePath replays parsed path data onto the context. Arcs are
// expanded to cubics the same way the converter does when
// transforming.
func tracePath(dc *gg.Context, segs []pathdata.Segment) {
	var x, y, sx, sy float64
	for _, seg := range segs {
		switch s := seg.(type) {
		case pathdata.MoveTo:
			dc.MoveTo(s.X, s.Y)
			x, y = s.X, s.Y
			sx, sy = s.X, s.Y
		case pathdata.LineTo:
			dc.LineTo(s.X, s.Y)
			x, y = s.X, s.Y
		case pathdata.QuadTo:
			dc.QuadraticTo(s.CX, s.CY, s.X, s.Y)
			x, y = s.X, s.Y
		case pathdata.CubicTo:
			dc.CubicTo(s.C1X, s.C1Y, s.C2X, s.C2Y, s.X, s.Y)
			x, y = s.X, s.Y
		case pathdata.Arc:
			for _, c := range s.Cubics(x, y) {
				dc.CubicTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
			}
			x, y = s.X, s.Y
		case pathdata.Close:
			dc.ClosePath()
			x, y = sx, sy
		}
	}
}

func gradientBrush(g svg2vd.Gradient) gg.Brush {
	switch gr := g.(type) {
	case *svg2vd.LinearGradient:
		b := gg.NewLinearGradientBrush(gr.StartX, gr.StartY, gr.EndX, gr.EndY)
		for _, s := range gr.Stops {
			if c, ok := parseColor(s.Color); ok {
				b.AddColorStop(s.Offset, c)
			}
		}
		return b
	case *svg2vd.RadialGradient:
		b := gg.NewRadialGradientBrush(gr.CenterX, gr.CenterY, 0, gr.Radius)
		for _, s := range gr.Stops {
			if c, ok := parseColor(s.Color); ok {
				b.AddColorStop(s.Offset, c)
			}
		}
		return b
	}
	return nil
}

// parseColor turns a converter color value into a gg color. Handles
// #RGB/#RRGGBB forms directly and the converter's #AARRGGBB form by
// rotating the alpha to gg's trailing position; named colors go
// through the x/image table.
func parseColor(v string) (gg.RGBA, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return gg.RGBA{}, false
	}
	if strings.HasPrefix(v, "#") {
		if len(v) == 9 {
			v = "#" + v[3:] + v[1:3]
		}
		return gg.Hex(v), true
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return gg.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), true
	}
	return gg.RGBA{}, false
}
