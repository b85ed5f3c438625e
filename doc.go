// Package svg2vd converts SVG documents into Android vector drawable
// XML.
//
// # Overview
//
// svg2vd flattens an SVG document into a list of path elements:
// nested group transforms are composed into a single affine matrix per
// shape, shape primitives (circle, ellipse, rect, line, polygon,
// polyline) are rewritten as path data, inline styles and presentation
// attributes are resolved with CSS-like precedence, and two-stop
// linear/radial gradients are converted to absolute viewport
// coordinates. The result serializes as a <vector> drawable.
//
// # Quick Start
//
//	import "github.com/gogpu/svg2vd"
//
//	// Convert one file
//	res, err := svg2vd.ConvertFile("icon.svg", "icon.xml")
//
//	// Or a whole directory; failures are isolated per file
//	batch, err := svg2vd.ConvertDir("icons/", "drawable/")
//
// For more control, parse and convert in steps:
//
//	root, err := svg2vd.ParseDocument(r)
//	res := svg2vd.Convert(root)
//	err = svg2vd.WriteVector(w, res)
//
// # Fidelity
//
// The conversion is lossy. Circles and ellipses
// become two half-arcs; gradients keep only their first and last
// stops; transformed radii are exact only under similarity transforms.
// Text, clip paths, masks, and embedded images are dropped with a
// warning. Result.Warnings reports everything non-fatal; a document
// that parses always converts.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to observe batch
// progress and conversion warnings through log/slog.
package svg2vd

// Version is the current version of the library.
const Version = "0.1.0"
