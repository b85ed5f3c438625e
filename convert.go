package svg2vd

// Converter holds the per-document state threaded through a single
// conversion: the viewport for percentage resolution, the gradient
// registry, and the warning collector. A Converter is used for one
// document and discarded; conversions of distinct documents are
// independent.
type Converter struct {
	viewport  Viewport
	gradients GradientRegistry
	warn      *warningList
}

// Result is the outcome of converting one document: the flat ordered
// list of resolved drawable elements, the non-fatal warnings collected
// along the way, the derived viewport, and the source root attributes
// (width, height, viewBox) that output assembly needs.
type Result struct {
	Elements  []Drawable
	Warnings  []Warning
	Viewport  Viewport
	RootAttrs map[string]string
}

// Convert resolves a parsed document tree into drawable elements.
// Shape primitives become path elements with accumulated transforms
// applied and styles resolved; groups are flattened away. Per-element
// failures surface as warnings in the result, never as errors; by the
// time a document parses, conversion always succeeds.
func Convert(root *Element) *Result {
	c := &Converter{
		viewport:  viewportFromAttrs(root.Attrs),
		gradients: buildGradientRegistry(root),
		warn:      &warningList{},
	}
	elements := c.flattenChildren(root, Identity(), Style{})
	return &Result{
		Elements:  elements,
		Warnings:  c.warn.list,
		Viewport:  c.viewport,
		RootAttrs: root.Attrs,
	}
}
