package svg2vd

// Drawable is a resolved output element ready for XML assembly.
// It is a closed set: PathElement and GroupElement.
type Drawable interface {
	isDrawable()
}

// PathElement is a shape resolved into path data plus style. All seven
// source shape kinds reduce to this form.
type PathElement struct {
	// Data is the path command string (M/L/Z/a subset plus whatever a
	// source path carried through).
	Data string

	// Fill is the solid fill color. Empty when the fill resolved to a
	// gradient or to nothing at all; "none" means explicitly unfilled.
	Fill string

	// Gradient is non-nil when the fill resolved to a gradient
	// reference. Fill is empty in that case.
	Gradient Gradient

	// StrokeColor and StrokeWidth are optional; empty means unset.
	StrokeColor string
	StrokeWidth string
}

func (*PathElement) isDrawable() {}

// GroupElement preserves group nesting in the output tree. The
// canonical flattening pipeline never produces one, but the output
// writer supports it so a nesting-preserving pipeline variant can
// reuse the same assembly code.
type GroupElement struct {
	// TranslateX and TranslateY are forwarded group translation
	// attributes.
	TranslateX, TranslateY float64

	Children []Drawable
}

func (*GroupElement) isDrawable() {}
