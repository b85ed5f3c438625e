package svg2vd

import "errors"

// ErrMalformedGeometry reports geometry that cannot form a valid
// shape, such as an odd number of coordinates in a points list. The
// group flattener recovers from it per element, converting it into a
// warning rather than failing the document.
var ErrMalformedGeometry = errors.New("svg2vd: malformed geometry")
