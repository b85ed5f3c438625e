package svg2vd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is one node of a parsed SVG document tree: a
// namespace-stripped, lowercased tag name, its attributes, and its
// ordered child elements. Attribute names keep their original case
// (SVG attribute names are case-sensitive, e.g. viewBox).
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// Attr returns the value of the named attribute, or "" if unset.
func (e *Element) Attr(name string) string {
	return e.Attrs[name]
}

// ID returns the element's id attribute, or "" if unset.
func (e *Element) ID() string {
	return e.Attrs["id"]
}

var errNoRootElement = errors.New("svg2vd: document has no root element")

// ParseDocument reads an XML document into an Element tree. The
// decoder is charset-aware, so documents with non-UTF-8 encoding
// declarations decode correctly. Character data is discarded; only
// element structure and attributes are kept.
//
// A failure here is the only fatal per-document error in the pipeline;
// everything downstream recovers locally.
func ParseDocument(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svg2vd: parse document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Tag:   strings.ToLower(t.Name.Local),
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root == nil {
					root = el
				}
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, errNoRootElement
	}
	return root, nil
}
