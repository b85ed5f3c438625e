package svg2vd

import (
	"maps"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Style
	}{
		{"empty", "", Style{}},
		{"whitespace only", "   ", Style{}},
		{"single declaration", "fill:red", Style{"fill": "red"}},
		{"two declarations", "fill: red; stroke: blue", Style{"fill": "red", "stroke": "blue"}},
		{"trailing semicolon", "fill:red;", Style{"fill": "red"}},
		{"space around colon", "fill : red ; stroke :blue", Style{"fill": "red", "stroke": "blue"}},
		{"segment without colon dropped", "fill:red;bogus;stroke:blue", Style{"fill": "red", "stroke": "blue"}},
		{"gradient url value", "fill:url(#grad1)", Style{"fill": "url(#grad1)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStyle(tt.in)
			if !maps.Equal(got, tt.want) {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleMerge(t *testing.T) {
	parent := Style{"fill": "red", "stroke": "blue"}
	child := Style{"fill": "green"}

	merged := parent.Merge(child)

	want := Style{"fill": "green", "stroke": "blue"}
	if !maps.Equal(merged, want) {
		t.Errorf("Merge = %v, want %v", merged, want)
	}

	// Neither input may be mutated by the merge.
	if parent["fill"] != "red" || len(parent) != 2 {
		t.Errorf("parent mutated by Merge: %v", parent)
	}
	if child["fill"] != "green" || len(child) != 1 {
		t.Errorf("child mutated by Merge: %v", child)
	}
}

func TestStyleMergeNilReceiver(t *testing.T) {
	var parent Style
	merged := parent.Merge(Style{"fill": "red"})
	if merged["fill"] != "red" {
		t.Errorf("nil.Merge = %v, want fill:red", merged)
	}
}

func TestGradientRefID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"url(#grad1)", "grad1"},
		{"url(#MyGrad)", "mygrad"},
		{"url(#a) extra", "a"},
		{"url()", ""},
		{"url(#)", ""},
		{"red", ""},
	}
	for _, tt := range tests {
		if got := gradientRefID(tt.in); got != tt.want {
			t.Errorf("gradientRefID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func newTestConverter() *Converter {
	return &Converter{
		viewport:  Viewport{Width: 24, Height: 24},
		gradients: GradientRegistry{},
		warn:      &warningList{},
	}
}

func TestResolveStyleFillPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		attrs     map[string]string
		inherited Style
		wantFill  string
	}{
		{
			name:     "default fill when nothing specified",
			attrs:    map[string]string{},
			wantFill: "#000000",
		},
		{
			name:     "attribute beats default",
			attrs:    map[string]string{"fill": "blue"},
			wantFill: "blue",
		},
		{
			name:      "attribute beats inherited",
			attrs:     map[string]string{"fill": "blue"},
			inherited: Style{"fill": "red"},
			wantFill:  "blue",
		},
		{
			name:     "inline style beats attribute",
			attrs:    map[string]string{"fill": "blue", "style": "fill:green"},
			wantFill: "green",
		},
		{
			name:      "inherited beats default",
			attrs:     map[string]string{},
			inherited: Style{"fill": "red"},
			wantFill:  "red",
		},
		{
			name:     "explicit none preserved",
			attrs:    map[string]string{"fill": "none"},
			wantFill: "none",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConverter()
			el := &Element{Tag: "rect", Attrs: tt.attrs}
			inherited := tt.inherited
			if inherited == nil {
				inherited = Style{}
			}
			rs := c.resolveStyle(el, "#000000", inherited)
			if rs.fill != tt.wantFill {
				t.Errorf("fill = %q, want %q", rs.fill, tt.wantFill)
			}
		})
	}
}

func TestResolveStyleStrokeNotInherited(t *testing.T) {
	c := newTestConverter()
	el := &Element{Tag: "rect", Attrs: map[string]string{}}
	rs := c.resolveStyle(el, "#000000", Style{"stroke": "red", "stroke-width": "2"})
	if rs.stroke != "" {
		t.Errorf("stroke = %q, want empty: stroke does not inherit", rs.stroke)
	}
	if rs.strokeWidth != "" {
		t.Errorf("strokeWidth = %q, want empty", rs.strokeWidth)
	}
}

func TestResolveStyleStroke(t *testing.T) {
	c := newTestConverter()
	el := &Element{Tag: "path", Attrs: map[string]string{
		"stroke":       "red",
		"stroke-width": "2",
		"style":        "stroke:blue",
	}}
	rs := c.resolveStyle(el, "#000000", Style{})
	if rs.stroke != "blue" {
		t.Errorf("stroke = %q, want %q (inline style wins)", rs.stroke, "blue")
	}
	if rs.strokeWidth != "2" {
		t.Errorf("strokeWidth = %q, want %q", rs.strokeWidth, "2")
	}
}

func TestResolveStyleUnresolvableGradient(t *testing.T) {
	c := newTestConverter()
	el := &Element{Tag: "rect", Attrs: map[string]string{
		"id":   "r1",
		"fill": "url(#missing)",
	}}
	rs := c.resolveStyle(el, "#000000", Style{})
	if rs.gradient != nil {
		t.Errorf("gradient = %v, want nil", rs.gradient)
	}
	if rs.fill != "" {
		t.Errorf("fill = %q, want empty for unresolved gradient", rs.fill)
	}
	if len(c.warn.list) != 1 {
		t.Fatalf("warnings = %d, want 1", len(c.warn.list))
	}
	if c.warn.list[0].ID != "r1" {
		t.Errorf("warning id = %q, want %q", c.warn.list[0].ID, "r1")
	}
}
