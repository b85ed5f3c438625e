package svg2vd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "icon.svg")
	dst := filepath.Join(dir, "icon.xml")
	writeFile(t, dir, "icon.svg", `<svg width="24" height="24"><rect width="10" height="10" fill="#FF0000"/></svg>`)

	res, err := ConvertFile(src, dst)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if len(res.Elements) != 1 {
		t.Errorf("elements = %d, want 1", len(res.Elements))
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(out), `android:fillColor="#FF0000"`) {
		t.Errorf("output file missing fill color:\n%s", out)
	}
}

func TestConvertFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "nope.svg"), filepath.Join(dir, "out.xml"))
	if err == nil {
		t.Fatal("ConvertFile accepted a missing source")
	}
}

func TestConvertFileMalformedSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.svg", `<svg><rect`)
	dst := filepath.Join(dir, "bad.xml")

	_, err := ConvertFile(filepath.Join(dir, "bad.svg"), dst)
	if err == nil {
		t.Fatal("ConvertFile accepted malformed XML")
	}
	// No output file may be left behind for a failed conversion.
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Errorf("output file created for failed conversion: %v", statErr)
	}
}

func TestConvertDir(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	writeFile(t, srcDir, "a.svg", `<svg><rect width="1" height="1"/></svg>`)
	writeFile(t, srcDir, "b.svg", `<svg><rect`)
	writeFile(t, srcDir, "c.SVG", `<svg><circle cx="1" cy="1" r="1"/></svg>`)
	writeFile(t, srcDir, "notes.txt", `not an svg`)

	br, err := ConvertDir(srcDir, outDir)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}

	if len(br.Converted) != 2 {
		t.Errorf("converted = %v, want a.svg and c.SVG", br.Converted)
	}
	if len(br.Failed) != 1 {
		t.Fatalf("failed = %v, want only b.svg", br.Failed)
	}
	if _, ok := br.Failed["b.svg"]; !ok {
		t.Errorf("failed map = %v, want b.svg entry", br.Failed)
	}

	for _, name := range []string{"a.xml", "c.xml"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "b.xml")); !os.IsNotExist(err) {
		t.Error("b.xml written despite failed conversion")
	}
	if _, err := os.Stat(filepath.Join(outDir, "notes.xml")); !os.IsNotExist(err) {
		t.Error("non-svg input converted")
	}
}

func TestConvertDirBadSource(t *testing.T) {
	if _, err := ConvertDir(filepath.Join(t.TempDir(), "missing"), t.TempDir()); err == nil {
		t.Fatal("ConvertDir accepted a missing source directory")
	}
}

func TestConvertDirIsolation(t *testing.T) {
	// One failing document must not stop the others.
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, srcDir, "1.svg", `<svg><rect width="1" height="1"/></svg>`)
	writeFile(t, srcDir, "2.svg", `not xml at all <<<<`)
	writeFile(t, srcDir, "3.svg", `<svg><rect width="2" height="2"/></svg>`)

	br, err := ConvertDir(srcDir, outDir)
	if err != nil {
		t.Fatalf("ConvertDir: %v", err)
	}
	if len(br.Converted) != 2 || len(br.Failed) != 1 {
		t.Errorf("converted=%v failed=%v, want 2 converted and 1 failed", br.Converted, br.Failed)
	}
}
