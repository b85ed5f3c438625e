package svg2vd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConvertFile converts a single SVG file into a vector drawable XML
// file. The returned Result carries the converted elements and any
// warnings, so callers can inspect or post-process beyond the written
// file.
func ConvertFile(src, dst string) (*Result, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", src, err)
	}
	res := Convert(root)

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	if err := WriteVector(out, res); err != nil {
		out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	return res, nil
}

// BatchResult summarizes a directory conversion: the source file names
// that converted and the ones that failed, with their errors.
type BatchResult struct {
	Converted []string
	Failed    map[string]error
}

// ConvertDir converts every *.svg file (case-insensitive suffix) in
// srcDir into a same-named *.xml file in outDir, creating outDir if
// needed. Conversions are isolated: a failing document is logged and
// recorded, and the rest of the batch proceeds unaffected. The only
// returned error is a setup failure (unreadable source directory,
// uncreatable output directory).
func ConvertDir(srcDir, outDir string) (*BatchResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}
	br := &BatchResult{Failed: map[string]error{}}
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(strings.ToLower(ent.Name()), ".svg") {
			continue
		}
		src := filepath.Join(srcDir, ent.Name())
		base := strings.TrimSuffix(ent.Name(), filepath.Ext(ent.Name()))
		dst := filepath.Join(outDir, base+".xml")

		res, err := ConvertFile(src, dst)
		if err != nil {
			logger().Warn("conversion failed", "src", src, "err", err)
			br.Failed[ent.Name()] = err
			continue
		}
		logger().Info("converted", "src", src, "dst", dst,
			"elements", len(res.Elements), "warnings", len(res.Warnings))
		br.Converted = append(br.Converted, ent.Name())
	}
	return br, nil
}
