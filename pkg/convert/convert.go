package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Output naming: a raw artifact X.dot converts to X.converted.dot, and its
// side file X.json to X.converted.json. The marker keeps raw and canonical
// artifacts distinguishable in a shared output directory.
const ConvertedMarker = ".converted"

// Result describes the artifacts written by a conversion.
type Result struct {
	GraphPath string // canonical quoted-label graph text
	CellsPath string // rewritten cells file, empty if side file was absent
}

// ConvertGraphFile converts one raw analyzer graph into its canonical form:
// labels resolved from the embedded comment table, numeric edges rewritten,
// comments stripped. If a structured side file with the same base name is
// present, it is rewritten alongside; a missing or malformed side file is
// logged and skipped, because the graph artifact has independent value.
//
// Conversion is idempotent: re-running overwrites prior output in place.
func ConvertGraphFile(rawPath, outDir string, logger *log.Logger) (Result, error) {
	raw, err := os.ReadFile(rawPath)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", rawPath, err)
	}

	labels := ResolveLabels(string(raw))
	logger.Debugf("Resolved %d labels from %s", len(labels), filepath.Base(rawPath))
	canonical := RewriteGraph(string(raw), labels)

	if outDir == "" {
		outDir = filepath.Dir(rawPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create %s: %w", outDir, err)
	}

	res := Result{GraphPath: filepath.Join(outDir, convertedName(rawPath))}
	if err := os.WriteFile(res.GraphPath, []byte(canonical), 0644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", res.GraphPath, err)
	}

	res.CellsPath = convertCells(rawPath, outDir, logger)
	return res, nil
}

// convertCells rewrites the structured side file next to rawPath, if any.
// Returns the output path, or empty when the side file was absent or broken.
func convertCells(rawPath, outDir string, logger *log.Logger) string {
	sidePath := stem(rawPath) + ".json"
	data, err := os.ReadFile(sidePath)
	if os.IsNotExist(err) {
		logger.Debugf("No cells file at %s", sidePath)
		return ""
	}
	if err != nil {
		logger.Warnf("Skipping cells file %s: %v", sidePath, err)
		return ""
	}

	if err := ValidateCells(data); err != nil {
		logger.Warnf("Cells file %s: %v", sidePath, err)
	}

	out, err := RewriteCells(data)
	if err != nil {
		logger.Warnf("Skipping cells file %s: %v", sidePath, err)
		return ""
	}

	outPath := filepath.Join(outDir, filepath.Base(stem(rawPath))+ConvertedMarker+".json")
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		logger.Warnf("Write cells file %s: %v", outPath, err)
		return ""
	}
	return outPath
}

// convertedName maps raw.dot → raw.converted.dot.
func convertedName(rawPath string) string {
	base := filepath.Base(rawPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ConvertedMarker + ext
}

// stem strips the extension from a path, keeping the directory.
func stem(p string) string {
	return strings.TrimSuffix(p, filepath.Ext(p))
}
