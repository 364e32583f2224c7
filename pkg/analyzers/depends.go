// Package analyzers wraps the two external collaborators: the "depends"
// static dependency analyzer and the tree-sitter parser CLI. Both are black
// boxes invoked as subprocesses; this package owns nothing but their
// invocation contracts and error propagation. A collaborator failure is
// fatal for the batch.
package analyzers

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	apperrors "github.com/ramran505/depends-tree-sitter-visualizer/pkg/errors"
)

// RawGraphName is the base name the dependency analyzer is asked to emit.
const RawGraphName = "deps"

// Depends invokes the depends analyzer jar.
type Depends struct {
	// JarPath locates depends.jar; defaults to "depends.jar" on PATH-relative
	// lookup when empty.
	JarPath string
	Logger  *log.Logger
}

// Run analyzes sourcePath for the given language and writes the raw graph
// artifacts into outDir. It returns the path of the raw dot output.
//
// The analyzer emits numeric-ID edges with the ID table embedded as comment
// lines, plus the structured cells side file; both are converted downstream
// by pkg/convert.
func (d Depends) Run(ctx context.Context, language, sourcePath, outDir string) (string, error) {
	jar := d.JarPath
	if jar == "" {
		jar = "depends.jar"
	}

	args := []string{
		"-jar", jar,
		"-d", outDir,
		"-f", "dot,json",
		language, sourcePath, RawGraphName,
	}
	d.Logger.Debugf("Running depends: java %v", args)

	cmd := exec.CommandContext(ctx, "java", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		d.Logger.Errorf("depends stderr: %s", stderr.String())
		return "", apperrors.Wrap(apperrors.ErrCodeAnalyzerFailed, err,
			"depends analysis of %s failed", sourcePath)
	}

	rawPath := filepath.Join(outDir, RawGraphName+".dot")
	if _, err := os.Stat(rawPath); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeAnalyzerFailed, err,
			"depends produced no graph at %s", rawPath)
	}
	return rawPath, nil
}
