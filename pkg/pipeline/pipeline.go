// Package pipeline orchestrates a full analysis batch: dependency analysis
// and graph conversion, then per-file syntax tree extraction and
// serialization. The two stages are independent and individually skippable;
// collaborator failures abort the batch, per-file parse failures inside the
// tree stage are logged and skipped.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/analyzers"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/convert"
	apperrors "github.com/ramran505/depends-tree-sitter-visualizer/pkg/errors"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/tree"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/view"
)

// Options configures a batch run.
type Options struct {
	Language   string
	SourcePath string
	OutputDir  string

	// Stage toggles. Both false means run both.
	OnlyDepends    bool
	OnlyTreeSitter bool
}

// Result summarizes the artifacts a batch produced.
type Result struct {
	GraphPath string // canonical dependency graph, empty if stage skipped
	CellsPath string // rewritten cells file, empty if absent
	TreeCount int    // syntax tree artifacts written
}

// Runner executes analysis batches.
type Runner struct {
	Depends analyzers.Depends
	Parser  analyzers.Parser
	Logger  *log.Logger
}

// New builds a Runner with default collaborator invocations.
func New(logger *log.Logger) *Runner {
	return &Runner{
		Depends: analyzers.Depends{Logger: logger},
		Parser:  analyzers.TreeSitter{Logger: logger},
		Logger:  logger,
	}
}

// Run executes the configured stages. Re-running with the same options
// overwrites prior artifacts in place.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	if err := analyzers.ValidateLanguage(opts.Language); err != nil {
		return Result{}, err
	}
	if _, err := os.Stat(opts.SourcePath); err != nil {
		return Result{}, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err,
			"source path %s", opts.SourcePath)
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var res Result
	if !opts.OnlyTreeSitter {
		if err := r.runDepends(ctx, opts, &res); err != nil {
			return res, err
		}
	}
	if !opts.OnlyDepends {
		if err := r.runTrees(ctx, opts, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Runner) runDepends(ctx context.Context, opts Options, res *Result) error {
	r.Logger.Infof("Analyzing dependencies of %s", opts.SourcePath)
	rawPath, err := r.Depends.Run(ctx, opts.Language, opts.SourcePath, opts.OutputDir)
	if err != nil {
		return err
	}

	converted, err := convert.ConvertGraphFile(rawPath, opts.OutputDir, r.Logger)
	if err != nil {
		return err
	}
	res.GraphPath = converted.GraphPath
	res.CellsPath = converted.CellsPath
	r.Logger.Infof("Wrote %s", converted.GraphPath)
	return nil
}

// runTrees walks the source tree, parses each source file, and writes its
// serialized syntax tree under <out>/ast/ keyed by the file's path relative
// to the source root. The relative key is what the viewer's candidate
// resolution probes first.
func (r *Runner) runTrees(ctx context.Context, opts Options, res *Result) error {
	astDir := filepath.Join(opts.OutputDir, view.ASTPrefix)
	if err := os.MkdirAll(astDir, 0755); err != nil {
		return fmt.Errorf("create ast dir: %w", err)
	}

	root := opts.SourcePath
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !analyzers.IsSourceFile(opts.Language, path) {
			return nil
		}

		parsed, err := r.Parser.ParseFile(ctx, path)
		if err != nil {
			r.Logger.Warnf("Skipping %s: %v", path, err)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		rel = filepath.ToSlash(rel)

		outPath := filepath.Join(astDir, filepath.FromSlash(rel)+view.TreeSuffix+".dot")
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(outPath), err)
		}
		text := tree.Serialize(view.ASTPrefix, parsed)
		if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		res.TreeCount++
		r.Logger.Debugf("Wrote %s", outPath)
		return nil
	})
}
