package analyzers

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/charmbracelet/log"

	apperrors "github.com/ramran505/depends-tree-sitter-visualizer/pkg/errors"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/tree"
)

// Parser produces a syntax tree for a single source file.
type Parser interface {
	ParseFile(ctx context.Context, path string) (*tree.ParsedNode, error)
}

// TreeSitter shells out to a tree-sitter based dump tool that prints the
// parsed tree as JSON on stdout.
type TreeSitter struct {
	// Command is the dump tool invocation; the source file path is appended
	// as the final argument. Defaults to {"ts-dump"}.
	Command []string
	Logger  *log.Logger
}

func (t TreeSitter) ParseFile(ctx context.Context, path string) (*tree.ParsedNode, error) {
	command := t.Command
	if len(command) == 0 {
		command = []string{"ts-dump"}
	}
	args := append(append([]string{}, command[1:]...), path)
	t.Logger.Debugf("Parsing %s with %s", path, command[0])

	cmd := exec.CommandContext(ctx, command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Logger.Errorf("tree-sitter stderr: %s", stderr.String())
		return nil, apperrors.Wrap(apperrors.ErrCodeParserFailed, err,
			"tree-sitter parse of %s failed", path)
	}

	root, err := tree.Decode(&stdout)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeParserFailed, err,
			"malformed tree dump for %s", path)
	}
	return root, nil
}
