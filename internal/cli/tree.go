package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/analyzers"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/tree"
)

// treeCommand creates the tree command: serialize one syntax tree into
// labeled graph form.
func (c *CLI) treeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Serialize a syntax tree into labeled graph form",
		Long: `Serialize one syntax tree into the labeled-node graph dialect.

The input is either a JSON tree dump (*.json) or a source file, which is
parsed through the configured tree-sitter dump tool first. Node IDs are
assigned in pre-order (n0, n1, ...), one declaration line per tree node and
one edge line per parent-child relation.

Output goes to stdout unless -o names a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			var (
				root *tree.ParsedNode
				err  error
			)
			if strings.HasSuffix(input, ".json") {
				root, err = tree.DecodeFile(input)
			} else {
				parser := analyzers.TreeSitter{
					Command: c.Config.Analyzers.TreeSitterCommand,
					Logger:  c.Logger,
				}
				root, err = parser.ParseFile(cmd.Context(), input)
			}
			if err != nil {
				return err
			}

			text := tree.Serialize("ast", root)
			if output == "" {
				fmt.Print(text)
				return nil
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return err
			}
			printSuccess("Serialized %s", input)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
