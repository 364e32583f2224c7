package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/convert"
)

// convertCommand creates the convert command for standalone conversion of a
// raw analyzer graph.
func (c *CLI) convertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <raw.dot>",
		Short: "Convert a raw analyzer graph into canonical labeled form",
		Long: `Convert a raw dependency graph into its canonical form.

The raw graph uses numeric node IDs with the ID-to-path table embedded as
comment lines. Conversion resolves each ID to the file's base name, rewrites
every edge into quoted-label form, strips the comment table, and rewrites
the structured side file (if present) alongside. A missing side file is not
an error; the graph artifact has independent value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := convert.ConvertGraphFile(args[0], output, c.Logger)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			printSuccess("Converted %s", args[0])
			printFile(res.GraphPath)
			if res.CellsPath != "" {
				printFile(res.CellsPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory (default: alongside the input)")

	return cmd
}
