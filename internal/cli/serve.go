package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/internal/server"
)

// serveCommand creates the serve command for an existing artifact directory.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		port    int
		graph   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [artifact-dir]",
		Short: "Serve the interactive viewer over converted artifacts",
		Long: `Serve the interactive viewer over a directory of converted artifacts.

The page renders the dependency graph with radially placed nodes; activating
a node overlays the file's syntax tree, laid out hierarchically and rendered
server-side. Raw artifacts remain browsable under /artifacts/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.Config.OutputDir
			if len(args) == 1 {
				dir = args[0]
			}

			srv := server.New(dir, c.newRenderer(noCache), c.Logger)
			srv.DefaultGraph = graph
			printInfo("Serving %s", dir)
			printDetail("%s", StyleLink.Render(fmt.Sprintf("http://localhost:%d", port)))
			return srv.ListenAndServe(cmd.Context(), port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", c.Config.Port, "port to listen on")
	cmd.Flags().StringVar(&graph, "graph", "", "initial graph artifact (default: auto-detected)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
