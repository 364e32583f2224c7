package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/internal/server"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/analyzers"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/pipeline"
)

// runCommand creates the run command: the full analysis batch, optionally
// followed by serving the viewer.
func (c *CLI) runCommand() *cobra.Command {
	var (
		web            bool
		port           int
		onlyTreeSitter bool
		onlyDepends    bool
	)

	cmd := &cobra.Command{
		Use:   "run <language> <source-path> [output-dir]",
		Short: "Analyze a source tree and produce graph artifacts",
		Long: `Run the full analysis batch over a source tree.

The batch has two independent stages: static dependency analysis (depends)
whose raw output is converted into a canonical labeled graph, and per-file
syntax tree extraction (tree-sitter) serialized into graph form under ast/.
Either stage can be skipped. Re-running overwrites prior artifacts in place.

With --web the viewer is started on the output directory afterwards.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyDepends && onlyTreeSitter {
				return fmt.Errorf("--only-depends and --only-tree-sitter are mutually exclusive")
			}

			outDir := c.Config.OutputDir
			if len(args) == 3 {
				outDir = args[2]
			}
			opts := pipeline.Options{
				Language:       args[0],
				SourcePath:     args[1],
				OutputDir:      outDir,
				OnlyDepends:    onlyDepends,
				OnlyTreeSitter: onlyTreeSitter,
			}

			runner := c.newPipelineRunner()
			prog := newProgress(c.Logger)
			spinner := newSpinner(cmd.Context(), fmt.Sprintf("Analyzing %s...", args[1]))
			spinner.Start()
			res, err := runner.Run(cmd.Context(), opts)
			if err != nil {
				spinner.StopWithError("Analysis failed")
				return err
			}
			spinner.Stop()
			prog.done(fmt.Sprintf("Analyzed %s", args[1]))

			if res.GraphPath != "" {
				printFile(res.GraphPath)
			}
			if res.CellsPath != "" {
				printFile(res.CellsPath)
			}
			if res.TreeCount > 0 {
				printDetail("%d syntax trees", res.TreeCount)
			}

			if !web {
				printDetail("View with: %s serve %s", appName, outDir)
				return nil
			}
			srv := server.New(outDir, c.newRenderer(false), c.Logger)
			return srv.ListenAndServe(cmd.Context(), port)
		},
	}

	cmd.Flags().BoolVar(&web, "web", false, "serve the viewer after the batch completes")
	cmd.Flags().IntVarP(&port, "port", "p", c.Config.Port, "viewer port")
	cmd.Flags().BoolVar(&onlyTreeSitter, "only-tree-sitter", false, "skip the dependency analysis stage")
	cmd.Flags().BoolVar(&onlyDepends, "only-depends", false, "skip the syntax tree stage")

	return cmd
}

// newPipelineRunner builds a batch runner with collaborator paths from config.
func (c *CLI) newPipelineRunner() *pipeline.Runner {
	r := pipeline.New(c.Logger)
	r.Depends = analyzers.Depends{JarPath: c.Config.Analyzers.DependsJar, Logger: c.Logger}
	if len(c.Config.Analyzers.TreeSitterCommand) > 0 {
		r.Parser = analyzers.TreeSitter{Command: c.Config.Analyzers.TreeSitterCommand, Logger: c.Logger}
	}
	return r
}
