// Package cli implements the dtsviz command-line interface.
//
// This package provides commands for running the two-stage analysis batch,
// converting raw analyzer graphs, serializing syntax trees, serving the
// interactive viewer, inspecting syntax trees in the terminal, and managing
// the render cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/buildinfo"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/cache"
	"github.com/ramran505/depends-tree-sitter-visualizer/pkg/render"
)

// appName is the application name used for directories and display.
const appName = "dtsviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the config
// resolved from the working directory.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Visualize dependency graphs and syntax trees of a codebase",
		Long:         `dtsviz runs static dependency analysis and tree-sitter parsing over a source tree, converts the raw output into canonical labeled graph artifacts, and serves them in an interactive viewer where activating a file node overlays its syntax tree.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// newRenderer builds the shared SVG renderer backed by the configured cache.
func (c *CLI) newRenderer(noCache bool) *render.Renderer {
	if noCache {
		return render.NewRenderer(cache.NewNullCache())
	}
	return render.NewRenderer(c.newCache())
}

// newCache selects the cache backend from config: redis when an address is
// configured, the XDG file cache otherwise. Backend failures degrade to no
// caching rather than failing the command.
func (c *CLI) newCache() cache.Cache {
	switch c.Config.Cache.Backend {
	case "none":
		return cache.NewNullCache()
	case "redis":
		rc, err := cache.NewRedisCache(context.Background(), c.Config.Cache.RedisAddr, appName)
		if err != nil {
			c.Logger.Warnf("Redis cache unavailable (%v), continuing uncached", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warnf("File cache unavailable (%v), continuing uncached", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/dtsviz/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
