package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ramran505/depends-tree-sitter-visualizer/internal/server"
)

// ConfigFile is the optional per-project config, looked up in the working
// directory. Flags override config values.
const ConfigFile = "dtsviz.toml"

// Config holds per-project settings.
type Config struct {
	// Port the viewer binds.
	Port int `toml:"port"`

	// OutputDir is the default artifact directory for run and serve.
	OutputDir string `toml:"output_dir"`

	Analyzers AnalyzersConfig `toml:"analyzers"`
	Cache     CacheConfig     `toml:"cache"`
}

// AnalyzersConfig locates the external collaborators.
type AnalyzersConfig struct {
	// DependsJar is the path to depends.jar.
	DependsJar string `toml:"depends_jar"`

	// TreeSitterCommand is the tree dump tool invocation, e.g.
	// ["python3", "dump_tree.py"]. The source file path is appended.
	TreeSitterCommand []string `toml:"tree_sitter_command"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis", or "none".
	Backend string `toml:"backend"`

	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Port:      server.DefaultPort,
		OutputDir: "out",
		Cache:     CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
	}
}

// LoadConfig reads a config file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads ./dtsviz.toml if present; a missing file yields
// the defaults, a malformed one as well (commands still run without it).
func LoadConfigOrDefault() Config {
	if _, err := os.Stat(ConfigFile); err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(ConfigFile)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}
