package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses pointers for booleans so an
// unset key can be told apart from an explicit false.
type FileConfig struct {
	UseChunks     *bool `toml:"use_chunks"`
	ChunkSize     int   `toml:"chunk_size"`
	MaxWorkers    int   `toml:"max_workers"`
	PrettyPrint   *bool `toml:"pretty_print"`
	VerboseErrors *bool `toml:"verbose_errors"`
	Watch         *bool `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.toyjson/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".toyjson", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setBool("chunks", fc.UseChunks, &cfg.UseChunks)
	s.setInt("chunk-size", fc.ChunkSize, &cfg.ChunkSize)
	s.setInt("max-workers", fc.MaxWorkers, &cfg.MaxWorkers)
	s.setBool("pretty", fc.PrettyPrint, &cfg.PrettyPrint)
	s.setBool("verbose-errors", fc.VerboseErrors, &cfg.VerboseErrors)
	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
