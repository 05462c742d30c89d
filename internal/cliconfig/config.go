package cliconfig

import (
	"fmt"
	"path/filepath"

	"github.com/robertohuertasm/toy-json-parser/internal/classifier"
)

// Config holds CLI configuration for toyjson.
type Config struct {
	// FilePath is the NDJSON file to classify. Relative paths resolve
	// against the working directory during Validate.
	FilePath string

	// UseChunks selects the concurrent chunked engine instead of the
	// sequential reference algorithm.
	UseChunks bool

	// ChunkSize is the maximum chunk size in bytes for the chunked
	// engine.
	ChunkSize int

	// MaxWorkers bounds concurrent classification workers. Zero means
	// one worker per CPU.
	MaxWorkers int

	PrettyPrint   bool
	VerboseErrors bool

	// Watch keeps the process running and re-classifies the file on
	// every change.
	Watch bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ChunkSize: classifier.DefaultChunkSize,
	}
}

// Validate checks the configuration for errors and resolves the file
// path against the working directory.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("file path is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive")
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max workers must not be negative")
	}

	abs, err := filepath.Abs(c.FilePath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	c.FilePath = abs

	return nil
}
