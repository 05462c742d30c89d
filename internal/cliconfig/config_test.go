package cliconfig

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ChunkSize != 1_000_000 {
		t.Errorf("ChunkSize = %v, want 1000000", cfg.ChunkSize)
	}
	if cfg.UseChunks {
		t.Errorf("UseChunks = true, want false")
	}
	if cfg.MaxWorkers != 0 {
		t.Errorf("MaxWorkers = %v, want 0", cfg.MaxWorkers)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid minimal config",
			config:  Config{FilePath: "data.ndjson", ChunkSize: 1_000_000},
			wantErr: false,
		},
		{
			name:    "missing file path",
			config:  Config{ChunkSize: 1_000_000},
			wantErr: true,
		},
		{
			name:    "zero chunk size",
			config:  Config{FilePath: "data.ndjson"},
			wantErr: true,
		},
		{
			name:    "negative chunk size",
			config:  Config{FilePath: "data.ndjson", ChunkSize: -1},
			wantErr: true,
		},
		{
			name:    "negative max workers",
			config:  Config{FilePath: "data.ndjson", ChunkSize: 1_000, MaxWorkers: -2},
			wantErr: true,
		},
		{
			name:    "explicit max workers",
			config:  Config{FilePath: "data.ndjson", ChunkSize: 1_000, MaxWorkers: 8},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_ResolvesPath(t *testing.T) {
	cfg := Config{FilePath: "data.ndjson", ChunkSize: 1_000}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !filepath.IsAbs(cfg.FilePath) {
		t.Errorf("FilePath = %v, want absolute path", cfg.FilePath)
	}
	if filepath.Base(cfg.FilePath) != "data.ndjson" {
		t.Errorf("FilePath base = %v, want data.ndjson", filepath.Base(cfg.FilePath))
	}
}
