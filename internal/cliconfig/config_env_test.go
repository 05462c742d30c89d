package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("TOYJSON_USE_CHUNKS", "true")
	t.Setenv("TOYJSON_CHUNK_SIZE", "4096")
	t.Setenv("TOYJSON_MAX_WORKERS", "3")
	t.Setenv("TOYJSON_VERBOSE_ERRORS", "1")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if !cfg.UseChunks {
		t.Errorf("UseChunks = false, want true")
	}
	if cfg.ChunkSize != 4096 {
		t.Errorf("ChunkSize = %v, want 4096", cfg.ChunkSize)
	}
	if cfg.MaxWorkers != 3 {
		t.Errorf("MaxWorkers = %v, want 3", cfg.MaxWorkers)
	}
	if !cfg.VerboseErrors {
		t.Errorf("VerboseErrors = false, want true")
	}
}

func TestApplyEnvConfig_FlagPrecedence(t *testing.T) {
	t.Setenv("TOYJSON_CHUNK_SIZE", "4096")

	cfg := DefaultConfig()
	cfg.ChunkSize = 512
	if err := ApplyEnvConfig(&cfg, map[string]bool{"chunk-size": true}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.ChunkSize != 512 {
		t.Errorf("ChunkSize = %v, want flag value preserved (512)", cfg.ChunkSize)
	}
}

func TestApplyEnvConfig_InvalidInt(t *testing.T) {
	t.Setenv("TOYJSON_CHUNK_SIZE", "not-a-number")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatal("ApplyEnvConfig() expected error for invalid int")
	}
}
