package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (TOYJSON_*). It respects flags that have been explicitly set
// (changed map). Returns an error if a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBoolFromString("chunks", os.Getenv("TOYJSON_USE_CHUNKS"), &cfg.UseChunks)
	s.setBoolFromString("pretty", os.Getenv("TOYJSON_PRETTY_PRINT"), &cfg.PrettyPrint)
	s.setBoolFromString("verbose-errors", os.Getenv("TOYJSON_VERBOSE_ERRORS"), &cfg.VerboseErrors)
	s.setBoolFromString("watch", os.Getenv("TOYJSON_WATCH"), &cfg.Watch)

	if err := s.setIntFromString("chunk-size", os.Getenv("TOYJSON_CHUNK_SIZE"), &cfg.ChunkSize); err != nil {
		return err
	}
	if err := s.setIntFromString("max-workers", os.Getenv("TOYJSON_MAX_WORKERS"), &cfg.MaxWorkers); err != nil {
		return err
	}

	return nil
}
