package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	toyjson "github.com/robertohuertasm/toy-json-parser"
	"github.com/robertohuertasm/toy-json-parser/internal/cliconfig"
	"github.com/robertohuertasm/toy-json-parser/internal/render"
	"github.com/robertohuertasm/toy-json-parser/internal/watch"
)

const helpDescription = `
Classify the records of an NDJSON file by their "type" field and report
per-category record counts and byte totals.

Highlights:
  - Reads heavy files in bounded chunks classified in parallel (--chunks).
  - Transparently decompresses .gz, .zst and .lz4 inputs.
  - Configure via file, environment (TOYJSON_*), or flags.
  - Re-classifies on every change with --watch.
`

var exampleUsage = strings.TrimSpace(`
  toyjson events.ndjson
  toyjson --chunks --chunk-size 4000000 --pretty big-events.ndjson.gz
  toyjson --watch --verbose-errors events.ndjson
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "toyjson [file]",
		Short:   `Classify NDJSON records by their "type" field`,
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.FilePath = args[0]

			// Load config file first (default $HOME/.toyjson/config.toml),
			// then env vars, then flag overrides win.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			if err := classifyOnce(ctx, cfg, log); err != nil {
				return err
			}
			if !cfg.Watch {
				return nil
			}

			w := watch.New(cfg.FilePath, log, func() {
				if err := classifyOnce(ctx, cfg, log); err != nil {
					log.Error().Err(err).Msg("classification failed")
				}
			})
			log.Info().Str("file", cfg.FilePath).Msg("watching for changes")
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.toyjson/config.toml)")
	root.Flags().BoolVarP(&cfg.UseChunks, "chunks", "c", cfg.UseChunks, "read the file in chunks classified in parallel (best for heavy files)")
	root.Flags().IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "chunk size in bytes used when reading in chunks")
	root.Flags().IntVar(&cfg.MaxWorkers, "max-workers", cfg.MaxWorkers, "maximum concurrent classification workers (0 = number of CPUs)")
	root.Flags().BoolVarP(&cfg.PrettyPrint, "pretty", "p", cfg.PrettyPrint, "render the result as a boxed table")
	root.Flags().BoolVarP(&cfg.VerboseErrors, "verbose-errors", "v", cfg.VerboseErrors, "log individual parse failures to stderr")
	root.Flags().BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "keep running and re-classify whenever the file changes")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("toyjson")
		os.Exit(1)
	}
}

// classifyOnce runs one classification pass over the configured file
// and renders the result table on stdout.
func classifyOnce(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger) error {
	start := time.Now()

	opts := []toyjson.Option{
		toyjson.WithChunkSize(cfg.ChunkSize),
		toyjson.WithMaxWorkers(cfg.MaxWorkers),
		toyjson.WithLogger(log),
		toyjson.WithVerboseErrors(cfg.VerboseErrors),
	}

	var (
		result toyjson.Result
		err    error
	)
	if cfg.UseChunks {
		result, err = toyjson.ClassifyFile(ctx, cfg.FilePath, opts...)
	} else {
		result, err = toyjson.SequentialFile(cfg.FilePath, opts...)
	}
	if err != nil {
		return err
	}

	render.Table(os.Stdout, result, cfg.PrettyPrint)
	log.Info().Dur("elapsed", time.Since(start)).Int("categories", len(result)).Msg("done")
	return nil
}
