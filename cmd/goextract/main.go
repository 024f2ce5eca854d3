// Command goextract fetches a web page, keeps its main content and saves it
// as a standalone HTML file.
//
// Usage:
//
//	goextract <url> [-o output.html]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		// Only usage errors reach here; pipeline failures are reported by run.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run resolves configuration and executes the pipeline. Failures are printed
// to out as a single diagnostic line and also returned.
func run(ctx context.Context, cfg app.Config, out io.Writer) error {
	cfg, err := app.LoadConfig(cfg)
	if err != nil {
		fmt.Fprintf(out, "Invalid configuration: %v\n", err)
		return err
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("version", app.BuildVersion).Str("commit", app.BuildCommit).Msg("goextract")

	a, err := app.New(cfg, out)
	if err != nil {
		fmt.Fprintf(out, "Invalid configuration: %v\n", err)
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
