package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goextract/internal/enhance"
	"github.com/hyperifyio/goextract/internal/extract"
	"github.com/hyperifyio/goextract/internal/fetch"
	"github.com/hyperifyio/goextract/internal/output"
	"github.com/hyperifyio/goextract/internal/sanitize"
)

// Fetcher retrieves raw page bytes.
type Fetcher interface {
	Get(ctx context.Context, url string) (*fetch.Page, error)
}

type App struct {
	cfg       Config
	out       io.Writer
	fetcher   Fetcher
	extractor extract.Extractor
	enhancer  enhance.Enhancer
}

// New wires the pipeline stages. Diagnostics are printed to out.
func New(cfg Config, out io.Writer) (*App, error) {
	css := ""
	if cfg.StylesheetFile != "" {
		b, err := os.ReadFile(cfg.StylesheetFile)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		css = string(b)
	}
	if out == nil {
		out = io.Discard
	}
	fc := fetch.NewClient()
	if cfg.UserAgent != "" {
		fc.UserAgent = cfg.UserAgent
	}
	if cfg.Timeout > 0 {
		fc.Timeout = cfg.Timeout
	}
	fc.HTTPClient = newFetchHTTPClient(fc.Timeout)
	return &App{
		cfg:       cfg,
		out:       out,
		fetcher:   fc,
		extractor: extract.KeywordExtractor{},
		enhancer:  enhance.New(css),
	}, nil
}

// WithFetcher replaces the HTTP fetcher, mainly for tests.
func (a *App) WithFetcher(f Fetcher) *App {
	a.fetcher = f
	return a
}

// Run executes fetch, sanitize, extract, enhance and write in order. The first
// failing stage prints a one-line diagnostic and stops the pipeline, so no
// partial output is written.
func (a *App) Run(ctx context.Context) error {
	log.Info().Str("url", a.cfg.URL).Msg("extracting content")

	page, err := a.fetcher.Get(ctx, a.cfg.URL)
	if err != nil {
		return a.fail("Failed to extract content", err)
	}
	doc, err := sanitize.Sanitize(bytes.NewReader(page.Body), page.ContentType)
	if err != nil {
		return a.fail("Failed to extract content", err)
	}

	core, err := a.extractor.Extract(doc)
	if err != nil {
		return a.fail("Failed to find core content", err)
	}
	enhanced, err := a.enhancer.Enhance(core)
	if err != nil {
		return a.fail("Failed to find core content", err)
	}

	path, err := output.Write(enhanced, a.cfg.URL, a.cfg.OutputPath)
	if err != nil {
		return a.fail("Failed to save content", err)
	}
	fmt.Fprintf(a.out, "Content successfully saved to: %s\n", path)
	log.Debug().Str("out", path).Msg("wrote output")
	return nil
}

func (a *App) fail(msg string, err error) error {
	fmt.Fprintf(a.out, "%s: %v\n", msg, err)
	return err
}
