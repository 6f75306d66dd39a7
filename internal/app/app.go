// Package app wires the scrape and process pipelines together around one
// config and one injected logger.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/yogatools/asanascrape/internal/download"
	"github.com/yogatools/asanascrape/internal/extract"
	"github.com/yogatools/asanascrape/internal/fetch"
	"github.com/yogatools/asanascrape/internal/manifest"
)

// ManifestName is the file written into the output directory by Scrape.
const ManifestName = "asanas.json"

// ImagesSubdir is the directory under the output dir holding downloaded PNGs.
const ImagesSubdir = "images"

type App struct {
	cfg Config
	log zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// Scrape runs fetch → extract → download → export. A page fetch failure is
// fatal to the run; per-image failures are isolated inside the download pool.
func (a *App) Scrape(ctx context.Context) error {
	client := &fetch.Client{
		HTTPClient:        newSharedHTTPClient(),
		UserAgent:         a.cfg.UserAgent,
		PerRequestTimeout: a.cfg.Timeout,
	}

	a.log.Info().Str("url", a.cfg.PageURL).Msg("fetching page")
	body, err := client.Page(ctx, a.cfg.PageURL)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	ex := &extract.Extractor{Hints: a.cfg.FolderHints, Log: a.log}
	candidates, err := ex.FromHTML(a.cfg.PageURL, body)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	a.log.Info().Int("count", len(candidates)).Msg("found asana images")

	pool := &download.Pool{
		Client:  client,
		Dir:     filepath.Join(a.cfg.OutputDir, ImagesSubdir),
		Workers: a.cfg.MaxWorkers,
		Log:     a.log,
	}
	records, err := pool.Run(ctx, candidates)
	if err != nil {
		return err
	}

	out := filepath.Join(a.cfg.OutputDir, ManifestName)
	if err := manifest.Write(out, records); err != nil {
		return err
	}
	a.log.Info().Str("out", out).Int("records", len(records)).Msg("wrote manifest")
	return nil
}
