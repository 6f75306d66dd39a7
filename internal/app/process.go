package app

import (
	"github.com/yogatools/asanascrape/internal/manifest"
	"github.com/yogatools/asanascrape/internal/similar"
)

// Process runs the similarity ranking pass over an existing manifest. Failure
// to load the input is fatal; the ranking itself cannot fail.
func (a *App) Process() error {
	records, err := manifest.Load(a.cfg.InputFile)
	if err != nil {
		return err
	}
	a.log.Info().Int("records", len(records)).Str("in", a.cfg.InputFile).Msg("ranking similar asanas")

	processed := similar.Process(records, a.cfg.MaxSimilar)

	out := a.cfg.OutputFile
	if out == "" {
		out = manifest.ProcessedPath(a.cfg.InputFile)
	}
	if err := manifest.WriteProcessed(out, processed); err != nil {
		return err
	}
	a.log.Info().Str("out", out).Msg("wrote processed manifest")
	return nil
}
