// Package download fans out over the extracted candidates with a bounded
// worker pool, normalizing each image to an opaque PNG on disk.
package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yogatools/asanascrape/internal/extract"
	"github.com/yogatools/asanascrape/internal/fetch"
	"github.com/yogatools/asanascrape/internal/imageproc"
	"github.com/yogatools/asanascrape/internal/manifest"
)

// DefaultWorkers bounds the fan-out when no pool size is configured.
const DefaultWorkers = 4

// Pool downloads candidate images concurrently. The fetch client is shared
// read-only across workers; each worker writes its own {id}.png so workers
// never contend on a file.
type Pool struct {
	Client  *fetch.Client
	Dir     string
	Workers int
	Log     zerolog.Logger
}

type result struct {
	id     string
	record manifest.Record
	err    error
}

// Run processes every candidate with a bounded number of workers and returns
// the records that made it to disk. Failures are isolated per item: logged,
// dropped, and siblings keep going; the run always drains the full candidate
// set. Returned records are in completion order, not document order.
func (p *Pool) Run(ctx context.Context, candidates []extract.Candidate) ([]manifest.Record, error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	results := make(chan result, len(candidates))
	for _, c := range candidates {
		wg.Add(1)
		go func(c extract.Candidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			rec, err := p.downloadOne(ctx, c)
			results <- result{id: c.ID, record: rec, err: err}
		}(c)
	}
	wg.Wait()
	close(results)

	records := make([]manifest.Record, 0, len(candidates))
	for r := range results {
		if r.err != nil {
			p.Log.Error().Err(r.err).Str("id", r.id).Msg("dropping image")
			continue
		}
		p.Log.Info().Str("id", r.record.ID).Str("path", r.record.LocalPath).Msg("saved image")
		records = append(records, r.record)
	}
	return records, nil
}

func (p *Pool) downloadOne(ctx context.Context, c extract.Candidate) (manifest.Record, error) {
	data, err := p.Client.Image(ctx, c.SourceURL)
	if err != nil {
		return manifest.Record{}, fmt.Errorf("fetch image: %w", err)
	}
	img, err := imageproc.Decode(data)
	if err != nil {
		return manifest.Record{}, fmt.Errorf("decode image: %w", err)
	}
	path := filepath.Join(p.Dir, c.ID+".png")
	if err := imageproc.SavePNG(imageproc.Flatten(img), path); err != nil {
		return manifest.Record{}, err
	}
	return manifest.Record{
		ID:        c.ID,
		Name:      c.Name,
		SourceURL: c.SourceURL,
		LocalPath: path,
	}, nil
}
