package app

import "time"

// Defaults for the scrape target. The page URL and folder hint identify where
// the asana images live on the source site; both can be overridden by flag or
// config file.
const (
	DefaultPageURL    = "https://www.devvratyoga.com/learning-resources/ashtanga-yoga-asanas-with-names-images/"
	DefaultFolderHint = "uploads/2019/07/"
	DefaultOutputDir  = "asanas"
	DefaultUserAgent  = "asanascrape/1.0 (+https://github.com/yogatools/asanascrape)"
	DefaultTimeout    = 15 * time.Second
	DefaultMaxWorkers = 4
	DefaultMaxSimilar = 4
)

// Config holds runtime configuration for both pipelines.
type Config struct {
	// Scrape
	PageURL     string
	FolderHints []string
	OutputDir   string
	MaxWorkers  int
	UserAgent   string
	Timeout     time.Duration

	// Process
	InputFile  string
	OutputFile string
	MaxSimilar int

	Verbose bool
}

// Default returns a Config populated with the built-in scrape target and
// limits.
func Default() Config {
	return Config{
		PageURL:     DefaultPageURL,
		FolderHints: []string{DefaultFolderHint},
		OutputDir:   DefaultOutputDir,
		MaxWorkers:  DefaultMaxWorkers,
		UserAgent:   DefaultUserAgent,
		Timeout:     DefaultTimeout,
		MaxSimilar:  DefaultMaxSimilar,
	}
}
