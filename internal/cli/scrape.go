package cli

import (
	"github.com/spf13/cobra"

	"github.com/yogatools/asanascrape/internal/app"
)

func (c *CLI) newScrapeCommand() *cobra.Command {
	var (
		outputDir  string
		maxWorkers int
		pageURL    string
		hints      []string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch the asana page, download its images, and write asanas.json",
		Args:  cobra.NoArgs,
		Example: `  # Scrape the default page into ./asanas
  asanascrape scrape

  # Custom output directory and pool size
  asanascrape scrape --output-dir /tmp/asanas --max-workers 8

  # Another page with its own folder hint
  asanascrape scrape --url https://example.com/poses --hint uploads/2021/03/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("max-workers") {
				cfg.MaxWorkers = maxWorkers
			}
			if cmd.Flags().Changed("url") {
				cfg.PageURL = pageURL
			}
			if cmd.Flags().Changed("hint") {
				cfg.FolderHints = hints
			}
			return app.New(cfg, c.log).Scrape(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", app.DefaultOutputDir, "Directory for asanas.json and downloaded images")
	cmd.Flags().IntVar(&maxWorkers, "max-workers", app.DefaultMaxWorkers, "Concurrent image downloads")
	cmd.Flags().StringVar(&pageURL, "url", app.DefaultPageURL, "Page to scrape")
	cmd.Flags().StringArrayVar(&hints, "hint", []string{app.DefaultFolderHint}, "Path substring an image src must contain (repeatable)")
	return cmd
}
