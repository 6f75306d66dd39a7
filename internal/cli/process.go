package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yogatools/asanascrape/internal/app"
)

func (c *CLI) newProcessCommand() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		maxSimilar int
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Rank similar poses for every record in a scraped manifest",
		Args:  cobra.NoArgs,
		Example: `  # Process the default manifest, writing asanas_processed.json next to it
  asanascrape process

  # Custom paths and a larger similarity list
  asanascrape process --input-file out/asanas.json --output-file out/ranked.json --max-similar 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cfg.InputFile = inputFile
			if !cmd.Flags().Changed("input-file") {
				cfg.InputFile = filepath.Join(cfg.OutputDir, app.ManifestName)
			}
			cfg.OutputFile = outputFile
			if cmd.Flags().Changed("max-similar") {
				cfg.MaxSimilar = maxSimilar
			}
			return app.New(cfg, c.log).Process()
		},
	}

	cmd.Flags().StringVar(&inputFile, "input-file", filepath.Join(app.DefaultOutputDir, app.ManifestName), "Manifest produced by the scrape command")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "Output path (default: input with a _processed suffix)")
	cmd.Flags().IntVar(&maxSimilar, "max-similar", app.DefaultMaxSimilar, "Similar ids to keep per record")
	return cmd
}
