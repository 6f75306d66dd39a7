// Package cli defines the asanascrape command tree: a root command with the
// scrape and process subcommands.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yogatools/asanascrape/internal/app"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version string
	verbose bool
	cfgPath string
	log     zerolog.Logger
	rootCmd *cobra.Command
}

// New creates a CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()
	return c
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "asanascrape",
		Short:         "Scrape ashtanga asana images and rank similar poses",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().StringVar(&c.cfgPath, "config", "", "Path to a YAML or JSON config file")

	c.rootCmd.AddCommand(c.newScrapeCommand())
	c.rootCmd.AddCommand(c.newProcessCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	return c.rootCmd.Execute()
}

func (c *CLI) initLogger() {
	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	c.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// loadConfig builds the runtime config: defaults first, then the config file
// when one was given. Subcommands apply explicit flag values on top.
func (c *CLI) loadConfig() (app.Config, error) {
	cfg := app.Default()
	cfg.Verbose = c.verbose
	if c.cfgPath != "" {
		fc, err := app.LoadConfigFile(c.cfgPath)
		if err != nil {
			return cfg, err
		}
		fc.Apply(&cfg)
	}
	return cfg, nil
}
