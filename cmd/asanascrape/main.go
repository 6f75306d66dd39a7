package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/yogatools/asanascrape/internal/cli"
)

var version = "1.0.0"

func main() {
	if err := cli.New(version).Run(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}
