package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/xox/config"
	"github.com/they4kman/xox/game"
)

type environment struct {
	config *config.Config
	log    *logrus.Logger
	game   *game.Game
}

// setup loads the config, applies flag overrides, builds the logger and the
// starting match.
func setup(cmd *cobra.Command) (*environment, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("interval") {
		conf.Director.Interval = interval
	}

	log, err := newLogger(conf.LogLevel)
	if err != nil {
		return nil, err
	}

	match, err := loadPosition(positionPath)
	if err != nil {
		return nil, err
	}

	return &environment{config: conf, log: log, game: match}, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", config.ErrInvalidConfig, err)
	}

	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	log.SetLevel(parsed)
	return log, nil
}

func loadPosition(path string) (*game.Game, error) {
	if path == "" {
		return game.New(), nil
	}

	in, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read position: %w", err)
	}

	snapshot, err := game.LoadSnapshot(string(in))
	if err != nil {
		return nil, fmt.Errorf("could not parse position %s: %w", path, err)
	}
	return snapshot.CreateGame()
}
