package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"tuibingo/application"
	"tuibingo/card"
	"tuibingo/commands"
	"tuibingo/config"
	"tuibingo/events"
	"tuibingo/files"
	"tuibingo/game"
	"tuibingo/render"
	"tuibingo/sound"
)

// NewLogger logs to path, or nowhere when path is empty. The terminal
// belongs to the game while it runs.
func NewLogger(path, level string) (*log.Logger, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(file)
	return logger, nil
}

func main() {
	flagSet := pflag.NewFlagSet("tui-bingo", pflag.ContinueOnError)
	configFile := flagSet.String("config", "", "path of a JSONC config file")
	logFile := flagSet.String("log", "bingo.log", "log file, empty to disable")
	logLevel := flagSet.String("log-level", "info", "log level")
	seed := flagSet.Uint64("seed", 0, "seed for a reproducible card, 0 picks a random one")
	config.AddFlags(flagSet)

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := NewLogger(*logFile, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	if err := run(logger, flagSet, *configFile, *seed); err != nil {
		logger.Errorf("%+v", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, flagSet *pflag.FlagSet, configFile string, seed uint64) error {
	cfg, err := config.Load(configFile, logger)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(flagSet); err != nil {
		return err
	}
	if err := cfg.Watch(); err != nil {
		logger.Warnf("Theme will not reload: %v", err)
	}
	defer cfg.Cleanup()

	labels, err := files.Labels(cfg.Game.DataPath)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d labels from %s", len(labels), cfg.Game.DataPath)

	if seed == 0 {
		seed = rand.Uint64()
	}
	bingoCard, err := card.Generate(labels, cfg.Game.GridSize, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return err
	}
	logger.Infof("Card drawn with seed %d", seed)

	var player *sound.Player
	if cfg.Game.Sound {
		player = sound.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warnf("Continuing without sound: %v", err)
		}
		defer player.Close()
	}

	s, err := application.OpenScreen()
	if err != nil {
		return err
	}
	defer application.CloseScreen(s)

	source := events.NewSource(s, cfg.Game.TickRate, logger)
	source.Start()
	defer source.Stop()

	app := application.New(application.Options{
		Screen:   s,
		State:    game.NewState(bingoCard, cfg.Game.GridSize),
		Events:   source,
		Bindings: commands.Default(logger),
		Renderer: render.NewRenderer(cfg),
		Sound:    player,
		Log:      logger,
	})
	return app.Run(context.Background())
}
