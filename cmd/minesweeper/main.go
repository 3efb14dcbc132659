package main

import (
	"context"
	"errors"
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"go-minesweeper/internal/cli"
	"go-minesweeper/internal/config"
	"go-minesweeper/internal/game"
	"go-minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const (
		defaultConfigPath = "minesweeper.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

// setupLogging sends all logging to a rotating file: stdout belongs to the
// board and the prompts.
func setupLogging(cfg config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{},
	})
	if err != nil {
		return err
	}

	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(logLevel)
		l.SetOutput(io.Discard)
		l.AddHook(hook)
	}
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := config.Default()
	if err := config.Read(configPath, &cfg); err != nil && !os.IsNotExist(err) {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	))

	ctrl := game.NewController(
		os.Stdin, os.Stdout,
		cli.Renderer{Out: os.Stdout},
		log, rnd,
	)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return ctrl.Run(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}
	log.Info("shutting down")
}
