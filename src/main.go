package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/eriklarko/exprtree/src/config"
	"github.com/eriklarko/exprtree/src/environment"
	"github.com/eriklarko/exprtree/src/exprgen"
	"github.com/eriklarko/exprtree/src/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "exprtree.yaml", "path to the YAML config file")
	debug := flag.Bool("debug", false, "log debug output, including a dump of every tree")
	generate := flag.Int("generate", 0, "evaluate this many random expressions instead of reading input, generated divisors are never 0")
	depth := flag.Int("depth", 3, "maximum nesting depth of generated expressions")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	conf, found, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	s := newSession(tui.New(), conf, *debug)

	switch {
	case *generate > 0:
		s.generated(ctx, newGenerator(), *generate, *depth)

	case environment.IsInteractive():
		if found {
			go func() {
				if err := config.Watch(ctx, *configPath, s.setConfig); err != nil {
					slog.Warn("config changes will not be picked up", "path", *configPath, "error", err)
				}
			}()
		}
		s.interactive(ctx)
		return 0

	default:
		s.batch(ctx)
	}

	if !s.printSummary() {
		return 1
	}
	return 0
}

// newGenerator returns the generator behind -generate. Zero divisors would
// make the exit code depend on luck.
func newGenerator() *exprgen.Generator {
	return &exprgen.Generator{NoZeroDivisor: true}
}

// loadConfig falls back to the default config when there is no config file.
func loadConfig(path string) (*config.Config, bool, error) {
	conf, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no config file found, using defaults", "path", path)
		return config.Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return conf, true, nil
}
