package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/oliverbestmann/sketchbook"
	"github.com/oliverbestmann/sketchbook/blurry"
	"github.com/oliverbestmann/sketchbook/gravity"
	"github.com/oliverbestmann/sketchbook/isowave"
	"github.com/oliverbestmann/sketchbook/sketchbiten"
	"github.com/oliverbestmann/sketchbook/sketchterm"
	"github.com/oliverbestmann/sketchbook/sonify"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := sketchbook.LoadConfig(".env", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logOutput, closeLog, err := openLog(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	defer closeLog()

	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.LogLevel})))

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.Quiet).Stop()
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	slog.Info("Starting sketchbook",
		slog.String("scene", cfg.Scene),
		slog.String("driver", string(cfg.Driver)),
		slog.Uint64("seed", cfg.Seed),
	)

	scene, err := registry().New(cfg.Scene, cfg)
	if err != nil {
		slog.Error("Failed to create scene", slog.Any("err", err))
		return 2
	}

	if cfg.Sound {
		sonifier := sonify.New()
		if err := sonifier.Init(); err != nil {
			slog.Warn("Audio initialization failed, continuing without sound", slog.Any("err", err))
		} else {
			defer sonifier.Close()

			if observable, ok := scene.(interface{ Observe(gravity.Observer) }); ok {
				observable.Observe(sonifier.Observe)
			}
		}
	}

	if err := runDriver(cfg, scene); err != nil {
		slog.Error("Sketchbook failed", slog.Any("err", err))
		return 1
	}

	return 0
}

func registry() *sketchbook.Registry {
	var r sketchbook.Registry

	r.Add("gravity", func(cfg sketchbook.Config) sketchbook.Scene {
		return gravity.NewScene(gravity.SceneOptions{
			Particles: cfg.Particles,
			Seed:      cfg.Seed,
		})
	})

	r.Add("blurry", func(cfg sketchbook.Config) sketchbook.Scene {
		return blurry.NewScene(cfg.Seed)
	})

	r.Add("isowave", func(cfg sketchbook.Config) sketchbook.Scene {
		return isowave.NewScene()
	})

	return &r
}

func runDriver(cfg sketchbook.Config, scene sketchbook.Scene) error {
	switch cfg.Driver {
	case sketchbook.DriverTerminal:
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		return sketchterm.Run(ctx, scene, sketchterm.Options{
			TickRate: cfg.TickRate,
			Debug:    cfg.Debug,
		})

	default:
		return sketchbiten.Run(scene, sketchbiten.WindowConfig{
			Title:         cfg.Title,
			Width:         cfg.Width,
			Height:        cfg.Height,
			DisableResize: cfg.DisableResize,
			TickRate:      cfg.TickRate,
			Debug:         cfg.Debug,
		})
	}
}

// openLog picks the log destination. The terminal driver owns the screen,
// so logs are dropped there unless a log file is configured.
func openLog(cfg sketchbook.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		fp, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}

		return fp, func() { _ = fp.Close() }, nil
	}

	if cfg.Driver == sketchbook.DriverTerminal {
		return io.Discard, func() {}, nil
	}

	return os.Stderr, func() {}, nil
}
