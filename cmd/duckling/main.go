// Command duckling runs the terminal virtual pet.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/duckling/config"
	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/engine"
	"github.com/lixenwraith/duckling/game"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		savePath   string
		frameRate  int
		mute       bool
		debugMode  bool
	)

	rootCmd := &cobra.Command{
		Use:           "duckling",
		Short:         "A duckling to look after, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), configPath)
			if err != nil {
				return err
			}
			if savePath != "" {
				cfg.SavePath = savePath
			}
			if frameRate != 0 {
				cfg.FrameRate = frameRate
			}
			if mute {
				cfg.Mute = true
			}
			if debugMode {
				cfg.Debug = true
			}
			return run(cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.duckling/config.toml)")
	rootCmd.Flags().StringVar(&savePath, "save", "", "save file path override")
	rootCmd.Flags().IntVar(&frameRate, "fps", 0, "render frame rate override")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable sound")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable the debug menu, HUD, and log file")

	return rootCmd
}

func run(cfg config.Config) error {
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	width, height := screen.Size()
	clock := engine.NewMonotonicTimeProvider()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ctx, err := game.New(cfg, log, clock, rng, width, height)
	if err != nil {
		screen.Fini()
		return err
	}

	// Any panic past this point must restore the terminal and attempt a
	// save before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			ctx.EmergencySave()
			screen.Fini()
			fmt.Fprintf(os.Stderr, "crash: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx.Start()

	scheduler := engine.NewTickScheduler(engine.SchedulerConfig{
		Session:     ctx.Session(),
		Clock:       clock,
		Events:      events,
		PollTimeout: constants.InputPollTimeout,
		FrameRate:   cfg.FrameRate,
		SpinReserve: constants.SpinReserve,
		HandleEvent: ctx.HandleEvent,
		Update:      ctx.Update,
		Render: func(now time.Time) {
			ctx.Render(screen, now)
		},
	})
	scheduler.Run()

	log.Info("session ended", "frames", scheduler.FrameCount())
	return nil
}

// newLogger opens the debug log file when enabled, discarding otherwise
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { f.Close() }, nil
}
