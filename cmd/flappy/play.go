package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Any key / click  - Start, flap, or return to the menu
  Q/Ctrl+C         - Quit

Logs are discarded unless --log-file is given, since the game owns the
terminal.

Examples:
  flappy play
  flappy play --seed 7
  flappy play --mute --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "flappy")
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame is laid out
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var sounds flappy.SoundPlayer = flappy.Silent{}
	if !flagMute {
		sounds = audio.New(cfg.Audio, logger)
	}

	logger.Info("starting", "fps", cfg.FrameRate, "seed", flagSeed, "width", width, "height", height)

	if err := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Sounds: sounds,
		Logger: logger,
		Width:  width,
		Height: height,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
