// flappy is a Flappy Bird clone that runs in the terminal.
//
// Usage:
//
//	flappy play        - Play in this terminal
//	flappy serve       - Start SSH server for remote play
//	flappy simulate    - Run a headless game with scripted flaps
//	flappy config      - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.flappy, ./configs, built-in)
//	--fps <rate>        - Override the configured frame rate
//	--seed <value>      - Set RNG seed for reproducible gap placement
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the gaps in your terminal",
	Long: `Flappy is a Flappy Bird clone for the terminal.

Available commands:
  play      - Play locally
  serve     - Start SSH server for remote play
  simulate  - Run a headless game and print the result
  config    - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --mute
  flappy serve --ssh :2222
  flappy simulate --ticks 1000 --flap-every 18`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.FrameRate = flagFPS
	}
	return cfg, nil
}

// newLogger creates a timestamped logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
