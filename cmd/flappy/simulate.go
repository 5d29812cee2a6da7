package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagRender    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with scripted flaps",
	Long: `Run the game without a terminal. The game is started from the menu,
then the flyer flaps every --flap-every ticks until the run ends or
--ticks is reached. With --render the final frame is drawn as plain
text, --render columns wide.

Examples:
  flappy simulate --seed 42
  flappy simulate --ticks 5000 --flap-every 17
  flappy simulate --flap-every 19 --render 60`,
	Args: cobra.NoArgs,
	RunE: runSimulateCmd,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Maximum number of ticks")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Flap every k ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagRender, "render", 0, "Draw the final frame this many columns wide (0 = off)")
}

// simulation is the result of a headless run.
type simulation struct {
	State    flappy.State
	Score    int
	Ticks    int
	Outcome  flappy.Outcome
	Barriers int
	Spawn    int
	FlyerY   float64
	NextGap  int // top of the first unpassed gap, -1 if none
	Frame    string
}

// runSimulation starts a game and plays it with periodic flaps. A positive
// renderCols draws the final state into a text frame that wide.
func runSimulation(cfg config.Config, seed int64, maxTicks, flapEvery, renderCols int) simulation {
	m := flappy.NewMachine(cfg, core.NewSeededRandom(seed), flappy.Silent{})
	m.Frame([]core.EventKind{core.EventActivate})

	for i := 1; i < maxTicks && m.State() == flappy.StatePlaying; i++ {
		var events []core.EventKind
		if flapEvery > 0 && i%flapEvery == 0 {
			events = append(events, core.EventActivate)
		}
		m.Frame(events)
	}

	sim := m.Simulation()
	res := simulation{
		State:    m.State(),
		Score:    m.Score(),
		Ticks:    sim.Ticks(),
		Outcome:  m.LastOutcome(),
		Barriers: sim.BarrierCount(),
		Spawn:    sim.SpawnCounter(),
		FlyerY:   sim.Flyer().Y,
		NextGap:  -1,
	}
	for b := range sim.Barriers() {
		if !b.Passed {
			res.NextGap = b.GapTop
			break
		}
	}
	if renderCols > 0 {
		res.Frame = renderFrame(m, cfg, renderCols)
	}
	return res
}

// renderFrame draws the machine's current scene as plain text.
func renderFrame(m *flappy.Machine, cfg config.Config, cols int) string {
	rows := max(cols*cfg.Screen.Height/(2*cfg.Screen.Width), 1)
	screen := core.NewScreen(cols, rows)
	canvas := tui.NewCanvas(screen, cfg.Screen.Width, cfg.Screen.Height)
	m.Draw(canvas)
	return screen.String()
}

func runSimulateCmd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "flappy")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	logger.Debug("simulating", "seed", seed, "ticks", flagTicks, "flap_every", flagFlapEvery)
	res := runSimulation(cfg, seed, flagTicks, flagFlapEvery, flagRender)
	printSimulation(os.Stdout, res)
	return nil
}

func printSimulation(w io.Writer, s simulation) {
	fmt.Fprintf(w, "state:    %s\n", s.State)
	fmt.Fprintf(w, "score:    %d\n", s.Score)
	fmt.Fprintf(w, "ticks:    %d\n", s.Ticks)
	fmt.Fprintf(w, "outcome:  %s\n", s.Outcome)
	fmt.Fprintf(w, "barriers: %d\n", s.Barriers)
	fmt.Fprintf(w, "spawn:    %d\n", s.Spawn)
	fmt.Fprintf(w, "flyer y:  %.1f\n", s.FlyerY)
	if s.NextGap >= 0 {
		fmt.Fprintf(w, "next gap: %d\n", s.NextGap)
	}
	if s.Frame != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Frame)
	}
}
