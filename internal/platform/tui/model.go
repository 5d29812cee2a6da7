package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Options configures a game model.
type Options struct {
	Config   config.Config
	Seed     int64              // 0 picks a time-based seed
	Sounds   flappy.SoundPlayer // nil plays nothing
	Logger   *log.Logger        // nil discards
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Width    int                // initial terminal size, updated on resize
	Height   int
}

// Model is the Bubble Tea model running one game.
type Model struct {
	machine *flappy.Machine
	screen  *core.Screen
	canvas  *Canvas
	palette *Palette
	keys    KeyMap
	help    help.Model
	events  core.Events
	logger  *log.Logger
	fps     int
	seed    int64

	quitting bool
}

// NewModel creates a model with a fresh machine in the Menu state.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	screen := core.NewScreen(opts.Width, max(opts.Height-helpRows, 0))

	h := help.New()
	h.Width = opts.Width

	logger.Debug("new game", "seed", seed, "fps", cfg.FrameRate)

	return Model{
		machine: flappy.NewMachine(cfg, core.NewSeededRandom(seed), opts.Sounds),
		screen:  screen,
		canvas:  NewCanvas(screen, cfg.Screen.Width, cfg.Screen.Height),
		palette: NewPalette(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		fps:     cfg.FrameRate,
		seed:    seed,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.events.Push(m.keys.MapKey(msg))

	case tea.MouseMsg:
		m.events.Push(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize refits the playfield to the new terminal size. The game
// itself is unaffected because it runs in world coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.canvas.Layout()
	m.help.Width = msg.Width

	field := m.canvas.Field()
	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height, "field_w", field.W, "field_h", field.H)
	return m, nil
}

// handleTick runs one frame with the events queued since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.machine.Frame(m.events.Kinds())
	m.events.Clear()

	if res.Changed() {
		m.logger.Info("state changed",
			"from", res.From,
			"to", res.To,
			"score", res.Score,
		)
		if res.To == flappy.StateGameOver {
			m.logger.Info("run ended",
				"outcome", m.machine.LastOutcome(),
				"score", res.Score,
				"ticks", m.machine.Simulation().Ticks(),
				"seed", m.seed,
			)
		}
	}

	if res.Quit {
		m.logger.Debug("quit", "state", res.To, "score", res.Score, "sprites", m.canvas.SpriteCount())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.machine.Draw(m.canvas)

	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
