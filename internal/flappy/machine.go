package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Machine owns the top-level game state and the current Simulation.
// It is not safe for concurrent use; the frontend drives it from a single
// goroutine.
type Machine struct {
	cfg    config.Config
	rng    core.RandomSource
	sounds SoundPlayer

	state State
	sim   *Simulation
	last  Outcome // outcome of the most recent run-ending step
}

// FrameResult summarizes one call to Frame.
type FrameResult struct {
	From    State
	To      State
	Score   int
	Outcome Outcome
	Quit    bool
}

// Changed reports whether the frame moved the machine to another state.
func (r FrameResult) Changed() bool {
	return r.From != r.To
}

// NewMachine creates a machine in the Menu state.
// A nil sounds player is replaced by Silent.
func NewMachine(cfg config.Config, rng core.RandomSource, sounds SoundPlayer) *Machine {
	if sounds == nil {
		sounds = Silent{}
	}
	m := &Machine{
		cfg:    cfg,
		rng:    rng,
		sounds: sounds,
		state:  StateMenu,
	}
	m.resetSimulation()
	return m
}

// Handle applies a single input event.
//
//	Menu     + Activate -> reset, Playing
//	Playing  + Activate -> flap
//	GameOver + Activate -> Menu
//
// Every other pair, Quit included, leaves the state unchanged.
func (m *Machine) Handle(ev core.EventKind) {
	if ev != core.EventActivate {
		return
	}

	switch m.state {
	case StateMenu:
		m.resetSimulation()
		m.state = StatePlaying
	case StatePlaying:
		m.sim.Flap()
	case StateGameOver:
		m.state = StateMenu
	}
}

// resetSimulation replaces the run with a fresh one: new flyer, no
// barriers, spawner at zero, score zero.
func (m *Machine) resetSimulation() {
	m.sim = NewSimulation(m.cfg, m.rng, m.sounds)
	m.last = OutcomeNone
}

// Tick runs one simulation step while Playing. A run-ending outcome moves
// the machine to GameOver. In other states Tick does nothing.
func (m *Machine) Tick() Outcome {
	if m.state != StatePlaying {
		return OutcomeNone
	}

	out := m.sim.Step()
	if out.Ended() {
		m.last = out
		m.state = StateGameOver
	}
	return out
}

// Frame dispatches the frame's events in arrival order and then ticks once.
// A Quit event stops dispatch; the remaining events and the tick are skipped.
func (m *Machine) Frame(events []core.EventKind) FrameResult {
	res := FrameResult{From: m.state}

	for _, ev := range events {
		if ev == core.EventQuit {
			res.Quit = true
			break
		}
		m.Handle(ev)
	}

	if !res.Quit {
		res.Outcome = m.Tick()
	}

	res.To = m.state
	res.Score = m.sim.Score()
	return res
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Score returns the score of the current or most recent run.
func (m *Machine) Score() int {
	return m.sim.Score()
}

// LastOutcome returns what ended the most recent run, or OutcomeNone while
// a run is in progress.
func (m *Machine) LastOutcome() Outcome {
	return m.last
}

// Simulation returns the current run.
func (m *Machine) Simulation() *Simulation {
	return m.sim
}
