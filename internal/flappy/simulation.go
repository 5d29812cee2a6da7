// Package flappy implements a Flappy Bird-style game core.
// The player controls a flyer that must pass through gaps in scrolling
// barriers. Everything here is deterministic given a RandomSource; input,
// audio and drawing are injected by the frontend.
package flappy

import (
	"iter"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Outcome reports how a simulation step ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // run continues
	OutcomeCollision                // flyer overlapped a barrier segment
	OutcomeBoundary                 // flyer left the playfield vertically
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCollision:
		return "collision"
	case OutcomeBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// Ended reports whether the outcome terminates the run.
func (o Outcome) Ended() bool {
	return o != OutcomeNone
}

// Simulation holds the world of a single run: one Flyer, the active
// Barriers, the Spawner and the score.
type Simulation struct {
	cfg    config.Config
	rng    core.RandomSource
	sounds SoundPlayer

	flyer    *Flyer
	barriers []Barrier // creation order, owned exclusively
	spawner  Spawner
	score    int
	ticks    int
}

// NewSimulation creates a fresh run.
func NewSimulation(cfg config.Config, rng core.RandomSource, sounds SoundPlayer) *Simulation {
	if sounds == nil {
		sounds = Silent{}
	}
	return &Simulation{
		cfg:     cfg,
		rng:     rng,
		sounds:  sounds,
		flyer:   NewFlyer(cfg),
		spawner: NewSpawner(cfg.Barrier.SpawnInterval),
	}
}

// Flap activates the flyer and plays the wing sound.
func (s *Simulation) Flap() {
	s.flyer.Activate()
	s.sounds.Play(SoundWing)
}

// Step advances the world by one tick.
//
// Order: flyer, spawner, barriers (move, collide, score), culling, boundary.
// A collision returns immediately, leaving culling and the boundary check
// for that tick undone.
func (s *Simulation) Step() Outcome {
	s.ticks++

	s.flyer.Tick()

	if s.spawner.Tick() {
		s.barriers = append(s.barriers, NewBarrier(float64(s.cfg.Screen.Width), s.rng, s.cfg))
	}

	for i := range s.barriers {
		b := &s.barriers[i]
		b.Tick()

		if b.Collides(s.flyer.Bounds) {
			s.sounds.Play(SoundHit)
			return OutcomeCollision
		}

		if b.CheckPassed(s.flyer.X) {
			s.score++
			s.sounds.Play(SoundPoint)
		}
	}

	s.cullOffscreen()

	if s.flyer.Bounds.Bottom() >= s.cfg.Screen.Height || s.flyer.Y <= 0 {
		s.sounds.Play(SoundHit)
		return OutcomeBoundary
	}

	return OutcomeNone
}

// cullOffscreen drops barriers whose trailing edge left the screen,
// keeping the survivors in order.
func (s *Simulation) cullOffscreen() {
	kept := s.barriers[:0]
	for _, b := range s.barriers {
		if !b.IsOffscreen() {
			kept = append(kept, b)
		}
	}
	clear(s.barriers[len(kept):])
	s.barriers = kept
}

// Flyer returns a copy of the flyer state.
func (s *Simulation) Flyer() Flyer {
	return *s.flyer
}

// Barriers yields copies of the active barriers in creation order.
func (s *Simulation) Barriers() iter.Seq[Barrier] {
	return func(yield func(Barrier) bool) {
		for _, b := range s.barriers {
			if !yield(b) {
				return
			}
		}
	}
}

// BarrierCount returns the number of active barriers.
func (s *Simulation) BarrierCount() int {
	return len(s.barriers)
}

// Score returns the number of barriers passed in this run.
func (s *Simulation) Score() int {
	return s.score
}

// Ticks returns the number of steps taken in this run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// SpawnCounter returns the spawner's current count.
func (s *Simulation) SpawnCounter() int {
	return s.spawner.Counter()
}
