package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Flyer is the player-controlled sprite. X never changes; Y and Velocity
// follow simple Euler integration with velocity updated before position.
type Flyer struct {
	X        int
	Y        float64
	Velocity float64
	Bounds   core.Rect

	gravity     float64
	flapImpulse float64
}

// NewFlyer creates a Flyer at the configured start position with zero velocity.
func NewFlyer(cfg config.Config) *Flyer {
	x, y := cfg.FlyerStart()
	return &Flyer{
		X:           x,
		Y:           y,
		Bounds:      core.NewRect(x, int(y), cfg.Flyer.Width, cfg.Flyer.Height),
		gravity:     cfg.Physics.Gravity,
		flapImpulse: cfg.Physics.FlapImpulse,
	}
}

// Activate sets the velocity to the flap impulse.
// Repeated calls reset to the same value rather than stacking.
func (f *Flyer) Activate() {
	f.Velocity = f.flapImpulse
}

// Tick applies gravity and moves the Flyer by its new velocity.
func (f *Flyer) Tick() {
	f.Velocity += f.gravity
	f.Y += f.Velocity
	f.Bounds.Y = int(f.Y)
}
