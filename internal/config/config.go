// Package config provides YAML-based configuration loading for the game.
// All simulation constants live here so that nothing in the core reads
// ambient globals.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables for a game session.
type Config struct {
	Screen    ScreenConfig  `yaml:"screen"`
	FrameRate int           `yaml:"frame_rate"`
	Physics   PhysicsConfig `yaml:"physics"`
	Barrier   BarrierConfig `yaml:"barrier"`
	Flyer     FlyerConfig   `yaml:"flyer"`
	Audio     AudioConfig   `yaml:"audio"`
}

// ScreenConfig defines the size of the simulated world in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the Flyer's vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity after a flap (negative = up)
}

// BarrierConfig defines obstacle geometry and cadence.
type BarrierConfig struct {
	Speed         float64 `yaml:"speed"`          // Leftward movement per tick
	Width         int     `yaml:"width"`          // Horizontal thickness
	GapHeight     int     `yaml:"gap_height"`     // Passable opening
	Margin        int     `yaml:"margin"`         // Minimum distance of the gap from top and bottom
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
}

// FlyerConfig defines the player sprite's hitbox.
type FlyerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AudioConfig controls the sound triggers.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// FlyerStart returns the Flyer's spawn position: one fifth across, half down.
func (c Config) FlyerStart() (x int, y float64) {
	return c.Screen.Width / 5, float64(c.Screen.Height / 2)
}

// GapTopRange returns the inclusive range a Barrier's gap top is drawn from.
func (c Config) GapTopRange() (lo, hi int) {
	return c.Barrier.Margin, c.Screen.Height - c.Barrier.GapHeight - c.Barrier.Margin
}

// Validate reports every setting that would make the simulation ill-formed.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate))
	}
	if c.Barrier.Width <= 0 || c.Barrier.GapHeight <= 0 {
		errs = append(errs, fmt.Errorf("barrier width and gap_height must be positive"))
	}
	if c.Barrier.Speed <= 0 {
		errs = append(errs, fmt.Errorf("barrier speed must be positive, got %g", c.Barrier.Speed))
	}
	if c.Barrier.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("barrier spawn_interval must be positive, got %d", c.Barrier.SpawnInterval))
	}
	if c.Barrier.Margin < 0 {
		errs = append(errs, fmt.Errorf("barrier margin must not be negative, got %d", c.Barrier.Margin))
	}
	if lo, hi := c.GapTopRange(); hi < lo {
		errs = append(errs, fmt.Errorf("gap does not fit: gap_height %d with margin %d exceeds screen height %d",
			c.Barrier.GapHeight, c.Barrier.Margin, c.Screen.Height))
	}
	if c.Flyer.Width <= 0 || c.Flyer.Height <= 0 {
		errs = append(errs, fmt.Errorf("flyer size must be positive, got %dx%d", c.Flyer.Width, c.Flyer.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
