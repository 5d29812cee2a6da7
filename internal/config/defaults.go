package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  500,
			Height: 700,
		},
		FrameRate: 60,
		Physics: PhysicsConfig{
			Gravity:     0.5,
			FlapImpulse: -10,
		},
		Barrier: BarrierConfig{
			Speed:         3,
			Width:         120,
			GapHeight:     200,
			Margin:        50,
			SpawnInterval: 90,
		},
		Flyer: FlyerConfig{
			Width:  40,
			Height: 30,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
