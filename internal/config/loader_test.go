package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got  %+v\n want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := Default()

	x, y := cfg.FlyerStart()
	if x != 100 || y != 350 {
		t.Errorf("FlyerStart() = (%d, %f), expected (100, 350)", x, y)
	}

	lo, hi := cfg.GapTopRange()
	if lo != 50 || hi != 450 {
		t.Errorf("GapTopRange() = [%d, %d], expected [50, 450]", lo, hi)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 0.25\nbarrier:\n  speed: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %f, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Barrier.Speed != 4 {
		t.Errorf("Barrier.Speed = %f, expected 4", cfg.Barrier.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.FlapImpulse != -10 {
		t.Errorf("FlapImpulse = %f, expected default -10", cfg.Physics.FlapImpulse)
	}
	if cfg.Screen.Width != 500 {
		t.Errorf("Screen.Width = %d, expected default 500", cfg.Screen.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("screen: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("barrier:\n  gap_height: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil {
		t.Fatal("Load() should reject a gap taller than the screen")
	}
	if !strings.Contains(err.Error(), "gap does not fit") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsNonPositiveBarrierSpeed(t *testing.T) {
	dir := t.TempDir()

	for _, speed := range []string{"0", "-3"} {
		t.Run("speed "+speed, func(t *testing.T) {
			path := filepath.Join(dir, "speed"+speed+".yaml")
			if err := os.WriteFile(path, []byte("barrier:\n  speed: "+speed+"\n"), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should reject barriers that never leave the screen")
			}
			if !strings.Contains(err.Error(), "barrier speed must be positive") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Barrier.Speed = 0
	cfg.FrameRate = 0
	cfg.Audio.Volume = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected an error")
	}
	for _, want := range []string{"barrier speed", "frame_rate", "audio volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, LocalPath), []byte("frame_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FrameRate != 30 {
		t.Errorf("FrameRate = %d, expected 30 from local config", cfg.FrameRate)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, ".flappy")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("frame_rate: 45\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FrameRate != 45 {
		t.Errorf("FrameRate = %d, expected 45 from user config", cfg.FrameRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Screen.Width = 0 }, false},
		{"zero fps", func(c *Config) { c.FrameRate = 0 }, false},
		{"zero spawn interval", func(c *Config) { c.Barrier.SpawnInterval = 0 }, false},
		{"stalled barriers", func(c *Config) { c.Barrier.Speed = 0 }, false},
		{"barriers moving right", func(c *Config) { c.Barrier.Speed = -3 }, false},
		{"slow barriers", func(c *Config) { c.Barrier.Speed = 0.25 }, true},
		{"negative margin", func(c *Config) { c.Barrier.Margin = -1 }, false},
		{"gap exactly fits", func(c *Config) { c.Barrier.GapHeight = 600 }, true},
		{"gap too tall", func(c *Config) { c.Barrier.GapHeight = 601 }, false},
		{"flyer without size", func(c *Config) { c.Flyer.Height = 0 }, false},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 0.75

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "flap_impulse") {
		t.Errorf("encoded YAML should use snake_case keys:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\n got  %+v\n want %+v", back, cfg)
	}
}
