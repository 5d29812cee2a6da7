package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	samples := drain(t, osc)
	if len(samples) != testRate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", len(samples), testRate.N(100*time.Millisecond))
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewSweep(200, 800, 50*time.Millisecond, wave, testRate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v, expected mono value in [-1, 1]", wave, i, s)
			}
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := drain(t, env)
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at start of attack", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if mid != 1 {
		t.Errorf("sustain sample = %v, expected 1", mid)
	}
	last := samples[len(samples)-1][0]
	if last <= 0 || last > 0.01 {
		t.Errorf("last sample = %v, expected a small positive tail", last)
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	for _, s := range flappy.Sounds() {
		t.Run(s.String(), func(t *testing.T) {
			st := Synthesize(s, testRate)
			if st == nil {
				t.Fatal("nil streamer")
			}
			samples := drain(t, st)

			expected := testRate.N(Duration(s))
			if diff := len(samples) - expected; diff < -1 || diff > 1 {
				t.Errorf("length = %d samples, expected about %d", len(samples), expected)
			}

			peak := 0.0
			for _, v := range samples {
				peak = max(peak, v[0], -v[0])
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestSynthesizeUnknown(t *testing.T) {
	if Synthesize(flappy.Sound(99), testRate) != nil {
		t.Error("expected nil streamer for unknown cue")
	}
}

func TestNewVolumeSilent(t *testing.T) {
	samples := drain(t, newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0))
	for _, s := range samples {
		if s[0] != 0 {
			t.Fatalf("sample = %v, expected silence", s)
		}
	}
}

func TestPlayerCachesBuffers(t *testing.T) {
	var played []beep.Streamer
	p := newPlayer(testRate, 0.5, func(s ...beep.Streamer) {
		played = append(played, s...)
	})

	p.Play(flappy.SoundWing)
	p.Play(flappy.SoundWing)
	p.Play(flappy.SoundPoint)

	if len(played) != 3 {
		t.Fatalf("played %d streamers, expected 3", len(played))
	}
	if len(p.cache) != 2 {
		t.Errorf("cache has %d entries, expected 2", len(p.cache))
	}

	first := drain(t, played[0])
	second := drain(t, played[1])
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("replays differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("replay sample %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPlayerIgnoresUnknownCue(t *testing.T) {
	calls := 0
	p := newPlayer(testRate, 1, func(...beep.Streamer) { calls++ })

	p.Play(flappy.Sound(42))

	if calls != 0 {
		t.Errorf("output called %d times, expected 0", calls)
	}
}

func TestNewDisabledIsSilent(t *testing.T) {
	logger := log.New(io.Discard)

	tests := []struct {
		name string
		cfg  config.AudioConfig
	}{
		{"disabled", config.AudioConfig{Enabled: false, Volume: 0.5, SampleRate: 44100}},
		{"zero volume", config.AudioConfig{Enabled: true, Volume: 0, SampleRate: 44100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := New(tc.cfg, logger).(flappy.Silent); !ok {
				t.Error("expected flappy.Silent")
			}
		})
	}
}
