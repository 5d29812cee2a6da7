package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const (
	wingDuration   = 90 * time.Millisecond
	hitDuration    = 220 * time.Millisecond
	pointNote1     = 70 * time.Millisecond
	pointNote2     = 140 * time.Millisecond
	defaultAttack  = 5 * time.Millisecond
	defaultRelease = 60 * time.Millisecond
)

// Synthesize builds the streamer for a cue at unity volume.
// It returns nil for unknown cues.
func Synthesize(s flappy.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case flappy.SoundWing:
		return wingSound(rate)
	case flappy.SoundHit:
		return hitSound(rate)
	case flappy.SoundPoint:
		return pointSound(rate)
	default:
		return nil
	}
}

// wingSound is a short rising whoosh: filtered-sounding noise over a sine chirp.
func wingSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, wingDuration, WaveNoise, rate), wingDuration, defaultAttack, 70*time.Millisecond, rate)
	chirp := NewEnvelope(NewSweep(300, 700, wingDuration, WaveSine, rate), wingDuration, defaultAttack, 50*time.Millisecond, rate)

	return beep.Take(rate.N(wingDuration), beep.Mix(
		newVolume(noise, 0.35),
		newVolume(chirp, 0.65),
	))
}

// hitSound is a falling saw thud.
func hitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(180, 60, hitDuration, WaveSaw, rate)
	return NewEnvelope(osc, hitDuration, 2*time.Millisecond, 150*time.Millisecond, rate)
}

// pointSound is a two-note chime (B5 then E6).
func pointSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, pointNote1, WaveSquare, rate), pointNote1, defaultAttack, 20*time.Millisecond, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, pointNote2, WaveSquare, rate), pointNote2, defaultAttack, 100*time.Millisecond, rate)

	return newVolume(beep.Seq(n1, n2), 0.6)
}

// Duration returns the length of a cue.
func Duration(s flappy.Sound) time.Duration {
	switch s {
	case flappy.SoundWing:
		return wingDuration
	case flappy.SoundHit:
		return hitDuration
	case flappy.SoundPoint:
		return pointNote1 + pointNote2
	default:
		return 0
	}
}
