package flappy

// Sound identifies one of the fire-and-forget audio cues.
type Sound int

const (
	SoundWing  Sound = iota // flap
	SoundHit                // collision or boundary violation
	SoundPoint              // score increment
	soundCount
)

// Sounds lists every cue, in declaration order.
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the cue's asset name.
func (s Sound) String() string {
	switch s {
	case SoundWing:
		return "wing"
	case SoundHit:
		return "hit"
	case SoundPoint:
		return "point"
	default:
		return "unknown"
	}
}

// SoundPlayer triggers audio cues. Play must not block the frame loop and
// has no completion or ordering guarantees.
type SoundPlayer interface {
	Play(s Sound)
}

// Silent is a SoundPlayer that discards every cue.
type Silent struct{}

// Play implements SoundPlayer.
func (Silent) Play(Sound) {}
