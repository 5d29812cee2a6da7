package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Barrier is a vertical obstacle pair with a gap for the Flyer to pass through.
type Barrier struct {
	X            float64   // Left edge, decreases every tick
	GapTop       int       // Bottom edge of the top segment
	GapBottom    int       // Top edge of the bottom segment
	TopBounds    core.Rect // From (X, 0) to (X+width, GapTop)
	BottomBounds core.Rect // From (X, GapBottom) to (X+width, screen height)
	Passed       bool      // Whether the Flyer has cleared this barrier

	width int
	speed float64
}

// NewBarrier creates a barrier at x with a gap drawn uniformly from the
// configured range.
func NewBarrier(x float64, rng core.RandomSource, cfg config.Config) Barrier {
	lo, hi := cfg.GapTopRange()
	gapTop := rng.IntRange(lo, hi)
	gapBottom := gapTop + cfg.Barrier.GapHeight

	return Barrier{
		X:            x,
		GapTop:       gapTop,
		GapBottom:    gapBottom,
		TopBounds:    core.NewRect(int(x), 0, cfg.Barrier.Width, gapTop),
		BottomBounds: core.NewRect(int(x), gapBottom, cfg.Barrier.Width, cfg.Screen.Height-gapBottom),
		width:        cfg.Barrier.Width,
		speed:        cfg.Barrier.Speed,
	}
}

// Tick moves the barrier left and keeps both segments aligned with X.
func (b *Barrier) Tick() {
	b.X -= b.speed
	b.TopBounds.X = int(b.X)
	b.BottomBounds.X = int(b.X)
}

// IsOffscreen reports whether the trailing edge has left the screen.
func (b *Barrier) IsOffscreen() bool {
	return b.X+float64(b.width) < 0
}

// Collides reports whether r overlaps either segment.
func (b *Barrier) Collides(r core.Rect) bool {
	return r.Intersects(b.TopBounds) || r.Intersects(b.BottomBounds)
}

// CheckPassed marks the barrier as passed the first time its trailing edge
// is left of flyerX. It returns true only on that transition, so each
// barrier scores at most once.
func (b *Barrier) CheckPassed(flyerX int) bool {
	if b.Passed || b.X+float64(b.width) >= float64(flyerX) {
		return false
	}
	b.Passed = true
	return true
}
