package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// scriptedRandom returns queued values in order, then repeats the last one.
type scriptedRandom struct {
	values []int
	calls  [][2]int
}

func (r *scriptedRandom) IntRange(min, max int) int {
	r.calls = append(r.calls, [2]int{min, max})
	if len(r.values) == 0 {
		return min
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

// soundRecorder counts every cue it receives.
type soundRecorder struct {
	played []Sound
}

func (r *soundRecorder) Play(s Sound) {
	r.played = append(r.played, s)
}

func (r *soundRecorder) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

// recordingSurface logs draw calls as strings. Text is 10 units per rune
// wide and 20 units tall.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) FillRect(r core.Rect, c core.Color, radius int) {
	s.ops = append(s.ops, fmt.Sprintf("fill %d,%d %dx%d c%d r%d", r.X, r.Y, r.W, r.H, c, radius))
}

func (s *recordingSurface) DrawImage(img core.ImageID, dst core.Rect, flipV bool) {
	s.ops = append(s.ops, fmt.Sprintf("image %d %d,%d %dx%d flip=%t", img, dst.X, dst.Y, dst.W, dst.H, flipV))
}

func (s *recordingSurface) DrawText(text string, font core.FontID, c core.Color, x, y int) {
	s.ops = append(s.ops, fmt.Sprintf("text %q f%d c%d %d,%d", text, font, c, x, y))
}

func (s *recordingSurface) MeasureText(text string, font core.FontID) (int, int) {
	return len([]rune(text)) * 10, 20
}

func testConfig() config.Config {
	return config.Default()
}

// hover pins the flyer so the next tick leaves Y unchanged.
func hover(s *Simulation) {
	s.flyer.Velocity = -s.cfg.Physics.Gravity
}
