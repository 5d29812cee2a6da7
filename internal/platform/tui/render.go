package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// terminalColors maps core.Color to ANSI 256 color codes.
var terminalColors = map[core.Color]lipgloss.Color{
	core.ColorWhite:       lipgloss.Color("15"),
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("28"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorDarkGreen:   lipgloss.Color("22"),
	core.ColorYellow:      lipgloss.Color("11"),
	core.ColorOrange:      lipgloss.Color("208"),
	core.ColorSky:         lipgloss.Color("117"),
	core.ColorGround:      lipgloss.Color("136"),
	core.ColorGray:        lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// Palette turns screen cells into styled strings for one renderer. Each SSH
// session has its own renderer so color support follows the client.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPalette creates a palette for r. A nil renderer uses the default one.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// Style returns the style for a foreground/background pair.
func (p *Palette) Style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := p.styles[key]; ok {
		return st
	}

	st := p.renderer.NewStyle()
	if c, ok := terminalColors[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := terminalColors[bg]; ok {
		st = st.Background(c)
	}
	p.styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
