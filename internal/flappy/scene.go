package flappy

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Button layout shared by the menu and game-over screens.
const (
	buttonWidth  = 150
	buttonHeight = 60
	buttonRadius = 10
	scoreX       = 20
	scoreY       = 20
)

// Labels drawn by the scene.
const (
	TitleText    = "FLAPPY BIRD"
	GameOverText = "GAME OVER"
	PlayLabel    = "PLAY"
	RestartLabel = "RESTART"
)

// Draw renders the current state into dst.
func (m *Machine) Draw(dst core.Surface) {
	w, h := m.cfg.Screen.Width, m.cfg.Screen.Height

	dst.DrawImage(core.ImageBackground, core.NewRect(0, 0, w, h), false)

	switch m.state {
	case StateMenu:
		drawCentered(dst, TitleText, core.FontTitle, w, h/4)
		drawButton(dst, core.NewRect(w/2-buttonWidth/2, h/2, buttonWidth, buttonHeight), PlayLabel)

	case StatePlaying:
		m.drawWorld(dst)
		dst.DrawText(strconv.Itoa(m.sim.Score()), core.FontScore, core.ColorWhite, scoreX, scoreY)

	case StateGameOver:
		drawCentered(dst, GameOverText, core.FontTitle, w, h/4)
		drawCentered(dst, "Score: "+strconv.Itoa(m.sim.Score()), core.FontScore, w, h/2)
		drawButton(dst, core.NewRect(w/2-buttonWidth/2, int(float64(h)/1.5), buttonWidth, buttonHeight), RestartLabel)
	}
}

func (m *Machine) drawWorld(dst core.Surface) {
	dst.DrawImage(core.ImageFlyer, m.sim.flyer.Bounds, false)

	for _, b := range m.sim.barriers {
		if !b.TopBounds.Empty() {
			dst.DrawImage(core.ImageBarrier, b.TopBounds, true)
		}
		if !b.BottomBounds.Empty() {
			dst.DrawImage(core.ImageBarrier, b.BottomBounds, false)
		}
	}
}

// drawCentered draws text horizontally centered on a screen of width w.
func drawCentered(dst core.Surface, text string, font core.FontID, w, y int) {
	tw, _ := dst.MeasureText(text, font)
	dst.DrawText(text, font, core.ColorWhite, w/2-tw/2, y)
}

func drawButton(dst core.Surface, r core.Rect, label string) {
	dst.FillRect(r, core.ColorGreen, buttonRadius)

	tw, th := dst.MeasureText(label, core.FontButton)
	cx, cy := r.Center()
	dst.DrawText(label, core.FontButton, core.ColorWhite, cx-tw/2, cy-th/2)
}
