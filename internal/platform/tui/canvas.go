package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// spriteKey identifies one rasterized variant of an image.
type spriteKey struct {
	img  core.ImageID
	w, h int
	flip bool
}

// sprite is a rasterized image. Cells with a zero rune are transparent and
// cells with a default background keep what is underneath.
type sprite struct {
	w, h  int
	cells []core.Cell
}

func (s *sprite) at(x, y int) core.Cell {
	return s.cells[y*s.w+x]
}

// Canvas implements core.Surface on top of a cell Screen. World pixels are
// scaled into a field that keeps the world's aspect ratio and is centered
// horizontally. Image variants are rasterized once per size and flip and
// reused.
type Canvas struct {
	screen *core.Screen
	worldW int
	worldH int
	field  core.Rect

	sprites map[spriteKey]*sprite
}

// NewCanvas creates a canvas drawing into screen. Call Layout before
// drawing and whenever the screen is resized.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	c := &Canvas{
		screen:  screen,
		worldW:  worldW,
		worldH:  worldH,
		sprites: make(map[spriteKey]*sprite),
	}
	c.Layout()
	return c
}

// Layout fits the world into the current screen size.
func (c *Canvas) Layout() {
	cols, rows := c.screen.Width(), c.screen.Height()
	if cols <= 0 || rows <= 0 || c.worldW <= 0 || c.worldH <= 0 {
		c.field = core.Rect{}
		return
	}

	ratio := float64(c.worldW) / float64(c.worldH) * cellAspect
	w := int(float64(rows) * ratio)
	h := rows
	if w > cols {
		w = cols
		h = max(int(float64(cols)/ratio), 1)
	}
	c.field = core.NewRect((cols-w)/2, 0, max(w, 1), h)
}

// Field returns the cell area the world maps to.
func (c *Canvas) Field() core.Rect {
	return c.field
}

// Begin clears the screen for a new frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

// SpriteCount returns the number of cached image variants.
func (c *Canvas) SpriteCount() int {
	return len(c.sprites)
}

func (c *Canvas) cellX(x int) int {
	return c.field.X + int(math.Floor(float64(x)*float64(c.field.W)/float64(c.worldW)))
}

func (c *Canvas) cellY(y int) int {
	return c.field.Y + int(math.Floor(float64(y)*float64(c.field.H)/float64(c.worldH)))
}

// toCells maps a world rectangle to cells without clipping. A non-empty
// rectangle always covers at least one cell.
func (c *Canvas) toCells(r core.Rect) core.Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()), c.cellY(r.Bottom())
	if !r.Empty() {
		x1 = max(x1, x0+1)
		y1 = max(y1, y0+1)
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// inField reports whether the cell (x, y) lies inside the world field.
func (c *Canvas) inField(x, y int) bool {
	return c.field.Contains(x, y)
}

// FillRect implements core.Surface. With radius > 0 the corner cells are
// left out when the rectangle is large enough to show it.
func (c *Canvas) FillRect(r core.Rect, col core.Color, radius int) {
	if c.field.Empty() || r.Empty() {
		return
	}
	cr := c.toCells(r)
	rounded := radius > 0 && cr.W >= 4 && cr.H >= 2

	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			if !c.inField(x, y) {
				continue
			}
			if rounded && (x == cr.X || x == cr.Right()-1) && (y == cr.Y || y == cr.Bottom()-1) {
				continue
			}
			c.screen.SetCell(x, y, core.Cell{Rune: ' ', Bg: col})
		}
	}
}

// DrawImage implements core.Surface.
func (c *Canvas) DrawImage(img core.ImageID, dst core.Rect, flipV bool) {
	if c.field.Empty() || dst.Empty() {
		return
	}
	cr := c.toCells(dst)
	sp := c.sprite(img, cr.W, cr.H, flipV)

	for sy := 0; sy < sp.h; sy++ {
		for sx := 0; sx < sp.w; sx++ {
			x, y := cr.X+sx, cr.Y+sy
			if !c.inField(x, y) {
				continue
			}
			cell := sp.at(sx, sy)
			if cell.Rune == 0 {
				continue
			}
			if cell.Bg == core.ColorDefault {
				cell.Bg = c.screen.GetCell(x, y).Bg
			}
			c.screen.SetCell(x, y, cell)
		}
	}
}

// DrawText implements core.Surface. Every font is one cell tall; the
// background under the text is kept.
func (c *Canvas) DrawText(text string, _ core.FontID, col core.Color, x, y int) {
	if c.field.Empty() {
		return
	}
	cx, cy := c.cellX(x), c.cellY(y)
	i := 0
	for _, r := range text {
		if c.inField(cx+i, cy) {
			c.screen.DrawText(cx+i, cy, string(r), col)
		}
		i++
	}
}

// MeasureText implements core.Surface, converting the text's cell size back
// to world pixels.
func (c *Canvas) MeasureText(text string, _ core.FontID) (int, int) {
	if c.field.Empty() {
		return 0, 0
	}
	n := utf8.RuneCountInString(text)
	w := int(math.Ceil(float64(n) * float64(c.worldW) / float64(c.field.W)))
	h := int(math.Ceil(float64(c.worldH) / float64(c.field.H)))
	return w, h
}

// sprite returns the cached variant of img at the given cell size,
// rasterizing it on first use.
func (c *Canvas) sprite(img core.ImageID, w, h int, flip bool) *sprite {
	key := spriteKey{img: img, w: w, h: h, flip: flip}
	if sp, ok := c.sprites[key]; ok {
		return sp
	}

	sp := rasterize(img, w, h)
	if flip {
		sp = flipRows(sp)
	}
	c.sprites[key] = sp
	return sp
}

func rasterize(img core.ImageID, w, h int) *sprite {
	sp := &sprite{w: w, h: h, cells: make([]core.Cell, w*h)}
	set := func(x, y int, cell core.Cell) {
		if x >= 0 && x < w && y >= 0 && y < h {
			sp.cells[y*w+x] = cell
		}
	}

	switch img {
	case core.ImageBackground:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				set(x, y, core.Cell{Rune: ' ', Bg: core.ColorSky})
			}
		}
		for x := 0; x < w; x++ {
			set(x, h-1, core.Cell{Rune: '▄', Color: core.ColorGround, Bg: core.ColorSky})
		}

	case core.ImageFlyer:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				set(x, y, core.Cell{Rune: '█', Color: core.ColorYellow})
			}
		}
		set(w-1, h/2, core.Cell{Rune: '▶', Color: core.ColorOrange})
		if w > 2 && h > 1 {
			set(w-2, 0, core.Cell{Rune: '•', Color: core.ColorBlack, Bg: core.ColorYellow})
		}

	case core.ImageBarrier:
		// Drawn as a bottom segment: cap on the first row, facing the gap.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				set(x, y, core.Cell{Rune: '█', Color: core.ColorBrightGreen})
			}
		}
		for x := 0; x < w; x++ {
			set(x, 0, core.Cell{Rune: '█', Color: core.ColorDarkGreen})
		}
	}
	return sp
}

func flipRows(sp *sprite) *sprite {
	out := &sprite{w: sp.w, h: sp.h, cells: make([]core.Cell, len(sp.cells))}
	for y := 0; y < sp.h; y++ {
		copy(out.cells[y*sp.w:(y+1)*sp.w], sp.cells[(sp.h-1-y)*sp.w:(sp.h-y)*sp.w])
	}
	return out
}
