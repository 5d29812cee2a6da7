package core

// ImageID identifies a loaded image owned by the frontend.
type ImageID int

// Images drawn by the scene.
const (
	ImageBackground ImageID = iota
	ImageFlyer
	ImageBarrier
)

// FontID identifies a loaded font owned by the frontend.
type FontID int

// Fonts used by the scene.
const (
	FontTitle FontID = iota
	FontButton
	FontScore
)

// Surface is the render sink the game draws into once per frame.
// Coordinates are world pixels; the implementation decides how primitives
// are materialized (terminal cells, a window, a test recorder).
type Surface interface {
	// FillRect fills r with a solid color. radius > 0 requests rounded corners.
	FillRect(r Rect, c Color, radius int)

	// DrawImage draws img scaled to dst, optionally flipped vertically.
	DrawImage(img ImageID, dst Rect, flipV bool)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, font FontID, c Color, x, y int)

	// MeasureText returns the size text would occupy in world pixels.
	MeasureText(text string, font FontID) (w, h int)
}
