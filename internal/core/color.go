package core

// Color is a palette entry used by the render sink.
// Frontends map palette entries to whatever their output supports
// (ANSI 256-color codes for the terminal).
type Color uint8

// Palette entries used by the scene.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBlack
	ColorRed
	ColorGreen       // buttons
	ColorBrightGreen // barriers
	ColorDarkGreen   // barrier caps
	ColorYellow      // flyer body
	ColorOrange      // flyer beak
	ColorSky         // background
	ColorGround
	ColorGray
)
