package core

// Color is the foreground color of a screen cell, stored directly as an
// ANSI-256 palette index so the renderer needs no translation table. The zero
// value renders in the terminal's default foreground; nothing in the game
// draws palette entry 0 (black), so no separate sentinel is needed.
type Color uint8

// The palette is deliberately small: sky in white and gray, pipes in green,
// one accent per game event.
const (
	ColorDefault      Color = 0
	ColorGreen        Color = 2   // Pipe bodies and caps
	ColorWhite        Color = 7   // Near stars
	ColorBrightRed    Color = 9   // Crash burst
	ColorBrightGreen  Color = 10  // Score burst
	ColorBrightYellow Color = 11  // Actor and flap burst
	ColorBrightCyan   Color = 14  // Difficulty-step celebration
	ColorBrightWhite  Color = 15  // HUD text
	ColorGray         Color = 245 // Far stars
)
