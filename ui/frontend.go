// Package ui draws the game and defines the contracts its frontends implement.
package ui

import "image/color"

// Canvas is a pixel addressed drawing surface. Text is positioned by its
// top-left corner and size is the line height in pixels.
type Canvas interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h int, c color.RGBA)
	Line(x1, y1, x2, y2 int, c color.RGBA)
	Text(s string, x, y, size int, c color.RGBA)
	MeasureText(s string, size int) (w, h int)
}

// Frontend owns the display and the input devices for the lifetime of the program.
type Frontend interface {
	Canvas
	// Poll collects the input gathered since the previous call.
	Poll() Input
	BeginFrame()
	// EndFrame presents the frame and paces the loop.
	EndFrame()
	Close() error
}

// Key is a frontend independent key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeySnapshot
)

// Input is what a frontend saw during one frame.
type Input struct {
	Keys     []Key // in the order they were pressed
	PointerX int
	PointerY int
	Pressed  bool // primary pointer button went down this frame
	Close    bool // the user asked to close the window
}

// Palette
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkGreen = color.RGBA{R: 0, G: 102, B: 0, A: 255}
	Red       = color.RGBA{R: 230, G: 0, B: 0, A: 255}
)
