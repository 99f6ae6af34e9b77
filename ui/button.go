package ui

import "image/color"

// Action is what a button does when clicked.
type Action string

const (
	ActionNone Action = ""
	ActionPlay Action = "play"
	ActionQuit Action = "quit"
)

type Button struct {
	Title  string
	X, Y   int
	Width  int
	Height int
	Color  color.RGBA
	Action Action
}

// Contains reports whether the pointer is strictly inside the button.
func (b Button) Contains(x, y int) bool {
	return b.X < x && x < b.X+b.Width && b.Y < y && y < b.Y+b.Height
}

// Draw fills the button and centres its title in it.
func (b Button) Draw(c Canvas, fontSize int) {
	c.FillRect(b.X, b.Y, b.Width, b.Height, b.Color)
	textW, textH := c.MeasureText(b.Title, fontSize)
	c.Text(b.Title, b.X+b.Width/2-textW/2, b.Y+b.Height/2-textH/2, fontSize, Black)
}
