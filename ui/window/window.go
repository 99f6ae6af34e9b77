// Package window is the raylib frontend: a fixed size desktop window.
package window

import (
	"image/color"

	"snake-classic/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

var traceLevels = map[string]rl.TraceLogLevel{
	"info":    rl.LogInfo,
	"warning": rl.LogWarning,
	"error":   rl.LogError,
	"none":    rl.LogNone,
}

var keys = map[int32]ui.Key{
	rl.KeyLeft:  ui.KeyLeft,
	rl.KeyRight: ui.KeyRight,
	rl.KeyUp:    ui.KeyUp,
	rl.KeyDown:  ui.KeyDown,
	rl.KeySpace: ui.KeySpace,
	rl.KeyF12:   ui.KeySnapshot,
}

// Window implements ui.Frontend on top of raylib.
type Window struct {
	width  int32
	height int32
}

// Open creates the window. raylib must stay on the main goroutine.
func Open(width, height int, title, traceLevel string) *Window {
	if level, ok := traceLevels[traceLevel]; ok {
		rl.SetTraceLogLevel(level)
	}
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetExitKey(0) // only the close button ends the program
	rl.SetTargetFPS(targetFPS)

	return &Window{
		width:  int32(width),
		height: int32(height),
	}
}

func (w *Window) Poll() ui.Input {
	var in ui.Input
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k, ok := keys[code]; ok {
			in.Keys = append(in.Keys, k)
		}
	}

	pos := rl.GetMousePosition()
	in.PointerX = int(pos.X)
	in.PointerY = int(pos.Y)
	in.Pressed = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	in.Close = rl.WindowShouldClose()
	return in
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func (w *Window) Clear(c color.RGBA) {
	rl.ClearBackground(toColor(c))
}

func (w *Window) FillRect(x, y, width, height int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), toColor(c))
}

func (w *Window) Line(x1, y1, x2, y2 int, c color.RGBA) {
	rl.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2), toColor(c))
}

func (w *Window) Text(s string, x, y, size int, c color.RGBA) {
	rl.DrawText(s, int32(x), int32(y), int32(size), toColor(c))
}

func (w *Window) MeasureText(s string, size int) (int, int) {
	return int(rl.MeasureText(s, int32(size))), size
}

func toColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
