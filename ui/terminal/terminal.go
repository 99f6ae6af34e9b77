// Package terminal is the tcell frontend. Every terminal cell stands for one
// board cell, so pixel coordinates coming from the renderer are divided by
// the cell size.
package terminal

import (
	"fmt"
	"image/color"
	"time"

	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
)

const frameDelay = 16 * time.Millisecond // ~60 FPS

// Terminal implements ui.Frontend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	unit   int // pixels per terminal cell
	events chan tcell.Event

	background map[[2]int]tcell.Color
	pointerX   int
	pointerY   int
	buttonDown bool
	lastFrame  time.Time
}

// Open takes over the terminal. unit is the size of one board cell in pixels.
func Open(unit int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return New(screen, unit), nil
}

// New wraps an initialised screen and starts pumping its events.
func New(screen tcell.Screen, unit int) *Terminal {
	if unit < 1 {
		unit = 1
	}
	t := &Terminal{
		screen:     screen,
		unit:       unit,
		events:     make(chan tcell.Event, 100),
		background: make(map[[2]int]tcell.Color),
		lastFrame:  time.Now(),
	}
	go t.pump()
	return t
}

// pump forwards events until the screen is finalised.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

func (t *Terminal) Poll() ui.Input {
	in := ui.Input{}
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Close = true
				t.fillPointer(&in)
				return in
			}
			t.handleEvent(ev, &in)
		default:
			t.fillPointer(&in)
			return in
		}
	}
}

func (t *Terminal) fillPointer(in *ui.Input) {
	in.PointerX = t.pointerX
	in.PointerY = t.pointerY
}

func (t *Terminal) handleEvent(ev tcell.Event, in *ui.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			in.Keys = append(in.Keys, ui.KeyLeft)
		case tcell.KeyRight:
			in.Keys = append(in.Keys, ui.KeyRight)
		case tcell.KeyUp:
			in.Keys = append(in.Keys, ui.KeyUp)
		case tcell.KeyDown:
			in.Keys = append(in.Keys, ui.KeyDown)
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Close = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				in.Keys = append(in.Keys, ui.KeySpace)
			case 's':
				in.Keys = append(in.Keys, ui.KeySnapshot)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		// Aim at the middle of the cell so strict button edges still hit.
		t.pointerX = x*t.unit + t.unit/2
		t.pointerY = y*t.unit + t.unit/2
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.buttonDown {
			in.Pressed = true
		}
		t.buttonDown = down

	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) BeginFrame() {}

// EndFrame shows the frame and sleeps out the rest of the frame budget.
func (t *Terminal) EndFrame() {
	t.screen.Show()
	if elapsed := time.Since(t.lastFrame); elapsed < frameDelay {
		time.Sleep(frameDelay - elapsed)
	}
	t.lastFrame = time.Now()
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func (t *Terminal) Clear(c color.RGBA) {
	bg := toColor(c)
	t.screen.SetStyle(tcell.StyleDefault.Background(bg))
	t.screen.Clear()
	for k := range t.background {
		delete(t.background, k)
	}
	w, h := t.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.setCell(x, y, ' ', tcell.ColorDefault, bg)
		}
	}
}

func (t *Terminal) FillRect(x, y, w, h int, c color.RGBA) {
	bg := toColor(c)
	x0, y0 := x/t.unit, y/t.unit
	x1, y1 := ceilDiv(x+w, t.unit), ceilDiv(y+h, t.unit)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			t.setCell(cx, cy, ' ', tcell.ColorDefault, bg)
		}
	}
}

// Line supports the horizontal and vertical lines the renderer draws.
func (t *Terminal) Line(x1, y1, x2, y2 int, c color.RGBA) {
	fg := toColor(c)
	cx1, cy1, cx2, cy2 := x1/t.unit, y1/t.unit, x2/t.unit, y2/t.unit
	if cy1 == cy2 {
		for cx := min(cx1, cx2); cx <= max(cx1, cx2); cx++ {
			t.setCell(cx, cy1, '▔', fg, t.backgroundAt(cx, cy1))
		}
		return
	}
	if cx1 == cx2 {
		for cy := min(cy1, cy2); cy <= max(cy1, cy2); cy++ {
			t.setCell(cx1, cy, '▏', fg, t.backgroundAt(cx1, cy))
		}
	}
}

func (t *Terminal) Text(s string, x, y, size int, c color.RGBA) {
	fg := toColor(c)
	cx, cy := x/t.unit, y/t.unit
	for _, r := range s {
		t.setCell(cx, cy, r, fg, t.backgroundAt(cx, cy))
		cx++
	}
}

// MeasureText counts one cell per rune whatever the size.
func (t *Terminal) MeasureText(s string, size int) (int, int) {
	return len([]rune(s)) * t.unit, t.unit
}

func (t *Terminal) setCell(x, y int, r rune, fg, bg tcell.Color) {
	w, h := t.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	t.background[[2]int{x, y}] = bg
	t.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (t *Terminal) backgroundAt(x, y int) tcell.Color {
	if bg, ok := t.background[[2]int{x, y}]; ok {
		return bg
	}
	return tcell.ColorDefault
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
