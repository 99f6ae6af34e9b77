package main

import (
	"bytes"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/ui"

	"golang.org/x/exp/rand"
)

// scriptedFrontend replays one Input per frame and counts presented frames.
type scriptedFrontend struct {
	inputs []ui.Input
	frames int
	closed bool
}

func (f *scriptedFrontend) Poll() ui.Input {
	if len(f.inputs) == 0 {
		return ui.Input{}
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in
}

func (f *scriptedFrontend) BeginFrame()  {}
func (f *scriptedFrontend) EndFrame()    { f.frames++ }
func (f *scriptedFrontend) Close() error { f.closed = true; return nil }

func (f *scriptedFrontend) Clear(c color.RGBA)                          {}
func (f *scriptedFrontend) FillRect(x, y, w, h int, c color.RGBA)       {}
func (f *scriptedFrontend) Line(x1, y1, x2, y2 int, c color.RGBA)       {}
func (f *scriptedFrontend) Text(s string, x, y, size int, c color.RGBA) {}
func (f *scriptedFrontend) MeasureText(s string, size int) (int, int) {
	return len(s) * size / 2, size
}

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLoop(t *testing.T, fe *scriptedFrontend) (*loop, *testClock, *bytes.Buffer) {
	t.Helper()
	g, err := game.NewGame(200, 200, 1, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	var buf bytes.Buffer
	l := newLoop(fe, g, log.New(&buf, "", 0), filepath.Join(t.TempDir(), "shots"))
	clock := &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l.now = clock.now
	return l, clock, &buf
}

func click(b ui.Button) ui.Input {
	return ui.Input{PointerX: b.X + b.Width/2, PointerY: b.Y + b.Height/2, Pressed: true}
}

func TestCloseEndsLoop(t *testing.T) {
	fe := &scriptedFrontend{inputs: []ui.Input{{}, {}, {Close: true}}}
	l, _, buf := newTestLoop(t, fe)

	l.run()

	if fe.frames != 2 {
		t.Errorf("Expected 2 frames before closing, got %d", fe.frames)
	}
	if !strings.Contains(buf.String(), "window closed") {
		t.Errorf("Expected a close log line, got %q", buf.String())
	}
}

func TestPlayAndQuitButtons(t *testing.T) {
	fe := &scriptedFrontend{}
	l, clock, buf := newTestLoop(t, fe)
	buttons := l.renderer.Buttons(l.game)

	fe.inputs = []ui.Input{click(buttons[0])}
	if !l.frame() {
		t.Fatal("Expected play to keep the loop going")
	}
	if l.game.State() != manager.StateRunning {
		t.Fatalf("Expected running after play, got %s", l.game.State())
	}
	if !strings.Contains(buf.String(), "started") {
		t.Errorf("Expected a round start log line, got %q", buf.String())
	}

	// Lose by steering into the top wall.
	fe.inputs = []ui.Input{{Keys: []ui.Key{ui.KeyUp}}}
	for i := 0; i < 30 && l.game.State() == manager.StateRunning; i++ {
		clock.advance(stepInterval)
		l.frame()
	}
	if l.game.State() != manager.StateLost {
		t.Fatalf("Expected lost, got %s", l.game.State())
	}
	if !strings.Contains(buf.String(), "wall collision") {
		t.Errorf("Expected the loss to be logged, got %q", buf.String())
	}

	quit := l.renderer.Buttons(l.game)[1]
	fe.inputs = []ui.Input{click(quit)}
	if l.frame() {
		t.Error("Expected quit to end the loop")
	}
}

func TestStepsFollowInterval(t *testing.T) {
	fe := &scriptedFrontend{}
	l, clock, _ := newTestLoop(t, fe)
	l.play()
	start := l.game.GetSnake().GetHead()

	l.frame()
	clock.advance(stepInterval / 2)
	l.frame()
	if l.game.Steps() != 0 {
		t.Fatalf("Expected no step before the interval, got %d", l.game.Steps())
	}

	for i := 0; i < 5; i++ {
		clock.advance(stepInterval)
		l.frame()
	}
	if l.game.Steps() != 5 {
		t.Errorf("Expected 5 steps, got %d", l.game.Steps())
	}
	if head := l.game.GetSnake().GetHead(); head != start.Add(types.Point{X: 5}) {
		t.Errorf("Expected head 5 cells right of %v, got %v", start, head)
	}
}

func TestSpacePauses(t *testing.T) {
	fe := &scriptedFrontend{}
	l, clock, _ := newTestLoop(t, fe)
	l.play()

	fe.inputs = []ui.Input{{Keys: []ui.Key{ui.KeySpace}}}
	clock.advance(stepInterval)
	l.frame()
	if l.game.State() != manager.StatePaused {
		t.Fatalf("Expected paused, got %s", l.game.State())
	}
	for i := 0; i < 3; i++ {
		clock.advance(stepInterval)
		l.frame()
	}
	if l.game.Steps() != 0 {
		t.Errorf("Expected no steps while paused, got %d", l.game.Steps())
	}

	fe.inputs = []ui.Input{{Keys: []ui.Key{ui.KeyDown, ui.KeySpace}}}
	clock.advance(stepInterval)
	l.frame()
	if l.game.State() != manager.StateRunning || l.game.Steps() != 1 {
		t.Errorf("Expected one step after unpausing, got %s with %d steps", l.game.State(), l.game.Steps())
	}
	if l.game.GetSnake().Direction != types.Down {
		t.Errorf("Expected the direction change made while paused, got %s", l.game.GetSnake().Direction)
	}
}

func TestSnapshotKey(t *testing.T) {
	fe := &scriptedFrontend{inputs: []ui.Input{{Keys: []ui.Key{ui.KeySnapshot}}}}
	l, _, buf := newTestLoop(t, fe)
	l.play()

	l.frame()

	entries, err := os.ReadDir(l.snapshotDir)
	if err != nil {
		t.Fatalf("Expected snapshot directory: %v", err)
	}
	if len(entries) != 1 || filepath.Ext(entries[0].Name()) != ".png" {
		t.Errorf("Expected one PNG snapshot, got %v", entries)
	}
	if !strings.Contains(buf.String(), "snapshot saved") {
		t.Errorf("Expected a snapshot log line, got %q", buf.String())
	}
}

func TestOverridesApplyOnlySetFlags(t *testing.T) {
	cfg := config.Default()
	o := overrides{width: 300, height: 120, scale: 3, frontend: config.FrontendTerminal}

	o.apply(cfg, map[string]bool{"width": true, "frontend": true})

	if cfg.Width != 300 || cfg.Frontend != config.FrontendTerminal {
		t.Errorf("Expected set flags to apply, got %+v", cfg)
	}
	if cfg.Height != 200 || cfg.Scale != 2 {
		t.Errorf("Expected unset flags to leave the config alone, got %+v", cfg)
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "snake.log")

	closer, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	log.Printf("hello")
	closer.Close()

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "snake: ") || !strings.Contains(string(data), "hello") {
		t.Errorf("Expected a prefixed log line, got %q", data)
	}

	cfg = config.Default()
	cfg.Frontend = config.FrontendTerminal
	if _, err := setupLogging(cfg); err != nil {
		t.Fatal(err)
	}
	if log.Writer() != io.Discard {
		t.Error("Expected terminal logs to be discarded without a log file")
	}
}
