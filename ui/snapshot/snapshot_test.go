package snapshot

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/rand"
)

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func cellCentre(g *game.Game, p types.Point) (int, int) {
	return p.X*g.Length + g.Length/2, p.Y*g.Length + g.Length/2
}

func newRunningGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(200, 200, 2, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	g.Play()
	g.Step()
	g.Step()
	return g
}

func occupied(g *game.Game, p types.Point) bool {
	if p == g.GetFood() {
		return true
	}
	for _, b := range g.GetSnake().Body {
		if b == p {
			return true
		}
	}
	return false
}

func TestBoardPixels(t *testing.T) {
	g := newRunningGame(t)
	canvas, err := NewImageCanvas(g.ScreenWidth, g.ScreenHeight)
	if err != nil {
		t.Fatalf("NewImageCanvas failed: %v", err)
	}
	ui.NewRenderer(g).Draw(canvas, g)
	img := canvas.Image()

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("Expected a 400x400 image, got %v", b)
	}

	hx, hy := cellCentre(g, g.GetSnake().GetHead())
	if got := pixel(img, hx, hy); got != ui.DarkGreen {
		t.Errorf("Expected the head to be dark green, got %v", got)
	}

	food := g.GetFood()
	onSnake := false
	for _, b := range g.GetSnake().Body {
		onSnake = onSnake || b == food
	}
	if !onSnake && food.Y > 1 {
		fx, fy := cellCentre(g, food)
		if got := pixel(img, fx, fy); got != ui.Red {
			t.Errorf("Expected the food to be red, got %v", got)
		}
	}

	for y := 3; y < g.Grid.Height; y++ {
		p := types.Point{X: g.Grid.Width - 1, Y: y}
		if occupied(g, p) {
			continue
		}
		x, py := cellCentre(g, p)
		if got := pixel(img, x, py); got != ui.White {
			t.Errorf("Expected an empty cell to be white, got %v", got)
		}
		break
	}

	if food != (types.Point{X: g.Grid.Width - 1, Y: 0}) {
		if got := pixel(img, g.ScreenWidth-1, 0); got != ui.Black {
			t.Errorf("Expected the boundary line on the top row, got %v", got)
		}
	}
}

func TestStartScreenPixels(t *testing.T) {
	g, err := game.NewGame(200, 200, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	r := ui.NewRenderer(g)
	canvas, err := NewImageCanvas(g.ScreenWidth, g.ScreenHeight)
	if err != nil {
		t.Fatalf("NewImageCanvas failed: %v", err)
	}
	r.Draw(canvas, g)

	buttons := r.Buttons(g)
	play, quit := buttons[0], buttons[1]
	if got := pixel(canvas.Image(), play.X+1, play.Y+1); got != ui.DarkGreen {
		t.Errorf("Expected the play button to be dark green, got %v", got)
	}
	if got := pixel(canvas.Image(), quit.X+1, quit.Y+1); got != ui.Red {
		t.Errorf("Expected the quit button to be red, got %v", got)
	}
}

func TestMeasureTextScalesWithSize(t *testing.T) {
	canvas, err := NewImageCanvas(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	w1, h1 := canvas.MeasureText("Score: 10", 10)
	w2, h2 := canvas.MeasureText("Score: 10", 20)
	if w2 <= w1 || h2 <= h1 {
		t.Errorf("Expected larger text at size 20, got %dx%d vs %dx%d", w2, h2, w1, h1)
	}
}

func TestCapture(t *testing.T) {
	g := newRunningGame(t)
	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	path, err := Capture(ui.NewRenderer(g), g, dir, now)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if filepath.Base(path) != "snake-20240506-070809.000.png" {
		t.Errorf("Unexpected snapshot name %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected snapshot on disk: %v", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Failed to read snapshot back: %v", err)
	}
	if img.Bounds().Dx() != g.ScreenWidth || img.Bounds().Dy() != g.ScreenHeight {
		t.Errorf("Expected %dx%d snapshot, got %v", g.ScreenWidth, g.ScreenHeight, img.Bounds())
	}
}
