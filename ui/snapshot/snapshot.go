package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"snake-classic/game"
	"snake-classic/ui"
)

// Capture draws the current frame of g offscreen and writes it as a PNG into
// dir, returning the file path.
func Capture(r *ui.Renderer, g *game.Game, dir string, now time.Time) (string, error) {
	canvas, err := NewImageCanvas(g.ScreenWidth, g.ScreenHeight)
	if err != nil {
		return "", err
	}
	r.Draw(canvas, g)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("snake-%s.png", now.Format("20060102-150405.000")))
	if err := canvas.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
