package main

import (
	"log"
	"time"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/types"
	"snake-classic/ui"
	"snake-classic/ui/snapshot"
)

// stepInterval is the fixed time between two logic steps.
const stepInterval = 100 * time.Millisecond

var directions = map[ui.Key]types.Direction{
	ui.KeyLeft:  types.Left,
	ui.KeyRight: types.Right,
	ui.KeyUp:    types.Up,
	ui.KeyDown:  types.Down,
}

// loop ties a frontend to a game: poll, apply input, step, draw.
type loop struct {
	frontend    ui.Frontend
	game        *game.Game
	renderer    *ui.Renderer
	logger      *log.Logger
	snapshotDir string
	now         func() time.Time
	lastStep    time.Time
}

func newLoop(fe ui.Frontend, g *game.Game, logger *log.Logger, snapshotDir string) *loop {
	return &loop{
		frontend:    fe,
		game:        g,
		renderer:    ui.NewRenderer(g),
		logger:      logger,
		snapshotDir: snapshotDir,
		now:         time.Now,
	}
}

// run blocks until the player quits or closes the window.
func (l *loop) run() {
	for l.frame() {
	}
}

// frame runs one iteration of the loop and reports whether to keep going.
func (l *loop) frame() bool {
	in := l.frontend.Poll()
	if in.Close {
		l.logger.Printf("window closed")
		return false
	}

	for _, k := range in.Keys {
		l.handleKey(k)
	}

	switch l.renderer.Click(l.game, in) {
	case ui.ActionPlay:
		l.play()
	case ui.ActionQuit:
		l.logger.Printf("quit after %d rounds, best score %d",
			l.game.Session().RoundsPlayed(), l.game.Session().GetHighScore())
		return false
	}

	if l.game.State() == manager.StateRunning {
		if now := l.now(); now.Sub(l.lastStep) >= stepInterval {
			l.step()
			l.lastStep = now
		}
	}

	l.frontend.BeginFrame()
	l.renderer.Draw(l.frontend, l.game)
	l.frontend.EndFrame()
	return true
}

func (l *loop) handleKey(k ui.Key) {
	if dir, ok := directions[k]; ok {
		l.game.Steer(dir)
		return
	}
	switch k {
	case ui.KeySpace:
		if l.game.TogglePause() {
			l.logger.Printf("round %s %s", l.game.Session().RoundID(), l.game.State())
		}
	case ui.KeySnapshot:
		path, err := snapshot.Capture(l.renderer, l.game, l.snapshotDir, l.now())
		if err != nil {
			l.logger.Printf("snapshot failed: %v", err)
			return
		}
		l.logger.Printf("snapshot saved to %s", path)
	}
}

func (l *loop) play() {
	if !l.game.Play() {
		return
	}
	l.lastStep = l.now()
	l.logger.Printf("round %s started", l.game.Session().RoundID())
}

func (l *loop) step() {
	l.game.Step()
	switch l.game.State() {
	case manager.StateLost:
		l.logger.Printf("round %s lost (%s collision) with score %d after %d steps",
			l.game.Session().RoundID(), l.game.LastCollision(), l.game.Score(), l.game.Steps())
	case manager.StateWon:
		l.logger.Printf("round %s won with score %d", l.game.Session().RoundID(), l.game.Score())
	}
}
