package game

import (
	"fmt"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// SetupError is returned when a Game cannot be built from the given screen.
type SetupError struct {
	Message string
}

func (e *SetupError) Error() string {
	return e.Message
}

// Game owns the whole state of one session: the board, the snake, the food,
// the score and the screen state machine.
type Game struct {
	ScreenWidth  int // pixels, already scaled
	ScreenHeight int
	Scale        int
	Length       int // edge of one cell in pixels
	Grid         types.Grid

	snake         *entity.Snake
	startPos      types.Point
	score         int
	steps         int
	lastCollision manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame builds a game for a screen of width x height units (multiples of
// 10) drawn at the given integer scale. rng drives food placement.
func NewGame(width, height, scale int, rng *rand.Rand) (*Game, error) {
	if width <= 0 || height <= 0 || width%types.MinScreenUnit != 0 || height%types.MinScreenUnit != 0 {
		return nil, &SetupError{Message: fmt.Sprintf("Screen width and screen height have to be multiple of %d! (got %dx%d)", types.MinScreenUnit, width, height)}
	}
	if scale < 1 {
		return nil, &SetupError{Message: fmt.Sprintf("Scale has to be a positive integer! (got %d)", scale)}
	}
	if rng == nil {
		return nil, &SetupError{Message: "A random source is required"}
	}

	grid := types.Grid{
		Width:  width / types.CellPixels,
		Height: height / types.CellPixels,
	}
	startPos := types.Point{X: grid.Width / 3, Y: grid.Height / 2}
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		ScreenWidth:  width * scale,
		ScreenHeight: height * scale,
		Scale:        scale,
		Length:       types.CellPixels * scale,
		Grid:         grid,
		snake:        entity.NewSnake(startPos),
		startPos:     startPos,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng),
		stateMgr:     manager.NewStateManager(),
	}
	return g, nil
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Score() int {
	return g.score
}

// MaxScore is the score that fills the board and wins the round.
func (g *Game) MaxScore() int {
	return g.Grid.Cells()
}

func (g *Game) State() manager.ScreenState {
	return g.stateMgr.State()
}

func (g *Game) Session() *manager.StateManager {
	return g.stateMgr
}

// Steps counts logic steps of the current round.
func (g *Game) Steps() int {
	return g.steps
}

// LastCollision is what ended the last lost round.
func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCollision
}

// Play resets the board and starts a round. It only has an effect on the
// start screen and on the after-game screens.
func (g *Game) Play() bool {
	if !g.stateMgr.Play() {
		return false
	}
	g.Reset()
	return true
}

// Reset restores the snake, the direction and the score. The food stays put.
func (g *Game) Reset() {
	g.snake.Reset(g.startPos)
	g.score = 0
	g.steps = 0
	g.lastCollision = manager.NoCollision
}

func (g *Game) TogglePause() bool {
	return g.stateMgr.TogglePause()
}

// Steer changes the snake's heading while a round is on screen.
func (g *Game) Steer(dir types.Direction) {
	switch g.State() {
	case manager.StateRunning, manager.StatePaused:
		g.snake.SetDirection(dir)
	}
}

// Step advances the round by one logic tick. It does nothing unless running.
func (g *Game) Step() {
	if g.State() != manager.StateRunning {
		return
	}
	g.steps++

	if g.score == g.MaxScore() {
		g.stateMgr.Win(g.score)
		return
	}

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.foodMgr.GetFood()) {
		g.score++
		g.snake.Grow()
		g.foodMgr.Respawn()
	}

	g.snake.Advance()

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.lastCollision = c
		g.stateMgr.Lose(g.score)
	}
}
