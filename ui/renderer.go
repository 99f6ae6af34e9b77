package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/manager"
)

// Renderer draws every screen of the game onto a Canvas. All sizes derive
// from the game's scale, so the same layout serves every frontend.
type Renderer struct {
	cellSize      int
	screenWidth   int
	screenHeight  int
	scale         int
	fontSize      int
	scoreFontSize int
}

func NewRenderer(g *game.Game) *Renderer {
	return &Renderer{
		cellSize:      g.Length,
		screenWidth:   g.ScreenWidth,
		screenHeight:  g.ScreenHeight,
		scale:         g.Scale,
		fontSize:      20 * g.Scale,
		scoreFontSize: 10 * g.Scale,
	}
}

// Draw renders the screen for the game's current state.
func (r *Renderer) Draw(c Canvas, g *game.Game) {
	switch state := g.State(); state {
	case manager.StateStart:
		r.drawStartScreen(c)
	case manager.StateRunning, manager.StatePaused:
		r.drawBoard(c, g)
		if state == manager.StatePaused {
			r.drawCenteredText(c, "Paused", r.screenHeight/2-r.fontSize/2, r.fontSize)
		}
	case manager.StateLost, manager.StateWon:
		r.drawAftergameScreen(c, g)
	}
}

// Buttons returns the clickable buttons of the screen for the game's state.
func (r *Renderer) Buttons(g *game.Game) []Button {
	return r.buttonsFor(g.State())
}

// Click hit-tests the pointer against the current screen's buttons.
func (r *Renderer) Click(g *game.Game, in Input) Action {
	if !in.Pressed {
		return ActionNone
	}
	for _, b := range r.Buttons(g) {
		if b.Contains(in.PointerX, in.PointerY) {
			return b.Action
		}
	}
	return ActionNone
}

func (r *Renderer) drawBoard(c Canvas, g *game.Game) {
	c.Clear(White)
	c.Line(0, 0, r.screenWidth, 0, Black)

	c.Text(fmt.Sprintf("Score: %d", g.Score()), 0, 0, r.scoreFontSize, Black)

	food := g.GetFood()
	c.FillRect(food.X*r.cellSize, food.Y*r.cellSize, r.cellSize, r.cellSize, Red)

	for _, p := range g.GetSnake().Body {
		c.FillRect(p.X*r.cellSize, p.Y*r.cellSize, r.cellSize, r.cellSize, DarkGreen)
	}
}

func (r *Renderer) drawStartScreen(c Canvas) {
	c.Clear(White)
	r.drawCenteredText(c, "Welcome to Snake!", 10*r.scale, r.fontSize)
	r.drawButtons(c, r.buttonsFor(manager.StateStart))
	r.drawCenteredText(c, "Press space to pause", 3*r.screenHeight/4, r.fontSize)
}

func (r *Renderer) drawAftergameScreen(c Canvas, g *game.Game) {
	c.Clear(White)

	if g.State() == manager.StateWon {
		r.drawCenteredText(c, "Congratulations, you won!", 10*r.scale, r.fontSize)
	} else {
		r.drawCenteredText(c, "Game Over!", 10*r.scale, r.fontSize)
	}

	scoreY := r.screenHeight / 4
	r.drawCenteredText(c, fmt.Sprintf("You reached a score of %d", g.Score()), scoreY, r.fontSize)
	r.drawCenteredText(c, fmt.Sprintf("Best this session: %d", g.Session().GetHighScore()),
		scoreY+r.fontSize+2*r.scale, r.scoreFontSize)

	r.drawButtons(c, r.Buttons(g))
}

func (r *Renderer) buttonsFor(state manager.ScreenState) []Button {
	height := 25 * r.scale
	switch state {
	case manager.StateStart:
		width := 50 * r.scale
		x := r.screenWidth/2 - width/2
		return []Button{
			{Title: "Play", X: x, Y: r.screenHeight/4 - height/2, Width: width, Height: height, Color: DarkGreen, Action: ActionPlay},
			{Title: "Quit", X: x, Y: r.screenHeight/2 - height/2, Width: width, Height: height, Color: Red, Action: ActionQuit},
		}
	case manager.StateLost, manager.StateWon:
		playWidth := 100 * r.scale
		quitWidth := 50 * r.scale
		return []Button{
			{Title: "Play again", X: r.screenWidth/2 - playWidth/2, Y: r.screenHeight/2 - height/2, Width: playWidth, Height: height, Color: DarkGreen, Action: ActionPlay},
			{Title: "Quit", X: r.screenWidth/2 - quitWidth/2, Y: 3*r.screenHeight/4 - height/2, Width: quitWidth, Height: height, Color: Red, Action: ActionQuit},
		}
	default:
		return nil
	}
}

func (r *Renderer) drawButtons(c Canvas, buttons []Button) {
	for _, b := range buttons {
		b.Draw(c, r.fontSize)
	}
}

// drawCenteredText draws s horizontally centred at the given top edge.
func (r *Renderer) drawCenteredText(c Canvas, s string, y, size int) {
	w, _ := c.MeasureText(s, size)
	c.Text(s, (r.screenWidth-w)/2, y, size, Black)
}
