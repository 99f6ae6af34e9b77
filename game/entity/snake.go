package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's snake. Head is tracked separately from Body because
// the body is empty right after a reset until the first step appends to it.
type Snake struct {
	Head      types.Point
	Body      []types.Point // oldest cell first, head last
	Length    int           // target number of body cells
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	s := &Snake{}
	s.Reset(startPos)
	return s
}

// Reset puts the snake back at startPos with an empty body, moving right.
func (s *Snake) Reset(startPos types.Point) {
	s.Head = startPos
	s.Body = s.Body[:0]
	s.Length = types.StartLength
	s.Direction = types.Right
}

// Advance moves the head one cell, appends it and trims the tail to Length.
func (s *Snake) Advance() {
	s.Head = s.Head.Add(s.Direction.ToPoint())
	s.Body = append(s.Body, s.Head)
	for len(s.Body) > s.Length {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

// Grow raises the target length by one; the tail stops shrinking for one step.
func (s *Snake) Grow() {
	s.Length++
}

func (s *Snake) GetHead() types.Point {
	return s.Head
}

// Tail returns every body cell except the head.
func (s *Snake) Tail() []types.Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[:len(s.Body)-1]
}

// SetDirection changes the heading. Reversing onto the same axis is allowed.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	s.Direction = dir
}
