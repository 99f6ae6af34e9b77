package manager

import (
	"time"

	"github.com/google/uuid"
)

// ScreenState is the screen the game is currently showing.
type ScreenState int

const (
	StateStart ScreenState = iota
	StateRunning
	StatePaused
	StateLost
	StateWon
)

func (s ScreenState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Finished reports whether the state is one of the after-game screens.
func (s ScreenState) Finished() bool {
	return s == StateLost || s == StateWon
}

// RoundRecord is one finished round of the current session.
type RoundRecord struct {
	ID       string
	Score    int
	Won      bool
	Duration time.Duration
}

// StateManager drives the screen state machine and keeps in-memory session
// stats. Nothing here outlives the process.
type StateManager struct {
	state        ScreenState
	roundID      string
	roundStart   time.Time
	highScore    int
	scoreHistory []RoundRecord
	now          func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:        StateStart,
		scoreHistory: make([]RoundRecord, 0),
		now:          time.Now,
	}
}

func (sm *StateManager) State() ScreenState {
	return sm.state
}

// Play starts a new round from the start screen or an after-game screen.
func (sm *StateManager) Play() bool {
	if sm.state != StateStart && !sm.state.Finished() {
		return false
	}
	sm.state = StateRunning
	sm.roundID = uuid.New().String()
	sm.roundStart = sm.now()
	return true
}

// TogglePause flips between running and paused; other states ignore it.
func (sm *StateManager) TogglePause() bool {
	switch sm.state {
	case StateRunning:
		sm.state = StatePaused
	case StatePaused:
		sm.state = StateRunning
	default:
		return false
	}
	return true
}

// Lose ends the running round.
func (sm *StateManager) Lose(score int) bool {
	return sm.finish(StateLost, score)
}

// Win ends the running round with a full board.
func (sm *StateManager) Win(score int) bool {
	return sm.finish(StateWon, score)
}

func (sm *StateManager) finish(state ScreenState, score int) bool {
	if sm.state != StateRunning {
		return false
	}
	sm.state = state
	sm.UpdateScore(score)
	sm.AddToHistory(RoundRecord{
		ID:       sm.roundID,
		Score:    score,
		Won:      state == StateWon,
		Duration: sm.now().Sub(sm.roundStart),
	})
	return true
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(record RoundRecord) {
	sm.scoreHistory = append(sm.scoreHistory, record)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []RoundRecord {
	return sm.scoreHistory
}

// RoundID is the id of the current or last round, empty before the first Play.
func (sm *StateManager) RoundID() string {
	return sm.roundID
}

// RoundsPlayed counts finished rounds.
func (sm *StateManager) RoundsPlayed() int {
	return len(sm.scoreHistory)
}
