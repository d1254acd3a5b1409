package game

import (
	"errors"
	"math/rand"
)

// Default guessing range for a fresh game.
const (
	DEFAULT_MIN = 1
	DEFAULT_MAX = 100
)

// State is one player's game in one chat.
type State struct {
	MinVal   int  `json:"min_val"`
	MaxVal   int  `json:"max_val"`
	Target   int  `json:"target"`
	Attempts int  `json:"attempts"`
	Active   bool `json:"active"`
}

// StateStore keeps game states keyed by chat then user.
type StateStore interface {
	// Get returns the stored state, or nil when the player has none yet.
	Get(chatID, userID int64) (*State, error)
	Put(chatID, userID int64, st State) error
}

// NewState starts a game over the given inclusive range.
func NewState(minVal, maxVal int, r *rand.Rand) (State, error) {
	if minVal >= maxVal {
		return State{}, errors.New("min_val must be < max_val")
	}
	return State{
		MinVal:   minVal,
		MaxVal:   maxVal,
		Target:   pickTarget(minVal, maxVal, r),
		Attempts: 0,
		Active:   true,
	}, nil
}

// Reset rerolls the target within the state's range and clears the attempt count.
func (s *State) Reset(r *rand.Rand) {
	s.Target = pickTarget(s.MinVal, s.MaxVal, r)
	s.Attempts = 0
	s.Active = true
}

func pickTarget(minVal, maxVal int, r *rand.Rand) int {
	return minVal + r.Intn(maxVal-minVal+1)
}
