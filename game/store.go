package game

import "sync"

// MemoryStateStore is a mutex-guarded in-memory StateStore.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[int64]map[int64]State
}

// NewMemoryStateStore initializes an empty in-memory store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[int64]map[int64]State),
	}
}

// Get returns the stored state, or nil when the player has none yet.
func (s *MemoryStateStore) Get(chatID, userID int64) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chatStates, ok := s.states[chatID]
	if !ok {
		return nil, nil
	}
	st, ok := chatStates[userID]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// Put stores the state for the chat/user pair.
func (s *MemoryStateStore) Put(chatID, userID int64, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	chatStates, ok := s.states[chatID]
	if !ok {
		chatStates = make(map[int64]State)
		s.states[chatID] = chatStates
	}
	chatStates[userID] = st
	return nil
}
