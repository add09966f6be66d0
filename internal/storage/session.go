package storage

import (
	"errors"
	"sync"

	"github.com/aliskhannn/sat-math-bot/internal/domain/entities"
)

// ErrActiveSession is returned by Open when the user already has an
// unanswered question.
var ErrActiveSession = errors.New("user already has an active question")

// SessionStore provides in-memory storage of each user's open question.
// A user holds at most one QuizItem at a time; Open enforces this as an
// atomic check-and-set so concurrent triggers for the same user cannot
// both succeed.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]entities.QuizItem
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]entities.QuizItem),
	}
}

// HasOpen reports whether the user has an unanswered question.
func (s *SessionStore) HasOpen(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[userID]
	return ok
}

// Open stores a question for the user. Returns ErrActiveSession if one
// is already open; the stored item is left unchanged in that case.
func (s *SessionStore) Open(userID int64, item entities.QuizItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; ok {
		return ErrActiveSession
	}

	s.sessions[userID] = item
	return nil
}

// Take atomically returns and clears the user's open question.
// The second return value is false if the user has none.
func (s *SessionStore) Take(userID int64) (entities.QuizItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.sessions[userID]
	if !ok {
		return entities.QuizItem{}, false
	}

	delete(s.sessions, userID)
	return item, true
}
