package storage

import (
	"sync"

	"github.com/aliskhannn/sat-math-bot/internal/domain/entities"
)

// ScoreTracker keeps per-user cumulative correct/total counters in
// memory. Records are created lazily on the first graded answer and
// live for the process lifetime.
type ScoreTracker struct {
	mu     sync.Mutex
	scores map[int64]entities.ScoreRecord
}

// NewScoreTracker creates an empty ScoreTracker.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{
		scores: make(map[int64]entities.ScoreRecord),
	}
}

// Record registers one graded answer for the user: Total grows by one,
// Correct by one when wasCorrect. Returns the updated record.
func (t *ScoreTracker) Record(userID int64, wasCorrect bool) entities.ScoreRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.scores[userID]
	rec.Total++
	if wasCorrect {
		rec.Correct++
	}
	t.scores[userID] = rec

	return rec
}

// Read returns the user's current record, or a zero record if none
// exists. Read never creates a record.
func (t *ScoreTracker) Read(userID int64) entities.ScoreRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scores[userID]
}
