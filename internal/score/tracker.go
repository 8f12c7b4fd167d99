// Package score tracks the persisted high score.
//
// Persistence is best effort: a broken or missing store never stops a game,
// it only means the high score is not remembered across sessions.
package score

import (
	"errors"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-runner/internal/storage"
)

// HighScoreKey is the storage key holding the high score as a base-10 integer.
const HighScoreKey = "highScore"

// KV is the persistence the tracker needs. *storage.Store implements it.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Tracker holds the high score and writes new records through.
// One tracker may be shared by concurrent sessions.
type Tracker struct {
	mu     sync.Mutex
	store  KV
	logger *log.Logger
	high   int
}

// Load reads the persisted high score. Missing, malformed or negative
// values and read failures all count as zero. store may be nil for an
// in-memory tracker; logger may be nil to discard warnings.
func Load(store KV, logger *log.Logger) *Tracker {
	t := &Tracker{store: store, logger: logger}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	if store == nil {
		return t
	}

	raw, err := store.Get(HighScoreKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return t
	case err != nil:
		t.logger.Warn("could not read high score", "error", err)
		return t
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		t.logger.Warn("ignoring malformed high score", "value", raw)
		return t
	}
	t.high = v
	return t
}

// HighScore returns the best score known to the tracker.
func (t *Tracker) HighScore() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.high
}

// RecordGameEnd reports the final score of a finished game. When it beats
// the high score, the new value is kept in memory and persisted, and
// RecordGameEnd returns true. A failed write is logged and otherwise ignored.
func (t *Tracker) RecordGameEnd(finalScore int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if finalScore <= t.high {
		return false
	}
	t.high = finalScore

	if t.store != nil {
		if err := t.store.Set(HighScoreKey, strconv.Itoa(finalScore)); err != nil {
			t.logger.Warn("could not save high score", "score", finalScore, "error", err)
		} else {
			t.logger.Info("new high score", "score", finalScore)
		}
	}
	return true
}

// Reset clears the high score in memory and in the store.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.high = 0
	if t.store == nil {
		return nil
	}
	return t.store.Delete(HighScoreKey)
}
