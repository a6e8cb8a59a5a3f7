// Package history tracks which questions each user has already seen, so a
// session prefers fresh questions before repeating old ones.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/question"
)

// Tracker records seen-question fingerprints per category for one user,
// persisted as user_history_<username>.json with shape
// {"Science": ["fingerprint", ...], ...}.
type Tracker struct {
	username string
	path     string
	logger   zerolog.Logger

	mu   sync.Mutex
	seen map[string][]string
}

func fileName(username string) string {
	return fmt.Sprintf("user_history_%s.json", username)
}

// NewTracker loads the user's history. A missing or corrupt file starts
// empty; load never fails.
func NewTracker(dataDir, username string, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		username: username,
		path:     filepath.Join(dataDir, fileName(username)),
		logger: logger.With().
			Str("component", "history").
			Str("user", username).
			Logger(),
		seen: map[string][]string{},
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			t.logger.Warn().Err(err).Msg("cannot read history, starting empty")
		}
		return
	}
	if err := json.Unmarshal(data, &t.seen); err != nil {
		t.logger.Error().Err(err).Msg("corrupt history, resetting")
		t.seen = map[string][]string{}
	}
	// A file holding JSON null decodes into a nil map without an error.
	if t.seen == nil {
		t.seen = map[string][]string{}
	}
}

func (t *Tracker) save() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(t.seen, "", "    ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		t.logger.Error().Err(err).Msg("cannot save history")
		return fmt.Errorf("save history for %s: %w", t.username, err)
	}
	return nil
}

// Seen reports whether the question's fingerprint is recorded under its
// category.
func (t *Tracker) Seen(q question.Question) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	fp := q.Fingerprint()
	for _, known := range t.seen[q.Category] {
		if known == fp {
			return true
		}
	}
	return false
}

// Split partitions candidates into unseen and seen for the category,
// preserving order within each partition.
func (t *Tracker) Split(category string, candidates []question.Question) (unseen, seen []question.Question) {
	t.mu.Lock()
	known := make(map[string]struct{}, len(t.seen[category]))
	for _, fp := range t.seen[category] {
		known[fp] = struct{}{}
	}
	t.mu.Unlock()

	for _, q := range candidates {
		if _, ok := known[q.Fingerprint()]; ok {
			seen = append(seen, q)
		} else {
			unseen = append(unseen, q)
		}
	}
	return unseen, seen
}

// MarkSeen records the questions' fingerprints under their categories and
// persists immediately, so a crash never forgets a served question.
func (t *Tracker) MarkSeen(questions []question.Question) error {
	if len(questions) == 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	for _, q := range questions {
		fp := q.Fingerprint()
		if fp == "" {
			continue
		}
		dup := false
		for _, known := range t.seen[q.Category] {
			if known == fp {
				dup = true
				break
			}
		}
		if !dup {
			t.seen[q.Category] = append(t.seen[q.Category], fp)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return t.save()
}

// Clear forgets the user's history for one category.
func (t *Tracker) Clear(category string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.seen[category]; !ok {
		return nil
	}
	delete(t.seen, category)
	t.logger.Info().Str("category", category).Msg("cleared category history")
	return t.save()
}

// ClearAll forgets the user's entire history.
func (t *Tracker) ClearAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = map[string][]string{}
	t.logger.Info().Msg("cleared all history")
	return t.save()
}

// Counts reports the number of seen fingerprints per category.
func (t *Tracker) Counts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	counts := make(map[string]int, len(t.seen))
	for cat, fps := range t.seen {
		counts[cat] = len(fps)
	}
	return counts
}
