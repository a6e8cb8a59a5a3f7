// Package store persists question banks as JSON files under the data
// directory. Each store owns its file exclusively; concurrent writers are
// not supported and mutations must go through the owning store's methods.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/question"
)

// CategoryFileName returns the on-disk name for a category bank:
// lower-cased, spaces replaced with underscores.
func CategoryFileName(category string) string {
	return strings.ReplaceAll(strings.ToLower(category), " ", "_") + "_questions.json"
}

// CategoryStore holds one category's questions partitioned by difficulty,
// backed by a single JSON file of shape {"easy": [...], "medium": [...],
// "hard": [...]}.
type CategoryStore struct {
	category string
	path     string
	logger   zerolog.Logger

	mu      sync.Mutex
	buckets map[string][]question.Question
}

// NewCategoryStore loads (or lazily creates) the bank for category. Missing
// or corrupt files reset to an empty three-bucket structure; load never
// fails.
func NewCategoryStore(dataDir, category string, logger zerolog.Logger) *CategoryStore {
	s := &CategoryStore{
		category: category,
		path:     filepath.Join(dataDir, CategoryFileName(category)),
		logger: logger.With().
			Str("component", "category_store").
			Str("category", category).
			Logger(),
		buckets: emptyBuckets(),
	}
	s.load()
	return s
}

func emptyBuckets() map[string][]question.Question {
	return map[string][]question.Question{
		question.DifficultyEasy:   {},
		question.DifficultyMedium: {},
		question.DifficultyHard:   {},
	}
}

func (s *CategoryStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("cannot read category bank, starting empty")
		}
		return
	}

	var buckets map[string][]question.Question
	if err := json.Unmarshal(data, &buckets); err != nil {
		s.logger.Error().Err(err).Msg("corrupt category bank, resetting")
		s.buckets = emptyBuckets()
		return
	}
	// A file holding JSON null decodes into a nil map without an error.
	if buckets == nil {
		buckets = emptyBuckets()
	}
	for _, d := range question.Difficulties {
		if buckets[d] == nil {
			buckets[d] = []question.Question{}
		}
	}
	s.buckets = buckets
	s.logger.Info().Int("total", s.totalLocked()).Msg("loaded category bank")
}

// save writes the full bank back to disk. Durability failures are returned,
// not swallowed: losing newly created questions is a data-loss event the
// caller must see.
func (s *CategoryStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.buckets, "", "    ")
	if err != nil {
		return fmt.Errorf("encode category bank: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error().Err(err).Msg("cannot save category bank")
		return fmt.Errorf("save category bank %s: %w", s.category, err)
	}
	return nil
}

// Get returns up to count questions for the difficulty, shuffled when more
// than count are stored. May return fewer than requested.
func (s *CategoryStore) Get(difficulty string, count int) []question.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := s.buckets[question.NormalizeDifficulty(difficulty)]
	if len(available) <= count {
		out := make([]question.Question, len(available))
		copy(out, available)
		return out
	}
	shuffled := make([]question.Question, len(available))
	copy(shuffled, available)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

// Add buckets records by their own difficulty (unknown values normalize to
// medium) and persists the bank.
func (s *CategoryStore) Add(records []question.Question) error {
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range records {
		d := question.NormalizeDifficulty(q.Difficulty)
		q.Difficulty = d
		s.buckets[d] = append(s.buckets[d], q)
	}
	return s.save()
}

// Remove deletes the first record equal to q by value, persisting when a
// match was found.
func (s *CategoryStore) Remove(q question.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for d, bucket := range s.buckets {
		for i, candidate := range bucket {
			if candidate.Equal(q) {
				s.buckets[d] = append(bucket[:i], bucket[i+1:]...)
				return s.save()
			}
		}
	}
	return nil
}

// Counts reports the number of stored records per difficulty.
func (s *CategoryStore) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int, len(s.buckets))
	for d, bucket := range s.buckets {
		counts[d] = len(bucket)
	}
	return counts
}

// Total reports the number of stored records across difficulties.
func (s *CategoryStore) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *CategoryStore) totalLocked() int {
	total := 0
	for _, bucket := range s.buckets {
		total += len(bucket)
	}
	return total
}
