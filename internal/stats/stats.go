// Package stats accumulates quiz results into stats.json.
package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const statsFileName = "stats.json"

// Tally counts answered and correct questions for one category or
// difficulty.
type Tally struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// Entry is one completed quiz in the chronological history.
type Entry struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Category   string  `json:"category"`
	Difficulty string  `json:"difficulty"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Snapshot is the full persisted state.
type Snapshot struct {
	TotalQuizzes   int              `json:"total_quizzes"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	AverageScore   float64          `json:"average_score"`
	BestCategory   string           `json:"best_category"`
	BestScore      float64          `json:"best_score"`
	Categories     map[string]Tally `json:"categories"`
	Difficulties   map[string]Tally `json:"difficulties"`
	History        []Entry          `json:"history"`
}

func emptySnapshot() Snapshot {
	return Snapshot{
		Categories: map[string]Tally{},
		Difficulties: map[string]Tally{
			"easy":   {},
			"medium": {},
			"hard":   {},
		},
	}
}

// Result describes one finished quiz round.
type Result struct {
	Category   string
	Difficulty string
	Score      int
	Total      int
}

// Tracker persists accumulated statistics.
type Tracker struct {
	path   string
	logger zerolog.Logger

	mu   sync.Mutex
	snap Snapshot
}

func NewTracker(dataDir string, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		path:   filepath.Join(dataDir, statsFileName),
		logger: logger.With().Str("component", "stats").Logger(),
		snap:   emptySnapshot(),
	}
	t.load()
	return t
}

func (t *Tracker) load() {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			t.logger.Warn().Err(err).Msg("cannot read statistics, starting empty")
		}
		return
	}
	if err := json.Unmarshal(data, &t.snap); err != nil {
		t.logger.Error().Err(err).Msg("corrupt statistics, resetting")
		t.snap = emptySnapshot()
		return
	}
	if t.snap.Categories == nil {
		t.snap.Categories = map[string]Tally{}
	}
	if t.snap.Difficulties == nil {
		t.snap.Difficulties = emptySnapshot().Difficulties
	}
}

func (t *Tracker) save() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(t.snap, "", "    ")
	if err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("save statistics: %w", err)
	}
	return nil
}

// RecordQuiz folds one quiz result into the aggregates and appends it to the
// history.
func (t *Tracker) RecordQuiz(r Result) error {
	if r.Total <= 0 {
		return errors.New("quiz total must be positive")
	}
	percentage := float64(r.Score) / float64(r.Total) * 100

	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.TotalQuizzes++
	t.snap.TotalQuestions += r.Total
	t.snap.CorrectAnswers += r.Score
	t.snap.AverageScore = float64(t.snap.CorrectAnswers) / float64(t.snap.TotalQuestions) * 100

	cat := t.snap.Categories[r.Category]
	cat.Total += r.Total
	cat.Correct += r.Score
	t.snap.Categories[r.Category] = cat

	diff := t.snap.Difficulties[r.Difficulty]
	diff.Total += r.Total
	diff.Correct += r.Score
	t.snap.Difficulties[r.Difficulty] = diff

	if percentage > t.snap.BestScore || t.snap.BestCategory == "" {
		t.snap.BestScore = percentage
		t.snap.BestCategory = r.Category
	}

	t.snap.History = append(t.snap.History, Entry{
		ID:         uuid.NewString(),
		Date:       time.Now().Format(time.RFC3339),
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Score:      r.Score,
		Total:      r.Total,
		Percentage: percentage,
	})

	return t.save()
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.snap
	out.Categories = make(map[string]Tally, len(t.snap.Categories))
	for k, v := range t.snap.Categories {
		out.Categories[k] = v
	}
	out.Difficulties = make(map[string]Tally, len(t.snap.Difficulties))
	for k, v := range t.snap.Difficulties {
		out.Difficulties[k] = v
	}
	out.History = make([]Entry, len(t.snap.History))
	copy(out.History, t.snap.History)
	return out
}

// Reset discards all accumulated statistics.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap = emptySnapshot()
	t.logger.Info().Msg("statistics reset")
	return t.save()
}
