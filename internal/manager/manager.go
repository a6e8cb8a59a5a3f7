// Package manager coordinates question stores, per-user history and the
// sourcing pipeline behind the operations the front-end calls.
package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/history"
	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/store"
)

// DefaultCategories is the built-in category set, in display order.
var DefaultCategories = []string{
	"Science", "History", "Geography", "Literature",
	"Movies", "Sports", "Technology", "Music",
}

const categoriesFileName = "categories.json"

// customCategory is the persisted form of a user-added category.
type customCategory struct {
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Manager owns the per-category stores, the legacy aggregate, the custom
// category registry and the current user's history tracker. One manager per
// process; stores are created lazily and cached.
type Manager struct {
	dataDir string
	sourcer *question.Sourcer
	root    zerolog.Logger
	logger  zerolog.Logger

	mu      sync.Mutex
	stores  map[string]*store.CategoryStore
	legacy  *store.LegacyStore
	custom  []customCategory
	tracker *history.Tracker
}

func New(dataDir string, sourcer *question.Sourcer, logger zerolog.Logger) *Manager {
	m := &Manager{
		dataDir: dataDir,
		sourcer: sourcer,
		root:    logger,
		logger:  logger.With().Str("component", "manager").Logger(),
		stores:  map[string]*store.CategoryStore{},
		legacy:  store.NewLegacyStore(dataDir, logger),
	}
	m.loadCustomCategories()
	return m
}

// SetCurrentUser switches the active history tracker. An empty username
// disables seen-tracking entirely.
func (m *Manager) SetCurrentUser(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if username == "" {
		m.tracker = nil
		return
	}
	m.tracker = history.NewTracker(m.dataDir, username, m.root)
}

// Categories returns the known category names: defaults first, then customs
// in creation order, without duplicates.
func (m *Manager) Categories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(DefaultCategories)+len(m.custom))
	out = append(out, DefaultCategories...)
	for _, c := range m.custom {
		dup := false
		for _, name := range out {
			if strings.EqualFold(name, c.Name) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c.Name)
		}
	}
	return out
}

// Difficulties returns the supported difficulty levels in canonical order.
func (m *Manager) Difficulties() []string {
	out := make([]string, len(question.Difficulties))
	copy(out, question.Difficulties)
	return out
}

// AddCategory registers a custom category and persists the registry. Names
// matching an existing category (case-insensitively) are rejected.
func (m *Manager) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name must not be empty")
	}
	for _, existing := range m.Categories() {
		if strings.EqualFold(existing, name) {
			return fmt.Errorf("category %q already exists", existing)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.custom = append(m.custom, customCategory{
		Name:      name,
		CreatedAt: time.Now().Format(time.RFC3339),
	})
	m.logger.Info().Str("category", name).Msg("added custom category")
	return m.saveCustomCategories()
}

func (m *Manager) loadCustomCategories() {
	data, err := os.ReadFile(filepath.Join(m.dataDir, categoriesFileName))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn().Err(err).Msg("cannot read custom categories")
		}
		return
	}
	if err := json.Unmarshal(data, &m.custom); err != nil {
		m.logger.Error().Err(err).Msg("corrupt custom category registry, resetting")
		m.custom = nil
	}
}

func (m *Manager) saveCustomCategories() error {
	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(m.custom, "", "    ")
	if err != nil {
		return fmt.Errorf("encode custom categories: %w", err)
	}
	path := filepath.Join(m.dataDir, categoriesFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save custom categories: %w", err)
	}
	return nil
}

// storeFor returns the cached store for category, creating it on first use.
func (m *Manager) storeFor(category string) *store.CategoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[category]
	if !ok {
		s = store.NewCategoryStore(m.dataDir, category, m.logger)
		m.stores[category] = s
	}
	return s
}

func (m *Manager) currentTracker() *history.Tracker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracker
}

// GetQuestions serves exactly count questions for the category and
// difficulty. Stored questions the user has not seen come first; any deficit
// is sourced through the pipeline and persisted; previously seen questions
// fill whatever remains. Served questions are marked seen before returning.
func (m *Manager) GetQuestions(ctx context.Context, category, difficulty string, count int) ([]question.Question, error) {
	if count <= 0 {
		return nil, errors.New("count must be positive")
	}
	difficulty = question.NormalizeDifficulty(difficulty)
	s := m.storeFor(category)
	tracker := m.currentTracker()

	// Over-fetch from the store so seen questions remain available as
	// filler after the unseen ones run out.
	stored := s.Get(difficulty, count*3)

	var unseen, seen []question.Question
	if tracker != nil {
		unseen, seen = tracker.Split(category, stored)
	} else {
		unseen = stored
	}

	if deficit := count - len(unseen); deficit > 0 {
		sourced := m.sourcer.Obtain(ctx, category, difficulty, deficit)
		fresh := make([]question.Question, 0, len(sourced))
		for _, q := range sourced {
			if tracker != nil && tracker.Seen(q) {
				seen = append(seen, q)
				continue
			}
			fresh = append(fresh, q)
		}
		if err := m.persistNew(s, category, difficulty, fresh); err != nil {
			return nil, err
		}
		unseen = append(unseen, fresh...)
	}

	rand.Shuffle(len(unseen), func(i, j int) {
		unseen[i], unseen[j] = unseen[j], unseen[i]
	})
	result := unseen
	if len(result) > count {
		result = result[:count]
	}
	if len(result) < count {
		rand.Shuffle(len(seen), func(i, j int) {
			seen[i], seen[j] = seen[j], seen[i]
		})
		for _, q := range seen {
			if len(result) >= count {
				break
			}
			result = append(result, q)
		}
	}

	if tracker != nil {
		if err := tracker.MarkSeen(result); err != nil {
			return nil, err
		}
	}
	m.logger.Info().
		Str("category", category).
		Str("difficulty", difficulty).
		Int("served", len(result)).
		Msg("served questions")
	return result, nil
}

// persistNew stamps and stores freshly sourced records in the category bank
// and the legacy aggregate, skipping records already stored.
func (m *Manager) persistNew(s *store.CategoryStore, category, difficulty string, records []question.Question) error {
	if len(records) == 0 {
		return nil
	}
	existing := map[string]struct{}{}
	for _, q := range s.Get(difficulty, s.Total()) {
		existing[q.Fingerprint()] = struct{}{}
	}

	fresh := make([]question.Question, 0, len(records))
	for _, q := range records {
		if _, ok := existing[q.Fingerprint()]; ok {
			continue
		}
		q.Category = category
		q.Difficulty = difficulty
		fresh = append(fresh, q)
	}
	if len(fresh) == 0 {
		return nil
	}
	if err := s.Add(fresh); err != nil {
		return err
	}
	return m.legacy.Append(fresh...)
}

// Regenerate forces the sourcing pipeline regardless of the stored inventory
// and persists the results.
func (m *Manager) Regenerate(ctx context.Context, category, difficulty string, count int) ([]question.Question, error) {
	if count <= 0 {
		return nil, errors.New("count must be positive")
	}
	difficulty = question.NormalizeDifficulty(difficulty)

	sourced := m.sourcer.Obtain(ctx, category, difficulty, count)
	if err := m.persistNew(m.storeFor(category), category, difficulty, sourced); err != nil {
		return nil, err
	}
	m.logger.Info().
		Str("category", category).
		Str("difficulty", difficulty).
		Int("count", len(sourced)).
		Msg("regenerated questions")
	return sourced, nil
}

// AddQuestion validates and stores a hand-entered question.
func (m *Manager) AddQuestion(q question.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text must not be empty")
	}
	if q.Category == "" {
		return errors.New("question category must not be empty")
	}
	q.Repair()
	s := m.storeFor(q.Category)
	if err := s.Add([]question.Question{q}); err != nil {
		return err
	}
	return m.legacy.Append(q)
}

// RemoveQuestion deletes the question from its category bank and the legacy
// aggregate.
func (m *Manager) RemoveQuestion(q question.Question) error {
	if err := m.storeFor(q.Category).Remove(q); err != nil {
		return err
	}
	return m.legacy.Remove(q)
}

// CategoryCounts reports stored question totals per category, including
// categories that only exist as data files.
func (m *Manager) CategoryCounts() map[string]int {
	counts := map[string]int{}
	for _, category := range m.Categories() {
		counts[category] = m.storeFor(category).Total()
	}
	return counts
}

// ClearHistory forgets the current user's seen questions for category, or
// everything when category is empty.
func (m *Manager) ClearHistory(category string) error {
	tracker := m.currentTracker()
	if tracker == nil {
		return errors.New("no active user")
	}
	if category == "" {
		return tracker.ClearAll()
	}
	return tracker.Clear(category)
}

// SortedCounts renders CategoryCounts deterministically for display.
func (m *Manager) SortedCounts() []string {
	counts := m.CategoryCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %d", name, counts[name]))
	}
	return lines
}
