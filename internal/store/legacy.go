package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/question"
)

const (
	legacyFileName  = "questions.json"
	backupDirName   = "backup"
	backupPrefix    = "questions_backup_"
	backupTimestamp = "20060102_150405"
	maxBackups      = 10
)

// LegacyStore maintains the flat aggregate question list kept for backward
// compatibility with older data files, creating a timestamped backup before
// every rewrite and pruning old backups.
type LegacyStore struct {
	path      string
	backupDir string
	logger    zerolog.Logger

	mu        sync.Mutex
	questions []question.Question
}

func NewLegacyStore(dataDir string, logger zerolog.Logger) *LegacyStore {
	s := &LegacyStore{
		path:      filepath.Join(dataDir, legacyFileName),
		backupDir: filepath.Join(dataDir, backupDirName),
		logger:    logger.With().Str("component", "legacy_store").Logger(),
	}
	s.load()
	return s
}

func (s *LegacyStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("cannot read aggregate question list, starting empty")
		}
		return
	}
	if err := json.Unmarshal(data, &s.questions); err != nil {
		s.logger.Error().Err(err).Msg("corrupt aggregate question list, resetting")
		s.questions = nil
		return
	}
	s.logger.Info().Int("count", len(s.questions)).Msg("loaded aggregate question list")
}

// All returns a copy of the aggregate list.
func (s *LegacyStore) All() []question.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]question.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Append adds records and persists the list.
func (s *LegacyStore) Append(records ...question.Question) error {
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, records...)
	return s.save()
}

// Remove deletes the first record equal to q by value and persists.
func (s *LegacyStore) Remove(q question.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, candidate := range s.questions {
		if candidate.Equal(q) {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return s.save()
		}
	}
	return nil
}

func (s *LegacyStore) save() error {
	s.backup()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.questions, "", "    ")
	if err != nil {
		return fmt.Errorf("encode aggregate question list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error().Err(err).Msg("cannot save aggregate question list")
		return fmt.Errorf("save aggregate question list: %w", err)
	}
	return nil
}

// backup copies the current file into the backup directory with a timestamp
// suffix. Backup failures are logged but never block a save.
func (s *LegacyStore) backup() {
	current, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		s.logger.Warn().Err(err).Msg("cannot create backup directory")
		return
	}
	name := backupPrefix + time.Now().Format(backupTimestamp) + ".json"
	if err := os.WriteFile(filepath.Join(s.backupDir, name), current, 0o644); err != nil {
		s.logger.Warn().Err(err).Msg("cannot write backup")
		return
	}
	s.pruneBackups()
}

// pruneBackups keeps only the maxBackups most recent backup files.
func (s *LegacyStore) pruneBackups() {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return
	}
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), backupPrefix) && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= maxBackups {
		return
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	for _, name := range names[maxBackups:] {
		if err := os.Remove(filepath.Join(s.backupDir, name)); err != nil {
			s.logger.Warn().Err(err).Str("backup", name).Msg("cannot remove old backup")
		} else {
			s.logger.Info().Str("backup", name).Msg("removed old backup")
		}
	}
}
