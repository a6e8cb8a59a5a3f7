package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdesk/quizdesk/internal/question"
)

func testQuestion(text, difficulty string) question.Question {
	return question.Question{
		Text:          text,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "A",
		Category:      "Science",
		Difficulty:    difficulty,
	}
}

func TestCategoryFileName(t *testing.T) {
	assert.Equal(t, "science_questions.json", CategoryFileName("Science"))
	assert.Equal(t, "general_knowledge_questions.json", CategoryFileName("General Knowledge"))
}

func TestCategoryStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.New(io.Discard)

	s := NewCategoryStore(dir, "Science", logger)
	require.NoError(t, s.Add([]question.Question{
		testQuestion("What is the chemical symbol for gold?", "easy"),
		testQuestion("What is the speed of light?", "hard"),
	}))

	// A fresh store must see the persisted records.
	reloaded := NewCategoryStore(dir, "Science", logger)
	assert.Equal(t, 2, reloaded.Total())
	assert.Equal(t, map[string]int{"easy": 1, "medium": 0, "hard": 1}, reloaded.Counts())
}

func TestCategoryStoreNormalizesUnknownDifficulty(t *testing.T) {
	s := NewCategoryStore(t.TempDir(), "Science", zerolog.New(io.Discard))
	require.NoError(t, s.Add([]question.Question{testQuestion("Which gas do plants absorb?", "EXTREME")}))

	counts := s.Counts()
	assert.Equal(t, 1, counts["medium"])
	got := s.Get("medium", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "medium", got[0].Difficulty)
}

func TestCategoryStoreGetCapsAtRequest(t *testing.T) {
	s := NewCategoryStore(t.TempDir(), "Science", zerolog.New(io.Discard))
	require.NoError(t, s.Add([]question.Question{
		testQuestion("Q one?", "easy"),
		testQuestion("Q two?", "easy"),
		testQuestion("Q three?", "easy"),
	}))

	assert.Len(t, s.Get("easy", 2), 2)
	assert.Len(t, s.Get("easy", 10), 3, "may return fewer than requested")
	assert.Empty(t, s.Get("hard", 2))
}

func TestCategoryStoreRemove(t *testing.T) {
	s := NewCategoryStore(t.TempDir(), "Science", zerolog.New(io.Discard))
	q := testQuestion("Which gas do plants absorb?", "easy")
	require.NoError(t, s.Add([]question.Question{q}))

	require.NoError(t, s.Remove(q))
	assert.Equal(t, 0, s.Total())

	// Removing a record that is not stored is not an error.
	require.NoError(t, s.Remove(q))
}

func TestCategoryStoreRecoversFromNullFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CategoryFileName("Science"))
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	s := NewCategoryStore(dir, "Science", zerolog.New(io.Discard))
	assert.Equal(t, 0, s.Total())
	require.NoError(t, s.Add([]question.Question{testQuestion("Q one?", "easy")}))
	assert.Equal(t, 1, s.Total())
}

func TestCategoryStoreRecoversFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CategoryFileName("Science"))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s := NewCategoryStore(dir, "Science", zerolog.New(io.Discard))
	assert.Equal(t, 0, s.Total())
	require.NoError(t, s.Add([]question.Question{testQuestion("Q one?", "easy")}))
	assert.Equal(t, 1, s.Total())
}
