package stats

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuizAccumulates(t *testing.T) {
	tr := NewTracker(t.TempDir(), zerolog.New(io.Discard))

	require.NoError(t, tr.RecordQuiz(Result{Category: "Science", Difficulty: "easy", Score: 4, Total: 5}))
	require.NoError(t, tr.RecordQuiz(Result{Category: "History", Difficulty: "hard", Score: 1, Total: 5}))

	snap := tr.Snapshot()
	assert.Equal(t, 2, snap.TotalQuizzes)
	assert.Equal(t, 10, snap.TotalQuestions)
	assert.Equal(t, 5, snap.CorrectAnswers)
	assert.InDelta(t, 50.0, snap.AverageScore, 0.001)
	assert.Equal(t, "Science", snap.BestCategory)
	assert.InDelta(t, 80.0, snap.BestScore, 0.001)

	assert.Equal(t, Tally{Total: 5, Correct: 4}, snap.Categories["Science"])
	assert.Equal(t, Tally{Total: 5, Correct: 1}, snap.Categories["History"])
	assert.Equal(t, Tally{Total: 5, Correct: 4}, snap.Difficulties["easy"])
	assert.Equal(t, Tally{Total: 5, Correct: 1}, snap.Difficulties["hard"])

	require.Len(t, snap.History, 2)
	assert.NotEmpty(t, snap.History[0].ID)
	assert.InDelta(t, 80.0, snap.History[0].Percentage, 0.001)
	assert.Equal(t, "History", snap.History[1].Category)
}

func TestRecordQuizRejectsEmptyRound(t *testing.T) {
	tr := NewTracker(t.TempDir(), zerolog.New(io.Discard))
	assert.Error(t, tr.RecordQuiz(Result{Category: "Science", Difficulty: "easy", Total: 0}))
}

func TestStatsPersistAcrossReloads(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.New(io.Discard)

	tr := NewTracker(dir, logger)
	require.NoError(t, tr.RecordQuiz(Result{Category: "Science", Difficulty: "easy", Score: 3, Total: 5}))

	reloaded := NewTracker(dir, logger)
	snap := reloaded.Snapshot()
	assert.Equal(t, 1, snap.TotalQuizzes)
	assert.Equal(t, Tally{Total: 5, Correct: 3}, snap.Categories["Science"])
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.New(io.Discard)

	tr := NewTracker(dir, logger)
	require.NoError(t, tr.RecordQuiz(Result{Category: "Science", Difficulty: "easy", Score: 3, Total: 5}))
	require.NoError(t, tr.Reset())

	snap := tr.Snapshot()
	assert.Zero(t, snap.TotalQuizzes)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.History)

	reloaded := NewTracker(dir, logger)
	assert.Zero(t, reloaded.Snapshot().TotalQuizzes)
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker(t.TempDir(), zerolog.New(io.Discard))
	require.NoError(t, tr.RecordQuiz(Result{Category: "Science", Difficulty: "easy", Score: 3, Total: 5}))

	snap := tr.Snapshot()
	snap.Categories["Science"] = Tally{}
	snap.History[0].Category = "mutated"

	fresh := tr.Snapshot()
	assert.Equal(t, Tally{Total: 5, Correct: 3}, fresh.Categories["Science"])
	assert.Equal(t, "Science", fresh.History[0].Category)
}
