package question

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFallbackGetReturnsRequestedCount(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))

	for _, count := range []int{1, 3, 10, 25} {
		got := b.Get("Science", "easy", count)
		assert.Len(t, got, count, "count=%d", count)
	}
}

func TestFallbackGetPadsExhaustedPoolWithSynthesized(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))
	f := NewFilter(zerolog.New(io.Discard))

	// Science/easy ships only a handful of curated questions; a large request
	// forces synthesis, and every result must still pass the filter.
	got := b.Get("Science", "easy", 20)
	assert.Len(t, got, 20)
	for _, q := range got {
		assert.False(t, f.IsSample(q), "synthesized question flagged as sample: %q", q.Text)
	}
}

func TestFallbackGetHandlesUnknownCategory(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))

	got := b.Get("Underwater Basket Weaving", "easy", 3)
	assert.Len(t, got, 3)
}

func TestCuratedOnlyForGeography(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))

	assert.NotEmpty(t, b.Curated("Geography", "easy"))
	assert.NotEmpty(t, b.Curated("Geography", "hard"))
	assert.Nil(t, b.Curated("Science", "easy"))
}

func TestSynthesizePassesFilter(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))
	f := NewFilter(zerolog.New(io.Discard))

	for _, category := range []string{"Science", "History", "Geography", "Literature", "Sports"} {
		for _, q := range b.Synthesize(category, "medium", 5) {
			assert.False(t, f.IsSample(q), "category %s: %q", category, q.Text)
			assert.Equal(t, category, q.Category)
			assert.Contains(t, q.Options, q.CorrectAnswer)
		}
	}
}

func TestGuaranteedAlwaysDelivers(t *testing.T) {
	b := NewFallbackBank(zerolog.New(io.Discard))
	f := NewFilter(zerolog.New(io.Discard))

	got := b.Guaranteed("Science", "easy", 2)
	assert.Len(t, got, 2)

	// Unknown categories cycle the general-knowledge set, re-labelled.
	got = b.Guaranteed("Mystery", "bogus", 7)
	assert.Len(t, got, 7)
	for _, q := range got {
		assert.Equal(t, "Mystery", q.Category)
		assert.Equal(t, DifficultyMedium, q.Difficulty)
		assert.False(t, f.IsSample(q))
	}
}

func TestSampleQuestionsDrawsWithoutReplacement(t *testing.T) {
	pool := []Question{
		validQuestion("What is the capital of France?"),
		validQuestion("What is the capital of Spain?"),
		validQuestion("What is the capital of Italy?"),
	}
	got := sampleQuestions(pool, 3)
	assert.Len(t, got, 3)

	seen := map[string]struct{}{}
	for _, q := range got {
		seen[q.Fingerprint()] = struct{}{}
	}
	assert.Len(t, seen, 3)

	assert.Len(t, sampleQuestions(pool, 10), 3, "capped at pool size")
}
