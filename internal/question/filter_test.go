package question

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func validQuestion(text string) Question {
	return Question{
		Text:          text,
		Options:       []string{"Paris", "London", "Berlin", "Madrid"},
		CorrectAnswer: "Paris",
		Category:      "Geography",
		Difficulty:    "easy",
	}
}

func TestIsSampleRejectsTemplateText(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))

	cases := []string{
		"Sample question about science?",
		"This is a science sample question?",
		"Geography easy question #3?",
		"What about the treasure hunt in this one?",
		"Correct answer #2 should be picked?",
	}
	for _, text := range cases {
		assert.True(t, f.IsSample(validQuestion(text)), "expected rejection: %q", text)
	}
}

func TestIsSampleRejectsNumberedPlaceholders(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))
	// The bare #N rule is deliberately blunt.
	assert.True(t, f.IsSample(validQuestion("Which road is called Route #66 in the USA?")))
}

func TestIsSampleRejectsPlaceholderOptions(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))
	q := validQuestion("What is the capital of France?")
	q.Options = []string{"Paris", "Wrong answer #1", "Berlin", "Madrid"}
	assert.True(t, f.IsSample(q))
}

func TestIsSampleRejectsShortOrStatementText(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))

	assert.True(t, f.IsSample(validQuestion("Capital of France?")), "fewer than four tokens")
	assert.True(t, f.IsSample(validQuestion("The capital of France is Paris")), "no question mark")
}

func TestIsSampleAcceptsRealQuestions(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))

	cases := []string{
		"What is the capital of France?",
		"Which planet is known as the Red Planet?",
		"Who wrote Romeo and Juliet?",
	}
	for _, text := range cases {
		assert.False(t, f.IsSample(validQuestion(text)), "expected acceptance: %q", text)
	}
}

func TestIsSampleUsesCategoryPatterns(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))
	q := validQuestion("Is this a movie sample about directors and their films?")
	q.Category = "Movies"
	assert.True(t, f.IsSample(q))
}

func TestBatchPreservesOrderAndIsIdempotent(t *testing.T) {
	f := NewFilter(zerolog.New(io.Discard))

	in := []Question{
		validQuestion("What is the capital of France?"),
		validQuestion("Sample question about capitals?"),
		validQuestion("Which planet is known as the Red Planet?"),
	}
	kept := f.Batch(in)
	assert.Len(t, kept, 2)
	assert.Equal(t, in[0].Text, kept[0].Text)
	assert.Equal(t, in[2].Text, kept[1].Text)

	again := f.Batch(kept)
	assert.Equal(t, kept, again)
}
