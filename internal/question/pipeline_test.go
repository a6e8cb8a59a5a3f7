package question

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubModel struct {
	ready bool
	fetch func(ctx context.Context, category, difficulty string, count int) []Question
}

func (s *stubModel) Ready() bool { return s.ready }

func (s *stubModel) Fetch(ctx context.Context, category, difficulty string, count int) []Question {
	if s.fetch == nil {
		return nil
	}
	return s.fetch(ctx, category, difficulty, count)
}

type stubAPI struct {
	fetch func(ctx context.Context, category, difficulty string, amount int) []Question
}

func (s *stubAPI) Fetch(ctx context.Context, category, difficulty string, amount int) []Question {
	if s.fetch == nil {
		return nil
	}
	return s.fetch(ctx, category, difficulty, amount)
}

func newTestSourcer(model ModelSource, api APISource) *Sourcer {
	logger := zerolog.New(io.Discard)
	return NewSourcer(model, api, NewFallbackBank(logger), NewFilter(logger), logger)
}

func TestObtainOfflineDeliversExactCount(t *testing.T) {
	s := newTestSourcer(nil, nil)
	f := NewFilter(zerolog.New(io.Discard))

	got := s.Obtain(context.Background(), "Science", "easy", 5)
	assert.Len(t, got, 5)

	fingerprints := map[string]struct{}{}
	for _, q := range got {
		assert.False(t, f.IsSample(q), "sample leaked through: %q", q.Text)
		assert.Len(t, q.Options, OptionCount)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		fingerprints[q.Fingerprint()] = struct{}{}
	}
	assert.Len(t, fingerprints, 5, "duplicate questions served")
}

func TestObtainPrefersModelOutput(t *testing.T) {
	model := &stubModel{
		ready: true,
		fetch: func(_ context.Context, category, difficulty string, count int) []Question {
			out := make([]Question, count)
			for i := range out {
				out[i] = Question{
					Text:          "Which planet is known as the Red Planet?",
					Options:       []string{"Mars", "Venus", "Jupiter", "Saturn"},
					CorrectAnswer: "Mars",
					Category:      category,
					Difficulty:    difficulty,
				}
				out[i].Text = out[i].Text[:len(out[i].Text)-1] + " number " + string(rune('A'+i)) + "?"
			}
			return out
		},
	}
	apiCalled := false
	api := &stubAPI{fetch: func(_ context.Context, _, _ string, _ int) []Question {
		apiCalled = true
		return nil
	}}

	s := newTestSourcer(model, api)
	got := s.Obtain(context.Background(), "Science", "easy", 3)
	assert.Len(t, got, 3)
	assert.False(t, apiCalled, "API consulted although the model covered the request")
}

func TestObtainSkipsUnreadyModel(t *testing.T) {
	fetched := false
	model := &stubModel{ready: false, fetch: func(_ context.Context, _, _ string, _ int) []Question {
		fetched = true
		return nil
	}}

	s := newTestSourcer(model, nil)
	got := s.Obtain(context.Background(), "History", "medium", 4)
	assert.Len(t, got, 4)
	assert.False(t, fetched, "fetched from a model that is not ready")
}

func TestObtainFillsDeficitFromAPI(t *testing.T) {
	var requested int
	api := &stubAPI{fetch: func(_ context.Context, category, difficulty string, amount int) []Question {
		requested = amount
		return []Question{{
			Text:          "Who wrote Romeo and Juliet?",
			Options:       []string{"William Shakespeare", "Charles Dickens", "Jane Austen", "Mark Twain"},
			CorrectAnswer: "William Shakespeare",
			Category:      category,
			Difficulty:    difficulty,
		}}
	}}

	s := newTestSourcer(nil, api)
	got := s.Obtain(context.Background(), "Literature", "easy", 3)
	assert.Len(t, got, 3)
	assert.Equal(t, 3, requested)
	assert.Equal(t, "Who wrote Romeo and Juliet?", got[0].Text)
}

func TestObtainFiltersSampleModelOutput(t *testing.T) {
	model := &stubModel{
		ready: true,
		fetch: func(_ context.Context, category, difficulty string, count int) []Question {
			out := make([]Question, count)
			for i := range out {
				out[i] = Question{
					Text:          "Sample question about anything?",
					Options:       []string{"A", "B", "C", "D"},
					CorrectAnswer: "A",
					Category:      category,
					Difficulty:    difficulty,
				}
			}
			return out
		},
	}

	s := newTestSourcer(model, nil)
	f := NewFilter(zerolog.New(io.Discard))

	got := s.Obtain(context.Background(), "Science", "easy", 5)
	assert.Len(t, got, 5, "filtering must not shrink the result below the request")
	for _, q := range got {
		assert.False(t, f.IsSample(q))
	}
}

func TestObtainUsesGeographyCuratedSet(t *testing.T) {
	s := newTestSourcer(nil, nil)

	got := s.Obtain(context.Background(), "Geography", "hard", 8)
	assert.Len(t, got, 8)
	for _, q := range got {
		assert.Equal(t, "Geography", q.Category)
	}
}

func TestObtainZeroCount(t *testing.T) {
	s := newTestSourcer(nil, nil)
	assert.Empty(t, s.Obtain(context.Background(), "Science", "easy", 0))
}
