package question

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
)

// FallbackBank guarantees that some acceptable questions can always be
// produced, even with no network and no generative model. It layers three
// tiers: a hand-curated bank, synthesized filler for exhausted pools, and a
// small guaranteed set reserved as the last resort after filtering.
type FallbackBank struct {
	curated    map[string]map[string][]Question
	guaranteed map[string]map[string][]Question
	logger     zerolog.Logger
}

func NewFallbackBank(logger zerolog.Logger) *FallbackBank {
	return &FallbackBank{
		curated:    curatedBank(),
		guaranteed: guaranteedBank(),
		logger:     logger.With().Str("component", "fallback_bank").Logger(),
	}
}

// Get returns count questions for the category/difficulty: a random sample
// without replacement while the curated pool lasts, topped up with
// synthesized filler once it is exhausted. Unknown categories or
// difficulties borrow a random known pool rather than failing.
func (b *FallbackBank) Get(category, difficulty string, count int) []Question {
	if count <= 0 {
		return nil
	}

	pool := b.pool(category, difficulty)
	if len(pool) >= count {
		return sampleQuestions(pool, count)
	}

	out := make([]Question, 0, count)
	out = append(out, sampleQuestions(pool, len(pool))...)
	filler := b.Synthesize(category, NormalizeDifficulty(difficulty), count-len(out))
	b.logger.Debug().
		Str("category", category).
		Int("curated", len(pool)).
		Int("synthesized", len(filler)).
		Msg("curated pool exhausted, padding with synthesized questions")
	return append(out, filler...)
}

// pool resolves the curated bucket, borrowing random known pools for
// unknown categories or difficulties the way the original data set did.
func (b *FallbackBank) pool(category, difficulty string) []Question {
	byDiff, ok := b.curated[category]
	if !ok {
		for _, v := range b.curated {
			byDiff = v
			break
		}
	}
	difficulty = NormalizeDifficulty(difficulty)
	pool, ok := byDiff[difficulty]
	if !ok || len(pool) == 0 {
		for _, v := range byDiff {
			if len(v) > 0 {
				pool = v
				break
			}
		}
	}
	return pool
}

// Curated exposes the dense hand-written set for categories that ship one
// (currently Geography). The pipeline samples it directly before falling
// back to Get. Returns nil for other categories.
func (b *FallbackBank) Curated(category, difficulty string) []Question {
	if category != "Geography" {
		return nil
	}
	byDiff, ok := b.curated[category]
	if !ok {
		return nil
	}
	pool := byDiff[NormalizeDifficulty(difficulty)]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// Synthesize manufactures syntactically valid, placeholder-free filler
// questions from short per-category templates. They are generic but pass the
// sample filter, so the pipeline can always reach the requested count.
func (b *FallbackBank) Synthesize(category, difficulty string, count int) []Question {
	if count <= 0 {
		return nil
	}
	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, synthesizeOne(category, difficulty, i))
	}
	return out
}

var synthContinents = []string{"Asia", "Africa", "Europe", "North America"}

func synthesizeOne(category, difficulty string, n int) Question {
	var text string
	var options []string
	switch category {
	case "Science":
		text = fmt.Sprintf("What scientific discovery was made in the %d0s that revolutionized the field?", n+1)
		options = []string{
			"The widely credited discovery",
			"A discovery from an earlier decade",
			"A discovery from a later decade",
			"A discovery from another field",
		}
	case "History":
		text = fmt.Sprintf("Which historical figure was most influential in the %dth century?", n+1)
		options = []string{
			"The figure most historians credit",
			"A figure from an earlier era",
			"A figure from a later era",
			"A largely forgotten contemporary",
		}
	case "Geography":
		text = fmt.Sprintf("Which geographical feature is most prominent in %s?", synthContinents[n%len(synthContinents)])
		options = []string{
			"The feature geographers cite most",
			"A feature of a neighboring region",
			"A feature found only offshore",
			"A feature from another continent",
		}
	case "Literature":
		text = fmt.Sprintf("Which author made the biggest contribution to %dth century literature?", n+1)
		options = []string{
			"The author critics credit most",
			"An author from an earlier century",
			"An author from a later century",
			"An author known mainly for essays",
		}
	default:
		text = fmt.Sprintf("Which development shaped %s the most during the %d0s?", category, n+1)
		options = []string{
			"The development most experts credit",
			"A development from a later decade",
			"A development from another field",
			"A development of minor influence",
		}
	}
	return Question{
		Text:          text,
		Options:       options,
		CorrectAnswer: options[0],
		Category:      category,
		Difficulty:    NormalizeDifficulty(difficulty),
	}
}

// Guaranteed returns exactly count questions known a priori to pass the
// sample filter. Unknown categories are served from a small cross-category
// general-knowledge set re-labelled with the requested category and
// difficulty, cycling as needed.
func (b *FallbackBank) Guaranteed(category, difficulty string, count int) []Question {
	if count <= 0 {
		return nil
	}
	difficulty = NormalizeDifficulty(difficulty)

	out := make([]Question, 0, count)
	if byDiff, ok := b.guaranteed[category]; ok {
		if pool, ok := byDiff[difficulty]; ok {
			take := min(count, len(pool))
			out = append(out, pool[:take]...)
		}
	}
	for i := 0; len(out) < count; i++ {
		q := generalKnowledge[i%len(generalKnowledge)]
		q.Category = category
		q.Difficulty = difficulty
		out = append(out, q)
	}
	return out
}

// sampleQuestions returns count records drawn without replacement.
func sampleQuestions(pool []Question, count int) []Question {
	if count >= len(pool) {
		count = len(pool)
	}
	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:count]
}

// bankQ builds a curated record with the correct answer first in the options
// list; option order is shuffled at presentation time, not here.
func bankQ(category, difficulty, text, answer string, wrong ...string) Question {
	return Question{
		Text:          text,
		Options:       append([]string{answer}, wrong...),
		CorrectAnswer: answer,
		Category:      category,
		Difficulty:    difficulty,
	}
}

// generalKnowledge is the cross-category last-resort trio; category and
// difficulty are stamped on at request time.
var generalKnowledge = []Question{
	bankQ("", "", "What is the capital of Japan?", "Tokyo", "Beijing", "Seoul", "Bangkok"),
	bankQ("", "", "Who painted the Mona Lisa?", "Leonardo da Vinci", "Pablo Picasso", "Vincent van Gogh", "Michelangelo"),
	bankQ("", "", "What is the largest ocean on Earth?", "Pacific Ocean", "Atlantic Ocean", "Indian Ocean", "Arctic Ocean"),
}
