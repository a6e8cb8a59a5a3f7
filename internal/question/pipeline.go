package question

import (
	"context"

	"github.com/rs/zerolog"
)

// ModelSource is the optional local generative model. Ready must not block;
// Fetch degrades to an empty result on every failure.
type ModelSource interface {
	Ready() bool
	Fetch(ctx context.Context, category, difficulty string, count int) []Question
}

// APISource is the public trivia API. Fetch returns an empty slice on any
// network or decode failure.
type APISource interface {
	Fetch(ctx context.Context, category, difficulty string, amount int) []Question
}

// Sourcer composes the layered fallback pipeline: generative model, public
// API, dense curated sets, the fallback bank, and finally guaranteed
// questions, filtering placeholder content between tiers. Stages run
// strictly in order and each is tried only when the previous left a deficit.
type Sourcer struct {
	model  ModelSource // nil when the model sub-source is disabled
	api    APISource   // nil in offline configurations
	bank   *FallbackBank
	filter *Filter
	logger zerolog.Logger
}

func NewSourcer(model ModelSource, api APISource, bank *FallbackBank, filter *Filter, logger zerolog.Logger) *Sourcer {
	return &Sourcer{
		model:  model,
		api:    api,
		bank:   bank,
		filter: filter,
		logger: logger.With().Str("component", "sourcer").Logger(),
	}
}

// Obtain returns exactly count questions for the category/difficulty pair.
// No stage surfaces "no data" as an error; the guaranteed tier makes the
// requested count always reachable.
func (s *Sourcer) Obtain(ctx context.Context, category, difficulty string, count int) []Question {
	if count <= 0 {
		return nil
	}
	difficulty = NormalizeDifficulty(difficulty)

	var acc []Question

	if s.model != nil && s.model.Ready() {
		got := s.model.Fetch(ctx, category, difficulty, count)
		if len(got) > 0 {
			s.logger.Info().Int("count", len(got)).Msg("questions from generative model")
			acc = append(acc, got...)
		}
	}

	if deficit := count - len(acc); deficit > 0 && s.api != nil {
		got := s.api.Fetch(ctx, category, difficulty, deficit)
		if len(got) > 0 {
			s.logger.Info().Int("count", len(got)).Msg("questions from trivia API")
			acc = append(acc, got...)
		}
	}

	if deficit := count - len(acc); deficit > 0 {
		curated := s.bank.Curated(category, difficulty)
		available := curated[:0:0]
		for _, q := range curated {
			if !containsQuestion(acc, q) {
				available = append(available, q)
			}
		}
		if len(available) > 0 {
			picked := sampleQuestions(available, deficit)
			s.logger.Info().Int("count", len(picked)).Msg("questions from curated set")
			acc = append(acc, picked...)
		}
	}

	if deficit := count - len(acc); deficit > 0 {
		got := s.bank.Get(category, difficulty, deficit)
		s.logger.Info().Int("count", len(got)).Msg("questions from fallback bank")
		acc = append(acc, got...)
	}

	kept := s.filter.Batch(acc)

	if deficit := count - len(kept); deficit > 0 {
		// Filtering cut below the request; over-fetch from the bank to
		// absorb further filter losses.
		extra := s.filter.Batch(s.bank.Get(category, difficulty, deficit*3))
		for _, q := range extra {
			if len(kept) >= count {
				break
			}
			if !containsQuestion(kept, q) {
				kept = append(kept, q)
			}
		}
	}

	if deficit := count - len(kept); deficit > 0 {
		// Guaranteed questions are curated to pass the filter; append as-is.
		s.logger.Warn().Int("count", deficit).Msg("resorting to guaranteed questions")
		kept = append(kept, s.bank.Guaranteed(category, difficulty, deficit)...)
	}

	if len(kept) > count {
		kept = kept[:count]
	}
	for i := range kept {
		kept[i].Repair()
	}
	return kept
}
