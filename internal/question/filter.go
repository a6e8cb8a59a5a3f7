package question

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// samplePatterns match the template artifacts the small generative models
// are known to emit. Matched against lower-cased text. The blunt final
// `#\d+` rule is intentional and must not be weakened: it also guards
// against numbered placeholder answers slipping through.
var samplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`sample\s+\w+\s+question`),
	regexp.MustCompile(`sample\s+question`),
	regexp.MustCompile(`\w+\s+sample\s+question`),
	regexp.MustCompile(`\w+\s+easy\s+question`),
	regexp.MustCompile(`\w+\s+medium\s+question`),
	regexp.MustCompile(`\w+\s+hard\s+question`),
	regexp.MustCompile(`easy\s+question\s+#\d+`),
	regexp.MustCompile(`medium\s+question\s+#\d+`),
	regexp.MustCompile(`hard\s+question\s+#\d+`),
	regexp.MustCompile(`correct\s+answer\s+#\d+`),
	regexp.MustCompile(`wrong\s+answer\s+[abc]?\s*#\d+`),
	regexp.MustCompile(`incorrect\s+answer\s+[abc]?\s*#\d+`),
	regexp.MustCompile(`treasure\s+hunt`),
	regexp.MustCompile(`technology\s+sample`),
	regexp.MustCompile(`technology\s+easy\s+question`),
	regexp.MustCompile(`sample`),
	regexp.MustCompile(`#\d+`),
}

// categoryPatterns hold extra banned phrases observed per category, keyed by
// lower-cased category name.
var categoryPatterns = map[string][]*regexp.Regexp{
	"movies": {
		regexp.MustCompile(`sample\s+movies`),
		regexp.MustCompile(`movies\s+sample`),
		regexp.MustCompile(`movie\s+sample`),
		regexp.MustCompile(`sample\s+movie`),
	},
	"technology": {
		regexp.MustCompile(`technology\s+sample`),
		regexp.MustCompile(`sample\s+technology`),
		regexp.MustCompile(`tech\s+sample`),
		regexp.MustCompile(`sample\s+tech`),
	},
	"science": {
		regexp.MustCompile(`science\s+sample`),
		regexp.MustCompile(`sample\s+science`),
	},
	"literacy": {
		regexp.MustCompile(`literacy\s+sample`),
		regexp.MustCompile(`sample\s+literacy`),
	},
}

// minQuestionTokens is the heuristic floor for real question text; anything
// shorter is treated as truncated or placeholder content.
const minQuestionTokens = 4

// Filter classifies records as acceptable or placeholder content. Every
// source is filtered through the same instance so no stage can leak template
// artifacts into results.
type Filter struct {
	logger zerolog.Logger
}

func NewFilter(logger zerolog.Logger) *Filter {
	return &Filter{
		logger: logger.With().Str("component", "question_filter").Logger(),
	}
}

// IsSample reports whether q looks like placeholder or template content.
func (f *Filter) IsSample(q Question) bool {
	text := strings.ToLower(q.Text)

	for _, re := range samplePatterns {
		if re.MatchString(text) {
			return true
		}
	}

	if patterns, ok := categoryPatterns[strings.ToLower(q.Category)]; ok {
		for _, re := range patterns {
			if re.MatchString(text) {
				return true
			}
		}
	}

	for _, opt := range q.Options {
		lower := strings.ToLower(opt)
		for _, re := range samplePatterns {
			if re.MatchString(lower) {
				return true
			}
		}
	}

	if len(strings.Fields(text)) < minQuestionTokens {
		return true
	}
	if !strings.Contains(text, "?") {
		return true
	}
	return false
}

// Batch drops sample records, preserving relative order. Pure aside from
// logging the removed count.
func (f *Filter) Batch(qs []Question) []Question {
	kept := make([]Question, 0, len(qs))
	for _, q := range qs {
		if f.IsSample(q) {
			f.logger.Debug().Str("question", q.Text).Msg("rejected sample question")
			continue
		}
		kept = append(kept, q)
	}
	if removed := len(qs) - len(kept); removed > 0 {
		f.logger.Info().Int("removed", removed).Int("kept", len(kept)).Msg("filtered sample questions")
	}
	return kept
}
