package question

import (
	"fmt"
	"slices"
	"strings"
)

// Difficulty constants for readability.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties lists the supported buckets in canonical order.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Question is the normalized record every source produces and every store
// persists. The JSON tags are the wire and storage format; existing data
// files depend on these exact names.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
}

// NormalizeDifficulty lower-cases d and maps anything unrecognized to medium.
func NormalizeDifficulty(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Fingerprint is the dedup key used by seen-question tracking: the
// lower-cased, trimmed question text. Exact repeats only; paraphrases are
// deliberately not caught, and persisted history files rely on this.
func (q Question) Fingerprint() string {
	return strings.ToLower(strings.TrimSpace(q.Text))
}

// Equal reports whether two records match field for field, options order
// included.
func (q Question) Equal(other Question) bool {
	return q.Text == other.Text &&
		q.CorrectAnswer == other.CorrectAnswer &&
		q.Category == other.Category &&
		q.Difficulty == other.Difficulty &&
		slices.Equal(q.Options, other.Options)
}

// Repair enforces the record invariants in place: the correct answer is
// present in the options (substituted into options[0] when a source violated
// this), the option count is exactly 4, and the difficulty is normalized.
func (q *Question) Repair() {
	if len(q.Options) == 0 {
		q.Options = []string{q.CorrectAnswer}
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		q.Options[0] = q.CorrectAnswer
	}
	for len(q.Options) < OptionCount {
		q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
	}
	if len(q.Options) > OptionCount {
		kept := q.Options[:OptionCount]
		if !slices.Contains(kept, q.CorrectAnswer) {
			kept[0] = q.CorrectAnswer
		}
		q.Options = kept
	}
	q.Difficulty = NormalizeDifficulty(q.Difficulty)
}

// containsQuestion reports whether qs holds a record equal to q by value.
func containsQuestion(qs []Question, q Question) bool {
	for _, candidate := range qs {
		if candidate.Equal(q) {
			return true
		}
	}
	return false
}
