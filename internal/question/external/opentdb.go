package external

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/question"
)

// categoryIDs maps application categories to Open Trivia DB category codes.
// Categories without a mapping are requested without the category parameter.
var categoryIDs = map[string]int{
	"Science":    17, // Science & Nature
	"History":    23,
	"Geography":  22,
	"Literature": 10, // Books
	"Movies":     11, // Film
	"Sports":     21,
	"Technology": 18, // Computers
	"Music":      12,
}

const defaultTimeout = 5 * time.Second

// OpenTDBClient fetches multiple-choice questions from the Open Trivia DB
// (no API key required).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *OpenTDBClient {
	if baseURL == "" {
		baseURL = "https://opentdb.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &OpenTDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "opentdb").Logger(),
	}
}

type openTDBResult struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type openTDBResponse struct {
	ResponseCode int             `json:"response_code"`
	Results      []openTDBResult `json:"results"`
}

// Fetch requests up to amount questions. Every failure mode (network error,
// bad status, malformed body, non-zero response code) degrades to an empty
// slice; the pipeline treats this source as best-effort.
func (c *OpenTDBClient) Fetch(ctx context.Context, category, difficulty string, amount int) []question.Question {
	values := url.Values{}
	values.Set("amount", fmt.Sprint(amount))
	values.Set("type", "multiple")
	if id, ok := categoryIDs[category]; ok {
		values.Set("category", fmt.Sprint(id))
	}
	switch difficulty {
	case question.DifficultyEasy, question.DifficultyMedium, question.DifficultyHard:
		values.Set("difficulty", difficulty)
	}

	endpoint := fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error().Err(err).Msg("build request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("trivia API unreachable")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("trivia API non-200")
		return nil
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn().Err(err).Msg("malformed trivia API response")
		return nil
	}
	if payload.ResponseCode != 0 {
		c.logger.Warn().Int("response_code", payload.ResponseCode).Msg("trivia API returned no results")
		return nil
	}

	questions := make([]question.Question, 0, len(payload.Results))
	for _, r := range payload.Results {
		questions = append(questions, normalizeResult(r, category, difficulty))
	}
	c.logger.Info().Int("count", len(questions)).Msg("fetched questions from trivia API")
	return questions
}

// normalizeResult decodes HTML entities and assembles the options as the
// shuffled union of the correct and incorrect answers. Category and
// difficulty are stamped from the request, not the provider's labels.
func normalizeResult(r openTDBResult, category, difficulty string) question.Question {
	correct := html.UnescapeString(r.CorrectAnswer)
	options := make([]string, 0, len(r.IncorrectAnswers)+1)
	options = append(options, correct)
	for _, a := range r.IncorrectAnswers {
		options = append(options, html.UnescapeString(a))
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q := question.Question{
		Text:          html.UnescapeString(r.Question),
		Options:       options,
		CorrectAnswer: correct,
		Category:      category,
		Difficulty:    question.NormalizeDifficulty(difficulty),
	}
	q.Repair()
	return q
}
