package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdesk/quizdesk/internal/question"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenTDBClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenTDBClient(server.URL, server.Client(), zerolog.New(io.Discard))
}

func TestFetchDecodesAndUnescapes(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"response_code": 0,
			"results": []map[string]any{{
				"category":          "Science &amp; Nature",
				"type":              "multiple",
				"difficulty":        "easy",
				"question":          "What is &quot;H2O&quot; commonly known as?",
				"correct_answer":    "Water",
				"incorrect_answers": []string{"Oxygen", "Salt &amp; pepper", "Steam"},
			}},
		})
	})

	got := client.Fetch(context.Background(), "Science", "easy", 1)
	require.Len(t, got, 1)

	q := got[0]
	assert.NotContains(t, q.Text, "&quot;")
	assert.Equal(t, "Water", q.CorrectAnswer)
	assert.Contains(t, q.Options, "Water")
	assert.Contains(t, q.Options, "Salt & pepper")
	assert.Len(t, q.Options, question.OptionCount)
	assert.Equal(t, "Science", q.Category, "category stamped from the request")
	assert.Equal(t, "easy", q.Difficulty)

	assert.Equal(t, []string{"1"}, gotQuery["amount"])
	assert.Equal(t, []string{"multiple"}, gotQuery["type"])
	assert.Equal(t, []string{"17"}, gotQuery["category"], "Science maps to category 17")
	assert.Equal(t, []string{"easy"}, gotQuery["difficulty"])
}

func TestFetchOmitsUnknownCategoryParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("category"))
		json.NewEncoder(w).Encode(map[string]any{"response_code": 0, "results": []any{}})
	})
	client.Fetch(context.Background(), "Custom Stuff", "easy", 1)
}

func TestFetchReturnsNilOnNonZeroResponseCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"response_code": 1, "results": []any{}})
	})
	assert.Nil(t, client.Fetch(context.Background(), "Science", "easy", 5))
}

func TestFetchReturnsNilOnServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Nil(t, client.Fetch(context.Background(), "Science", "easy", 5))
}

func TestFetchReturnsNilOnMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json at all")
	})
	assert.Nil(t, client.Fetch(context.Background(), "Science", "easy", 5))
}

func TestFetchReturnsNilWhenUnreachable(t *testing.T) {
	client := NewOpenTDBClient("http://127.0.0.1:1", nil, zerolog.New(io.Discard))
	assert.Nil(t, client.Fetch(context.Background(), "Science", "easy", 5))
}
