package ai

import (
	"context"
	"encoding/json"
	"math/rand"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/question"
)

// State tracks the model sub-source lifecycle.
type State int32

const (
	StateUnloaded State = iota
	StateLoading
	StateReady
	StateFailed
	StatePermanentlyFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StatePermanentlyFailed:
		return "permanently_failed"
	default:
		return "unknown"
	}
}

const (
	maxLoadAttempts     = 3
	maxFetchAttempts    = 3
	loadRetryDelay      = 2 * time.Second
	fetchRetryDelay     = time.Second
	probeTimeout        = 15 * time.Second
	defaultFetchTimeout = 10 * time.Second
)

// alternativeModels is the ordered walk tried when the configured model is
// unavailable on the inference server.
var alternativeModels = []string{"distilgpt2", "gpt2", "facebook/opt-125m"}

// retryPlan maps a fetch attempt (1-based) to its sampling parameters: the
// temperature creeps up and the prompt is simplified after the first miss.
var retryPlan = [maxFetchAttempts]struct {
	temperature float32
	simplified  bool
}{
	{0.8, false},
	{0.9, true},
	{1.0, true},
}

// Config holds connection details for the OpenAI-compatible inference server
// that hosts the local model.
type Config struct {
	Model        string
	BaseURL      string
	APIKey       string
	FetchTimeout time.Duration
}

// Model is the generative question source. Loading runs on a background
// goroutine; readiness is an atomic state plus a channel closed when the
// load settles, so callers never block or poll. The client handle is owned
// exclusively by this struct and at most one fetch is in flight at a time.
type Model struct {
	logger  zerolog.Logger
	timeout time.Duration
	baseURL string
	apiKey  string

	state atomic.Int32

	mu       sync.Mutex
	client   *openai.Client
	model    string
	attempts int
	settled  chan struct{} // closed when state reaches Ready or PermanentlyFailed
}

func New(cfg Config, logger zerolog.Logger) *Model {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	model := cfg.Model
	if model == "" {
		model = alternativeModels[0]
	}
	m := &Model{
		logger:  logger.With().Str("component", "ai_model").Logger(),
		timeout: timeout,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   model,
		settled: make(chan struct{}),
	}
	m.client = newClient(cfg.BaseURL, cfg.APIKey)
	return m
}

func newClient(baseURL, apiKey string) *openai.Client {
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}

// Start kicks off the background load. Safe to call once per load cycle;
// subsequent calls while loading are no-ops.
func (m *Model) Start() {
	if !m.state.CompareAndSwap(int32(StateUnloaded), int32(StateLoading)) {
		return
	}
	m.mu.Lock()
	settled := m.settled
	m.mu.Unlock()
	go m.load(settled)
}

// load walks the configured model and then the alternative list until the
// server confirms one, or parks in PermanentlyFailed after the attempt cap.
func (m *Model) load(settled chan struct{}) {
	for {
		m.mu.Lock()
		m.attempts++
		attempt := m.attempts
		name := m.model
		m.mu.Unlock()

		m.logger.Info().Str("model", name).Int("attempt", attempt).Msg("verifying model availability")
		if m.probe(name) {
			m.state.Store(int32(StateReady))
			m.logger.Info().Str("model", name).Msg("model ready")
			close(settled)
			return
		}

		if attempt >= maxLoadAttempts {
			m.state.Store(int32(StatePermanentlyFailed))
			m.logger.Error().Int("attempts", attempt).Msg("model unavailable, giving up")
			close(settled)
			return
		}

		m.state.Store(int32(StateFailed))
		next := alternativeModels[min(attempt, len(alternativeModels)-1)]
		m.logger.Warn().Str("model", name).Str("next", next).Msg("model unavailable, retrying with alternative")
		m.mu.Lock()
		m.model = next
		m.mu.Unlock()

		time.Sleep(loadRetryDelay)
		m.state.Store(int32(StateLoading))
	}
}

// probe asks the inference server whether it serves the named model.
func (m *Model) probe(name string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	list, err := client.ListModels(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("inference server unreachable")
		return false
	}
	for _, mod := range list.Models {
		if mod.ID == name {
			return true
		}
	}
	return false
}

// State returns the current lifecycle state without blocking.
func (m *Model) State() State {
	return State(m.state.Load())
}

// Ready reports whether fetches may be attempted.
func (m *Model) Ready() bool {
	return m.State() == StateReady
}

// WaitSettled blocks until the load reaches Ready or PermanentlyFailed, or
// the context expires.
func (m *Model) WaitSettled(ctx context.Context) error {
	m.mu.Lock()
	settled := m.settled
	m.mu.Unlock()
	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CurrentModel returns the active model identifier.
func (m *Model) CurrentModel() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.model
}

// ChangeModel switches to a different model identifier. A request naming the
// current model is a no-op. The old client handle is released before the new
// one is constructed, and the load cycle restarts from scratch.
func (m *Model) ChangeModel(name string) bool {
	m.mu.Lock()
	if name == m.model {
		m.mu.Unlock()
		m.logger.Info().Str("model", name).Msg("model already active")
		return true
	}
	m.logger.Info().Str("from", m.model).Str("to", name).Msg("changing model")
	m.model = name
	m.attempts = 0
	m.client = nil
	m.client = newClient(m.baseURL, m.apiKey)
	m.settled = make(chan struct{})
	settled := m.settled
	m.mu.Unlock()

	m.state.Store(int32(StateLoading))
	go m.load(settled)
	return true
}

// Fetch asks the model for count questions. It never returns an error: the
// hard wall-clock timeout, parse failures and transport errors all degrade
// to an empty result. On timeout the worker goroutine is abandoned.
func (m *Model) Fetch(ctx context.Context, category, difficulty string, count int) []question.Question {
	if !m.Ready() || count <= 0 {
		return nil
	}

	resultC := make(chan []question.Question, 1)
	go func() {
		resultC <- m.generate(ctx, category, difficulty, count)
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()
	select {
	case qs := <-resultC:
		return qs
	case <-timer.C:
		m.logger.Warn().Dur("timeout", m.timeout).Msg("model fetch timed out, abandoning worker")
		return nil
	case <-ctx.Done():
		return nil
	}
}

// generate runs the bounded retry loop against the chat-completions
// endpoint, one attempt per retryPlan entry.
func (m *Model) generate(ctx context.Context, category, difficulty string, count int) []question.Question {
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		plan := retryPlan[attempt-1]
		prompt := buildPrompt(category, difficulty, count, plan.simplified)

		m.mu.Lock()
		client := m.client
		name := m.model
		m.mu.Unlock()

		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       name,
			Temperature: plan.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			m.logger.Warn().Err(err).Int("attempt", attempt).Msg("model completion failed")
		} else if len(resp.Choices) > 0 {
			if qs := parseQuestions(resp.Choices[0].Message.Content); len(qs) > 0 {
				m.logger.Info().Int("count", len(qs)).Int("attempt", attempt).Msg("model produced questions")
				return qs
			}
			m.logger.Warn().Int("attempt", attempt).Msg("no valid questions in model output")
		}

		if attempt < maxFetchAttempts {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchRetryDelay):
			}
		}
	}
	return nil
}

// jsonArrayPattern extracts the first bracketed JSON array of objects from
// free-form model output.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)

// parseQuestions pulls the JSON array out of the completion text, keeps
// objects carrying all five required fields, repairs the answer/options
// invariant and shuffles the options.
func parseQuestions(text string) []question.Question {
	raw := jsonArrayPattern.FindString(text)
	if raw == "" {
		return nil
	}
	var candidates []question.Question
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		return nil
	}

	valid := make([]question.Question, 0, len(candidates))
	for _, q := range candidates {
		if q.Text == "" || len(q.Options) == 0 || q.CorrectAnswer == "" || q.Category == "" || q.Difficulty == "" {
			continue
		}
		q.Repair()
		rand.Shuffle(len(q.Options), func(i, j int) {
			q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
		})
		valid = append(valid, q)
	}
	return valid
}
