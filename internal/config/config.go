package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for the desktop quiz application.
type App struct {
	Name    string `env:"APP_NAME" envDefault:"quizdesk"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	DataDir string `env:"QUIZDESK_DATA_DIR"`

	AI      AI
	OpenTDB OpenTDB
}

// AI configures the local generative-model question source.
type AI struct {
	// Enabled toggles the model sub-source entirely; when false the app runs
	// in pure-fallback mode.
	Enabled      bool          `env:"AI_ENABLED" envDefault:"false"`
	Model        string        `env:"AI_MODEL" envDefault:"distilgpt2"`
	BaseURL      string        `env:"AI_BASE_URL" envDefault:"http://localhost:11434/v1"`
	APIKey       string        `env:"AI_API_KEY"`
	FetchTimeout time.Duration `env:"AI_FETCH_TIMEOUT" envDefault:"10s"`
}

// OpenTDB configures the public trivia API source.
type OpenTDB struct {
	BaseURL string `env:"OPENTDB_BASE_URL" envDefault:"https://opentdb.com"`
}

// Load parses environment variables into App config. The data directory
// defaults to ~/.quizdesk when not overridden.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".quizdesk")
	}
	return cfg, nil
}
