// Package cli wires the application together behind its cobra commands.
package cli

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quizdesk/quizdesk/internal/accounts"
	"github.com/quizdesk/quizdesk/internal/config"
	"github.com/quizdesk/quizdesk/internal/logging"
	"github.com/quizdesk/quizdesk/internal/manager"
	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/question/ai"
	"github.com/quizdesk/quizdesk/internal/question/external"
	"github.com/quizdesk/quizdesk/internal/stats"
)

// App holds the assembled components shared by all commands.
type App struct {
	Config   *config.App
	Logger   zerolog.Logger
	Model    *ai.Model // nil when the generative source is disabled
	Manager  *manager.Manager
	Stats    *stats.Tracker
	Accounts *accounts.Store
}

var app *App

// buildApp assembles the component graph: config, logging, the optional
// generative model, the trivia API client, the fallback bank and filter, the
// sourcing pipeline, and the stores on top.
func buildApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Name, cfg.Env)

	var model *ai.Model
	var modelSource question.ModelSource
	if cfg.AI.Enabled {
		model = ai.New(ai.Config{
			Model:        cfg.AI.Model,
			BaseURL:      cfg.AI.BaseURL,
			APIKey:       cfg.AI.APIKey,
			FetchTimeout: cfg.AI.FetchTimeout,
		}, logger)
		model.Start()
		modelSource = model
	}

	api := external.NewOpenTDBClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: 5 * time.Second}, logger)
	bank := question.NewFallbackBank(logger)
	filter := question.NewFilter(logger)
	sourcer := question.NewSourcer(modelSource, api, bank, filter, logger)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Model:    model,
		Manager:  manager.New(cfg.DataDir, sourcer, logger),
		Stats:    stats.NewTracker(cfg.DataDir, logger),
		Accounts: accounts.NewStore(cfg.DataDir, logger),
	}, nil
}

var rootCmd = &cobra.Command{
	Use:           "quizdesk",
	Short:         "A trivia quiz for your terminal",
	Long:          "Quizdesk runs multiple-choice trivia rounds, sourcing questions from a local generative model, a public trivia API and built-in question banks.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = buildApp()
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
