// Package app wires configuration into the runtime services a command needs.
package app

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/puravida/internal/config"
	"github.com/alexanderramin/puravida/internal/db"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/planner"
	"github.com/alexanderramin/puravida/internal/repository"
	"github.com/alexanderramin/puravida/internal/wizard"
)

// Services is the wired runtime for one process.
type Services struct {
	Config  *config.Config
	Planner planner.Planner
	Calls   repository.CallLogRepo
	Logger  *slog.Logger

	db *sql.DB
}

// NewLogger returns the process logger: slog text records on w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Wire opens the call log and builds the provider client and planner for cfg.
// A missing credential is not an error here; the first provider call reports
// it so the guest can still walk through the wizard.
func Wire(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening call log: %w", err)
	}
	calls := repository.NewSQLiteCallLogRepo(database)

	client, err := llm.NewClient(cfg.LLM, Observer(cfg.LLM, calls, logger))
	if err != nil {
		database.Close()
		return nil, err
	}

	if cfg.LLM.APIKey != "" {
		logger.Debug("credential resolved", "source", cfg.LLM.KeySource, "key", llm.MaskKey(cfg.LLM.APIKey))
	}

	return &Services{
		Config:  cfg,
		Planner: planner.NewPlanner(client, cfg.Wedding, logger),
		Calls:   calls,
		Logger:  logger,
		db:      database,
	}, nil
}

// Observer builds the provider call observer: the call log always, plus
// slog records when LogCalls is set.
func Observer(cfg llm.Config, calls repository.CallLogRepo, logger *slog.Logger) llm.Observer {
	var observers llm.MultiObserver
	if calls != nil {
		observers = append(observers, repository.NewCallLogObserver(calls, logger))
	}
	if cfg.LogCalls {
		observers = append(observers, llm.NewLogObserver(logger))
	}
	if len(observers) == 0 {
		return llm.NoopObserver{}
	}
	return observers
}

// NewSession starts a guest session against the wired planner.
func (s *Services) NewSession() *wizard.Session {
	return wizard.NewSession(s.Planner, s.Logger)
}

// Close releases the call log database.
func (s *Services) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
