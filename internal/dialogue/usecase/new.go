package usecase

import (
	"time"

	"tour-srv/internal/dialogue"
	"tour-srv/internal/dialogue/repository"
	"tour-srv/internal/tour"
	"tour-srv/pkg/log"
	"tour-srv/pkg/ollama"
)

// Config holds per-call deadline budgets for the LLM collaborator. Intent
// analysis gets a tighter budget than open-ended chat.
type Config struct {
	IntentTimeout time.Duration
	ChatTimeout   time.Duration
}

type implUseCase struct {
	repo   repository.SessionRepository
	tourUC tour.UseCase
	llm    ollama.IOllama
	l      log.Logger
	cfg    Config
}

// New - Factory function
func New(
	repo repository.SessionRepository,
	tourUC tour.UseCase,
	llm ollama.IOllama,
	l log.Logger,
	cfg Config,
) dialogue.UseCase {
	if cfg.IntentTimeout <= 0 {
		cfg.IntentTimeout = 60 * time.Second
	}
	if cfg.ChatTimeout <= 0 {
		cfg.ChatTimeout = 120 * time.Second
	}
	return &implUseCase{
		repo:   repo,
		tourUC: tourUC,
		llm:    llm,
		l:      l,
		cfg:    cfg,
	}
}
