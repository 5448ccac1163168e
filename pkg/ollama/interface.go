package ollama

import (
	"context"

	pkghttp "tour-srv/pkg/http"
)

// IOllama defines the interface for Ollama text generation.
// Implementations are safe for concurrent use.
type IOllama interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewOllama creates a new Ollama client. Model defaults to DefaultModel if
// empty, BaseURL to DefaultBaseURL. Calls are one-shot: failures degrade at
// the caller, they are not retried here.
func NewOllama(cfg OllamaConfig) IOllama {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &ollamaImpl{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}
}
