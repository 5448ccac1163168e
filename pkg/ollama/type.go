package ollama

import (
	"time"

	pkghttp "tour-srv/pkg/http"
)

// OllamaConfig holds the configuration for the Ollama client.
type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ollamaImpl implements IOllama against the Ollama generate API.
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient pkghttp.IClient
}

// Request defines the request body for the generate API.
type Request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// Response defines the response body from the generate API.
type Response struct {
	Model     string `json:"model"`
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count,omitempty"`
}
