package ollama

import "time"

const (
	// DefaultBaseURL is the default Ollama server address.
	DefaultBaseURL = "http://localhost:11434"
	// GeneratePath is the non-streaming generation endpoint.
	GeneratePath = "/api/generate"
	// DefaultModel is the model used when none is configured.
	DefaultModel = "llama3.1"
	// DefaultTimeout bounds a single generation call. Callers with a
	// tighter budget pass a deadline context instead.
	DefaultTimeout = 120 * time.Second
)
