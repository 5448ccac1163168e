package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Generate generates content based on the prompt, non-streaming.
func (o *ollamaImpl) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s%s", o.baseURL, GeneratePath)

	req := Request{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	}

	body, statusCode, err := o.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Ollama response: %w", err)
	}

	return resp.Response, nil
}
