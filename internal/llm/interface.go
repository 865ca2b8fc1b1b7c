package llm

import "context"

// Client talks to an OpenAI-compatible chat completion endpoint served by a
// local Ollama instance.
type Client interface {
	// Probe checks that the endpoint's host answers on /api/tags.
	Probe(ctx context.Context) error
	// Complete issues exactly one completion request. It never retries.
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// ListModels returns the model names the host reports on /api/tags.
	ListModels(ctx context.Context) ([]string, error)
	APIURL() string
}
