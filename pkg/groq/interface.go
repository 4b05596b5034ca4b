package groq

import "context"

// IGroq defines the interface for an OpenAI-compatible chat completion client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// ChatCompletion sends a chat completion request
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Groq client with the given configuration
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroqImpl(cfg), nil
}
