// Package llm abstracts the text-generation providers the platform talks
// to: Gemini (the original backend), OpenAI, and Anthropic. Consumers see
// a single Provider interface plus a retry decorator and a mock.
package llm

import "context"

// Provider is a single-turn text-generation backend.
type Provider interface {
	// Generate sends one prompt and returns the model's text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message. Callers that need conversational
	// context fold it into the prompt; the platform's calls are all
	// single-turn.
	Prompt string

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means provider default.
	Temperature float64
}

// Response is the model's reply.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
