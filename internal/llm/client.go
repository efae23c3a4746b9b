// Package llm wraps the chat-completion endpoint used for post
// generation. Groq exposes an OpenAI-compatible API, so the official
// openai-go SDK is pointed at the Groq base URL.
package llm

import "context"

// Client issues one two-message (system + user) completion exchange and
// returns the raw text response.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
