package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"hotmart-post-generator/config"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Groq implements Client against the Groq chat-completions endpoint.
// The zero API key is allowed at construction time so the server can
// start without one; Complete then requires a key, either the
// configured one or a per-request key bound via WithAPIKey.
type Groq struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
}

func NewGroq(cfg config.Config) *Groq {
	baseURL := cfg.GroqBaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	maxTokens := cfg.GroqMaxTokens
	if maxTokens <= 0 {
		maxTokens = 1500
	}
	return &Groq{
		apiKey:      cfg.GroqAPIKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       cfg.GroqModel,
		temperature: cfg.GroqTemperature,
		maxTokens:   maxTokens,
	}
}

// WithAPIKey returns a copy of the client bound to a caller-supplied
// key. The form front-end lets users paste their own key per request;
// an empty key keeps the configured one.
func (g *Groq) WithAPIKey(apiKey string) *Groq {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return g
	}
	c := *g
	c.apiKey = apiKey
	return &c
}

// HasAPIKey reports whether a completion call could authenticate.
func (g *Groq) HasAPIKey() bool {
	return strings.TrimSpace(g.apiKey) != ""
}

func (g *Groq) Complete(ctx context.Context, system, user string) (string, error) {
	if !g.HasAPIKey() {
		return "", errors.New("groq: api key is empty")
	}

	client := openai.NewClient(
		option.WithAPIKey(g.apiKey),
		option.WithBaseURL(g.baseURL),
	)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(g.temperature),
		MaxTokens:   openai.Int(int64(g.maxTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq: empty choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

var _ Client = (*Groq)(nil)
