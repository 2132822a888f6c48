// Package openai implements the chat provider against any
// OpenAI-compatible chat completions endpoint: OpenAI itself, OpenRouter,
// or a local Ollama.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/scrivtools/scriv"
)

// Ensure Chatter implements scriv.Chatter at compile time.
var _ scriv.Chatter = (*Chatter)(nil)

// Chatter implements scriv.Chatter using the chat completions API.
type Chatter struct {
	client openai.Client
	model  string
}

// NewChatter creates a Chatter for the given model. An empty baseURL uses
// the public OpenAI endpoint; OpenRouter and Ollama need theirs set.
func NewChatter(apiKey, model, baseURL string) *Chatter {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Chatter{client: openai.NewClient(opts...), model: model}
}

// Chat answers a writing question, grounded in the request's manuscript
// context when present.
func (c *Chatter) Chat(ctx context.Context, req scriv.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(scriv.ChatSystemPrompt),
			openai.UserMessage(scriv.BuildChatPrompt(req)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", scriv.Errorf(scriv.EINTERNAL, "chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
