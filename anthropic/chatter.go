// Package anthropic implements the chat provider using Claude models.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/scrivtools/scriv"
)

// maxTokens caps the length of a single reply.
const maxTokens = 4096

// Ensure Chatter implements scriv.Chatter at compile time.
var _ scriv.Chatter = (*Chatter)(nil)

// Chatter implements scriv.Chatter using the Anthropic Messages API.
type Chatter struct {
	client anthropic.Client
	model  string
}

// NewChatter creates a Chatter for the given model. An empty baseURL uses
// the public Anthropic endpoint.
func NewChatter(apiKey, model, baseURL string) *Chatter {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Chatter{client: anthropic.NewClient(opts...), model: model}
}

// Chat answers a writing question, grounded in the request's manuscript
// context when present.
func (c *Chatter) Chat(ctx context.Context, req scriv.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: scriv.ChatSystemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(scriv.BuildChatPrompt(req))),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", scriv.Errorf(scriv.EINTERNAL, "anthropic returned no text content")
	}
	return sb.String(), nil
}
