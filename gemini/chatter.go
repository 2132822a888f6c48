// Package gemini implements the chat provider using Google Gemini.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/scrivtools/scriv"
)

// defaultModel is used when no model is configured.
const defaultModel = "gemini-2.5-flash"

// Ensure Chatter implements scriv.Chatter at compile time.
var _ scriv.Chatter = (*Chatter)(nil)

// Chatter implements scriv.Chatter using Google Gemini.
type Chatter struct {
	client *genai.Client
	model  string
}

// NewChatter creates a Chatter. An empty model falls back to the default.
func NewChatter(client *genai.Client, model string) *Chatter {
	if model == "" {
		model = defaultModel
	}
	return &Chatter{client: client, model: model}
}

// Chat answers a writing question, grounded in the request's manuscript
// context when present.
func (c *Chatter) Chat(ctx context.Context, req scriv.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: scriv.BuildChatPrompt(req)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", scriv.Errorf(scriv.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The temperature leans creative to suit drafting and editing work.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: scriv.ChatSystemPrompt}},
		},
		Temperature: &temp,
	}
}
