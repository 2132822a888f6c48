package scriv

import (
	"context"
	"fmt"
)

// ChatSystemPrompt instructs chat providers to act as a writing assistant.
const ChatSystemPrompt = `You are a writing assistant helping with a Scrivener project.
You help with creative writing, editing, analysis, and answering questions about the manuscript.
Be concise but helpful. When suggesting edits, show the revised text clearly.`

// ChatRequest is a single writing-assistant exchange. Context carries
// optional manuscript text the reply should be grounded in.
type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return Errorf(EINVALID, "chat message required")
	}
	return nil
}

// Chatter answers writing questions, optionally grounded in manuscript text.
type Chatter interface {
	// Chat returns the assistant's reply to the request.
	// Returns EINVALID if the message is empty.
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// BuildChatPrompt combines the optional manuscript context and the user
// message into a single user prompt. Providers pair it with
// ChatSystemPrompt.
func BuildChatPrompt(req ChatRequest) string {
	if req.Context == "" {
		return req.Message
	}
	return fmt.Sprintf("Context from the manuscript:\n\n%s\n\n---\n\n%s", req.Context, req.Message)
}
