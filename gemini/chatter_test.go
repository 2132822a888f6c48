package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrivtools/scriv"
	"github.com/scrivtools/scriv/gemini"
)

func TestChatter_Chat_ReturnsErrorWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	chatter := gemini.NewChatter(nil, "") // nil client ok, validation runs first

	_, err := chatter.Chat(context.Background(), scriv.ChatRequest{})

	require.Error(t, err)
	assert.Equal(t, scriv.EINVALID, scriv.ErrorCode(err))
	assert.Contains(t, scriv.ErrorMessage(err), "chat message required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "writing assistant")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
}
