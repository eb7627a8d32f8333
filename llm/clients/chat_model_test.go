package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChatModel(t *testing.T) {
	model, err := NewChatModel(ChatModelConfig{
		Endpoint:    "https://dial.example.com",
		Deployment:  "gpt-4o",
		APIVersion:  "2024-02-01",
		APIKey:      "secret",
		Temperature: 0.3,
		Streaming:   true,
		MaxTokens:   256,
	})
	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o", model.Deployment())
	assert.Equal(t, 0.3, model.Temperature())
	assert.True(t, model.Streaming())
	assert.Equal(t, int64(256), model.MaxTokens())
}

func TestNewChatModelMissingFields(t *testing.T) {
	_, err := NewChatModel(ChatModelConfig{Deployment: "gpt-4o", APIVersion: "2024-02-01"})
	assert.Error(t, err)

	_, err = NewChatModel(ChatModelConfig{Endpoint: "https://dial.example.com", APIVersion: "2024-02-01"})
	assert.Error(t, err)

	_, err = NewChatModel(ChatModelConfig{Endpoint: "https://dial.example.com", Deployment: "gpt-4o"})
	assert.Error(t, err)
}

func TestMaxTokensZeroMeansUnbounded(t *testing.T) {
	model, err := NewChatModel(ChatModelConfig{
		Endpoint:   "https://dial.example.com",
		Deployment: "gpt-4o",
		APIVersion: "2024-02-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), model.MaxTokens())
}
