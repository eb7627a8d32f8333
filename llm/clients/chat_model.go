package clients

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/azure"
	"github.com/sergesha/langflow/llm/models"
)

// ChatModelConfig carries everything needed to talk to one deployment behind
// an Azure-compatible gateway.
type ChatModelConfig struct {
	Endpoint    string
	Deployment  string
	APIVersion  string
	APIKey      string
	Temperature float64
	Streaming   bool
	MaxTokens   int64 // 0 means unbounded
}

// ChatModel is a configured client handle for a single deployment.
type ChatModel struct {
	client openai.Client
	config ChatModelConfig
}

func NewChatModel(config ChatModelConfig) (*ChatModel, error) {
	if config.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if config.Deployment == "" {
		return nil, errors.New("deployment is required")
	}
	if config.APIVersion == "" {
		return nil, errors.New("api version is required")
	}
	client := openai.NewClient(
		azure.WithEndpoint(config.Endpoint, config.APIVersion),
		azure.WithAPIKey(config.APIKey),
	)
	return &ChatModel{client: client, config: config}, nil
}

func (m *ChatModel) Deployment() string { return m.config.Deployment }

func (m *ChatModel) Temperature() float64 { return m.config.Temperature }

func (m *ChatModel) Streaming() bool { return m.config.Streaming }

// MaxTokens returns the completion limit, 0 when unbounded.
func (m *ChatModel) MaxTokens() int64 { return m.config.MaxTokens }

// Invoke sends the message history and returns the assistant reply. When the
// handle was configured for streaming the chunks are accumulated before
// returning, so callers see the same contract either way.
func (m *ChatModel) Invoke(ctx context.Context, messages []models.ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(m.config.Deployment),
		Messages:    toParamUnion(messages),
		Temperature: openai.Float(m.config.Temperature),
	}
	if m.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(m.config.MaxTokens)
	}

	if m.config.Streaming {
		stream := m.client.Chat.Completions.NewStreaming(ctx, params)
		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			acc.AddChunk(stream.Current())
		}
		if err := stream.Err(); err != nil {
			return "", err
		}
		if len(acc.Choices) == 0 {
			return "", errors.New("empty streaming completion")
		}
		return acc.Choices[0].Message.Content, nil
	}

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func toParamUnion(messages []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case models.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}
