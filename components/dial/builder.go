package dial

import (
	"github.com/pkg/errors"
	"github.com/sergesha/langflow/llm/clients"
)

// BuildModel constructs the chat-model handle for a validated configuration.
// Construction errors are wrapped once; there are no retries.
func BuildModel(config Config) (*clients.ChatModel, error) {
	model, err := clients.NewChatModel(clients.ChatModelConfig{
		Endpoint:    config.Host,
		Deployment:  config.ModelName,
		APIVersion:  config.APIVersion,
		APIKey:      config.APIKey,
		Temperature: config.Temperature,
		Streaming:   config.Stream,
		MaxTokens:   int64(config.MaxTokens),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize DIAL API client")
	}
	return model, nil
}
