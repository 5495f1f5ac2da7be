// File: internal/services/ai/openai_provider.go
package ai

import (
    "context"

    openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to any OpenAI-compatible completion endpoint (Groq in
// the default configuration).
type OpenAIProvider struct {
    config *Config
    client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
    if err := config.Validate(); err != nil {
        return nil, NewConfigError(err.Error())
    }

    clientConfig := openai.DefaultConfig(config.APIKey)
    if config.BaseURL != "" {
        clientConfig.BaseURL = config.BaseURL
    }

    return &OpenAIProvider{
        config: config,
        client: openai.NewClientWithConfig(clientConfig),
    }, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
    ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
    defer cancel()

    resp, err := p.client.CreateChatCompletion(
        ctx,
        openai.ChatCompletionRequest{
            Model: p.config.Model,
            Messages: []openai.ChatCompletionMessage{
                {
                    Role:    openai.ChatMessageRoleUser,
                    Content: prompt,
                },
            },
            Temperature: temperature,
            MaxTokens:   maxTokens,
        },
    )

    if err != nil {
        return "", NewProviderError("completion", "failed to create completion", err)
    }

    if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
        return "", &AIError{
            Type:      ErrTypeProvider,
            Operation: "completion",
            Message:   "empty completion response",
        }
    }

    return resp.Choices[0].Message.Content, nil
}
