package llm

import (
	"context"
	"errors"

	"medimind-portal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the text-generation capability the chat pipeline depends on.
// Complete takes the assembled system instructions and the verbatim patient
// message and returns the assistant's reply.
type Client interface {
	Complete(ctx context.Context, systemInstructions, userMessage string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, systemInstructions, userMessage string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstructions},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
