package summarizer

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openAIChat struct {
	client *openai.Client
}

// NewOpenAIChat creates a ChatService backed by the OpenAI chat completion
// endpoint.
func NewOpenAIChat(client *openai.Client) ChatService {
	return &openAIChat{client: client}
}

func (c *openAIChat) Complete(ctx context.Context, model, system, user string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
