package transcriber

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService creates a SpeechService backed by the OpenAI audio
// transcription endpoint.
func NewOpenAIService(client *openai.Client, model string) SpeechService {
	return &openAIService{client: client, model: model}
}

func (s *openAIService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
