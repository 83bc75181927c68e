package summarizer

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

const (
	maxTopicSampleChars = 15000
	maxTopics           = 8
)

var codeFenceRe = regexp.MustCompile("```\\w*\n?")

// ExtractTopics asks the topic model for 3-8 high-level topics. Failures are
// degraded-but-continue: they log a warning and yield an empty list, never an
// error.
func (s *implSummarizer) ExtractTopics(ctx context.Context, transcript string) []string {
	s.logger.Info(ctx, "Extracting topics with %s", s.topicModel)

	sample := truncateText(transcript, maxTopicSampleChars)

	result, err := s.chat.Complete(ctx, s.topicModel, topicSystemPrompt, topicPrompt+sample, 0.2, 200)
	if err != nil {
		s.logger.Warn(ctx, "Topic extraction error: %v", err)
		return nil
	}

	topics, err := ParseTopics(result)
	if err != nil {
		s.logger.Warn(ctx, "Failed to parse topics JSON: %v", err)
		return nil
	}

	s.logger.Info(ctx, "Extracted topics: %v", topics)
	return topics
}

// ParseTopics decodes the model's JSON array reply, tolerating markdown code
// fences, and caps the list at eight topics.
func ParseTopics(raw string) ([]string, error) {
	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(strings.TrimSpace(raw), ""))

	var topics []string
	if err := json.Unmarshal([]byte(cleaned), &topics); err != nil {
		return nil, err
	}

	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics, nil
}
