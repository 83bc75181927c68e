package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/opencouncil/clipscribe/internal/store"
)

const maxMinutesContextChars = 20000

// Summarize produces the structured markdown summary for one meeting,
// loading a previous run's result when the artifact is already complete. The
// summary is saved before it is returned.
func (s *implSummarizer) Summarize(ctx context.Context, in SummaryInput, summaryPath string, force bool) (string, error) {
	if !force {
		if text, ok := s.store.ReadArtifact(summaryPath, store.MinSummaryBytes); ok {
			s.logger.Info(ctx, "Summary already exists - loading from file (%d chars)", len(text))
			return strings.TrimSpace(text), nil
		}
	}

	s.logger.Info(ctx, "Generating summary with %s (%d transcript words)",
		s.summaryModel, len(strings.Fields(in.Transcript)))

	summary, err := s.chat.Complete(ctx, s.summaryModel, summarySystemPrompt,
		summaryPrompt+"\n\n"+buildContext(in), 0.3, 8000)
	if err != nil {
		return "", fmt.Errorf("summary generation: %w", err)
	}

	summary = strings.TrimSpace(summary)
	if len(summary) < store.MinSummaryBytes {
		return "", fmt.Errorf("summary generation produced short/empty result (%d chars)", len(summary))
	}

	if err := s.store.WriteArtifact(summaryPath, []byte(summary)); err != nil {
		return "", fmt.Errorf("save summary: %w", err)
	}
	s.logger.Info(ctx, "Generated summary: %d chars", len(summary))

	return summary, nil
}

// buildContext assembles the model input from all available sources. Minutes
// can run very long and are truncated; the transcript always goes last and
// complete.
func buildContext(in SummaryInput) string {
	var parts []string

	if in.AgendaText != "" {
		parts = append(parts, "MEETING AGENDA:\n"+in.AgendaText)
	}
	if in.MinutesText != "" {
		parts = append(parts, "OFFICIAL MEETING MINUTES:\n"+truncateText(in.MinutesText, maxMinutesContextChars))
	}
	parts = append(parts, "MEETING TRANSCRIPT:\n"+in.Transcript)

	return strings.Join(parts, "\n\n---\n\n")
}

// truncateText caps s at max bytes without splitting a multibyte rune, so
// the model never receives invalid UTF-8 at the cut point.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
