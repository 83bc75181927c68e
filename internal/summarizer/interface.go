package summarizer

import "context"

// ChatService is the upstream chat-completion API reduced to the one call
// shape this package needs.
type ChatService interface {
	Complete(ctx context.Context, model, system, user string, temperature float32, maxTokens int) (string, error)
}

// SummaryInput carries every text source available for one meeting. Agenda
// and minutes are optional context; the transcript is required.
type SummaryInput struct {
	Transcript  string
	AgendaText  string
	MinutesText string
}

// Summarizer turns a meeting transcript into a structured markdown summary,
// a topic list, and a rendered HTML page.
type Summarizer interface {
	Summarize(ctx context.Context, in SummaryInput, summaryPath string, force bool) (string, error)
	ExtractTopics(ctx context.Context, transcript string) []string
	RenderHTML(title, summary, htmlPath string) error
}
