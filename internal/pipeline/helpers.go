package pipeline

import (
	"regexp"

	"github.com/opencouncil/clipscribe/internal/summarizer"
)

// Derived transcode/segment files carry a _chunkNN suffix and must not be
// mistaken for the downloaded source audio.
var chunkSuffixRe = regexp.MustCompile(`_chunk\d+$`)

func summaryInput(transcript, agendaText, minutesText string) summarizer.SummaryInput {
	return summarizer.SummaryInput{
		Transcript:  transcript,
		AgendaText:  agendaText,
		MinutesText: minutesText,
	}
}
