package transcriber

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SpeechService is the upstream transcription API: one synchronous call that
// accepts an audio file under the hard size ceiling and returns its text.
type SpeechService interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Transcriber produces a transcript for an audio file, compressing and
// segmenting as needed to stay under the service's upload ceiling. The
// transcript is durably saved to transcriptPath before it is returned, so a
// crash in a later stage never loses a paid-for transcription.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, transcriptPath string, force bool) (string, error)
}

// ErrTranscriptTooShort flags an implausibly small result: either the source
// had no intelligible speech or the service returned an error-shaped success.
var ErrTranscriptTooShort = errors.New("transcript too short or empty")

// TimeoutError reports a transcription call that exceeded its deadline. The
// clip stays eligible for transcription on the next run.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("transcription timed out after %.1fs", e.Elapsed.Seconds())
}
