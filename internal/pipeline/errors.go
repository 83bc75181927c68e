package pipeline

import (
	"errors"
	"fmt"
)

// Failure reason tags recorded in state.json.
const (
	ReasonDownloadFailed      = "download_failed"
	ReasonTranscriptionFailed = "transcription_failed"
	ReasonSummaryFailed       = "summary_generation_failed"
)

// stageError ties an error to the state-file reason tag for its stage.
type stageError struct {
	reason string
	err    error
}

func (e *stageError) Error() string {
	return fmt.Sprintf("%s: %v", e.reason, e.err)
}

func (e *stageError) Unwrap() error {
	return e.err
}

func failStage(reason string, err error) error {
	return &stageError{reason: reason, err: err}
}

// failureReason maps any per-clip error to its reason tag. Errors from
// outside the anticipated taxonomy get an unexpected_error tag so forward
// progress holds for them too.
func failureReason(err error) string {
	var se *stageError
	if errors.As(err, &se) {
		return se.reason
	}
	return fmt.Sprintf("unexpected_error: %v", err)
}
