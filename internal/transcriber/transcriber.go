package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/opencouncil/clipscribe/internal/media"
	"github.com/opencouncil/clipscribe/internal/store"
)

// Transcribe runs the size-aware transcription flow:
//
//	cached transcript -> done
//	under soft ceiling -> direct call
//	over soft ceiling  -> compress, then direct call
//	over hard ceiling  -> segment, per-segment calls, join
//
// Temporary compressed and segment files are removed on every path, success
// or failure, so a resumed run starts from a clean clip directory.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, transcriptPath string, force bool) (string, error) {
	if !force {
		if text, ok := t.store.ReadArtifact(transcriptPath, store.MinTranscriptBytes); ok {
			t.logger.Info(ctx, "Transcript already exists - loading from file (%d chars, ~%d words)",
				len(text), len(strings.Fields(text)))
			return strings.TrimSpace(text), nil
		}
	}

	src, err := media.Stat(audioPath)
	if err != nil {
		return "", err
	}

	cand, temps, err := t.transcoder.FitToLimit(ctx, src, t.opts.SoftCeiling)
	if err != nil {
		return "", err
	}
	defer func() {
		for _, p := range temps {
			if rmErr := os.Remove(p); rmErr == nil {
				t.logger.Debug(ctx, "Removed temporary file %s", p)
			}
		}
	}()

	var text string
	if cand.Asset.Size > t.opts.HardCeiling {
		text, err = t.transcribeSegmented(ctx, cand)
	} else {
		text, err = t.transcribeDirect(ctx, cand)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if len(text) < store.MinTranscriptBytes {
		return "", ErrTranscriptTooShort
	}

	// Persist before returning: this write is the idempotence marker a
	// future run short-circuits on.
	if err := t.store.WriteArtifact(transcriptPath, []byte(text)); err != nil {
		return "", fmt.Errorf("save transcript: %w", err)
	}
	t.logger.Info(ctx, "Saved transcript (%d chars, ~%d words)", len(text), len(strings.Fields(text)))

	return text, nil
}

func (t *implTranscriber) transcribeDirect(ctx context.Context, cand media.Candidate) (string, error) {
	t.logger.Info(ctx, "Uploading %.2f MB (%s) for transcription, timeout %s",
		cand.Asset.SizeMB(), cand.Stage, t.opts.CallTimeout)

	text, err := t.call(ctx, cand.Asset.Path)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (t *implTranscriber) transcribeSegmented(ctx context.Context, cand media.Candidate) (string, error) {
	t.logger.Info(ctx, "File is %.2f MB after compression - splitting into segments", cand.Asset.SizeMB())

	segments, err := t.segmenter.Split(ctx, cand, t.opts.SoftCeiling)
	if err != nil {
		return "", err
	}

	// Segments are transcribed one at a time, in cut order; the join below
	// relies on that ordering.
	var parts []string
	for i, seg := range segments {
		t.logger.Info(ctx, "Transcribing segment %d/%d...", i+1, len(segments))

		segText, err := t.call(ctx, seg.Asset.Path)
		os.Remove(seg.Asset.Path)
		if err != nil {
			// One bad segment does not discard the rest: a nearly
			// complete transcript beats none at all.
			t.logger.Warn(ctx, "Error transcribing segment %d/%d: %v", i+1, len(segments), err)
			continue
		}

		if segText = strings.TrimSpace(segText); segText != "" {
			parts = append(parts, segText)
			t.logger.Info(ctx, "Segment %d/%d transcribed: %d chars", i+1, len(segments), len(segText))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("all %d segments failed to transcribe", len(segments))
	}

	joined := strings.Join(parts, " ")
	t.logger.Info(ctx, "Combined %d segments: %d chars", len(parts), len(joined))
	return joined, nil
}

// call performs one bounded service call.
func (t *implTranscriber) call(ctx context.Context, path string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.opts.CallTimeout)
	defer cancel()

	start := time.Now()
	text, err := t.service.Transcribe(callCtx, path)
	elapsed := time.Since(start)

	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return "", &TimeoutError{Elapsed: elapsed}
		}
		return "", fmt.Errorf("transcription call failed after %.1fs: %w", elapsed.Seconds(), err)
	}

	t.logger.Info(ctx, "Upload + transcription completed in %.1fs", elapsed.Seconds())
	return text, nil
}
