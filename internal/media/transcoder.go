package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

type implTranscoder struct {
	executor executor.Executor
	logger   logger.Logger
}

// NewTranscoder creates a Transcoder backed by ffmpeg.
func NewTranscoder(exec executor.Executor, log logger.Logger) Transcoder {
	return &implTranscoder{executor: exec, logger: log}
}

// FitToLimit walks the compression ladder: original, then the standard speech
// profile, then the aggressive one. It stops at the first candidate under the
// ceiling. Both re-encodes always start from the original source, not from
// the previous rung.
func (t *implTranscoder) FitToLimit(ctx context.Context, src Asset, ceiling int64) (Candidate, []string, error) {
	if src.Size <= ceiling {
		return Candidate{Asset: src, Stage: StageOriginal}, nil, nil
	}

	t.logger.Info(ctx, "Audio is %.2f MB (limit %.2f MB) - compressing", src.SizeMB(), float64(ceiling)/bytesPerMB)

	var temps []string

	standard, err := t.encode(ctx, src, StageStandard, StandardProfile, "_compressed.mp3")
	if err != nil {
		return Candidate{}, nil, err
	}
	temps = append(temps, standard.Asset.Path)
	t.logger.Info(ctx, "Compressed %.2f MB -> %.2f MB", src.SizeMB(), standard.Asset.SizeMB())

	if standard.Asset.Size <= ceiling {
		return standard, temps, nil
	}

	t.logger.Info(ctx, "Still %.2f MB, trying aggressive compression", standard.Asset.SizeMB())

	aggressive, err := t.encode(ctx, src, StageAggressive, AggressiveProfile, "_compressed_aggr.mp3")
	if err != nil {
		removeAll(temps)
		return Candidate{}, nil, err
	}
	temps = append(temps, aggressive.Asset.Path)
	t.logger.Info(ctx, "Aggressively compressed to %.2f MB", aggressive.Asset.SizeMB())

	// May still be over the ceiling; the caller decides whether to segment.
	return aggressive, temps, nil
}

func (t *implTranscoder) encode(ctx context.Context, src Asset, stage Stage, profile Profile, suffix string) (Candidate, error) {
	dst := pathStem(src.Path) + suffix

	if _, err := t.executor.Execute(ctx, "ffmpeg", ffmpegEncodeArgs(src.Path, dst, profile, 0, 0)...); err != nil {
		os.Remove(dst)
		return Candidate{}, &TranscodeError{Stage: stage, Err: err}
	}

	out, err := Stat(dst)
	if err != nil {
		os.Remove(dst)
		return Candidate{}, &TranscodeError{Stage: stage, Err: err}
	}

	return Candidate{Asset: out, Stage: stage, Profile: profile, Temp: true}, nil
}

// pathStem returns the path without its extension.
func pathStem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
