package media

import (
	"context"
	"fmt"
	"os"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

type implSegmenter struct {
	executor executor.Executor
	prober   Prober
	logger   logger.Logger
}

// NewSegmenter creates a Segmenter backed by ffmpeg, using the given Prober
// to size the cut plan.
func NewSegmenter(exec executor.Executor, prober Prober, log logger.Logger) Segmenter {
	return &implSegmenter{executor: exec, prober: prober, logger: log}
}

// PlanSegmentCount computes the number of segments for a source of the given
// size against a byte ceiling: ceil(size/ceiling) plus one extra segment of
// safety margin. The extra segment absorbs bitrate variance within the file,
// though a pathological file can still yield a segment marginally over the
// ceiling.
func PlanSegmentCount(size, ceiling int64) int {
	count := int((size + ceiling - 1) / ceiling)
	return count + 1
}

// Split cuts the candidate into equally-spaced segments re-encoded at the
// standard speech profile. Segments that fail to materialize are dropped with
// a warning; at least one must survive.
func (s *implSegmenter) Split(ctx context.Context, cand Candidate, ceiling int64) ([]Segment, error) {
	src := cand.Asset
	count := PlanSegmentCount(src.Size, ceiling)

	dur := s.prober.Duration(ctx, src)
	if dur.Estimated {
		s.logger.Warn(ctx, "Using estimated duration %.0fs for %s - segment plan is conservative", dur.Seconds, src.Path)
	}

	segDur := dur.Seconds / float64(count)
	s.logger.Info(ctx, "Splitting %.0fs audio into %d segments of ~%.0fs each", dur.Seconds, count, segDur)

	segments := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * segDur
		dst := fmt.Sprintf("%s_chunk%02d.mp3", pathStem(src.Path), i)

		if _, err := s.executor.Execute(ctx, "ffmpeg", ffmpegEncodeArgs(src.Path, dst, StandardProfile, start, segDur)...); err != nil {
			s.logger.Warn(ctx, "Failed to cut segment %d/%d: %v", i+1, count, err)
			os.Remove(dst)
			continue
		}

		asset, err := Stat(dst)
		if err != nil {
			s.logger.Warn(ctx, "Segment %d/%d did not materialize: %v", i+1, count, err)
			os.Remove(dst)
			continue
		}

		segments = append(segments, Segment{Asset: asset, Index: i, Start: start, Length: segDur})
		s.logger.Info(ctx, "Created segment %d/%d: %.2f MB", i+1, count, asset.SizeMB())
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments survived splitting %s", src.Path)
	}

	return segments, nil
}
