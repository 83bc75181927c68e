package media

import "context"

// Prober measures the duration of an audio file, falling back to a size-based
// estimate when ffprobe fails.
type Prober interface {
	Duration(ctx context.Context, asset Asset) Duration
}

// Transcoder shrinks an asset toward a byte ceiling with a fixed two-step
// quality ladder. It returns the least-aggressively-compressed candidate that
// fits, or the most aggressive one available when none does, together with
// the temp files it created. The caller must remove those files once it is
// done with the candidate, success or failure.
type Transcoder interface {
	FitToLimit(ctx context.Context, src Asset, ceiling int64) (Candidate, []string, error)
}

// Segmenter cuts an over-limit candidate into contiguous time-bounded
// segments, each targeted under the given ceiling, in ascending start order.
type Segmenter interface {
	Split(ctx context.Context, cand Candidate, ceiling int64) ([]Segment, error)
}
