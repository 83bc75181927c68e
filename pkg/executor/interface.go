package executor

import "context"

// Executor runs the external tools the pipeline depends on (ffmpeg, ffprobe,
// yt-dlp). Invocations honor context cancellation and deadlines.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	Available(name string) bool
}
