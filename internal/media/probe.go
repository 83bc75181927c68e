package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/pkg/executor"
)

type implProber struct {
	executor executor.Executor
	logger   logger.Logger
}

// NewProber creates a Prober backed by ffprobe.
func NewProber(exec executor.Executor, log logger.Logger) Prober {
	return &implProber{executor: exec, logger: log}
}

// Duration probes the asset with ffprobe. When probing fails the duration is
// estimated from file size so segmentation can still proceed.
func (p *implProber) Duration(ctx context.Context, asset Asset) Duration {
	out, err := p.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		asset.Path,
	)
	if err != nil {
		p.logger.Warn(ctx, "Could not probe duration of %s: %v - estimating from size", asset.Path, err)
		return EstimateDuration(asset.Size)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || seconds <= 0 {
		p.logger.Warn(ctx, "Unexpected ffprobe output %q for %s - estimating from size", strings.TrimSpace(out), asset.Path)
		return EstimateDuration(asset.Size)
	}

	return Duration{Seconds: seconds}
}

// ffmpegEncodeArgs builds the argument list for re-encoding src into dst at
// the given speech profile, optionally restricted to a time window.
func ffmpegEncodeArgs(src, dst string, profile Profile, start, length float64) []string {
	args := []string{"-y", "-i", src}
	if length > 0 {
		args = append(args,
			"-ss", fmt.Sprintf("%.3f", start),
			"-t", fmt.Sprintf("%.3f", length),
		)
	}
	args = append(args,
		"-vn",
		"-ar", strconv.Itoa(profile.SampleRate),
		"-ac", strconv.Itoa(profile.Channels),
		"-b:a", profile.Bitrate,
		dst,
	)
	return args
}
