package granicus

import (
	"context"
	"fmt"
	"os"
)

// DownloadAudio pulls the clip's audio with yt-dlp, extracting to mp3 at a
// low bitrate and downmixing to 22.05 kHz mono. Speech survives this fine and
// the smaller file often avoids compression later in the pipeline.
func (c *implClient) DownloadAudio(ctx context.Context, clipID int, destPath string) error {
	url := c.ClipURL(clipID)
	c.logger.Info(ctx, "Downloading clip %d from %s", clipID, url)

	_, err := c.executor.Execute(ctx, "yt-dlp",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "48k",
		"--postprocessor-args", "ffmpeg:-ar 22050 -ac 1",
		"-o", destPath,
		url,
	)
	if err != nil {
		return fmt.Errorf("download clip %d: %w", clipID, err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return fmt.Errorf("download clip %d produced no file: %w", clipID, err)
	}
	if info.Size() == 0 {
		os.Remove(destPath)
		return fmt.Errorf("download clip %d produced empty file", clipID)
	}

	c.logger.Info(ctx, "Downloaded %.2f MB to %s", float64(info.Size())/(1024*1024), destPath)
	return nil
}
