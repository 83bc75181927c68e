package granicus

import "context"

// Client talks to a Granicus media portal: canonical URLs for one clip,
// its title, and the catalog of published clips.
type Client interface {
	ClipURL(clipID int) string
	AgendaURL(clipID int) string
	MinutesURL(clipID int) string

	// Title resolves the published clip title, or an error when the clip
	// is unavailable.
	Title(ctx context.Context, clipID int) (string, error)

	// ScrapeAvailableClips walks the view publisher page and collects
	// every clip ID it references.
	ScrapeAvailableClips(ctx context.Context) ([]int, error)

	// DownloadAudio fetches the clip's audio track to destPath. Failure is
	// definitive for this run; the caller should not retry.
	DownloadAudio(ctx context.Context, clipID int, destPath string) error
}
