package docs

import "context"

// Extract is the outcome of fetching one supporting document. File names are
// relative to the clip directory; Text is empty when nothing usable was
// extracted. A zero Extract means the document simply was not available,
// which is not an error for the pipeline.
type Extract struct {
	PDFFile  string
	HTMLFile string
	TxtFile  string
	Text     string
}

// Fetcher downloads agenda and minutes documents and extracts their text.
// All failures are degraded-but-continue: they are logged and reported as an
// absent document, never as a pipeline error. force skips the on-disk text
// cache and re-downloads the document.
type Fetcher interface {
	FetchAgenda(ctx context.Context, url, clipDir, baseName string, force bool) Extract
	FetchMinutes(ctx context.Context, url, clipDir, baseName string, force bool) Extract
}
