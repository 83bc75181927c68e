package pipeline

import "context"

// Pipeline drives the full download -> transcribe -> document -> summarize
// flow for meeting clips. Every stage is cache-gated, so any operation may be
// re-invoked after a crash and will only redo unfinished work.
type Pipeline interface {
	// ProcessClip runs one clip end to end. The returned error describes
	// the failing stage; the failure has already been recorded in durable
	// state by the time it is returned.
	ProcessClip(ctx context.Context, clipID int, skipIfExists bool) error

	// ProcessRange processes an inclusive ID range in ascending order.
	ProcessRange(ctx context.Context, startID, endID int, stopOnFailure bool) Results

	// Auto continues from the last processed clip, preferring the scraped
	// catalog when one exists.
	Auto(ctx context.Context, maxClips int) Results

	// Scrape refreshes the available-clips catalog and processes new
	// entries.
	Scrape(ctx context.Context, maxClips int) (Results, error)

	// RefreshSummary re-fetches minutes and regenerates the summary for an
	// already-processed clip, leaving audio and transcript untouched.
	RefreshSummary(ctx context.Context, clipID int) error

	// RefreshRange refreshes summaries for every processed clip inside the
	// inclusive ID range.
	RefreshRange(ctx context.Context, startID, endID int) Results

	// GenerateIndex rebuilds the search index from disk.
	GenerateIndex(ctx context.Context) (string, error)

	// IngestLocal transcribes and summarizes a locally recorded audio
	// file, bypassing the Granicus fetch stages.
	IngestLocal(ctx context.Context, audioPath string) error
}

// Results aggregates a multi-clip run for the final report.
type Results struct {
	Processed []int
	Failed    []int
}

// Merge folds one clip's outcome into the results.
func (r *Results) Merge(clipID int, err error) {
	if err != nil {
		r.Failed = append(r.Failed, clipID)
	} else {
		r.Processed = append(r.Processed, clipID)
	}
}
