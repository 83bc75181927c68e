package pipeline

import (
	"context"

	"github.com/opencouncil/clipscribe/internal/store"
)

// defaultAutoBatch bounds a sequential auto run when no cap was given.
const defaultAutoBatch = 10

// ProcessRange processes every clip in the inclusive ID range, in order.
func (p *implPipeline) ProcessRange(ctx context.Context, startID, endID int, stopOnFailure bool) Results {
	var results Results

	total := endID - startID + 1
	for idx, clipID := 1, startID; clipID <= endID; idx, clipID = idx+1, clipID+1 {
		p.logger.Info(ctx, "Clip %d - [%d/%d]", clipID, idx, total)

		err := p.ProcessClip(ctx, clipID, true)
		results.Merge(clipID, err)

		if err != nil && stopOnFailure {
			p.logger.Info(ctx, "Stopping due to failure on clip %d", clipID)
			break
		}
	}

	return results
}

// Auto continues from where the last run stopped. With a scraped catalog it
// processes unseen catalog entries past the progress marker; without one it
// walks IDs sequentially from first_clip_id or last+1.
func (p *implPipeline) Auto(ctx context.Context, maxClips int) Results {
	available, err := p.store.LoadAvailableClips()
	if err != nil {
		p.logger.Warn(ctx, "Error loading available clips: %v", err)
	}

	if len(available) > 0 {
		candidates := p.newClips(available, maxClips)
		if len(candidates) == 0 {
			p.logger.Info(ctx, "No more clips to process from the available-clips catalog")
			return Results{}
		}

		p.logger.Info(ctx, "Auto-processing %d clips from catalog: %d to %d",
			len(candidates), candidates[0], candidates[len(candidates)-1])
		return p.processList(ctx, candidates)
	}

	startID := p.state.LastProcessedClipID + 1
	if p.state.LastProcessedClipID == 0 {
		startID = p.cfg.Granicus.FirstClipID
	}
	if maxClips <= 0 {
		maxClips = defaultAutoBatch
	}
	endID := startID + maxClips - 1

	// Sequential mode walks blind past the newest published clip, so the
	// first failure ends the run instead of advancing the marker through
	// IDs that do not exist yet.
	p.logger.Info(ctx, "Auto-processing from clip %d (max %d clips)", startID, maxClips)
	return p.ProcessRange(ctx, startID, endID, true)
}

// Scrape refreshes the catalog from the publisher page, then processes new
// clips up to the cap.
func (p *implPipeline) Scrape(ctx context.Context, maxClips int) (Results, error) {
	ids, err := p.granicus.ScrapeAvailableClips(ctx)
	if err != nil {
		return Results{}, err
	}

	clips := make([]store.AvailableClip, 0, len(ids))
	for _, id := range ids {
		clips = append(clips, store.AvailableClip{ClipID: id})
	}
	if err := p.store.SaveAvailableClips(clips); err != nil {
		p.logger.Warn(ctx, "Failed to save available clips: %v", err)
	}

	candidates := p.newClips(ids, maxClips)
	if len(candidates) == 0 {
		p.logger.Info(ctx, "No new clips to process")
		return Results{}, nil
	}

	p.logger.Info(ctx, "Processing %d new clips: %d to %d",
		len(candidates), candidates[0], candidates[len(candidates)-1])
	return p.processList(ctx, candidates), nil
}

// newClips filters a sorted ID list down to unseen clips past the progress
// marker, capped at maxClips.
func (p *implPipeline) newClips(ids []int, maxClips int) []int {
	var out []int
	for _, id := range ids {
		if id <= p.state.LastProcessedClipID || p.state.IsProcessed(id) {
			continue
		}
		out = append(out, id)
		if maxClips > 0 && len(out) == maxClips {
			break
		}
	}
	return out
}

func (p *implPipeline) processList(ctx context.Context, ids []int) Results {
	var results Results
	for idx, clipID := range ids {
		p.logger.Info(ctx, "Clip %d - [%d/%d]", clipID, idx+1, len(ids))
		results.Merge(clipID, p.ProcessClip(ctx, clipID, true))
	}
	return results
}

func (p *implPipeline) GenerateIndex(ctx context.Context) (string, error) {
	return p.store.GenerateIndex(ctx)
}
