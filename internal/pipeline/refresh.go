package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// RefreshSummary re-fetches minutes and regenerates the summary and HTML for
// a clip that already has a transcript. Audio and transcription are never
// touched.
func (p *implPipeline) RefreshSummary(ctx context.Context, clipID int) error {
	record, err := p.store.LoadMetadata(clipID)
	if err != nil {
		return fmt.Errorf("clip %d not found - run full processing first: %w", clipID, err)
	}

	clipDir := p.store.ClipDir(clipID)

	transcriptFile, ok := record.Files["transcript"]
	if !ok {
		return fmt.Errorf("clip %d has no transcript - run full processing first", clipID)
	}
	transcriptData, err := os.ReadFile(filepath.Join(clipDir, transcriptFile))
	if err != nil {
		return fmt.Errorf("read transcript for clip %d: %w", clipID, err)
	}
	transcript := string(transcriptData)
	p.logger.Info(ctx, "Updating summary for clip %d", clipID)

	var agendaText string
	if agendaFile, ok := record.Files["agenda_txt"]; ok {
		if data, err := os.ReadFile(filepath.Join(clipDir, agendaFile)); err == nil {
			agendaText = string(data)
		}
	}

	// Minutes are often published after the first processing run, so the
	// cached copy is kept and only missing minutes are fetched.
	minutes := p.docs.FetchMinutes(ctx, p.granicus.MinutesURL(clipID), clipDir,
		docBaseName("minutes", clipID, record.Title, record.Date), false)
	if minutes.PDFFile != "" {
		record.Files["minutes_pdf"] = minutes.PDFFile
	}
	if minutes.HTMLFile != "" {
		record.Files["minutes_html"] = minutes.HTMLFile
	}
	if minutes.TxtFile != "" {
		record.Files["minutes_txt"] = minutes.TxtFile
	}

	// Always regenerate: refreshing is an explicit cache bypass for the
	// summary stage only.
	summaryPath := filepath.Join(clipDir, "summary.txt")
	summary, err := p.summarizer.Summarize(ctx, summaryInput(transcript, agendaText, minutes.Text), summaryPath, true)
	if err != nil {
		return fmt.Errorf("regenerate summary for clip %d: %w", clipID, err)
	}
	record.Files["summary_txt"] = "summary.txt"

	if err := p.summarizer.RenderHTML(record.Title, summary, filepath.Join(clipDir, "summary.html")); err != nil {
		return err
	}
	record.Files["summary_html"] = "summary.html"

	record.SummaryUpdatedAt = time.Now().Format(time.RFC3339)
	record.Models.Summary = p.cfg.OpenAI.SummaryModel

	if err := p.store.SaveMetadata(clipID, record); err != nil {
		return err
	}

	p.logger.Info(ctx, "Updated summary for clip %d", clipID)
	return nil
}

// RefreshRange refreshes every already-processed clip whose directory falls
// inside the inclusive ID range, then rebuilds the index.
func (p *implPipeline) RefreshRange(ctx context.Context, startID, endID int) Results {
	var results Results

	ids := p.processedClipsInRange(startID, endID)
	if len(ids) == 0 {
		p.logger.Info(ctx, "No previously-processed clips found in range %d-%d", startID, endID)
		return results
	}

	p.logger.Info(ctx, "Found %d existing clips to update in range %d-%d", len(ids), startID, endID)

	for idx, clipID := range ids {
		p.logger.Info(ctx, "Clip %d - [%d/%d]", clipID, idx+1, len(ids))
		results.Merge(clipID, p.RefreshSummary(ctx, clipID))
	}

	if _, err := p.store.GenerateIndex(ctx); err != nil {
		p.logger.Warn(ctx, "Failed to regenerate index: %v", err)
	}

	return results
}

func (p *implPipeline) processedClipsInRange(startID, endID int) []int {
	entries, err := os.ReadDir(filepath.Join(p.store.Root(), "clips"))
	if err != nil {
		return nil
	}

	var ids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		if id >= startID && id <= endID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
