package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencouncil/clipscribe/internal/granicus"
	"github.com/opencouncil/clipscribe/internal/store"
)

// ProcessClip runs the full pipeline for one clip. Whatever happens inside,
// the durable state advances: success lands in processed_clips, any failure
// in failed_clips with a reason tag, and last_processed_clip_id moves forward
// either way so auto mode never spins on a broken clip.
func (p *implPipeline) ProcessClip(ctx context.Context, clipID int, skipIfExists bool) (err error) {
	clipDir := p.store.ClipDir(clipID)

	// Completion marker: the rendered summary is written last, so its
	// presence means everything before it finished. Checked before any
	// stage so a done clip skips in O(1) with no network traffic.
	if skipIfExists && !p.opts.Force &&
		p.store.IsArtifactComplete(filepath.Join(clipDir, "metadata.json"), 1) &&
		p.store.IsArtifactComplete(filepath.Join(clipDir, "summary.html"), 1) {
		p.logger.Info(ctx, "Clip %d fully processed - skipping (use --force to reprocess)", clipID)
		return nil
	}

	attemptID := uuid.NewString()
	start := time.Now()

	p.logger.Info(ctx, "============================================================")
	p.logger.Info(ctx, "Processing clip %d (attempt %s)", clipID, attemptID)
	p.logger.Info(ctx, "============================================================")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			p.logger.Error(ctx, "Clip %d failed: %v", clipID, err)
			p.state.RecordFailure(clipID, failureReason(err), attemptID)
			if saveErr := p.store.SaveState(p.state); saveErr != nil {
				p.logger.Error(ctx, "Failed to save state: %v", saveErr)
			}
		}
	}()

	if _, err = p.store.EnsureClipDir(clipID); err != nil {
		return err
	}

	record, err := p.processStages(ctx, clipID, clipDir, start)
	if err != nil {
		return err
	}

	if err = p.store.SaveMetadata(clipID, record); err != nil {
		return err
	}

	p.state.RecordSuccess(clipID)
	if err = p.store.SaveState(p.state); err != nil {
		return err
	}

	p.logger.Info(ctx, "Successfully processed clip %d in %.1fs", clipID, record.ProcessingTimeSeconds)

	if _, idxErr := p.store.GenerateIndex(ctx); idxErr != nil {
		p.logger.Warn(ctx, "Failed to regenerate index: %v", idxErr)
	}

	return nil
}

func (p *implPipeline) processStages(ctx context.Context, clipID int, clipDir string, start time.Time) (*store.ClipRecord, error) {
	files := make(map[string]string)

	title, err := p.granicus.Title(ctx, clipID)
	if err != nil {
		p.logger.Warn(ctx, "Could not get title for clip %d: %v", clipID, err)
		title = fmt.Sprintf("Clip %d", clipID)
	}

	meta := granicus.ExtractMeta(clipID, title, "")
	if meta.Date != "" {
		p.logger.Info(ctx, "Extracted date: %s", meta.Date)
	}

	audioFilename, err := p.fetchAudio(ctx, clipID, clipDir, title, meta.Date)
	if err != nil {
		return nil, failStage(ReasonDownloadFailed, err)
	}
	files["audio"] = audioFilename
	audioPath := filepath.Join(clipDir, audioFilename)

	stem := strings.TrimSuffix(audioFilename, filepath.Ext(audioFilename))
	transcriptFilename := "transcript_" + stem + ".txt"
	transcript, err := p.transcriber.Transcribe(ctx, audioPath, filepath.Join(clipDir, transcriptFilename), p.opts.Force)
	if err != nil {
		return nil, failStage(ReasonTranscriptionFailed, err)
	}
	files["transcript"] = transcriptFilename

	agenda := p.docs.FetchAgenda(ctx, p.granicus.AgendaURL(clipID), clipDir, docBaseName("agenda", clipID, title, meta.Date), p.opts.Force)
	if agenda.PDFFile != "" {
		files["agenda_pdf"] = agenda.PDFFile
	}
	if agenda.TxtFile != "" {
		files["agenda_txt"] = agenda.TxtFile
	}

	minutes := p.docs.FetchMinutes(ctx, p.granicus.MinutesURL(clipID), clipDir, docBaseName("minutes", clipID, title, meta.Date), p.opts.Force)
	if minutes.PDFFile != "" {
		files["minutes_pdf"] = minutes.PDFFile
	}
	if minutes.HTMLFile != "" {
		files["minutes_html"] = minutes.HTMLFile
	}
	if minutes.TxtFile != "" {
		files["minutes_txt"] = minutes.TxtFile
	}

	// The agenda often carries the meeting date when the title does not.
	if meta.Date == "" && agenda.Text != "" {
		meta = granicus.ExtractMeta(clipID, title, agenda.Text)
	}

	topics := p.summarizer.ExtractTopics(ctx, transcript)

	summaryPath := filepath.Join(clipDir, "summary.txt")
	summary, err := p.summarizer.Summarize(ctx, summaryInput(transcript, agenda.Text, minutes.Text), summaryPath, p.opts.Force)
	if err != nil {
		return nil, failStage(ReasonSummaryFailed, err)
	}
	files["summary_txt"] = "summary.txt"

	if err := p.summarizer.RenderHTML(title, summary, filepath.Join(clipDir, "summary.html")); err != nil {
		// The clip stays incomplete without its marker and will be
		// retried next run, with every earlier stage cached.
		return nil, failStage(ReasonSummaryFailed, err)
	}
	files["summary_html"] = "summary.html"

	if !p.opts.KeepAudio {
		if err := os.Remove(audioPath); err == nil {
			delete(files, "audio")
			p.logger.Info(ctx, "Removed audio file (keep_audio=false)")
		}
	}

	end := time.Now()
	return &store.ClipRecord{
		ClipID:                clipID,
		URL:                   p.granicus.ClipURL(clipID),
		Date:                  meta.Date,
		MeetingBody:           meta.MeetingBody,
		Title:                 title,
		Topics:                topics,
		Files:                 files,
		ProcessedAt:           end.Format(time.RFC3339),
		ProcessingTimeSeconds: end.Sub(start).Seconds(),
		TranscriptWords:       len(strings.Fields(transcript)),
		AudioKept:             p.opts.KeepAudio,
		Models: store.ModelInfo{
			Transcribe: p.cfg.OpenAI.TranscribeModel,
			Summary:    p.cfg.OpenAI.SummaryModel,
			Topics:     p.cfg.OpenAI.TopicModel,
		},
	}, nil
}

// fetchAudio returns the audio filename inside clipDir, downloading only when
// no usable file already exists.
func (p *implPipeline) fetchAudio(ctx context.Context, clipID int, clipDir, title, date string) (string, error) {
	filename := audioFilename(clipID, title, date)
	path := filepath.Join(clipDir, filename)

	if !p.opts.Force {
		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			p.logger.Info(ctx, "Audio already exists (%.2f MB) - skipping download", float64(info.Size())/(1024*1024))
			return filename, nil
		}
		// A previous run may have used a different title or date in the
		// name; any non-derived mp3 in the directory counts.
		if existing := findExistingAudio(clipDir); existing != "" {
			p.logger.Info(ctx, "Audio already exists as %s - skipping download", existing)
			return existing, nil
		}
	}

	if err := p.granicus.DownloadAudio(ctx, clipID, path); err != nil {
		return "", err
	}
	return filename, nil
}

func findExistingAudio(clipDir string) string {
	matches, _ := filepath.Glob(filepath.Join(clipDir, "*.mp3"))
	for _, m := range matches {
		base := filepath.Base(m)
		stem := strings.TrimSuffix(base, ".mp3")
		if strings.HasSuffix(stem, "_compressed") || strings.HasSuffix(stem, "_compressed_aggr") || chunkSuffixRe.MatchString(stem) {
			continue
		}
		if info, err := os.Stat(m); err == nil && info.Size() > 0 {
			return base
		}
	}
	return ""
}

func audioFilename(clipID int, title, date string) string {
	name := fmt.Sprintf("clip_%d", clipID)
	if title != "" {
		name = granicus.SanitizeTitle(title)
	}
	if date != "" {
		name = date + "_" + name
	}
	return name + "_audio.mp3"
}

func docBaseName(kind string, clipID int, title, date string) string {
	name := fmt.Sprintf("%s_%d", kind, clipID)
	if title != "" {
		name = kind + "_" + granicus.SanitizeTitle(title)
	}
	if date != "" {
		name = date + "_" + name
	}
	return name
}
