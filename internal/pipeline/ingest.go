package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencouncil/clipscribe/internal/granicus"
)

// IngestLocal runs the transcribe and summarize stages on an audio file that
// never came from the portal, such as a recording dropped into the watched
// inbox. Outputs land under <output>/local/<name>/ and are cache-gated the
// same way clip artifacts are, so re-dropping a file resumes rather than
// redoes. Durable pipeline state and the index track portal clips only and
// are not touched here.
func (p *implPipeline) IngestLocal(ctx context.Context, audioPath string) error {
	info, err := os.Stat(audioPath)
	if err != nil {
		return fmt.Errorf("local audio %s: %w", audioPath, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("local audio %s is empty", audioPath)
	}

	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	name := granicus.SanitizeTitle(stem)
	workDir := filepath.Join(p.store.Root(), "local", name)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create work dir for %s: %w", name, err)
	}

	p.logger.Info(ctx, "Ingesting local audio %s -> %s", audioPath, workDir)

	transcriptPath := filepath.Join(workDir, "transcript_"+name+".txt")
	transcript, err := p.transcriber.Transcribe(ctx, audioPath, transcriptPath, p.opts.Force)
	if err != nil {
		return fmt.Errorf("transcribe %s: %w", name, err)
	}

	topics := p.summarizer.ExtractTopics(ctx, transcript)
	if len(topics) > 0 {
		p.logger.Info(ctx, "Topics for %s: %s", name, strings.Join(topics, ", "))
	}

	summaryPath := filepath.Join(workDir, "summary.txt")
	summary, err := p.summarizer.Summarize(ctx, summaryInput(transcript, "", ""), summaryPath, p.opts.Force)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", name, err)
	}

	if err := p.summarizer.RenderHTML(stem, summary, filepath.Join(workDir, "summary.html")); err != nil {
		return err
	}

	p.logger.Info(ctx, "Finished local audio %s", name)
	return nil
}
