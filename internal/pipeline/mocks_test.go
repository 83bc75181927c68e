package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencouncil/clipscribe/internal/config"
	"github.com/opencouncil/clipscribe/internal/docs"
	"github.com/opencouncil/clipscribe/internal/logger"
	"github.com/opencouncil/clipscribe/internal/store"
	"github.com/opencouncil/clipscribe/internal/summarizer"
)

type mockGranicus struct {
	TitleFunc         func(ctx context.Context, clipID int) (string, error)
	ScrapeFunc        func(ctx context.Context) ([]int, error)
	DownloadAudioFunc func(ctx context.Context, clipID int, destPath string) error
}

func (m *mockGranicus) ClipURL(clipID int) string {
	return fmt.Sprintf("https://portal.test/player/clip/%d", clipID)
}

func (m *mockGranicus) AgendaURL(clipID int) string {
	return fmt.Sprintf("https://portal.test/AgendaViewer.php?clip_id=%d", clipID)
}

func (m *mockGranicus) MinutesURL(clipID int) string {
	return fmt.Sprintf("https://portal.test/MinutesViewer.php?clip_id=%d", clipID)
}

func (m *mockGranicus) Title(ctx context.Context, clipID int) (string, error) {
	if m.TitleFunc != nil {
		return m.TitleFunc(ctx, clipID)
	}
	return fmt.Sprintf("Council Meeting January 8, 2025 clip %d", clipID), nil
}

func (m *mockGranicus) ScrapeAvailableClips(ctx context.Context) ([]int, error) {
	if m.ScrapeFunc != nil {
		return m.ScrapeFunc(ctx)
	}
	return nil, nil
}

func (m *mockGranicus) DownloadAudio(ctx context.Context, clipID int, destPath string) error {
	if m.DownloadAudioFunc != nil {
		return m.DownloadAudioFunc(ctx, clipID, destPath)
	}
	return os.WriteFile(destPath, []byte("audio bytes"), 0o644)
}

type mockDocs struct {
	FetchAgendaFunc  func(ctx context.Context, url, clipDir, baseName string, force bool) docs.Extract
	FetchMinutesFunc func(ctx context.Context, url, clipDir, baseName string, force bool) docs.Extract
	lastAgendaForce  bool
	lastMinutesForce bool
}

func (m *mockDocs) FetchAgenda(ctx context.Context, url, clipDir, baseName string, force bool) docs.Extract {
	m.lastAgendaForce = force
	if m.FetchAgendaFunc != nil {
		return m.FetchAgendaFunc(ctx, url, clipDir, baseName, force)
	}
	return docs.Extract{}
}

func (m *mockDocs) FetchMinutes(ctx context.Context, url, clipDir, baseName string, force bool) docs.Extract {
	m.lastMinutesForce = force
	if m.FetchMinutesFunc != nil {
		return m.FetchMinutesFunc(ctx, url, clipDir, baseName, force)
	}
	return docs.Extract{}
}

type mockTranscriber struct {
	TranscribeFunc func(ctx context.Context, audioPath, transcriptPath string, force bool) (string, error)
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath, transcriptPath string, force bool) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audioPath, transcriptPath, force)
	}
	text := strings.TrimSpace(strings.Repeat("transcribed word ", 10))
	if err := os.WriteFile(transcriptPath, []byte(text), 0o644); err != nil {
		return "", err
	}
	return text, nil
}

type mockSummarizer struct {
	summarizeErr   error
	renderErr      error
	lastForce      bool
	lastInput      summarizer.SummaryInput
	summarizeCalls int
}

func (m *mockSummarizer) Summarize(ctx context.Context, in summarizer.SummaryInput, summaryPath string, force bool) (string, error) {
	m.summarizeCalls++
	m.lastForce = force
	m.lastInput = in
	if m.summarizeErr != nil {
		return "", m.summarizeErr
	}
	text := strings.TrimSpace(strings.Repeat("summary sentence. ", 10))
	if err := os.WriteFile(summaryPath, []byte(text), 0o644); err != nil {
		return "", err
	}
	return text, nil
}

func (m *mockSummarizer) ExtractTopics(ctx context.Context, transcript string) []string {
	return []string{"Budget", "Zoning"}
}

func (m *mockSummarizer) RenderHTML(title, summary, htmlPath string) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	return os.WriteFile(htmlPath, []byte("<html>"+summary+"</html>"), 0o644)
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Paths.Output = dir
	_ = cfg.Validate()
	return cfg
}

func testStore(t *testing.T, dir string) store.Store {
	t.Helper()
	st, err := store.New(dir, logger.New(logger.Options{Level: "error"}))
	if err != nil {
		t.Fatal(err)
	}
	return st
}

type testDeps struct {
	granicus   *mockGranicus
	docs       *mockDocs
	trans      *mockTranscriber
	summarizer *mockSummarizer
	store      store.Store
}

func newTestPipeline(t *testing.T, opts Options, deps *testDeps) Pipeline {
	t.Helper()

	dir := t.TempDir()
	if deps.granicus == nil {
		deps.granicus = &mockGranicus{}
	}
	if deps.docs == nil {
		deps.docs = &mockDocs{}
	}
	if deps.trans == nil {
		deps.trans = &mockTranscriber{}
	}
	if deps.summarizer == nil {
		deps.summarizer = &mockSummarizer{}
	}
	if deps.store == nil {
		deps.store = testStore(t, dir)
	}

	p, err := New(
		testConfig(deps.store.Root()),
		deps.granicus,
		deps.docs,
		deps.trans,
		deps.summarizer,
		deps.store,
		logger.New(logger.Options{Level: "error"}),
		opts,
	)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustStat(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", filepath.Base(path), err)
	}
	return info
}
