package docs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencouncil/clipscribe/internal/logger"
)

type implFetcher struct {
	http   *http.Client
	logger logger.Logger
}

// New creates a Fetcher with a bounded HTTP client.
func New(log logger.Logger) Fetcher {
	return &implFetcher{
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: log,
	}
}

// FetchAgenda downloads the agenda document. Agendas are always served as PDF
// when they exist; anything else means no agenda is published for this clip.
func (f *implFetcher) FetchAgenda(ctx context.Context, url, clipDir, baseName string, force bool) Extract {
	// Reuse an earlier run's extraction when present.
	if !force {
		if ex, ok := findExisting(clipDir, "agenda"); ok {
			f.logger.Info(ctx, "Agenda text already exists - loading from file")
			return ex
		}
	}

	body, contentType, err := f.get(ctx, url)
	if err != nil {
		f.logger.Warn(ctx, "Agenda download error: %v", err)
		return Extract{}
	}

	if !isPDF(contentType, body) {
		f.logger.Info(ctx, "No PDF agenda available for this clip")
		return Extract{}
	}

	return f.savePDF(ctx, body, clipDir, baseName)
}

// FetchMinutes downloads the minutes document, which Granicus serves either
// as PDF or as an HTML page.
func (f *implFetcher) FetchMinutes(ctx context.Context, url, clipDir, baseName string, force bool) Extract {
	if !force {
		if ex, ok := findExisting(clipDir, "minutes"); ok {
			f.logger.Info(ctx, "Minutes text already exists - loading from file")
			return ex
		}
	}

	body, contentType, err := f.get(ctx, url)
	if err != nil {
		f.logger.Info(ctx, "Minutes not available: %v", err)
		return Extract{}
	}

	switch {
	case isPDF(contentType, body):
		return f.savePDF(ctx, body, clipDir, baseName)
	case strings.Contains(contentType, "html"):
		return f.saveHTML(ctx, body, clipDir, baseName)
	default:
		f.logger.Info(ctx, "No minutes available for this clip (unexpected content type)")
		return Extract{}
	}
}

func (f *implFetcher) get(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, strings.ToLower(resp.Header.Get("Content-Type")), nil
}

func isPDF(contentType string, body []byte) bool {
	return strings.Contains(contentType, "pdf") || bytes.HasPrefix(body, []byte("%PDF"))
}

func (f *implFetcher) savePDF(ctx context.Context, body []byte, clipDir, baseName string) Extract {
	ex := Extract{PDFFile: baseName + ".pdf"}
	pdfPath := filepath.Join(clipDir, ex.PDFFile)

	if err := os.WriteFile(pdfPath, body, 0644); err != nil {
		f.logger.Warn(ctx, "Failed to save PDF %s: %v", pdfPath, err)
		return Extract{}
	}
	f.logger.Info(ctx, "Downloaded PDF (%.1f KB)", float64(len(body))/1024)

	text, err := extractPDFText(pdfPath)
	if err != nil {
		f.logger.Warn(ctx, "PDF text extraction error: %v", err)
		return ex
	}
	if strings.TrimSpace(text) == "" {
		// Likely a scanned document; there is no OCR path, so the text
		// artifact is simply absent.
		f.logger.Info(ctx, "PDF appears to be scanned - no text extracted")
		return ex
	}

	ex.TxtFile = baseName + ".txt"
	if err := os.WriteFile(filepath.Join(clipDir, ex.TxtFile), []byte(text), 0644); err != nil {
		f.logger.Warn(ctx, "Failed to save extracted text: %v", err)
		ex.TxtFile = ""
		return ex
	}
	ex.Text = text
	f.logger.Info(ctx, "Extracted %d chars from PDF", len(text))
	return ex
}

func (f *implFetcher) saveHTML(ctx context.Context, body []byte, clipDir, baseName string) Extract {
	html := string(body)
	if strings.Contains(strings.ToLower(html), "no minutes") || len(html) < 500 {
		f.logger.Info(ctx, "No minutes available for this clip")
		return Extract{}
	}

	ex := Extract{HTMLFile: baseName + ".html"}
	if err := os.WriteFile(filepath.Join(clipDir, ex.HTMLFile), body, 0644); err != nil {
		f.logger.Warn(ctx, "Failed to save HTML %s: %v", ex.HTMLFile, err)
		return Extract{}
	}

	text, err := extractHTMLText(html)
	if err != nil {
		f.logger.Warn(ctx, "Minutes HTML text extraction error: %v", err)
		return ex
	}
	if len(text) <= 100 {
		return ex
	}

	ex.TxtFile = baseName + ".txt"
	if err := os.WriteFile(filepath.Join(clipDir, ex.TxtFile), []byte(text), 0644); err != nil {
		f.logger.Warn(ctx, "Failed to save extracted text: %v", err)
		ex.TxtFile = ""
		return ex
	}
	ex.Text = text
	f.logger.Info(ctx, "Extracted %d chars from minutes HTML", len(text))
	return ex
}

// findExisting discovers a previous run's extraction by filename pattern so
// renamed or legacy files still hit the cache.
func findExisting(clipDir, kind string) (Extract, bool) {
	txts, _ := filepath.Glob(filepath.Join(clipDir, "*"+kind+"*.txt"))
	if len(txts) == 0 {
		return Extract{}, false
	}

	data, err := os.ReadFile(txts[0])
	if err != nil || len(data) == 0 {
		return Extract{}, false
	}

	ex := Extract{TxtFile: filepath.Base(txts[0]), Text: string(data)}
	if pdfs, _ := filepath.Glob(filepath.Join(clipDir, "*"+kind+"*.pdf")); len(pdfs) > 0 {
		ex.PDFFile = filepath.Base(pdfs[0])
	}
	if htmls, _ := filepath.Glob(filepath.Join(clipDir, "*"+kind+"*.html")); len(htmls) > 0 {
		ex.HTMLFile = filepath.Base(htmls[0])
	}
	return ex, true
}
