package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const previewChars = 500

// GenerateIndex rebuilds index.json by scanning every clip directory with a
// metadata.json. Discovery is a filesystem scan, not the state file, so
// artifacts written by a run that crashed before its state update still get
// indexed.
func (s *implStore) GenerateIndex(ctx context.Context) (string, error) {
	clipsDir := filepath.Join(s.root, "clips")
	entries, err := os.ReadDir(clipsDir)
	if err != nil {
		return "", err
	}

	var indexEntries []IndexEntry
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		metaPath := filepath.Join(clipsDir, e.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var record ClipRecord
		if err := json.Unmarshal(data, &record); err != nil {
			s.logger.Warn(ctx, "Skipping unreadable metadata in %s: %v", e.Name(), err)
			continue
		}

		indexEntries = append(indexEntries, IndexEntry{
			ClipID:            record.ClipID,
			Date:              record.Date,
			MeetingBody:       record.MeetingBody,
			Title:             record.Title,
			Topics:            record.Topics,
			TranscriptWords:   record.TranscriptWords,
			TranscriptPreview: s.transcriptPreview(filepath.Join(clipsDir, e.Name()), record),
			ProcessedAt:       record.ProcessedAt,
			Files:             record.Files,
		})
	}

	// Most recent meetings first; undated clips sink to the bottom.
	sort.Slice(indexEntries, func(i, j int) bool {
		return indexEntries[i].Date > indexEntries[j].Date
	})

	indexPath := filepath.Join(s.root, "index.json")
	index := Index{
		GeneratedAt: time.Now().Format(time.RFC3339),
		TotalClips:  len(indexEntries),
		Clips:       indexEntries,
	}
	if err := writeJSON(indexPath, index); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Generated index with %d clips at %s", len(indexEntries), indexPath)
	return indexPath, nil
}

func (s *implStore) transcriptPreview(clipDir string, record ClipRecord) string {
	name, ok := record.Files["transcript"]
	if !ok {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(clipDir, name))
	if err != nil {
		return ""
	}

	text := string(data)
	if len(text) > previewChars {
		// Cut on a rune boundary so the preview stays valid UTF-8.
		cut := previewChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}
