package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateIndex(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	writeClip := func(clipID int, date, title, transcript string) {
		t.Helper()
		dir, err := st.EnsureClipDir(clipID)
		if err != nil {
			t.Fatal(err)
		}
		files := map[string]string{}
		if transcript != "" {
			files["transcript"] = "transcript.txt"
			if err := os.WriteFile(filepath.Join(dir, "transcript.txt"), []byte(transcript), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if err := st.SaveMetadata(clipID, &ClipRecord{
			ClipID: clipID,
			Date:   date,
			Title:  title,
			Files:  files,
		}); err != nil {
			t.Fatal(err)
		}
	}

	writeClip(6700, "2025-01-15", "January Meeting", "line one\nline two\n"+strings.Repeat("filler ", 100))
	writeClip(6701, "2025-03-10", "March Meeting", "")
	writeClip(6702, "", "Undated Meeting", "")

	// A directory without metadata must be skipped, not break the scan.
	if _, err := st.EnsureClipDir(9999); err != nil {
		t.Fatal(err)
	}

	path, err := st.GenerateIndex(ctx)
	if err != nil {
		t.Fatalf("GenerateIndex() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		t.Fatal(err)
	}

	if index.TotalClips != 3 {
		t.Fatalf("TotalClips = %d, want 3", index.TotalClips)
	}

	// Most recent first, undated last.
	if index.Clips[0].ClipID != 6701 || index.Clips[1].ClipID != 6700 || index.Clips[2].ClipID != 6702 {
		t.Errorf("clip order = %d, %d, %d, want 6701, 6700, 6702",
			index.Clips[0].ClipID, index.Clips[1].ClipID, index.Clips[2].ClipID)
	}

	preview := index.Clips[1].TranscriptPreview
	if preview == "" {
		t.Fatal("clip 6700 should carry a transcript preview")
	}
	if strings.Contains(preview, "\n") {
		t.Error("preview should have newlines flattened")
	}
	if len(preview) > previewChars {
		t.Errorf("preview length = %d, want at most %d", len(preview), previewChars)
	}
	if index.Clips[0].TranscriptPreview != "" {
		t.Error("clip without transcript should have an empty preview")
	}
}

func TestTranscriptPreviewKeepsValidUTF8(t *testing.T) {
	st := newTestStore(t)

	dir, err := st.EnsureClipDir(6800)
	if err != nil {
		t.Fatal(err)
	}
	// Three-byte runes do not align with the preview cap, so a byte-blind
	// cut would leave a partial rune at the end.
	transcript := strings.Repeat("世", previewChars)
	if err := os.WriteFile(filepath.Join(dir, "transcript.txt"), []byte(transcript), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveMetadata(6800, &ClipRecord{
		ClipID: 6800,
		Files:  map[string]string{"transcript": "transcript.txt"},
	}); err != nil {
		t.Fatal(err)
	}

	path, err := st.GenerateIndex(context.Background())
	if err != nil {
		t.Fatalf("GenerateIndex() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		t.Fatal(err)
	}

	preview := index.Clips[0].TranscriptPreview
	if !utf8.ValidString(preview) {
		t.Error("preview contains invalid UTF-8")
	}
	if strings.ContainsRune(preview, utf8.RuneError) {
		t.Error("preview carries a replacement character from a split rune")
	}
}
