package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/opencouncil/clipscribe/internal/logger"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"recording.mp3", true},
		{"recording.M4A", true},
		{"recording.wav", true},
		{"recording.flac", true},
		{"notes.txt", false},
		{"video.mp4", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isAudioFile(tt.path); got != tt.want {
				t.Errorf("isAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherDispatchesAudio(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, filePath string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(filePath))
		mu.Unlock()
		return nil
	}

	w, err := New(dir, handler, logger.New(logger.Options{Level: "error"}), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	// Give the watch loop a moment to come up before creating files.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "meeting.mp3"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler never invoked for dropped audio")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "meeting.mp3" {
		t.Errorf("handled = %v, want only meeting.mp3", handled)
	}
}

func TestWatcherShutdownDrainsInFlight(t *testing.T) {
	dir := t.TempDir()

	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})
	handler := func(ctx context.Context, filePath string) error {
		close(started)
		<-release
		close(finished)
		return nil
	}

	// One slot, so the second file parks the loop on the semaphore wait.
	w, err := New(dir, handler, logger.New(logger.Options{Level: "error"}), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "first.mp3"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first handler never started")
	}

	if err := os.WriteFile(filepath.Join(dir, "second.mp3"), []byte("audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Let the loop reach the semaphore wait for the second file, then
	// cancel while the first ingestion is still running.
	time.Sleep(700 * time.Millisecond)
	cancel()

	select {
	case <-done:
		t.Fatal("Start returned while an ingestion was still running")
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the ingestion finished")
	}
	select {
	case <-finished:
	default:
		t.Error("in-flight ingestion was abandoned on shutdown")
	}
}

func TestWatcherBadDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(ctx context.Context, p string) error { return nil },
		logger.New(logger.Options{Level: "error"}), 1)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
