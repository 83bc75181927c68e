package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/opencouncil/clipscribe/internal/logger"
)

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start blocks, dispatching every audio file created in the inbox to the
// handler. At most maxConcurrent files are processed at once; the rest wait.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inboxDir)
	w.logger.Info(ctx, "Supported formats: .mp3, .m4a, .wav, .aac, .flac, .ogg")

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio detected: %s", event.Name)

			// Small delay so a file still being copied in is complete
			// before we open it.
			time.Sleep(500 * time.Millisecond)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return w.drain(ctx)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// drain waits out every in-flight ingestion before Start returns. Both
// cancellation paths end here so a shutdown during a semaphore wait cannot
// abandon running handlers.
func (w *implWatcher) drain(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "Inbox watcher stopped")
	return ctx.Err()
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supportedFormats := []string{".mp3", ".m4a", ".wav", ".aac", ".flac", ".ogg"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}
