package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/opencouncil/clipscribe/internal/logger"
)

type implStore struct {
	root   string
	logger logger.Logger
}

// New creates a Store rooted at dir, creating the directory layout if needed.
func New(dir string, log logger.Logger) (Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "clips"), 0755); err != nil {
		return nil, fmt.Errorf("create processing root: %w", err)
	}
	return &implStore{root: dir, logger: log}, nil
}

func (s *implStore) Root() string {
	return s.root
}

func (s *implStore) ClipDir(clipID int) string {
	return filepath.Join(s.root, "clips", strconv.Itoa(clipID))
}

func (s *implStore) EnsureClipDir(clipID int) (string, error) {
	dir := s.ClipDir(clipID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create clip dir: %w", err)
	}
	return dir, nil
}

func (s *implStore) IsArtifactComplete(path string, minBytes int64) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() >= minBytes
}

func (s *implStore) ReadArtifact(path string, minBytes int64) (string, bool) {
	if !s.IsArtifactComplete(path, minBytes) {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil || int64(len(data)) < minBytes {
		return "", false
	}
	return string(data), true
}

func (s *implStore) WriteArtifact(path string, data []byte) error {
	return writeAtomic(path, data)
}

// writeAtomic writes to a temp file in the target directory and renames it
// into place, so readers never observe a partially written file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return writeAtomic(path, data)
}

func (s *implStore) statePath() string {
	return filepath.Join(s.root, "state.json")
}

func (s *implStore) LoadState() (*State, error) {
	data, err := os.ReadFile(s.statePath())
	if os.IsNotExist(err) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	return &state, nil
}

func (s *implStore) SaveState(state *State) error {
	return writeJSON(s.statePath(), state)
}

func (s *implStore) metadataPath(clipID int) string {
	return filepath.Join(s.ClipDir(clipID), "metadata.json")
}

func (s *implStore) LoadMetadata(clipID int) (*ClipRecord, error) {
	data, err := os.ReadFile(s.metadataPath(clipID))
	if err != nil {
		return nil, fmt.Errorf("read metadata for clip %d: %w", clipID, err)
	}

	var record ClipRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse metadata for clip %d: %w", clipID, err)
	}
	return &record, nil
}

func (s *implStore) SaveMetadata(clipID int, record *ClipRecord) error {
	return writeJSON(s.metadataPath(clipID), record)
}
