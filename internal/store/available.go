package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

func (s *implStore) availablePath() string {
	return filepath.Join(s.root, "available_clips.json")
}

// LoadAvailableClips returns the sorted clip IDs from the scraped catalog, or
// an empty slice when no catalog exists yet.
func (s *implStore) LoadAvailableClips() ([]int, error) {
	data, err := os.ReadFile(s.availablePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read available clips: %w", err)
	}

	var available AvailableClips
	if err := json.Unmarshal(data, &available); err != nil {
		return nil, fmt.Errorf("parse available clips: %w", err)
	}

	ids := make([]int, 0, len(available.Clips))
	for _, c := range available.Clips {
		ids = append(ids, c.ClipID)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *implStore) SaveAvailableClips(clips []AvailableClip) error {
	now := time.Now().Format(time.RFC3339)
	return writeJSON(s.availablePath(), AvailableClips{
		LastChecked: now,
		LastUpdated: now,
		TotalFound:  len(clips),
		Clips:       clips,
	})
}
