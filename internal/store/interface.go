package store

import "context"

// Store owns the processing root: state, per-clip directories and metadata,
// the search index and the available-clips catalog. All writes of durable
// documents are atomic (temp file plus rename) so a crash never leaves a
// truncated state or metadata file behind.
type Store interface {
	Root() string
	ClipDir(clipID int) string
	EnsureClipDir(clipID int) (string, error)

	// IsArtifactComplete is the stage-cache predicate: the file exists and
	// is at least minBytes long.
	IsArtifactComplete(path string, minBytes int64) bool
	// ReadArtifact loads a cached text artifact when it passes the
	// completeness check.
	ReadArtifact(path string, minBytes int64) (string, bool)
	// WriteArtifact durably persists an artifact before anything
	// references it.
	WriteArtifact(path string, data []byte) error

	LoadState() (*State, error)
	SaveState(state *State) error

	LoadMetadata(clipID int) (*ClipRecord, error)
	SaveMetadata(clipID int, record *ClipRecord) error

	GenerateIndex(ctx context.Context) (string, error)
	LoadAvailableClips() ([]int, error)
	SaveAvailableClips(clips []AvailableClip) error
}
