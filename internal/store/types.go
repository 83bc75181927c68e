package store

import "time"

// Artifact validity thresholds. Existence alone is not enough: a prior run
// may have crashed mid-write, so an artifact below its threshold is treated
// as absent and regenerated.
const (
	MinAudioBytes      = 1
	MinTranscriptBytes = 50
	MinSummaryBytes    = 100
)

// State is the singleton durable record of pipeline progress.
type State struct {
	LastProcessedClipID int          `json:"last_processed_clip_id"`
	ProcessedClips      []int        `json:"processed_clips"`
	FailedClips         []FailedClip `json:"failed_clips"`
}

type FailedClip struct {
	ClipID    int    `json:"clip_id"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
	AttemptID string `json:"attempt_id,omitempty"`
}

// RecordFailure appends a failure entry and advances the progress marker.
// The failed list is an append-only audit trail; a clip may fail in one run
// and succeed in a later one.
func (s *State) RecordFailure(clipID int, reason, attemptID string) {
	s.FailedClips = append(s.FailedClips, FailedClip{
		ClipID:    clipID,
		Reason:    reason,
		Timestamp: time.Now().Format(time.RFC3339),
		AttemptID: attemptID,
	})
	s.advance(clipID)
}

// RecordSuccess marks a clip as fully processed and advances the progress
// marker.
func (s *State) RecordSuccess(clipID int) {
	s.advance(clipID)
	for _, id := range s.ProcessedClips {
		if id == clipID {
			return
		}
	}
	s.ProcessedClips = append(s.ProcessedClips, clipID)
}

// advance moves the progress marker forward only; reprocessing an old clip
// never rewinds it.
func (s *State) advance(clipID int) {
	if clipID > s.LastProcessedClipID {
		s.LastProcessedClipID = clipID
	}
}

// IsProcessed reports whether the clip already appears in the processed list.
func (s *State) IsProcessed(clipID int) bool {
	for _, id := range s.ProcessedClips {
		if id == clipID {
			return true
		}
	}
	return false
}

// ClipRecord is the durable metadata document for one processed clip.
type ClipRecord struct {
	ClipID                int               `json:"clip_id"`
	URL                   string            `json:"url"`
	Date                  string            `json:"date"`
	MeetingBody           string            `json:"meeting_body"`
	Title                 string            `json:"title"`
	Topics                []string          `json:"topics"`
	Files                 map[string]string `json:"files"`
	ProcessedAt           string            `json:"processed_at"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds"`
	TranscriptWords       int               `json:"transcript_words"`
	AudioKept             bool              `json:"audio_kept"`
	Models                ModelInfo         `json:"models"`
	SummaryUpdatedAt      string            `json:"summary_updated_at,omitempty"`
}

type ModelInfo struct {
	Transcribe string `json:"transcribe"`
	Summary    string `json:"summary"`
	Topics     string `json:"topics"`
}

// Index is the search index regenerated after each processed clip.
type Index struct {
	GeneratedAt string       `json:"generated_at"`
	TotalClips  int          `json:"total_clips"`
	Clips       []IndexEntry `json:"clips"`
}

type IndexEntry struct {
	ClipID            int               `json:"clip_id"`
	Date              string            `json:"date"`
	MeetingBody       string            `json:"meeting_body"`
	Title             string            `json:"title"`
	Topics            []string          `json:"topics"`
	TranscriptWords   int               `json:"transcript_words"`
	TranscriptPreview string            `json:"transcript_preview"`
	ProcessedAt       string            `json:"processed_at"`
	Files             map[string]string `json:"files"`
}

// AvailableClips is the scraped catalog of clips known to exist upstream.
type AvailableClips struct {
	LastChecked string          `json:"last_checked"`
	LastUpdated string          `json:"last_updated"`
	TotalFound  int             `json:"total_found"`
	Clips       []AvailableClip `json:"clips"`
}

type AvailableClip struct {
	ClipID int    `json:"clip_id"`
	Title  string `json:"title,omitempty"`
}
