package media

import "fmt"

// Stage identifies how aggressively a candidate was compressed.
type Stage int

const (
	StageOriginal Stage = iota
	StageStandard
	StageAggressive
)

func (s Stage) String() string {
	switch s {
	case StageOriginal:
		return "original"
	case StageStandard:
		return "standard"
	case StageAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Profile is a fixed ffmpeg audio encoding profile.
type Profile struct {
	SampleRate int
	Channels   int
	Bitrate    string
}

// The two-step compression ladder, tuned for speech.
var (
	StandardProfile   = Profile{SampleRate: 16000, Channels: 1, Bitrate: "32k"}
	AggressiveProfile = Profile{SampleRate: 16000, Channels: 1, Bitrate: "24k"}
)

// Candidate is an asset plus the compression stage that produced it. Temp is
// set for files the transcoder created; the caller owns their cleanup.
type Candidate struct {
	Asset   Asset
	Stage   Stage
	Profile Profile
	Temp    bool
}

// Segment is a time-bounded slice of a candidate, materialized as its own
// file. Segments of one asset are contiguous and ordered by Start.
type Segment struct {
	Asset  Asset
	Index  int
	Start  float64
	Length float64
}

// TranscodeError reports an encoder invocation failure. It is fatal for the
// clip being processed.
type TranscodeError struct {
	Stage Stage
	Err   error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("%s transcode failed: %v", e.Stage, e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}
