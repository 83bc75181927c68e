package media

import (
	"fmt"
	"os"
)

const bytesPerMB = 1024 * 1024

// Asset is an audio file on disk with a known size.
type Asset struct {
	Path string
	Size int64
}

// Stat builds an Asset from a path, rejecting missing or empty files.
func Stat(path string) (Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Asset{}, fmt.Errorf("stat asset: %w", err)
	}
	if info.Size() == 0 {
		return Asset{}, fmt.Errorf("asset %s is empty", path)
	}
	return Asset{Path: path, Size: info.Size()}, nil
}

// SizeMB returns the asset size in megabytes.
func (a Asset) SizeMB() float64 {
	return float64(a.Size) / bytesPerMB
}

// MBToBytes converts a megabyte limit to bytes.
func MBToBytes(mb float64) int64 {
	return int64(mb * bytesPerMB)
}

// Duration is an audio duration in seconds. Estimated is set when probing
// failed and the value was derived from file size instead of measured, in
// which case segmentation plans built on it are conservative guesses.
type Duration struct {
	Seconds   float64
	Estimated bool
}

// EstimateDuration derives a duration from file size assuming roughly one
// megabyte per minute at the speech encoding profiles used here.
func EstimateDuration(size int64) Duration {
	return Duration{
		Seconds:   float64(size) / bytesPerMB * 60,
		Estimated: true,
	}
}
