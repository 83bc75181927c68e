package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestPlanSegmentCount(t *testing.T) {
	mb := int64(bytesPerMB)

	tests := []struct {
		name    string
		size    int64
		ceiling int64
		want    int
	}{
		{"just over ceiling", 25 * mb, 24 * mb, 3},
		{"30MB against 24MB", 30 * mb, 24 * mb, 3},
		{"exact multiple", 48 * mb, 24 * mb, 3},
		{"above exact multiple", 49 * mb, 24 * mb, 4},
		{"at ceiling", 24 * mb, 24 * mb, 2},
		{"tiny file", 1, 24 * mb, 2},
		{"very large file", 240 * mb, 24 * mb, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanSegmentCount(tt.size, tt.ceiling); got != tt.want {
				t.Errorf("PlanSegmentCount(%d, %d) = %d, want %d", tt.size, tt.ceiling, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "audio.mp3")
	size := int64(30 * bytesPerMB)
	if err := os.WriteFile(src, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	var starts []string
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			if name != "ffmpeg" {
				t.Errorf("Execute() name = %v, want ffmpeg", name)
			}
			for i, a := range args {
				if a == "-ss" {
					starts = append(starts, args[i+1])
				}
			}
			if err := os.WriteFile(lastArg(args), []byte("segment"), 0o644); err != nil {
				t.Fatal(err)
			}
			return "", nil
		},
	}

	seg := NewSegmenter(exec, &mockProber{dur: Duration{Seconds: 300}}, testLogger())
	cand := Candidate{Asset: Asset{Path: src, Size: size}, Stage: StageStandard, Profile: StandardProfile}

	segments, err := seg.Split(context.Background(), cand, 24*bytesPerMB)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("Split() produced %d segments, want 3", len(segments))
	}
	if len(starts) != 3 || starts[0] != "0.000" || starts[1] != "100.000" || starts[2] != "200.000" {
		t.Errorf("segment starts = %v, want evenly spaced over 300s", starts)
	}
	for i, s := range segments {
		if s.Index != i {
			t.Errorf("segment %d has Index %d", i, s.Index)
		}
		if filepath.Base(s.Asset.Path) != fmt.Sprintf("audio_chunk%02d.mp3", i) {
			t.Errorf("segment %d path = %v", i, s.Asset.Path)
		}
	}
}

func TestSplitDropsFailedSegments(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "audio.mp3")
	if err := os.WriteFile(src, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	call := 0
	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			call++
			if call == 2 {
				return "", errors.New("cut failed")
			}
			if err := os.WriteFile(lastArg(args), []byte("segment"), 0o644); err != nil {
				t.Fatal(err)
			}
			return "", nil
		},
	}

	seg := NewSegmenter(exec, &mockProber{dur: Duration{Seconds: 300}}, testLogger())
	cand := Candidate{Asset: Asset{Path: src, Size: 30 * bytesPerMB}, Stage: StageStandard}

	segments, err := seg.Split(context.Background(), cand, 24*bytesPerMB)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if len(segments) != 2 {
		t.Errorf("Split() kept %d segments, want 2 after one failed cut", len(segments))
	}
}

func TestSplitAllSegmentsFail(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "audio.mp3")
	if err := os.WriteFile(src, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	exec := &mockExecutor{
		ExecuteFunc: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("cut failed")
		},
	}

	seg := NewSegmenter(exec, &mockProber{dur: Duration{Seconds: 300}}, testLogger())
	cand := Candidate{Asset: Asset{Path: src, Size: 30 * bytesPerMB}, Stage: StageStandard}

	if _, err := seg.Split(context.Background(), cand, 24*bytesPerMB); err == nil {
		t.Error("Split() should fail when no segments survive")
	}
}
