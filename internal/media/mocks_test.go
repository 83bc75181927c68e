package media

import (
	"context"

	"github.com/opencouncil/clipscribe/internal/logger"
)

// mockExecutor routes Execute to a test-provided function.
type mockExecutor struct {
	ExecuteFunc func(ctx context.Context, name string, args ...string) (string, error)
}

func (m *mockExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return m.ExecuteFunc(ctx, name, args...)
}

func (m *mockExecutor) Available(name string) bool { return true }

// mockProber returns a fixed duration.
type mockProber struct {
	dur Duration
}

func (m *mockProber) Duration(ctx context.Context, asset Asset) Duration { return m.dur }

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: "error"})
}

// lastArg is the destination path in an ffmpeg argument list.
func lastArg(args []string) string {
	return args[len(args)-1]
}
