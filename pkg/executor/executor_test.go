package executor

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestExecute(t *testing.T) {
	exec := New()

	out, err := exec.Execute(context.Background(), "echo", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	exec := New()

	if _, err := exec.Execute(context.Background(), "definitely-not-a-command"); err == nil {
		t.Error("Execute() should fail for an unknown command")
	}
}

func TestExecuteCancelled(t *testing.T) {
	exec := New()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := exec.Execute(ctx, "sleep", "5"); err == nil {
		t.Error("Execute() should fail when the context expires")
	}
}

func TestAvailable(t *testing.T) {
	exec := New()

	if !exec.Available("echo") {
		t.Error("Available(echo) = false, want true")
	}
	if exec.Available("definitely-not-a-command") {
		t.Error("Available() = true for a nonexistent command")
	}
}
