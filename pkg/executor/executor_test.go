package executor

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	exec := New()

	out, err := exec.Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %q, want hello", out)
	}
}

func TestExecuteFailureCarriesStderr(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	_, err := New().Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Execute() error = %v, want *CommandError", err)
	}
	if cmdErr.Stderr != "broken" || !strings.Contains(err.Error(), "stderr: broken") {
		t.Errorf("CommandError = %+v", cmdErr)
	}
}

func TestAvailable(t *testing.T) {
	exec := New()
	if exec.Available("definitely-not-a-real-binary-xyz") {
		t.Error("Available() should be false for missing binary")
	}
	if runtime.GOOS != "windows" && !exec.Available("sh") {
		t.Error("Available(sh) should be true")
	}
}
