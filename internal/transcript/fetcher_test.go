package transcript

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rob137/summarise-youtube-video/internal/logger"
	"github.com/rob137/summarise-youtube-video/internal/video"
)

type fakeExecutor struct {
	executeCalls      int
	executeErr        error
	executeInDirCalls int
	executeInDirErr   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.executeCalls++
	return "2026.08.01", f.executeErr
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.executeInDirCalls++
	return "", f.executeInDirErr
}

func TestFetchMissingBinary(t *testing.T) {
	exec := &fakeExecutor{executeErr: errors.New(`command "yt-dlp" failed: executable file not found`)}
	f := New("yt-dlp", []string{"en"}, t.TempDir(), exec, logger.NewWithWriter("error", io.Discard))

	ref := video.Reference{ID: "dQw4w9WgXcQ", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}

	_, err := f.Fetch(context.Background(), ref)
	if err == nil || !strings.Contains(err.Error(), "yt-dlp not available") {
		t.Fatalf("Fetch() error = %v, want binary check failure", err)
	}
	if exec.executeInDirCalls != 0 {
		t.Error("caption download attempted despite missing binary")
	}

	// Failed check is remembered without re-running the binary.
	if _, err := f.Fetch(context.Background(), ref); err == nil {
		t.Error("Fetch() expected cached check failure")
	}
	if exec.executeCalls != 1 {
		t.Errorf("version check ran %d times, want 1", exec.executeCalls)
	}
}

func TestFetchChecksBinaryOnce(t *testing.T) {
	exec := &fakeExecutor{executeInDirErr: errors.New("network unreachable")}
	f := New("yt-dlp", []string{"en"}, t.TempDir(), exec, logger.NewWithWriter("error", io.Discard))

	ref := video.Reference{ID: "dQw4w9WgXcQ", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}

	for i := 0; i < 2; i++ {
		if _, err := f.Fetch(context.Background(), ref); err == nil {
			t.Fatal("Fetch() expected download error")
		}
	}

	if exec.executeCalls != 1 {
		t.Errorf("version check ran %d times, want 1", exec.executeCalls)
	}
	if exec.executeInDirCalls != 2 {
		t.Errorf("download ran %d times, want 2", exec.executeInDirCalls)
	}
}
