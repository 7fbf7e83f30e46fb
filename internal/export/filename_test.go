package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBuildPath(t *testing.T) {
	ts := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	got := BuildPath("/tmp/history", ".csv", ts)
	want := "/tmp/history_26.08.2026.csv"
	if got != want {
		t.Errorf("BuildPath() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "file.csv")

	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}
