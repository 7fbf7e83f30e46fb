package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")

	if err := WriteTXT(path, sampleEntries()); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "=== Calculation History ===") {
		t.Error("missing header")
	}
	if !strings.Contains(content, "1 + 2 = 3") {
		t.Errorf("missing first entry: %s", content)
	}
	if !strings.Contains(content, "2026-01-01 12:00:05") {
		t.Errorf("missing timestamp: %s", content)
	}
}

func TestWriteTXT_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.txt")

	if err := WriteTXT(path, sampleEntries()); err != nil {
		t.Fatalf("first WriteTXT() error: %v", err)
	}
	if err := WriteTXT(path, sampleEntries()[:1]); err != nil {
		t.Fatalf("second WriteTXT() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if strings.Count(string(data), "1 + 2 = 3") != 1 {
		t.Error("TXT export should replace the file, not append")
	}
}
