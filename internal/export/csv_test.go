package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"deskdash/internal/model"
)

func sampleEntries() []model.Entry {
	return []model.Entry{
		{
			Timestamp:  time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
			Expression: "1 + 2",
			Result:     "3",
		},
		{
			Timestamp:  time.Date(2026, 1, 1, 12, 0, 5, 0, time.UTC),
			Expression: "1,000 × 1,000",
			Result:     "1,000,000",
		},
	}
}

func TestWriteCSV_NewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.csv")

	if err := WriteCSV(path, sampleEntries()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "date;") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[0], ";expression;result") {
		t.Errorf("header should contain expression and result columns: %s", lines[0])
	}
	if !strings.Contains(lines[1], "1 + 2") {
		t.Errorf("row should contain expression: %s", lines[1])
	}
	if !strings.Contains(lines[1], ";3") {
		t.Errorf("row should contain result: %s", lines[1])
	}
	// Grouped values contain commas, so the separator must stay semicolon.
	if !strings.Contains(lines[2], "1,000,000") {
		t.Errorf("row should keep grouped result intact: %s", lines[2])
	}
}

func TestWriteCSV_Append(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.csv")

	if err := WriteCSV(path, sampleEntries()); err != nil {
		t.Fatalf("first WriteCSV() error: %v", err)
	}
	if err := WriteCSV(path, sampleEntries()); err != nil {
		t.Fatalf("second WriteCSV() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines (1 header + 4 rows), got %d", len(lines))
	}
	if strings.Count(string(data), "date;time") != 1 {
		t.Error("header should be written only once")
	}
}
