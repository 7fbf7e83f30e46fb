package export

import (
	"fmt"
	"os"
	"strings"

	"deskdash/internal/model"
)

// WriteTXT writes history entries to a plain text file, one calculation
// per line with its timestamp.
func WriteTXT(path string, entries []model.Entry) error {
	var b strings.Builder
	b.WriteString("=== Calculation History ===\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s  %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Line()))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
