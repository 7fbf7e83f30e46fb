package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"deskdash/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"expression",
	"result",
}

// WriteCSV writes history entries to a CSV file (semicolon-separated),
// creating it with headers if it doesn't exist, or appending rows if it
// does.
func WriteCSV(path string, entries []model.Entry) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, e := range entries {
		row := []string{
			e.Timestamp.Format("02.01.2006"),
			e.Timestamp.Format("15:04:05"),
			e.Expression,
			e.Result,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
