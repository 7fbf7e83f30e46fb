package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"deskdash/internal/model"
)

var historyColumns = []string{"Time", "Expression", "Result"}

// HistoryView displays a table of completed calculations, most recent
// first.
type HistoryView struct {
	mu      sync.Mutex
	entries []model.Entry
	table   *widget.Table
}

// NewHistoryView creates a new history table view.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 90)  // Time
	hv.table.SetColumnWidth(1, 220) // Expression
	hv.table.SetColumnWidth(2, 140) // Result

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddEntry prepends a calculation to the history.
func (hv *HistoryView) AddEntry(e model.Entry) {
	hv.mu.Lock()
	hv.entries = append([]model.Entry{e}, hv.entries...)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Entries returns a copy of all stored entries.
func (hv *HistoryView) Entries() []model.Entry {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.Entry, len(hv.entries))
	copy(out, hv.entries)
	return out
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.entries) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.entries) {
		label.SetText("")
		return
	}

	e := hv.entries[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(e.Timestamp.Format("15:04:05"))
	case 1:
		label.SetText(e.Expression)
	case 2:
		label.SetText(e.Result)
	}
}
