package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Dock sides.
const (
	DockLeft  = "left"
	DockRight = "right"
)

// DockItem is one navigation entry in the dock.
type DockItem struct {
	Label string
	Icon  fyne.Resource
}

// Dock is the floating navigation strip that selects the visible panel.
// It can sit on either window edge; the choice is persisted.
type Dock struct {
	side     string
	selected int

	buttons []*widget.Button
	toggle  *widget.Button
	box     *fyne.Container

	// OnSelect is called with the index of the chosen item.
	OnSelect func(index int)
	// OnSideChanged is called after the dock side flips so the window
	// can re-lay itself out.
	OnSideChanged func(side string)
}

// NewDock creates a dock with the given items; the first is selected.
func NewDock(items []DockItem) *Dock {
	d := &Dock{side: DockRight}

	for i, item := range items {
		idx := i
		btn := widget.NewButtonWithIcon(item.Label, item.Icon, func() {
			d.Select(idx)
		})
		btn.Alignment = widget.ButtonAlignLeading
		d.buttons = append(d.buttons, btn)
	}

	d.toggle = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), d.flipSide)

	objs := make([]fyne.CanvasObject, 0, len(d.buttons)+2)
	for _, b := range d.buttons {
		objs = append(objs, b)
	}
	objs = append(objs, widget.NewSeparator(), d.toggle)

	d.box = container.NewVBox(objs...)
	d.applySelection()
	return d
}

// Container returns the dock's root container.
func (d *Dock) Container() *fyne.Container {
	return d.box
}

// Side returns "left" or "right".
func (d *Dock) Side() string {
	return d.side
}

// Select highlights the item and notifies the listener.
func (d *Dock) Select(index int) {
	if index < 0 || index >= len(d.buttons) {
		return
	}
	d.selected = index
	d.applySelection()
	if d.OnSelect != nil {
		d.OnSelect(index)
	}
}

// Selected returns the index of the current item.
func (d *Dock) Selected() int {
	return d.selected
}

func (d *Dock) applySelection() {
	for i, b := range d.buttons {
		if i == d.selected {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
}

func (d *Dock) flipSide() {
	if d.side == DockRight {
		d.side = DockLeft
	} else {
		d.side = DockRight
	}
	if d.OnSideChanged != nil {
		d.OnSideChanged(d.side)
	}
}

// LoadPreferences restores the dock side; absence defaults to right.
func (d *Dock) LoadPreferences(prefs fyne.Preferences) {
	side := prefs.StringWithFallback(prefDockSide, DockRight)
	if side != DockLeft && side != DockRight {
		side = DockRight
	}
	d.side = side
}

// SavePreferences persists the dock side.
func (d *Dock) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefDockSide, d.side)
}
