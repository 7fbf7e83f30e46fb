package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/atotto/clipboard"

	"deskdash/internal/swatch"
)

// ColorPanel lets the user pick a color and copy its hex/RGB notation.
type ColorPanel struct {
	current color.Color

	preview  *canvas.Rectangle
	hexLabel *widget.Label
	rgbLabel *widget.Label
	hexEntry *widget.Entry
	status   *widget.Label

	win       fyne.Window
	container *fyne.Container
}

// NewColorPanel creates the color sampler panel.
func NewColorPanel(win fyne.Window) *ColorPanel {
	p := &ColorPanel{
		current: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		win:     win,
	}

	p.preview = canvas.NewRectangle(p.current)
	p.preview.SetMinSize(fyne.NewSize(120, 120))
	p.preview.CornerRadius = theme.InputRadiusSize()

	p.hexLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	p.rgbLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})

	p.hexEntry = widget.NewEntry()
	p.hexEntry.SetPlaceHolder("#RRGGBB")
	p.hexEntry.OnSubmitted = p.onHexEntered

	p.status = widget.NewLabel("")

	pickBtn := widget.NewButtonWithIcon("Pick Color…", theme.ColorPaletteIcon(), p.onPick)
	copyHexBtn := widget.NewButtonWithIcon("Copy Hex", theme.ContentCopyIcon(), func() {
		p.copyToClipboard(swatch.Hex(p.current))
	})
	copyRGBBtn := widget.NewButtonWithIcon("Copy RGB", theme.ContentCopyIcon(), func() {
		p.copyToClipboard(swatch.RGB(p.current))
	})

	p.container = container.NewVBox(
		container.NewCenter(p.preview),
		p.hexLabel,
		p.rgbLabel,
		container.NewCenter(container.NewHBox(pickBtn, copyHexBtn, copyRGBBtn)),
		widget.NewSeparator(),
		widget.NewLabel("Or enter a hex value:"),
		p.hexEntry,
		p.status,
	)

	p.setColor(p.current)
	return p
}

// Container returns the panel's root container.
func (p *ColorPanel) Container() *fyne.Container {
	return p.container
}

func (p *ColorPanel) onPick() {
	dialog.ShowColorPicker("Pick a color", "", func(c color.Color) {
		p.setColor(c)
	}, p.win)
}

func (p *ColorPanel) onHexEntered(s string) {
	c, err := swatch.ParseHex(s)
	if err != nil {
		p.status.SetText(err.Error())
		return
	}
	p.setColor(c)
	p.status.SetText("")
}

func (p *ColorPanel) setColor(c color.Color) {
	p.current = c
	p.preview.FillColor = c
	p.preview.Refresh()
	p.hexLabel.SetText(swatch.Hex(c))
	p.rgbLabel.SetText(swatch.RGB(c))
}

func (p *ColorPanel) copyToClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		p.status.SetText(fmt.Sprintf("Clipboard error: %v", err))
		return
	}
	p.status.SetText(fmt.Sprintf("Copied %s", s))
}

// LoadPreferences restores the last picked color.
func (p *ColorPanel) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String(prefLastColor); v != "" {
		if c, err := swatch.ParseHex(v); err == nil {
			p.setColor(c)
		}
	}
}

// SavePreferences persists the current color.
func (p *ColorPanel) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefLastColor, swatch.Hex(p.current))
}
