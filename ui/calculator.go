package ui

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"deskdash/internal/calc"
	"deskdash/internal/export"
	"deskdash/internal/model"
)

// CalculatorPanel is the calculator widget: keypad, two-line display and
// calculation history. All arithmetic lives in the calc engine; the
// panel only feeds it key presses and renders the returned state.
type CalculatorPanel struct {
	state calc.State

	primary   *canvas.Text
	secondary *canvas.Text
	history   *HistoryView
	status    *widget.Label

	win       fyne.Window
	container *fyne.Container
}

// NewCalculatorPanel creates the calculator panel.
func NewCalculatorPanel(win fyne.Window) *CalculatorPanel {
	p := &CalculatorPanel{
		state: calc.NewState(),
		win:   win,
	}

	p.primary = canvas.NewText("0", theme.Color(theme.ColorNameForeground))
	p.primary.TextSize = 34
	p.primary.Alignment = fyne.TextAlignTrailing

	p.secondary = canvas.NewText(" ", theme.Color(theme.ColorNamePlaceHolder))
	p.secondary.TextSize = 16
	p.secondary.Alignment = fyne.TextAlignTrailing

	p.history = NewHistoryView()
	p.status = widget.NewLabel("")

	display := container.NewVBox(p.secondary, p.primary)

	keypad := container.NewGridWithColumns(4,
		p.controlKey("AC", calc.KeyClear),
		p.controlKey("⌫", calc.KeyBackspace),
		p.controlKey("+/-", calc.KeySign),
		p.operatorKey("÷", calc.KeyDivide),

		p.digitKey("7"), p.digitKey("8"), p.digitKey("9"),
		p.operatorKey("×", calc.KeyMultiply),

		p.digitKey("4"), p.digitKey("5"), p.digitKey("6"),
		p.operatorKey("−", calc.KeySubtract),

		p.digitKey("1"), p.digitKey("2"), p.digitKey("3"),
		p.operatorKey("+", calc.KeyAdd),

		p.hexPeekKey(),
		p.digitKey("0"),
		p.controlKey(".", calc.KeyDecimal),
		p.operatorKey("=", calc.KeyEquals),
	)

	exportBtn := widget.NewButtonWithIcon("Export History", theme.DocumentSaveIcon(), p.onExport)

	left := container.NewBorder(display, nil, nil, nil, keypad)
	right := container.NewBorder(nil, container.NewVBox(exportBtn, p.status), nil, nil, p.history.Container())

	split := container.NewHSplit(left, right)
	split.SetOffset(0.55)

	p.container = container.NewStack(split)
	return p
}

// Container returns the panel's root container.
func (p *CalculatorPanel) Container() *fyne.Container {
	return p.container
}

func (p *CalculatorPanel) digitKey(d string) *KeypadButton {
	return NewKeypadButton(d, digitKeyColor, func() { p.press(calc.Key(d)) })
}

func (p *CalculatorPanel) operatorKey(label string, k calc.Key) *KeypadButton {
	return NewKeypadButton(label, operatorKeyColor, func() { p.press(k) })
}

func (p *CalculatorPanel) controlKey(label string, k calc.Key) *KeypadButton {
	return NewKeypadButton(label, controlKeyColor, func() { p.press(k) })
}

// hexPeekKey shows the current value in hexadecimal while held and
// restores the decimal display on release.
func (p *CalculatorPanel) hexPeekKey() *HoldButton {
	return NewHoldButton("0x", controlKeyColor,
		func() { p.press(calc.KeyPeekOn) },
		func() { p.press(calc.KeyPeekOff) },
	)
}

// press feeds one key into the engine and refreshes the display. A grown
// history means an equals press completed a calculation, which is also
// recorded in the timestamped history table.
func (p *CalculatorPanel) press(k calc.Key) {
	before := len(p.state.History)
	p.state = calc.Handle(p.state, k)

	if len(p.state.History) > before {
		p.history.AddEntry(model.EntryFromLine(time.Now(), p.state.History[0]))
	}
	p.refresh()
}

func (p *CalculatorPanel) refresh() {
	v := calc.Render(p.state)
	p.primary.Text = v.Primary
	secondary := v.Secondary
	if secondary == "" {
		secondary = " " // keep the display height stable
	}
	p.secondary.Text = secondary
	p.primary.Refresh()
	p.secondary.Refresh()
}

func (p *CalculatorPanel) onExport() {
	entries := p.history.Entries()
	if len(entries) == 0 {
		p.status.SetText("No calculations to export.")
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteCSV(path, entries); exportErr != nil {
			p.status.SetText(fmt.Sprintf("CSV export error: %v", exportErr))
			return
		}
		p.status.SetText(fmt.Sprintf("Exported %d calculations to %s", len(entries), path))

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if exportErr := export.WriteTXT(txtPath, entries); exportErr != nil {
			p.status.SetText(fmt.Sprintf("TXT export error: %v", exportErr))
		}
	}, p.win)
}
