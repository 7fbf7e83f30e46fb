package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/atotto/clipboard"

	"deskdash/internal/formula"
)

// FormulaPanel converts a typed arithmetic expression to LaTeX, updating
// live on every keystroke.
type FormulaPanel struct {
	input   *widget.Entry
	output  *readOnlyEntry
	copyBtn *widget.Button
	status  *widget.Label

	container *fyne.Container
}

// NewFormulaPanel creates the formula editor panel.
func NewFormulaPanel() *FormulaPanel {
	p := &FormulaPanel{}

	p.input = widget.NewEntry()
	p.input.SetPlaceHolder("e.g. (a+b)/2 or pi*r^2")
	p.input.OnChanged = p.onChanged

	p.output = newReadOnlyEntry("LaTeX output appears here")

	p.copyBtn = widget.NewButtonWithIcon("Copy LaTeX", theme.ContentCopyIcon(), p.onCopy)
	p.copyBtn.Disable()

	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord

	p.container = container.NewVBox(
		widget.NewLabel("Expression:"),
		p.input,
		widget.NewLabel("LaTeX:"),
		p.output,
		container.NewHBox(p.copyBtn),
		p.status,
	)
	return p
}

// Container returns the panel's root container.
func (p *FormulaPanel) Container() *fyne.Container {
	return p.container
}

func (p *FormulaPanel) onChanged(expr string) {
	if expr == "" {
		p.output.SetText("")
		p.copyBtn.Disable()
		p.status.SetText("")
		return
	}

	latex, err := formula.ToLaTeX(expr)
	if err != nil {
		// Keep the previous output; partial input is expected while typing.
		p.status.SetText(err.Error())
		return
	}

	p.output.SetText(latex)
	p.copyBtn.Enable()
	p.status.SetText("")
}

func (p *FormulaPanel) onCopy() {
	if err := clipboard.WriteAll(p.output.Text); err != nil {
		p.status.SetText(fmt.Sprintf("Clipboard error: %v", err))
		return
	}
	p.status.SetText("Copied LaTeX")
}
