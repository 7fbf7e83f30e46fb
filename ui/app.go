package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"deskdash/internal/config"
	"deskdash/internal/ocr"
	"deskdash/internal/pomodoro"
)

// Panel indices, matching the dock order.
const (
	panelPomodoro = iota
	panelCalculator
	panelColor
	panelOCRCli
	panelOCRLib
	panelFormula
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, settings config.Settings) fyne.Window {
	win := app.NewWindow("deskdash")
	win.Resize(NewWindowSize())

	timer := pomodoro.New()
	timer.Configure(
		time.Duration(settings.Pomodoro.WorkMinutes)*time.Minute,
		time.Duration(settings.Pomodoro.BreakMinutes)*time.Minute,
	)
	ctx, cancel := context.WithCancel(context.Background())
	go timer.Run(ctx)

	pomodoroPanel := NewPomodoroPanel(timer)
	calcPanel := NewCalculatorPanel(win)
	colorPanel := NewColorPanel(win)
	ocrCLIPanel := NewOCRPanel(win, ocr.NewCLIEngine(settings.OCR.TesseractPath, settings.OCR.Language))
	ocrLibPanel := NewOCRPanel(win, ocr.NewLibEngine(settings.OCR.Language))
	formulaPanel := NewFormulaPanel()

	panels := []fyne.CanvasObject{
		pomodoroPanel.Container(),
		calcPanel.Container(),
		colorPanel.Container(),
		ocrCLIPanel.Container(),
		ocrLibPanel.Container(),
		formulaPanel.Container(),
	}

	dock := NewDock([]DockItem{
		{Label: "Timer", Icon: theme.HistoryIcon()},
		{Label: "Calc", Icon: theme.GridIcon()},
		{Label: "Color", Icon: theme.ColorPaletteIcon()},
		{Label: "OCR", Icon: theme.SearchIcon()},
		{Label: "OCR (lib)", Icon: theme.DocumentIcon()},
		{Label: "Formula", Icon: theme.DocumentCreateIcon()},
	})

	prefs := app.Preferences()
	dock.LoadPreferences(prefs)
	pomodoroPanel.LoadPreferences(prefs)
	colorPanel.LoadPreferences(prefs)

	stack := container.NewStack(panels...)
	showPanel := func(index int) {
		for i, p := range panels {
			if i == index {
				p.Show()
			} else {
				p.Hide()
			}
		}
	}
	dock.OnSelect = showPanel
	showPanel(panelPomodoro)

	applyLayout := func() {
		dockBox := container.NewVBox(dock.Container())
		if dock.Side() == DockLeft {
			win.SetContent(container.NewBorder(nil, nil, dockBox, nil, stack))
		} else {
			win.SetContent(container.NewBorder(nil, nil, nil, dockBox, stack))
		}
	}
	dock.OnSideChanged = func(string) { applyLayout() }
	applyLayout()

	// Dropped images go to the visible OCR panel.
	win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}
		switch dock.Selected() {
		case panelOCRCli:
			ocrCLIPanel.HandleDrop(uris[0])
		case panelOCRLib:
			ocrLibPanel.HandleDrop(uris[0])
		}
	})

	win.SetCloseIntercept(func() {
		dock.SavePreferences(prefs)
		pomodoroPanel.SavePreferences(prefs)
		colorPanel.SavePreferences(prefs)
		cancel()
		win.Close()
	})

	return win
}
