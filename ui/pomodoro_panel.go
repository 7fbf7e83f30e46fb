package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"deskdash/internal/pomodoro"
)

// PomodoroPanel shows the work/break countdown with configurable session
// lengths. The countdown itself runs in the pomodoro.Timer; the panel
// only renders tick callbacks.
type PomodoroPanel struct {
	timer  *pomodoro.Timer
	paused bool

	clock      *canvas.Text
	phaseLabel *widget.Label
	workEntry  *widget.Entry
	breakEntry *widget.Entry
	startBtn   *widget.Button
	pauseBtn   *widget.Button
	resetBtn   *widget.Button
	status     *widget.Label

	container *fyne.Container
}

// NewPomodoroPanel creates the pomodoro panel around an already-running
// timer loop.
func NewPomodoroPanel(timer *pomodoro.Timer) *PomodoroPanel {
	p := &PomodoroPanel{timer: timer}

	p.clock = canvas.NewText(pomodoro.FormatClock(timer.Remaining()), theme.Color(theme.ColorNameForeground))
	p.clock.TextSize = 56
	p.clock.Alignment = fyne.TextAlignCenter

	p.phaseLabel = widget.NewLabelWithStyle(timer.Phase().String(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	p.workEntry = widget.NewEntry()
	p.workEntry.SetText(strconv.Itoa(int(timer.Remaining() / time.Minute)))
	p.breakEntry = widget.NewEntry()
	p.breakEntry.SetText("5")

	p.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), p.onStart)
	p.pauseBtn = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), p.onPause)
	p.pauseBtn.Disable()
	p.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), p.onReset)

	p.status = widget.NewLabel("")

	timer.OnTick = func(phase pomodoro.Phase, remaining time.Duration) {
		fyne.Do(func() {
			p.clock.Text = pomodoro.FormatClock(remaining)
			p.clock.Refresh()
			p.phaseLabel.SetText(phase.String())
		})
	}
	timer.OnPhaseEnd = func(next pomodoro.Phase) {
		fyne.Do(func() {
			p.status.SetText(fmt.Sprintf("%s session started", next))
		})
	}

	form := container.NewGridWithColumns(4,
		widget.NewLabel("Work (min)"), p.workEntry,
		widget.NewLabel("Break (min)"), p.breakEntry,
	)
	buttons := container.NewHBox(p.startBtn, p.pauseBtn, p.resetBtn)

	p.container = container.NewVBox(
		p.phaseLabel,
		p.clock,
		form,
		container.NewCenter(buttons),
		p.status,
	)
	return p
}

// Container returns the panel's root container.
func (p *PomodoroPanel) Container() *fyne.Container {
	return p.container
}

func (p *PomodoroPanel) onStart() {
	// Resuming from pause keeps the current countdown; otherwise the
	// timer is (re)configured from the form so edits take effect.
	if !p.paused {
		work, err := parseMinutes(p.workEntry.Text, "work length")
		if err != nil {
			p.status.SetText(err.Error())
			return
		}
		brk, err := parseMinutes(p.breakEntry.Text, "break length")
		if err != nil {
			p.status.SetText(err.Error())
			return
		}
		p.timer.Configure(time.Duration(work)*time.Minute, time.Duration(brk)*time.Minute)
		p.clock.Text = pomodoro.FormatClock(p.timer.Remaining())
		p.clock.Refresh()
	}

	p.paused = false
	p.timer.Start()
	p.startBtn.Disable()
	p.pauseBtn.Enable()
	p.status.SetText("")
}

func (p *PomodoroPanel) onPause() {
	p.timer.Pause()
	p.paused = true
	p.startBtn.Enable()
	p.pauseBtn.Disable()
}

func (p *PomodoroPanel) onReset() {
	p.timer.Reset()
	p.paused = false
	p.startBtn.Enable()
	p.pauseBtn.Disable()
	p.clock.Text = pomodoro.FormatClock(p.timer.Remaining())
	p.clock.Refresh()
	p.phaseLabel.SetText(p.timer.Phase().String())
	p.status.SetText("")
}

// LoadPreferences restores session lengths from persistent preferences.
func (p *PomodoroPanel) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String(prefWorkMinutes); v != "" {
		p.workEntry.SetText(v)
	}
	if v := prefs.String(prefBreakMinutes); v != "" {
		p.breakEntry.SetText(v)
	}
	work := parseIntOrDefault(p.workEntry.Text, 25)
	brk := parseIntOrDefault(p.breakEntry.Text, 5)
	p.timer.Configure(time.Duration(work)*time.Minute, time.Duration(brk)*time.Minute)
	p.clock.Text = pomodoro.FormatClock(p.timer.Remaining())
	p.clock.Refresh()
}

// SavePreferences persists session lengths to preferences.
func (p *PomodoroPanel) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString(prefWorkMinutes, p.workEntry.Text)
	prefs.SetString(prefBreakMinutes, p.breakEntry.Text)
}
