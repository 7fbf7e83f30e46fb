package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 760
	WindowHeight = 600
)

// OCR preview dimensions
const (
	OCRPreviewWidth  = 360
	OCRPreviewHeight = 240
)

// Preference keys shared across panels.
const (
	prefDockSide     = "dock.side"
	prefWorkMinutes  = "pomodoro.work_minutes"
	prefBreakMinutes = "pomodoro.break_minutes"
	prefLastColor    = "color.last_hex"
)

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// NewOCRPreviewSize returns the minimum size for the OCR image preview.
func NewOCRPreviewSize() fyne.Size {
	return fyne.NewSize(OCRPreviewWidth, OCRPreviewHeight)
}
