package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Keypad colors.
var (
	digitKeyColor    = color.NRGBA{R: 58, G: 58, B: 60, A: 255}
	operatorKeyColor = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	controlKeyColor  = color.NRGBA{R: 99, G: 99, B: 102, A: 255}
	keyTextColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// KeypadButton is a calculator key with a custom background color.
type KeypadButton struct {
	widget.Button
	bgColor color.Color
}

// NewKeypadButton creates a colored calculator key.
func NewKeypadButton(label string, bgColor color.Color, tapped func()) *KeypadButton {
	btn := &KeypadButton{bgColor: bgColor}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// CreateRenderer returns a custom renderer.
func (b *KeypadButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, keyTextColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = theme.TextSize() * 1.2

	return &keypadBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type keypadBtnRenderer struct {
	btn     *KeypadButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *keypadBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *keypadBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *keypadBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	if r.btn.Disabled() {
		r.bg.FillColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		r.label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	} else {
		r.bg.FillColor = r.btn.bgColor
		r.label.Color = keyTextColor
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *keypadBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *keypadBtnRenderer) Destroy()                     {}

// HoldButton is a KeypadButton with press/release callbacks, used by the
// hex-peek key: the alternate display shows only while the key is held.
// Both mouse and touch presses are handled.
type HoldButton struct {
	KeypadButton
	OnPressed  func()
	OnReleased func()
}

// NewHoldButton creates a colored key that reports press and release.
func NewHoldButton(label string, bgColor color.Color, onPressed, onReleased func()) *HoldButton {
	btn := &HoldButton{OnPressed: onPressed, OnReleased: onReleased}
	btn.Text = label
	btn.bgColor = bgColor
	btn.ExtendBaseWidget(btn)
	return btn
}

// MouseDown starts the hold.
func (b *HoldButton) MouseDown(e *desktop.MouseEvent) {
	if b.OnPressed != nil {
		b.OnPressed()
	}
}

// MouseUp ends the hold.
func (b *HoldButton) MouseUp(e *desktop.MouseEvent) {
	if b.OnReleased != nil {
		b.OnReleased()
	}
}

// TouchDown starts the hold on touch screens.
func (b *HoldButton) TouchDown(e *mobile.TouchEvent) {
	if b.OnPressed != nil {
		b.OnPressed()
	}
}

// TouchUp ends the hold.
func (b *HoldButton) TouchUp(e *mobile.TouchEvent) {
	if b.OnReleased != nil {
		b.OnReleased()
	}
}

// TouchCancel ends the hold when the gesture is interrupted.
func (b *HoldButton) TouchCancel(e *mobile.TouchEvent) {
	if b.OnReleased != nil {
		b.OnReleased()
	}
}
