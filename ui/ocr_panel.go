package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/atotto/clipboard"

	"deskdash/internal/ocr"
)

type recogState int

const (
	recogIdle recogState = iota
	recogRunning
)

var imageExtensions = []string{".png", ".jpg", ".jpeg"}

// OCRPanel recognizes text in an image with one engine. The dashboard
// holds two instances, one per engine, so the results can be compared.
type OCRPanel struct {
	mu     sync.Mutex
	state  recogState
	cancel context.CancelFunc

	engine    ocr.Engine
	imagePath string

	preview      *canvas.Image
	openBtn      *widget.Button
	recognizeBtn *widget.Button
	cancelBtn    *widget.Button
	copyBtn      *widget.Button
	result       *readOnlyEntry
	status       *widget.Label

	win       fyne.Window
	container *fyne.Container
}

// NewOCRPanel creates a recognition panel for one engine.
func NewOCRPanel(win fyne.Window, engine ocr.Engine) *OCRPanel {
	p := &OCRPanel{
		engine: engine,
		win:    win,
	}

	p.preview = canvas.NewImageFromImage(nil)
	p.preview.FillMode = canvas.ImageFillContain
	p.preview.SetMinSize(NewOCRPreviewSize())

	p.openBtn = widget.NewButtonWithIcon("Open Image…", theme.FolderOpenIcon(), p.onOpen)
	p.recognizeBtn = widget.NewButtonWithIcon("Recognize", theme.SearchIcon(), p.onRecognize)
	p.recognizeBtn.Disable()
	p.cancelBtn = widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), p.onCancel)
	p.cancelBtn.Disable()
	p.copyBtn = widget.NewButtonWithIcon("Copy Text", theme.ContentCopyIcon(), p.onCopy)
	p.copyBtn.Disable()

	p.result = newReadOnlyEntry("Recognized text appears here")
	p.status = widget.NewLabel(fmt.Sprintf("Engine: %s", engine.Name()))
	p.status.Wrapping = fyne.TextWrapWord

	buttons := container.NewHBox(p.openBtn, p.recognizeBtn, p.cancelBtn, p.copyBtn)

	p.container = container.NewBorder(
		container.NewVBox(p.preview, buttons, p.status),
		nil, nil, nil,
		container.NewVScroll(p.result),
	)
	return p
}

// Container returns the panel's root container.
func (p *OCRPanel) Container() *fyne.Container {
	return p.container
}

func (p *OCRPanel) onOpen() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		p.loadImage(path)
	}, p.win)
	d.SetFilter(imageFileFilter())
	d.Show()
}

// HandleDrop loads an image dropped onto the window while this panel is
// visible. Non-image files are ignored with a status note.
func (p *OCRPanel) HandleDrop(uri fyne.URI) {
	ext := strings.ToLower(uri.Extension())
	for _, allowed := range imageExtensions {
		if ext == allowed {
			p.loadImage(uri.Path())
			return
		}
	}
	p.status.SetText(fmt.Sprintf("Unsupported file type %q", ext))
}

func (p *OCRPanel) loadImage(path string) {
	img, err := ocr.LoadImage(path)
	if err != nil {
		p.status.SetText(fmt.Sprintf("Image error: %v", err))
		return
	}

	p.imagePath = path
	p.preview.Image = ocr.Thumbnail(img, OCRPreviewWidth, OCRPreviewHeight)
	p.preview.Refresh()
	p.result.SetText("")
	p.copyBtn.Disable()
	p.recognizeBtn.Enable()
	p.status.SetText(fmt.Sprintf("Loaded %s", path))
}

// onRecognize starts a single recognition. The button stays disabled
// until the call finishes so no concurrent recognitions are started.
func (p *OCRPanel) onRecognize() {
	p.mu.Lock()
	if p.state == recogRunning {
		p.mu.Unlock()
		return
	}
	p.state = recogRunning
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.mu.Unlock()

	p.recognizeBtn.Disable()
	p.openBtn.Disable()
	p.cancelBtn.Enable()
	p.status.SetText(fmt.Sprintf("Recognizing with %s…", p.engine.Name()))

	path := p.imagePath

	go func() {
		defer p.resetState()

		text, err := p.engine.Recognize(ctx, path)
		if err != nil {
			if ctx.Err() == context.Canceled {
				p.setStatus("Recognition cancelled.")
				return
			}
			p.setStatus(fmt.Sprintf("Recognition error: %v", err))
			return
		}

		fyne.Do(func() {
			p.result.SetText(text)
			p.copyBtn.Enable()
			p.status.SetText(fmt.Sprintf("Recognized %d characters", len(text)))
		})
	}()
}

func (p *OCRPanel) onCancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *OCRPanel) onCopy() {
	if err := clipboard.WriteAll(p.result.Text); err != nil {
		p.status.SetText(fmt.Sprintf("Clipboard error: %v", err))
		return
	}
	p.status.SetText("Copied recognized text")
}

func (p *OCRPanel) setStatus(s string) {
	fyne.Do(func() {
		p.status.SetText(s)
	})
}

func (p *OCRPanel) resetState() {
	p.mu.Lock()
	p.state = recogIdle
	p.cancel = nil
	p.mu.Unlock()
	fyne.Do(func() {
		p.recognizeBtn.Enable()
		p.openBtn.Enable()
		p.cancelBtn.Disable()
	})
}

// imageFileFilter returns the open-dialog filter for supported images.
func imageFileFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter(imageExtensions)
}
