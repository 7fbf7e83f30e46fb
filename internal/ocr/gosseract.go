package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// LibEngine recognizes text in-process through the gosseract bindings.
// Each call creates and closes its own client: clients are cheap relative
// to recognition itself and this keeps the engine stateless.
type LibEngine struct {
	Language string // tesseract language code, e.g. "eng"
}

// NewLibEngine creates a library engine with a default language for an
// empty code.
func NewLibEngine(language string) *LibEngine {
	if language == "" {
		language = "eng"
	}
	return &LibEngine{Language: language}
}

// Name identifies the engine in status messages.
func (e *LibEngine) Name() string {
	return "gosseract"
}

// Recognize returns the text found in the image at path.
func (e *LibEngine) Recognize(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.Language); err != nil {
		return "", fmt.Errorf("set language %q: %w", e.Language, err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return text, nil
}
