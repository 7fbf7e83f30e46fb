// Package ocr provides two interchangeable text-recognition engines: one
// shelling out to the tesseract binary and one using the bundled
// gosseract library.
package ocr

import "context"

// Engine recognizes text in an image file. Implementations run one
// recognition at a time per caller; the UI disables its trigger while a
// call is outstanding.
type Engine interface {
	// Name identifies the engine in status messages.
	Name() string
	// Recognize returns the text found in the image at path.
	Recognize(ctx context.Context, path string) (string, error)
}
