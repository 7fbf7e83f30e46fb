package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLIEngine recognizes text by running the tesseract binary.
type CLIEngine struct {
	BinaryPath string // path to tesseract binary
	Language   string // tesseract language code, e.g. "eng"
}

// NewCLIEngine creates a CLI engine with defaults for empty fields.
func NewCLIEngine(binary, language string) *CLIEngine {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	return &CLIEngine{BinaryPath: binary, Language: language}
}

// Name identifies the engine in status messages.
func (e *CLIEngine) Name() string {
	return "tesseract"
}

// Args builds the command-line arguments for recognizing path. Output
// goes to stdout so no temp files are left behind.
func (e *CLIEngine) Args(path string) []string {
	return []string{path, "stdout", "-l", e.Language}
}

// Recognize runs tesseract on the image and returns the recognized text.
func (e *CLIEngine) Recognize(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, e.BinaryPath, e.Args(path)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CheckBinary probes the tesseract binary and returns its version line.
// Call it before the first recognition to produce a friendly error when
// the binary is missing.
func CheckBinary(binary string) (string, error) {
	if binary == "" {
		binary = "tesseract"
	}
	out, err := exec.Command(binary, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract not available at %q: %w", binary, err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line), nil
}
