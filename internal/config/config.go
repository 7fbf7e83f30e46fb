// Package config loads the optional YAML settings file used as defaults
// by both GUI and CLI modes.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the persisted dashboard defaults.
type Settings struct {
	Pomodoro PomodoroSettings `yaml:"pomodoro"`
	OCR      OCRSettings      `yaml:"ocr"`
}

// PomodoroSettings are the default session lengths in minutes.
type PomodoroSettings struct {
	WorkMinutes  int `yaml:"workMinutes"`
	BreakMinutes int `yaml:"breakMinutes"`
}

// OCRSettings configure the recognition engines.
type OCRSettings struct {
	TesseractPath string `yaml:"tesseractPath"`
	Language      string `yaml:"language"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Pomodoro: PomodoroSettings{WorkMinutes: 25, BreakMinutes: 5},
		OCR:      OCRSettings{TesseractPath: "tesseract", Language: "eng"},
	}
}

// DefaultPath returns the settings file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "deskdash", "settings.yaml"), nil
}

// Load reads settings from path. A missing file returns the defaults
// without an error; a malformed file is an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return s.normalized(), nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// normalized replaces out-of-range values with defaults.
func (s Settings) normalized() Settings {
	def := Default()
	if s.Pomodoro.WorkMinutes < 1 {
		s.Pomodoro.WorkMinutes = def.Pomodoro.WorkMinutes
	}
	if s.Pomodoro.BreakMinutes < 1 {
		s.Pomodoro.BreakMinutes = def.Pomodoro.BreakMinutes
	}
	if s.OCR.TesseractPath == "" {
		s.OCR.TesseractPath = def.OCR.TesseractPath
	}
	if s.OCR.Language == "" {
		s.OCR.Language = def.OCR.Language
	}
	return s
}
