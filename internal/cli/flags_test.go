package cli

import (
	"os"
	"testing"
)

func TestParseFlags_NoArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"deskdash"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with no args should return nil config for GUI mode, got %v", cfg)
	}
}

func TestParseFlags_HelpFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"deskdash", "--help"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with --help should return nil config, got %v", cfg)
	}
}

func TestParseFlags_Expression(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"deskdash", "-e", "1+2", "-o", "out.csv"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.Expr != "1+2" {
		t.Errorf("Expr = %q, want 1+2", cfg.Expr)
	}
	if cfg.OutputCSV != "out.csv" {
		t.Errorf("OutputCSV = %q, want out.csv", cfg.OutputCSV)
	}
}

func TestParseFlags_Pomodoro(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"deskdash", "-focus", "25", "-rest", "5"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.FocusMinutes != 25 || cfg.RestMinutes != 5 {
		t.Errorf("pomodoro = %d/%d, want 25/5", cfg.FocusMinutes, cfg.RestMinutes)
	}
}

func TestParseFlags_MissingMode(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"deskdash", "-o", "out.csv"}

	if _, err := ParseFlags(); err == nil {
		t.Error("ParseFlags() without -e or -focus should fail")
	}
}
