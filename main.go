package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2/app"

	"deskdash/internal/cli"
	"deskdash/internal/config"
	"deskdash/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		os.Exit(1)
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		settings := loadSettings("")
		a := app.NewWithID("com.deskdash.app")
		win := ui.BuildMainWindow(a, settings)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := runCLI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(cfg *cli.Config) error {
	settings := loadSettings(cfg.SettingsPath)

	if cfg.Expr != "" {
		state, err := cli.EvalExpression(cfg.Expr)
		if err != nil {
			return err
		}
		cli.PrintResult(state)

		if cfg.OutputCSV != "" {
			if err := cli.ExportResult(cfg.OutputCSV, state); err != nil {
				return err
			}
			fmt.Printf("Appended to %s\n", cfg.OutputCSV)
		}
		return nil
	}

	// Pomodoro mode: count down until interrupted.
	work := time.Duration(cfg.FocusMinutes) * time.Minute
	rest := time.Duration(cfg.RestMinutes) * time.Minute
	if rest == 0 {
		rest = time.Duration(settings.Pomodoro.BreakMinutes) * time.Minute
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.RunPomodoro(ctx, work, rest)
}

// loadSettings reads the YAML settings file, falling back to defaults
// when it is absent or the config directory is unavailable.
func loadSettings(path string) config.Settings {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default()
		}
		path = defaultPath
	}

	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.Default()
	}
	return settings
}
