package cli

import (
	"flag"
	"fmt"
	"os"
)

// Config holds the parsed command-line options.
type Config struct {
	Expr         string // expression to evaluate
	OutputCSV    string // optional CSV export path for the result
	FocusMinutes int    // terminal pomodoro work length
	RestMinutes  int    // terminal pomodoro break length
	SettingsPath string // alternate settings file
}

// ParseFlags parses command-line arguments. Returns a nil config when the
// GUI should run (no arguments) or when help was requested.
func ParseFlags() (*Config, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &Config{}

	fs := flag.NewFlagSet("deskdash", flag.ContinueOnError)

	fs.StringVar(&cfg.Expr, "e", "", "Expression to evaluate (e.g. \"1+2*3\")")
	fs.StringVar(&cfg.Expr, "expr", "", "Expression to evaluate (e.g. \"1+2*3\")")
	fs.StringVar(&cfg.OutputCSV, "o", "", "Append the calculation to a CSV file")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Append the calculation to a CSV file")
	fs.IntVar(&cfg.FocusMinutes, "focus", 0, "Run a terminal pomodoro with this work length in minutes")
	fs.IntVar(&cfg.RestMinutes, "rest", 0, "Break length in minutes for -focus mode")
	fs.StringVar(&cfg.SettingsPath, "settings", "", "Alternate settings file path")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Expr == "" && cfg.FocusMinutes == 0 {
		fmt.Fprintf(os.Stderr, "Error: must provide -e <expression> or -focus <minutes>\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `deskdash — desktop productivity dashboard

Usage: deskdash              (GUI mode)
       deskdash [flags]      (terminal mode)
       deskdash help         (show this message)

CALCULATOR MODE:
  -e, -expr <expression>   Evaluate an arithmetic expression and exit.
                           Operators chain left to right with no
                           precedence, exactly like the GUI keypad:
                           "5+3*2" is (5+3)*2 = 16.
  -o, -output <file.csv>   Append the calculation to a CSV history file

POMODORO MODE:
  -focus <minutes>         Run a work/break countdown in the terminal
  -rest <minutes>          Break length (default from settings file)

GENERAL:
  -settings <path>         Alternate settings file location

Examples:
  deskdash -e "12.5*3"
  deskdash -e "1000/8" -o history.csv
  deskdash -focus 25 -rest 5
`)
}
