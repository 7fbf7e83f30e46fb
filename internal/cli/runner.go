package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"deskdash/internal/calc"
	"deskdash/internal/export"
	"deskdash/internal/model"
	"deskdash/internal/pomodoro"
)

// EvalExpression runs an expression through the calculator engine by
// replaying it as key presses. The engine's chaining semantics apply:
// strictly left to right, no operator precedence. A trailing "=" is
// implied.
func EvalExpression(expr string) (calc.State, error) {
	s := calc.NewState()
	sawEquals := false

	for _, c := range expr {
		var k calc.Key
		switch c {
		case ' ', '\t':
			continue
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			k = calc.Key(string(c))
		case '+':
			k = calc.KeyAdd
		case '-', '−':
			k = calc.KeySubtract
		case '*', 'x', '×':
			k = calc.KeyMultiply
		case '/', '÷':
			k = calc.KeyDivide
		case '=':
			k = calc.KeyEquals
			sawEquals = true
		default:
			return calc.State{}, fmt.Errorf("unsupported character %q in expression", string(c))
		}
		s = calc.Handle(s, k)
		if s.Err {
			return s, fmt.Errorf("division by zero")
		}
	}

	if !sawEquals {
		s = calc.Handle(s, calc.KeyEquals)
		if s.Err {
			return s, fmt.Errorf("division by zero")
		}
	}
	return s, nil
}

// PrintResult writes the evaluated expression and its result to stdout.
func PrintResult(s calc.State) {
	fmt.Println(FormatEval(s))
}

// ExportResult appends the most recent calculation to a CSV file.
func ExportResult(path string, s calc.State) error {
	if len(s.History) == 0 {
		return fmt.Errorf("nothing to export")
	}
	entry := model.EntryFromLine(time.Now(), s.History[0])
	if err := export.EnsureDir(path); err != nil {
		return err
	}
	return export.WriteCSV(path, []model.Entry{entry})
}

// RunPomodoro runs a terminal work/break countdown until ctx is
// cancelled, printing the remaining time in place once per second.
func RunPomodoro(ctx context.Context, work, rest time.Duration) error {
	timer := pomodoro.New()
	timer.Configure(work, rest)

	timer.OnTick = func(phase pomodoro.Phase, remaining time.Duration) {
		fmt.Printf("\r%-5s %s   ", phase, pomodoro.FormatClock(remaining))
	}
	timer.OnPhaseEnd = func(next pomodoro.Phase) {
		fmt.Printf("\n--- %s ---\n", next)
	}

	timer.Start()
	fmt.Printf("%-5s %s   ", pomodoro.PhaseWork, pomodoro.FormatClock(work))
	timer.Run(ctx)

	fmt.Println("\nStopped.")
	return nil
}

// FormatEval returns the one-line result of an evaluation, used by tests
// and status displays.
func FormatEval(s calc.State) string {
	if len(s.History) > 0 {
		return s.History[0]
	}
	return strings.TrimSpace(calc.Render(s).Primary)
}
