package calc

import (
	"fmt"
	"strings"
)

// Operator identifies a pending binary arithmetic operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Glyph returns the display symbol for the operator.
func (o Operator) Glyph() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

// Key identifies a calculator button. Digits are "0" through "9".
type Key string

const (
	KeyDecimal   Key = "."
	KeyAdd       Key = "+"
	KeySubtract  Key = "-"
	KeyMultiply  Key = "*"
	KeyDivide    Key = "/"
	KeyEquals    Key = "="
	KeyClear     Key = "AC"
	KeySign      Key = "+/-"
	KeyBackspace Key = "back"
	KeyPeekOn    Key = "peek-on"
	KeyPeekOff   Key = "peek-off"
)

// State is the complete calculator state. Handle never mutates its
// receiver argument; every transition produces a fresh value, so a State
// can be captured or compared safely at any point.
//
// Operand and Acc hold display-formatted strings (with thousands
// separators). The empty string stands for "nothing entered", which
// renders and computes as zero.
type State struct {
	Operand string   // number currently being typed
	Acc     string   // accumulated result of the operator chain
	Pending Operator // operator awaiting its right operand
	Err     bool     // divide-by-zero sentinel, display-only
	HexPeek bool     // transient hex display, never affects transitions
	History []string // completed expressions, most recent first
}

// NewState returns the initial zero state.
func NewState() State {
	return State{}
}

// Handle applies one button press and returns the next state. It is total
// over the key alphabet: unknown keys are no-ops.
//
// While the divide-by-zero error is showing, AC resets, a digit or decimal
// press acts as an implicit AC followed by that key, and every other key
// is swallowed after clearing the error.
func Handle(s State, k Key) State {
	if s.Err {
		switch {
		case k == KeyClear:
			return clearAll(s)
		case isDigit(k), k == KeyDecimal:
			s = clearAll(s)
		case k == KeyPeekOn, k == KeyPeekOff:
			// peek keys never acknowledge the error
			return s
		default:
			return clearAll(s)
		}
	}

	switch {
	case isDigit(k):
		return applyDigit(s, byte(k[0]))
	case k == KeyDecimal:
		return applyDecimal(s)
	case k == KeyAdd:
		return applyOperator(s, OpAdd)
	case k == KeySubtract:
		return applyOperator(s, OpSubtract)
	case k == KeyMultiply:
		return applyOperator(s, OpMultiply)
	case k == KeyDivide:
		return applyOperator(s, OpDivide)
	case k == KeyEquals:
		return applyEquals(s)
	case k == KeySign:
		return applySign(s)
	case k == KeyClear:
		return clearAll(s)
	case k == KeyBackspace:
		return applyBackspace(s)
	case k == KeyPeekOn:
		s.HexPeek = true
		return s
	case k == KeyPeekOff:
		s.HexPeek = false
		return s
	}
	return s
}

func isDigit(k Key) bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// clearAll resets the calculation but keeps the session history.
func clearAll(s State) State {
	return State{History: s.History, HexPeek: s.HexPeek}
}

func applyDigit(s State, d byte) State {
	raw := Parse(s.Operand)
	if digitCount(raw) >= MaxDigits {
		return s
	}
	if raw == "0" {
		raw = string(d)
	} else {
		raw += string(d)
	}
	s.Operand = Format(raw)
	return s
}

func applyDecimal(s State) State {
	raw := Parse(s.Operand)
	if strings.Contains(raw, ".") {
		return s
	}
	if raw == "" {
		raw = "0"
	}
	s.Operand = Format(raw + ".")
	return s
}

// applyOperator folds any fully-formed pending operation first, then
// arms the new operator. Chains evaluate strictly left to right: there is
// no ×/÷ precedence, each operator press resolves the previous one.
func applyOperator(s State, op Operator) State {
	if s.Pending != OpNone && s.Operand != "" && s.Acc != "" {
		res, ok := eval(Value(s.Acc), Value(s.Operand), s.Pending)
		if !ok {
			s.Err = true
			return s
		}
		s.Acc = FormatFloat(res)
		s.Pending = op
		s.Operand = ""
		return s
	}
	if s.Operand != "" {
		s.Acc = s.Operand
	}
	s.Pending = op
	s.Operand = ""
	return s
}

func applyEquals(s State) State {
	if s.Pending == OpNone || s.Operand == "" {
		return s
	}
	a, b := Value(s.Acc), Value(s.Operand)
	res, ok := eval(a, b, s.Pending)
	if !ok {
		s.Err = true
		return s
	}

	left := s.Acc
	if left == "" {
		left = "0"
	}
	entry := fmt.Sprintf("%s %s %s = %s", left, s.Pending.Glyph(), s.Operand, FormatFloat(res))

	history := make([]string, 0, len(s.History)+1)
	history = append(history, entry)
	history = append(history, s.History...)

	s.Acc = FormatFloat(res)
	s.Pending = OpNone
	s.Operand = ""
	s.History = history
	return s
}

// applySign negates whichever values are non-zero; zero stays zero.
func applySign(s State) State {
	if Value(s.Operand) != 0 {
		s.Operand = negate(s.Operand)
	}
	if Value(s.Acc) != 0 {
		s.Acc = negate(s.Acc)
	}
	return s
}

func negate(formatted string) string {
	raw := Parse(formatted)
	if strings.HasPrefix(raw, "-") {
		return Format(raw[1:])
	}
	return Format("-" + raw)
}

func applyBackspace(s State) State {
	raw := Parse(s.Operand)
	if raw == "" || raw == "0" {
		return s
	}
	raw = raw[:len(raw)-1]
	if raw == "" || raw == "-" {
		s.Operand = ""
		return s
	}
	s.Operand = Format(raw)
	return s
}

// eval computes a binary operation. Reports ok=false for division by a
// zero right operand, the engine's only error condition.
func eval(a, b float64, op Operator) (float64, bool) {
	switch op {
	case OpAdd:
		return a + b, true
	case OpSubtract:
		return a - b, true
	case OpMultiply:
		return a * b, true
	case OpDivide:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
	return b, true
}
