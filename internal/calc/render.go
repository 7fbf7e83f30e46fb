package calc

// ErrDisplay is the fixed message shown in place of a result after a
// division by zero.
const ErrDisplay = "Cannot divide by zero"

// View is the render-ready projection of a State, consumed by whatever
// surface draws the calculator.
type View struct {
	Primary   string   // the active value (or error message / hex peek)
	Secondary string   // the armed left side of the chain, e.g. "8 ×"
	History   []string // completed expressions, most recent first
}

// Render projects a state for display. It never changes the state: hex
// peek in particular is purely a rendering concern.
func Render(s State) View {
	v := View{History: s.History}

	if s.Pending != OpNone {
		left := s.Acc
		if left == "" {
			left = "0"
		}
		v.Secondary = left + " " + s.Pending.Glyph()
	}

	if s.Err {
		v.Primary = ErrDisplay
		return v
	}

	active := s.Operand
	if active == "" {
		active = s.Acc
	}
	if active == "" {
		active = "0"
	}

	if s.HexPeek {
		v.Primary = HexString(Value(active))
		return v
	}
	v.Primary = active
	return v
}
