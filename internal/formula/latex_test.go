package formula

import "testing"

func TestToLaTeX(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"number", "42", "42"},
		{"addition", "1+2", "1 + 2"},
		{"multiplication", "a*b", `a \times b`},
		{"fraction", "1/2", `\frac{1}{2}`},
		{"nested fraction", "1/2/3", `\frac{\frac{1}{2}}{3}`},
		{"power", "x^2", "x^{2}"},
		{"right assoc power", "x^2^3", "x^{2^{3}}"},
		{"sqrt", "sqrt(2)", `\sqrt{2}`},
		{"sin", "sin(x)", `\sin\left(x\right)`},
		{"pi", "pi*r^2", `\pi \times r^{2}`},
		{"parens", "(1+2)*3", `\left(1 + 2\right) \times 3`},
		{"paren fraction", "(a+b)/c", `\frac{\left(a + b\right)}{c}`},
		{"unary minus", "-x", "-x"},
		{"whitespace ignored", " 1 + 2 ", "1 + 2"},
		{"decimal", "3.14*r", `3.14 \times r`},
		{"mixed", "sin(x)/cos(x)", `\frac{\sin\left(x\right)}{\cos\left(x\right)}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLaTeX(tt.expr)
			if err != nil {
				t.Fatalf("ToLaTeX(%q) error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ToLaTeX(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestToLaTeXErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unbalanced paren", "(1+2"},
		{"trailing operator", "1+"},
		{"unknown function", "foo(2)"},
		{"bad character", "1 # 2"},
		{"dangling close", "1+2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToLaTeX(tt.expr); err == nil {
				t.Errorf("ToLaTeX(%q) expected error", tt.expr)
			}
		})
	}
}
