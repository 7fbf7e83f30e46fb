// Package formula converts plain arithmetic expressions into LaTeX
// markup for the formula editor panel.
package formula

import (
	"fmt"
	"strings"
	"unicode"
)

// greek maps identifier names to their LaTeX commands.
var greek = map[string]string{
	"pi":     `\pi`,
	"theta":  `\theta`,
	"alpha":  `\alpha`,
	"beta":   `\beta`,
	"gamma":  `\gamma`,
	"lambda": `\lambda`,
	"mu":     `\mu`,
	"sigma":  `\sigma`,
	"omega":  `\omega`,
}

// funcs lists recognized function names rendered with their LaTeX
// operator commands. sqrt is special-cased to \sqrt{}.
var funcs = map[string]string{
	"sin": `\sin`,
	"cos": `\cos`,
	"tan": `\tan`,
	"log": `\log`,
	"ln":  `\ln`,
}

// ToLaTeX translates an arithmetic expression into LaTeX. Supported
// syntax: numbers, identifiers, + - * / ^, parentheses, and function
// calls (sin, cos, tan, log, ln, sqrt). Division renders as \frac{}{}
// and * as \times.
func ToLaTeX(expr string) (string, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", fmt.Errorf("empty expression")
	}

	p := &parser{toks: toks}
	out, err := p.parseExpr()
	if err != nil {
		return "", err
	}
	if p.pos != len(p.toks) {
		return "", fmt.Errorf("unexpected %q", p.toks[p.pos].text)
	}
	return out, nil
}

type tokKind int

const (
	tokNumber tokKind = iota
	tokIdent
	tokOp // + - * / ^
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	rs := []rune(expr)
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(rs) && (rs[j] >= '0' && rs[j] <= '9' || rs[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(rs[i:j])})
			i = j
		case unicode.IsLetter(c):
			j := i
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, string(rs[i:j])})
			i = j
		case strings.ContainsRune("+-*/^", c):
			toks = append(toks, token{tokOp, string(c)})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (string, error) {
	left, err := p.parseTerm()
	if err != nil {
		return "", err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return "", err
		}
		left = left + " " + t.text + " " + right
	}
}

// parseTerm handles * and /. Division renders as a fraction.
func (p *parser) parseTerm() (string, error) {
	left, err := p.parsePower()
	if err != nil {
		return "", err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.parsePower()
		if err != nil {
			return "", err
		}
		if t.text == "/" {
			left = `\frac{` + left + `}{` + right + `}`
		} else {
			left = left + ` \times ` + right
		}
	}
}

// parsePower handles ^, right-associative, with a braced exponent.
func (p *parser) parsePower() (string, error) {
	base, err := p.parseUnary()
	if err != nil {
		return "", err
	}
	t, ok := p.peek()
	if !ok || t.kind != tokOp || t.text != "^" {
		return base, nil
	}
	p.pos++
	exp, err := p.parsePower()
	if err != nil {
		return "", err
	}
	return base + "^{" + exp + "}", nil
}

func (p *parser) parseUnary() (string, error) {
	t, ok := p.peek()
	if ok && t.kind == tokOp && t.text == "-" {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return "", err
		}
		return "-" + inner, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (string, error) {
	t, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("unexpected end of expression")
	}

	switch t.kind {
	case tokNumber:
		p.pos++
		return t.text, nil

	case tokIdent:
		p.pos++
		next, hasNext := p.peek()
		if hasNext && next.kind == tokLParen {
			p.pos++
			arg, err := p.parseExpr()
			if err != nil {
				return "", err
			}
			if err := p.expectRParen(); err != nil {
				return "", err
			}
			if t.text == "sqrt" {
				return `\sqrt{` + arg + `}`, nil
			}
			if cmd, known := funcs[t.text]; known {
				return cmd + `\left(` + arg + `\right)`, nil
			}
			return "", fmt.Errorf("unknown function %q", t.text)
		}
		if cmd, known := greek[t.text]; known {
			return cmd, nil
		}
		return t.text, nil

	case tokLParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return "", err
		}
		if err := p.expectRParen(); err != nil {
			return "", err
		}
		return `\left(` + inner + `\right)`, nil
	}

	return "", fmt.Errorf("unexpected %q", t.text)
}

func (p *parser) expectRParen() error {
	t, ok := p.peek()
	if !ok || t.kind != tokRParen {
		return fmt.Errorf("missing closing parenthesis")
	}
	p.pos++
	return nil
}
