// Package formula evaluates the restricted arithmetic expressions used by
// salary and KPI rules. Expressions reference named payroll variables and
// support +, -, *, /, unary sign and parentheses with standard precedence.
//
// Evaluation is pure: the parser carries its cursor on its own stack frame,
// mutates nothing outside it, and is safe to call concurrently.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Context maps variable names to values. Numeric kinds are used directly;
// strings (and anything else, via its printed form) must parse as a decimal
// number. A value that fails to parse is an evaluation error, never zero.
type Context map[string]any

// Evaluate parses and evaluates expression against ctx. Every referenced
// variable must resolve to a finite number. Errors wrap ErrParse,
// ErrUnknownVariable, ErrBadVariable or ErrDivideByZero.
func Evaluate(expression string, ctx Context) (float64, error) {
	p := parser{src: []rune(stripWhitespace(expression)), ctx: ctx}
	if len(p.src) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrParse)
	}

	result, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrParse, string(p.src[p.pos]), p.pos)
	}
	return result, nil
}

// parser is a recursive-descent parser over an explicit cursor. Nesting depth
// is bounded by input length: every descent first consumes at least one rune.
type parser struct {
	src []rune
	pos int
	ctx Context
}

// parseExpression handles '+' and '-' at the lowest precedence level
func (p *parser) parseExpression() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.pos < len(p.src) {
		op := p.src[p.pos]
		if op != '+' && op != '-' {
			break
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

// parseTerm handles '*' and '/'
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for p.pos < len(p.src) {
		op := p.src[p.pos]
		if op != '*' && op != '/' {
			break
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("%w: at position %d", ErrDivideByZero, p.pos)
			}
			left /= right
		}
	}
	return left, nil
}

// parseFactor handles numbers, identifiers, parentheses and unary sign
func (p *parser) parseFactor() (float64, error) {
	if p.pos >= len(p.src) {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrParse)
	}

	switch c := p.src[p.pos]; {
	case c == '+':
		p.pos++
		return p.parseFactor()

	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil

	case c == '(':
		p.pos++
		v, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return 0, fmt.Errorf("%w: missing closing parenthesis", ErrParse)
		}
		p.pos++
		return v, nil

	case c >= '0' && c <= '9':
		return p.parseNumber()

	case c == '{':
		// Template-authored variable reference: {name}
		p.pos++
		name, err := p.parseIdentifier()
		if err != nil {
			return 0, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != '}' {
			return 0, fmt.Errorf("%w: missing closing brace", ErrParse)
		}
		p.pos++
		return p.resolve(name)

	case isIdentStart(c):
		name, err := p.parseIdentifier()
		if err != nil {
			return 0, err
		}
		return p.resolve(name)

	default:
		return 0, fmt.Errorf("%w: invalid character %q at position %d", ErrParse, string(c), p.pos)
	}
}

// parseNumber consumes a decimal literal: digits with at most one dot.
// Exponent and hex forms are not part of the grammar.
func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	sawDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			if sawDot {
				return 0, fmt.Errorf("%w: invalid number at position %d", ErrParse, start)
			}
			sawDot = true
			p.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}

	literal := string(p.src[start:p.pos])
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number %q at position %d", ErrParse, literal, start)
	}
	return v, nil
}

func (p *parser) parseIdentifier() (string, error) {
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		return "", fmt.Errorf("%w: expected identifier at position %d", ErrParse, p.pos)
	}
	start := p.pos
	p.pos++
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos]), nil
}

// resolve looks up a variable and coerces it to a finite float64
func (p *parser) resolve(name string) (float64, error) {
	raw, ok := p.ctx[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return coerce(name, raw)
}

func coerce(name string, raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%q", ErrBadVariable, name, x)
		}
		v = parsed
	default:
		// Booleans and any other kind go through the same numeric parse as
		// strings; a value that does not read as a number is an error.
		parsed, err := strconv.ParseFloat(fmt.Sprint(raw), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s=%v", ErrBadVariable, name, raw)
		}
		v = parsed
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrBadVariable, name)
	}
	return v, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
