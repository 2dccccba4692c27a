package formula

import "errors"

// ValidationResult reports whether an expression is safe to bind to live
// payroll data, and which variables it references that are unavailable
type ValidationResult struct {
	Valid            bool
	MissingVariables []string
	Err              error
}

// Validate checks an expression before it is stored as a salary or KPI rule.
// It extracts every identifier the expression references, reports those not in
// available, and dry-runs the expression with every variable set to one so
// pure syntax errors surface here rather than during a payroll run.
func Validate(expression string, available []string) ValidationResult {
	identifiers := ExtractVariables(expression)

	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}

	var missing []string
	ones := make(Context, len(identifiers))
	for _, name := range identifiers {
		ones[name] = 1
		if !known[name] {
			missing = append(missing, name)
		}
	}

	if _, err := Evaluate(expression, ones); err != nil {
		// A zero divisor under the all-ones substitution can be an artifact
		// of the substitution (days-1 with days=1) rather than of the rule;
		// it is only fatal when the expression has no variables to blame.
		if len(identifiers) == 0 || !errors.Is(err, ErrDivideByZero) {
			return ValidationResult{MissingVariables: missing, Err: err}
		}
	}
	if len(missing) > 0 {
		return ValidationResult{MissingVariables: missing}
	}
	return ValidationResult{Valid: true}
}

// ExtractVariables returns the distinct identifiers referenced by the
// expression, in order of first appearance. Both bare and brace-wrapped
// references are recognized through the same tokenization as Evaluate.
func ExtractVariables(expression string) []string {
	src := []rune(stripWhitespace(expression))

	var names []string
	seen := make(map[string]bool)
	pos := 0
	for pos < len(src) {
		c := src[pos]
		if !isIdentStart(c) && c != '{' {
			pos++
			continue
		}
		if c == '{' {
			pos++
			if pos >= len(src) || !isIdentStart(src[pos]) {
				continue
			}
		}
		start := pos
		pos++
		for pos < len(src) && isIdentPart(src[pos]) {
			pos++
		}
		name := string(src[start:pos])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
