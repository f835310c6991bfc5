package prop

import (
	"fmt"
	"strings"
)

// A SyntaxError describes why a string is not a valid formula, along with the
// byte offset at which parsing failed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Parse parses the canonical representation of a formula. The whole input
// must be consumed: a string with a valid prefix but trailing text is
// rejected. Errors are of type *SyntaxError.
func Parse(s string) (Formula, error) {
	f, rest, err := parsePrefix(s, 0)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &SyntaxError{
			Offset: len(s) - len(rest),
			Msg:    fmt.Sprintf("unexpected trailing text %s", found(rest)),
		}
	}
	return f, nil
}

// MustParse is like Parse but panics on a syntax error. It simplifies tests
// and formula literals in code.
func MustParse(s string) Formula {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("prop: cannot parse formula %q: %v", s, err))
	}
	return f
}

// IsFormula reports whether s is the canonical representation of a formula.
func IsFormula(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// parsePrefix parses the longest valid formula starting at the beginning of s
// and returns it along with the unconsumed suffix. pos is the byte offset of
// s within the original input, used for diagnostics.
func parsePrefix(s string, pos int) (Formula, string, error) {
	if s == "" {
		return nil, "", &SyntaxError{pos, "expected a formula, found end of input"}
	}
	c := s[0]
	switch {
	case c >= 'p' && c <= 'z':
		i := 1
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return Var(s[:i]), s[i:], nil
	case c == 'T':
		return True, s[1:], nil
	case c == 'F':
		return False, s[1:], nil
	case c == '~':
		operand, rest, err := parsePrefix(s[1:], pos+1)
		if err != nil {
			return nil, "", err
		}
		return Not(operand), rest, nil
	case c == '(':
		left, rest, err := parsePrefix(s[1:], pos+1)
		if err != nil {
			return nil, "", err
		}
		opPos := pos + len(s) - len(rest)
		var op string
		for _, tok := range binTokens {
			if strings.HasPrefix(rest, tok) {
				op = tok
				rest = rest[len(tok):]
				break
			}
		}
		if op == "" {
			return nil, "", &SyntaxError{opPos, fmt.Sprintf("expected a binary operator, found %s", found(rest))}
		}
		right, rest, err := parsePrefix(rest, opPos+len(op))
		if err != nil {
			return nil, "", err
		}
		if !strings.HasPrefix(rest, ")") {
			return nil, "", &SyntaxError{
				Offset: pos + len(s) - len(rest),
				Msg:    fmt.Sprintf("expected ')' after second operand, found %s", found(rest)),
			}
		}
		return Bin(op, left, right), rest[1:], nil
	}
	return nil, "", &SyntaxError{pos, fmt.Sprintf("unexpected character %q", c)}
}

// found renders the start of the unconsumed input for an error message.
func found(rest string) string {
	if rest == "" {
		return "end of input"
	}
	if len(rest) > 3 {
		rest = rest[:3]
	}
	return fmt.Sprintf("%q", rest)
}
