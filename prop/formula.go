package prop

import (
	"fmt"
	"slices"
)

// Operator tokens, as they appear in the canonical syntax.
const (
	OpNot     = "~"
	OpAnd     = "&"
	OpOr      = "|"
	OpImplies = "->"
	OpXor     = "+"
	OpIff     = "<->"
	OpNand    = "-&"
	OpNor     = "-|"
)

// binTokens lists every binary operator token in matching order: a token
// never appears after another token it is a prefix of, so the parser can
// safely take the first match.
var binTokens = []string{OpIff, OpImplies, OpNand, OpNor, OpXor, OpAnd, OpOr}

// IsVariableName reports whether s is a valid variable name: a letter
// between 'p' and 'z' followed by zero or more decimal digits.
func IsVariableName(s string) bool {
	if s == "" || s[0] < 'p' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsConstantToken reports whether s is one of the constant tokens "T" or "F".
func IsConstantToken(s string) bool {
	return s == "T" || s == "F"
}

// IsUnaryToken reports whether s is the negation token.
func IsUnaryToken(s string) bool {
	return s == OpNot
}

// IsBinaryToken reports whether s is one of the binary operator tokens.
func IsBinaryToken(s string) bool {
	switch s {
	case OpAnd, OpOr, OpImplies, OpXor, OpIff, OpNand, OpNor:
		return true
	}
	return false
}

// A Formula is an immutable propositional formula: a variable, a constant, a
// negation or a binary operator applied to two subformulas. Formulas are
// built with Var, Const, Not, Bin and the operator helpers, or by Parse;
// every value obtained that way satisfies the package invariants and may be
// freely shared, including across goroutines.
type Formula interface {
	// String returns the canonical text of the formula. Parsing it yields a
	// formula equal to this one.
	String() string
	// Vars returns the free variables of the formula, sorted in ascending
	// order, without duplicates.
	Vars() []string

	// freeVars returns the cached sorted free-variable slice. It must not be
	// modified; Vars returns a copy instead.
	freeVars() []string
}

type variable struct {
	name string
}

type constant struct {
	value bool
}

type unary struct {
	operand Formula
	text    string
	vars    []string
}

type binary struct {
	op          string
	left, right Formula
	text        string
	vars        []string
}

// Var builds a variable formula. It panics if name is not a valid variable
// name.
func Var(name string) Formula {
	if !IsVariableName(name) {
		panic(fmt.Sprintf("prop: invalid variable name %q", name))
	}
	return variable{name}
}

// True is the constant denoting truth, printed as "T".
var True Formula = constant{true}

// False is the constant denoting falsehood, printed as "F".
var False Formula = constant{false}

// Const returns the constant formula for the given truth value.
func Const(value bool) Formula {
	if value {
		return True
	}
	return False
}

// Not builds the negation of operand. It panics if operand is nil.
func Not(operand Formula) Formula {
	if operand == nil {
		panic("prop: nil operand in negation")
	}
	return unary{
		operand: operand,
		text:    OpNot + operand.String(),
		vars:    operand.freeVars(),
	}
}

// Bin builds a binary formula with the given operator token. It panics if op
// is not a binary operator token or if an operand is nil.
func Bin(op string, left, right Formula) Formula {
	if !IsBinaryToken(op) {
		panic(fmt.Sprintf("prop: unknown binary operator %q", op))
	}
	if left == nil || right == nil {
		panic(fmt.Sprintf("prop: nil operand for binary operator %q", op))
	}
	return binary{
		op:    op,
		left:  left,
		right: right,
		text:  "(" + left.String() + op + right.String() + ")",
		vars:  mergeVars(left.freeVars(), right.freeVars()),
	}
}

// And builds the conjunction of two subformulas.
func And(left, right Formula) Formula { return Bin(OpAnd, left, right) }

// Or builds the disjunction of two subformulas.
func Or(left, right Formula) Formula { return Bin(OpOr, left, right) }

// Implies builds the implication of right by left.
func Implies(left, right Formula) Formula { return Bin(OpImplies, left, right) }

// Xor indicates exactly one of the two subformulas is true.
func Xor(left, right Formula) Formula { return Bin(OpXor, left, right) }

// Iff indicates the two subformulas have the same truth value.
func Iff(left, right Formula) Formula { return Bin(OpIff, left, right) }

// Nand indicates the two subformulas are not both true.
func Nand(left, right Formula) Formula { return Bin(OpNand, left, right) }

// Nor indicates neither subformula is true.
func Nor(left, right Formula) Formula { return Bin(OpNor, left, right) }

// Equal reports whether two formulas have the same canonical text. Two
// structurally identical trees always compare equal, and so do a formula and
// a re-parsed copy of its printed form.
func Equal(f, g Formula) bool {
	return f.String() == g.String()
}

func (v variable) String() string     { return v.name }
func (v variable) Vars() []string     { return []string{v.name} }
func (v variable) freeVars() []string { return []string{v.name} }

func (c constant) String() string {
	if c.value {
		return "T"
	}
	return "F"
}
func (c constant) Vars() []string     { return nil }
func (c constant) freeVars() []string { return nil }

func (u unary) String() string     { return u.text }
func (u unary) Vars() []string     { return slices.Clone(u.vars) }
func (u unary) freeVars() []string { return u.vars }

func (b binary) String() string     { return b.text }
func (b binary) Vars() []string     { return slices.Clone(b.vars) }
func (b binary) freeVars() []string { return b.vars }

// mergeVars merges two sorted variable slices into a fresh sorted slice
// without duplicates.
func mergeVars(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

// Operators returns the operator and constant tokens occurring in f, sorted
// in ascending order.
func Operators(f Formula) []string {
	seen := make(map[string]bool)
	collectOperators(f, seen)
	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	slices.Sort(tokens)
	return tokens
}

func collectOperators(f Formula, seen map[string]bool) {
	switch f := f.(type) {
	case variable:
	case constant:
		seen[f.String()] = true
	case unary:
		seen[OpNot] = true
		collectOperators(f.operand, seen)
	case binary:
		seen[f.op] = true
		collectOperators(f.left, seen)
		collectOperators(f.right, seen)
	default:
		panic("prop: invalid formula type")
	}
}

// SubstituteVars returns a copy of f where every variable bound in subs is
// replaced by its image. It panics if a key of subs is not a valid variable
// name.
func SubstituteVars(f Formula, subs map[string]Formula) Formula {
	for name := range subs {
		if !IsVariableName(name) {
			panic(fmt.Sprintf("prop: substitution of non-variable %q", name))
		}
	}
	return substVars(f, subs)
}

func substVars(f Formula, subs map[string]Formula) Formula {
	switch f := f.(type) {
	case variable:
		if g, ok := subs[f.name]; ok {
			return g
		}
		return f
	case constant:
		return f
	case unary:
		return Not(substVars(f.operand, subs))
	case binary:
		return Bin(f.op, substVars(f.left, subs), substVars(f.right, subs))
	default:
		panic("prop: invalid formula type")
	}
}

// SubstituteOps returns a copy of f where every operator or constant token
// bound in subs is replaced by its template formula. A template stands for
// the rewritten application with the placeholder variable p bound to the
// first operand and q bound to the second. Templates may only mention the
// variables p and q. Substitution proceeds bottom-up, so operators occurring
// inside templates are not rewritten again.
func SubstituteOps(f Formula, subs map[string]Formula) Formula {
	for token, template := range subs {
		if !IsConstantToken(token) && !IsUnaryToken(token) && !IsBinaryToken(token) {
			panic(fmt.Sprintf("prop: substitution of non-operator %q", token))
		}
		for _, v := range template.freeVars() {
			if v != "p" && v != "q" {
				panic(fmt.Sprintf("prop: template for %q uses variable %q, only p and q are allowed", token, v))
			}
		}
	}
	return substOps(f, subs)
}

func substOps(f Formula, subs map[string]Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case constant:
		if g, ok := subs[f.String()]; ok {
			return g
		}
		return f
	case unary:
		operand := substOps(f.operand, subs)
		if template, ok := subs[OpNot]; ok {
			return substVars(template, map[string]Formula{"p": operand})
		}
		return Not(operand)
	case binary:
		left := substOps(f.left, subs)
		right := substOps(f.right, subs)
		if template, ok := subs[f.op]; ok {
			return substVars(template, map[string]Formula{"p": left, "q": right})
		}
		return Bin(f.op, left, right)
	default:
		panic("prop: invalid formula type")
	}
}
