package prop

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// A Model assigns a truth value to each variable in some set. A model is
// valid only if every key is a valid variable name; it may bind more
// variables than a formula uses.
type Model map[string]bool

// IsModel reports whether every key of m is a valid variable name.
func IsModel(m Model) bool {
	for name := range m {
		if !IsVariableName(name) {
			return false
		}
	}
	return true
}

// ModelVars returns the variables bound by m, sorted in ascending order. It
// panics if m is not a valid model.
func ModelVars(m Model) []string {
	if !IsModel(m) {
		panic("prop: model binds a non-variable key")
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Evaluate computes the truth value of f under m. The model must be valid
// and must bind every free variable of f; a violation is a caller error and
// panics rather than defaulting to a silently wrong value.
func Evaluate(f Formula, m Model) bool {
	if !IsModel(m) {
		panic("prop: model binds a non-variable key")
	}
	for _, v := range f.freeVars() {
		if _, ok := m[v]; !ok {
			panic(fmt.Sprintf("prop: model lacks a binding for variable %s", v))
		}
	}
	return eval(f, m)
}

func eval(f Formula, m Model) bool {
	switch f := f.(type) {
	case variable:
		return m[f.name]
	case constant:
		return f.value
	case unary:
		return !eval(f.operand, m)
	case binary:
		left := eval(f.left, m)
		right := eval(f.right, m)
		switch f.op {
		case OpAnd:
			return left && right
		case OpOr:
			return left || right
		case OpImplies:
			return !left || right
		case OpXor:
			return left != right
		case OpIff:
			return left == right
		case OpNand:
			return !(left && right)
		case OpNor:
			return !(left || right)
		}
	}
	panic("prop: invalid formula type")
}

// AllModels returns a lazy sequence of every model over the given variables,
// 2^n of them for n variables. Models are produced as if counting in binary
// with false before true, the first variable being the most significant bit:
// the first variable is false for the whole first half of the sequence. This
// is the conventional truth-table row order and other operations in this
// package (synthesis, table printing) rely on it. An empty variable list
// yields exactly one model, the empty one.
//
// The sequence is generated on demand; callers needing several passes should
// collect it with slices.Collect. AllModels panics if a name in vars is not
// a valid variable name.
func AllModels(vars []string) iter.Seq[Model] {
	for _, v := range vars {
		if !IsVariableName(v) {
			panic(fmt.Sprintf("prop: invalid variable name %q", v))
		}
	}
	n := len(vars)
	return func(yield func(Model) bool) {
		for i := 0; i < 1<<n; i++ {
			m := make(Model, n)
			for j, v := range vars {
				m[v] = i&(1<<(n-1-j)) != 0
			}
			if !yield(m) {
				return
			}
		}
	}
}

// TruthValues evaluates f under each model of the sequence, in order.
func TruthValues(f Formula, models iter.Seq[Model]) []bool {
	var values []bool
	for m := range models {
		values = append(values, Evaluate(f, m))
	}
	return values
}

// IsTautology reports whether f is true under every model over its free
// variables.
func IsTautology(f Formula) bool {
	for m := range AllModels(f.freeVars()) {
		if !Evaluate(f, m) {
			return false
		}
	}
	return true
}

// IsContradiction reports whether f is false under every model over its free
// variables.
func IsContradiction(f Formula) bool {
	for m := range AllModels(f.freeVars()) {
		if Evaluate(f, m) {
			return false
		}
	}
	return true
}

// IsSatisfiable reports whether f is true under at least one model over its
// free variables.
func IsSatisfiable(f Formula) bool {
	for m := range AllModels(f.freeVars()) {
		if Evaluate(f, m) {
			return true
		}
	}
	return false
}

// WriteTruthTable writes the truth table of f on w. Columns are the free
// variables of f in ascending order followed by the canonical text of f
// itself; rows follow the AllModels order; cells contain T or F.
func WriteTruthTable(w io.Writer, f Formula) error {
	vars := f.freeVars()
	headers := make([]string, 0, len(vars)+1)
	headers = append(headers, vars...)
	headers = append(headers, f.String())

	var sb strings.Builder
	for _, h := range headers {
		sb.WriteString("| ")
		sb.WriteString(h)
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
	for _, h := range headers {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", len(h)+2))
	}
	sb.WriteString("|\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write truth table: %v", err)
	}
	for m := range AllModels(vars) {
		var row strings.Builder
		for i, h := range headers {
			var val bool
			if i < len(vars) {
				val = m[h]
			} else {
				val = eval(f, m)
			}
			row.WriteString("|")
			row.WriteString(cell(val, len(h)))
		}
		row.WriteString("|\n")
		if _, err := io.WriteString(w, row.String()); err != nil {
			return fmt.Errorf("could not write truth table: %v", err)
		}
	}
	return nil
}

// cell centers a T or F value in a column of the given header width, with
// one extra space of padding on each side. The extra character of an even
// width goes to the right.
func cell(value bool, width int) string {
	text := "F"
	if value {
		text = "T"
	}
	left := (width - 1) / 2
	right := width - 1 - left
	return " " + strings.Repeat(" ", left) + text + strings.Repeat(" ", right) + " "
}
