package prop

import (
	"fmt"
	"slices"
)

// SynthesizeDNF builds a formula in disjunctive normal form whose truth table
// over the given variables is exactly values: evaluating the result under
// AllModels(vars), in order, reproduces values. values must hold one truth
// value per model, 2^len(vars) in total, and vars must not be empty; a
// violation panics.
//
// Each satisfying model contributes one conjunctive clause with a literal per
// variable in ascending order; a lone clause is returned as is, and a truth
// table with no satisfying model yields the contradiction (~v&v) built from
// the first variable.
func SynthesizeDNF(vars []string, values []bool) Formula {
	checkSynthesisArgs(vars, values)
	sorted := sortedCopy(vars)
	var clauses []Formula
	i := 0
	for m := range AllModels(vars) {
		if values[i] {
			clauses = append(clauses, minterm(sorted, m))
		}
		i++
	}
	if len(clauses) == 0 {
		v := Var(vars[0])
		return And(Not(v), v)
	}
	res := clauses[0]
	for _, c := range clauses[1:] {
		res = Or(res, c)
	}
	return res
}

// SynthesizeCNF is the dual of SynthesizeDNF: it builds a conjunctive normal
// form with the given truth table. Each falsifying model contributes one
// disjunctive clause of complemented literals, and a truth table with no
// falsifying model yields the tautology (v|~v) built from the first
// variable. Argument constraints are those of SynthesizeDNF.
func SynthesizeCNF(vars []string, values []bool) Formula {
	checkSynthesisArgs(vars, values)
	sorted := sortedCopy(vars)
	var clauses []Formula
	i := 0
	for m := range AllModels(vars) {
		if !values[i] {
			clauses = append(clauses, maxterm(sorted, m))
		}
		i++
	}
	if len(clauses) == 0 {
		v := Var(vars[0])
		return Or(v, Not(v))
	}
	res := clauses[0]
	for _, c := range clauses[1:] {
		res = And(res, c)
	}
	return res
}

func checkSynthesisArgs(vars []string, values []bool) {
	if len(vars) == 0 {
		panic("prop: cannot synthesize over an empty variable list")
	}
	if len(values) != 1<<len(vars) {
		panic(fmt.Sprintf("prop: got %d truth values for %d variables, want %d",
			len(values), len(vars), 1<<len(vars)))
	}
}

func sortedCopy(vars []string) []string {
	sorted := slices.Clone(vars)
	slices.Sort(sorted)
	return sorted
}

// minterm builds the conjunction of literals characterizing m: the variable
// itself where m binds true, its negation elsewhere. vars must be sorted.
func minterm(vars []string, m Model) Formula {
	var res Formula
	for i, v := range vars {
		lit := Var(v)
		if !m[v] {
			lit = Not(lit)
		}
		if i == 0 {
			res = lit
		} else {
			res = And(res, lit)
		}
	}
	return res
}

// maxterm builds the disjunction of literals falsified only by m: the
// variable where m binds false, its negation where m binds true. vars must
// be sorted.
func maxterm(vars []string, m Model) Formula {
	var res Formula
	for i, v := range vars {
		lit := Var(v)
		if m[v] {
			lit = Not(lit)
		}
		if i == 0 {
			res = lit
		} else {
			res = Or(res, lit)
		}
	}
	return res
}
