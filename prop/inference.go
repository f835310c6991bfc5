package prop

import (
	"slices"
	"strings"
)

// An InferenceRule is an ordered list of assumption formulas together with a
// conclusion. Assumption order matters only for display; duplicates are
// permitted. Rules are immutable once constructed.
type InferenceRule struct {
	assumptions []Formula
	conclusion  Formula
}

// NewInferenceRule builds an inference rule. It panics if the conclusion or
// any assumption is nil.
func NewInferenceRule(assumptions []Formula, conclusion Formula) InferenceRule {
	if conclusion == nil {
		panic("prop: nil conclusion in inference rule")
	}
	for _, a := range assumptions {
		if a == nil {
			panic("prop: nil assumption in inference rule")
		}
	}
	return InferenceRule{
		assumptions: slices.Clone(assumptions),
		conclusion:  conclusion,
	}
}

// Assumptions returns the assumptions of the rule, in order.
func (r InferenceRule) Assumptions() []Formula {
	return slices.Clone(r.assumptions)
}

// Conclusion returns the conclusion of the rule.
func (r InferenceRule) Conclusion() Formula {
	return r.conclusion
}

// Vars returns the union of free variables across the assumptions and the
// conclusion, sorted in ascending order.
func (r InferenceRule) Vars() []string {
	vars := r.conclusion.Vars()
	for _, a := range r.assumptions {
		vars = mergeVars(vars, a.freeVars())
	}
	return vars
}

func (r InferenceRule) String() string {
	var sb strings.Builder
	for i, a := range r.assumptions {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteString(" ==> ")
	sb.WriteString(r.conclusion.String())
	return sb.String()
}

// EvaluateInference computes the truth value of the rule under m: true when
// some assumption is false (the rule is vacuously respected) or when all
// assumptions and the conclusion are true. The model must bind every free
// variable of the rule.
func EvaluateInference(r InferenceRule, m Model) bool {
	for _, a := range r.assumptions {
		if !Evaluate(a, m) {
			return true
		}
	}
	return Evaluate(r.conclusion, m)
}

// IsSound reports whether the rule holds under every model over its
// variables, i.e. whether the conclusion is true whenever all assumptions
// are. The check enumerates all models exhaustively; rules in this domain
// involve few variables.
func IsSound(r InferenceRule) bool {
	for m := range AllModels(r.Vars()) {
		if !EvaluateInference(r, m) {
			return false
		}
	}
	return true
}
