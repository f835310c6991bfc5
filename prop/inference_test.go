package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rule(conclusion string, assumptions ...string) InferenceRule {
	parsed := make([]Formula, len(assumptions))
	for i, a := range assumptions {
		parsed[i] = MustParse(a)
	}
	return NewInferenceRule(parsed, MustParse(conclusion))
}

func TestIsSound(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rule  InferenceRule
		sound bool
	}{
		{rule("q", "p"), false},
		{rule("p", "p"), true},
		{rule("q", "p", "(p->q)"), true},   // modus ponens
		{rule("~p", "(p->q)", "~q"), true}, // modus tollens
		{rule("(p|q)", "p"), true},
		{rule("p", "(p|q)"), false},
		{rule("q", "(p&~p)"), true}, // vacuously sound: no model satisfies the assumption
		{rule("(p|~p)"), true},
		{rule("p"), false},
		{rule("r", "(p->q)", "(q->r)", "p"), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.sound, IsSound(tt.rule), "rule %v", tt.rule)
	}
}

func TestEvaluateInference(t *testing.T) {
	t.Parallel()
	mp := rule("q", "p", "(p->q)")
	assert.True(t, EvaluateInference(mp, Model{"p": true, "q": true}))
	// A falsified assumption satisfies the rule vacuously.
	assert.True(t, EvaluateInference(mp, Model{"p": false, "q": false}))
	// All assumptions true, conclusion false.
	bad := rule("q", "p")
	assert.False(t, EvaluateInference(bad, Model{"p": true, "q": false}))
}

func TestInferenceRuleVars(t *testing.T) {
	t.Parallel()
	r := rule("(r->p)", "(q&s)", "~q")
	assert.Equal(t, []string{"p", "q", "r", "s"}, r.Vars())
}

func TestInferenceRuleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "p, (p->q) ==> q", rule("q", "p", "(p->q)").String())
	assert.Equal(t, " ==> (p|~p)", rule("(p|~p)").String())
}

func TestInferenceRuleImmutable(t *testing.T) {
	t.Parallel()
	assumptions := []Formula{MustParse("p")}
	r := NewInferenceRule(assumptions, MustParse("q"))
	assumptions[0] = MustParse("z")
	assert.Equal(t, "p", r.Assumptions()[0].String())
	r.Assumptions()[0] = MustParse("z")
	assert.Equal(t, "p", r.Assumptions()[0].String())
}

func TestNewInferenceRulePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewInferenceRule(nil, nil) })
	assert.Panics(t, func() { NewInferenceRule([]Formula{nil}, MustParse("p")) })
}
