package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conversions maps each target basis to its conversion and to the tokens the
// result is allowed to contain.
var conversions = []struct {
	name    string
	convert func(Formula) Formula
	allowed map[string]bool
}{
	{"ToNotAndOr", ToNotAndOr, map[string]bool{OpNot: true, OpAnd: true, OpOr: true}},
	{"ToNotAnd", ToNotAnd, map[string]bool{OpNot: true, OpAnd: true}},
	{"ToNand", ToNand, map[string]bool{OpNand: true}},
	{"ToImpliesNot", ToImpliesNot, map[string]bool{OpImplies: true, OpNot: true}},
	{"ToImpliesFalse", ToImpliesFalse, map[string]bool{OpImplies: true, "F": true}},
}

var conversionInputs = []string{
	"p",
	"~p",
	"T",
	"F",
	"(p&q)",
	"(p|q)",
	"(p->q)",
	"(p+q)",
	"(p<->q)",
	"(p-&q)",
	"(p-|q)",
	"~(p&q76)",
	"((p->q)<->(~q->~p))",
	"((T|x)&(y+F))",
	"(~(p|q)-&(r->s))",
	"((p-|q)+~(p<->r))",
}

func TestConversionsRestrictVocabulary(t *testing.T) {
	t.Parallel()
	for _, conv := range conversions {
		for _, input := range conversionInputs {
			g := conv.convert(MustParse(input))
			for _, tok := range Operators(g) {
				assert.True(t, conv.allowed[tok],
					"%s(%q) = %q uses forbidden token %q", conv.name, input, g, tok)
			}
		}
	}
}

func TestConversionsPreserveSemantics(t *testing.T) {
	t.Parallel()
	for _, conv := range conversions {
		for _, input := range conversionInputs {
			f := MustParse(input)
			g := conv.convert(f)
			// The converted formula can only gain the reserved constant
			// variable, never lose one of the original variables.
			for m := range AllModels(g.Vars()) {
				require.Equal(t, Evaluate(f, m), Evaluate(g, m),
					"%s(%q) = %q differs under %v", conv.name, input, g, m)
			}
		}
	}
}

func TestConversionsAreIdempotent(t *testing.T) {
	t.Parallel()
	for _, conv := range conversions {
		for _, input := range conversionInputs {
			g := conv.convert(MustParse(input))
			h := conv.convert(g)
			vars := mergeVars(g.freeVars(), h.freeVars())
			for m := range AllModels(vars) {
				require.Equal(t, Evaluate(g, m), Evaluate(h, m),
					"%s twice on %q: %q vs %q", conv.name, input, g, h)
			}
		}
	}
}

func TestConversionsIntroduceNoForeignVariables(t *testing.T) {
	t.Parallel()
	for _, conv := range conversions {
		for _, input := range conversionInputs {
			f := MustParse(input)
			g := conv.convert(f)
			hasConstant := false
			for _, tok := range Operators(f) {
				if IsConstantToken(tok) {
					hasConstant = true
				}
			}
			want := f.Vars()
			if hasConstant {
				// Eliminating a constant pulls in the reserved variable.
				want = mergeVars(want, []string{reservedVar})
			}
			assert.Equal(t, want, g.Vars(), "%s(%q) = %q", conv.name, input, g)
		}
	}
}

func TestToNotAndOr(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"(p->q)":  "(~p|q)",
		"(p+q)":   "((p|q)&~(p&q))",
		"(p<->q)": "((p&q)|(~p&~q))",
		"(p-&q)":  "~(p&q)",
		"(p-|q)":  "~(p|q)",
		"T":       "(p|~p)",
		"F":       "(p&~p)",
		"(x&T)":   "(x&(p|~p))",
		"~~z":     "~~z",
	}
	for input, want := range tests {
		assert.Equal(t, want, ToNotAndOr(MustParse(input)).String(), "input %q", input)
	}
}

func TestToNotAnd(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "~(~p&~q)", ToNotAnd(MustParse("(p|q)")).String())
	assert.Equal(t, "~(~~p&~q)", ToNotAnd(MustParse("(p->q)")).String())
}

func TestToNand(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(p-&p)", ToNand(MustParse("~p")).String())
	assert.Equal(t, "((p-&q)-&(p-&q))", ToNand(MustParse("(p&q)")).String())
}

func TestToImpliesNot(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "~(p->~q)", ToImpliesNot(MustParse("(p&q)")).String())
	assert.Equal(t, "(~p->q)", ToImpliesNot(MustParse("(p|q)")).String())
}

func TestToImpliesFalse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(p->F)", ToImpliesFalse(MustParse("~p")).String())
	assert.Equal(t, "((p->(q->F))->F)", ToImpliesFalse(MustParse("(p&q)")).String())
}
