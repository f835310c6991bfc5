package prop

import (
	"fmt"
	"os"
)

func ExampleParse() {
	f, err := Parse("~(p&q76)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(Evaluate(f, Model{"p": true, "q76": false}))
	fmt.Println(Evaluate(f, Model{"p": true, "q76": true}))
	// Output:
	// true
	// false
}

func ExampleWriteTruthTable() {
	if err := WriteTruthTable(os.Stdout, MustParse("(p->q)")); err != nil {
		fmt.Println(err)
	}
	// Output:
	// | p | q | (p->q) |
	// |---|---|--------|
	// | F | F |   T    |
	// | F | T |   T    |
	// | T | F |   F    |
	// | T | T |   T    |
}

func ExampleSynthesizeDNF() {
	f := SynthesizeDNF([]string{"p", "q"}, []bool{true, true, true, false})
	fmt.Println(f)
	// Output: (((~p&~q)|(~p&q))|(p&~q))
}

func ExampleToNand() {
	fmt.Println(ToNand(MustParse("(p&q)")))
	// Output: ((p-&q)-&(p-&q))
}

func ExampleToNotAndOr() {
	fmt.Println(ToNotAndOr(MustParse("((p->q)+r)")))
	// Output: (((~p|q)|r)&~((~p|q)&r))
}

func ExampleIsSound() {
	modusPonens := NewInferenceRule(
		[]Formula{MustParse("p"), MustParse("(p->q)")},
		MustParse("q"),
	)
	fmt.Println(IsSound(modusPonens))
	fmt.Println(IsSound(NewInferenceRule([]Formula{MustParse("p")}, MustParse("q"))))
	// Output:
	// true
	// false
}
