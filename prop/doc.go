// Package prop implements propositional-logic formulas over a fixed operator
// vocabulary: parsing, evaluation, truth tables, normal-form synthesis and
// operator-basis conversion.
//
// Formulas are written in a fully parenthesized canonical syntax. Variables
// are a lowercase letter between 'p' and 'z' optionally followed by decimal
// digits, constants are written T and F, negation is the prefix operator ~,
// and every binary operator application is surrounded by parentheses:
//
//	~(p&q76)
//	((p->q)<->(~q->~p))
//
// The binary operators are & (and), | (or), -> (implies), + (xor),
// <-> (iff), -& (nand) and -| (nor).
//
// Formulas are immutable trees. Each node computes its canonical text and its
// sorted free-variable set at construction time, so printing, comparing and
// querying variables are cheap. Two formulas are equal exactly when their
// canonical texts are equal, which makes a formula interchangeable with a
// re-parsed copy of its own printed form.
//
// Semantic queries (Evaluate, IsTautology, SynthesizeDNF, ...) work against
// models, which map variable names to booleans. Deciding tautology,
// contradiction, satisfiability or the soundness of an inference rule is done
// by exhaustive enumeration of all models, deliberately: formulas in this
// domain are small and enumeration order is part of the package contract.
package prop
