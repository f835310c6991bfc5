package prop

// reservedVar is the variable used to replace eliminated constants: T becomes
// (p|~p) and F becomes (p&~p). If the input formula already mentions p the
// result simply reuses it, which is harmless since a tautology and a
// contradiction hold regardless of the binding of p.
const reservedVar = "p"

// eliminateConstants replaces every occurrence of T and F with an equivalent
// constant-free formula over the reserved variable. It runs as a separate
// first pass so that the basis conversions below never meet a constant.
func eliminateConstants(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case constant:
		v := Var(reservedVar)
		if f.value {
			return Or(v, Not(v))
		}
		return And(v, Not(v))
	case unary:
		return Not(eliminateConstants(f.operand))
	case binary:
		return Bin(f.op, eliminateConstants(f.left), eliminateConstants(f.right))
	default:
		panic("prop: invalid formula type")
	}
}

// ToNotAndOr returns a formula equivalent to f using only the operators ~, &
// and |. Implication, xor, iff, nand and nor are unfolded bottom-up through
// the usual identities; constants are eliminated first.
func ToNotAndOr(f Formula) Formula {
	return toNotAndOr(eliminateConstants(f))
}

func toNotAndOr(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case unary:
		return Not(toNotAndOr(f.operand))
	case binary:
		left := toNotAndOr(f.left)
		right := toNotAndOr(f.right)
		switch f.op {
		case OpAnd, OpOr:
			return Bin(f.op, left, right)
		case OpImplies:
			return Or(Not(left), right)
		case OpXor:
			return And(Or(left, right), Not(And(left, right)))
		case OpIff:
			return Or(And(left, right), And(Not(left), Not(right)))
		case OpNand:
			return Not(And(left, right))
		case OpNor:
			return Not(Or(left, right))
		}
	}
	panic("prop: invalid formula type")
}

// ToNotAnd returns a formula equivalent to f using only the operators ~ and
// &, eliminating | through De Morgan: a|b becomes ~(~a&~b).
func ToNotAnd(f Formula) Formula {
	return toNotAnd(ToNotAndOr(f))
}

func toNotAnd(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case unary:
		return Not(toNotAnd(f.operand))
	case binary:
		left := toNotAnd(f.left)
		right := toNotAnd(f.right)
		switch f.op {
		case OpAnd:
			return And(left, right)
		case OpOr:
			return Not(And(Not(left), Not(right)))
		}
	}
	panic("prop: invalid formula type")
}

// ToNand returns a formula equivalent to f using -& as the only operator:
// ~a becomes (a-&a) and a&b becomes ((a-&b)-&(a-&b)).
func ToNand(f Formula) Formula {
	return toNand(ToNotAnd(f))
}

func toNand(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case unary:
		sub := toNand(f.operand)
		return Nand(sub, sub)
	case binary:
		// Only & survives ToNotAnd.
		nand := Nand(toNand(f.left), toNand(f.right))
		return Nand(nand, nand)
	}
	panic("prop: invalid formula type")
}

// ToImpliesNot returns a formula equivalent to f using only the operators ->
// and ~: a&b becomes ~(a->~b) and a|b becomes (~a->b).
func ToImpliesNot(f Formula) Formula {
	return toImpliesNot(ToNotAndOr(f))
}

func toImpliesNot(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case unary:
		return Not(toImpliesNot(f.operand))
	case binary:
		left := toImpliesNot(f.left)
		right := toImpliesNot(f.right)
		switch f.op {
		case OpAnd:
			return Not(Implies(left, Not(right)))
		case OpOr:
			return Implies(Not(left), right)
		case OpImplies:
			return Implies(left, right)
		}
	}
	panic("prop: invalid formula type")
}

// ToImpliesFalse returns a formula equivalent to f using only the operator ->
// and the constant F, which is a primitive of this basis: ~a becomes (a->F).
func ToImpliesFalse(f Formula) Formula {
	return toImpliesFalse(ToImpliesNot(f))
}

func toImpliesFalse(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case unary:
		return Implies(toImpliesFalse(f.operand), False)
	case binary:
		// Only -> survives ToImpliesNot.
		return Implies(toImpliesFalse(f.left), toImpliesFalse(f.right))
	}
	panic("prop: invalid formula type")
}
