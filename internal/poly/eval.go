package poly

// At substitutes the integer x for the outermost variable of p. All deeper
// variables shift up one level, so the result is one nesting level
// shallower than the input.
func (p Poly) At(x int64) Poly {
	if p.IsCoeff() {
		return p
	}
	result := Zero()
	for _, m := range p.terms {
		result = result.Add(m.Coeff.Mul(FromCoeff(powCoeff(x, m.Exp))))
	}
	return result
}

// powCoeff computes x^n by binary exponentiation in O(log n)
// multiplications. Overflow wraps, the same as native multiplication.
func powCoeff(x int64, n int) int64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return x
	case n&1 == 1:
		return x * powCoeff(x*x, (n-1)/2)
	default:
		return powCoeff(x*x, n/2)
	}
}

// pow raises p to the n-th power with O(log n) polynomial multiplications.
func pow(p Poly, n int) Poly {
	switch {
	case n == 0:
		return FromCoeff(1)
	case n == 1:
		return p.Clone()
	case n&1 == 1:
		return p.Mul(pow(p.Mul(p), (n-1)/2))
	default:
		return pow(p.Mul(p), n/2)
	}
}

// Compose substitutes qs[i] for each variable x_i of p. Variables at or
// beyond len(qs) are substituted with the zero polynomial, even when qs is
// empty.
func (p Poly) Compose(qs []Poly) Poly {
	return p.compose(qs, 0)
}

func (p Poly) compose(qs []Poly, varID int) Poly {
	if p.IsCoeff() {
		return p
	}
	result := Zero()
	for _, m := range p.terms {
		result = result.Add(m.compose(qs, varID))
	}
	return result
}

// compose substitutes into one monomial. The coefficient is composed first,
// at the next depth: it may depend on deeper variables that need
// substitution even when this monomial's own exponent is 0.
func (m Mono) compose(qs []Poly, varID int) Poly {
	coeff := m.Coeff.compose(qs, varID+1)
	if m.Exp == 0 {
		return coeff
	}
	if varID >= len(qs) {
		// x_varID is replaced by zero, and the exponent is positive.
		return Zero()
	}
	return coeff.Mul(pow(qs[varID], m.Exp))
}
