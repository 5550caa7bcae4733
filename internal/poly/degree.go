package poly

// Deg returns the total degree of p: -1 for the zero polynomial, 0 for any
// other constant, otherwise the maximum over all monomials of the exponent
// plus the degree of the coefficient in the deeper variables.
func (p Poly) Deg() int {
	switch {
	case p.IsZero():
		return -1
	case p.IsCoeff():
		return 0
	}
	max := -1
	for _, m := range p.terms {
		if d := m.Exp + m.Coeff.Deg(); d > max {
			max = d
		}
	}
	return max
}

// DegBy returns the degree of p in the single variable at nesting depth
// varIdx (0 is the outermost): -1 for the zero polynomial, 0 for any other
// constant. At depth 0 the answer is the last exponent, since term lists
// are ascending. Variables deeper than p's actual nesting contribute
// nothing.
func (p Poly) DegBy(varIdx uint64) int {
	switch {
	case p.IsZero():
		return -1
	case p.IsCoeff():
		return 0
	case varIdx == 0:
		return p.terms[len(p.terms)-1].Exp
	}
	max := -1
	for _, m := range p.terms {
		if d := m.Coeff.DegBy(varIdx - 1); d > max {
			max = d
		}
	}
	return max
}

// Equal reports whether p and q are the same polynomial. Canonical form is
// unique, so structural equality coincides with algebraic equality; in
// particular a constant never equals a proper term list.
func (p Poly) Equal(q Poly) bool {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return p.coeff == q.coeff
	case p.IsCoeff() || q.IsCoeff():
		return false
	}
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i, m := range p.terms {
		if m.Exp != q.terms[i].Exp || !m.Coeff.Equal(q.terms[i].Coeff) {
			return false
		}
	}
	return true
}
