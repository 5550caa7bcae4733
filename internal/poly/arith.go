package poly

// Add returns p + q. Both arguments are borrowed; the result shares no
// structure with either.
func (p Poly) Add(q Poly) Poly {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return FromCoeff(p.coeff + q.coeff)
	case p.IsCoeff():
		return addCoeffTerms(q, p.coeff)
	case q.IsCoeff():
		return addCoeffTerms(p, q.coeff)
	default:
		return addTermLists(p.terms, q.terms)
	}
}

// addCoeffTerms adds the constant c into the non-constant polynomial t.
// The constant lands in t's exponent-0 term, merging with it if present and
// dropping it if the sum cancels to zero.
func addCoeffTerms(t Poly, c int64) Poly {
	if c == 0 {
		return t.Clone()
	}

	if t.terms[0].Exp == 0 {
		head := t.terms[0].Coeff.Add(FromCoeff(c))
		terms := make([]Mono, 0, len(t.terms))
		if !head.IsZero() {
			terms = append(terms, Mono{Coeff: head, Exp: 0})
		}
		for _, m := range t.terms[1:] {
			terms = append(terms, Mono{Coeff: m.Coeff.Clone(), Exp: m.Exp})
		}
		return canonical(terms)
	}

	terms := make([]Mono, 0, len(t.terms)+1)
	terms = append(terms, Mono{Coeff: FromCoeff(c), Exp: 0})
	for _, m := range t.terms {
		terms = append(terms, Mono{Coeff: m.Coeff.Clone(), Exp: m.Exp})
	}
	return fromTerms(terms)
}

// addTermLists merges two ascending term lists, adding coefficients on
// exponent ties and dropping terms that cancel. Linear in the total term
// count at each nesting level.
func addTermLists(a, b []Mono) Poly {
	terms := make([]Mono, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Exp == b[j].Exp:
			sum := a[i].Coeff.Add(b[j].Coeff)
			if !sum.IsZero() {
				terms = append(terms, Mono{Coeff: sum, Exp: a[i].Exp})
			}
			i++
			j++
		case a[i].Exp < b[j].Exp:
			terms = append(terms, Mono{Coeff: a[i].Coeff.Clone(), Exp: a[i].Exp})
			i++
		default:
			terms = append(terms, Mono{Coeff: b[j].Coeff.Clone(), Exp: b[j].Exp})
			j++
		}
	}
	for ; i < len(a); i++ {
		terms = append(terms, Mono{Coeff: a[i].Coeff.Clone(), Exp: a[i].Exp})
	}
	for ; j < len(b); j++ {
		terms = append(terms, Mono{Coeff: b[j].Coeff.Clone(), Exp: b[j].Exp})
	}

	return canonical(terms)
}

// Neg returns -p. Negation never changes the canonical shape: same term
// count, same exponents.
func (p Poly) Neg() Poly {
	if p.IsCoeff() {
		return FromCoeff(-p.coeff)
	}
	terms := make([]Mono, len(p.terms))
	for i, m := range p.terms {
		terms[i] = Mono{Coeff: m.Coeff.Neg(), Exp: m.Exp}
	}
	return fromTerms(terms)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Mul returns p * q. Constant multiplication wraps around on overflow, the
// same as native int64 multiplication; callers bound inputs at the
// ingestion boundary.
func (p Poly) Mul(q Poly) Poly {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return FromCoeff(p.coeff * q.coeff)
	case p.IsCoeff():
		return mulCoeffTerms(q, p.coeff)
	case q.IsCoeff():
		return mulCoeffTerms(p, q.coeff)
	default:
		monos := make([]Mono, 0, len(p.terms)*len(q.terms))
		for _, a := range p.terms {
			for _, b := range q.terms {
				monos = append(monos, Mono{Coeff: a.Coeff.Mul(b.Coeff), Exp: a.Exp + b.Exp})
			}
		}
		return addMonos(monos)
	}
}

// mulCoeffTerms multiplies every coefficient of the non-constant t by the
// constant c. Wraparound can still zero out a coefficient, so the result
// goes through the normalizer for the collapse checks.
func mulCoeffTerms(t Poly, c int64) Poly {
	if c == 0 {
		return Zero()
	}
	k := FromCoeff(c)
	monos := make([]Mono, len(t.terms))
	for i, m := range t.terms {
		monos[i] = Mono{Coeff: m.Coeff.Mul(k), Exp: m.Exp}
	}
	return addMonos(monos)
}
