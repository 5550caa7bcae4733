// Package poly implements sparse multivariable polynomials with int64
// coefficients.
//
// A polynomial is either a constant or a non-empty sum of monomials in one
// variable, each monomial's coefficient being itself a polynomial in the
// next variable. Variables carry no names; the nesting depth is the variable
// index (x0 outermost, x1 inside its coefficients, and so on).
//
// Every Poly reachable through this package's API is canonical: term lists
// are non-empty, sorted strictly ascending by exponent, contain no zero
// coefficients, and a lone constant term with exponent 0 is collapsed to a
// bare constant. Constant(0) is the unique zero polynomial. The only
// construction paths that accept non-canonical input are OwnMonos and
// CloneMonos, which normalize it.
//
// Operations never mutate their operands; Clone is the only way to obtain
// an independent deep copy, and OwnMonos is the only call that takes
// ownership of (and may reuse) its argument.
package poly

import "math"

// MaxExp is the largest representable exponent. Exponents outside
// [0, MaxExp] are rejected at the ingestion boundary.
const MaxExp = math.MaxInt32

// Mono is a single term c*x^Exp, where the coefficient c may itself be a
// polynomial in the next variable.
type Mono struct {
	Coeff Poly
	Exp   int
}

type polyKind uint8

const (
	kindCoeff polyKind = iota
	kindTerms
)

// Poly is a tagged variant: a constant int64 coefficient, or a non-empty
// ascending-exponent list of monomials. The zero value is the zero
// polynomial.
type Poly struct {
	kind  polyKind
	coeff int64
	terms []Mono
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{}
}

// FromCoeff wraps a constant as a polynomial.
func FromCoeff(c int64) Poly {
	return Poly{coeff: c}
}

// fromTerms builds a Poly from an already canonical term list: non-empty,
// strictly ascending exponents, no zero coefficients, not collapsible.
func fromTerms(terms []Mono) Poly {
	return Poly{kind: kindTerms, terms: terms}
}

// IsCoeff reports whether p is a constant polynomial.
func (p Poly) IsCoeff() bool {
	return p.kind == kindCoeff
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.kind == kindCoeff && p.coeff == 0
}

// Coeff returns the constant value of p. Meaningful only when IsCoeff is
// true.
func (p Poly) Coeff() int64 {
	return p.coeff
}

// Clone returns a deep copy of p sharing no structure with it.
func (p Poly) Clone() Poly {
	if p.IsCoeff() {
		return p
	}
	terms := make([]Mono, len(p.terms))
	for i, m := range p.terms {
		terms[i] = Mono{Coeff: m.Coeff.Clone(), Exp: m.Exp}
	}
	return fromTerms(terms)
}
