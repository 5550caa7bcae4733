package poly

import (
	"errors"
	"sort"
)

// ErrExpOutOfRange is returned by the ingestion entry points when a raw
// monomial carries an exponent outside [0, MaxExp].
var ErrExpOutOfRange = errors.New("poly: exponent out of range")

// OwnMonos builds the canonical polynomial represented by an arbitrary list
// of monomials: unsorted, with duplicate exponents and zero coefficients
// allowed. It takes ownership of monos and may reorder and reuse the slice;
// the caller must not touch it afterwards.
//
// This is the only sanctioned construction path for untrusted input. On
// error no partial structure is retained.
func OwnMonos(monos []Mono) (Poly, error) {
	for _, m := range monos {
		if m.Exp < 0 || m.Exp > MaxExp {
			return Zero(), ErrExpOutOfRange
		}
	}
	return addMonos(monos), nil
}

// CloneMonos is the borrowing twin of OwnMonos: it deep-copies monos and
// leaves the caller's slice untouched.
func CloneMonos(monos []Mono) (Poly, error) {
	clones := make([]Mono, len(monos))
	for i, m := range monos {
		clones[i] = Mono{Coeff: m.Coeff.Clone(), Exp: m.Exp}
	}
	return OwnMonos(clones)
}

// addMonos is the normalizer shared by the ingestion entry points and the
// arithmetic operators. It assumes exponents are in range and consumes the
// slice.
func addMonos(monos []Mono) Poly {
	if len(monos) == 0 {
		return Zero()
	}

	sort.SliceStable(monos, func(i, j int) bool {
		return monos[i].Exp < monos[j].Exp
	})

	out := monos[:0]
	for _, m := range monos {
		if len(out) > 0 && out[len(out)-1].Exp == m.Exp {
			out[len(out)-1].Coeff = out[len(out)-1].Coeff.Add(m.Coeff)
			continue
		}
		if len(out) > 0 && out[len(out)-1].Coeff.IsZero() {
			out = out[:len(out)-1] // cancelled out entirely
		}
		out = append(out, m)
	}
	if out[len(out)-1].Coeff.IsZero() {
		out = out[:len(out)-1]
	}

	return canonical(out)
}

// canonical applies the collapse rules to a sorted, merged, zero-free term
// list: no terms is the zero polynomial, a lone constant term with exponent
// 0 flattens to that constant, anything else is a proper term list.
func canonical(terms []Mono) Poly {
	switch {
	case len(terms) == 0:
		return Zero()
	case len(terms) == 1 && terms[0].Exp == 0 && terms[0].Coeff.IsCoeff():
		return terms[0].Coeff
	default:
		return fromTerms(terms)
	}
}
