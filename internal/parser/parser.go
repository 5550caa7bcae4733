// Package parser converts the calculator's bracketed textual notation into
// canonical polynomial values.
//
// The grammar, over one line of input:
//
//	poly  := number | mono ('+' mono)*
//	mono  := '(' poly ',' exponent ')'
//
// Numbers are base-10 int64, the coefficient optionally negative; exponents
// are non-negative and bounded by poly.MaxExp. Parsed monomial lists are
// handed to the engine's ingestion entry point and never bypass it, so
// every value leaving this package is canonical.
package parser

import (
	"errors"
	"strconv"

	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/poly"
)

// ErrWrongPoly is returned for any malformed polynomial: bad syntax,
// trailing garbage, or a number outside its allowed range.
var ErrWrongPoly = errors.New("parser: wrong poly")

type parser struct {
	input string
	pos   int
}

// Parse parses an entire line as a polynomial. The whole input must be
// consumed; anything left over is an error.
func Parse(line string) (poly.Poly, error) {
	p := &parser{input: line}
	result, err := p.parsePoly()
	if err != nil {
		return poly.Zero(), err
	}
	if p.pos != len(p.input) {
		return poly.Zero(), ErrWrongPoly
	}
	return result, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) expect(ch byte) error {
	if p.peek() != ch {
		return ErrWrongPoly
	}
	p.pos++
	return nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (p *parser) parsePoly() (poly.Poly, error) {
	switch ch := p.peek(); {
	case isDigit(ch) || ch == '-':
		c, err := p.parseCoeff()
		if err != nil {
			return poly.Zero(), err
		}
		return poly.FromCoeff(c), nil
	case ch == '(':
		return p.parseMonos()
	default:
		return poly.Zero(), ErrWrongPoly
	}
}

// parseMonos reads one or more '+'-joined monomials and normalizes them.
func (p *parser) parseMonos() (poly.Poly, error) {
	var monos []poly.Mono
	for {
		m, err := p.parseMono()
		if err != nil {
			return poly.Zero(), err
		}
		monos = append(monos, m)
		if p.peek() != '+' {
			break
		}
		p.pos++
	}
	result, err := poly.OwnMonos(monos)
	if err != nil {
		return poly.Zero(), ErrWrongPoly
	}
	return result, nil
}

func (p *parser) parseMono() (poly.Mono, error) {
	if err := p.expect('('); err != nil {
		return poly.Mono{}, err
	}
	coeff, err := p.parsePoly()
	if err != nil {
		return poly.Mono{}, err
	}
	if err := p.expect(','); err != nil {
		return poly.Mono{}, err
	}
	exp, err := p.parseExp()
	if err != nil {
		return poly.Mono{}, err
	}
	if err := p.expect(')'); err != nil {
		return poly.Mono{}, err
	}
	return poly.Mono{Coeff: coeff, Exp: exp}, nil
}

// parseCoeff reads an optionally negative int64. Overflow is a parse error,
// not a wrapped value.
func (p *parser) parseCoeff() (int64, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	if !isDigit(p.peek()) {
		return 0, ErrWrongPoly
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	c, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, ErrWrongPoly
	}
	return c, nil
}

// parseExp reads a non-negative exponent within [0, poly.MaxExp]. A leading
// sign is not part of the grammar.
func (p *parser) parseExp() (int, error) {
	start := p.pos
	if !isDigit(p.peek()) {
		return 0, ErrWrongPoly
	}
	for isDigit(p.peek()) {
		p.pos++
	}
	e, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil || e > poly.MaxExp {
		return 0, ErrWrongPoly
	}
	return int(e), nil
}
