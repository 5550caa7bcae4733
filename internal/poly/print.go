package poly

import (
	"strconv"
	"strings"
)

// String renders p in the calculator's textual form: a bare integer for a
// constant, otherwise monomials written as (coefficient,exponent) joined by
// '+', in ascending exponent order. Canonical order already matches the
// required print order, so no sorting happens here.
func (p Poly) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p Poly) write(b *strings.Builder) {
	if p.IsCoeff() {
		b.WriteString(strconv.FormatInt(p.coeff, 10))
		return
	}
	for i, m := range p.terms {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteByte('(')
		m.Coeff.write(b)
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(m.Exp))
		b.WriteByte(')')
	}
}
