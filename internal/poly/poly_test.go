package poly

import "testing"

// Test helpers shared by the package tests.

func c(v int64) Poly { return FromCoeff(v) }

func m(coeff Poly, exp int) Mono { return Mono{Coeff: coeff, Exp: exp} }

// build normalizes a raw monomial list, failing the test on ingestion
// errors.
func build(t *testing.T, monos ...Mono) Poly {
	t.Helper()
	p, err := OwnMonos(monos)
	if err != nil {
		t.Fatalf("OwnMonos: %v", err)
	}
	return p
}

func TestZeroAndConstants(t *testing.T) {
	z := Zero()
	if !z.IsZero() || !z.IsCoeff() {
		t.Errorf("Zero() = %v, want zero constant", z)
	}
	if got := FromCoeff(0); !got.Equal(z) {
		t.Errorf("FromCoeff(0) = %v, want %v", got, z)
	}

	five := FromCoeff(5)
	if five.IsZero() {
		t.Error("FromCoeff(5).IsZero() = true")
	}
	if !five.IsCoeff() {
		t.Error("FromCoeff(5).IsCoeff() = false")
	}
	if five.Coeff() != 5 {
		t.Errorf("FromCoeff(5).Coeff() = %d", five.Coeff())
	}

	var def Poly
	if !def.IsZero() {
		t.Error("zero-value Poly is not the zero polynomial")
	}
}

func TestCloneIsDeepAndEqual(t *testing.T) {
	// 1 + 2*x0 + (3 + x1)*x0^4
	p := build(t,
		m(c(1), 0),
		m(c(2), 1),
		m(build(t, m(c(3), 0), m(c(1), 1)), 4),
	)
	clone := p.Clone()

	if !clone.Equal(p) {
		t.Fatalf("Clone() = %v, want %v", clone, p)
	}

	// Mutating the clone's backing terms must not be observable via p. The
	// public API never mutates, so reach into the representation directly.
	clone.terms[0].Coeff = c(99)
	if p.terms[0].Coeff.Coeff() != 1 {
		t.Error("Clone shares term structure with the original")
	}
	clone.terms[2].Coeff.terms[0].Coeff = c(99)
	if p.terms[2].Coeff.terms[0].Coeff.Coeff() != 3 {
		t.Error("Clone shares nested coefficient structure with the original")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		p    Poly
		want string
	}{
		{"zero", Zero(), "0"},
		{"negative constant", c(-42), "-42"},
		{"single variable", build(t, m(c(1), 0), m(c(1), 1)), "(1,0)+(1,1)"},
		{
			"nested coefficient",
			build(t, m(build(t, m(c(2), 3)), 5)),
			"((2,3),5)",
		},
		{
			"ascending order",
			build(t, m(c(7), 5), m(c(3), 0), m(c(-1), 2)),
			"(3,0)+(-1,2)+(7,5)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
