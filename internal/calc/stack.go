package calc

import "github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/poly"

// Stack holds the interpreter's operand polynomials. The zero value is an
// empty stack ready for use.
type Stack struct {
	elems []poly.Poly
}

// Len returns the number of polynomials on the stack.
func (s *Stack) Len() int {
	return len(s.elems)
}

// Push places p on top of the stack.
func (s *Stack) Push(p poly.Poly) {
	s.elems = append(s.elems, p)
}

// Pop removes and returns the top polynomial. Callers check Len first;
// popping an empty stack panics.
func (s *Stack) Pop() poly.Poly {
	top := s.elems[len(s.elems)-1]
	s.elems[len(s.elems)-1] = poly.Poly{}
	s.elems = s.elems[:len(s.elems)-1]
	return top
}

// Peek returns the top polynomial without removing it.
func (s *Stack) Peek() poly.Poly {
	return s.elems[len(s.elems)-1]
}
