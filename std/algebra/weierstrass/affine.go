package weierstrass

import "github.com/consensys/gnark/frontend"

// AffinePoint holds the affine coordinates of a curve point plus an
// explicit infinity flag, since affine coordinates alone cannot represent
// the point at infinity over a field gadget (there is no "coordinates at
// infinity" value to assign). Infinity is a boolean frontend.Variable: 1
// means p is the point at infinity and X, Y are unconstrained/irrelevant.
type AffinePoint[T any] struct {
	X, Y     T
	Infinity frontend.Variable
}

// IsInfinity returns p's infinity flag.
func (p *AffinePoint[T]) IsInfinity() frontend.Variable {
	return p.Infinity
}

// Values returns the affine coordinates of p, ignoring the infinity flag;
// callers that care about infinity must check IsInfinity separately, since
// FieldAPI has no "undefined" element to return here.
func (p *AffinePoint[T]) Values() (x, y T) {
	return p.X, p.Y
}
