package weierstrass

import "github.com/consensys/gnark/frontend"

// NonZeroAffinePoint holds the affine coordinates of a curve point that is
// known, by construction, never to be the point at infinity and never to
// collide with the other operand of an addition it takes part in. Its
// methods use the incomplete chord-and-tangent formulae, which are cheaper
// than the complete projective formulae but unsatisfiable on the excluded
// inputs (P == Q for AddUnchecked, P of order two for DoubleInPlace).
//
// This type exists purely to host the incomplete-formula fast path used by
// the prefix of scalar multiplication (see scalarmul.go), where
// the caller can prove ahead of time that the exceptional cases never
// arise.
type NonZeroAffinePoint[T any] struct {
	X, Y T
}

// AddUnchecked adds p and q using the incomplete affine addition law
//
//	lambda = (q.Y - p.Y) / (q.X - p.X)
//	x3     = lambda^2 - p.X - q.X
//	y3     = lambda*(p.X - x3) - p.Y
//
// The circuit is unsatisfiable if p.X == q.X (in particular if p == q or
// p == -q).
func (c *Curve[T]) AddUnchecked(p, q *NonZeroAffinePoint[T]) *NonZeroAffinePoint[T] {
	f := c.fapi
	lambda := f.Div(f.Sub(q.Y, p.Y), f.Sub(q.X, p.X))
	x3 := f.Sub(f.Sub(f.Square(lambda), p.X), q.X)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return &NonZeroAffinePoint[T]{X: x3, Y: y3}
}

// DoubleInPlace returns 2p as a new point, using the incomplete tangent law
//
//	lambda = (3*p.X^2 + a) / (2*p.Y)
//	x3     = lambda^2 - 2*p.X
//	y3     = lambda*(p.X - x3) - p.Y
//
// p itself is not modified; callers that double in place assign the result
// back. The circuit is unsatisfiable if p.Y == 0 (p has order two).
func (c *Curve[T]) DoubleInPlace(p *NonZeroAffinePoint[T]) *NonZeroAffinePoint[T] {
	f := c.fapi
	xx := f.Square(p.X)
	num := f.Add(f.Add(xx, xx), xx)
	num = f.Add(num, c.params.A)
	lambda := f.Div(num, f.Add(p.Y, p.Y))
	x3 := f.Sub(f.Square(lambda), f.Add(p.X, p.X))
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.X, x3)), p.Y)
	return &NonZeroAffinePoint[T]{X: x3, Y: y3}
}

// ToProjectiveFromNonZero lifts p to an equivalent ProjectivePoint with Z = 1.
func (c *Curve[T]) ToProjectiveFromNonZero(p *NonZeroAffinePoint[T]) *ProjectivePoint[T] {
	return &ProjectivePoint[T]{X: p.X, Y: p.Y, Z: c.fapi.One()}
}

// SelectNonZero returns p if b == 1, q if b == 0. b must be boolean.
func (c *Curve[T]) SelectNonZero(b frontend.Variable, p, q *NonZeroAffinePoint[T]) *NonZeroAffinePoint[T] {
	f := c.fapi
	return &NonZeroAffinePoint[T]{X: f.Select(b, p.X, q.X), Y: f.Select(b, p.Y, q.Y)}
}
