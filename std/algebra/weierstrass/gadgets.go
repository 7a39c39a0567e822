package weierstrass

import "github.com/consensys/gnark/frontend"

// Select returns p if b == 1, q if b == 0. b must be boolean.
func (c *Curve[T]) Select(b frontend.Variable, p, q *ProjectivePoint[T]) *ProjectivePoint[T] {
	f := c.fapi
	return &ProjectivePoint[T]{
		X: f.Select(b, p.X, q.X),
		Y: f.Select(b, p.Y, q.Y),
		Z: f.Select(b, p.Z, q.Z),
	}
}

// SelectAffine returns p if b == 1, q if b == 0. b must be boolean.
func (c *Curve[T]) SelectAffine(b frontend.Variable, p, q *AffinePoint[T]) *AffinePoint[T] {
	f := c.fapi
	return &AffinePoint[T]{
		X:        f.Select(b, p.X, q.X),
		Y:        f.Select(b, p.Y, q.Y),
		Infinity: c.api.Select(b, p.Infinity, q.Infinity),
	}
}

// Lookup2 performs a 2-bit lookup among four projective points, with the
// same bit convention as frontend.API.Lookup2: p0 when b0=b1=0, p1 when
// b0=1,b1=0, p2 when b0=0,b1=1, p3 when b0=b1=1.
func (c *Curve[T]) Lookup2(b0, b1 frontend.Variable, p0, p1, p2, p3 *ProjectivePoint[T]) *ProjectivePoint[T] {
	f := c.fapi
	return &ProjectivePoint[T]{
		X: f.Lookup2(b0, b1, p0.X, p1.X, p2.X, p3.X),
		Y: f.Lookup2(b0, b1, p0.Y, p1.Y, p2.Y, p3.Y),
		Z: f.Lookup2(b0, b1, p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// IsEqual returns 1 if p and q represent the same projective point,
// comparing via the cross-multiplication X1*Z2 == X2*Z1, Y1*Z2 == Y2*Z1 so
// that points with different but proportional coordinate representatives
// still compare equal.
func (c *Curve[T]) IsEqual(p, q *ProjectivePoint[T]) frontend.Variable {
	f := c.fapi
	xEq := f.IsEqual(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z))
	yEq := f.IsEqual(f.Mul(p.Y, q.Z), f.Mul(q.Y, p.Z))
	return c.api.And(xEq, yEq)
}

// AssertIsEqual fails unless p and q represent the same projective point.
func (c *Curve[T]) AssertIsEqual(p, q *ProjectivePoint[T]) {
	f := c.fapi
	f.AssertIsEqual(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z))
	f.AssertIsEqual(f.Mul(p.Y, q.Z), f.Mul(q.Y, p.Z))
}

// AssertIsDifferent fails if p and q represent the same projective point.
func (c *Curve[T]) AssertIsDifferent(p, q *ProjectivePoint[T]) {
	c.api.AssertIsEqual(c.IsEqual(p, q), 0)
}

// ConditionalAssertIsEqual fails unless (b == 1 implies p == q); when
// b == 0 the assertion is vacuous.
func (c *Curve[T]) ConditionalAssertIsEqual(b frontend.Variable, p, q *ProjectivePoint[T]) {
	eq := c.IsEqual(p, q)
	ok := c.api.Or(c.api.Sub(1, b), eq)
	c.api.AssertIsEqual(ok, 1)
}

// ConditionalAssertIsNotEqual fails if (b == 1 AND p == q); when b == 0 the
// assertion is vacuous.
func (c *Curve[T]) ConditionalAssertIsNotEqual(b frontend.Variable, p, q *ProjectivePoint[T]) {
	eq := c.IsEqual(p, q)
	c.api.AssertIsEqual(c.api.And(b, eq), 0)
}
