// Package nativecurve provides off-circuit short Weierstrass curve
// arithmetic over math/big, used to synthesize witnesses for the
// weierstrass package's allocation gadgets and as an independent oracle in
// tests. It is reference plumbing, not a performance-oriented native curve
// library. The weierstrass package's allocation hint always builds a
// GenericNativeCurve; the NativeCurve interface below describes the same
// operations but no gadget in this module accepts another implementation.
package nativecurve

import (
	"math/big"
)

// NativeAffine is a point in plain affine coordinates over the integers
// mod a field modulus, with an explicit infinity flag since (0,0) is a
// valid affine point on curves with b == 0.
type NativeAffine struct {
	X, Y     *big.Int
	Infinity bool
}

// NativeCurve computes native-side (off-circuit) group operations used to
// synthesize circuit witnesses, e.g. the cofactor-clearing or prime-order
// check a Witness-mode allocation needs before it can hint a value into
// the circuit.
type NativeCurve interface {
	// Add returns p + q.
	Add(p, q NativeAffine) NativeAffine
	// Double returns 2p.
	Double(p NativeAffine) NativeAffine
	// ScalarMul returns [k]p.
	ScalarMul(p NativeAffine, k *big.Int) NativeAffine
	// IsOnCurve reports whether p satisfies the curve equation.
	IsOnCurve(p NativeAffine) bool
}

// GenericNativeCurve is a textbook math/big implementation of NativeCurve
// for a short Weierstrass curve y^2 = x^3 + a*x + b over F_p, generic over
// any (a, b, p). It exists purely to drive witness synthesis and test
// oracles for this repository and is not a deliverable performance-minded
// native curve implementation (see DESIGN.md).
type GenericNativeCurve struct {
	P, A, B *big.Int
}

func (c *GenericNativeCurve) mod(x *big.Int) *big.Int {
	y := new(big.Int).Mod(x, c.P)
	return y
}

func (c *GenericNativeCurve) inverse(x *big.Int) *big.Int {
	return new(big.Int).ModInverse(x, c.P)
}

// IsOnCurve reports whether p satisfies y^2 == x^3 + a*x + b (mod P); the
// point at infinity is always on the curve by convention.
func (c *GenericNativeCurve) IsOnCurve(p NativeAffine) bool {
	if p.Infinity {
		return true
	}
	lhs := c.mod(new(big.Int).Mul(p.Y, p.Y))
	x3 := new(big.Int).Mul(p.X, p.X)
	x3.Mul(x3, p.X)
	ax := new(big.Int).Mul(c.A, p.X)
	rhs := c.mod(new(big.Int).Add(new(big.Int).Add(x3, ax), c.B))
	return lhs.Cmp(rhs) == 0
}

// Add returns p + q using the textbook affine addition/doubling law.
func (c *GenericNativeCurve) Add(p, q NativeAffine) NativeAffine {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 || p.Y.Sign() == 0 {
			return NativeAffine{X: big.NewInt(0), Y: big.NewInt(0), Infinity: true}
		}
		return c.Double(p)
	}
	num := c.mod(new(big.Int).Sub(q.Y, p.Y))
	den := c.inverse(c.mod(new(big.Int).Sub(q.X, p.X)))
	lambda := c.mod(new(big.Int).Mul(num, den))
	x3 := c.mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), p.X), q.X))
	y3 := c.mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y))
	return NativeAffine{X: x3, Y: y3}
}

// Double returns 2p using the textbook affine tangent law.
func (c *GenericNativeCurve) Double(p NativeAffine) NativeAffine {
	if p.Infinity || p.Y.Sign() == 0 {
		return NativeAffine{X: big.NewInt(0), Y: big.NewInt(0), Infinity: true}
	}
	xx := new(big.Int).Mul(p.X, p.X)
	num := c.mod(new(big.Int).Add(new(big.Int).Add(xx, xx), new(big.Int).Add(xx, c.A)))
	den := c.inverse(c.mod(new(big.Int).Add(p.Y, p.Y)))
	lambda := c.mod(new(big.Int).Mul(num, den))
	x3 := c.mod(new(big.Int).Sub(new(big.Int).Mul(lambda, lambda), new(big.Int).Add(p.X, p.X)))
	y3 := c.mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y))
	return NativeAffine{X: x3, Y: y3}
}

// ScalarMul returns [k]p via left-to-right double-and-add.
func (c *GenericNativeCurve) ScalarMul(p NativeAffine, k *big.Int) NativeAffine {
	acc := NativeAffine{X: big.NewInt(0), Y: big.NewInt(0), Infinity: true}
	if k.Sign() == 0 {
		return acc
	}
	kk := new(big.Int).Abs(k)
	for i := kk.BitLen() - 1; i >= 0; i-- {
		acc = c.Double(acc)
		if kk.Bit(i) == 1 {
			acc = c.Add(acc, p)
		}
	}
	if k.Sign() < 0 && !acc.Infinity {
		acc.Y = c.mod(new(big.Int).Neg(acc.Y))
	}
	return acc
}

// CofactorWeightBranch decides which of the two subgroup-check branches is
// cheaper by comparing Hamming weights: it reports whether h has fewer set
// bits than r-1. When true, the cofactor-first branch (rebuild P as [h]Q
// from a witnessed Q, a double-and-add over h) is chosen; otherwise the
// branch that checks [r-1]P == -P (a scalar multiplication by r-1) is
// chosen. h and its odd part have the same Hamming weight, so either may be
// passed as cofactor.
func CofactorWeightBranch(cofactor, order *big.Int) (useCofactorFirst bool) {
	rMinus1 := new(big.Int).Sub(order, big.NewInt(1))
	return popcount(cofactor) < popcount(rMinus1)
}

func popcount(x *big.Int) int {
	n := 0
	for i := 0; i < x.BitLen(); i++ {
		if x.Bit(i) == 1 {
			n++
		}
	}
	return n
}

// ScalarMulToWeierstrass adapts this package's NativeAffine into the
// circuit-facing weierstrass.AffinePoint's native analogue, for use by
// allocation gadgets that need to embed a just-computed native point's
// coordinates as hint outputs. It returns plain big.Int coordinates (0,0)
// for the point at infinity, matching weierstrass.AffinePoint's convention
// that X, Y are irrelevant whenever Infinity is set.
func ScalarMulToWeierstrass(p NativeAffine) (x, y *big.Int, infinity bool) {
	if p.Infinity {
		return big.NewInt(0), big.NewInt(0), true
	}
	return p.X, p.Y, false
}

var _ NativeCurve = (*GenericNativeCurve)(nil)
