package weierstrass

import "math/big"

// CurveParams describes a short Weierstrass curve y^2 = x^3 + a*x + b over a
// base field represented by T, together with the scalar-field data the
// allocation and scalar-multiplication gadgets need: the prime order r of
// the subgroup of interest and the cofactor h such that #E(F) = h*r.
//
// CurveParams is a plain struct, not an interface, since Go generics
// monomorphize per-T the way Rust's generics do: every curve instantiation
// fixes both its base field T and its own constants.
type CurveParams[T any] struct {
	// A, B are the curve coefficients, already lifted into the base field
	// representation T (via FieldAPI.NewElement at construction time).
	A, B T

	// Order is the prime order r of the subgroup this curve's gadgets
	// operate on.
	Order *big.Int
	// Cofactor is h in #E(F) = h*r. A cofactor of 1 means every point in
	// E(F) already has order dividing r and no subgroup check is needed
	// beyond the on-curve check.
	Cofactor *big.Int

	// Gen is a fixed generator of the order-r subgroup, in plain big.Int
	// affine coordinates; used by ScalarMulBase.
	GenX, GenY *big.Int
}

// IsCofactorOne reports whether this curve's subgroup check reduces to
// verifying membership in E(F) alone.
func (p *CurveParams[T]) IsCofactorOne() bool {
	return p.Cofactor != nil && p.Cofactor.Cmp(big.NewInt(1)) == 0
}

// NewCurveParams lifts plain big.Int curve constants into CurveParams[T]
// using the given FieldAPI, the one place a concrete curve's numeric
// description is turned into the representation the gadgets operate on.
func NewCurveParams[T any](fapi FieldAPI[T], a, b, order, cofactor, genX, genY *big.Int) CurveParams[T] {
	return CurveParams[T]{
		A:        fapi.NewElement(a),
		B:        fapi.NewElement(b),
		Order:    order,
		Cofactor: cofactor,
		GenX:     genX,
		GenY:     genY,
	}
}
