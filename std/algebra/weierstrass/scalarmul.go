package weierstrass

import (
	"github.com/consensys/gnark/frontend"

	"github.com/arkzkp/gnark-weierstrass/internal/gadgetlog"
)

// ScalarMulLE computes [k]p where k is given as its little-endian bit
// decomposition. It is complete: correct for p the point at infinity and
// for every value of k, including zero. p known at compile time to be the
// identity, and bits known at compile time to be false, short-circuit
// before any of the work below runs.
//
// Internally it splits each Order-sized chunk of bits into an incomplete
// affine prefix and a complete projective suffix (Algorithm 3.26 of the
// Guide to Elliptic Curve Cryptography, specialized as in the reference
// this package is modeled on): the prefix uses the cheaper incomplete
// chord-and-tangent formulae on NonZeroAffinePoint, which is safe because
// the running accumulator is bounded away from both zero and ±p for the
// whole prefix; the suffix, and the final fix-up for the skipped low bit,
// fall back to the complete projective formulae. The possibility that p
// itself is the point at infinity, which the incomplete prefix cannot
// tolerate, is handled by a single Select at the very end.
func (c *Curve[T]) ScalarMulLE(p *ProjectivePoint[T], bits []frontend.Variable) *ProjectivePoint[T] {
	gadgetlog.ScalarMul("weierstrass", len(bits))
	if len(bits) == 0 {
		return c.Zero()
	}
	if v, ok := c.fapi.Value(p.Z); ok && v.Sign() == 0 {
		return c.Zero()
	}
	bits = stripConstantFalseLeadingBits(c.api, bits)
	if len(bits) == 0 {
		return c.Zero()
	}

	selfAffine := c.ToAffine(p)
	powerOfTwo := &NonZeroAffinePoint[T]{X: selfAffine.X, Y: selfAffine.Y}

	scalarModulusBits := c.params.Order.BitLen()
	if scalarModulusBits < 3 {
		scalarModulusBits = 3
	}

	mulResult := c.Zero()
	for start := 0; start < len(bits); start += scalarModulusBits {
		end := start + scalarModulusBits
		if end > len(bits) {
			end = len(bits)
		}
		mulResult = c.fixedScalarMulLE(mulResult, powerOfTwo, bits[start:end], scalarModulusBits)
	}

	return c.Select(selfAffine.Infinity, c.Zero(), mulResult)
}

// fixedScalarMulLE implements one scalarModulusBits-sized chunk of the
// split described on ScalarMulLE. powerOfTwo is threaded through by
// pointer: on entry it holds 2^start * p in affine form, and on return it
// holds 2^end * p, ready for the next chunk.
func (c *Curve[T]) fixedScalarMulLE(mulResult *ProjectivePoint[T], powerOfTwo *NonZeroAffinePoint[T], bits []frontend.Variable, scalarModulusBits int) *ProjectivePoint[T] {
	splitLen := scalarModulusBits - 2
	if splitLen > len(bits) {
		splitLen = len(bits)
	}
	if splitLen < 1 {
		splitLen = 1
	}
	affineBits := bits[:splitLen]
	projBits := bits[splitLen:]

	accumulator := &NonZeroAffinePoint[T]{X: powerOfTwo.X, Y: powerOfTwo.Y}
	initialAccValue := c.ToProjectiveFromNonZero(accumulator)

	// Skip the LSB (handled by the conditional subtraction below) and
	// double once to account for that skip.
	*powerOfTwo = *c.DoubleInPlace(powerOfTwo)

	for i := 1; i < len(affineBits); i++ {
		added := c.AddUnchecked(accumulator, powerOfTwo)
		accumulator = c.SelectNonZero(affineBits[i], added, accumulator)
		*powerOfTwo = *c.DoubleInPlace(powerOfTwo)
	}

	result := c.ToProjectiveFromNonZero(accumulator)
	subtrahend := c.Select(affineBits[0], c.Zero(), initialAccValue)
	mulResult = c.Add(mulResult, c.Sub(result, subtrahend))

	for _, bit := range projBits {
		added := c.Add(mulResult, c.ToProjectiveFromNonZero(powerOfTwo))
		mulResult = c.Select(bit, added, mulResult)
		*powerOfTwo = *c.DoubleInPlace(powerOfTwo)
	}

	return mulResult
}

// stripConstantFalseLeadingBits drops most-significant bits known at
// compile time to be 0, shrinking the chunking work ScalarMulLE does below
// without changing the represented scalar (a little-endian value is
// unaffected by leading zero bits).
func stripConstantFalseLeadingBits(api frontend.API, bits []frontend.Variable) []frontend.Variable {
	end := len(bits)
	for end > 0 {
		v, ok := api.Compiler().ConstantValue(bits[end-1])
		if !ok || v.Sign() != 0 {
			break
		}
		end--
	}
	return bits[:end]
}

// ScalarMulBase computes [k]G where G is the curve's fixed generator
// (Params().GenX, Params().GenY), using the same split as ScalarMulLE.
func (c *Curve[T]) ScalarMulBase(bits []frontend.Variable) *ProjectivePoint[T] {
	gen := &AffinePoint[T]{
		X:        c.fapi.NewElement(c.params.GenX),
		Y:        c.fapi.NewElement(c.params.GenY),
		Infinity: 0,
	}
	return c.ScalarMulLE(c.ToProjective(gen), bits)
}
