package weierstrass

import "github.com/consensys/gnark/frontend"

// ToBitsLE returns the little-endian bit serialization of p: the bits of X,
// then the bits of Y, then the infinity flag, matching the fixed
// x || y || infinity concatenation order of the reference this package is
// modeled on. The coordinate bits are each individually constrained to be
// the canonical (fully reduced, < modulus) representative.
func (c *Curve[T]) ToBitsLE(p *AffinePoint[T]) []frontend.Variable {
	f := c.fapi
	bits := append([]frontend.Variable{}, f.ToBitsLE(p.X)...)
	bits = append(bits, f.ToBitsLE(p.Y)...)
	bits = append(bits, p.Infinity)
	return bits
}

// ToNonUniqueBitsLE is like ToBitsLE but does not enforce that the
// coordinate representatives are canonical (i.e. the same field element
// may serialize either as its reduced value or as value+modulus). It is
// cheaper and suffices whenever the
// caller does not need a unique encoding, e.g. as a hash-to-field input
// that is itself range-checked downstream.
func (c *Curve[T]) ToNonUniqueBitsLE(p *AffinePoint[T]) []frontend.Variable {
	f := c.fapi
	bits := append([]frontend.Variable{}, f.ToNonUniqueBitsLE(p.X)...)
	bits = append(bits, f.ToNonUniqueBitsLE(p.Y)...)
	bits = append(bits, p.Infinity)
	return bits
}

// ToBytes returns the little-endian byte serialization of p, packing the
// bit serialization from ToBitsLE 8 bits to a byte.
func (c *Curve[T]) ToBytes(p *AffinePoint[T]) []frontend.Variable {
	return packBitsLE(c.api, c.ToBitsLE(p))
}

// ToNonUniqueBytes is the non-canonical counterpart of ToBytes, built on
// ToNonUniqueBitsLE.
func (c *Curve[T]) ToNonUniqueBytes(p *AffinePoint[T]) []frontend.Variable {
	return packBitsLE(c.api, c.ToNonUniqueBitsLE(p))
}

// ToConstraintField returns p's coordinates and infinity flag expressed as
// native constraint-system elements: for a native curve this is just
// (X, Y, Infinity); for a curve over an emulated base field this flattens
// each coordinate's limb decomposition. This is the representation a
// recursive verifier or a native-field hash consumes.
func (c *Curve[T]) ToConstraintField(p *AffinePoint[T]) []frontend.Variable {
	f := c.fapi
	out := append([]frontend.Variable{}, f.Limbs(p.X)...)
	out = append(out, f.Limbs(p.Y)...)
	out = append(out, p.Infinity)
	return out
}

func packBitsLE(api frontend.API, bits []frontend.Variable) []frontend.Variable {
	nbBytes := (len(bits) + 7) / 8
	out := make([]frontend.Variable, nbBytes)
	for i := 0; i < nbBytes; i++ {
		lo := i * 8
		hi := lo + 8
		if hi > len(bits) {
			hi = len(bits)
		}
		out[i] = api.FromBinary(bits[lo:hi]...)
	}
	return out
}
