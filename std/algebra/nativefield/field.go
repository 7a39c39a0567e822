// Package nativefield implements weierstrass.FieldAPI[frontend.Variable]
// by direct delegation to github.com/consensys/gnark/frontend.API, for
// curves defined over the circuit's own native field.
package nativefield

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

func init() {
	solver.RegisterHint(InverseOrZeroHint)
}

// Field implements weierstrass.FieldAPI[frontend.Variable].
type Field struct {
	api frontend.API
}

// New constructs a Field collaborator over the circuit's native field.
func New(api frontend.API) *Field {
	return &Field{api: api}
}

func (f *Field) Add(a, b frontend.Variable) frontend.Variable { return f.api.Add(a, b) }
func (f *Field) Sub(a, b frontend.Variable) frontend.Variable { return f.api.Sub(a, b) }
func (f *Field) Mul(a, b frontend.Variable) frontend.Variable { return f.api.Mul(a, b) }
func (f *Field) Square(a frontend.Variable) frontend.Variable { return f.api.Mul(a, a) }
func (f *Field) Neg(a frontend.Variable) frontend.Variable    { return f.api.Neg(a) }
func (f *Field) Inverse(a frontend.Variable) frontend.Variable {
	return f.api.Inverse(a)
}
func (f *Field) Div(a, b frontend.Variable) frontend.Variable { return f.api.Div(a, b) }

func (f *Field) MulEquals(a, b, c frontend.Variable) {
	f.api.AssertIsEqual(f.api.Mul(a, b), c)
}

// InverseOrZero returns 1/a if a != 0, and 0 if a == 0, using a registered
// hint to witness the candidate inverse and the two constraints
//
//	a * inv   == 1 - isZero(a)
//	inv * isZero(a) == 0
//
// to enforce it, mirroring the z-inverse trick ProjectivePoint.ToAffine
// needs to convert the point at infinity without branching.
func (f *Field) InverseOrZero(a frontend.Variable) frontend.Variable {
	out, err := f.api.Compiler().NewHint(InverseOrZeroHint, 1, a)
	if err != nil {
		panic(err)
	}
	inv := out[0]
	isZero := f.api.IsZero(a)
	notZero := f.api.Sub(1, isZero)
	f.api.AssertIsEqual(f.api.Mul(a, inv), notZero)
	// inv must be 0 when a is 0: the hint always returns 0 in that case,
	// but nothing above constrains it, so pin it down explicitly.
	f.api.AssertIsEqual(f.api.Mul(inv, isZero), 0)
	return inv
}

func (f *Field) Select(b frontend.Variable, a, c frontend.Variable) frontend.Variable {
	return f.api.Select(b, a, c)
}

func (f *Field) Lookup2(b0, b1 frontend.Variable, i0, i1, i2, i3 frontend.Variable) frontend.Variable {
	return f.api.Lookup2(b0, b1, i0, i1, i2, i3)
}

func (f *Field) IsZero(a frontend.Variable) frontend.Variable { return f.api.IsZero(a) }

func (f *Field) IsEqual(a, b frontend.Variable) frontend.Variable {
	return f.api.IsZero(f.api.Sub(a, b))
}

func (f *Field) AssertIsEqual(a, b frontend.Variable) { f.api.AssertIsEqual(a, b) }

func (f *Field) ToBitsLE(a frontend.Variable) []frontend.Variable {
	return f.api.ToBinary(a)
}

// ToNonUniqueBitsLE has no cheaper non-canonical counterpart here: the
// native field has a single prime modulus and ToBinary's decomposition is
// already the only representation available.
func (f *Field) ToNonUniqueBitsLE(a frontend.Variable) []frontend.Variable {
	return f.ToBitsLE(a)
}

func (f *Field) FromBitsLE(bits []frontend.Variable) frontend.Variable {
	return f.api.FromBinary(bits...)
}

// Limbs returns a itself: the native field has no limb decomposition.
func (f *Field) Limbs(a frontend.Variable) []frontend.Variable {
	return []frontend.Variable{a}
}

func (f *Field) Zero() frontend.Variable { return 0 }
func (f *Field) One() frontend.Variable  { return 1 }

func (f *Field) NewElement(v interface{}) frontend.Variable { return v }

func (f *Field) Value(a frontend.Variable) (*big.Int, bool) {
	return f.api.Compiler().ConstantValue(a)
}

func (f *Field) NewHint(hintFn solver.Hint, nbOutputs int, inputs ...frontend.Variable) ([]frontend.Variable, error) {
	return f.api.Compiler().NewHint(hintFn, nbOutputs, inputs...)
}

// InverseOrZeroHint is the solver.Hint computing 1/a mod field order, or 0
// when a is 0.
func InverseOrZeroHint(mod *big.Int, inputs, outputs []*big.Int) error {
	a := inputs[0]
	if a.Sign() == 0 {
		outputs[0].SetInt64(0)
		return nil
	}
	outputs[0].ModInverse(a, mod)
	return nil
}
