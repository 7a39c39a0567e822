// Package emulatedfield implements weierstrass.FieldAPI[emulated.Element[B]]
// by thin delegation to github.com/consensys/gnark/std/math/emulated, for
// curves defined over a base field foreign to the circuit's native field.
package emulatedfield

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
)

// Field implements weierstrass.FieldAPI[emulated.Element[B]]. Its methods
// take and return emulated.Element[B] by value, matching the value-based
// FieldAPI contract, and internally dereference to call into the pointer-
// receiver real emulated.Field[B].
type Field[B emulated.FieldParams] struct {
	inner *emulated.Field[B]
}

// New wraps a real *emulated.Field[B] as a weierstrass.FieldAPI.
func New[B emulated.FieldParams](inner *emulated.Field[B]) *Field[B] {
	return &Field[B]{inner: inner}
}

// Inner returns the wrapped *emulated.Field[B], for callers that need the
// full emulated API surface beyond FieldAPI (e.g. ReduceStrict).
func (f *Field[B]) Inner() *emulated.Field[B] { return f.inner }

func (f *Field[B]) Add(a, b emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Add(&a, &b)
}
func (f *Field[B]) Sub(a, b emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Sub(&a, &b)
}
func (f *Field[B]) Mul(a, b emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Mul(&a, &b)
}
func (f *Field[B]) Square(a emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Mul(&a, &a)
}
func (f *Field[B]) Neg(a emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Neg(&a)
}
func (f *Field[B]) Inverse(a emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Inverse(&a)
}
func (f *Field[B]) Div(a, b emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Div(&a, &b)
}
func (f *Field[B]) MulEquals(a, b, c emulated.Element[B]) {
	f.inner.AssertIsEqual(f.inner.Mul(&a, &b), &c)
}

// InverseOrZero returns 1/a if a != 0, 0 otherwise. emulated.Field has no
// such primitive since non-native division already produces an
// unsatisfiable circuit on a zero divisor; this builds it from IsZero and
// a Select around Inverse-of-a-nonzero-substitute, so the substitution never
// actually divides by zero on the happy path the prover explores.
func (f *Field[B]) InverseOrZero(a emulated.Element[B]) emulated.Element[B] {
	isZero := f.inner.IsZero(&a)
	one := f.inner.One()
	safe := f.inner.Select(isZero, one, &a)
	inv := f.inner.Inverse(safe)
	zero := f.inner.Zero()
	out := f.inner.Select(isZero, zero, inv)
	return *out
}

func (f *Field[B]) Select(b frontend.Variable, a, c emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Select(b, &a, &c)
}

func (f *Field[B]) Lookup2(b0, b1 frontend.Variable, i0, i1, i2, i3 emulated.Element[B]) emulated.Element[B] {
	return *f.inner.Lookup2(b0, b1, &i0, &i1, &i2, &i3)
}

func (f *Field[B]) IsZero(a emulated.Element[B]) frontend.Variable {
	return f.inner.IsZero(&a)
}

func (f *Field[B]) IsEqual(a, b emulated.Element[B]) frontend.Variable {
	diff := f.inner.Sub(&a, &b)
	return f.inner.IsZero(diff)
}

func (f *Field[B]) AssertIsEqual(a, b emulated.Element[B]) {
	f.inner.AssertIsEqual(&a, &b)
}

func (f *Field[B]) ToBitsLE(a emulated.Element[B]) []frontend.Variable {
	return f.inner.ToBitsCanonical(&a)
}

// ToNonUniqueBitsLE skips the canonical range-check ToBitsLE pays for,
// admitting any representation of a congruent to the same value mod the
// emulated modulus.
func (f *Field[B]) ToNonUniqueBitsLE(a emulated.Element[B]) []frontend.Variable {
	return f.inner.ToBits(&a)
}

func (f *Field[B]) FromBitsLE(bits []frontend.Variable) emulated.Element[B] {
	return *f.inner.FromBits(bits...)
}

// Limbs returns a's limb decomposition, each limb a native
// constraint-system element.
func (f *Field[B]) Limbs(a emulated.Element[B]) []frontend.Variable {
	return a.Limbs
}

func (f *Field[B]) Zero() emulated.Element[B] { return *f.inner.Zero() }
func (f *Field[B]) One() emulated.Element[B]  { return *f.inner.One() }

func (f *Field[B]) NewElement(v interface{}) emulated.Element[B] {
	return *f.inner.NewElement(v)
}

func (f *Field[B]) Value(a emulated.Element[B]) (*big.Int, bool) {
	return f.inner.ConstantValue(&a)
}

func (f *Field[B]) NewHint(hintFn solver.Hint, nbOutputs int, inputs ...emulated.Element[B]) ([]emulated.Element[B], error) {
	ptrs := make([]*emulated.Element[B], len(inputs))
	for i := range inputs {
		ptrs[i] = &inputs[i]
	}
	outs, err := f.inner.NewHint(hintFn, nbOutputs, ptrs...)
	if err != nil {
		return nil, err
	}
	res := make([]emulated.Element[B], len(outs))
	for i, o := range outs {
		res[i] = *o
	}
	return res, nil
}
