package weierstrass

import (
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
)

// AllocationMode controls how a value is introduced into the constraint
// system.
type AllocationMode uint8

const (
	// Constant values are baked into the circuit at compile time and never
	// hinted; arithmetic on them can be folded by the caller's FieldAPI.
	Constant AllocationMode = iota
	// Input values are public circuit inputs.
	Input
	// Witness values are private circuit inputs.
	Witness
)

func (m AllocationMode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Input:
		return "input"
	case Witness:
		return "witness"
	default:
		return "unknown"
	}
}

// FieldAPI is the collaborator every gadget in this package builds on: a
// field-variable abstraction over some base field, either the circuit's own
// native field (see std/algebra/nativefield) or a foreign field emulated via
// github.com/consensys/gnark/std/math/emulated (see std/algebra/emulatedfield).
//
// Methods are by value, not by pointer, so that native and emulated
// elements (frontend.Variable vs. emulated.Element[B]) can implement the
// same interface without the native side paying for pointer indirection it
// does not need.
type FieldAPI[T any] interface {
	// Add returns a+b.
	Add(a, b T) T
	// Sub returns a-b.
	Sub(a, b T) T
	// Mul returns a*b.
	Mul(a, b T) T
	// Square returns a*a.
	Square(a T) T
	// Neg returns -a.
	Neg(a T) T
	// Inverse returns 1/a. The circuit is unsatisfiable if a is zero.
	Inverse(a T) T
	// InverseOrZero returns 1/a if a is nonzero, and 0 if a is zero. It
	// never makes the circuit unsatisfiable on a zero input.
	InverseOrZero(a T) T
	// Div returns a/b. The circuit is unsatisfiable if b is zero.
	Div(a, b T) T
	// MulEquals asserts that a*b == c, typically cheaper than Mul plus a
	// separate AssertIsEqual.
	MulEquals(a, b, c T)

	// Select returns a if b == 1, c if b == 0. b must be boolean.
	Select(b frontend.Variable, a, c T) T
	// Lookup2 returns one of i0..i3 selected by the two bits b0, b1, in the
	// same bit order as frontend.API.Lookup2.
	Lookup2(b0, b1 frontend.Variable, i0, i1, i2, i3 T) T

	// IsZero returns 1 if a == 0, 0 otherwise.
	IsZero(a T) frontend.Variable
	// IsEqual returns 1 if a == b, 0 otherwise.
	IsEqual(a, b T) frontend.Variable
	// AssertIsEqual fails if a != b.
	AssertIsEqual(a, b T)

	// ToBitsLE returns the little-endian bit decomposition of a's canonical
	// representative.
	ToBitsLE(a T) []frontend.Variable
	// ToNonUniqueBitsLE returns a little-endian bit decomposition of a that
	// may be cheaper than ToBitsLE but need not be unique: for an emulated
	// field this skips the range-check against the modulus, so it can admit
	// non-canonical (but congruent) representations of the same value.
	ToNonUniqueBitsLE(a T) []frontend.Variable
	// FromBitsLE reconstructs a value from a little-endian bit slice.
	FromBitsLE(bits []frontend.Variable) T

	// Limbs returns a's representation as native constraint-system
	// elements: a single-element slice holding a itself for a native field,
	// or the emulated limb decomposition for a foreign field.
	Limbs(a T) []frontend.Variable

	// Zero returns the additive identity of the field.
	Zero() T
	// One returns the multiplicative identity of the field.
	One() T
	// NewElement allocates a field element from a *big.Int-compatible
	// literal (an int64, *big.Int, or string accepted by the underlying
	// representation) without adding a constraint; used for curve
	// constants.
	NewElement(v interface{}) T

	// Value returns the underlying big integer value of a, when known (the
	// element is a constant, or the circuit is being solved/tested with a
	// concrete assignment). ok is false when no concrete value is
	// available, e.g. when inspecting an unassigned witness at compile
	// time.
	Value(a T) (value *big.Int, ok bool)

	// NewHint witnesses nbOutputs new field elements by invoking hintFn
	// outside the constraint system, the same way frontend.API.Compiler()'s
	// NewHint does for native variables.
	NewHint(hintFn solver.Hint, nbOutputs int, inputs ...T) ([]T, error)
}
