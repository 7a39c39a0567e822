package weierstrass

import "errors"

// ErrAssignmentMissing reports that the concrete native value of a circuit
// element (needed to synthesize a witness, or to drive a native side
// computation) is not available, e.g. the element is an unassigned witness
// at compile time. No function in this module returns it.
var ErrAssignmentMissing = errors.New("weierstrass: concrete assignment not available for this element")

// ErrSubgroupCheckNotSupported is returned by EnforcePrimeOrder when the
// curve parameters do not permit the check: Order is nil, or the cofactor
// (respectively its power-of-two factor) has no inverse modulo the modulus
// the selected branch needs. It surfaces as a returned error instead of a
// panic.
var ErrSubgroupCheckNotSupported = errors.New("weierstrass: prime-order subgroup check not supported for these curve parameters")

// ErrNotOnCurve reports that a point fails the curve equation check. No
// function in this module returns it; in-circuit on-curve failures surface
// as unsatisfied constraints (see AssertIsOnCurve).
var ErrNotOnCurve = errors.New("weierstrass: point is not on curve")
