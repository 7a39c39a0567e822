// Package weierstrass implements arithmetic-circuit gadgets for group
// operations on short Weierstrass curves y^2 = x^3 + a*x + b, suitable for
// embedding inside an R1CS built with github.com/consensys/gnark.
//
// The package is generic over the base-field representation through the
// FieldAPI interface: instantiate with github.com/arkzkp/gnark-weierstrass/
// std/algebra/nativefield for a curve defined over the circuit's own native
// field, or std/algebra/emulatedfield for a curve defined over a foreign
// field via github.com/consensys/gnark/std/math/emulated.
package weierstrass
