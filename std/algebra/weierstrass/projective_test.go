package weierstrass_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/arkzkp/gnark-weierstrass/std/algebra/nativefield"
	"github.com/arkzkp/gnark-weierstrass/std/algebra/weierstrass"
)

// toy curve used throughout this package's tests: y^2 = x^3 + 2x + 3 over
// F_83, #E(F_83) = 86 = 2 * 43, G = (0, 13) generates the order-43
// subgroup; F = (4, 18) generates the full order-86 group and so lies
// outside the order-43 subgroup, giving a point that is on-curve but fails
// the subgroup check.
var (
	toyP        = big.NewInt(83)
	toyA        = big.NewInt(2)
	toyB        = big.NewInt(3)
	toyOrder    = big.NewInt(43)
	toyCofactor = big.NewInt(2)
	toyGenX     = big.NewInt(0)
	toyGenY     = big.NewInt(13)
)

func toyCurve(api frontend.API) *weierstrass.Curve[frontend.Variable] {
	f := nativefield.New(api)
	params := weierstrass.NewCurveParams[frontend.Variable](f, toyA, toyB, toyOrder, toyCofactor, toyGenX, toyGenY)
	return weierstrass.NewCurve[frontend.Variable](api, f, params)
}

type addCircuit struct {
	X1, Y1, X2, Y2 frontend.Variable
	ExpectedX      frontend.Variable `gnark:",public"`
	ExpectedY      frontend.Variable `gnark:",public"`
}

func (c *addCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X1, Y: c.Y1, Infinity: 0}
	q := &weierstrass.AffinePoint[frontend.Variable]{X: c.X2, Y: c.Y2, Infinity: 0}
	res := curve.Add(curve.ToProjective(p), curve.ToProjective(q))
	affine := curve.ToAffine(res)
	api.AssertIsEqual(affine.X, c.ExpectedX)
	api.AssertIsEqual(affine.Y, c.ExpectedY)
	return nil
}

// [2]G + [3]G == [5]G, computed natively and checked in-circuit.
func TestAddMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&addCircuit{},
		test.WithValidAssignment(&addCircuit{
			X1: 28, Y1: 4, // [2]G
			X2: 37, Y2: 73, // [3]G
			ExpectedX: 3, ExpectedY: 77, // [5]G
		}),
		test.WithCurves(ecc.BN254),
	)
}

type doubleCircuit struct {
	X, Y      frontend.Variable
	ExpectedX frontend.Variable `gnark:",public"`
	ExpectedY frontend.Variable `gnark:",public"`
}

func (c *doubleCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	res := curve.Double(curve.ToProjective(p))
	affine := curve.ToAffine(res)
	api.AssertIsEqual(affine.X, c.ExpectedX)
	api.AssertIsEqual(affine.Y, c.ExpectedY)
	return nil
}

// [2]G via Double matches the natively computed [2]G = (28, 4).
func TestDoubleMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&doubleCircuit{},
		test.WithValidAssignment(&doubleCircuit{
			X: toyGenX, Y: toyGenY,
			ExpectedX: 28, ExpectedY: 4,
		}),
		test.WithCurves(ecc.BN254),
	)
}

type onCurveCircuit struct {
	X, Y frontend.Variable
}

func (c *onCurveCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	curve.AssertIsOnCurve(curve.ToProjective(p))
	return nil
}

func TestAssertIsOnCurve(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&onCurveCircuit{},
		test.WithValidAssignment(&onCurveCircuit{X: toyGenX, Y: toyGenY}),
		test.WithInvalidAssignment(&onCurveCircuit{X: 1, Y: 1}),
		test.WithCurves(ecc.BN254),
	)
}

type zeroAddCircuit struct {
	X, Y      frontend.Variable
	ExpectedX frontend.Variable `gnark:",public"`
	ExpectedY frontend.Variable `gnark:",public"`
}

func (c *zeroAddCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	res := curve.Add(curve.ToProjective(p), curve.Zero())
	affine := curve.ToAffine(res)
	api.AssertIsEqual(affine.X, c.ExpectedX)
	api.AssertIsEqual(affine.Y, c.ExpectedY)
	return nil
}

// P + O == P, the completeness property the RCB formulae exist to provide.
func TestAddIdentity(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&zeroAddCircuit{},
		test.WithValidAssignment(&zeroAddCircuit{
			X: toyGenX, Y: toyGenY,
			ExpectedX: toyGenX, ExpectedY: toyGenY,
		}),
		test.WithCurves(ecc.BN254),
	)
}

type negAddCircuit struct {
	X, Y frontend.Variable
}

func (c *negAddCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	proj := curve.ToProjective(p)
	res := curve.Add(proj, curve.Negate(proj))
	isZero := curve.IsZero(res)
	api.AssertIsEqual(isZero, 1)
	return nil
}

// P + (-P) == O, the case the incomplete affine formulae cannot handle.
func TestAddInverse(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&negAddCircuit{},
		test.WithValidAssignment(&negAddCircuit{X: toyGenX, Y: toyGenY}),
		test.WithCurves(ecc.BN254),
	)
}
