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

type newVariableCircuit struct {
	X, Y frontend.Variable
}

func (c *newVariableCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	_, err := curve.NewVariable(weierstrass.Witness, p)
	return err
}

// G generates the order-43 subgroup and must pass NewVariable's subgroup
// check; F generates the full order-86 group and lies outside the
// subgroup, so the same check must reject it.
func TestNewVariableSubgroupCheck(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&newVariableCircuit{},
		test.WithValidAssignment(&newVariableCircuit{X: toyGenX, Y: toyGenY}),
		test.WithInvalidAssignment(&newVariableCircuit{X: 4, Y: 18}),
		test.WithCurves(ecc.BN254),
	)
}

type enforcePrimeOrderCircuit struct {
	X, Y frontend.Variable
}

func (c *enforcePrimeOrderCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	proj := curve.NewVariableOmitPrimeOrderCheck(weierstrass.Witness, p)
	return curve.EnforcePrimeOrder(proj)
}

func TestEnforcePrimeOrder(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&enforcePrimeOrderCircuit{},
		test.WithValidAssignment(&enforcePrimeOrderCircuit{X: toyGenX, Y: toyGenY}),
		test.WithInvalidAssignment(&enforcePrimeOrderCircuit{X: 4, Y: 18}),
		test.WithCurves(ecc.BN254),
	)
}

// oddCofactorCurve is y^2 = x^3 + 2x + 2 over F_13, #E(F_13) = 15 = 3 * 5:
// cofactor 3 is odd (popcount 2), r-1 = 4 has popcount 1, so
// nativecurve.CofactorWeightBranch picks the power-of-two-first branch
// (with k == 0, since the cofactor itself is odd) rather than the
// cofactor-first branch the other toy curve above exercises. G = (2, 1)
// generates the order-5 subgroup; F = (3, 3) generates the full order-15
// group and lies outside it.
func oddCofactorCurve(api frontend.API) *weierstrass.Curve[frontend.Variable] {
	f := nativefield.New(api)
	params := weierstrass.NewCurveParams[frontend.Variable](
		f, big.NewInt(2), big.NewInt(2), big.NewInt(5), big.NewInt(3), big.NewInt(2), big.NewInt(1))
	return weierstrass.NewCurve[frontend.Variable](api, f, params)
}

type oddCofactorCircuit struct {
	X, Y frontend.Variable
}

func (c *oddCofactorCircuit) Define(api frontend.API) error {
	curve := oddCofactorCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	_, err := curve.NewVariable(weierstrass.Witness, p)
	return err
}

func TestNewVariableSubgroupCheckPowerOfTwoFirstBranch(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&oddCofactorCircuit{},
		test.WithValidAssignment(&oddCofactorCircuit{X: 2, Y: 1}),
		test.WithInvalidAssignment(&oddCofactorCircuit{X: 3, Y: 3}),
		test.WithCurves(ecc.BN254),
	)
}
