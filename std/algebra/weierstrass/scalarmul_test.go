package weierstrass_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/arkzkp/gnark-weierstrass/std/algebra/weierstrass"
)

const scalarMulBits = 8

type scalarMulCircuit struct {
	X, Y      frontend.Variable
	Bits      [scalarMulBits]frontend.Variable
	ExpectedX frontend.Variable `gnark:",public"`
	ExpectedY frontend.Variable `gnark:",public"`
	Infinity  frontend.Variable `gnark:",public"`
}

func (c *scalarMulCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	p := &weierstrass.AffinePoint[frontend.Variable]{X: c.X, Y: c.Y, Infinity: 0}
	res := curve.ScalarMulLE(curve.ToProjective(p), c.Bits[:])
	affine := curve.ToAffine(res)
	api.AssertIsEqual(affine.Infinity, c.Infinity)
	// only compare coordinates when the result is not the point at
	// infinity; ToAffine's placeholder (0,1) at infinity would otherwise
	// fight a nonzero expected coordinate.
	notInf := api.Sub(1, c.Infinity)
	api.AssertIsEqual(api.Mul(notInf, api.Sub(affine.X, c.ExpectedX)), 0)
	api.AssertIsEqual(api.Mul(notInf, api.Sub(affine.Y, c.ExpectedY)), 0)
	return nil
}

func bitsLE(k uint64, n int) [scalarMulBits]frontend.Variable {
	var out [scalarMulBits]frontend.Variable
	for i := 0; i < n; i++ {
		out[i] = (k >> uint(i)) & 1
	}
	return out
}

// [k]G for a handful of small k, checked against the native toy-curve
// computation.
func TestScalarMulLESmallScalars(t *testing.T) {
	assert := test.NewAssert(t)
	cases := []struct {
		k        uint64
		x, y     int64
		infinity bool
	}{
		{0, 0, 0, true},
		{1, 0, 13, false},
		{2, 28, 4, false},
		{3, 37, 73, false},
		{5, 3, 77, false},
		{7, 9, 70, false},
		{13, 40, 67, false},
		{43, 0, 0, true}, // the subgroup order annihilates G
	}
	for _, tc := range cases {
		tc := tc
		assert.CheckCircuit(&scalarMulCircuit{},
			test.WithValidAssignment(&scalarMulCircuit{
				X: toyGenX, Y: toyGenY,
				Bits:      bitsLE(tc.k, scalarMulBits),
				ExpectedX: tc.x, ExpectedY: tc.y,
				Infinity: boolVar(tc.infinity),
			}),
			test.WithCurves(ecc.BN254),
		)
	}
}

func boolVar(b bool) frontend.Variable {
	if b {
		return 1
	}
	return 0
}

type scalarMulLinearityCircuit struct {
	KBits, LBits, SumBits [scalarMulBits]frontend.Variable
}

func (c *scalarMulLinearityCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	g := &weierstrass.AffinePoint[frontend.Variable]{X: toyGenX, Y: toyGenY, Infinity: 0}
	proj := curve.ToProjective(g)
	lhs := curve.Add(curve.ScalarMulLE(proj, c.KBits[:]), curve.ScalarMulLE(proj, c.LBits[:]))
	rhs := curve.ScalarMulLE(proj, c.SumBits[:])
	curve.AssertIsEqual(lhs, rhs)
	return nil
}

type scalarMulBaseCircuit struct {
	Bits      [scalarMulBits]frontend.Variable
	ExpectedX frontend.Variable `gnark:",public"`
	ExpectedY frontend.Variable `gnark:",public"`
}

func (c *scalarMulBaseCircuit) Define(api frontend.API) error {
	curve := toyCurve(api)
	res := curve.ScalarMulBase(c.Bits[:])
	affine := curve.ToAffine(res)
	api.AssertIsEqual(affine.X, c.ExpectedX)
	api.AssertIsEqual(affine.Y, c.ExpectedY)
	return nil
}

func TestScalarMulBase(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&scalarMulBaseCircuit{},
		test.WithValidAssignment(&scalarMulBaseCircuit{
			Bits:      bitsLE(7, scalarMulBits),
			ExpectedX: 9, ExpectedY: 70,
		}),
		test.WithCurves(ecc.BN254),
	)
}
