package nativecurve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkzkp/gnark-weierstrass/std/algebra/nativecurve"
)

// same toy curve as std/algebra/weierstrass's test suite: y^2 = x^3 + 2x + 3
// over F_83, G = (0, 13) has order 43, cofactor 2.
func toyCurve() *nativecurve.GenericNativeCurve {
	return &nativecurve.GenericNativeCurve{P: big.NewInt(83), A: big.NewInt(2), B: big.NewInt(3)}
}

func TestIsOnCurve(t *testing.T) {
	c := toyCurve()
	require.True(t, c.IsOnCurve(nativecurve.NativeAffine{X: big.NewInt(0), Y: big.NewInt(13)}))
	require.True(t, c.IsOnCurve(nativecurve.NativeAffine{Infinity: true}))
	require.False(t, c.IsOnCurve(nativecurve.NativeAffine{X: big.NewInt(1), Y: big.NewInt(1)}))
}

func TestScalarMulAgainstRepeatedAdd(t *testing.T) {
	c := toyCurve()
	g := nativecurve.NativeAffine{X: big.NewInt(0), Y: big.NewInt(13)}

	acc := nativecurve.NativeAffine{Infinity: true}
	for k := 0; k < 10; k++ {
		got := c.ScalarMul(g, big.NewInt(int64(k)))
		require.Equal(t, acc.Infinity, got.Infinity, "k=%d", k)
		if !acc.Infinity {
			require.Equal(t, 0, acc.X.Cmp(got.X), "k=%d x", k)
			require.Equal(t, 0, acc.Y.Cmp(got.Y), "k=%d y", k)
		}
		acc = c.Add(acc, g)
	}
}

func TestScalarMulOrderAnnihilates(t *testing.T) {
	c := toyCurve()
	g := nativecurve.NativeAffine{X: big.NewInt(0), Y: big.NewInt(13)}
	res := c.ScalarMul(g, big.NewInt(43))
	require.True(t, res.Infinity)
}

func TestCofactorWeightBranch(t *testing.T) {
	// cofactor 2 (popcount 1) against r-1 = 42 = 0b101010 (popcount 3):
	// the sparser cofactor makes the cofactor-first branch cheaper.
	require.True(t, nativecurve.CofactorWeightBranch(big.NewInt(2), big.NewInt(43)))
}

func TestScalarMulToWeierstrass(t *testing.T) {
	x, y, infinity := nativecurve.ScalarMulToWeierstrass(nativecurve.NativeAffine{Infinity: true})
	require.True(t, infinity)
	require.Equal(t, 0, x.Cmp(big.NewInt(0)))
	require.Equal(t, 0, y.Cmp(big.NewInt(0)))

	x, y, infinity = nativecurve.ScalarMulToWeierstrass(nativecurve.NativeAffine{X: big.NewInt(28), Y: big.NewInt(4)})
	require.False(t, infinity)
	require.Equal(t, 0, x.Cmp(big.NewInt(28)))
	require.Equal(t, 0, y.Cmp(big.NewInt(4)))
}
