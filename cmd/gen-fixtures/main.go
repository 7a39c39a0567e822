// Command gen-fixtures produces golden test vectors for the weierstrass
// gadgets: for a batch of (curve, scalar, point) triples it computes the
// expected native result with nativecurve.GenericNativeCurve and writes
// the batch to a compact on-disk fixture file, for regression tests that
// want to check circuit output against a previously-recorded answer
// instead of only against a freshly-recomputed oracle.
package main

import (
	"bytes"
	"crypto/rand"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"
	"github.com/ronanh/intcomp"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/arkzkp/gnark-weierstrass/std/algebra/nativecurve"
)

// Fixture is one recorded (curve, scalar, expected point) vector.
type Fixture struct {
	CurveName    string
	ScalarBitLen int
	Scalar       []byte // big-endian
	BaseX, BaseY []byte
	ExpectedX    []byte
	ExpectedY    []byte
	Infinity     bool
}

// fixtureFile is the on-disk container: a cbor-encoded header plus a
// bit-length index compressed with intcomp, matching the shape a real
// gnark-style witness/constraint-system serializer uses (cbor envelope,
// compressed auxiliary index tables).
type fixtureFile struct {
	Fixtures       []Fixture
	BitLenIndex    []byte // intcomp-compressed []int32 of each fixture's ScalarBitLen
	Checksum       [32]byte
	GeneratorNotes string
}

func main() {
	var (
		out      = flag.String("out", "", "output fixture file path")
		n        = flag.Int("n", 16, "number of fixtures to generate")
		curveP   = flag.String("p", "", "base field modulus, decimal")
		curveA   = flag.String("a", "0", "curve coefficient a, decimal")
		curveB   = flag.String("b", "7", "curve coefficient b, decimal")
		genXFlag = flag.String("genx", "", "generator X, decimal")
		genYFlag = flag.String("geny", "", "generator Y, decimal")
		name     = flag.String("name", "testcurve", "curve name recorded in the fixture")
	)
	flag.Parse()

	if *out == "" || *curveP == "" || *genXFlag == "" || *genYFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: gen-fixtures -p P -genx X -geny Y -out FILE [-n N] [-a A] [-b B] [-name NAME]")
		os.Exit(2)
	}

	p, _ := new(big.Int).SetString(*curveP, 10)
	a, _ := new(big.Int).SetString(*curveA, 10)
	b, _ := new(big.Int).SetString(*curveB, 10)
	genX, _ := new(big.Int).SetString(*genXFlag, 10)
	genY, _ := new(big.Int).SetString(*genYFlag, 10)
	if p == nil || a == nil || b == nil || genX == nil || genY == nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures: invalid decimal parameter")
		os.Exit(1)
	}

	curve := &nativecurve.GenericNativeCurve{P: p, A: a, B: b}
	base := nativecurve.NativeAffine{X: genX, Y: genY}

	fixtures := make([]Fixture, *n)
	bitLens := make([]int32, *n)

	// Each fixture's scalar multiplication is an independent native
	// computation; computing the batch concurrently is ambient fixture
	// tooling, not the single-threaded circuit-building core this
	// generator feeds into.
	var g errgroup.Group
	for i := 0; i < *n; i++ {
		i := i
		g.Go(func() error {
			k, err := rand.Int(rand.Reader, p)
			if err != nil {
				return err
			}
			res := curve.ScalarMul(base, k)
			x, y, infinity := nativecurve.ScalarMulToWeierstrass(res)
			fixtures[i] = Fixture{
				CurveName:    *name,
				ScalarBitLen: k.BitLen(),
				Scalar:       k.Bytes(),
				BaseX:        genX.Bytes(),
				BaseY:        genY.Bytes(),
				ExpectedX:    x.Bytes(),
				ExpectedY:    y.Bytes(),
				Infinity:     infinity,
			}
			bitLens[i] = int32(k.BitLen())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
		os.Exit(1)
	}

	compressedLens := intcomp.CompressUint32(int32ToUint32(bitLens), nil)
	var lenBuf bytes.Buffer
	bw := bitio.NewWriter(&lenBuf)
	for _, v := range compressedLens {
		if err := bw.WriteBits(uint64(v), 32); err != nil {
			fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
			os.Exit(1)
		}
	}
	if err := bw.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
		os.Exit(1)
	}

	payload, err := cbor.Marshal(fixtures)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
		os.Exit(1)
	}
	checksum := blake2b.Sum256(payload)

	file := fixtureFile{
		Fixtures:       fixtures,
		BitLenIndex:    lenBuf.Bytes(),
		Checksum:       checksum,
		GeneratorNotes: fmt.Sprintf("generated by gen-fixtures for curve %s, %d fixtures", *name, *n),
	}

	encoded, err := cbor.Marshal(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gen-fixtures:", err)
		os.Exit(1)
	}
}

func int32ToUint32(in []int32) []uint32 {
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(v)
	}
	return out
}
