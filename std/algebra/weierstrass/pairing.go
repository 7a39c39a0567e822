package weierstrass

import "errors"

// PairingGadget is the abstract interface a bilinear pairing gadget over a
// pair of curves implements. This package defines only the trait surface,
// not a concrete instantiation: a full Miller-loop and final-exponentiation
// implementation is curve-family specific (BLS12, BN, MNT4/6, ...) and is
// out of scope here, exactly as it is for the generic curve arithmetic
// this package does implement.
//
// G1 and G2 are the two source groups' circuit point types (typically a
// ProjectivePoint or AffinePoint instantiation of this package), GT is the
// target group's circuit element type (an extension-field element type
// from the consuming curve's own package), and G1Prepared/G2Prepared are
// any curve-specific precomputed representation the Miller loop wants
// (e.g. line-evaluation coefficients) instead of raw affine coordinates.
type PairingGadget[G1, G2, GT, G1Prepared, G2Prepared any] interface {
	// PrepareG1 converts a G1 point to the representation the Miller loop
	// consumes.
	PrepareG1(p G1) (G1Prepared, error)
	// PrepareG2 converts a G2 point to the representation the Miller loop
	// consumes.
	PrepareG2(q G2) (G2Prepared, error)

	// MillerLoop computes the Miller loop over the given prepared point
	// pairs, returning an (unfinalized) element of the target group's
	// extension field.
	MillerLoop(ps []G1Prepared, qs []G2Prepared) (GT, error)

	// FinalExponentiation raises a Miller-loop output to the
	// (p^k - 1)/r power to land in the order-r subgroup of the target
	// group.
	FinalExponentiation(millerLoopResult GT) GT

	// AssertFinalExponentiationIsOne is a cheaper assertion-only variant
	// of FinalExponentiation, for verifiers that only need to check
	// e(P,Q) == 1 rather than read off the pairing value itself.
	AssertFinalExponentiationIsOne(millerLoopResult GT)
}

// Pairing computes e(p, q) = FinalExponentiation(MillerLoop([p], [q])),
// the composition law every PairingGadget implementation must satisfy.
func Pairing[G1, G2, GT, G1P, G2P any](g PairingGadget[G1, G2, GT, G1P, G2P], p G1, q G2) (GT, error) {
	var zero GT
	pp, err := g.PrepareG1(p)
	if err != nil {
		return zero, err
	}
	qp, err := g.PrepareG2(q)
	if err != nil {
		return zero, err
	}
	ml, err := g.MillerLoop([]G1P{pp}, []G2P{qp})
	if err != nil {
		return zero, err
	}
	return g.FinalExponentiation(ml), nil
}

// ProductOfPairings computes prod_i e(ps[i], qs[i]) in the target group by
// running a single Miller loop over every pair and finalizing once, which
// is cheaper than finalizing each pairing separately.
func ProductOfPairings[G1, G2, GT, G1P, G2P any](g PairingGadget[G1, G2, GT, G1P, G2P], ps []G1, qs []G2) (GT, error) {
	var zero GT
	if len(ps) != len(qs) {
		return zero, errMismatchedPairingInputLengths
	}
	g1p := make([]G1P, len(ps))
	g2p := make([]G2P, len(qs))
	for i := range ps {
		var err error
		g1p[i], err = g.PrepareG1(ps[i])
		if err != nil {
			return zero, err
		}
		g2p[i], err = g.PrepareG2(qs[i])
		if err != nil {
			return zero, err
		}
	}
	ml, err := g.MillerLoop(g1p, g2p)
	if err != nil {
		return zero, err
	}
	return g.FinalExponentiation(ml), nil
}

var errMismatchedPairingInputLengths = errors.New("weierstrass: mismatched number of G1 and G2 points in product of pairings")
