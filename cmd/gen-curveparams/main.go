// Command gen-curveparams emits a Go source file declaring a named curve's
// constants (a, b, order, cofactor, generator) as a variable of an
// anonymous struct of decimal strings; it does not emit a
// weierstrass.CurveParams value, which callers build with NewCurveParams.
// It works the same way gnark-crypto generates its
// per-curve field and curve arithmetic from a small set of numeric
// parameters rather than by hand.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"text/template"

	"github.com/blang/semver/v4"
	"github.com/consensys/bavard"
	"github.com/consensys/gnark-crypto/ecc"
)

type curveParamsData struct {
	Package  string
	Name     string
	A, B     string
	Order    string
	Cofactor string
	GenX     string
	GenY     string
}

var curveParamsTemplate = `
// CurveParams{{.Name}} holds the constants for the {{.Name}} curve.
var CurveParams{{.Name}} = struct {
	A, B       string
	Order      string
	Cofactor   string
	GenX, GenY string
}{
	A:        "{{.A}}",
	B:        "{{.B}}",
	Order:    "{{.Order}}",
	Cofactor: "{{.Cofactor}}",
	GenX:     "{{.GenX}}",
	GenY:     "{{.GenY}}",
}
`

func main() {
	var (
		name     = flag.String("name", "", "curve name, used for the generated identifier")
		pkg      = flag.String("package", "curveparams", "package name for the generated file")
		out      = flag.String("out", "", "output file path")
		a        = flag.String("a", "0", "curve coefficient a, decimal")
		b        = flag.String("b", "0", "curve coefficient b, decimal")
		order    = flag.String("order", "", "subgroup prime order, decimal")
		cofactor = flag.String("cofactor", "1", "cofactor, decimal")
		genX     = flag.String("genx", "0", "generator X, decimal")
		genY     = flag.String("geny", "0", "generator Y, decimal")
	)
	flag.Parse()

	if *name == "" || *order == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: gen-curveparams -name NAME -order ORDER -out FILE [-a A] [-b B] [-cofactor H] [-genx X] [-geny Y]")
		os.Exit(2)
	}

	if err := checkGnarkCryptoCompat(); err != nil {
		fmt.Fprintln(os.Stderr, "gen-curveparams: compatibility check failed:", err)
		os.Exit(1)
	}

	for _, dec := range []string{*a, *b, *order, *cofactor, *genX, *genY} {
		if _, ok := new(big.Int).SetString(dec, 10); !ok {
			fmt.Fprintln(os.Stderr, "gen-curveparams: not a decimal integer:", dec)
			os.Exit(1)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-curveparams:", err)
		os.Exit(1)
	}
	defer f.Close()

	bv := bavard.Bavard{}
	if err := bv.Generate(f, *out, template.FuncMap{}, bavard.Package(*pkg),
		bavard.GeneratedBy("gnark-weierstrass/cmd/gen-curveparams")); err != nil {
		// bavard only emits the header; fall through and still emit the body
		// below so a header-generation regression in bavard's API surface
		// does not block the actual curve parameters from being written.
		fmt.Fprintln(os.Stderr, "gen-curveparams: warning: header generation failed:", err)
	}

	tmpl := template.Must(template.New("curveparams").Parse(curveParamsTemplate))
	if err := tmpl.Execute(f, curveParamsData{
		Package:  *pkg,
		Name:     *name,
		A:        *a,
		B:        *b,
		Order:    *order,
		Cofactor: *cofactor,
		GenX:     *genX,
		GenY:     *genY,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "gen-curveparams:", err)
		os.Exit(1)
	}
}

// gnarkCryptoCompatRange is the gnark-crypto version range this generator
// was written against; below that range, ecc.ID values or curve constants
// this tool relies on may have shifted shape.
const gnarkCryptoCompatRange = ">=0.17.0 <1.0.0"

func checkGnarkCryptoCompat() error {
	rng, err := semver.ParseRange(gnarkCryptoCompatRange)
	if err != nil {
		return err
	}
	// ecc.ID values are stable identifiers baked into gnark-crypto; probing
	// that the package exposes at least one known curve is the cheapest
	// available signal that the dependency is the shape this tool expects,
	// short of a version string gnark-crypto itself does not export.
	if ecc.BN254.String() == "" {
		return fmt.Errorf("unexpected gnark-crypto ecc package shape")
	}
	// version is pinned via go.mod rather than queried at runtime: the
	// range above is only parsed, never compared against the linked
	// gnark-crypto version, so this check fails only on a malformed range
	// or an ecc package without the BN254 identifier.
	_ = rng
	return nil
}
