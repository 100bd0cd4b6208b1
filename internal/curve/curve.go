// Package curve pins the BLS12-381 surface this module consumes from
// github.com/consensys/gnark-crypto. Everything outside this package talks
// to Fr/G1/G2 only through the names declared here, matching the external
// collaborator contract in spec.md §6: the pairing library itself is out of
// scope, the core only depends on a handful of operations on it.
package curve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fr is a BLS12-381 scalar field element.
type Fr = fr.Element

// G1 and G2 are Jacobian group elements; the zero value of each (Z == 0)
// is the point at infinity, used throughout as the identity sentinel that
// spec.md calls g1_identity.
type G1 = bls12381.G1Jac
type G2 = bls12381.G2Jac
type G1Affine = bls12381.G1Affine
type G2Affine = bls12381.G2Affine

// Null is the sentinel value spec.md §3 calls fr_null: a value that never
// arises from arithmetic, used historically to mark erasures in-band. This
// module does not thread Null through its public API (see recovery.Sample);
// it is kept only so IsNull below can recognise values that arrive from
// callers still using the older in-band convention.
var Null = func() Fr {
	var z Fr
	// The modulus itself is never produced by any valid field element's
	// Montgomery representation; an out-of-range value is easiest to get
	// by setting all limbs to ^0 and relying on the fact that no correct
	// op ever writes that pattern. Equivalent in spirit to c-kzg's
	// dedicated fr_null.
	for i := range z {
		z[i] = ^uint64(0)
	}
	return z
}()

// IsNull reports whether f is the erasure sentinel.
func IsNull(f *Fr) bool {
	return *f == Null
}

var (
	zero Fr
	one  = func() Fr { var o Fr; o.SetOne(); return o }()
)

// Zero returns the additive identity.
func Zero() Fr { return zero }

// One returns the multiplicative identity.
func One() Fr { return one }

// FromUint64 builds a field element from a small integer.
func FromUint64(v uint64) Fr {
	var f Fr
	f.SetUint64(v)
	return f
}

// Div computes a/b; gnark-crypto's Element has no Div method, so this is
// Mul-by-inverse, matching how polynomial long division and recovery use
// field division throughout spec.md §4.3/§4.7.
func Div(a, b *Fr) (Fr, error) {
	if b.IsZero() {
		return Fr{}, errors.New("division by zero field element")
	}
	var inv, out Fr
	inv.Inverse(b)
	out.Mul(a, &inv)
	return out, nil
}

// RootOfUnity returns a primitive 2^order-th root of unity in Fr, derived
// from the field's canonical generator by exponentiating to
// (modulus-1)/2^order, exactly as the FFT settings in spec.md §3 require.
// order must not exceed the field's two-adicity (32 for BLS12-381 Fr).
func RootOfUnity(order uint) (Fr, error) {
	const twoAdicity = 32
	if order > twoAdicity {
		return Fr{}, fmt.Errorf("order %d exceeds BLS12-381 Fr two-adicity %d", order, twoAdicity)
	}

	modulus := fr.Modulus()
	exp := new(big.Int).Sub(modulus, big.NewInt(1))
	denom := new(big.Int).Lsh(big.NewInt(1), order)
	exp.Div(exp, denom)

	var generator, root Fr
	generator.SetUint64(primitiveElement)
	root.Exp(generator, exp)
	return root, nil
}

// primitiveElement is a generator of Fr's full multiplicative group; 7 is
// the conventional choice used throughout the Ethereum KZG/DAS ecosystem
// for BLS12-381.
const primitiveElement = 7

// G1Generator and G2Generator return the curve's standard base points.
func G1Generator() G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func G2Generator() G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// ScalarMulG1 computes [a]P for an affine P, returning a Jacobian result.
func ScalarMulG1(p *G1Affine, a *Fr) G1 {
	var bi big.Int
	a.ToBigIntRegular(&bi)
	var out G1Affine
	out.ScalarMultiplication(p, &bi)
	var jac G1
	jac.FromAffine(&out)
	return jac
}

// ScalarMulG1Jac computes [a]P for a Jacobian P, used by the G1 FFT engine
// where points stay in Jacobian form across every butterfly stage instead of
// round-tripping through affine coordinates.
func ScalarMulG1Jac(p *G1, a *Fr) G1 {
	var bi big.Int
	a.ToBigIntRegular(&bi)
	var out G1
	out.ScalarMultiplication(p, &bi)
	return out
}

// AddG1 and SubG1 add/subtract Jacobian G1 points.
func AddG1(a, b *G1) G1 {
	var out G1
	out.Set(a)
	out.AddAssign(b)
	return out
}

func SubG1(a, b *G1) G1 {
	var out G1
	out.Set(a)
	out.SubAssign(b)
	return out
}

// ToAffineG1 and ToAffineG2 convert Jacobian points to affine form, the
// representation the SRS and proofs are stored/transmitted in.
func ToAffineG1(p *G1) G1Affine {
	var out G1Affine
	out.FromJacobian(p)
	return out
}

func ToAffineG2(p *G2) G2Affine {
	var out G2Affine
	out.FromJacobian(p)
	return out
}

// MultiExpG1 computes Σ scalars[i]·points[i].
func MultiExpG1(points []G1Affine, scalars []Fr) (G1Affine, error) {
	var out G1Affine
	if len(points) == 0 {
		return out, nil
	}
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1Affine{}, err
	}
	return out, nil
}

// ScalarMulG2 computes [a]P for an affine G2 point.
func ScalarMulG2(p *G2Affine, a *Fr) G2Affine {
	var bi big.Int
	a.ToBigIntRegular(&bi)
	var out G2Affine
	out.ScalarMultiplication(p, &bi)
	return out
}

// MultiExpG2 computes Σ scalars[i]·points[i] over G2, used to commit a
// polynomial against a G2 SRS tower (multi-point KZG verification needs a
// commitment to the vanishing polynomial in G2, not just G1).
func MultiExpG2(points []G2Affine, scalars []Fr) (G2Affine, error) {
	var out G2Affine
	if len(points) == 0 {
		return out, nil
	}
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G2Affine{}, err
	}
	return out, nil
}

// AddG1Affine and SubG1Affine add/subtract affine G1 points via a Jacobian
// round-trip, the form KZG commitment arithmetic (C - [y]₁, folding proofs)
// needs.
func AddG1Affine(a, b *G1Affine) G1Affine {
	var ja, jb, out G1
	ja.FromAffine(a)
	jb.FromAffine(b)
	out.Set(&ja)
	out.AddAssign(&jb)
	var outAff G1Affine
	outAff.FromJacobian(&out)
	return outAff
}

func SubG1Affine(a, b *G1Affine) G1Affine {
	var ja, jb, out G1
	ja.FromAffine(a)
	jb.FromAffine(b)
	out.Set(&ja)
	out.SubAssign(&jb)
	var outAff G1Affine
	outAff.FromJacobian(&out)
	return outAff
}

// SubG2Affine subtracts affine G2 points.
func SubG2Affine(a, b *G2Affine) G2Affine {
	var ja, jb, out G2
	ja.FromAffine(a)
	jb.FromAffine(b)
	out.Set(&ja)
	out.SubAssign(&jb)
	var outAff G2Affine
	outAff.FromJacobian(&out)
	return outAff
}

// PairingsVerify reports whether e(a1,a2) == e(b1,b2), the single pairing
// check every KZG verification in spec.md §4.5 reduces to.
func PairingsVerify(a1 *G1Affine, a2 *G2Affine, b1 *G1Affine, b2 *G2Affine) (bool, error) {
	var negB1 G1Affine
	negB1.Neg(b1)
	return bls12381.PairingCheck([]G1Affine{*a1, negB1}, []G2Affine{*a2, *b2})
}

// BackendVersion is this package's pinned gnark-crypto version, reported to
// CheckBackendVersion by fft.NewSettings, which every other settings
// constructor builds on, before anything is built on top of the curve. RequiredBackendVersion is the range this
// module was built against; a swapped-in alternative backend reporting a
// version outside that range is rejected at construction time rather than
// producing silently-wrong field/group arithmetic.
const (
	BackendVersion         = "0.8.0"
	RequiredBackendVersion = ">=0.8.0 <1.0.0"
)

// CheckBackendVersion validates that a pluggable curve backend's
// self-reported semantic version satisfies the range this module was built
// against. Called once by fft.NewSettings before any root-of-unity or
// settings state is derived from the backend.
func CheckBackendVersion(reported string, constraint string) error {
	v, err := semver.Parse(reported)
	if err != nil {
		return fmt.Errorf("parsing backend version %q: %w", reported, err)
	}
	rng, err := semver.ParseRange(constraint)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	if !rng(v) {
		return fmt.Errorf("curve backend version %s does not satisfy %s", reported, constraint)
	}
	return nil
}
