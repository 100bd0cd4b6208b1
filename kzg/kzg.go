package kzg

import (
	"fmt"

	"github.com/nume-crypto/kzg-das/fft"
	"github.com/nume-crypto/kzg-das/internal/curve"
	"github.com/nume-crypto/kzg-das/polynomial"
	"github.com/nume-crypto/kzg-das/zeropoly"
)

// Commit computes C = Σᵢ p[i]·secretG1[i] via multi-scalar multiplication.
// p must be no longer than the settings' SRS.
func (s *Settings) Commit(p polynomial.Polynomial) (curve.G1Affine, error) {
	if len(p) > s.length() {
		return curve.G1Affine{}, fmt.Errorf("%w: polynomial of length %d exceeds SRS length %d", ErrBadArgs, len(p), s.length())
	}
	if len(p) == 0 {
		var zero curve.G1Affine
		return zero, nil
	}
	return curve.MultiExpG1(s.SecretG1[:len(p)], p)
}

// commitG2 commits p against the G2 tower, used to commit the vanishing
// polynomial for multi-point verification.
func (s *Settings) commitG2(p polynomial.Polynomial) (curve.G2Affine, error) {
	if len(p) > s.length() {
		return curve.G2Affine{}, fmt.Errorf("%w: polynomial of length %d exceeds SRS length %d", ErrBadArgs, len(p), s.length())
	}
	if len(p) == 0 {
		var zero curve.G2Affine
		return zero, nil
	}
	return curve.MultiExpG2(s.SecretG2[:len(p)], p)
}

// OpenSingle computes an opening proof for p at x0: the quotient commitment
// π = [q(s)]₁ where q(x) = (p(x) - p(x0)) / (x - x0). It returns π together
// with the claimed value y0 = p(x0).
func (s *Settings) OpenSingle(p polynomial.Polynomial, x0 *curve.Fr) (curve.G1Affine, curve.Fr, error) {
	y0 := p.Eval(x0)

	numerator := make(polynomial.Polynomial, len(p))
	copy(numerator, p)
	if len(numerator) == 0 {
		numerator = polynomial.Polynomial{curve.Zero()}
	}
	numerator[0].Sub(&numerator[0], &y0)

	var negX0 curve.Fr
	negX0.Neg(x0)
	divisor := polynomial.Polynomial{negX0, curve.One()}

	q, err := polynomial.LongDiv(numerator, divisor)
	if err != nil {
		return curve.G1Affine{}, curve.Fr{}, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	proof, err := s.Commit(q)
	if err != nil {
		return curve.G1Affine{}, curve.Fr{}, err
	}
	return proof, y0, nil
}

// VerifySingle checks e(C - [y0]₁, [1]₂) =? e(π, [s]₂ - [x0]₂).
func (s *Settings) VerifySingle(commitment, proof curve.G1Affine, x0, y0 *curve.Fr) (bool, error) {
	g1 := curve.G1Generator()
	g2 := curve.G2Generator()

	y0G1 := curve.ScalarMulG1(&g1, y0)
	lhs := curve.SubG1Affine(&commitment, &y0G1)

	x0G2 := curve.ScalarMulG2(&g2, x0)
	sG2 := s.SecretG2[1]
	rhs := curve.SubG2Affine(&sG2, &x0G2)

	return curve.PairingsVerify(&lhs, &g2, &proof, &rhs)
}

// OpenMulti generalises OpenSingle to a root set: the indices name points
// ω^j (j ∈ indices), where ω generates the size-domainSize subgroup of the
// domain s.FFT covers. It returns the quotient
// commitment π = [q(s)]₁ where q(x) = (p(x) - I(x)) / Z(x), I interpolates
// p's claimed values at the root set and Z vanishes on it, together with
// those claimed values in the same order as indices.
func (s *Settings) OpenMulti(p polynomial.Polynomial, indices []uint64, domainSize uint64) (curve.G1Affine, []curve.Fr, error) {
	if len(indices) == 0 {
		return curve.G1Affine{}, nil, fmt.Errorf("%w: empty root set", ErrBadArgs)
	}

	xs, err := rootSetPoints(s.FFT, domainSize, indices)
	if err != nil {
		return curve.G1Affine{}, nil, err
	}

	ys := make([]curve.Fr, len(xs))
	for i := range xs {
		ys[i] = p.Eval(&xs[i])
	}

	z, _, err := zeropoly.Build(s.FFT, domainSize, indices, zeropoly.DefaultPerLeaf)
	if err != nil {
		return curve.G1Affine{}, nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	interp, err := lagrangeInterpolate(xs, ys)
	if err != nil {
		return curve.G1Affine{}, nil, err
	}

	numerator := make(polynomial.Polynomial, maxLen(len(p), len(interp)))
	copy(numerator, p)
	for i, c := range interp {
		numerator[i].Sub(&numerator[i], &c)
	}

	q, err := polynomial.LongDiv(numerator, z)
	if err != nil {
		return curve.G1Affine{}, nil, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	if q == nil {
		return curve.G1Affine{}, nil, fmt.Errorf("%w: p does not vanish against I on the claimed root set", ErrInternal)
	}

	proof, err := s.Commit(q)
	if err != nil {
		return curve.G1Affine{}, nil, err
	}
	return proof, ys, nil
}

// VerifyMulti checks e(C - [I(s)]₁, [1]₂) =? e(π, [Z(s)]₂) for the root set
// named by indices and the claimed values ys (in the same order as
// indices).
func (s *Settings) VerifyMulti(commitment, proof curve.G1Affine, indices []uint64, domainSize uint64, ys []curve.Fr) (bool, error) {
	if len(indices) != len(ys) {
		return false, fmt.Errorf("%w: %d indices but %d claimed values", ErrBadArgs, len(indices), len(ys))
	}

	xs, err := rootSetPoints(s.FFT, domainSize, indices)
	if err != nil {
		return false, err
	}

	z, _, err := zeropoly.Build(s.FFT, domainSize, indices, zeropoly.DefaultPerLeaf)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	commZ, err := s.commitG2(z)
	if err != nil {
		return false, err
	}

	interp, err := lagrangeInterpolate(xs, ys)
	if err != nil {
		return false, err
	}
	commI, err := s.Commit(interp)
	if err != nil {
		return false, err
	}

	lhs := curve.SubG1Affine(&commitment, &commI)
	g2 := curve.G2Generator()
	return curve.PairingsVerify(&lhs, &g2, &proof, &commZ)
}

// rootSetPoints maps domain indices to the field elements ω^j they name,
// reading the precomputed powers straight out of the shared FFT settings
// rather than exponentiating.
func rootSetPoints(fs *fft.Settings, domainSize uint64, indices []uint64) ([]curve.Fr, error) {
	if domainSize == 0 || domainSize&(domainSize-1) != 0 {
		return nil, fmt.Errorf("%w: domain size %d is not a power of two", ErrBadArgs, domainSize)
	}
	if domainSize > fs.MaxWidth {
		return nil, fmt.Errorf("%w: domain size %d exceeds max width %d", ErrBadArgs, domainSize, fs.MaxWidth)
	}
	stride := fs.MaxWidth / domainSize

	points := make([]curve.Fr, len(indices))
	for i, idx := range indices {
		if idx >= domainSize {
			return nil, fmt.Errorf("%w: index %d out of range for domain size %d", ErrBadArgs, idx, domainSize)
		}
		points[i] = fs.ExpandedRootsOfUnity[idx*stride]
	}
	return points, nil
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}
