package bn254

import (
	"fmt"
	"io"
	"sync"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/medusa/group"
)

// Name identifies the BN254 G1 suite.
const Name = "bn254-g1"

// Affine coordinates of the second generator. The same constant is
// hard-coded in the on-chain DLEQ verifier.
const (
	base2X = "5671920232091439599101938152932944148754342563866262832106763099907508111378"
	base2Y = "2648212145371980650762357218546059709774557459353804686023280323276775278879"
)

// Suite implements [group.Suite] for the G1 group of BN254 (alt_bn128),
// the curve behind the EVM's ecAdd and ecMul precompiles.
//
// A Suite is immutable; obtain the process-wide instance with [Init].
type Suite struct {
	generator bn.G1Affine
	base2     *Point
}

var (
	initOnce sync.Once
	suite    *Suite
	errSuite error
)

// Init returns the process-wide BN254 suite, building it on first use.
// Concurrent callers all block until initialization is complete and
// observe the same *Suite.
func Init() (*Suite, error) {
	initOnce.Do(func() {
		suite, errSuite = newSuite()
	})
	return suite, errSuite
}

func newSuite() (*Suite, error) {
	base2, err := pointFromDecimal(base2X, base2Y)
	if err != nil {
		return nil, fmt.Errorf("bn254: invalid base2 constant: %w", err)
	}
	_, _, g1, _ := bn.Generators()
	return &Suite{generator: g1, base2: base2}, nil
}

// Name returns "bn254-g1".
func (s *Suite) Name() string {
	return Name
}

// NewScalar returns the zero scalar.
func (s *Suite) NewScalar() group.Scalar {
	return &Scalar{}
}

// ScalarOne returns the scalar 1.
func (s *Suite) ScalarOne() group.Scalar {
	var one fr.Element
	one.SetOne()
	return newScalar(&one)
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source.
func (s *Suite) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// ScalarFromBytes decodes a canonical 32-byte big-endian scalar.
func (s *Suite) ScalarFromBytes(data []byte) (group.Scalar, error) {
	return scalarFromBytes(data)
}

// ReduceScalar reduces a big-endian integer of any length modulo r.
func (s *Suite) ReduceScalar(data []byte) group.Scalar {
	var res Scalar
	res.inner.SetBytes(data)
	return &res
}

// Identity returns the point at infinity.
func (s *Suite) Identity() group.Point {
	var p Point
	p.inner.SetInfinity()
	return &p
}

// Generator returns the standard G1 generator (1, 2).
func (s *Suite) Generator() group.Point {
	return &Point{inner: s.generator}
}

// PointFromBytes decodes a 32-byte compressed G1 point.
func (s *Suite) PointFromBytes(data []byte) (group.Point, error) {
	return pointFromBytes(data)
}

// PointFromXY builds a G1 point from big-endian affine coordinates.
func (s *Suite) PointFromXY(x, y []byte) (group.Point, error) {
	return pointFromXY(x, y)
}

// Order returns the order of G1 as a big-endian byte slice.
func (s *Suite) Order() []byte {
	return fr.Modulus().Bytes()
}

// Base1 returns the canonical generator.
func (s *Suite) Base1() group.Point {
	return s.Generator()
}

// Base2 returns the second generator used by DLEQ proofs.
func (s *Suite) Base2() group.Point {
	return &Point{inner: s.base2.inner}
}

// HashToPoint hashes msg to G1 with the RFC 9380 SVDW construction under
// the domain separation tag dst.
func HashToPoint(msg, dst []byte) (group.Point, error) {
	p, err := bn.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	return &Point{inner: p}, nil
}
