package bjj

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/medusa/group"
)

// Name identifies the Baby Jubjub suite.
const Name = "bjj"

// base2Domain is hashed with a counter to find the second generator.
const base2Domain = "medusa-bjj-base2"

const maxBase2Attempts = 1 << 16

// BJJ implements [group.Suite] for the Baby Jubjub curve.
//
// Obtain the shared instance with [New]; the zero value has no Base2.
type BJJ struct {
	base2 Point
}

var (
	newOnce sync.Once
	shared  *BJJ
	errNew  error
)

// New returns the Baby Jubjub suite. The second generator is derived on
// the first call and reused afterwards.
func New() (*BJJ, error) {
	newOnce.Do(func() {
		var b2 *twistededwards.PointAffine
		b2, errNew = deriveBase2()
		if errNew == nil {
			shared = &BJJ{base2: Point{inner: *b2}}
		}
	})
	return shared, errNew
}

// deriveBase2 hashes base2Domain || counter to a y coordinate until it
// lies on the curve, then clears the cofactor. Nobody knows the discrete
// log of the result relative to the standard base point.
func deriveBase2() (*twistededwards.PointAffine, error) {
	cofactor := big.NewInt(8)
	var ctr [4]byte
	for i := uint32(0); i < maxBase2Attempts; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)
		h := sha256.New()
		h.Write([]byte(base2Domain))
		h.Write(ctr[:])

		var y fr.Element
		y.SetBytes(h.Sum(nil))
		p, ok := pointFromY(&y)
		if !ok {
			continue
		}
		var q twistededwards.PointAffine
		q.ScalarMultiplication(p, cofactor)
		if q.IsZero() || !inSubgroup(&q) {
			continue
		}
		return &q, nil
	}
	return nil, errors.New("bjj: no base2 candidate found")
}

// Name returns "bjj".
func (g *BJJ) Name() string {
	return Name
}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return &Scalar{inner: new(big.Int)}
}

// ScalarOne returns the scalar 1.
func (g *BJJ) ScalarOne() group.Scalar {
	return &Scalar{inner: big.NewInt(1)}
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. The result is uniformly distributed in
// [0, curveOrder).
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// ScalarFromBytes decodes a canonical 32-byte big-endian scalar.
func (g *BJJ) ScalarFromBytes(data []byte) (group.Scalar, error) {
	return scalarFromBytes(data)
}

// ReduceScalar reduces a big-endian integer modulo the subgroup order.
func (g *BJJ) ReduceScalar(data []byte) group.Scalar {
	return newScalar(new(big.Int).SetBytes(data))
}

// Identity returns the identity element (0, 1).
func (g *BJJ) Identity() group.Point {
	return identity()
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// PointFromBytes decodes a 32-byte compressed point.
func (g *BJJ) PointFromBytes(data []byte) (group.Point, error) {
	return pointFromBytes(data)
}

// PointFromXY builds a point from big-endian affine coordinates.
func (g *BJJ) PointFromXY(x, y []byte) (group.Point, error) {
	return pointFromXY(x, y)
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup
// as a big-endian byte slice.
func (g *BJJ) Order() []byte {
	return curveOrder.Bytes()
}

// Base1 returns the standard base point.
func (g *BJJ) Base1() group.Point {
	return g.Generator()
}

// Base2 returns the hash-derived second generator.
func (g *BJJ) Base2() group.Point {
	return &Point{inner: g.base2.inner}
}
