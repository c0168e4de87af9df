package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// Scalars are immutable values: every arithmetic method returns a new
// Scalar and leaves both the receiver and the arguments untouched, so a
// scalar can be shared freely between call sites and goroutines.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add returns s+b.
	Add(b Scalar) Scalar
	// Sub returns s-b.
	Sub(b Scalar) Scalar
	// Mul returns s*b.
	Mul(b Scalar) Scalar
	// Negate returns -s.
	Negate() Scalar
	// Invert returns s^{-1}.
	// Returns an error if s is zero.
	Invert() (Scalar, error)
	// Bytes returns the canonical 32-byte big-endian representation,
	// identical to the EVM uint256 encoding of the scalar.
	Bytes() []byte
	// Equal reports whether s equals b.
	Equal(b Scalar) bool
	// IsZero reports whether s is zero.
	IsZero() bool
}

// Point represents an element of a prime-order group, a point on an
// elliptic curve. Like [Scalar], points are immutable values.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add returns p+b.
	Add(b Point) Point
	// Sub returns p-b.
	Sub(b Point) Point
	// Negate returns -p.
	Negate() Point
	// Mul returns s*p.
	Mul(s Scalar) Point
	// Bytes returns the canonical compressed encoding of the point.
	Bytes() []byte
	// Coordinates returns the affine coordinates as 32-byte big-endian
	// values. The identity is reported as (0, 0).
	Coordinates() (x, y []byte)
	// Equal reports whether p equals b.
	Equal(b Point) bool
	// IsIdentity reports whether p is the identity element.
	IsIdentity() bool
}

// Group is the factory side of a prime-order group: it creates scalars
// and points, from randomness or from their encodings.
//
// Example usage:
//
//	g, _ := bn254.Init()
//	s, _ := g.RandomScalar(rand.Reader)
//	p := g.Generator().Mul(s)
type Group interface {
	// Name identifies the group, e.g. "bn254-g1".
	Name() string
	// NewScalar returns the zero scalar.
	NewScalar() Scalar
	// ScalarOne returns the scalar 1.
	ScalarOne() Scalar
	// RandomScalar returns a uniformly random scalar read from r.
	RandomScalar(r io.Reader) (Scalar, error)
	// ScalarFromBytes decodes a 32-byte big-endian scalar.
	// Returns an *EncodingError if the value is not in [0, order).
	ScalarFromBytes(data []byte) (Scalar, error)
	// ReduceScalar interprets data of any length as a big-endian integer
	// and reduces it modulo the group order. It never fails and is meant
	// for turning hash digests into challenges.
	ReduceScalar(data []byte) Scalar
	// Identity returns the identity point.
	Identity() Point
	// Generator returns the group's base point.
	Generator() Point
	// PointFromBytes decodes a compressed point. Returns an *EncodingError
	// if the point is not on the curve or not in the prime-order subgroup.
	PointFromBytes(data []byte) (Point, error)
	// PointFromXY builds a point from 32-byte big-endian affine coordinates
	// with the same validation as PointFromBytes. An all-zero x decodes to
	// the identity without checking the curve equation.
	PointFromXY(x, y []byte) (Point, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}

// Suite is a Group with two independent generators. The discrete
// logarithm of Base2 relative to Base1 must be unknown to everybody, which
// is what makes DLEQ proofs over (Base1, Base2) sound.
type Suite interface {
	Group
	// Base1 returns the canonical generator.
	Base1() Point
	// Base2 returns the second, nothing-up-my-sleeve generator.
	Base2() Point
}
