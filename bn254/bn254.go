package bn254

import (
	"errors"
	"io"
	"math/big"

	bn "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/medusa/group"
)

// coordinateSize is the width of an encoded scalar or coordinate.
const coordinateSize = 32

// Scalar represents an element of the BN254 scalar field Fr.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element.
type Scalar struct {
	inner fr.Element
}

// Add returns s + b (mod r).
func (s *Scalar) Add(b group.Scalar) group.Scalar {
	var res Scalar
	res.inner.Add(&s.inner, &b.(*Scalar).inner)
	return &res
}

// Sub returns s - b (mod r).
func (s *Scalar) Sub(b group.Scalar) group.Scalar {
	var res Scalar
	res.inner.Sub(&s.inner, &b.(*Scalar).inner)
	return &res
}

// Mul returns s * b (mod r).
func (s *Scalar) Mul(b group.Scalar) group.Scalar {
	var res Scalar
	res.inner.Mul(&s.inner, &b.(*Scalar).inner)
	return &res
}

// Negate returns -s (mod r).
func (s *Scalar) Negate() group.Scalar {
	var res Scalar
	res.inner.Neg(&s.inner)
	return &res
}

// Invert returns s^(-1) (mod r).
// Returns an error if s is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert() (group.Scalar, error) {
	if s.inner.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	var res Scalar
	res.inner.Inverse(&s.inner)
	return &res, nil
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	other, ok := b.(*Scalar)
	if !ok {
		return false
	}
	return s.inner.Equal(&other.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

func (s *Scalar) bigInt() *big.Int {
	return s.inner.BigInt(new(big.Int))
}

// Point represents a point of the BN254 G1 group.
// It implements [group.Point] by wrapping gnark-crypto's G1Affine.
//
// The identity is the affine point (0, 0), which is also how the EVM
// precompiles encode the point at infinity.
type Point struct {
	inner bn.G1Affine
}

// Add returns p + b.
func (p *Point) Add(b group.Point) group.Point {
	var res Point
	res.inner.Add(&p.inner, &b.(*Point).inner)
	return &res
}

// Sub returns p - b.
func (p *Point) Sub(b group.Point) group.Point {
	var res Point
	res.inner.Sub(&p.inner, &b.(*Point).inner)
	return &res
}

// Negate returns -p.
func (p *Point) Negate() group.Point {
	var res Point
	res.inner.Neg(&p.inner)
	return &res
}

// Mul returns s * p.
func (p *Point) Mul(s group.Scalar) group.Point {
	var res Point
	res.inner.ScalarMultiplication(&p.inner, s.(*Scalar).bigInt())
	return &res
}

// Bytes returns the 32-byte compressed point encoding.
func (p *Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// Coordinates returns the affine x and y coordinates as 32-byte
// big-endian values, (0, 0) for the identity.
func (p *Point) Coordinates() (x, y []byte) {
	if p.inner.IsInfinity() {
		return make([]byte, coordinateSize), make([]byte, coordinateSize)
	}
	xb := p.inner.X.Bytes()
	yb := p.inner.Y.Bytes()
	return xb[:], yb[:]
}

// Equal reports whether p and b represent the same point.
func (p *Point) Equal(b group.Point) bool {
	other, ok := b.(*Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&other.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.inner.IsInfinity()
}

// G1 returns a copy of the underlying gnark-crypto affine point.
func (p *Point) G1() bn.G1Affine {
	return p.inner
}

// newScalar wraps an fr element.
func newScalar(e *fr.Element) *Scalar {
	var s Scalar
	s.inner.Set(e)
	return &s
}

// randomScalar reads 64 bytes from r and reduces them modulo the group
// order; the statistical distance from uniform is below 2^-250.
func randomScalar(r io.Reader) (*Scalar, error) {
	var buf [2 * coordinateSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	var s Scalar
	s.inner.SetBytes(buf[:])
	return &s, nil
}

func scalarFromBytes(data []byte) (*Scalar, error) {
	if len(data) != coordinateSize {
		return nil, group.NewEncodingError("invalid scalar length", nil)
	}
	var s Scalar
	if err := s.inner.SetBytesCanonical(data); err != nil {
		return nil, group.NewEncodingError("scalar out of range", err)
	}
	return &s, nil
}

func pointFromBytes(data []byte) (*Point, error) {
	if len(data) != bn.SizeOfG1AffineCompressed {
		return nil, group.NewEncodingError("invalid point length", nil)
	}
	var p Point
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, group.NewEncodingError("invalid point", err)
	}
	return &p, nil
}

func pointFromXY(x, y []byte) (*Point, error) {
	if len(x) != coordinateSize || len(y) != coordinateSize {
		return nil, group.NewEncodingError("invalid coordinate length", nil)
	}
	var p Point
	if onlyZero(x) {
		p.inner.SetInfinity()
		return &p, nil
	}
	if err := p.inner.X.SetBytesCanonical(x); err != nil {
		return nil, group.NewEncodingError("invalid x coordinate", err)
	}
	if err := p.inner.Y.SetBytesCanonical(y); err != nil {
		return nil, group.NewEncodingError("invalid y coordinate", err)
	}
	if !p.inner.IsOnCurve() || !p.inner.IsInSubGroup() {
		return nil, group.NewEncodingError("invalid x y coordinates", nil)
	}
	return &p, nil
}

func pointFromDecimal(x, y string) (*Point, error) {
	var p Point
	if _, err := p.inner.X.SetString(x); err != nil {
		return nil, err
	}
	if _, err := p.inner.Y.SetString(y); err != nil {
		return nil, err
	}
	if !p.inner.IsOnCurve() || !p.inner.IsInSubGroup() {
		return nil, errors.New("point not in G1")
	}
	return &p, nil
}

func onlyZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
