package bjj

import (
	"bytes"
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/medusa/group"
)

const coordinateSize = 32

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
//
// The wrapped big.Int is never modified after construction.
type Scalar struct {
	inner *big.Int
}

// newScalar takes ownership of v and reduces it modulo curveOrder.
func newScalar(v *big.Int) *Scalar {
	return &Scalar{inner: v.Mod(v, curveOrder)}
}

// Add returns s + b (mod curveOrder).
func (s *Scalar) Add(b group.Scalar) group.Scalar {
	return newScalar(new(big.Int).Add(s.inner, b.(*Scalar).inner))
}

// Sub returns s - b (mod curveOrder).
func (s *Scalar) Sub(b group.Scalar) group.Scalar {
	return newScalar(new(big.Int).Sub(s.inner, b.(*Scalar).inner))
}

// Mul returns s * b (mod curveOrder).
func (s *Scalar) Mul(b group.Scalar) group.Scalar {
	return newScalar(new(big.Int).Mul(s.inner, b.(*Scalar).inner))
}

// Negate returns -s (mod curveOrder).
func (s *Scalar) Negate() group.Scalar {
	return newScalar(new(big.Int).Neg(s.inner))
}

// Invert returns s^(-1) (mod curveOrder).
// Returns an error if s is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert() (group.Scalar, error) {
	if s.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	return &Scalar{inner: new(big.Int).ModInverse(s.inner, curveOrder)}, nil
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	return s.inner.FillBytes(make([]byte, coordinateSize))
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	other, ok := b.(*Scalar)
	if !ok {
		return false
	}
	return s.inner.Cmp(other.inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point on the Baby Jubjub curve.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1), but [Point.Coordinates]
// reports it as (0, 0) so that it encodes like every other suite.
type Point struct {
	inner twistededwards.PointAffine
}

// Add returns p + b.
func (p *Point) Add(b group.Point) group.Point {
	var res Point
	res.inner.Add(&p.inner, &b.(*Point).inner)
	return &res
}

// Sub returns p - b.
func (p *Point) Sub(b group.Point) group.Point {
	var negB, res Point
	negB.inner.Neg(&b.(*Point).inner)
	res.inner.Add(&p.inner, &negB.inner)
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
	res.inner.ScalarMultiplication(&p.inner, s.(*Scalar).inner)
	return &res
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	b := p.inner.Bytes()
	return b[:]
}

// Coordinates returns the affine coordinates as 32-byte big-endian values.
func (p *Point) Coordinates() (x, y []byte) {
	if p.inner.IsZero() {
		return make([]byte, coordinateSize), make([]byte, coordinateSize)
	}
	xb := p.inner.X.Bytes()
	yb := p.inner.Y.Bytes()
	return xb[:], yb[:]
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	other, ok := b.(*Point)
	if !ok {
		return false
	}
	return p.inner.Equal(&other.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

func identity() *Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// inSubgroup reports whether p is on the curve and annihilated by the
// prime subgroup order.
func inSubgroup(p *twistededwards.PointAffine) bool {
	if !p.IsOnCurve() {
		return false
	}
	var q twistededwards.PointAffine
	q.ScalarMultiplication(p, curveOrder)
	return q.IsZero()
}

func pointFromBytes(data []byte) (*Point, error) {
	if len(data) != coordinateSize {
		return nil, group.NewEncodingError("invalid point length", nil)
	}
	var p Point
	if err := p.inner.Unmarshal(data); err != nil {
		return nil, group.NewEncodingError("invalid point", err)
	}
	// gnark reduces y and does not check that x exists
	if !inSubgroup(&p.inner) {
		return nil, group.NewEncodingError("point not in subgroup", nil)
	}
	if enc := p.inner.Bytes(); !bytes.Equal(enc[:], data) {
		return nil, group.NewEncodingError("non-canonical point encoding", nil)
	}
	return &p, nil
}

func pointFromXY(x, y []byte) (*Point, error) {
	if len(x) != coordinateSize || len(y) != coordinateSize {
		return nil, group.NewEncodingError("invalid coordinate length", nil)
	}
	if onlyZero(x) {
		return identity(), nil
	}
	var p Point
	if err := p.inner.X.SetBytesCanonical(x); err != nil {
		return nil, group.NewEncodingError("invalid x coordinate", err)
	}
	if err := p.inner.Y.SetBytesCanonical(y); err != nil {
		return nil, group.NewEncodingError("invalid y coordinate", err)
	}
	if !inSubgroup(&p.inner) {
		return nil, group.NewEncodingError("invalid x y coordinates", nil)
	}
	return &p, nil
}

// pointFromY recovers a point with the given y coordinate, if one exists.
// x^2 = (1 - y^2) / (a - d*y^2)
func pointFromY(y *fr.Element) (*twistededwards.PointAffine, bool) {
	curve := twistededwards.GetEdwardsCurve()
	var one, num, den, x fr.Element
	one.SetOne()
	num.Square(y)
	den.Mul(&num, &curve.D)
	num.Sub(&one, &num)
	den.Sub(&curve.A, &den)
	if den.IsZero() {
		return nil, false
	}
	x.Div(&num, &den)
	if x.Sqrt(&x) == nil {
		return nil, false
	}
	p := twistededwards.NewPointAffine(x, *y)
	return &p, p.IsOnCurve()
}

func onlyZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// randomScalar reads 64 bytes from r and reduces them modulo curveOrder,
// which keeps the bias negligible.
func randomScalar(r io.Reader) (*Scalar, error) {
	var buf [2 * coordinateSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return newScalar(new(big.Int).SetBytes(buf[:])), nil
}

func scalarFromBytes(data []byte) (*Scalar, error) {
	if len(data) != coordinateSize {
		return nil, group.NewEncodingError("invalid scalar length", nil)
	}
	v := new(big.Int).SetBytes(data)
	if v.Cmp(curveOrder) >= 0 {
		return nil, group.NewEncodingError("scalar out of range", nil)
	}
	return &Scalar{inner: v}, nil
}
