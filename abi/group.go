package abi

import (
	"math/big"

	"github.com/f3rmion/medusa/group"
)

// G1Point is the Solidity struct { uint256 x; uint256 y; } used for
// curve points. The identity is (0, 0).
type G1Point struct {
	X *big.Int
	Y *big.Int
}

// PointToEVM converts a point to its affine coordinates.
func PointToEVM(p group.Point) G1Point {
	x, y := p.Coordinates()
	return G1Point{X: new(big.Int).SetBytes(x), Y: new(big.Int).SetBytes(y)}
}

// PointFromEVM decodes and validates a point. Coordinates must each fit in
// a uint256 and describe a point of g.
func PointFromEVM(g group.Group, p G1Point) (group.Point, error) {
	x, err := Uint256(p.X)
	if err != nil {
		return nil, err
	}
	y, err := Uint256(p.Y)
	if err != nil {
		return nil, err
	}
	return g.PointFromXY(x[:], y[:])
}

// ABIValues returns the x and y words. It fails if a coordinate is nil
// or does not fit a uint256.
func (p G1Point) ABIValues() ([]Value, error) {
	x, err := Uint256(p.X)
	if err != nil {
		return nil, err
	}
	y, err := Uint256(p.Y)
	if err != nil {
		return nil, err
	}
	return []Value{x, y}, nil
}

// ScalarToBig returns s as an unsigned integer.
func ScalarToBig(s group.Scalar) *big.Int {
	return new(big.Int).SetBytes(s.Bytes())
}

// ScalarFromBig decodes a scalar, rejecting values outside [0, order).
func ScalarFromBig(g group.Group, v *big.Int) (group.Scalar, error) {
	w, err := Uint256(v)
	if err != nil {
		return nil, err
	}
	return g.ScalarFromBytes(w[:])
}

// ScalarWord returns the uint256 encoding of s.
func ScalarWord(s group.Scalar) Word {
	var w Word
	copy(w[:], s.Bytes())
	return w
}

// Point wraps p as an [Encoder] that packs its x and y coordinates.
func Point(p group.Point) Encoder {
	return pointEncoder{p}
}

type pointEncoder struct {
	p group.Point
}

func (e pointEncoder) ABIValues() []Value {
	x, y := e.p.Coordinates()
	var wx, wy Word
	copy(wx[:], x)
	copy(wy[:], y)
	return []Value{wx, wy}
}

// EncodeWords returns the abi.encode bytes of a static tuple of words.
func EncodeWords(words ...Word) []byte {
	out := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		out = append(out, w[:]...)
	}
	return out
}

// DecodeWords splits the abi.encode bytes of a static tuple of n words.
func DecodeWords(data []byte, n int) ([]Word, error) {
	if len(data) != n*WordSize {
		return nil, group.NewEncodingError("invalid tuple length", nil)
	}
	words := make([]Word, n)
	for i := range words {
		copy(words[i][:], data[i*WordSize:])
	}
	return words, nil
}
