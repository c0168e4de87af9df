// Package transcript implements the Fiat-Shamir transcript shared by the
// prover and the on-chain verifier.
//
// A transcript accumulates Solidity values in order. Its digest is
// sha256(abi.encodePacked(values...)), the same expression the verifier
// contract evaluates, and its challenge is that digest reduced modulo the
// group order.
package transcript

import (
	"crypto/sha256"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/group"
)

// Transcript is an append-only buffer of packed ABI values.
//
// A Transcript is not safe for concurrent use. Use [Transcript.Clone] to
// fork it, for example to verify several proofs under one seed.
type Transcript struct {
	buf []byte
}

// New returns a transcript seeded with values.
func New(values ...abi.Value) *Transcript {
	t := &Transcript{}
	t.Append(values...)
	return t
}

// Append packs values onto the transcript in order.
func (t *Transcript) Append(values ...abi.Value) {
	for _, v := range values {
		t.buf = append(t.buf, v.Packed()...)
	}
}

// AppendEncoder appends the values of each encoder in order.
func (t *Transcript) AppendEncoder(encs ...abi.Encoder) {
	for _, e := range encs {
		t.Append(e.ABIValues()...)
	}
}

// AppendPoints appends each point as its (x, y) uint256 pair.
func (t *Transcript) AppendPoints(points ...group.Point) {
	for _, p := range points {
		t.AppendEncoder(abi.Point(p))
	}
}

// Bytes returns a copy of the packed transcript.
func (t *Transcript) Bytes() []byte {
	return append([]byte(nil), t.buf...)
}

// Digest returns sha256 of the packed transcript.
func (t *Transcript) Digest() [32]byte {
	return sha256.Sum256(t.buf)
}

// Challenge reduces the digest into a scalar of g.
func (t *Transcript) Challenge(g group.Group) group.Scalar {
	d := t.Digest()
	return g.ReduceScalar(d[:])
}

// Clone returns an independent copy of t.
func (t *Transcript) Clone() *Transcript {
	return &Transcript{buf: t.Bytes()}
}
