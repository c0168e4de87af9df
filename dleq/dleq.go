// Package dleq implements non-interactive Chaum-Pedersen proofs that two
// points share the same discrete logarithm with respect to a suite's two
// generators.
//
// Given rg1 = r*Base1 and rg2 = r*Base2, [Prove] shows knowledge of r
// without revealing it, and [Verify] checks the claim. The challenge is
// derived from a [transcript.Transcript], so a proof only verifies under a
// transcript seeded exactly like the prover's. The layout matches the
// on-chain verifier:
//
//	w1 = t*Base1, w2 = t*Base2
//	e  = sha256(seed || rg1 || rg2 || w1 || w2) mod n
//	f  = t - e*r
package dleq

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/transcript"
)

// Proof is a DLEQ proof: F is the masked witness and E the challenge.
type Proof struct {
	F group.Scalar
	E group.Scalar
}

// Prove proves that rg1 = r*Base1 and rg2 = r*Base2. tr is cloned; the
// caller's transcript is left untouched.
func Prove(suite group.Suite, tr *transcript.Transcript, rand io.Reader, r group.Scalar, rg1, rg2 group.Point) (*Proof, error) {
	t, err := suite.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("dleq: sampling nonce: %w", err)
	}
	w1 := suite.Base1().Mul(t)
	w2 := suite.Base2().Mul(t)

	e := challenge(suite, tr, rg1, rg2, w1, w2)
	f := t.Sub(e.Mul(r))
	return &Proof{F: f, E: e}, nil
}

// Verify reports whether proof shows that rg1 and rg2 share a discrete
// logarithm under tr. It never fails; any malformed input yields false.
func Verify(suite group.Suite, tr *transcript.Transcript, rg1, rg2 group.Point, proof *Proof) bool {
	if suite == nil || tr == nil || rg1 == nil || rg2 == nil {
		return false
	}
	if proof == nil || proof.F == nil || proof.E == nil {
		return false
	}
	w1 := suite.Base1().Mul(proof.F).Add(rg1.Mul(proof.E))
	w2 := suite.Base2().Mul(proof.F).Add(rg2.Mul(proof.E))

	return challenge(suite, tr, rg1, rg2, w1, w2).Equal(proof.E)
}

func challenge(suite group.Suite, tr *transcript.Transcript, rg1, rg2, w1, w2 group.Point) group.Scalar {
	c := tr.Clone()
	c.AppendPoints(rg1, rg2, w1, w2)
	return c.Challenge(suite)
}

// EVMProof is the Solidity struct { uint256 f; uint256 e; }.
type EVMProof struct {
	F *big.Int
	E *big.Int
}

// EVM returns the proof in its contract encoding.
func (p *Proof) EVM() EVMProof {
	return EVMProof{F: abi.ScalarToBig(p.F), E: abi.ScalarToBig(p.E)}
}

// ProofFromEVM decodes a proof, rejecting out-of-range scalars.
func ProofFromEVM(g group.Group, p EVMProof) (*Proof, error) {
	f, err := abi.ScalarFromBig(g, p.F)
	if err != nil {
		return nil, fmt.Errorf("dleq: f: %w", err)
	}
	e, err := abi.ScalarFromBig(g, p.E)
	if err != nil {
		return nil, fmt.Errorf("dleq: e: %w", err)
	}
	return &Proof{F: f, E: e}, nil
}

// ABIValues returns the f and e words.
func (p EVMProof) ABIValues() ([]abi.Value, error) {
	f, err := abi.Uint256(p.F)
	if err != nil {
		return nil, fmt.Errorf("dleq: f: %w", err)
	}
	e, err := abi.Uint256(p.E)
	if err != nil {
		return nil, fmt.Errorf("dleq: e: %w", err)
	}
	return []abi.Value{f, e}, nil
}
