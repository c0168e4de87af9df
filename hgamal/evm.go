package hgamal

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/dleq"
	"github.com/f3rmion/medusa/group"
)

// ciphertextWords is the number of words in an encoded ciphertext:
// random (2), cipher (1), random2 (2), dleq (2).
const ciphertextWords = 7

// EVMCiphertext is the Solidity struct
//
//	struct Ciphertext {
//	    G1Point random;
//	    uint256 cipher;
//	    G1Point random2;
//	    DleqProof dleq;
//	}
type EVMCiphertext struct {
	Random  abi.G1Point
	Cipher  *big.Int
	Random2 abi.G1Point
	Dleq    dleq.EVMProof
}

// EVM returns the ciphertext in its contract encoding.
func (c *Ciphertext) EVM() (EVMCiphertext, error) {
	if c == nil || c.Random == nil || c.Random2 == nil || c.Proof == nil || c.Proof.F == nil || c.Proof.E == nil {
		return EVMCiphertext{}, errors.New("hgamal: missing ciphertext or proof")
	}
	return EVMCiphertext{
		Random:  abi.PointToEVM(c.Random),
		Cipher:  new(big.Int).SetBytes(c.Cipher),
		Random2: abi.PointToEVM(c.Random2),
		Dleq:    c.Proof.EVM(),
	}, nil
}

// CiphertextFromEVM decodes and validates a contract ciphertext.
func CiphertextFromEVM(g group.Group, e EVMCiphertext) (*Ciphertext, error) {
	random, err := abi.PointFromEVM(g, e.Random)
	if err != nil {
		return nil, fmt.Errorf("hgamal: random: %w", err)
	}
	cipher, err := abi.Uint256(e.Cipher)
	if err != nil {
		return nil, fmt.Errorf("hgamal: cipher: %w", err)
	}
	random2, err := abi.PointFromEVM(g, e.Random2)
	if err != nil {
		return nil, fmt.Errorf("hgamal: random2: %w", err)
	}
	proof, err := dleq.ProofFromEVM(g, e.Dleq)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{
		Random:  random,
		Cipher:  cipher[:],
		Random2: random2,
		Proof:   proof,
	}, nil
}

// ABIValues returns the seven words of the ciphertext in field order.
// Every field must fit a uint256.
func (e EVMCiphertext) ABIValues() ([]abi.Value, error) {
	random, err := e.Random.ABIValues()
	if err != nil {
		return nil, fmt.Errorf("hgamal: random: %w", err)
	}
	cipher, err := abi.Uint256(e.Cipher)
	if err != nil {
		return nil, fmt.Errorf("hgamal: cipher: %w", err)
	}
	random2, err := e.Random2.ABIValues()
	if err != nil {
		return nil, fmt.Errorf("hgamal: random2: %w", err)
	}
	proof, err := e.Dleq.ABIValues()
	if err != nil {
		return nil, err
	}
	values := make([]abi.Value, 0, ciphertextWords)
	values = append(values, random...)
	values = append(values, cipher)
	values = append(values, random2...)
	return append(values, proof...), nil
}

// ABIEncode returns abi.encode(ciphertext). All members are static, so
// this is the concatenation of seven words.
func (e EVMCiphertext) ABIEncode() ([]byte, error) {
	values, err := e.ABIValues()
	if err != nil {
		return nil, err
	}
	return abi.Pack(values...), nil
}

// DecodeEVMCiphertext parses the output of [EVMCiphertext.ABIEncode].
// Points and scalars are not validated; use [CiphertextFromEVM] for that.
func DecodeEVMCiphertext(data []byte) (EVMCiphertext, error) {
	w, err := abi.DecodeWords(data, ciphertextWords)
	if err != nil {
		return EVMCiphertext{}, err
	}
	return EVMCiphertext{
		Random:  abi.G1Point{X: w[0].Big(), Y: w[1].Big()},
		Cipher:  w[2].Big(),
		Random2: abi.G1Point{X: w[3].Big(), Y: w[4].Big()},
		Dleq:    dleq.EVMProof{F: w[5].Big(), E: w[6].Big()},
	}, nil
}

// EVMReencryption is the Solidity struct { G1Point random; } delivered by
// the oracle. It is only ever decoded.
type EVMReencryption struct {
	Random abi.G1Point
}

// ReencryptionFromEVM decodes and validates a delivered re-encryption.
func ReencryptionFromEVM(g group.Group, e EVMReencryption) (*MedusaReencryption, error) {
	random, err := abi.PointFromEVM(g, e.Random)
	if err != nil {
		return nil, fmt.Errorf("hgamal: reencryption: %w", err)
	}
	return &MedusaReencryption{Random: random}, nil
}
