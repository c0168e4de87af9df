// Package bn254 implements [group.Suite] over the G1 group of the BN254
// pairing-friendly curve, also known as alt_bn128.
//
// BN254 G1 is the group exposed by the EVM's ecAdd (0x06) and ecMul (0x07)
// precompiles, so values produced by this package can be verified by a
// Solidity contract bit for bit. The curve is
//
//	y^2 = x^3 + 3
//
// over a 254-bit prime field, and G1 has prime order
//
//	21888242871839275222246405745257275088548364400416034343698204186575808495617
//
// # Usage
//
//	s, err := bn254.Init()
//	if err != nil {
//		return err
//	}
//	k, _ := s.RandomScalar(rand.Reader)
//	pub := s.Base1().Mul(k)
//
// # Generators
//
// Base1 is the standard generator (1, 2). Base2 is a fixed point whose
// discrete logarithm relative to Base1 is unknown; it matches the constant
// compiled into the on-chain verifier. [HashToPoint] exposes the RFC 9380
// hash-to-curve map for deriving further independent generators.
//
// # Encodings
//
// Scalars and coordinates are 32-byte big-endian integers. The point at
// infinity is (0, 0), following the precompile convention. Compressed
// encodings use the gnark-crypto 32-byte format.
package bn254
