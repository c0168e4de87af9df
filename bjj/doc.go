// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Suite] interface.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems, where its arithmetic is cheap inside BN254 circuits.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto and
// lets the dleq and hgamal packages run unchanged over a second curve. Its
// values are not understood by the EVM precompiles, so the suite is meant
// for off-chain use.
//
// # Curve Parameters
//
// gnark-crypto uses the reduced twisted Edwards form
//
//	-x^2 + y^2 = 1 + d*x^2*y^2
//
// over the BN254 scalar field, with cofactor 8 and a prime-order subgroup
// of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Second Generator
//
// Base2 is found by hashing "medusa-bjj-base2" and a big-endian counter
// with SHA-256 until the digest is the y coordinate of a curve point, then
// multiplying by the cofactor.
//
// # Usage
//
//	g, err := bjj.New()
//	if err != nil {
//		return err
//	}
//	kp, err := hgamal.NewKeypair(g, rand.Reader)
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Scalars are held in big.Int values and are not constant time.
package bjj
