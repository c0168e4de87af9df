// Package group defines abstract interfaces for the prime-order groups
// used by the Medusa proxy re-encryption protocol.
//
// This package provides four core interfaces:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory methods for creating and decoding scalars and points
//   - [Suite]: A Group with the two independent generators used by DLEQ proofs
//
// # Design Philosophy
//
// Scalars and points are immutable values. Every arithmetic method returns
// a fresh value instead of mutating its receiver, so values can be shared
// across call sites and goroutines without aliasing surprises:
//
//	// Compute a + b*c
//	result := a.Add(b.Mul(c))
//
// Values are validated once, when they are decoded. A Scalar or Point
// obtained from a [Group] is always internally valid; every decoding
// failure is reported as an [*EncodingError] rather than a panic.
//
// # Encodings
//
// Scalar.Bytes and Point.Coordinates use fixed-width 32-byte big-endian
// integers, the layout of a Solidity uint256. This is what allows the abi
// and transcript packages to reproduce on-chain hashes bit for bit.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Suite type that implements [Suite] as a factory
//
// See the bn254 package for the EVM-compatible implementation and the bjj
// package for a Baby Jubjub implementation.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in PointFromBytes and PointFromXY
//   - Base2 has no known discrete logarithm relative to Base1
package group
