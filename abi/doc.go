// Package abi implements the slice of the Solidity ABI that the Medusa
// contracts need: uint256 words, addresses with EIP-55 checksums, packed
// encoding for hashing and static tuples of words.
//
// Values are packed exactly like abi.encodePacked: a uint256 or bytes32
// takes 32 bytes, an address 20 bytes and a string its raw bytes. Curve
// points are the struct (uint256 x, uint256 y) with (0, 0) standing for
// the point at infinity.
//
// This is not a general ABI codec. Dynamic types inside tuples are not
// supported.
package abi
