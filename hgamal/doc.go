// Package hgamal implements hashed ElGamal encryption of 32-byte keys with
// proxy re-encryption.
//
// A sender encrypts to the proxy's public key P:
//
//	Random = r*Base1, Random2 = r*Base2
//	Cipher = sha256(r*P) XOR msg
//
// together with a DLEQ proof that Random and Random2 share r. The proxy,
// holding p with P = p*Base1, re-encrypts toward a recipient key B = b*Base1
// by publishing p*(B + Random). The recipient subtracts b*P and is left with
// r*P, from which it recomputes the pad.
//
// The pad is a single SHA-256 over the big-endian coordinates of the shared
// point, which the on-chain contracts can evaluate cheaply. The XOR layer is
// malleable. Use it to carry symmetric keys for an authenticated envelope,
// never to protect data directly.
package hgamal
