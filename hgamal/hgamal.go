package hgamal

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/medusa/dleq"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/transcript"
)

// MessageSize is the only plaintext size HGamal accepts.
const MessageSize = 32

// Keypair is a secret scalar and its public point Secret*Base1.
type Keypair struct {
	Secret group.Scalar
	Public group.Point
}

// NewKeypair samples a fresh keypair.
func NewKeypair(suite group.Suite, rand io.Reader) (Keypair, error) {
	s, err := suite.RandomScalar(rand)
	if err != nil {
		return Keypair{}, err
	}
	return KeypairFromSecret(suite, s), nil
}

// KeypairFromSecret derives the public point for secret.
func KeypairFromSecret(suite group.Suite, secret group.Scalar) Keypair {
	return Keypair{Secret: secret, Public: suite.Base1().Mul(secret)}
}

// Ciphertext is an HGamal encryption of a 32-byte message.
// Random = r*Base1 and Random2 = r*Base2, and Proof shows that both share r.
type Ciphertext struct {
	Random  group.Point
	Cipher  []byte
	Random2 group.Point
	Proof   *dleq.Proof
}

// MedusaReencryption is the proxy's re-encryption of a ciphertext toward
// one recipient: Random = p*(B + r*Base1).
type MedusaReencryption struct {
	Random group.Point
}

// SharedKey hashes a shared point into a 32-byte pad:
// sha256(x || y) over the 32-byte big-endian coordinates.
// The identity hashes as (0, 0).
func SharedKey(p group.Point) [32]byte {
	x, y := p.Coordinates()
	h := sha256.New()
	h.Write(x)
	h.Write(y)
	var key [32]byte
	h.Sum(key[:0])
	return key
}

// Encrypt encrypts a 32-byte msg to the public key pub. The proof is bound
// to tr, which is cloned and left unchanged.
func Encrypt(suite group.Suite, rand io.Reader, pub group.Point, msg []byte, tr *transcript.Transcript) (*Ciphertext, error) {
	if len(msg) != MessageSize {
		return nil, NewEncryptionError("invalid plaintext size", ErrInvalidSize)
	}
	r, err := suite.RandomScalar(rand)
	if err != nil {
		return nil, fmt.Errorf("hgamal: sampling ephemeral key: %w", err)
	}
	rg := suite.Base1().Mul(r)
	rg2 := suite.Base2().Mul(r)
	key := SharedKey(pub.Mul(r))

	proof, err := dleq.Prove(suite, tr, rand, r, rg, rg2)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{
		Random:  rg,
		Cipher:  xor(key[:], msg),
		Random2: rg2,
		Proof:   proof,
	}, nil
}

// Verify checks the ciphertext's DLEQ proof under tr.
func (c *Ciphertext) Verify(suite group.Suite, tr *transcript.Transcript) bool {
	if c == nil || len(c.Cipher) != MessageSize {
		return false
	}
	return dleq.Verify(suite, tr, c.Random, c.Random2, c.Proof)
}

// Reencrypt is the proxy's step: it transforms c, encrypted to proxy.Public,
// into a re-encryption for the holder of recipient's secret.
func Reencrypt(suite group.Suite, proxy Keypair, recipient group.Point, c *Ciphertext) (*MedusaReencryption, error) {
	if c == nil || c.Random == nil || recipient == nil {
		return nil, errors.New("hgamal: missing ciphertext or recipient")
	}
	return &MedusaReencryption{Random: recipient.Add(c.Random).Mul(proxy.Secret)}, nil
}

// DecryptReencryption recovers the plaintext of c from its re-encryption
// toward the holder of secret. proxyPub is the key c was encrypted to.
//
// The result is not authenticated; wrap HGamal in an AEAD envelope before
// trusting it.
func DecryptReencryption(suite group.Suite, secret group.Scalar, proxyPub group.Point, c *Ciphertext, re *MedusaReencryption) ([]byte, error) {
	if c == nil || re == nil || re.Random == nil {
		return nil, errors.New("hgamal: missing ciphertext or reencryption")
	}
	if len(c.Cipher) != MessageSize {
		return nil, NewEncryptionError("invalid cipher size", ErrInvalidSize)
	}
	// p*(bG + rG) - b*pG = p*rG = r*P
	shared := re.Random.Sub(proxyPub.Mul(secret))
	key := SharedKey(shared)
	return xor(key[:], c.Cipher), nil
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
