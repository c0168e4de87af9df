package envelope

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/hgamal"
)

const (
	keySize   = 32
	nonceSize = 24
)

// Bundle is an encrypted payload: EncryptedData is nonce || secretbox and
// EncryptedKey is the HGamal encryption of the secretbox key.
type Bundle struct {
	Suite         string
	EncryptedData []byte
	EncryptedKey  *hgamal.Ciphertext
}

// EncryptToMedusa seals data under a fresh symmetric key and encrypts that
// key to medusaPub with a proof bound to label.
func EncryptToMedusa(suite group.Suite, rand io.Reader, data []byte, medusaPub group.Point, label Label) (*Bundle, error) {
	var key [keySize]byte
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return nil, fmt.Errorf("envelope: generating key: %w", err)
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return nil, fmt.Errorf("envelope: generating nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], data, &nonce, &key)

	encKey, err := hgamal.Encrypt(suite, rand, medusaPub, key[:], label.Transcript())
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Suite:         suite.Name(),
		EncryptedData: sealed,
		EncryptedKey:  encKey,
	}, nil
}

// DecryptFromMedusa recovers the symmetric key from the oracle's
// re-encryption and opens the payload.
func DecryptFromMedusa(suite group.Suite, secret group.Scalar, medusaPub group.Point, b *Bundle, re *hgamal.MedusaReencryption) ([]byte, error) {
	if b == nil {
		return nil, errors.New("envelope: nil bundle")
	}
	k, err := hgamal.DecryptReencryption(suite, secret, medusaPub, b.EncryptedKey, re)
	if err != nil {
		return nil, err
	}
	if len(b.EncryptedData) < nonceSize+secretbox.Overhead {
		return nil, hgamal.NewEncryptionError("encrypted data too short", hgamal.ErrAuthenticationFailed)
	}
	var key [keySize]byte
	copy(key[:], k)
	var nonce [nonceSize]byte
	copy(nonce[:], b.EncryptedData[:nonceSize])

	plain, ok := secretbox.Open(nil, b.EncryptedData[nonceSize:], &nonce, &key)
	if !ok {
		return nil, hgamal.NewEncryptionError("secretbox open", hgamal.ErrAuthenticationFailed)
	}
	return plain, nil
}

// KeyForDecryption returns a one-time keypair whose public half is sent to
// the oracle as the re-encryption target.
func KeyForDecryption(suite group.Suite, rand io.Reader) (hgamal.Keypair, error) {
	return hgamal.NewKeypair(suite, rand)
}
