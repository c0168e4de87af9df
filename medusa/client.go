package medusa

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/envelope"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/hgamal"
)

// maxDeriveAttempts bounds the search for an in-range secret in
// DeriveKeypair. About 19% of digests are below the BN254 order and about
// 2% below the Baby Jubjub order, so the bound is not reached in practice.
const maxDeriveAttempts = 4096

// ErrKeyDerivation is returned when no valid secret could be derived.
var ErrKeyDerivation = errors.New("key derivation failed")

// Client encrypts payloads to a Medusa oracle and decrypts payloads the
// oracle re-encrypted, using one suite.
type Client struct {
	suiteType SuiteType
	suite     group.Suite
	rand      io.Reader
}

// Option configures a Client.
type Option func(*Client)

// WithRandom sets the randomness source. It defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(c *Client) {
		c.rand = r
	}
}

// New returns a client for the given suite.
func New(t SuiteType, opts ...Option) (*Client, error) {
	suite, err := NewSuite(t)
	if err != nil {
		return nil, err
	}
	c := &Client{suiteType: t, suite: suite, rand: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	log.Debugf("client ready with suite %s", t)
	return c, nil
}

// SuiteType returns the client's suite type.
func (c *Client) SuiteType() SuiteType {
	return c.suiteType
}

// Suite returns the client's group suite.
func (c *Client) Suite() group.Suite {
	return c.suite
}

// NewKeypair returns a random keypair.
func (c *Client) NewKeypair() (hgamal.Keypair, error) {
	return hgamal.NewKeypair(c.suite, c.rand)
}

// DeriveKeypair deterministically derives a keypair from a wallet
// signature, so the same account can recover its key later. The secret is
// keccak256(signature) if that is a nonzero in-range scalar, and otherwise
// keccak256(h || uint256(n)) for the first n = 1, 2, ... that is.
func (c *Client) DeriveKeypair(signature []byte) (hgamal.Keypair, error) {
	if len(signature) == 0 {
		return hgamal.Keypair{}, fmt.Errorf("%w: empty signature", ErrKeyDerivation)
	}
	h := abi.Keccak256(signature)
	candidate := h
	for n := uint64(0); n < maxDeriveAttempts; n++ {
		if n > 0 {
			counter := abi.Uint64(n)
			candidate = abi.Keccak256(h[:], counter[:])
		}
		secret, err := c.suite.ScalarFromBytes(candidate[:])
		if err == nil && !secret.IsZero() {
			return hgamal.KeypairFromSecret(c.suite, secret), nil
		}
		log.Debugf("derived secret %d out of range, rehashing", n)
	}
	return hgamal.Keypair{}, ErrKeyDerivation
}

// DecodePublicKey validates a public key read from a contract.
func (c *Client) DecodePublicKey(p abi.G1Point) (group.Point, error) {
	return abi.PointFromEVM(c.suite, p)
}

// EncryptedPayload is what an encryptor publishes: the sealed payload,
// base64 encoded for off-chain storage, and the encrypted key to submit
// to the oracle contract.
type EncryptedPayload struct {
	EncryptedData string
	EncryptedKey  hgamal.EVMCiphertext
}

// Encrypt encrypts data to medusaPub for requests made through the
// platform contract on behalf of encryptor.
func (c *Client) Encrypt(data []byte, medusaPub group.Point, platform, encryptor string) (*EncryptedPayload, error) {
	label, err := envelope.NewLabel(medusaPub, platform, encryptor)
	if err != nil {
		return nil, err
	}
	bundle, err := envelope.EncryptToMedusa(c.suite, c.rand, data, medusaPub, label)
	if err != nil {
		return nil, err
	}
	key, err := bundle.EncryptedKey.EVM()
	if err != nil {
		return nil, err
	}
	log.Debugf("encrypted %d bytes under label %s", len(data), label)
	return &EncryptedPayload{
		EncryptedData: base64.StdEncoding.EncodeToString(bundle.EncryptedData),
		EncryptedKey:  key,
	}, nil
}

// Decrypt opens a payload whose key the oracle re-encrypted to the
// public key of secret.
func (c *Client) Decrypt(payload *EncryptedPayload, re hgamal.EVMReencryption, secret group.Scalar, medusaPub group.Point) ([]byte, error) {
	if payload == nil {
		return nil, errors.New("medusa: missing payload")
	}
	data, err := base64.StdEncoding.DecodeString(payload.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("decoding encrypted data: %w", err)
	}
	key, err := hgamal.CiphertextFromEVM(c.suite, payload.EncryptedKey)
	if err != nil {
		return nil, err
	}
	reenc, err := hgamal.ReencryptionFromEVM(c.suite, re)
	if err != nil {
		return nil, err
	}
	bundle := &envelope.Bundle{
		Suite:         c.suite.Name(),
		EncryptedData: data,
		EncryptedKey:  key,
	}
	return envelope.DecryptFromMedusa(c.suite, secret, medusaPub, bundle, reenc)
}
