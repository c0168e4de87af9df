package medusa

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/envelope"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/hgamal"
)

// Oracle is the surface of the Medusa oracle contract a client needs.
// Implementations typically wrap a contract binding.
type Oracle interface {
	// SuiteType reports the suite the oracle's key lives in.
	SuiteType(ctx context.Context) (SuiteType, error)
	// DistributedPublicKey returns the oracle's threshold public key.
	DistributedPublicKey(ctx context.Context) (abi.G1Point, error)
	// SubmitCiphertext registers an encrypted key and returns its id.
	SubmitCiphertext(ctx context.Context, c hgamal.EVMCiphertext, link []byte, encryptor abi.Address) (*big.Int, error)
	// DeliverReencryption answers a request for ciphertext id.
	DeliverReencryption(ctx context.Context, id *big.Int, re hgamal.EVMReencryption, callback abi.Address) error
}

// ErrInvalidCiphertext is returned by Submit when the ciphertext proof
// does not verify under the label the oracle will use.
var ErrInvalidCiphertext = errors.New("ciphertext proof does not verify")

// Connection is a Client bound to one oracle and its public key.
type Connection struct {
	*Client
	oracle    Oracle
	publicKey group.Point
}

// Connect discovers the oracle's suite, builds a client for it and
// fetches and validates the distributed public key.
func Connect(ctx context.Context, o Oracle, opts ...Option) (*Connection, error) {
	t, err := o.SuiteType(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching suite type: %w", err)
	}
	c, err := New(t, opts...)
	if err != nil {
		return nil, err
	}
	raw, err := o.DistributedPublicKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching public key: %w", err)
	}
	pub, err := c.DecodePublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("oracle public key: %w", err)
	}
	if pub.IsIdentity() {
		return nil, errors.New("oracle public key is the identity")
	}
	log.Infof("connected to oracle, suite %s", t)
	return &Connection{Client: c, oracle: o, publicKey: pub}, nil
}

// PublicKey returns the oracle's distributed public key.
func (c *Connection) PublicKey() group.Point {
	return c.publicKey
}

// Encrypt encrypts data to the oracle.
func (c *Connection) Encrypt(data []byte, platform, encryptor string) (*EncryptedPayload, error) {
	return c.Client.Encrypt(data, c.publicKey, platform, encryptor)
}

// Submit checks the payload's proof locally, then registers the encrypted
// key with the oracle. link points at the stored encrypted data.
func (c *Connection) Submit(ctx context.Context, p *EncryptedPayload, link []byte, platform, encryptor string) (*big.Int, error) {
	if p == nil {
		return nil, errors.New("medusa: missing payload")
	}
	label, err := envelope.NewLabel(c.publicKey, platform, encryptor)
	if err != nil {
		return nil, err
	}
	enc, err := abi.ParseAddress(encryptor)
	if err != nil {
		return nil, err
	}
	cipher, err := hgamal.CiphertextFromEVM(c.suite, p.EncryptedKey)
	if err != nil {
		return nil, err
	}
	if !cipher.Verify(c.suite, label.Transcript()) {
		return nil, ErrInvalidCiphertext
	}
	id, err := c.oracle.SubmitCiphertext(ctx, p.EncryptedKey, link, enc)
	if err != nil {
		return nil, fmt.Errorf("submitting ciphertext: %w", err)
	}
	log.Debugf("submitted ciphertext %s", id)
	return id, nil
}

// Decrypt opens a payload re-encrypted for the holder of secret.
func (c *Connection) Decrypt(p *EncryptedPayload, re hgamal.EVMReencryption, secret group.Scalar) ([]byte, error) {
	return c.Client.Decrypt(p, re, secret, c.publicKey)
}
