package envelope

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/f3rmion/medusa/bjj"
	"github.com/f3rmion/medusa/bn254"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/hgamal"
)

// rawBundle is the CBOR form of a Bundle. Key holds the abi.encode bytes
// of the ciphertext so that stored bundles can be handed to a contract
// unchanged.
type rawBundle struct {
	Suite string `cbor:"1,keyasint"`
	Data  []byte `cbor:"2,keyasint"`
	Key   []byte `cbor:"3,keyasint"`
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	if b.EncryptedKey == nil {
		return nil, errors.New("envelope: bundle has no key")
	}
	evm, err := b.EncryptedKey.EVM()
	if err != nil {
		return nil, err
	}
	key, err := evm.ABIEncode()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&rawBundle{
		Suite: b.Suite,
		Data:  b.EncryptedData,
		Key:   key,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Points and
// scalars are validated against the suite named in the data.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	var raw rawBundle
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("envelope: %w", err)
	}
	suite, err := suiteByName(raw.Suite)
	if err != nil {
		return err
	}
	evm, err := hgamal.DecodeEVMCiphertext(raw.Key)
	if err != nil {
		return err
	}
	key, err := hgamal.CiphertextFromEVM(suite, evm)
	if err != nil {
		return err
	}
	*b = Bundle{Suite: raw.Suite, EncryptedData: raw.Data, EncryptedKey: key}
	return nil
}

func suiteByName(name string) (group.Suite, error) {
	switch name {
	case bn254.Name:
		return bn254.Init()
	case bjj.Name:
		return bjj.New()
	}
	return nil, fmt.Errorf("envelope: unknown suite %q", name)
}
