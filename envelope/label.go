package envelope

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/group"
	"github.com/f3rmion/medusa/transcript"
)

// Label binds a ciphertext to the oracle key it was encrypted to, the
// platform contract that will request it and the account that encrypted it:
//
//	sha256(abi.encodePacked(pub.x, pub.y, platform, encryptor))
//
// Seeding the DLEQ transcript with the label stops a ciphertext from being
// replayed under another platform or encryptor.
type Label [32]byte

// NewLabel parses the two addresses and computes the label.
func NewLabel(pub group.Point, platform, encryptor string) (Label, error) {
	p, err := abi.ParseAddress(platform)
	if err != nil {
		return Label{}, fmt.Errorf("platform address: %w", err)
	}
	e, err := abi.ParseAddress(encryptor)
	if err != nil {
		return Label{}, fmt.Errorf("encryptor address: %w", err)
	}
	return LabelFor(pub, p, e), nil
}

// LabelFor computes the label from parsed addresses.
func LabelFor(pub group.Point, platform, encryptor abi.Address) Label {
	values := append(abi.Point(pub).ABIValues(), platform, encryptor)
	return Label(sha256.Sum256(abi.Pack(values...)))
}

// Packed implements [abi.Value]; a label packs as a uint256.
func (l Label) Packed() []byte {
	return l[:]
}

// BigInt returns the label as a uint256.
func (l Label) BigInt() *big.Int {
	return new(big.Int).SetBytes(l[:])
}

// String returns the 0x-prefixed hex digest.
func (l Label) String() string {
	return "0x" + hex.EncodeToString(l[:])
}

// Transcript opens a transcript seeded with the label.
func (l Label) Transcript() *transcript.Transcript {
	return transcript.New(l)
}
