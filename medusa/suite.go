package medusa

import (
	"errors"
	"fmt"

	"github.com/f3rmion/medusa/bjj"
	"github.com/f3rmion/medusa/bn254"
	"github.com/f3rmion/medusa/group"
)

// SuiteType names an encryption suite as reported by the oracle contract.
type SuiteType string

const (
	// SuiteBN254KeyG1HGamal is HGamal with keys in BN254 G1, the suite the
	// oracle contracts verify.
	SuiteBN254KeyG1HGamal SuiteType = "bn254-keyG1-hgamal"
	// SuiteBJJKeyHGamal is HGamal over Baby Jubjub. No contract verifies
	// it; it is usable between off-chain parties only.
	SuiteBJJKeyHGamal SuiteType = "bjj-key-hgamal"
)

// ErrUnknownSuite is returned for a SuiteType this package does not know.
var ErrUnknownSuite = errors.New("unknown suite type")

// NewSuite returns the initialized group suite for t.
func NewSuite(t SuiteType) (group.Suite, error) {
	switch t {
	case SuiteBN254KeyG1HGamal:
		return bn254.Init()
	case SuiteBJJKeyHGamal:
		return bjj.New()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSuite, t)
}
