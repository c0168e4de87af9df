package abi

import (
	"encoding/hex"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/f3rmion/medusa/group"
)

// WordSize is the width of an EVM stack word.
const WordSize = 32

// AddressSize is the width of an EVM address.
const AddressSize = 20

// Value is a Solidity value that can be fed to abi.encodePacked.
type Value interface {
	// Packed returns the value's abi.encodePacked bytes.
	Packed() []byte
}

// Encoder is implemented by composite values that append themselves to a
// packed encoding as a sequence of [Value]s.
type Encoder interface {
	ABIValues() []Value
}

// Pack concatenates the packed encodings of values, mirroring
// abi.encodePacked(values...) for static types.
func Pack(values ...Value) []byte {
	var out []byte
	for _, v := range values {
		out = append(out, v.Packed()...)
	}
	return out
}

// Word is a big-endian uint256.
type Word [WordSize]byte

// Uint256 converts v to a word. It fails for negative values and values
// wider than 256 bits.
func Uint256(v *big.Int) (Word, error) {
	var w Word
	if v == nil || v.Sign() < 0 || v.BitLen() > 8*WordSize {
		return w, group.NewEncodingError("value does not fit uint256", nil)
	}
	v.FillBytes(w[:])
	return w, nil
}

// Uint64 converts v to a word.
func Uint64(v uint64) Word {
	w, _ := Uint256(new(big.Int).SetUint64(v))
	return w
}

// WordFromBytes copies a 32-byte slice into a word.
func WordFromBytes(b []byte) (Word, error) {
	var w Word
	if len(b) != WordSize {
		return w, group.NewEncodingError("invalid word length", nil)
	}
	copy(w[:], b)
	return w, nil
}

// Packed implements [Value].
func (w Word) Packed() []byte {
	return w[:]
}

// Big returns the word as an unsigned integer.
func (w Word) Big() *big.Int {
	return new(big.Int).SetBytes(w[:])
}

// Bytes32 is a Solidity bytes32.
type Bytes32 [WordSize]byte

// Packed implements [Value].
func (b Bytes32) Packed() []byte {
	return b[:]
}

// String is a Solidity string; it packs as its raw UTF-8 bytes.
type String string

// Packed implements [Value].
func (s String) Packed() []byte {
	return []byte(s)
}

// Address is a 20-byte EVM account address.
type Address [AddressSize]byte

// Packed implements [Value]. Addresses pack to 20 bytes, not a full word.
func (a Address) Packed() []byte {
	return a[:]
}

// Hex returns the EIP-55 checksummed form with a 0x prefix.
func (a Address) Hex() string {
	lower := hex.EncodeToString(a[:])
	hash := keccak256([]byte(lower))
	out := []byte(lower)
	for i, c := range out {
		if c < 'a' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - 'a' + 'A'
		}
	}
	return "0x" + string(out)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

// ParseAddress parses a 40-digit hex address with optional 0x prefix.
// All-lowercase and all-uppercase input is accepted as is; mixed case must
// carry a valid EIP-55 checksum.
func ParseAddress(s string) (Address, error) {
	var a Address
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if len(digits) != 2*AddressSize {
		return a, group.NewEncodingError("invalid address length", nil)
	}
	if _, err := hex.Decode(a[:], []byte(digits)); err != nil {
		return a, group.NewEncodingError("invalid address", err)
	}
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) {
		if a.Hex()[2:] != digits {
			return Address{}, group.NewEncodingError("invalid address checksum", nil)
		}
	}
	return a, nil
}

// Keccak256 returns the legacy Keccak-256 digest used by the EVM.
func Keccak256(data ...[]byte) [32]byte {
	return keccak256(data...)
}

func keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
