package abi

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/medusa/bn254"
	"github.com/f3rmion/medusa/group"
)

const (
	relayer   = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	encryptor = "0xa79F1c8a025B4E1Bc545B0757e265827482abCe0"
)

func TestUint256(t *testing.T) {
	w, err := Uint256(big.NewInt(258))
	require.NoError(t, err)
	assert.Equal(t, byte(1), w[30])
	assert.Equal(t, byte(2), w[31])
	assert.Equal(t, int64(258), w.Big().Int64())

	maxWord := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	w, err = Uint256(maxWord)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ff", 32), hex.EncodeToString(w[:]))

	_, err = Uint256(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.ErrorIs(t, err, group.ErrInvalidEncoding)

	_, err = Uint256(big.NewInt(-1))
	assert.ErrorIs(t, err, group.ErrInvalidEncoding)

	_, err = Uint256(nil)
	assert.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	t.Run("Checksummed", func(t *testing.T) {
		for _, s := range []string{relayer, encryptor} {
			a, err := ParseAddress(s)
			require.NoError(t, err)
			assert.Equal(t, s, a.Hex())
		}
	})

	t.Run("SingleCase", func(t *testing.T) {
		lower, err := ParseAddress(strings.ToLower(relayer))
		require.NoError(t, err)
		upper, err := ParseAddress("0x" + strings.ToUpper(relayer[2:]))
		require.NoError(t, err)
		assert.Equal(t, lower, upper)
		assert.Equal(t, relayer, lower.String())
	})

	t.Run("NoPrefix", func(t *testing.T) {
		a, err := ParseAddress(relayer[2:])
		require.NoError(t, err)
		assert.Equal(t, relayer, a.Hex())
	})

	t.Run("BadChecksum", func(t *testing.T) {
		// lowercase the first checksummed letter
		bad := "0xf39fd6e51aad88F6F4ce6aB8827279cffFb92266"
		_, err := ParseAddress(bad)
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("BadLength", func(t *testing.T) {
		_, err := ParseAddress(relayer[:40])
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("DoublePrefix", func(t *testing.T) {
		for _, s := range []string{
			"0x0X" + strings.ToLower(relayer[2:]),
			"0x0x" + strings.ToLower(relayer[2:]),
			"0X0x" + strings.ToLower(relayer[2:]),
		} {
			_, err := ParseAddress(s)
			assert.ErrorIs(t, err, group.ErrInvalidEncoding, s)
		}
	})

	t.Run("UpperPrefix", func(t *testing.T) {
		a, err := ParseAddress("0X" + relayer[2:])
		require.NoError(t, err)
		assert.Equal(t, relayer, a.Hex())
	})

	t.Run("NotHex", func(t *testing.T) {
		_, err := ParseAddress("0x" + strings.Repeat("zz", 20))
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})
}

func TestPack(t *testing.T) {
	a, err := ParseAddress(relayer)
	require.NoError(t, err)

	var b Bytes32
	b[0] = 0xaa
	packed := Pack(Uint64(1), a, b, String("medusa"))

	require.Len(t, packed, 32+20+32+6)
	assert.Equal(t, byte(1), packed[31])
	assert.Equal(t, a[:], packed[32:52])
	assert.Equal(t, byte(0xaa), packed[52])
	assert.Equal(t, "medusa", string(packed[84:]))
}

func TestKeccak256(t *testing.T) {
	empty := Keccak256()
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(empty[:]))
	assert.Equal(t, Keccak256([]byte("ab")), Keccak256([]byte("a"), []byte("b")))
}

func TestPointCodec(t *testing.T) {
	s, err := bn254.Init()
	require.NoError(t, err)

	t.Run("Roundtrip", func(t *testing.T) {
		k, _ := s.RandomScalar(rand.Reader)
		p := s.Base1().Mul(k)

		evm := PointToEVM(p)
		restored, err := PointFromEVM(s, evm)
		require.NoError(t, err)
		assert.True(t, restored.Equal(p))
	})

	t.Run("Generator", func(t *testing.T) {
		evm := PointToEVM(s.Generator())
		assert.Equal(t, int64(1), evm.X.Int64())
		assert.Equal(t, int64(2), evm.Y.Int64())
	})

	t.Run("Identity", func(t *testing.T) {
		evm := PointToEVM(s.Identity())
		assert.Zero(t, evm.X.Sign())
		assert.Zero(t, evm.Y.Sign())

		p, err := PointFromEVM(s, G1Point{X: big.NewInt(0), Y: big.NewInt(0)})
		require.NoError(t, err)
		assert.True(t, p.IsIdentity())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := PointFromEVM(s, G1Point{X: big.NewInt(1), Y: big.NewInt(3)})
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)

		_, err = PointFromEVM(s, G1Point{X: big.NewInt(-1), Y: big.NewInt(2)})
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("PackedMatchesStruct", func(t *testing.T) {
		k, _ := s.RandomScalar(rand.Reader)
		p := s.Base1().Mul(k)
		values, err := PointToEVM(p).ABIValues()
		require.NoError(t, err)
		assert.Equal(t, Pack(values...), Pack(Point(p).ABIValues()...))
	})

	t.Run("OutOfRangeWords", func(t *testing.T) {
		wide := new(big.Int).Lsh(big.NewInt(1), 300)
		for _, p := range []G1Point{
			{X: wide, Y: big.NewInt(2)},
			{X: big.NewInt(1), Y: big.NewInt(-1)},
			{X: nil, Y: big.NewInt(2)},
			{X: big.NewInt(1)},
		} {
			_, err := p.ABIValues()
			assert.ErrorIs(t, err, group.ErrInvalidEncoding)
		}
	})
}

func TestScalarCodec(t *testing.T) {
	s, err := bn254.Init()
	require.NoError(t, err)

	k, _ := s.RandomScalar(rand.Reader)
	restored, err := ScalarFromBig(s, ScalarToBig(k))
	require.NoError(t, err)
	assert.True(t, restored.Equal(k))
	assert.Equal(t, k.Bytes(), ScalarWord(k).Packed())

	order := new(big.Int).SetBytes(s.Order())
	_, err = ScalarFromBig(s, order)
	assert.ErrorIs(t, err, group.ErrInvalidEncoding)
}

func TestWords(t *testing.T) {
	data := EncodeWords(Uint64(1), Uint64(2), Uint64(3))
	require.Len(t, data, 96)

	words, err := DecodeWords(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []Word{Uint64(1), Uint64(2), Uint64(3)}, words)

	_, err = DecodeWords(data[:95], 3)
	assert.ErrorIs(t, err, group.ErrInvalidEncoding)
}
