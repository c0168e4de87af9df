package transcript

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/medusa/abi"
	"github.com/f3rmion/medusa/bn254"
)

func vectorTranscript(t *testing.T) *Transcript {
	t.Helper()
	platform, err := abi.ParseAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	require.NoError(t, err)
	var b abi.Bytes32
	for i := range b {
		b[i] = byte(i)
	}
	return New(abi.Uint64(1), platform, b, abi.String("medusa"))
}

func TestDigestVector(t *testing.T) {
	s, err := bn254.Init()
	require.NoError(t, err)

	tr := vectorTranscript(t)
	d := tr.Digest()
	assert.Equal(t, "aed747262801319d5aa636695825cc8048701474ccbda10a97049ed498f35b1b",
		hex.EncodeToString(d[:]))

	e := tr.Challenge(s)
	assert.Equal(t, "1daa5bcd846c512031b56545d3a1c368cfd45b9b5f914f56cb5ebe18c8f35b18",
		hex.EncodeToString(e.Bytes()))
}

func TestAppendOrder(t *testing.T) {
	a := New(abi.Uint64(1), abi.Uint64(2))
	b := New(abi.Uint64(2), abi.Uint64(1))
	assert.NotEqual(t, a.Digest(), b.Digest())

	c := New()
	c.Append(abi.Uint64(1))
	c.Append(abi.Uint64(2))
	assert.Equal(t, a.Digest(), c.Digest())
}

func TestDifferentSeeds(t *testing.T) {
	s, err := bn254.Init()
	require.NoError(t, err)

	a := New(abi.Uint64(1))
	b := New(abi.Uint64(2))
	a.AppendPoints(s.Base1(), s.Base2())
	b.AppendPoints(s.Base1(), s.Base2())
	assert.False(t, a.Challenge(s).Equal(b.Challenge(s)))
}

func TestClone(t *testing.T) {
	tr := vectorTranscript(t)
	before := tr.Digest()

	c := tr.Clone()
	c.Append(abi.String("more"))

	assert.Equal(t, before, tr.Digest())
	assert.NotEqual(t, before, c.Digest())

	b := tr.Bytes()
	b[0] ^= 0xff
	assert.Equal(t, before, tr.Digest())
}

func TestAppendPoints(t *testing.T) {
	s, err := bn254.Init()
	require.NoError(t, err)

	tr := New()
	tr.AppendPoints(s.Generator(), s.Identity())

	want := make([]byte, 128)
	want[31] = 1
	want[63] = 2
	assert.Equal(t, want, tr.Bytes())
}
