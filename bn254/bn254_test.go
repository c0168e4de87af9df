package bn254

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/medusa/group"
)

func mustSuite(t *testing.T) *Suite {
	t.Helper()
	s, err := Init()
	require.NoError(t, err)
	return s
}

func word(v *big.Int) []byte {
	return v.FillBytes(make([]byte, 32))
}

func TestScalar(t *testing.T) {
	g := mustSuite(t)

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)
		assert.True(t, a.Add(b).Sub(b).Equal(a), "(a+b)-b != a")
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := a.Invert()
		require.NoError(t, err)
		assert.True(t, a.Mul(aInv).Equal(g.ScalarOne()))
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := g.NewScalar().Invert()
		assert.Error(t, err)
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		assert.True(t, a.Add(a.Negate()).IsZero())
	})

	t.Run("Immutable", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		before := a.Bytes()
		_ = a.Add(g.ScalarOne())
		_ = a.Negate()
		assert.Equal(t, before, a.Bytes())
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b := a.Bytes()
		require.Len(t, b, 32)
		restored, err := g.ScalarFromBytes(b)
		require.NoError(t, err)
		assert.True(t, restored.Equal(a))
	})

	t.Run("RejectsOutOfRange", func(t *testing.T) {
		_, err := g.ScalarFromBytes(word(fr.Modulus()))
		require.Error(t, err)
		assert.True(t, errors.Is(err, group.ErrInvalidEncoding))

		_, err = g.ScalarFromBytes(make([]byte, 31))
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("ReduceScalar", func(t *testing.T) {
		n := fr.Modulus()
		s := g.ReduceScalar(word(new(big.Int).Add(n, big.NewInt(5))))
		assert.Equal(t, word(big.NewInt(5)), s.Bytes())

		long := make([]byte, 64)
		long[63] = 7
		assert.Equal(t, word(big.NewInt(7)), g.ReduceScalar(long).Bytes())
	})

	t.Run("RandomScalarShortRead", func(t *testing.T) {
		_, err := g.RandomScalar(bytes.NewReader(make([]byte, 10)))
		assert.Error(t, err)
	})
}

func TestPoint(t *testing.T) {
	g := mustSuite(t)

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)
		p := g.Generator().Mul(a)
		q := g.Generator().Mul(b)
		assert.True(t, p.Add(q).Sub(q).Equal(p))
	})

	t.Run("Homomorphism", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)
		lhs := g.Generator().Mul(a.Add(b))
		rhs := g.Generator().Mul(a).Add(g.Generator().Mul(b))
		assert.True(t, lhs.Equal(rhs))
	})

	t.Run("Identity", func(t *testing.T) {
		id := g.Identity()
		assert.True(t, id.IsIdentity())
		assert.True(t, g.Generator().Add(id).Equal(g.Generator()))
		assert.True(t, g.Generator().Mul(g.NewScalar()).IsIdentity())
		assert.True(t, g.Generator().Sub(g.Generator()).IsIdentity())

		x, y := id.Coordinates()
		assert.Equal(t, make([]byte, 32), x)
		assert.Equal(t, make([]byte, 32), y)
	})

	t.Run("Generator", func(t *testing.T) {
		x, y := g.Generator().Coordinates()
		assert.Equal(t, word(big.NewInt(1)), x)
		assert.Equal(t, word(big.NewInt(2)), y)
		assert.True(t, g.Base1().Equal(g.Generator()))
	})

	t.Run("OrderAnnihilates", func(t *testing.T) {
		// n-1 times G plus G is the identity
		nMinus1 := g.ScalarOne().Negate()
		assert.True(t, g.Generator().Mul(nMinus1).Add(g.Generator()).IsIdentity())
		assert.Equal(t, fr.Modulus().Bytes(), g.Order())
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		p := g.Generator().Mul(s)
		restored, err := g.PointFromBytes(p.Bytes())
		require.NoError(t, err)
		assert.True(t, restored.Equal(p))

		_, err = g.PointFromBytes(p.Bytes()[:31])
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("CoordinatesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		p := g.Generator().Mul(s)
		x, y := p.Coordinates()
		restored, err := g.PointFromXY(x, y)
		require.NoError(t, err)
		assert.True(t, restored.Equal(p))
	})

	t.Run("ZeroXIsIdentity", func(t *testing.T) {
		p, err := g.PointFromXY(make([]byte, 32), make([]byte, 32))
		require.NoError(t, err)
		assert.True(t, p.IsIdentity())
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		_, err := g.PointFromXY(word(big.NewInt(1)), word(big.NewInt(3)))
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})

	t.Run("RejectsNonCanonicalCoordinate", func(t *testing.T) {
		// p+1 is congruent to 1, which would otherwise decode as the generator
		x := new(big.Int).Add(fp.Modulus(), big.NewInt(1))
		_, err := g.PointFromXY(word(x), word(big.NewInt(2)))
		assert.ErrorIs(t, err, group.ErrInvalidEncoding)
	})
}

func TestBase2(t *testing.T) {
	g := mustSuite(t)
	b2 := g.Base2()

	assert.False(t, b2.IsIdentity())
	assert.False(t, b2.Equal(g.Base1()))

	x, y := b2.Coordinates()
	restored, err := g.PointFromXY(x, y)
	require.NoError(t, err)
	assert.True(t, restored.Equal(b2))

	wantX, _ := new(big.Int).SetString(base2X, 10)
	assert.Equal(t, word(wantX), x)

	// callers cannot disturb the suite's copy
	_ = b2.Add(g.Base1())
	assert.True(t, g.Base2().Equal(b2))
}

func TestInitConcurrent(t *testing.T) {
	const workers = 16
	suites := make([]*Suite, workers)

	var eg errgroup.Group
	for i := range workers {
		eg.Go(func() error {
			s, err := Init()
			suites[i] = s
			return err
		})
	}
	require.NoError(t, eg.Wait())

	for _, s := range suites {
		assert.Same(t, suites[0], s)
	}
}

func TestHashToPoint(t *testing.T) {
	g := mustSuite(t)
	dst := []byte("MEDUSA-V01-CS01-with-BN254G1_XMD:SHA-256_SVDW_RO_")

	p, err := HashToPoint([]byte("base2"), dst)
	require.NoError(t, err)
	q, err := HashToPoint([]byte("base2"), dst)
	require.NoError(t, err)
	assert.True(t, p.Equal(q))

	x, y := p.Coordinates()
	_, err = g.PointFromXY(x, y)
	assert.NoError(t, err)

	r, err := HashToPoint([]byte("base3"), dst)
	require.NoError(t, err)
	assert.False(t, p.Equal(r))
}

func TestName(t *testing.T) {
	assert.Equal(t, "bn254-g1", mustSuite(t).Name())
}
