package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lakeside-rf/vrtcodec/compress"
	"github.com/lakeside-rf/vrtcodec/errs"
	"github.com/lakeside-rf/vrtcodec/format"
	"github.com/lakeside-rf/vrtcodec/internal/pack"
)

func packEightBitSigned(t *testing.T) (format.PayloadFormat, []byte) {
	t.Helper()

	pf, err := format.New(format.SignedInt, 8, 8, 0, 0, false, true)
	require.NoError(t, err)

	values := []int8{-1, 0, 127, -128}
	buf := make([]byte, 4)
	require.NoError(t, pack.Pack(pf, buf, 0, values, nil, nil, 4))

	return pf, buf
}

func TestCorpusPutGetRoundTrip(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	require.NoError(t, c.Put("scenario1/eight_bit_signed", pf, packed))

	gotFormat, gotPacked, err := c.Get("scenario1/eight_bit_signed")
	require.NoError(t, err)
	require.Equal(t, pf, gotFormat)
	require.Equal(t, packed, gotPacked)
}

func TestCorpusPutGetRoundTripCompressed(t *testing.T) {
	for _, algo := range []compress.Algorithm{compress.AlgorithmZstd, compress.AlgorithmS2, compress.AlgorithmLZ4} {
		t.Run(algo.String(), func(t *testing.T) {
			c, err := NewCorpus(algo)
			require.NoError(t, err)

			pf, packed := packEightBitSigned(t)
			require.NoError(t, c.Put("fixture", pf, packed))

			gotFormat, gotPacked, err := c.Get("fixture")
			require.NoError(t, err)
			require.Equal(t, pf, gotFormat)
			require.Equal(t, packed, gotPacked)
		})
	}
}

func TestCorpusGetMissingKey(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	_, _, err = c.Get("does-not-exist")
	require.Error(t, err)
}

func TestCorpusPutEmptyKey(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	err = c.Put("", pf, packed)
	require.ErrorIs(t, err, errs.ErrInvalidFixtureKey)
}

func TestCorpusPutDuplicateKey(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	require.NoError(t, c.Put("fixture", pf, packed))

	err = c.Put("fixture", pf, packed)
	require.ErrorIs(t, err, errs.ErrFixtureAlreadyRegistered)
}

func TestCorpusKeysPreservesRegistrationOrder(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	require.NoError(t, c.Put("b", pf, packed))
	require.NoError(t, c.Put("a", pf, packed))
	require.NoError(t, c.Put("c", pf, packed))

	require.Equal(t, []string{"b", "a", "c"}, c.Keys())
	require.Equal(t, 3, c.Len())
}

func TestCorpusScratchBufferRoundTrip(t *testing.T) {
	bb, release := ScratchBuffer()
	defer release()

	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte{0x01, 0x02, 0x03})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{0x01, 0x02, 0x03}, bb.Bytes())
}

func TestCorpusNoCollisionForDistinctKeys(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	require.NoError(t, c.Put("fixture-a", pf, packed))
	require.NoError(t, c.Put("fixture-b", pf, packed))

	require.False(t, c.HasCollision())
}

func TestCorpusPutContentAddressedRoundTrip(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmZstd)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	key, err := c.PutContentAddressed(pf, packed)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	gotFormat, gotPacked, err := c.Get(key)
	require.NoError(t, err)
	require.Equal(t, pf, gotFormat)
	require.Equal(t, packed, gotPacked)

	// Content-addressed entries are not named registrations.
	require.Equal(t, 0, c.Len())
}

func TestCorpusPutContentAddressedCollision(t *testing.T) {
	c, err := NewCorpus(compress.AlgorithmNone)
	require.NoError(t, err)

	pf, packed := packEightBitSigned(t)
	_, err = c.PutContentAddressed(pf, packed)
	require.NoError(t, err)

	// Re-registering the identical content hashes to the same ID.
	_, err = c.PutContentAddressed(pf, packed)
	require.ErrorIs(t, err, errs.ErrHashCollision)
}
