package pack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lakeside-rf/vrtcodec/format"
)

func TestMask64(t *testing.T) {
	require.Equal(t, uint64(0), mask64(0))
	require.Equal(t, uint64(0x1), mask64(1))
	require.Equal(t, uint64(0xFF), mask64(8))
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), mask64(64))
}

func TestSignExtend(t *testing.T) {
	require.Equal(t, int64(-1), signExtend(0xF, 4))
	require.Equal(t, int64(7), signExtend(0x7, 4))
	require.Equal(t, int64(-128), signExtend(0x80, 8))
}

func TestZeroExtend(t *testing.T) {
	require.Equal(t, int64(0xF), zeroExtend(0xF, 4))
	require.Equal(t, int64(0xFF), zeroExtend(0xFF, 8))
}

func TestComputeXSize(t *testing.T) {
	require.Equal(t, 10, computeXSize(10, true))
	require.Equal(t, 32, computeXSize(20, true))
	require.Equal(t, 32, computeXSize(32, true))
	require.Equal(t, 64, computeXSize(33, true))
	require.Equal(t, 64, computeXSize(64, true))
	require.Equal(t, 20, computeXSize(20, false))
}

func TestReadWriteWordBE(t *testing.T) {
	buf := make([]byte, 4)
	writeWordBE(buf, 0, 4, 0x12345678)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, buf)
	require.Equal(t, uint64(0x12345678), readWordBE(buf, 0, 4))
}

func TestExtractComposeFieldsRoundTrip(t *testing.T) {
	// Scenario 4 layout: width=32, fSize=28, dSize=24, eSize=4, cSize=0.
	word := composeFields(32, 28, 24, 4, 0, 0x123456, 0, 0xA)
	require.Equal(t, uint64(0x123456A0), word)

	data, chanVal, evtVal := extractFields(word, 32, 28, 24, 4, 0, true)
	require.Equal(t, int64(0x123456), data)
	require.Equal(t, uint32(0), chanVal)
	require.Equal(t, uint32(0xA), evtVal)
}

func TestResolveTagsNilsOutZeroSizedFields(t *testing.T) {
	pf, err := format.New(format.SignedInt, 8, 8, 0, 0, false, true)
	require.NoError(t, err)

	chanTags, evtTags := resolveTags(pf, []int32{1, 2}, []int32{3, 4})
	require.Nil(t, chanTags)
	require.Nil(t, evtTags)
}
