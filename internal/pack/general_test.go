package pack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerBitsFor(t *testing.T) {
	require.Equal(t, 32, containerBitsFor(1))
	require.Equal(t, 32, containerBitsFor(32))
	require.Equal(t, 64, containerBitsFor(33))
	require.Equal(t, 64, containerBitsFor(64))
}

func TestGeneralIntRoundTripLinkEfficient(t *testing.T) {
	values := []int32{-524288, 524287, 0, -1}
	buf := make([]byte, 12)
	generalPackInt(buf, 0, 4, 32, 20, 20, 0, 0, false, values, nil, nil)

	got := make([]int32, 4)
	generalUnpackInt(buf, 0, 4, 32, 20, 20, 0, 0, true, false, got, nil, nil)
	require.Equal(t, values, got)
}

func TestGeneralIntProcessingEfficientZeroFillsBoundary(t *testing.T) {
	values := []int32{1, 2, 3}
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = 0xFF
	}
	generalPackInt(buf, 0, 3, 32, 10, 10, 0, 0, true, values, nil, nil)

	// 3 samples * 10 bits = 30 bits fit the first container; the trailing
	// 2 bits up to the 32-bit boundary must be zero.
	require.Equal(t, byte(0), buf[3]&0x3)
}

func TestGeneralVrtFloatRoundTrip(t *testing.T) {
	values := []float64{1.0, 0.5, -1.0, 0}
	buf := make([]byte, 8)
	generalPackVrtFloat(buf, 0, 4, 32, 12, 12, 0, 0, true, 4, false, values, nil, nil)

	got := make([]float64, 4)
	generalUnpackVrtFloat(buf, 0, 4, 32, 12, 12, 0, 0, true, 4, false, got, nil, nil)
	require.Equal(t, values, got)
}

func TestGeneralIntWithTagsRoundTrip(t *testing.T) {
	values := []int32{100, -50}
	chans := []int32{0x3}
	evts := []int32{0x1}
	buf := make([]byte, 8)
	generalPackInt(buf, 0, 1, 32, 20, 16, 2, 2, false, values[:1], chans, evts)

	gotValues := make([]int32, 1)
	gotChans := make([]int32, 1)
	gotEvts := make([]int32, 1)
	generalUnpackInt(buf, 0, 1, 32, 20, 16, 2, 2, true, false, gotValues, gotChans, gotEvts)
	require.Equal(t, values[:1], gotValues)
	require.Equal(t, chans, gotChans)
	require.Equal(t, evts, gotEvts)
}

func TestFinishAtBoundary(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	finishAtBoundary(buf, 20, 32)
	require.Equal(t, byte(0xF0), buf[2])
	require.Equal(t, byte(0x00), buf[3])
}
