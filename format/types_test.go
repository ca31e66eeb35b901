package format

import (
	"errors"
	"testing"

	"github.com/lakeside-rf/vrtcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestNewValid(t *testing.T) {
	require := require.New(t)

	pf, err := New(SignedInt, 16, 16, 0, 0, false, true)
	require.NoError(err)
	require.Equal(SignedInt, pf.Format())
	require.Equal(16, pf.FSize())
	require.Equal(16, pf.DSize())
	require.True(pf.Sign())
	require.Equal(0, pf.UnusedSize())
}

func TestNewFSizeOutOfRange(t *testing.T) {
	_, err := New(SignedInt, 0, 1, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrInvalidPayloadFormat)
	require.ErrorIs(t, err, errs.ErrFSizeOutOfRange)

	_, err = New(SignedInt, 65, 1, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrFSizeOutOfRange)
}

func TestNewDSizeOutOfRange(t *testing.T) {
	_, err := New(SignedInt, 16, 0, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrDSizeOutOfRange)

	_, err = New(SignedInt, 16, 17, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrDSizeOutOfRange)
}

func TestNewTagSizeExceedsField(t *testing.T) {
	_, err := New(UnsignedInt, 16, 12, 3, 2, false, false)
	require.ErrorIs(t, err, errs.ErrTagSizeExceedsField)
}

func TestNewDoubleSizeMismatch(t *testing.T) {
	_, err := New(Double64, 64, 32, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrDoubleSizeMismatch)

	pf, err := New(Double64, 64, 64, 0, 0, false, false)
	require.NoError(t, err)
	require.True(t, pf.Sign(), "Double64 is always signed regardless of the constructed sign field")
}

func TestNewFloat32SizeMismatch(t *testing.T) {
	// dSize must be 32 regardless of fSize.
	_, err := New(Float32, 32, 16, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrFloat32SizeMismatch)

	// With fSize=32 the 32-bit data item fills the field, leaving no room
	// for a tag.
	_, err = New(Float32, 32, 32, 1, 0, false, false)
	require.ErrorIs(t, err, errs.ErrTagSizeExceedsField)

	// fSize=32 (fast) and any fSize in [33,64] (word-aligned, upper 32 bits
	// hold the IEEE single and the rest carries tags/pad) are both valid.
	_, err = New(Float32, 32, 32, 0, 0, false, false)
	require.NoError(t, err)

	_, err = New(Float32, 48, 32, 0, 16, true, false)
	require.NoError(t, err)

	_, err = New(Float32, 64, 32, 0, 0, false, false)
	require.NoError(t, err)
}

func TestNewVrtFloatSizeMismatch(t *testing.T) {
	// VrtFloat1 is signed with a 3-bit exponent: dSize must exceed 3+1=4.
	_, err := New(VrtFloat1, 8, 4, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrVrtFloatSizeMismatch)

	pf, err := New(VrtFloat1, 8, 8, 0, 0, false, false)
	require.NoError(t, err)
	require.True(t, pf.Format().IsVrtFloat())
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(DataFormat(200), 16, 16, 0, 0, false, false)
	require.ErrorIs(t, err, errs.ErrUnknownFormat)
}

func TestDataFormatString(t *testing.T) {
	cases := map[DataFormat]string{
		SignedInt:      "SignedInt",
		UnsignedInt:    "UnsignedInt",
		Float32:        "Float32",
		Double64:       "Double64",
		VrtFloat1:      "VrtFloat1",
		VrtFloat2:      "VrtFloat2",
		VrtFloat3:      "VrtFloat3",
		VrtFloat4:      "VrtFloat4",
		DataFormat(99): "Unknown",
	}
	for f, want := range cases {
		require.Equal(t, want, f.String())
	}
}

func TestVrtLayout(t *testing.T) {
	expBits, signed, ok := VrtFloat2.VrtLayout()
	require.True(t, ok)
	require.Equal(t, 4, expBits)
	require.False(t, signed)

	_, _, ok = SignedInt.VrtLayout()
	require.False(t, ok)
}

func TestUnusedSize(t *testing.T) {
	pf, err := New(SignedInt, 32, 12, 4, 4, false, true)
	require.NoError(t, err)
	require.Equal(t, 12, pf.UnusedSize())
}

func TestInvalidPayloadFormatUnwrap(t *testing.T) {
	_, err := New(SignedInt, 0, 1, 0, 0, false, false)

	var ipf *errs.InvalidPayloadFormat
	require.True(t, errors.As(err, &ipf))
	require.Equal(t, errs.ErrFSizeOutOfRange, ipf.Reason)
}
