// Package errs defines the sentinel errors and structured error types returned
// by vrtcodec's public API.
//
// All failures raised by the codec are caller-programmer errors: an invalid
// payload format descriptor, a buffer too small for the requested operation,
// or a sample count that does not satisfy a sub-byte fast path's alignment
// requirement. None of these are recovered internally, and the codec never
// retries; the caller decides what to do with the error.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel reasons returned by PayloadFormat validation. Use errors.Is to test
// for a specific reason, or test against ErrInvalidPayloadFormat to catch any
// validation failure regardless of reason.
var (
	// ErrInvalidPayloadFormat is the umbrella sentinel every InvalidPayloadFormat
	// error wraps. errors.Is(err, ErrInvalidPayloadFormat) is true for any
	// descriptor validation failure.
	ErrInvalidPayloadFormat = errors.New("invalid payload format")

	// ErrFSizeOutOfRange reports fSize outside [1, 64].
	ErrFSizeOutOfRange = errors.New("fSize outside [1,64]")

	// ErrDSizeOutOfRange reports dSize outside [1, fSize].
	ErrDSizeOutOfRange = errors.New("dSize outside [1,fSize]")

	// ErrTagSizeExceedsField reports eSize+cSize > fSize-dSize.
	ErrTagSizeExceedsField = errors.New("eSize + cSize exceeds fSize - dSize")

	// ErrDoubleSizeMismatch reports a Double64 descriptor without fSize=dSize=64.
	ErrDoubleSizeMismatch = errors.New("Double64 requires fSize=dSize=64")

	// ErrFloat32SizeMismatch reports a Float32 descriptor with dSize != 32, or
	// fSize neither 32 nor in [33, 64].
	ErrFloat32SizeMismatch = errors.New("Float32 requires dSize=32 and fSize=32 or in [33,64]")

	// ErrVrtFloatSizeMismatch reports a VrtFloat descriptor whose sign bit,
	// exponent, and mantissa do not fit within dSize.
	ErrVrtFloatSizeMismatch = errors.New("VrtFloat requires sign+expBits+mantissa <= dSize")

	// ErrUnknownFormat reports a DataFormat value outside the enumerated set.
	ErrUnknownFormat = errors.New("unknown data item format")
)

// Other caller-programmer errors raised at the dispatcher entry point.
var (
	// ErrBufferUnderflow reports that the computed byte or bit span of the
	// requested operation would exceed the supplied buffer, or that the
	// values array is shorter than the requested sample count.
	ErrBufferUnderflow = errors.New("buffer underflow")

	// ErrLengthNotAligned is the umbrella sentinel every LengthAlignment error
	// wraps.
	ErrLengthNotAligned = errors.New("sample count not aligned to fast path requirement")

	// ErrArrayLengthMismatch reports that a supplied channel or event tag
	// array is shorter than the requested sample count.
	ErrArrayLengthMismatch = errors.New("tag array length does not match sample count")
)

// Errors raised by the golden-fixture corpus registry (package fixture and
// its supporting internal/collision tracker). These never surface from the
// codec's own Pack/Unpack entry points; they are ambient test tooling.
var (
	// ErrHashCollision reports that a fixture was registered by its ID hash
	// alone (no key available for disambiguation) and that hash was already
	// claimed by a different fixture.
	ErrHashCollision = errors.New("fixture ID hash collision")

	// ErrInvalidFixtureKey reports that a fixture was registered with an
	// empty key.
	ErrInvalidFixtureKey = errors.New("fixture key must not be empty")

	// ErrFixtureAlreadyRegistered reports that the same fixture key was
	// registered twice.
	ErrFixtureAlreadyRegistered = errors.New("fixture key already registered")
)

// InvalidPayloadFormat wraps the first PayloadFormat constraint that failed
// validation. The Reason field is always one of the sentinels declared above.
type InvalidPayloadFormat struct {
	Reason error
}

func (e *InvalidPayloadFormat) Error() string {
	return fmt.Sprintf("invalid payload format: %v", e.Reason)
}

func (e *InvalidPayloadFormat) Unwrap() []error {
	return []error{ErrInvalidPayloadFormat, e.Reason}
}

// NewInvalidPayloadFormat wraps reason as an InvalidPayloadFormat error.
func NewInvalidPayloadFormat(reason error) *InvalidPayloadFormat {
	return &InvalidPayloadFormat{Reason: reason}
}

// LengthAlignment reports that a sub-byte fast path (bit, nibble, or Int12)
// was invoked with a sample count that is not a multiple of Required.
type LengthAlignment struct {
	// Path names the sub-byte fast path that was attempted: "bit", "nibble",
	// or "int12".
	Path string
	// Required is the multiple the sample count must satisfy (8, 2, or 2).
	Required int
	// Length is the sample count that was supplied.
	Length int
}

func (e *LengthAlignment) Error() string {
	return fmt.Sprintf("%s fast path requires length to be a multiple of %d, got %d", e.Path, e.Required, e.Length)
}

func (e *LengthAlignment) Unwrap() error {
	return ErrLengthNotAligned
}

// NewLengthAlignment builds a LengthAlignment error for the named sub-byte path.
func NewLengthAlignment(path string, required, length int) *LengthAlignment {
	return &LengthAlignment{Path: path, Required: required, Length: length}
}
