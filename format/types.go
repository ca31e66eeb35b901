// Package format defines the VRT payload-format descriptor: the validated,
// immutable configuration record that tells the codec how one VRT payload's
// samples are packed into bits.
//
// A PayloadFormat carries no lifecycle of its own. It is constructed once,
// validated once, and then passed by value to every Pack/Unpack call that
// uses it. Callers typically build one with New or with Builder and reuse it
// across many conversions of the same wire layout.
package format

import (
	"github.com/lakeside-rf/vrtcodec/errs"
)

// DataFormat identifies how the data item's bits are interpreted: two's
// complement integer, zero-extended integer, IEEE 754 float, or one of the
// VRT non-standard floating-point variants.
type DataFormat uint8

const (
	// SignedInt is a two's complement signed integer of width dSize.
	SignedInt DataFormat = iota + 1
	// UnsignedInt is a zero-extended unsigned integer of width dSize.
	UnsignedInt
	// Float32 is an IEEE 754 single-precision float; dSize is always 32.
	Float32
	// Double64 is an IEEE 754 double-precision float; fSize=dSize=64.
	Double64
	// VrtFloat1 is a signed VRT non-standard float with a 3-bit exponent.
	VrtFloat1
	// VrtFloat2 is an unsigned VRT non-standard float with a 4-bit exponent.
	VrtFloat2
	// VrtFloat3 is a signed VRT non-standard float with a 5-bit exponent.
	VrtFloat3
	// VrtFloat4 is an unsigned VRT non-standard float with a 6-bit exponent.
	VrtFloat4
)

func (f DataFormat) String() string {
	switch f {
	case SignedInt:
		return "SignedInt"
	case UnsignedInt:
		return "UnsignedInt"
	case Float32:
		return "Float32"
	case Double64:
		return "Double64"
	case VrtFloat1:
		return "VrtFloat1"
	case VrtFloat2:
		return "VrtFloat2"
	case VrtFloat3:
		return "VrtFloat3"
	case VrtFloat4:
		return "VrtFloat4"
	default:
		return "Unknown"
	}
}

// vrtVariant describes one VrtFloatN member's packed layout.
type vrtVariant struct {
	expBits int
	signed  bool
}

// vrtVariants is the external table mapping each VrtFloatN member to its
// exponent width and sign convention, per the spec's open question: the
// mapping is format-variant-specific and must be mirrored from the
// enclosing framing's enumeration. This table is this module's decision
// for that open question (see DESIGN.md).
var vrtVariants = map[DataFormat]vrtVariant{
	VrtFloat1: {expBits: 3, signed: true},
	VrtFloat2: {expBits: 4, signed: false},
	VrtFloat3: {expBits: 5, signed: true},
	VrtFloat4: {expBits: 6, signed: false},
}

// IsVrtFloat reports whether f is one of the VrtFloatN variants.
func (f DataFormat) IsVrtFloat() bool {
	_, ok := vrtVariants[f]
	return ok
}

// VrtLayout returns the exponent width and sign convention for a VrtFloatN
// variant. ok is false for any non-VRT-float format.
func (f DataFormat) VrtLayout() (expBits int, signed bool, ok bool) {
	v, ok := vrtVariants[f]
	return v.expBits, v.signed, ok
}

// PayloadFormat is the validated, by-value descriptor of one VRT sample
// packing layout. The zero value is not meaningful; construct with New or
// NewBuilder.
type PayloadFormat struct {
	format DataFormat
	fSize  int
	dSize  int
	eSize  int
	cSize  int
	proc   bool
	sign   bool
}

// New constructs and validates a PayloadFormat. On failure it returns the
// zero value and an *errs.InvalidPayloadFormat identifying the first failed
// constraint.
func New(f DataFormat, fSize, dSize, eSize, cSize int, proc, sign bool) (PayloadFormat, error) {
	pf := PayloadFormat{
		format: f,
		fSize:  fSize,
		dSize:  dSize,
		eSize:  eSize,
		cSize:  cSize,
		proc:   proc,
		sign:   sign,
	}

	if err := pf.Validate(); err != nil {
		return PayloadFormat{}, err
	}

	return pf, nil
}

// Format returns the data item format.
func (p PayloadFormat) Format() DataFormat { return p.format }

// FSize returns the item packing field size in bits.
func (p PayloadFormat) FSize() int { return p.fSize }

// DSize returns the data item size in bits.
func (p PayloadFormat) DSize() int { return p.dSize }

// ESize returns the event tag size in bits.
func (p PayloadFormat) ESize() int { return p.eSize }

// CSize returns the channel tag size in bits.
func (p PayloadFormat) CSize() int { return p.cSize }

// Proc reports whether the item stride is processing-efficient (rounded up
// to 32 or 64 bits) rather than link-efficient (packed tightly).
func (p PayloadFormat) Proc() bool { return p.proc }

// Sign reports whether the data item is sign-extended (two's complement) on
// unpack. Double64 is always signed regardless of the constructed value, per
// the format's implicit convention.
func (p PayloadFormat) Sign() bool {
	if p.format == Double64 {
		return true
	}

	return p.sign
}

// UnusedSize returns uSize, the number of unused bits inside the field:
// fSize - dSize - eSize - cSize.
func (p PayloadFormat) UnusedSize() int {
	return p.fSize - p.dSize - p.eSize - p.cSize
}

// Validate checks every data-model invariant and returns the first violation
// found, wrapped as *errs.InvalidPayloadFormat. It returns nil for a valid
// descriptor.
func (p PayloadFormat) Validate() error {
	if p.fSize < 1 || p.fSize > 64 {
		return errs.NewInvalidPayloadFormat(errs.ErrFSizeOutOfRange)
	}

	if p.dSize < 1 || p.dSize > p.fSize {
		return errs.NewInvalidPayloadFormat(errs.ErrDSizeOutOfRange)
	}

	if p.eSize < 0 || p.cSize < 0 {
		return errs.NewInvalidPayloadFormat(errs.ErrTagSizeExceedsField)
	}

	if p.eSize+p.cSize > p.fSize-p.dSize {
		return errs.NewInvalidPayloadFormat(errs.ErrTagSizeExceedsField)
	}

	switch p.format {
	case SignedInt, UnsignedInt:
		// No further per-format constraint beyond the shared ones above.
	case Double64:
		if p.fSize != 64 || p.dSize != 64 {
			return errs.NewInvalidPayloadFormat(errs.ErrDoubleSizeMismatch)
		}
	case Float32:
		// fSize=32 is the fast bare-word path; any fSize in [33,64] is the
		// word-aligned path, where the IEEE single occupies the upper 32
		// bits of a 64-bit container and the remaining fSize-32 bits (plus
		// any tags) occupy the top of the lower half.
		if p.dSize != 32 || (p.fSize != 32 && (p.fSize < 33 || p.fSize > 64)) {
			return errs.NewInvalidPayloadFormat(errs.ErrFloat32SizeMismatch)
		}
	case VrtFloat1, VrtFloat2, VrtFloat3, VrtFloat4:
		expBits, signed, _ := p.format.VrtLayout()
		signBit := 0
		if signed {
			signBit = 1
		}
		if p.dSize <= expBits+signBit {
			return errs.NewInvalidPayloadFormat(errs.ErrVrtFloatSizeMismatch)
		}
	default:
		return errs.NewInvalidPayloadFormat(errs.ErrUnknownFormat)
	}

	return nil
}
