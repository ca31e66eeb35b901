// Package pack implements the fast, word-aligned, and general bit-stream
// sample-packing strategies, and the Unpack/Pack dispatcher (dispatch.go)
// that selects between them and that the root package's functions wrap.
// Every strategy shares the same numeric trait core so the six public
// element types are generated from one set of generic loops rather than
// six hand-duplicated copies.
package pack

import "github.com/lakeside-rf/vrtcodec/format"

// Numeric is the set of host element types a packed sample may be
// converted to or from. Every pair of types in this set has a defined,
// always-legal Go numeric conversion, which is what lets fromInt64 and
// fromFloat64 below be written once and instantiated for all six.
type Numeric interface {
	~float64 | ~float32 | ~int64 | ~int32 | ~int16 | ~int8
}

// fromInt64 converts a decoded, already sign- or zero-extended integer
// sample into the caller's host type T, truncating or widening per Go's
// standard numeric-conversion rules.
func fromInt64[T Numeric](v int64) T { return T(v) }

// fromFloat64 converts a decoded IEEE or VRT float sample into T.
func fromFloat64[T Numeric](v float64) T { return T(v) }

// toInt64 widens a host sample value to int64 for re-packing as an
// integer format.
func toInt64[T Numeric](v T) int64 { return int64(v) }

// toFloat64 widens a host sample value to float64 for re-packing as an
// IEEE or VRT float format.
func toFloat64[T Numeric](v T) float64 { return float64(v) }

// signExtend interprets the low width bits of raw as two's complement and
// sign-extends them to a full int64, via an arithmetic right shift rather
// than relying on implementation-defined shift-of-signed behavior.
func signExtend(raw uint64, width int) int64 {
	shift := uint(64 - width)
	return int64(raw<<shift) >> shift
}

// zeroExtend interprets the low width bits of raw as an unsigned value,
// zero-extended to int64.
func zeroExtend(raw uint64, width int) int64 {
	return int64(raw & mask64(width))
}

// mask64 returns a mask with the low width bits set (width in [0,64]).
// width == 64 relies on Go's defined shift-by-bit-width-count behavior
// (shifting a 64-bit value left by 64 yields 0), which makes the
// subsequent subtraction wrap to all-ones.
func mask64(width int) uint64 {
	if width <= 0 {
		return 0
	}

	return uint64(1)<<uint(width) - 1
}

// extractFields pulls the data, channel tag, and event tag sub-fields out
// of a width-bit container value (word-aligned path: width is the 32- or
// 64-bit container; general path: width equals fSize, and pSize below is
// always 0). The field layout, MSB to LSB, is
// Data(dSize) | Unused | EventTag(eSize) | ChannelTag(cSize) | Pad(pSize).
func extractFields(word uint64, width, fSize, dSize, eSize, cSize int, signed bool) (data int64, chanVal, evtVal uint32) {
	dataShift := uint(width - dSize)
	raw := word >> dataShift

	if signed {
		data = signExtend(raw, dSize)
	} else {
		data = zeroExtend(raw, dSize)
	}

	pSize := width - fSize
	if cSize > 0 {
		chanVal = uint32((word >> uint(pSize)) & mask64(cSize))
	}
	if eSize > 0 {
		evtVal = uint32((word >> uint(pSize+cSize)) & mask64(eSize))
	}

	return data, chanVal, evtVal
}

// composeFields is the inverse of extractFields: it packs a data bit
// pattern (already truncated to its two's-complement dSize representation)
// and optional tag values into a width-bit container, zero-filling every
// unused and pad bit.
func composeFields(width, fSize, dSize, eSize, cSize int, dataBits uint64, chanVal, evtVal uint32) uint64 {
	dataShift := uint(width - dSize)
	word := (dataBits & mask64(dSize)) << dataShift

	pSize := width - fSize
	if cSize > 0 {
		word |= (uint64(chanVal) & mask64(cSize)) << uint(pSize)
	}
	if eSize > 0 {
		word |= (uint64(evtVal) & mask64(eSize)) << uint(pSize+cSize)
	}

	return word
}

// computeXSize returns the effective container size the dispatcher
// promotes fSize to under processing-efficient packing: 32 for
// 17 <= fSize <= 32, 64 for 33 <= fSize <= 64, fSize unchanged otherwise
// (including whenever proc is false).
func computeXSize(fSize int, proc bool) int {
	if !proc {
		return fSize
	}

	switch {
	case fSize >= 17 && fSize <= 32:
		return 32
	case fSize >= 33 && fSize <= 64:
		return 64
	default:
		return fSize
	}
}

// readWordBE reads byteWidth bytes (1-8) at byteOffset, big-endian,
// right-justified into the result.
func readWordBE(buf []byte, byteOffset, byteWidth int) uint64 {
	var w uint64
	for i := range byteWidth {
		w = w<<8 | uint64(buf[byteOffset+i])
	}

	return w
}

// writeWordBE writes the low byteWidth bytes (1-8) of w at byteOffset,
// big-endian.
func writeWordBE(buf []byte, byteOffset, byteWidth int, w uint64) {
	for i := byteWidth - 1; i >= 0; i-- {
		buf[byteOffset+i] = byte(w)
		w >>= 8
	}
}

// resolveTags applies the dispatcher's tag-array normalization: a tag
// array is treated as absent when its descriptor size is zero, regardless
// of what the caller passed in.
func resolveTags(pf format.PayloadFormat, chanTags, evtTags []int32) ([]int32, []int32) {
	if pf.CSize() == 0 {
		chanTags = nil
	}
	if pf.ESize() == 0 {
		evtTags = nil
	}

	return chanTags, evtTags
}
