package pack

import "github.com/lakeside-rf/vrtcodec/endian"

// containerBitsFor chooses the general bit-stream container width: 32 bits
// when the item fits a 32-bit container, 64 bits otherwise.
func containerBitsFor(fSize int) int {
	if fSize <= 32 {
		return 32
	}

	return 64
}

// generalUnpackInt carries a bit cursor through containerBits-bit
// containers, reading an fSize-bit window per sample and extracting the
// data/channel/event sub-fields from it. In processing-efficient mode the
// cursor skips to the next container boundary whenever fewer than fSize
// bits remain in the current container.
func generalUnpackInt[T Numeric](buf []byte, bitOffset, length, containerBits, fSize, dSize, eSize, cSize int, signed, proc bool, values []T, chanTags, evtTags []int32) {
	pos := uint(bitOffset)

	for i := range length {
		if proc {
			if remaining := uint(containerBits) - pos%uint(containerBits); remaining < uint(fSize) {
				pos += remaining
			}
		}

		window := endian.UnpackBits(buf, pos, uint(fSize))
		data, chanVal, evtVal := extractFields(window, fSize, fSize, dSize, eSize, cSize, signed)

		values[i] = fromInt64[T](data)
		if chanTags != nil {
			chanTags[i] = int32(chanVal)
		}
		if evtTags != nil {
			evtTags[i] = int32(evtVal)
		}

		pos += uint(fSize)
	}
}

// generalPackInt is the inverse of generalUnpackInt. Skipped pad bits
// (proc mode) and the trailing span up to the next container boundary are
// zero-filled.
func generalPackInt[T Numeric](buf []byte, bitOffset, length, containerBits, fSize, dSize, eSize, cSize int, proc bool, values []T, chanTags, evtTags []int32) {
	pos := uint(bitOffset)

	for i := range length {
		if proc {
			if remaining := uint(containerBits) - pos%uint(containerBits); remaining < uint(fSize) {
				endian.PackBits(buf, pos, remaining, 0)
				pos += remaining
			}
		}

		var chanVal, evtVal uint32
		if chanTags != nil {
			chanVal = uint32(chanTags[i])
		}
		if evtTags != nil {
			evtVal = uint32(evtTags[i])
		}

		window := composeFields(fSize, fSize, dSize, eSize, cSize, uint64(toInt64(values[i])), chanVal, evtVal)
		endian.PackBits(buf, pos, uint(fSize), window)

		pos += uint(fSize)
	}

	finishAtBoundary(buf, pos, containerBits)
}

// generalUnpackVrtFloat is generalUnpackInt's VRT-float counterpart: the
// dSize-bit data sub-field holds a VRT-encoded float rather than a two's
// complement integer.
func generalUnpackVrtFloat[T Numeric](buf []byte, bitOffset, length, containerBits, fSize, dSize, eSize, cSize int, vrtSign bool, expBits int, proc bool, values []T, chanTags, evtTags []int32) {
	pos := uint(bitOffset)

	for i := range length {
		if proc {
			if remaining := uint(containerBits) - pos%uint(containerBits); remaining < uint(fSize) {
				pos += remaining
			}
		}

		window := endian.UnpackBits(buf, pos, uint(fSize))
		dataShift := uint(fSize - dSize)
		dataBits := (window >> dataShift) & mask64(dSize)
		values[i] = fromFloat64[T](vrtDecode(vrtSign, expBits, dSize, dataBits))

		// The general path's window equals fSize, so pSize (pad bits) is
		// always 0 here; tags sit directly at the bottom of the window.
		if chanTags != nil && cSize > 0 {
			chanTags[i] = int32(window & mask64(cSize))
		}
		if evtTags != nil && eSize > 0 {
			evtTags[i] = int32((window >> uint(cSize)) & mask64(eSize))
		}

		pos += uint(fSize)
	}
}

func generalPackVrtFloat[T Numeric](buf []byte, bitOffset, length, containerBits, fSize, dSize, eSize, cSize int, vrtSign bool, expBits int, proc bool, values []T, chanTags, evtTags []int32) {
	pos := uint(bitOffset)

	for i := range length {
		if proc {
			if remaining := uint(containerBits) - pos%uint(containerBits); remaining < uint(fSize) {
				endian.PackBits(buf, pos, remaining, 0)
				pos += remaining
			}
		}

		var chanVal, evtVal uint32
		if chanTags != nil {
			chanVal = uint32(chanTags[i])
		}
		if evtTags != nil {
			evtVal = uint32(evtTags[i])
		}

		dataBits := vrtEncode(vrtSign, expBits, dSize, toFloat64(values[i]))
		window := composeFields(fSize, fSize, dSize, eSize, cSize, dataBits, chanVal, evtVal)
		endian.PackBits(buf, pos, uint(fSize), window)

		pos += uint(fSize)
	}

	finishAtBoundary(buf, pos, containerBits)
}

// finishAtBoundary zero-fills any bits remaining between pos and the next
// containerBits boundary.
func finishAtBoundary(buf []byte, pos uint, containerBits int) {
	if rem := pos % uint(containerBits); rem != 0 {
		pad := uint(containerBits) - rem
		endian.PackBits(buf, pos, pad, 0)
	}
}
