package pack

// wordAlignedUnpackInt handles the word-aligned path for SignedInt and
// UnsignedInt formats when the item fits exactly in a container of
// containerBits (32 or 64) bits, with optional channel and event tags.
// VrtFloat* formats use wordAlignedUnpackVrtFloat instead.
func wordAlignedUnpackInt[T Numeric](buf []byte, byteOffset, length, containerBits, fSize, dSize, eSize, cSize int, signed bool, values []T, chanTags, evtTags []int32) {
	stride := containerBits / 8

	for i := range length {
		word := readWordBE(buf, byteOffset+i*stride, stride)
		data, chanVal, evtVal := extractFields(word, containerBits, fSize, dSize, eSize, cSize, signed)

		values[i] = fromInt64[T](data)
		if chanTags != nil {
			chanTags[i] = int32(chanVal)
		}
		if evtTags != nil {
			evtTags[i] = int32(evtVal)
		}
	}
}

func wordAlignedPackInt[T Numeric](buf []byte, byteOffset, length, containerBits, fSize, dSize, eSize, cSize int, values []T, chanTags, evtTags []int32) {
	stride := containerBits / 8

	for i := range length {
		var chanVal, evtVal uint32
		if chanTags != nil {
			chanVal = uint32(chanTags[i])
		}
		if evtTags != nil {
			evtVal = uint32(evtTags[i])
		}

		word := composeFields(containerBits, fSize, dSize, eSize, cSize, uint64(toInt64(values[i])), chanVal, evtVal)
		writeWordBE(buf, byteOffset+i*stride, stride, word)
	}
}

// wordAlignedUnpackVrtFloat handles VrtFloat* formats in the word-aligned
// path: the dSize-bit field holds a VRT-encoded float rather than a two's
// complement integer.
func wordAlignedUnpackVrtFloat[T Numeric](buf []byte, byteOffset, length, containerBits, fSize, dSize, eSize, cSize int, vrtSign bool, expBits int, values []T, chanTags, evtTags []int32) {
	stride := containerBits / 8

	for i := range length {
		word := readWordBE(buf, byteOffset+i*stride, stride)
		dataShift := uint(containerBits - dSize)
		dataBits := (word >> dataShift) & mask64(dSize)

		values[i] = fromFloat64[T](vrtDecode(vrtSign, expBits, dSize, dataBits))

		pSize := containerBits - fSize
		if chanTags != nil && cSize > 0 {
			chanTags[i] = int32((word >> uint(pSize)) & mask64(cSize))
		}
		if evtTags != nil && eSize > 0 {
			evtTags[i] = int32((word >> uint(pSize+cSize)) & mask64(eSize))
		}
	}
}

func wordAlignedPackVrtFloat[T Numeric](buf []byte, byteOffset, length, containerBits, fSize, dSize, eSize, cSize int, vrtSign bool, expBits int, values []T, chanTags, evtTags []int32) {
	stride := containerBits / 8

	for i := range length {
		var chanVal, evtVal uint32
		if chanTags != nil {
			chanVal = uint32(chanTags[i])
		}
		if evtTags != nil {
			evtVal = uint32(evtTags[i])
		}

		dataBits := vrtEncode(vrtSign, expBits, dSize, toFloat64(values[i]))
		word := composeFields(containerBits, fSize, dSize, eSize, cSize, dataBits, chanVal, evtVal)
		writeWordBE(buf, byteOffset+i*stride, stride, word)
	}
}

// wordAlignedUnpackFloat32In64 handles the Float32 format when fSize = 48
// or similar and the container is 64 bits: the upper 32 bits hold the IEEE
// single value, the lower 32 bits hold unused/tag/pad.
func wordAlignedUnpackFloat32In64[T Numeric](buf []byte, byteOffset, length, fSize, eSize, cSize int, values []T, chanTags, evtTags []int32) {
	const containerBits = 64

	for i := range length {
		word := readWordBE(buf, byteOffset+i*8, 8)
		upper := uint32(word >> 32)
		values[i] = fromFloat64[T](float64(float32FromBits(upper)))

		pSize := containerBits - fSize
		if chanTags != nil && cSize > 0 {
			chanTags[i] = int32((word >> uint(pSize)) & mask64(cSize))
		}
		if evtTags != nil && eSize > 0 {
			evtTags[i] = int32((word >> uint(pSize+cSize)) & mask64(eSize))
		}
	}
}

func wordAlignedPackFloat32In64[T Numeric](buf []byte, byteOffset, length, fSize, eSize, cSize int, values []T, chanTags, evtTags []int32) {
	for i := range length {
		var chanVal, evtVal uint32
		if chanTags != nil {
			chanVal = uint32(chanTags[i])
		}
		if evtTags != nil {
			evtVal = uint32(evtTags[i])
		}

		upper := uint64(float32ToBits(float32(toFloat64(values[i])))) << 32
		lower := composeFields(32, fSize-32, 0, eSize, cSize, 0, chanVal, evtVal)
		writeWordBE(buf, byteOffset+i*8, 8, upper|lower)
	}
}
