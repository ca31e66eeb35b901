package pack

import "math"

// fastUnpackInt handles the no-tags signed/unsigned integer fast path:
// fSize is a multiple of 8 (one of 8, 16, 24, 32, 64) and no channel or
// event tag is extracted. dSize may be smaller than fSize (the remainder
// is unused bits, simply skipped).
func fastUnpackInt[T Numeric](buf []byte, byteOffset, length, fSize, dSize int, signed bool, values []T) {
	stride := fSize / 8

	for i := range length {
		word := readWordBE(buf, byteOffset+i*stride, stride)
		data, _, _ := extractFields(word, fSize, fSize, dSize, 0, 0, signed)
		values[i] = fromInt64[T](data)
	}
}

// fastPackInt is the inverse of fastUnpackInt. Unused bits are written as
// zero.
func fastPackInt[T Numeric](buf []byte, byteOffset, length, fSize, dSize int, values []T) {
	stride := fSize / 8

	for i := range length {
		word := composeFields(fSize, fSize, dSize, 0, 0, uint64(toInt64(values[i])), 0, 0)
		writeWordBE(buf, byteOffset+i*stride, stride, word)
	}
}

// fastUnpackDouble64 handles the Double64 format, which is always fast:
// fSize = dSize = 64, a plain IEEE double reinterpretation.
func fastUnpackDouble64[T Numeric](buf []byte, byteOffset, length int, values []T) {
	for i := range length {
		bits := readWordBE(buf, byteOffset+i*8, 8)
		values[i] = fromFloat64[T](math.Float64frombits(bits))
	}
}

func fastPackDouble64[T Numeric](buf []byte, byteOffset, length int, values []T) {
	for i := range length {
		bits := math.Float64bits(toFloat64(values[i]))
		writeWordBE(buf, byteOffset+i*8, 8, bits)
	}
}

// fastUnpackFloat32 handles the Float32 format when fSize = dSize = 32: a
// plain IEEE single reinterpretation.
func fastUnpackFloat32[T Numeric](buf []byte, byteOffset, length int, values []T) {
	for i := range length {
		bits := readWordBE(buf, byteOffset+i*4, 4)
		values[i] = fromFloat64[T](float64(math.Float32frombits(uint32(bits))))
	}
}

func fastPackFloat32[T Numeric](buf []byte, byteOffset, length int, values []T) {
	for i := range length {
		bits := math.Float32bits(float32(toFloat64(values[i])))
		writeWordBE(buf, byteOffset+i*4, 4, uint64(bits))
	}
}
