package vrtcodec

import (
	"github.com/lakeside-rf/vrtcodec/format"
	"github.com/lakeside-rf/vrtcodec/internal/pack"
)

// UnpackAsF64 unpacks length samples from buf at byteOffset into values as
// float64, per pf. chanTags/evtTags receive the channel/event tags when pf
// carries them; pass nil when the caller does not need them.
func UnpackAsF64(pf format.PayloadFormat, buf []byte, byteOffset int, values []float64, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsF64 packs length float64 values into buf at byteOffset per pf.
func PackAsF64(pf format.PayloadFormat, buf []byte, byteOffset int, values []float64, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// UnpackAsF32 unpacks length samples from buf at byteOffset into values as
// float32, per pf.
func UnpackAsF32(pf format.PayloadFormat, buf []byte, byteOffset int, values []float32, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsF32 packs length float32 values into buf at byteOffset per pf.
func PackAsF32(pf format.PayloadFormat, buf []byte, byteOffset int, values []float32, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// UnpackAsI64 unpacks length samples from buf at byteOffset into values as
// int64, per pf.
func UnpackAsI64(pf format.PayloadFormat, buf []byte, byteOffset int, values []int64, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsI64 packs length int64 values into buf at byteOffset per pf.
func PackAsI64(pf format.PayloadFormat, buf []byte, byteOffset int, values []int64, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// UnpackAsI32 unpacks length samples from buf at byteOffset into values as
// int32, per pf.
func UnpackAsI32(pf format.PayloadFormat, buf []byte, byteOffset int, values []int32, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsI32 packs length int32 values into buf at byteOffset per pf.
func PackAsI32(pf format.PayloadFormat, buf []byte, byteOffset int, values []int32, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// UnpackAsI16 unpacks length samples from buf at byteOffset into values as
// int16, per pf.
func UnpackAsI16(pf format.PayloadFormat, buf []byte, byteOffset int, values []int16, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsI16 packs length int16 values into buf at byteOffset per pf.
func PackAsI16(pf format.PayloadFormat, buf []byte, byteOffset int, values []int16, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// UnpackAsI8 unpacks length samples from buf at byteOffset into values as
// int8, per pf.
func UnpackAsI8(pf format.PayloadFormat, buf []byte, byteOffset int, values []int8, chanTags, evtTags []int32, length int) error {
	return pack.Unpack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}

// PackAsI8 packs length int8 values into buf at byteOffset per pf.
func PackAsI8(pf format.PayloadFormat, buf []byte, byteOffset int, values []int8, chanTags, evtTags []int32, length int) error {
	return pack.Pack(pf, buf, byteOffset, values, chanTags, evtTags, length)
}
