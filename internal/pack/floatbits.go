package pack

import (
	"math"

	"github.com/lakeside-rf/vrtcodec/vrtfloat"
)

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
func float32ToBits(v float32) uint32      { return math.Float32bits(v) }

func vrtDecode(signed bool, expBits, dSize int, bits uint64) float64 {
	return vrtfloat.FromVRT(signed, expBits, dSize, bits)
}

func vrtEncode(signed bool, expBits, dSize int, value float64) uint64 {
	return vrtfloat.ToVRT(signed, expBits, dSize, value)
}
