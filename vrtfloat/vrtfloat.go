// Package vrtfloat implements the VRT non-standard floating-point encoding:
// a variable-width sign + biased-exponent + mantissa layout, distinct from
// IEEE 754, used by VITA-49 payload formats VrtFloat1 through VrtFloat4.
//
// The packed layout within a dSize-bit word is, MSB first: an optional sign
// bit (present iff the format is signed), expBits bits of biased exponent,
// and the remaining bits as mantissa with an implicit leading 1 when the
// exponent is non-zero (the same convention IEEE 754 uses for normal
// numbers). A zero exponent denotes a denormal or zero; the all-ones
// exponent is an ordinary finite value — VRT floats have no representation
// for infinity or NaN. The bias is 2^(expBits-1) - 1.
//
//	FromVRT(true, 3, 8, 0b0_011_0000) // sign=0, exp=3 (bias 3, so exp=0), mantissa=0000 -> 1.0
//
// ToVRT rounds to nearest, ties to even (via math.RoundToEven on the scaled
// mantissa), and
// saturates silently on overflow: a magnitude too large for the widest
// representable exponent clamps to the largest finite value of that sign.
package vrtfloat

import "math"

// FromVRT decodes a dSize-bit VRT float with the given sign convention and
// exponent width into a host float64. bits holds the packed value
// right-justified in its low dSize bits; any higher bits are ignored.
func FromVRT(sign bool, expBits, dSize int, bits uint64) float64 {
	mantissaBits := dSize - expBits
	if sign {
		mantissaBits--
	}

	pos := bits
	var negative bool
	if sign {
		signBit := (pos >> (dSize - 1)) & 1
		negative = signBit != 0
		pos &^= uint64(1) << (dSize - 1)
	}

	exp := (pos >> mantissaBits) & ((1 << expBits) - 1)
	mantissa := pos & ((1 << mantissaBits) - 1)
	bias := int64(1)<<(expBits-1) - 1

	var value float64
	if exp == 0 {
		// Denormal / zero: no implicit leading 1, exponent is 1-bias.
		value = float64(mantissa) / float64(int64(1)<<mantissaBits) * math.Pow(2, float64(1-bias))
	} else {
		significand := 1.0 + float64(mantissa)/float64(int64(1)<<mantissaBits)
		value = significand * math.Pow(2, float64(int64(exp)-bias))
	}

	if negative {
		value = -value
	}

	return value
}

// ToVRT encodes value into a dSize-bit VRT float with the given sign
// convention and exponent width, returned right-justified in the low dSize
// bits of the result. Rounding is to nearest, ties to even, via
// math.RoundToEven on the scaled mantissa; magnitudes too large for the widest exponent saturate to the
// largest finite representable value of the same sign.
func ToVRT(sign bool, expBits, dSize int, value float64) uint64 {
	mantissaBits := dSize - expBits
	if sign {
		mantissaBits--
	}

	maxExp := int64(1)<<expBits - 1
	bias := int64(1)<<(expBits-1) - 1
	mantissaScale := float64(int64(1) << mantissaBits)

	var negative bool
	if sign && math.Signbit(value) {
		negative = true
		value = -value
	}

	var expField, mantissaField uint64
	switch {
	case value == 0:
		expField, mantissaField = 0, 0
	default:
		rawExp, frac := math.Frexp(value) // value = frac * 2^rawExp, frac in [0.5, 1)
		biasedExp := int64(rawExp) - 1 + bias
		significand := frac * 2 // now in [1, 2)

		switch {
		case biasedExp <= 0:
			// Denormal: exponent field is 0, mantissa scaled without the
			// implicit leading 1, shifted by how far below the minimum
			// normal exponent this value sits.
			denormScale := math.Pow(2, float64(biasedExp-1))
			m := math.RoundToEven(significand * denormScale * mantissaScale)
			if m >= mantissaScale {
				// Rounded up into the smallest normal value.
				expField, mantissaField = 1, 0
			} else {
				expField, mantissaField = 0, uint64(m)
			}
		case biasedExp > maxExp:
			expField = uint64(maxExp)
			mantissaField = uint64(mantissaScale) - 1
		default:
			m := math.RoundToEven((significand - 1) * mantissaScale)
			if m >= mantissaScale {
				m = 0
				biasedExp++
				if biasedExp > maxExp {
					expField = uint64(maxExp)
					mantissaField = uint64(mantissaScale) - 1
					break
				}
			}
			expField = uint64(biasedExp)
			mantissaField = uint64(m)
		}
	}

	result := expField<<mantissaBits | mantissaField
	if negative {
		result |= uint64(1) << (dSize - 1)
	}

	return result
}
