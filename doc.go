// Package vrtcodec packs and unpacks VITA-49 (VRT) signal-data samples
// to and from a big-endian byte buffer, bit-exact with the wire formats
// the VRT standard describes: plain two's-complement integers, IEEE
// single/double floats, and the VRT non-standard float family.
//
// # Core Features
//
//   - A validated PayloadFormat descriptor (package format) captures the
//     item layout: field size, data size, optional channel/event tag
//     sizes, sign, and processing- vs. link-efficient stride.
//   - Twelve Pack/Unpack entry points, one pair per host element type
//     (float64, float32, int64, int32, int16, int8), dispatch internally
//     to a fast byte-aligned loop, a fast sub-byte (bit/nibble/Int12)
//     loop, a word-aligned 32/64-bit container loop, or a general
//     bit-cursor loop, chosen per CORE SPEC §4.6's branch logic.
//   - No allocation, no I/O, no logging inside the codec itself: callers
//     supply the destination buffer and arrays, and every error is
//     returned rather than logged or retried.
//
// # Basic Usage
//
// Packing and unpacking a run of 12-bit unsigned samples:
//
//	pf, err := format.New(format.UnsignedInt, 12, 12, 0, 0, false, false)
//	if err != nil {
//	    // handle invalid descriptor
//	}
//
//	values := []int32{0xABC, 0x123}
//	buf := make([]byte, 3)
//	if err := vrtcodec.PackAsI32(pf, buf, 0, values, nil, nil, len(values)); err != nil {
//	    // handle error
//	}
//
//	got := make([]int32, 2)
//	if err := vrtcodec.UnpackAsI32(pf, buf, 0, got, nil, nil, len(got)); err != nil {
//	    // handle error
//	}
//
// # Package Structure
//
// This package provides the twelve public element-type entry points.
// The descriptor type and its validator live in package format; the
// host-endianness and big-endian bit/byte primitives live in package
// endian; the VRT non-standard float codec lives in package vrtfloat;
// the fast/word-aligned/general strategy implementations live in the
// internal/pack package, which this package's functions thinly wrap.
//
// # Thread-Safety
//
// Every function in this package is stateless and safe for concurrent
// use, provided distinct goroutines do not share the same destination
// buffer or array without external synchronization.
package vrtcodec
