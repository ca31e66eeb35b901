package pack

import (
	"github.com/lakeside-rf/vrtcodec/errs"
	"github.com/lakeside-rf/vrtcodec/format"
)

// isFastByteWidth reports whether fSize is one of the byte-aligned fast
// widths that fastUnpackInt/fastPackInt handle directly.
func isFastByteWidth(fSize int) bool {
	switch fSize {
	case 8, 16, 24, 32, 64:
		return true
	default:
		return false
	}
}

// checkBufferSpan returns ErrBufferUnderflow if byteOffset is negative or
// the buffer does not have at least bitsNeeded bits available starting at
// byteOffset. This is the one up-front bounds check CORE SPEC §7 allows in
// lieu of per-access range checking.
func checkBufferSpan(buf []byte, byteOffset, bitsNeeded int) error {
	if byteOffset < 0 {
		return errs.ErrBufferUnderflow
	}

	available := (len(buf) - byteOffset) * 8
	if available < bitsNeeded {
		return errs.ErrBufferUnderflow
	}

	return nil
}

// checkArrays validates that values and any present tag arrays are at
// least length long.
func checkArrays(length int, valuesLen int, chanTags, evtTags []int32) error {
	if valuesLen < length {
		return errs.ErrBufferUnderflow
	}
	if chanTags != nil && len(chanTags) < length {
		return errs.ErrArrayLengthMismatch
	}
	if evtTags != nil && len(evtTags) < length {
		return errs.ErrArrayLengthMismatch
	}

	return nil
}

// dispatchParams bundles the values derived once, up front, by both
// Unpack and Pack from the validated PayloadFormat.
type dispatchParams struct {
	fSize, dSize, eSize, cSize int
	proc, signed, noTags       bool
	xSize                      int
}

func deriveParams(pf format.PayloadFormat, haveChan, haveEvt bool) dispatchParams {
	fSize, dSize, eSize, cSize := pf.FSize(), pf.DSize(), pf.ESize(), pf.CSize()
	proc, signed := pf.Proc(), pf.Sign()

	noTags := (!haveChan && !haveEvt) || fSize == dSize
	xSize := computeXSize(fSize, proc)

	effectiveFSize := fSize
	if proc && noTags {
		effectiveFSize = xSize
	}

	return dispatchParams{
		fSize:   effectiveFSize,
		dSize:   dSize,
		eSize:   eSize,
		cSize:   cSize,
		proc:    proc,
		signed:  signed,
		noTags:  noTags,
		xSize:   xSize,
	}
}

// Unpack reads length samples of host type T from buf at byteOffset
// according to pf into values, and, when pf's descriptor and the supplied
// arrays allow it, into chanTags/evtTags.
func Unpack[T Numeric](pf format.PayloadFormat, buf []byte, byteOffset int, values []T, chanTags, evtTags []int32, length int) error {
	if err := pf.Validate(); err != nil {
		return err
	}
	if err := checkArrays(length, len(values), chanTags, evtTags); err != nil {
		return err
	}

	chanTags, evtTags = resolveTags(pf, chanTags, evtTags)
	p := deriveParams(pf, chanTags != nil, evtTags != nil)

	switch pf.Format() {
	case format.SignedInt, format.UnsignedInt:
		return unpackInt(buf, byteOffset, length, p, values, chanTags, evtTags)
	case format.Float32:
		return unpackFloat32(buf, byteOffset, length, p, values, chanTags, evtTags)
	case format.Double64:
		if err := checkBufferSpan(buf, byteOffset, length*64); err != nil {
			return err
		}
		fastUnpackDouble64(buf, byteOffset, length, values)
		return nil
	case format.VrtFloat1, format.VrtFloat2, format.VrtFloat3, format.VrtFloat4:
		return unpackVrtFloat(buf, byteOffset, length, pf.Format(), p, values, chanTags, evtTags)
	default:
		return errs.NewInvalidPayloadFormat(errs.ErrUnknownFormat)
	}
}

// Pack writes length samples of host type T into buf at byteOffset
// according to pf, reading optional chanTags/evtTags when pf's descriptor
// carries tags.
func Pack[T Numeric](pf format.PayloadFormat, buf []byte, byteOffset int, values []T, chanTags, evtTags []int32, length int) error {
	if err := pf.Validate(); err != nil {
		return err
	}
	if err := checkArrays(length, len(values), chanTags, evtTags); err != nil {
		return err
	}

	chanTags, evtTags = resolveTags(pf, chanTags, evtTags)
	p := deriveParams(pf, chanTags != nil, evtTags != nil)

	switch pf.Format() {
	case format.SignedInt, format.UnsignedInt:
		return packInt(buf, byteOffset, length, p, values, chanTags, evtTags)
	case format.Float32:
		return packFloat32(buf, byteOffset, length, p, values, chanTags, evtTags)
	case format.Double64:
		if err := checkBufferSpan(buf, byteOffset, length*64); err != nil {
			return err
		}
		fastPackDouble64(buf, byteOffset, length, values)
		return nil
	case format.VrtFloat1, format.VrtFloat2, format.VrtFloat3, format.VrtFloat4:
		return packVrtFloat(buf, byteOffset, length, pf.Format(), p, values, chanTags, evtTags)
	default:
		return errs.NewInvalidPayloadFormat(errs.ErrUnknownFormat)
	}
}

func unpackInt[T Numeric](buf []byte, byteOffset, length int, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	switch {
	case p.noTags && isFastByteWidth(p.fSize):
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize); err != nil {
			return err
		}
		fastUnpackInt(buf, byteOffset, length, p.fSize, p.dSize, p.signed, values)
		return nil

	case p.noTags && (p.fSize == 1 || p.fSize == 4 || p.fSize == 12):
		if err := checkSubByteAlignment(p.fSize, length); err != nil {
			return err
		}
		if err := checkBufferSpan(buf, byteOffset, subByteBits(p.fSize, length, p.proc)); err != nil {
			return err
		}
		unpackSubByte(buf, byteOffset, length, p.fSize, p.proc, p.signed, values)
		return nil

	case p.xSize == 32 || p.xSize == 64:
		if err := checkBufferSpan(buf, byteOffset, length*p.xSize); err != nil {
			return err
		}
		wordAlignedUnpackInt(buf, byteOffset, length, p.xSize, p.fSize, p.dSize, p.eSize, p.cSize, p.signed, values, chanTags, evtTags)
		return nil

	default:
		containerBits := containerBitsFor(p.fSize)
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize+containerBits); err != nil {
			return err
		}
		generalUnpackInt(buf, byteOffset*8, length, containerBits, p.fSize, p.dSize, p.eSize, p.cSize, p.signed, p.proc, values, chanTags, evtTags)
		return nil
	}
}

func packInt[T Numeric](buf []byte, byteOffset, length int, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	switch {
	case p.noTags && isFastByteWidth(p.fSize):
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize); err != nil {
			return err
		}
		fastPackInt(buf, byteOffset, length, p.fSize, p.dSize, values)
		return nil

	case p.noTags && (p.fSize == 1 || p.fSize == 4 || p.fSize == 12):
		if err := checkSubByteAlignment(p.fSize, length); err != nil {
			return err
		}
		if err := checkBufferSpan(buf, byteOffset, subByteBits(p.fSize, length, p.proc)); err != nil {
			return err
		}
		packSubByte(buf, byteOffset, length, p.fSize, p.proc, values)
		return nil

	case p.xSize == 32 || p.xSize == 64:
		if err := checkBufferSpan(buf, byteOffset, length*p.xSize); err != nil {
			return err
		}
		wordAlignedPackInt(buf, byteOffset, length, p.xSize, p.fSize, p.dSize, p.eSize, p.cSize, values, chanTags, evtTags)
		return nil

	default:
		containerBits := containerBitsFor(p.fSize)
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize+containerBits); err != nil {
			return err
		}
		generalPackInt(buf, byteOffset*8, length, containerBits, p.fSize, p.dSize, p.eSize, p.cSize, p.proc, values, chanTags, evtTags)
		return nil
	}
}

func unpackFloat32[T Numeric](buf []byte, byteOffset, length int, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	switch {
	case p.fSize == 32:
		if err := checkBufferSpan(buf, byteOffset, length*32); err != nil {
			return err
		}
		fastUnpackFloat32(buf, byteOffset, length, values)
		return nil
	case p.fSize > 32 && p.fSize <= 64:
		if err := checkBufferSpan(buf, byteOffset, length*64); err != nil {
			return err
		}
		wordAlignedUnpackFloat32In64(buf, byteOffset, length, p.fSize, p.eSize, p.cSize, values, chanTags, evtTags)
		return nil
	default:
		// Unreachable: format.Validate requires fSize=32 or fSize in [33,64]
		// for Float32.
		return errs.NewInvalidPayloadFormat(errs.ErrFloat32SizeMismatch)
	}
}

func packFloat32[T Numeric](buf []byte, byteOffset, length int, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	switch {
	case p.fSize == 32:
		if err := checkBufferSpan(buf, byteOffset, length*32); err != nil {
			return err
		}
		fastPackFloat32(buf, byteOffset, length, values)
		return nil
	case p.fSize > 32 && p.fSize <= 64:
		if err := checkBufferSpan(buf, byteOffset, length*64); err != nil {
			return err
		}
		wordAlignedPackFloat32In64(buf, byteOffset, length, p.fSize, p.eSize, p.cSize, values, chanTags, evtTags)
		return nil
	default:
		return errs.NewInvalidPayloadFormat(errs.ErrFloat32SizeMismatch)
	}
}

func unpackVrtFloat[T Numeric](buf []byte, byteOffset, length int, f format.DataFormat, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	expBits, vrtSign, _ := f.VrtLayout()

	switch {
	case p.xSize == 32 || p.xSize == 64:
		if err := checkBufferSpan(buf, byteOffset, length*p.xSize); err != nil {
			return err
		}
		wordAlignedUnpackVrtFloat(buf, byteOffset, length, p.xSize, p.fSize, p.dSize, p.eSize, p.cSize, vrtSign, expBits, values, chanTags, evtTags)
		return nil
	default:
		containerBits := containerBitsFor(p.fSize)
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize+containerBits); err != nil {
			return err
		}
		generalUnpackVrtFloat(buf, byteOffset*8, length, containerBits, p.fSize, p.dSize, p.eSize, p.cSize, vrtSign, expBits, p.proc, values, chanTags, evtTags)
		return nil
	}
}

func packVrtFloat[T Numeric](buf []byte, byteOffset, length int, f format.DataFormat, p dispatchParams, values []T, chanTags, evtTags []int32) error {
	expBits, vrtSign, _ := f.VrtLayout()

	switch {
	case p.xSize == 32 || p.xSize == 64:
		if err := checkBufferSpan(buf, byteOffset, length*p.xSize); err != nil {
			return err
		}
		wordAlignedPackVrtFloat(buf, byteOffset, length, p.xSize, p.fSize, p.dSize, p.eSize, p.cSize, vrtSign, expBits, values, chanTags, evtTags)
		return nil
	default:
		containerBits := containerBitsFor(p.fSize)
		if err := checkBufferSpan(buf, byteOffset, length*p.fSize+containerBits); err != nil {
			return err
		}
		generalPackVrtFloat(buf, byteOffset*8, length, containerBits, p.fSize, p.dSize, p.eSize, p.cSize, vrtSign, expBits, p.proc, values, chanTags, evtTags)
		return nil
	}
}

// checkSubByteAlignment enforces CORE SPEC §7's LengthAlignment error for
// the bit/nibble/Int12 fast sub-byte paths.
func checkSubByteAlignment(fSize, length int) error {
	switch fSize {
	case 1:
		if length%8 != 0 {
			return errs.NewLengthAlignment("bit", 8, length)
		}
	case 4:
		if length%2 != 0 {
			return errs.NewLengthAlignment("nibble", 2, length)
		}
	case 12:
		if length%2 != 0 {
			return errs.NewLengthAlignment("int12", 2, length)
		}
	}

	return nil
}

// subByteBits returns the number of buffer bits a sub-byte fast-path call
// spans.
func subByteBits(fSize, length int, proc bool) int {
	switch fSize {
	case 1:
		return length
	case 4:
		return length * 4
	case 12:
		return (length / 2) * int12Stride(proc) * 8
	default:
		return 0
	}
}

func unpackSubByte[T Numeric](buf []byte, byteOffset, length, fSize int, proc, signed bool, values []T) {
	switch fSize {
	case 1:
		bitUnpack(buf, byteOffset, length, signed, values)
	case 4:
		nibbleUnpack(buf, byteOffset, length, signed, values)
	case 12:
		int12Unpack(buf, byteOffset, length, proc, signed, values)
	}
}

func packSubByte[T Numeric](buf []byte, byteOffset, length, fSize int, proc bool, values []T) {
	switch fSize {
	case 1:
		bitPack(buf, byteOffset, length, values)
	case 4:
		nibblePack(buf, byteOffset, length, values)
	case 12:
		int12Pack(buf, byteOffset, length, proc, values)
	}
}
