package format

// This file is not part of the twelve-function codec API. The enclosing
// packet framing is responsible for parsing and serializing the 64-bit
// payload-format word before handing the already-parsed PayloadFormat to
// Pack/Unpack; the codec itself never touches this encoding. EncodeWireWord
// and DecodeWireWord are provided for that external collaborator's
// convenience and for round-trip tests of the layout described below.
//
// Wire layout (MSB to LSB), 64 bits total:
//
//	format   5 bits
//	sign     1 bit
//	proc     1 bit
//	reserved 9 bits
//	fSize-1  6 bits
//	dSize-1  6 bits
//	eSize    3 bits  (only event tag sizes 0-7 fit)
//	cSize    4 bits  (only channel tag sizes 0-15 fit)
//	tail     29 bits, data-type-specific, unused by this module

const (
	wireFormatShift   = 59
	wireSignShift     = 58
	wireProcShift     = 57
	wireFSizeBitWidth = 6
	wireDSizeBitWidth = 6
	wireESizeBitWidth = 3
	wireCSizeBitWidth = 4
	wireTailBitWidth  = 29
)

// EncodeWireWord packs pf's format, sign, proc, fSize, dSize, eSize, and
// cSize into the 64-bit word layout described above. The reserved and tail
// bits are always zero. EncodeWireWord does not validate pf; call Validate
// first if the caller's pf may be malformed.
func EncodeWireWord(pf PayloadFormat) uint64 {
	var word uint64
	word |= uint64(pf.format) << wireFormatShift
	if pf.Sign() {
		word |= 1 << wireSignShift
	}
	if pf.proc {
		word |= 1 << wireProcShift
	}

	cSizeShift := wireTailBitWidth
	eSizeShift := cSizeShift + wireCSizeBitWidth
	dSizeShift := eSizeShift + wireESizeBitWidth
	fSizeShift := dSizeShift + wireDSizeBitWidth

	word |= uint64(pf.fSize-1) << fSizeShift
	word |= uint64(pf.dSize-1) << dSizeShift
	word |= uint64(pf.eSize) << eSizeShift
	word |= uint64(pf.cSize) << cSizeShift

	return word
}

// DecodeWireWord unpacks a 64-bit payload-format word into an unvalidated
// PayloadFormat. Call Validate on the result before using it to Pack/Unpack.
func DecodeWireWord(word uint64) PayloadFormat {
	cSizeShift := wireTailBitWidth
	eSizeShift := cSizeShift + wireCSizeBitWidth
	dSizeShift := eSizeShift + wireESizeBitWidth
	fSizeShift := dSizeShift + wireDSizeBitWidth

	return PayloadFormat{
		format: DataFormat((word >> wireFormatShift) & 0x1F),
		sign:   (word>>wireSignShift)&1 != 0,
		proc:   (word>>wireProcShift)&1 != 0,
		fSize:  int((word>>fSizeShift)&0x3F) + 1,
		dSize:  int((word>>dSizeShift)&0x3F) + 1,
		eSize:  int((word >> eSizeShift) & 0x7),
		cSize:  int((word >> cSizeShift) & 0xF),
	}
}
