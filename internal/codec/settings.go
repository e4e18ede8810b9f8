package codec

// rleSettings mirrors the bit-level layout of the RLE stream's leading
// settings byte (spec §3).
type rleSettings uint8

const (
	rleFlagHorizontal = 0x80
	rleFlagModel      = 0x40
	rleShiftKw        = 3
	rleShiftKh        = 0
	rleFieldMask      = 0x07
)

// Raw exposes the underlying byte.
func (f rleSettings) Raw() uint8 { return uint8(f) }

// Horizontal reports whether the horizontal scan direction was used.
func (f rleSettings) Horizontal() bool { return f&rleFlagHorizontal != 0 }

// ModelApplied reports whether the caller applied the differential
// preprocess before this RLE stream was produced.
func (f rleSettings) ModelApplied() bool { return f&rleFlagModel != 0 }

// Kw returns the number of bytes used to encode the image width.
func (f rleSettings) Kw() int { return int((uint8(f)>>rleShiftKw)&rleFieldMask) + 1 }

// Kh returns the number of bytes used to encode the image height.
func (f rleSettings) Kh() int { return int((uint8(f)>>rleShiftKh)&rleFieldMask) + 1 }

// newRLESettings builds a settings byte from its logical fields. kw and kh
// must be in 1..maxHeaderDim.
func newRLESettings(horizontal, modelApplied bool, kw, kh int) rleSettings {
	var f uint8
	if horizontal {
		f |= rleFlagHorizontal
	}
	if modelApplied {
		f |= rleFlagModel
	}
	f |= uint8(kw-1) << rleShiftKw
	f |= uint8(kh-1) << rleShiftKh
	return rleSettings(f)
}

// huffOuterSettings mirrors the Adaptive-Huffman outer frame's single
// settings byte (spec §3).
type huffOuterSettings uint8

const (
	huffFlagCoded  = 0x08
	huffPaddingMask = 0x07
)

// Raw exposes the underlying byte.
func (f huffOuterSettings) Raw() uint8 { return uint8(f) }

// Coded reports whether the payload is Huffman-coded (as opposed to a raw
// pass-through copy of the RLE frame).
func (f huffOuterSettings) Coded() bool { return f&huffFlagCoded != 0 }

// Padding returns the number of unused low bits in the final payload byte.
func (f huffOuterSettings) Padding() int { return int(f) & huffPaddingMask }
