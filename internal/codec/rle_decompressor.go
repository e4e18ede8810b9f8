package codec

import "errors"

// ErrShortRLEHeader is returned when the buffer is too small to contain the
// settings byte plus the width/height fields it declares.
var ErrShortRLEHeader = errors.New("imgcodec: short RLE header")

// ErrVerticalOverflow is returned when a vertically-scanned run would write
// past the declared image size — a genuinely malformed stream, as opposed
// to the trailing zero-padding a compressor may have appended.
var ErrVerticalOverflow = errors.New("imgcodec: vertical reconstruction overflowed image bounds")

// ErrIncompleteImage is returned when the RLE payload runs out before
// w*h pixels have been reconstructed.
var ErrIncompleteImage = errors.New("imgcodec: RLE stream ended before the image was fully reconstructed")

// RLEDecompressor parses the settings byte and header fields of an RLE
// stream and reconstructs the original buffer.
type RLEDecompressor struct {
	settings rleSettings
	w, h     uint64
	payload  []byte
}

// NewRLEDecompressor parses buf's header. It returns ErrShortRLEHeader if
// buf is too small to hold the settings byte and the width/height fields
// that the settings byte itself declares.
func NewRLEDecompressor(buf []byte) (*RLEDecompressor, error) {
	if len(buf) == 0 {
		return nil, ErrShortRLEHeader
	}
	settings := rleSettings(buf[0])
	kw, kh := settings.Kw(), settings.Kh()
	if len(buf) < 1+kw+kh {
		return nil, ErrShortRLEHeader
	}
	w := readBigEndian(buf[1:1+kw], kw)
	h := readBigEndian(buf[1+kw:1+kw+kh], kh)
	return &RLEDecompressor{
		settings: settings,
		w:        w,
		h:        h,
		payload:  buf[1+kw+kh:],
	}, nil
}

// Width and Height return the header's declared image dimensions.
func (d *RLEDecompressor) Width() uint64  { return d.w }
func (d *RLEDecompressor) Height() uint64 { return d.h }

// ModelApplied reports whether the settings byte's differential-model flag
// is set.
func (d *RLEDecompressor) ModelApplied() bool { return d.settings.ModelApplied() }

// Decompress reconstructs the w*h pixel buffer. It stops successfully the
// moment exactly w*h pixels have been written, ignoring any bytes that
// remain in the payload — trailing zero-padding added to fill out the
// final group is never itself decoded as image data.
func (d *RLEDecompressor) Decompress() ([]byte, error) {
	if d.settings.Horizontal() {
		return d.decompressHorizontal()
	}
	return d.decompressVertical()
}

func (d *RLEDecompressor) decompressHorizontal() ([]byte, error) {
	size := d.w * d.h
	out := make([]byte, size)
	gr := newGroupReader(d.payload)
	var written uint64
	for written < size {
		count, value, ok := nextRun(gr)
		if !ok {
			return nil, ErrIncompleteImage
		}
		remaining := size - written
		if count > remaining {
			count = remaining
		}
		for i := uint64(0); i < count; i++ {
			out[written+i] = value
		}
		written += count
	}
	return out, nil
}

func (d *RLEDecompressor) decompressVertical() ([]byte, error) {
	w, h := d.w, d.h
	size := w * h
	out := make([]byte, size)
	gr := newGroupReader(d.payload)
	var written uint64
	var x, y uint64
	for written < size {
		count, value, ok := nextRun(gr)
		if !ok {
			return nil, ErrIncompleteImage
		}
		if count > size-written {
			return nil, ErrVerticalOverflow
		}
		for i := uint64(0); i < count; i++ {
			out[y*w+x] = value
			y++
			if y == h {
				y = 0
				x++
			}
		}
		written += count
	}
	return out, nil
}

// nextRun reconstructs one (count, value) run from the group-classified
// stream, mirroring the base-256 counter-fragment accumulation: each
// fragment byte is folded in as count = (count | b) << 8, and the shift is
// undone once the terminating literal value byte is reached.
func nextRun(gr *groupReader) (count uint64, value byte, ok bool) {
	var fragments int
	var acc uint64
	for {
		b, isFragment, more := gr.next()
		if !more {
			return 0, 0, false
		}
		if isFragment {
			acc = (acc | uint64(b)) << 8
			fragments++
			continue
		}
		if fragments == 0 {
			return 1, b, true
		}
		acc >>= 8
		acc += 2
		return acc, b, true
	}
}
