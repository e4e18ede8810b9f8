package codec

import "log/slog"

// Options controls how Compress drives the RLE and Huffman stages.
type Options struct {
	// Model applies the differential preprocess before RLE scanning.
	Model bool
	// Adaptive runs both RLE scan directions and keeps the shorter; when
	// false, the horizontal scan is always used, whatever Model is.
	Adaptive bool
	// Logger receives one structured line per pipeline stage at
	// slog.LevelInfo. A nil Logger disables this entirely.
	Logger *slog.Logger
}

func (o Options) logStage(stage string, in, out int) {
	if o.Logger == nil {
		return
	}
	o.Logger.Info("stage", "stage", stage, "in_bytes", in, "out_bytes", out)
}

// Compress runs the full pipeline: optional differential transform, RLE,
// then adaptive Huffman. It returns the outer frame: [outer settings
// byte][Huffman payload].
func Compress(buf []byte, w uint64, opts Options) ([]byte, error) {
	h, err := heightFor(buf, w)
	if err != nil {
		return nil, err
	}

	src := buf
	if opts.Model {
		src = ApplyDifferential(buf)
	}

	comp, err := NewRLECompressor(src, w, h, opts.Model)
	if err != nil {
		return nil, err
	}
	var rleOut []byte
	if opts.Adaptive {
		rleOut = comp.AdaptiveScanning()
	} else {
		rleOut = comp.SequenceScanning(true)
	}
	opts.logStage("rle", len(buf), len(rleOut))

	coder := NewHuffmanCoder()
	outer := coder.Encode(rleOut)
	opts.logStage("huffman", len(rleOut), len(outer))

	return outer, nil
}

// Decompress reverses Compress: it reads the outer settings byte, runs the
// Huffman decoder (or takes its pass-through payload verbatim), feeds the
// result to the RLE decompressor, and reverses the differential transform
// if the RLE header's model flag is set.
func Decompress(frame []byte, opts Options) ([]byte, uint64, uint64, error) {
	if len(frame) == 0 {
		return nil, 0, 0, ErrShortRLEHeader
	}
	outer := huffOuterSettings(frame[0])
	payload := frame[1:]

	var rleFrame []byte
	if outer.Coded() {
		dec := NewHuffmanDecoder(payload, outer.Padding())
		out, err := dec.Decode()
		if err != nil {
			return nil, 0, 0, err
		}
		rleFrame = out
	} else {
		rleFrame = payload
	}
	opts.logStage("huffman", len(frame), len(rleFrame))

	rd, err := NewRLEDecompressor(rleFrame)
	if err != nil {
		return nil, 0, 0, err
	}
	out, err := rd.Decompress()
	if err != nil {
		return nil, 0, 0, err
	}
	opts.logStage("rle", len(rleFrame), len(out))

	if rd.ModelApplied() {
		out = UndoDifferential(out)
	}
	return out, rd.Width(), rd.Height(), nil
}

// heightFor computes H = len(buf)/w, failing if w doesn't evenly divide the
// buffer length.
func heightFor(buf []byte, w uint64) (uint64, error) {
	if w == 0 || len(buf) == 0 {
		return 0, ErrDimensionMismatch
	}
	n := uint64(len(buf))
	if n%w != 0 {
		return 0, ErrDimensionMismatch
	}
	return n / w, nil
}
