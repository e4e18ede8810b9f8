// Package imgcodec is the public façade over the codec's core engines: a
// small nil-guarded wrapper type exposing Compress/Decompress plus
// statistics, the way a library consumer would use this module rather than
// driving internal/codec directly.
package imgcodec

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gocodec/imgcodec/internal/codec"
	"github.com/gocodec/imgcodec/internal/container"
)

// ErrNilCodec is returned by every method on a nil *Codec receiver.
var ErrNilCodec = errors.New("imgcodec: nil codec")

// Options configures a Codec.
type Options struct {
	// Model applies the differential preprocess before RLE scanning.
	Model bool
	// Adaptive picks the shorter of the horizontal/vertical RLE scans.
	Adaptive bool
	// Zstd wraps the codec output in a zstd archival envelope.
	Zstd bool
	// Logger receives structured per-stage size logging. A nil Logger is
	// silent (the default).
	Logger *slog.Logger
}

// Codec is the façade over one compress/decompress configuration.
type Codec struct {
	opts Options
}

// New constructs a Codec bound to opts.
func New(opts Options) *Codec {
	return &Codec{opts: opts}
}

// Stats reports the byte sizes observed by the most recent Compress or
// Decompress call.
type Stats struct {
	InputBytes  int
	OutputBytes int
}

// Compress runs the full pipeline (differential, RLE, Huffman, optional
// zstd envelope) over buf, a raw W-wide image.
func (c *Codec) Compress(buf []byte, w uint64) ([]byte, Stats, error) {
	if c == nil {
		return nil, Stats{}, ErrNilCodec
	}

	outer, err := codec.Compress(buf, w, codec.Options{
		Model:    c.opts.Model,
		Adaptive: c.opts.Adaptive,
		Logger:   c.opts.Logger,
	})
	if err != nil {
		return nil, Stats{}, fmt.Errorf("imgcodec: compress: %w", err)
	}

	envelope, err := container.Wrap(outer, c.opts.Zstd)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("imgcodec: envelope: %w", err)
	}

	if c.opts.Logger != nil {
		c.opts.Logger.Info("stage", "stage", "envelope", "in_bytes", len(outer), "out_bytes", len(envelope))
	}

	return envelope, Stats{InputBytes: len(buf), OutputBytes: len(envelope)}, nil
}

// Decompress reverses Compress, returning the reconstructed buffer and its
// declared width/height.
func (c *Codec) Decompress(envelope []byte) (buf []byte, w, h uint64, stats Stats, err error) {
	if c == nil {
		return nil, 0, 0, Stats{}, ErrNilCodec
	}

	outer, err := container.Unwrap(envelope)
	if err != nil {
		return nil, 0, 0, Stats{}, fmt.Errorf("imgcodec: envelope: %w", err)
	}

	buf, w, h, err = codec.Decompress(outer, codec.Options{Logger: c.opts.Logger})
	if err != nil {
		return nil, 0, 0, Stats{}, fmt.Errorf("imgcodec: decompress: %w", err)
	}

	return buf, w, h, Stats{InputBytes: len(envelope), OutputBytes: len(buf)}, nil
}
