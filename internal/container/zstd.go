// Package container implements the optional archival envelope that wraps a
// finished codec stream in a zstd frame for on-disk storage. It sits
// strictly outside the codec's own framing: the codec never knows this
// package exists.
package container

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

const (
	markerBare = 0x00
	markerZstd = 0x01
)

// ErrEmptyEnvelope is returned when Unwrap is given a zero-length buffer.
var ErrEmptyEnvelope = errors.New("imgcodec: empty container envelope")

// ErrUnknownMarker is returned when the envelope's leading byte is neither
// the bare nor the zstd marker.
var ErrUnknownMarker = errors.New("imgcodec: unknown container envelope marker")

// Wrap frames payload with a 1-byte marker. When zstdCompress is true the
// payload is compressed with zstd's default level; otherwise the marker
// alone signals a bare pass-through.
func Wrap(payload []byte, zstdCompress bool) ([]byte, error) {
	if !zstdCompress {
		out := make([]byte, 0, len(payload)+1)
		out = append(out, markerBare)
		out = append(out, payload...)
		return out, nil
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("imgcodec: construct zstd writer: %w", err)
	}
	defer enc.Close()

	var buf bytes.Buffer
	buf.WriteByte(markerZstd)
	enc.Reset(&buf)
	if _, err := enc.Write(payload); err != nil {
		return nil, fmt.Errorf("imgcodec: zstd compress: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("imgcodec: zstd close: %w", err)
	}
	return buf.Bytes(), nil
}

// Unwrap reverses Wrap, inspecting the leading marker byte to decide
// whether to run the rest of the buffer through a zstd decoder.
func Unwrap(envelope []byte) ([]byte, error) {
	if len(envelope) == 0 {
		return nil, ErrEmptyEnvelope
	}
	marker, body := envelope[0], envelope[1:]
	switch marker {
	case markerBare:
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	case markerZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("imgcodec: construct zstd reader: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("imgcodec: zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, ErrUnknownMarker
	}
}
