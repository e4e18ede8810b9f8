package codec

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestRLEScenarioRunOfTen(t *testing.T) {
	buf := bytes.Repeat([]byte{0x41}, 10)
	comp, err := NewRLECompressor(buf, 10, 1, false)
	if err != nil {
		t.Fatalf("NewRLECompressor: %v", err)
	}

	got := comp.SequenceScanning(true)
	want := []byte{0x80, 0x0a, 0x01, 0x01, 0x08, 0x41, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestRLEScenarioTwoSingletonsPadded(t *testing.T) {
	buf := []byte{0x00, 0x01}
	comp, err := NewRLECompressor(buf, 2, 1, false)
	if err != nil {
		t.Fatalf("NewRLECompressor: %v", err)
	}

	got := comp.SequenceScanning(true)
	want := []byte{0x80, 0x02, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestRLEVerticalPreferredOnColumns(t *testing.T) {
	buf := make([]byte, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			buf[y*4+x] = byte(x)
		}
	}
	comp, err := NewRLECompressor(buf, 4, 4, false)
	if err != nil {
		t.Fatalf("NewRLECompressor: %v", err)
	}

	horiz := comp.SequenceScanning(true)
	vert := comp.SequenceScanning(false)
	adaptive := comp.AdaptiveScanning()

	if len(vert) >= len(horiz) {
		t.Fatalf("expected vertical (%d bytes) to beat horizontal (%d bytes)", len(vert), len(horiz))
	}
	if !bytes.Equal(adaptive, vert) {
		t.Fatalf("adaptive scanning did not pick the shorter vertical encoding")
	}

	dec, err := NewRLEDecompressor(adaptive)
	if err != nil {
		t.Fatalf("NewRLEDecompressor: %v", err)
	}
	if dec.settings.Horizontal() {
		t.Fatalf("expected adaptive result to select the vertical scan")
	}
}

func TestRLEShortHeaderIsRejected(t *testing.T) {
	// Settings byte claims Kw=8 (bits 5-3 = 111) but the buffer is far
	// shorter than the header it declares.
	buf := []byte{0x80 | (7 << 3), 0x01, 0x02, 0x03}
	if _, err := NewRLEDecompressor(buf); err != ErrShortRLEHeader {
		t.Fatalf("err = %v, want ErrShortRLEHeader", err)
	}
}

func TestRLEEmptyBufferRejected(t *testing.T) {
	if _, err := NewRLEDecompressor(nil); err != ErrShortRLEHeader {
		t.Fatalf("err = %v, want ErrShortRLEHeader", err)
	}
	if _, err := NewRLECompressor(nil, 1, 1, false); err != ErrEmptyBuffer {
		t.Fatalf("err = %v, want ErrEmptyBuffer", err)
	}
}

func TestRLERoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 12345))
	widths := []uint64{1, 3, 7, 16, 23}
	for _, w := range widths {
		for _, h := range []uint64{1, 2, 5, 9} {
			for _, horizontal := range []bool{true, false} {
				buf := make([]byte, w*h)
				for i := range buf {
					buf[i] = byte(rng.IntN(256))
				}

				comp, err := NewRLECompressor(buf, w, h, false)
				if err != nil {
					t.Fatalf("NewRLECompressor: %v", err)
				}
				encoded := comp.SequenceScanning(horizontal)

				dec, err := NewRLEDecompressor(encoded)
				if err != nil {
					t.Fatalf("NewRLEDecompressor: %v", err)
				}
				got, err := dec.Decompress()
				if err != nil {
					t.Fatalf("Decompress (w=%d h=%d horizontal=%v): %v", w, h, horizontal, err)
				}
				if !bytes.Equal(got, buf) {
					t.Fatalf("round trip mismatch (w=%d h=%d horizontal=%v)", w, h, horizontal)
				}
			}
		}
	}
}

func TestRLESizeBound(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 77))
	const w, h = 37, 29
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = byte(rng.IntN(256))
	}

	comp, err := NewRLECompressor(buf, w, h, false)
	if err != nil {
		t.Fatalf("NewRLECompressor: %v", err)
	}
	encoded := comp.SequenceScanning(true)

	n := uint64(w * h)
	bound := n + (n+7)/8 + 1 + 17
	if uint64(len(encoded)) > bound {
		t.Fatalf("encoded size %d exceeds bound %d", len(encoded), bound)
	}
}
