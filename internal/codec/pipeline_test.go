package codec

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestPipelineRoundTripAllCombinations(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	const w, h = 19, 13
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = byte(rng.IntN(256))
	}

	for _, model := range []bool{false, true} {
		for _, adaptive := range []bool{false, true} {
			outer, err := Compress(buf, w, Options{Model: model, Adaptive: adaptive})
			if err != nil {
				t.Fatalf("model=%v adaptive=%v: Compress: %v", model, adaptive, err)
			}
			got, gotW, gotH, err := Decompress(outer, Options{})
			if err != nil {
				t.Fatalf("model=%v adaptive=%v: Decompress: %v", model, adaptive, err)
			}
			if gotW != w || gotH != h {
				t.Fatalf("model=%v adaptive=%v: dims = %dx%d, want %dx%d", model, adaptive, gotW, gotH, w, h)
			}
			if !bytes.Equal(got, buf) {
				t.Fatalf("model=%v adaptive=%v: round trip mismatch", model, adaptive)
			}
		}
	}
}

func TestPipelineDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(55, 56))
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(rng.IntN(256))
	}

	a, err := Compress(buf, 8, Options{Model: true, Adaptive: true})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	b, err := Compress(buf, 8, Options{Model: true, Adaptive: true})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("compress is not deterministic")
	}
}

func TestPipelineRejectsMismatchedWidth(t *testing.T) {
	if _, err := Compress([]byte{1, 2, 3}, 2, Options{}); err != ErrDimensionMismatch {
		t.Fatalf("err = %v, want ErrDimensionMismatch", err)
	}
}
