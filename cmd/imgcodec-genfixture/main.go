// Command imgcodec-genfixture produces small synthetic raw grayscale
// buffers for manual smoke-testing the CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
)

func main() {
	var (
		pattern = flag.String("pattern", "ramp", "fixture pattern: ramp, checkerboard, flat, bars, noise")
		width   = flag.Uint("w", 16, "fixture width in pixels")
		height  = flag.Uint("h", 16, "fixture height in pixels")
		value   = flag.Uint("value", 0x7f, "fill value for the flat pattern")
		seed    = flag.Uint64("seed", 1, "seed for the noise pattern (deterministic)")
		output  = flag.String("o", "", "output file path (required)")
	)
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "usage: imgcodec-genfixture -pattern <name> -w <n> -h <n> -o <path>")
		os.Exit(1)
	}

	buf, err := generate(*pattern, int(*width), int(*height), byte(*value), *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imgcodec-genfixture: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, buf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "imgcodec-genfixture: write output: %v\n", err)
		os.Exit(1)
	}
}

func generate(pattern string, w, h int, flatValue byte, seed uint64) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("width and height must be >= 1")
	}
	buf := make([]byte, w*h)

	switch pattern {
	case "ramp":
		for i := range buf {
			buf[i] = byte(i % 256)
		}
	case "checkerboard":
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if (x+y)%2 == 0 {
					buf[y*w+x] = 0xff
				}
			}
		}
	case "flat":
		for i := range buf {
			buf[i] = flatValue
		}
	case "bars":
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf[y*w+x] = byte(x % 256)
			}
		}
	case "noise":
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		for i := range buf {
			buf[i] = byte(rng.IntN(256))
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}

	return buf, nil
}
