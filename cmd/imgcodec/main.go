package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocodec/imgcodec/pkg/imgcodec"
)

func main() {
	var (
		compress   = flag.Bool("c", false, "compress the input file")
		decompress = flag.Bool("d", false, "decompress the input file")
		inputPath  = flag.String("i", "", "input file path")
		outputPath = flag.String("o", "", "output file path")
		width      = flag.Uint("w", 0, "image width in pixels (required with -c)")
		model      = flag.Bool("m", false, "apply the differential model before compressing")
		adaptive   = flag.Bool("a", false, "pick the shorter of horizontal/vertical RLE scans")
		zstdWrap   = flag.Bool("z", false, "wrap/unwrap the output in a zstd container envelope")
		verbose    = flag.Bool("v", false, "enable verbose structured logging")
		batchDir   = flag.String("batch", "", "process every file in this directory instead of a single -i/-o pair")
		help       = flag.Bool("h", false, "show this help message")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: imgcodec (-c|-d) -i <path> -o <path> [-w n] [-m] [-a] [-z] [-v]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *compress == *decompress {
		logger.Error("exactly one of -c or -d is required")
		os.Exit(1)
	}

	codec := imgcodec.New(imgcodec.Options{
		Model:    *model,
		Adaptive: *adaptive,
		Zstd:     *zstdWrap,
		Logger:   logger,
	})

	if *batchDir != "" {
		if err := runBatch(context.Background(), codec, *batchDir, *compress, uint64(*width), logger); err != nil {
			logger.Error("batch run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if *inputPath == "" || *outputPath == "" {
		logger.Error("-i and -o are required")
		os.Exit(1)
	}

	if *compress {
		if *width == 0 {
			logger.Error("-w is required and must be >= 1 with -c")
			os.Exit(1)
		}
		if err := runCompress(codec, *inputPath, *outputPath, uint64(*width)); err != nil {
			logger.Error("compress failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := runDecompress(codec, *inputPath, *outputPath); err != nil {
		logger.Error("decompress failed", "err", err)
		os.Exit(1)
	}
}

func runCompress(codec *imgcodec.Codec, in, out string, w uint64) error {
	buf, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	enveloped, _, err := codec.Compress(buf, w)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if err := os.WriteFile(out, enveloped, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runDecompress(codec *imgcodec.Codec, in, out string) error {
	envelope, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	buf, _, _, _, err := codec.Decompress(envelope)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if err := os.WriteFile(out, buf, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

const batchWorkerCount = 4

// runBatch walks dir and runs compress or decompress on every regular file
// it contains, using a bounded worker pool and a shared width for every
// file in compress mode. It stops scheduling new work once ctx is
// cancelled, but lets in-flight files finish.
func runBatch(ctx context.Context, codec *imgcodec.Codec, dir string, compress bool, w uint64, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read batch dir: %w", err)
	}

	paths := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []string

	worker := func() {
		defer wg.Done()
		for path := range paths {
			select {
			case <-ctx.Done():
				return
			default:
			}
			var stats imgcodec.Stats
			var err error
			outPath := path + batchSuffix(compress)
			if compress {
				var buf []byte
				buf, err = os.ReadFile(path)
				if err == nil {
					var enveloped []byte
					enveloped, stats, err = codec.Compress(buf, w)
					if err == nil {
						err = os.WriteFile(outPath, enveloped, 0o644)
					}
				}
			} else {
				var envelope []byte
				envelope, err = os.ReadFile(path)
				if err == nil {
					var buf []byte
					buf, _, _, stats, err = codec.Decompress(envelope)
					if err == nil {
						err = os.WriteFile(outPath, buf, 0o644)
					}
				}
			}
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", path, err))
				mu.Unlock()
				continue
			}
			logger.Info("batch file done", "path", path, "in_bytes", stats.InputBytes, "out_bytes", stats.OutputBytes)
		}
	}

	for i := 0; i < batchWorkerCount; i++ {
		wg.Add(1)
		go worker()
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		select {
		case paths <- filepath.Join(dir, e.Name()):
		case <-ctx.Done():
		}
	}
	close(paths)
	wg.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) failed: %v", len(failures), failures)
	}
	return nil
}

func batchSuffix(compress bool) string {
	if compress {
		return ".imgc"
	}
	return ".raw"
}
