// Command fsstbench is a reference driver for the fsst package: it trains
// a symbol table from an input file, round-trips the file through
// Encode/Decode, and reports throughput and compression ratio for each
// phase. It exists to exercise the library end to end, not as a
// production compression tool.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/fsst-go/fsst"
)

// mismatchPreviewLen bounds how much of each buffer a round-trip mismatch
// error prints, so a multi-megabyte input doesn't flood the terminal.
const mismatchPreviewLen = 64

func main() {
	app := &cli.App{
		Name:  "fsstbench",
		Usage: "train, round-trip, and benchmark FSST symbol tables over a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "path to the input file to train and compress",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "if set, the decompressed round-trip output is written here",
			},
			&cli.BoolFlag{
				Name:  "decode",
				Usage: "verify the round trip by decoding the compressed output and diffing against the input",
				Value: true,
			},
			&cli.IntFlag{
				Name:  "sample-limit",
				Usage: "override the sampler's target sample size in bytes, for experimentation",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug-level logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("fsstbench failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	inputPath := c.String("input")
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "reading input file %q", inputPath)
	}
	logger.Info("loaded input", "path", inputPath, "bytes", len(data))

	lines := splitLines(data)

	var trainOpts []fsst.TrainOption
	if limit := c.Int("sample-limit"); limit > 0 {
		trainOpts = append(trainOpts, fsst.WithSampleLimit(limit))
		logger.Debug("overriding sampler target", "bytes", limit)
	}

	start := time.Now()
	table := fsst.Train(lines, trainOpts...)
	buildElapsed := time.Since(start)
	logger.Info("trained symbol table",
		"lines", len(lines),
		"elapsed", buildElapsed,
		"throughput_mb_s", throughputMBs(len(data), buildElapsed),
	)

	start = time.Now()
	encoded := table.Encode(data)
	encodeElapsed := time.Since(start)
	ratio := float64(len(data)) / float64(max(len(encoded), 1))
	logger.Info("compressed input",
		"input_bytes", len(data),
		"output_bytes", len(encoded),
		"ratio", fmt.Sprintf("%.2fx", ratio),
		"elapsed", encodeElapsed,
		"throughput_mb_s", throughputMBs(len(data), encodeElapsed),
	)

	if !c.Bool("decode") {
		return nil
	}

	start = time.Now()
	decoded, err := table.Decode(encoded)
	decodeElapsed := time.Since(start)
	if err != nil {
		return errors.Wrap(err, "decoding round-trip output")
	}
	logger.Info("decompressed output",
		"bytes", len(decoded),
		"elapsed", decodeElapsed,
		"throughput_mb_s", throughputMBs(len(decoded), decodeElapsed),
	)

	if !bytesEqual(data, decoded) {
		return errors.Errorf("round trip mismatch: decoded output diverges from input (first %d bytes of each: %q vs %q)",
			mismatchPreviewLen, sample(data, mismatchPreviewLen), sample(decoded, mismatchPreviewLen))
	}
	logger.Info("round trip verified: decode(encode(input)) == input")

	if out := c.String("output"); out != "" {
		if err := os.WriteFile(out, decoded, 0o644); err != nil {
			return errors.Wrapf(err, "writing output file %q", out)
		}
		logger.Info("wrote round-trip output", "path", out)
	}

	return nil
}

// splitLines breaks data on newlines for use as FSST training input, the
// same granularity fsstbench reports on. A file with no trailing newline
// still yields its last line.
func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, data[start:i])
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

func throughputMBs(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return (float64(n) / (1024 * 1024)) / d.Seconds()
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sample(b []byte, limit int) []byte {
	if len(b) > limit {
		return b[:limit]
	}
	return b
}
