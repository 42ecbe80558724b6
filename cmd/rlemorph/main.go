// Command rlemorph applies run-length morphology to an image file.
//
// Usage:
//
//	rlemorph [flags] /path/to/image
//
// The image is thresholded to black and white, transformed, and written to
// -out. With -compare the same operation is timed on a plain pixel grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rlemorph"
	"github.com/gogpu/rlemorph/internal/imageio"
	"github.com/gogpu/rlemorph/internal/reference"
)

type config struct {
	input     string
	output    string
	op        string
	hx, hy    int
	threshold int
	boundary  rlemorph.Boundary
	workers   int
	direct    bool
	compare   bool
}

func main() {
	var (
		op        = flag.String("op", "dilate", "operation: dilate, erode, flip, open, close, hollow")
		hx        = flag.Int("hx", 5, "kernel half width")
		hy        = flag.Int("hy", 5, "kernel half height")
		k         = flag.Int("k", -1, "square kernel half size, overrides -hx and -hy when >= 0")
		threshold = flag.Int("threshold", 127, "gray level above which a pixel is foreground (0-255)")
		boundary  = flag.String("boundary", "truncate", "outside pixels: truncate, background, foreground")
		workers   = flag.Int("workers", 1, "worker goroutines, 0 uses GOMAXPROCS")
		direct    = flag.Bool("direct", false, "erode by direct intersection instead of duality")
		output    = flag.String("out", "rle_operation.png", "output file (.png, .bmp, .tif, .jpg)")
		compare   = flag.Bool("compare", false, "also run and time the pixel-grid implementation")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] /path/to/image\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	rlemorph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	b, err := rlemorph.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config{
		input:     flag.Arg(0),
		output:    *output,
		op:        *op,
		hx:        *hx,
		hy:        *hy,
		threshold: *threshold,
		boundary:  b,
		workers:   *workers,
		direct:    *direct,
		compare:   *compare,
	}
	if *k >= 0 {
		sq := rlemorph.Square(*k)
		cfg.hx, cfg.hy = sq.HalfWidth, sq.HalfHeight
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("rlemorph: %v", err)
	}
}

func run(cfg config, stdout io.Writer) error {
	if cfg.threshold < 0 || cfg.threshold > 255 {
		return fmt.Errorf("threshold %d outside 0-255", cfg.threshold)
	}
	apply, err := lookupOp(cfg.op)
	if err != nil {
		return err
	}

	src, format, err := imageio.Load(cfg.input)
	if err != nil {
		return err
	}
	bm := rlemorph.NewBitmapFromImage(src, uint8(cfg.threshold)) //nolint:gosec // range checked above
	rlemorph.Logger().Info("loaded image",
		"path", cfg.input, "format", format,
		"width", bm.Width(), "height", bm.Height(), "foreground", bm.Count())

	opts := []rlemorph.Option{rlemorph.WithBoundary(cfg.boundary)}
	if cfg.direct {
		opts = append(opts, rlemorph.WithDirectErosion())
	}
	if cfg.workers != 1 {
		pool := rlemorph.NewPool(cfg.workers)
		defer pool.Close()
		opts = append(opts, rlemorph.WithPool(pool))
	}

	p := message.NewPrinter(language.English)

	start := time.Now()
	img := rlemorph.Encode(bm)
	encoded := time.Since(start)

	start = time.Now()
	out, err := apply(img, cfg.hx, cfg.hy, opts...)
	if err != nil {
		return err
	}
	result := out.Bitmap()
	elapsed := time.Since(start)

	_, _ = p.Fprintf(stdout, "runs: %d in, %d out\n", img.NumRuns(), out.NumRuns())
	_, _ = p.Fprintf(stdout, "Time took to encode: %d us\n", encoded.Microseconds())
	_, _ = p.Fprintf(stdout, "Time took to %s with rle and decode: %d us\n", cfg.op, elapsed.Microseconds())

	if cfg.compare {
		grid := &reference.Grid{W: bm.Width(), H: bm.Height(), Pix: append([]uint8(nil), bm.Data()...)}
		start = time.Now()
		want := referenceOp(cfg.op, grid, cfg.hx, cfg.hy, outside(cfg.boundary))
		_, _ = p.Fprintf(stdout, "Time took to %s with pixel grid: %d us\n", cfg.op, time.Since(start).Microseconds())

		got := &reference.Grid{W: result.Width(), H: result.Height(), Pix: result.Data()}
		if !got.Equal(want) {
			rlemorph.Logger().Warn("rle and pixel grid results differ", "op", cfg.op)
		}
	}

	if err := imageio.Save(cfg.output, result.Gray(255)); err != nil {
		return err
	}
	rlemorph.Logger().Info("saved image", "path", cfg.output)
	return nil
}
