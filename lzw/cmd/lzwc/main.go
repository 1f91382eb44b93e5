package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/klauspost/textlzw/internal/tracechart"
	"github.com/klauspost/textlzw/lzw"
)

var (
	version = "(dev)"
	date    = "(unknown)"
)

var errInvalidMode = errors.New("mode must be - (compress) or + (expand)")

type config struct {
	maxWidth int
	quiet    bool
	verbose  bool
	verify   bool
	trace    string
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errInvalidMode), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		exitErr(err)
	}
}

func exitErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "\nERROR:", err.Error())
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "lzw text compressor v%v, built at %v.\n\n", version, date)
		_, _ = fmt.Fprintln(out, `Usage: lzwc [options] -|+

Reads from stdin and writes to stdout.
Use - to compress and + to expand.
Both directions must use the same -maxwidth.
Nothing is written to stdout unless the whole input was processed.

Options:`)
		fs.PrintDefaults()
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lzwc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	var cfg config
	fs.IntVar(&cfg.maxWidth, "maxwidth", lzw.DefaultMaxWidth, fmt.Sprintf("Maximum code width in bits (%d-%d)", lzw.MinWidth, lzw.MaxWidth))
	fs.BoolVar(&cfg.quiet, "q", false, "Don't log anything, except errors")
	fs.BoolVar(&cfg.verbose, "v", false, "Log debug details")
	fs.BoolVar(&cfg.verify, "verify", false, "Expand the compressed output and compare it to the input")
	fs.StringVar(&cfg.trace, "trace", "", "Write an SVG chart of the code widths to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errInvalidMode
	}
	mode := fs.Arg(0)
	if mode != "-" && mode != "+" {
		fs.Usage()
		return fmt.Errorf("%w, got %q", errInvalidMode, mode)
	}
	if cfg.maxWidth < lzw.MinWidth || cfg.maxWidth > lzw.MaxWidth {
		return fmt.Errorf("maxwidth must be between %d and %d, got %d", lzw.MinWidth, lzw.MaxWidth, cfg.maxWidth)
	}

	logger := newLogger(stderr, cfg)
	opts := []lzw.Option{lzw.WithMaxWidth(cfg.maxWidth), lzw.WithWidthTrace(cfg.trace != "")}

	var (
		res *result
		err error
	)
	start := time.Now()
	if mode == "-" {
		res, err = compress(stdin, opts, cfg.verify)
	} else {
		res, err = expand(stdin, opts)
	}
	if err != nil {
		return err
	}
	logger.Debug("processed", "mode", mode, "width", res.width, "elapsed", time.Since(start))
	if mode == "-" {
		logger.Debug("input", "bytes", res.in, "estimate", fmt.Sprintf("%.3f", res.estimate))
	}

	if cfg.trace != "" {
		if err := writeTrace(cfg.trace, res.widths); err != nil {
			return err
		}
		logger.Debug("wrote width trace", "file", cfg.trace)
	}
	if _, err := stdout.Write(res.out); err != nil {
		return err
	}
	logger.Info("done",
		"in", res.in,
		"out", len(res.out),
		"ratio", fmt.Sprintf("%.2f%%", ratio(len(res.out), res.in)),
		"width", res.width,
	)
	return nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case cfg.quiet:
		level = slog.LevelError
	case cfg.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type result struct {
	in       int
	out      []byte
	estimate float64
	width    int
	widths   []uint8
}

func compress(r io.Reader, opts []lzw.Option, verify bool) (*result, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	var buf bytes.Buffer
	w, err := lzw.NewWriter(&buf, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(in); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	if verify {
		got, err := lzw.Decompress(buf.Bytes(), opts...)
		if err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		if !bytes.Equal(got, in) {
			return nil, errors.New("verify: expanded output does not match input")
		}
	}
	return &result{
		in:       len(in),
		out:      buf.Bytes(),
		estimate: lzw.Estimate(in),
		width:    w.Width(),
		widths:   w.Widths(),
	}, nil
}

func expand(r io.Reader, opts []lzw.Option) (*result, error) {
	cr := &rCounter{in: r}
	d, err := lzw.NewReader(cr, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return &result{in: int(cr.n), out: buf.Bytes(), width: d.Width(), widths: d.Widths()}, nil
}

func writeTrace(path string, widths []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tracechart.Render(f, path, widths); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

func ratio(out, in int) float64 {
	if in == 0 {
		return 0
	}
	return 100 * float64(out) / float64(in)
}

type rCounter struct {
	n  int64
	in io.Reader
}

func (w *rCounter) Read(p []byte) (n int, err error) {
	n, err = w.in.Read(p)
	w.n += int64(n)
	return n, err
}
