package bitstream

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer writes integers of arbitrary bit width, most significant bit first.
type Writer struct {
	buf  *bufio.Writer
	bw   *bitio.Writer
	bits int64
}

// NewWriter returns a Writer that writes to w.
// Output is buffered until Close is called.
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	return &Writer{buf: buf, bw: bitio.NewWriter(buf)}
}

// WriteBits writes the n lowest bits of v.
// n must be <= 64.
func (w *Writer) WriteBits(v uint64, n uint8) error {
	if n > 64 {
		return errors.Errorf("bitstream: cannot write %d bits", n)
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	if err := w.bw.WriteBits(v, n); err != nil {
		return errors.WithStack(err)
	}
	w.bits += int64(n)
	return nil
}

// WriteUnit writes one 8 bit code unit.
func (w *Writer) WriteUnit(b byte) error {
	return w.WriteBits(uint64(b), 8)
}

// Bits returns the number of bits written so far, excluding padding.
func (w *Writer) Bits() int64 {
	return w.bits
}

// Close pads the final byte with zero bits and flushes all buffered output.
// The underlying writer is not closed.
func (w *Writer) Close() error {
	if err := w.bw.Close(); err != nil {
		return errors.Wrap(err, "bitstream: padding final byte")
	}
	return errors.Wrap(w.buf.Flush(), "bitstream: flush")
}
