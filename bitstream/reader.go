package bitstream

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// byteCounter counts the bytes the bit reader pulls from the source,
// so the number of cached bits can be derived.
type byteCounter struct {
	r *bufio.Reader
	n int64
}

func (c *byteCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *byteCounter) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// Reader reads integers of arbitrary bit width, most significant bit first.
type Reader struct {
	src  *byteCounter
	br   *bitio.Reader
	bits int64
}

// NewReader returns a Reader reading from r.
// The Reader may read ahead from r.
func NewReader(r io.Reader) *Reader {
	src := &byteCounter{r: bufio.NewReader(r)}
	return &Reader{src: src, br: bitio.NewReader(src)}
}

// ReadBits reads n bits and returns them as the low bits of an integer.
// If the input ends before n bits could be read, an error wrapping
// io.ErrUnexpectedEOF is returned. A short read leaves the reader unusable.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	if n > 64 {
		return 0, errors.Errorf("bitstream: cannot read %d bits", n)
	}
	v, err := r.br.ReadBits(n)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, errors.Wrapf(io.ErrUnexpectedEOF, "bitstream: reading %d bits at offset %d", n, r.bits)
		}
		return 0, errors.WithStack(err)
	}
	r.bits += int64(n)
	return v, nil
}

// ReadUnit reads one 8 bit code unit.
func (r *Reader) ReadUnit() (byte, error) {
	v, err := r.ReadBits(8)
	return byte(v), err
}

// HasMore reports whether at least one more bit can be read.
// Padding bits at the end of the stream count as data.
func (r *Reader) HasMore() bool {
	if r.src.n*8 > r.bits {
		return true
	}
	_, err := r.src.r.Peek(1)
	return err == nil
}

// Bits returns the number of bits consumed so far.
func (r *Reader) Bits() int64 {
	return r.bits
}
