package lzw

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/textlzw/bitstream"
)

// Reader decompresses a stream produced by Writer.
// The dictionary is rebuilt from the codes as they are read.
type Reader struct {
	o       options
	br      *bitstream.Reader
	dict    *Dictionary
	width   codeWidth
	prev    Code
	started bool
	eof     bool
	err     error
	out     []byte
	off     int
	widths  []uint8
}

// NewReader returns a Reader decompressing from r.
// The Reader may buffer input beyond the EOF code.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	d := &Reader{}
	if err := d.o.apply(opts); err != nil {
		return nil, err
	}
	d.dict = NewDictionary()
	d.Reset(r)
	return d, nil
}

// Reset discards the current state and starts reading a new stream from r.
// Options are retained.
func (d *Reader) Reset(r io.Reader) {
	d.br = bitstream.NewReader(r)
	d.dict.reset(MinWidth)
	d.width.init(d.o.maxWidth)
	d.prev = 0
	d.started = false
	d.eof = false
	d.err = nil
	d.out = d.out[:0]
	d.off = 0
	d.widths = d.widths[:0]
}

// Read decompresses into p.
func (d *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if d.off >= len(d.out) {
		d.out, d.off = d.out[:0], 0
		for len(d.out) < len(p) && !d.eof && d.err == nil {
			d.err = d.step()
		}
		if len(d.out) == 0 {
			if d.err != nil {
				return 0, d.err
			}
			return 0, io.EOF
		}
	}
	n := copy(p, d.out[d.off:])
	d.off += n
	return n, nil
}

// WriteTo writes the remaining decompressed output to w.
func (d *Reader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if d.off < len(d.out) {
		n, err := w.Write(d.out[d.off:])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	d.out, d.off = d.out[:0], 0
	for !d.eof && d.err == nil {
		for len(d.out) < 64<<10 && !d.eof && d.err == nil {
			d.err = d.step()
		}
		n, err := w.Write(d.out)
		total += int64(n)
		d.out = d.out[:0]
		if err != nil {
			return total, err
		}
	}
	return total, d.err
}

// readCode reads one code at the current width.
func (d *Reader) readCode() (Code, error) {
	v, err := d.br.ReadBits(d.width.bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedStream, err)
	}
	if d.o.trace {
		d.widths = append(d.widths, d.width.bits)
	}
	return Code(v), nil
}

// step decodes one code and appends its string to d.out.
func (d *Reader) step() error {
	if !d.started {
		c, err := d.readCode()
		if err != nil {
			return err
		}
		d.started = true
		if c == EOF {
			d.eof = true
			return nil
		}
		if !c.isLiteral() {
			return fmt.Errorf("%w: first code %d is not a literal", ErrMalformedStream, c)
		}
		d.out = append(d.out, byte(c))
		d.prev = c
		return nil
	}

	// The entry for this code is assigned after reading it,
	// but the width must already account for it.
	next := d.dict.Next()
	insert := d.width.reserve(next)
	if insert {
		d.dict.Grow(int(d.width.bits))
	}
	c, err := d.readCode()
	if err != nil {
		return err
	}
	if c == EOF {
		d.eof = true
		return nil
	}

	var unit byte
	switch {
	case d.dict.defined(c):
		unit = d.dict.first(c)
	case c == next && insert:
		// The encoder emitted the entry it assigned right before this code,
		// so it must be prev + prev[0].
		unit = d.dict.first(d.prev)
	default:
		return fmt.Errorf("%w: code %d is not defined, next code is %d", ErrMalformedStream, c, next)
	}
	if insert {
		if _, err := d.dict.add(d.prev, unit); err != nil {
			return err
		}
	}
	d.out = d.dict.appendString(d.out, c)
	d.prev = c
	return nil
}

// Widths returns the width of every code read so far, including EOF.
// It is only populated when WithWidthTrace is enabled.
func (d *Reader) Widths() []uint8 {
	return d.widths
}

// Width returns the current code width.
func (d *Reader) Width() int {
	return int(d.width.bits)
}

// Decompress returns the decompressed form of src.
// Data after the EOF code is ignored.
func Decompress(src []byte, opts ...Option) ([]byte, error) {
	d, err := NewReader(bytes.NewReader(src), opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(src) * 2)
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
