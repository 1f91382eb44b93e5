package lzw

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/textlzw/bitstream"
)

// Writer compresses everything written to it.
// Close must be called to terminate the stream.
type Writer struct {
	o      options
	bw     *bitstream.Writer
	dict   *Dictionary
	width  codeWidth
	prefix Code
	// buffered is set when prefix holds at least one unit.
	buffered bool
	closed   bool
	err      error
	widths   []uint8
	codes    int64
}

// NewWriter returns a Writer that compresses to w.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	e := &Writer{}
	if err := e.o.apply(opts); err != nil {
		return nil, err
	}
	e.dict = NewDictionary()
	e.Reset(w)
	return e, nil
}

// Reset discards the current state and starts a new stream to w.
// Options are retained.
func (e *Writer) Reset(w io.Writer) {
	e.bw = bitstream.NewWriter(w)
	e.dict.reset(MinWidth)
	e.width.init(e.o.maxWidth)
	e.prefix = 0
	e.buffered = false
	e.closed = false
	e.err = nil
	e.widths = e.widths[:0]
	e.codes = 0
}

// Write compresses p.
// Output is buffered and may not be written until Close.
func (e *Writer) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrWriterClosed
	}
	if e.err != nil {
		return 0, e.err
	}
	i := 0
	if !e.buffered && len(p) > 0 {
		e.prefix = Code(p[0])
		e.buffered = true
		i = 1
	}
	for ; i < len(p); i++ {
		b := p[i]
		if c, ok := e.dict.child(e.prefix, b); ok {
			e.prefix = c
			continue
		}
		if err := e.emit(e.prefix); err != nil {
			e.err = err
			return i, err
		}
		if err := e.assign(e.prefix, b); err != nil {
			e.err = err
			return i, err
		}
		e.prefix = Code(b)
	}
	return len(p), nil
}

// ReadFrom compresses everything from r until io.EOF.
// Close must still be called afterwards.
func (e *Writer) ReadFrom(r io.Reader) (n int64, err error) {
	buf := make([]byte, 32<<10)
	for {
		m, rerr := r.Read(buf)
		if m > 0 {
			if _, err := e.Write(buf[:m]); err != nil {
				return n, err
			}
			n += int64(m)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return n, nil
			}
			return n, rerr
		}
	}
}

// Close writes the pending prefix and the EOF code and flushes the output.
// The underlying writer is not closed.
func (e *Writer) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}
	if e.buffered {
		if err := e.emit(e.prefix); err != nil {
			e.err = err
			return err
		}
		e.buffered = false
	}
	// The decoder reads EOF at the width it would use for the next entry.
	e.width.reserve(e.dict.Next())
	if err := e.emit(EOF); err != nil {
		e.err = err
		return err
	}
	e.err = e.bw.Close()
	return e.err
}

// emit writes c at the current width.
func (e *Writer) emit(c Code) error {
	if !e.width.fits(c) {
		return fmt.Errorf("%w: code %d written at width %d", ErrDictionaryOverflow, c, e.width.bits)
	}
	if err := e.bw.WriteBits(uint64(c), e.width.bits); err != nil {
		return err
	}
	e.codes++
	if e.o.trace {
		e.widths = append(e.widths, e.width.bits)
	}
	return nil
}

// assign adds parent+unit under the next code, unless the code space is exhausted.
func (e *Writer) assign(parent Code, unit byte) error {
	if !e.width.reserve(e.dict.Next()) {
		return nil
	}
	e.dict.Grow(int(e.width.bits))
	_, err := e.dict.add(parent, unit)
	return err
}

// Widths returns the width of every code written so far.
// It is only populated when WithWidthTrace is enabled.
func (e *Writer) Widths() []uint8 {
	return e.widths
}

// Width returns the current code width.
func (e *Writer) Width() int {
	return int(e.width.bits)
}

// Codes returns the number of codes written, including EOF once closed.
func (e *Writer) Codes() int64 {
	return e.codes
}

// Entries returns the number of dictionary entries learned so far.
func (e *Writer) Entries() int {
	return e.dict.Len()
}

// Compress returns the compressed form of src.
func Compress(src []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src)/2 + 4)
	e, err := NewWriter(&buf, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := e.Write(src); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
