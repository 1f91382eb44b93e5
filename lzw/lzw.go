// Package lzw implements an adaptive LZW text compressor with growing code widths.
//
// The stream is a sequence of codes written most significant bit first.
// Codes 0-255 are literal bytes, 256 terminates the stream and dictionary
// codes start at 257. Codes are 9 bits wide at the start of a stream and
// grow by one bit each time the dictionary outgrows the current width,
// up to a configurable maximum. Once the maximum width is exhausted the
// dictionary is frozen and encoding continues against the existing entries.
//
// There is no header. Compressor and decompressor must be configured with
// the same maximum width.
package lzw

import (
	"errors"
)

// Code is a literal byte, the EOF sentinel or a dictionary code.
type Code uint32

const (
	// EOF terminates a stream.
	EOF Code = 256

	// Start is the first code assigned to a dictionary entry.
	Start Code = 257

	// MinWidth is the code width at the start of every stream.
	MinWidth = 9

	// MaxWidth is the largest supported code width.
	MaxWidth = 24

	// DefaultMaxWidth is the maximum code width used if none is specified.
	DefaultMaxWidth = 16

	literals = 256
)

var (
	// ErrMalformedStream is returned when the compressed input is truncated
	// or contains a code that cannot be valid at its position.
	ErrMalformedStream = errors.New("lzw: malformed stream")

	// ErrDictionaryOverflow is returned when an entry would be assigned a code
	// outside the range of the current code width.
	ErrDictionaryOverflow = errors.New("lzw: dictionary overflow")

	// ErrUnknownPrefix is returned when inserting a string whose prefix is not in the dictionary.
	ErrUnknownPrefix = errors.New("lzw: prefix not in dictionary")

	// ErrDuplicateEntry is returned when inserting a string that is already in the dictionary.
	ErrDuplicateEntry = errors.New("lzw: entry already in dictionary")

	// ErrWriterClosed is returned when writing to a closed Writer.
	ErrWriterClosed = errors.New("lzw: writer closed")
)

// isLiteral reports whether c is a single byte code.
func (c Code) isLiteral() bool {
	return c < literals
}
