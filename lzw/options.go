package lzw

import "fmt"

// Option configures a Writer or a Reader.
// Both ends of a stream must be configured with the same max width.
type Option func(*options) error

type options struct {
	maxWidth uint8
	trace    bool
}

func (o *options) setDefault() {
	*o = options{
		maxWidth: DefaultMaxWidth,
	}
}

func (o *options) apply(opts []Option) error {
	o.setDefault()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return err
		}
	}
	return nil
}

// WithMaxWidth sets the maximum code width in bits.
// The dictionary stops growing when codes of this width are exhausted,
// which bounds the dictionary to 1<<bits entries.
// The value must be between MinWidth and MaxWidth.
func WithMaxWidth(bits int) Option {
	return func(o *options) error {
		if bits < MinWidth || bits > MaxWidth {
			return fmt.Errorf("lzw: max width (%d) must be between %d and %d", bits, MinWidth, MaxWidth)
		}
		o.maxWidth = uint8(bits)
		return nil
	}
}

// WithWidthTrace will record the width of every code written or read,
// including the EOF code. The trace is available through Widths.
func WithWidthTrace(b bool) Option {
	return func(o *options) error { o.trace = b; return nil }
}
