package lzw

import "fmt"

// codeWidth tracks the current code width.
// The encoder and the decoder each own one and must consult it
// with the same code numbers, otherwise the streams desync.
type codeWidth struct {
	bits  uint8
	max   uint8
	limit Code // 1 << bits, the first code that does not fit.
}

func (w *codeWidth) init(maxBits uint8) {
	*w = codeWidth{max: maxBits}
	w.set(MinWidth)
}

func (w *codeWidth) set(bits uint8) {
	w.bits = bits
	w.limit = 1 << bits
}

// increase widens codes by one bit.
// Widening past the max width is a programming error.
func (w *codeWidth) increase() {
	if w.bits >= w.max {
		panic(fmt.Sprintf("lzw: width increase beyond max width %d", w.max))
	}
	w.set(w.bits + 1)
}

// saturated reports whether next can never be assigned.
func (w *codeWidth) saturated(next Code) bool {
	return next >= 1<<w.max
}

// shouldGrow reports whether next does not fit the current width
// but would fit a wider one.
func (w *codeWidth) shouldGrow(next Code) bool {
	return next >= w.limit && !w.saturated(next)
}

// reserve makes room for next before it is assigned.
// It returns false if the code space is exhausted and next must not be assigned.
func (w *codeWidth) reserve(next Code) bool {
	if w.saturated(next) {
		return false
	}
	if w.shouldGrow(next) {
		w.increase()
	}
	return true
}

// fits reports whether c can be written at the current width.
func (w *codeWidth) fits(c Code) bool {
	return c < w.limit
}
