package lzw

import "testing"

func TestCodeWidth(t *testing.T) {
	var w codeWidth
	w.init(10)
	if w.bits != MinWidth || w.limit != 1<<MinWidth {
		t.Fatalf("init: bits %d, limit %d", w.bits, w.limit)
	}
	if w.shouldGrow(511) {
		t.Error("511 fits 9 bits")
	}
	if !w.shouldGrow(512) {
		t.Error("512 does not fit 9 bits")
	}
	if !w.fits(EOF) {
		t.Error("EOF must fit the minimum width")
	}
	if !w.reserve(511) || w.bits != 9 {
		t.Fatalf("reserve 511: bits %d", w.bits)
	}
	if !w.reserve(512) || w.bits != 10 {
		t.Fatalf("reserve 512: bits %d", w.bits)
	}
	if !w.reserve(1023) || w.bits != 10 {
		t.Fatalf("reserve 1023: bits %d", w.bits)
	}
	if w.reserve(1024) {
		t.Fatal("1024 reserved beyond max width")
	}
	if w.bits != 10 {
		t.Fatalf("width changed on saturation: %d", w.bits)
	}
	if w.shouldGrow(1024) {
		t.Error("saturated width should not grow")
	}
}

func TestCodeWidthIncreasePanics(t *testing.T) {
	var w codeWidth
	w.init(MinWidth)
	defer func() {
		if recover() == nil {
			t.Fatal("increase beyond max width did not panic")
		}
	}()
	w.increase()
}
