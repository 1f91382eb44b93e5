package lzw

import (
	"bytes"
	"errors"
	"testing"
)

func TestDictionaryLiterals(t *testing.T) {
	d := NewDictionary()
	for i := 0; i < literals; i++ {
		c, ok := d.Lookup([]byte{byte(i)})
		if !ok || c != Code(i) {
			t.Fatalf("literal %d: got %d, %v", i, c, ok)
		}
	}
	if d.Next() != Start {
		t.Fatalf("next code: got %d, want %d", d.Next(), Start)
	}
	if d.Len() != 0 {
		t.Fatalf("len: got %d, want 0", d.Len())
	}
	if _, ok := d.Lookup(nil); ok {
		t.Fatal("empty string found")
	}
	if _, ok := d.Entry(EOF); ok {
		t.Fatal("EOF has a string")
	}
}

func TestDictionaryInsertLookup(t *testing.T) {
	d := NewDictionary()
	words := []string{"ab", "abr", "abra", "br", "bra", "ra"}
	for i, w := range words {
		c, err := d.Insert([]byte(w))
		if err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
		if want := Start + Code(i); c != want {
			t.Fatalf("insert %q: got code %d, want %d", w, c, want)
		}
	}
	for i, w := range words {
		c, ok := d.Lookup([]byte(w))
		if !ok || c != Start+Code(i) {
			t.Errorf("lookup %q: got %d, %v", w, c, ok)
		}
		s, ok := d.Entry(c)
		if !ok || string(s) != w {
			t.Errorf("string %d: got %q, want %q", c, s, w)
		}
	}
	if _, ok := d.Lookup([]byte("abrx")); ok {
		t.Error("found string that was never inserted")
	}
	if d.Len() != len(words) {
		t.Errorf("len: got %d, want %d", d.Len(), len(words))
	}
}

func TestDictionaryInsertErrors(t *testing.T) {
	d := NewDictionary()
	if _, err := d.Insert([]byte("abc")); !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("missing prefix: got %v", err)
	}
	if _, err := d.Insert([]byte("a")); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("literal: got %v", err)
	}
	if _, err := d.Insert([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Insert([]byte("ab")); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("duplicate: got %v", err)
	}
}

func TestDictionaryOverflow(t *testing.T) {
	d := NewDictionary()
	free := 1<<MinWidth - int(Start)
	for i := 0; i < free; i++ {
		if _, err := d.Insert([]byte{byte(i >> 8), byte(i)}); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	_, err := d.Insert([]byte("zz"))
	if !errors.Is(err, ErrDictionaryOverflow) {
		t.Fatalf("got %v, want overflow", err)
	}

	d.Grow(MinWidth + 1)
	c, err := d.Insert([]byte("zz"))
	if err != nil {
		t.Fatal(err)
	}
	if c != 1<<MinWidth {
		t.Fatalf("got code %d, want %d", c, 1<<MinWidth)
	}
	// Grow never shrinks.
	d.Grow(MinWidth)
	if _, err := d.Insert([]byte("zzz")); err != nil {
		t.Fatal(err)
	}
}

func TestDictionaryLongChain(t *testing.T) {
	d := NewDictionary()
	d.Grow(16)
	want := bytes.Repeat([]byte("x"), 2000)
	var c Code
	for n := 2; n <= len(want); n++ {
		var err error
		c, err = d.Insert(want[:n])
		if err != nil {
			t.Fatal(err)
		}
	}
	got, ok := d.Entry(c)
	if !ok || !bytes.Equal(got, want) {
		t.Fatalf("chain of %d bytes not reconstructed, got %d bytes", len(want), len(got))
	}
	if d.first(c) != 'x' {
		t.Fatal("wrong first byte")
	}
}

func TestDictionaryReset(t *testing.T) {
	d := NewDictionary()
	if _, err := d.Insert([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	d.reset(MinWidth)
	if _, ok := d.Lookup([]byte("ab")); ok {
		t.Fatal("entry survived reset")
	}
	if d.Next() != Start {
		t.Fatalf("next after reset: %d", d.Next())
	}
}
