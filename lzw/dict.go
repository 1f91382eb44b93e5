package lzw

import "fmt"

// node is a dictionary string stored as its parent code plus one appended unit.
type node struct {
	parent Code
	unit   byte
	first  byte
	length uint32
}

// Dictionary is a prefix symbol table mapping byte strings to codes.
//
// Literal codes 0-255 are always present and are the roots of the trie.
// Every other entry extends an existing entry by one byte, so strings are
// never copied when the dictionary grows.
//
// The zero value is not usable; use NewDictionary.
type Dictionary struct {
	nodes    []node
	children map[uint32]Code
	limit    Code
}

// NewDictionary returns a dictionary holding only the literals,
// accepting codes of up to MinWidth bits.
func NewDictionary() *Dictionary {
	d := &Dictionary{}
	d.reset(MinWidth)
	return d
}

func (d *Dictionary) reset(bits uint8) {
	if cap(d.nodes) < 1<<bits {
		d.nodes = make([]node, literals, 1<<bits)
	}
	d.nodes = d.nodes[:literals]
	for i := range d.nodes {
		d.nodes[i] = node{parent: Code(i), unit: byte(i), first: byte(i), length: 1}
	}
	// EOF occupies a code but has no string.
	d.nodes = append(d.nodes, node{parent: EOF})
	if d.children == nil {
		d.children = make(map[uint32]Code, 1<<bits)
	} else {
		clear(d.children)
	}
	d.limit = 1 << bits
}

// Grow allows codes of up to bits bits to be assigned.
// The limit never shrinks.
func (d *Dictionary) Grow(bits int) {
	limit := Code(1) << bits
	if limit <= d.limit {
		return
	}
	d.limit = limit
	if cap(d.nodes) < int(limit) {
		nodes := make([]node, len(d.nodes), limit)
		copy(nodes, d.nodes)
		d.nodes = nodes
	}
}

// Next returns the code the next entry will be assigned.
func (d *Dictionary) Next() Code {
	return Code(len(d.nodes))
}

// Len returns the number of dictionary entries, excluding literals.
func (d *Dictionary) Len() int {
	return len(d.nodes) - int(Start)
}

func key(parent Code, unit byte) uint32 {
	return uint32(parent)<<8 | uint32(unit)
}

// child returns the code of the string parent+unit.
func (d *Dictionary) child(parent Code, unit byte) (Code, bool) {
	c, ok := d.children[key(parent, unit)]
	return c, ok
}

// add assigns the next code to parent+unit.
// The caller must ensure the entry does not exist.
func (d *Dictionary) add(parent Code, unit byte) (Code, error) {
	next := d.Next()
	if next >= d.limit {
		return 0, fmt.Errorf("%w: code %d does not fit %d codes", ErrDictionaryOverflow, next, d.limit)
	}
	p := d.nodes[parent]
	d.nodes = append(d.nodes, node{parent: parent, unit: unit, first: p.first, length: p.length + 1})
	d.children[key(parent, unit)] = next
	return next, nil
}

// defined reports whether c has a string.
func (d *Dictionary) defined(c Code) bool {
	return c != EOF && c < d.Next()
}

// first returns the first byte of the string for c.
func (d *Dictionary) first(c Code) byte {
	return d.nodes[c].first
}

// appendString appends the string for c to dst.
func (d *Dictionary) appendString(dst []byte, c Code) []byte {
	n := int(d.nodes[c].length)
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	for i := start + n - 1; i > start; i-- {
		nd := &d.nodes[c]
		dst[i] = nd.unit
		c = nd.parent
	}
	dst[start] = byte(c)
	return dst
}

// Lookup returns the code for s.
func (d *Dictionary) Lookup(s []byte) (Code, bool) {
	if len(s) == 0 {
		return 0, false
	}
	c := Code(s[0])
	for _, b := range s[1:] {
		var ok bool
		if c, ok = d.child(c, b); !ok {
			return 0, false
		}
	}
	return c, true
}

// Insert adds s to the dictionary under the next available code.
// Everything but the last byte of s must already be present.
func (d *Dictionary) Insert(s []byte) (Code, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateEntry, s)
	}
	parent, ok := d.Lookup(s[:len(s)-1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrefix, s[:len(s)-1])
	}
	unit := s[len(s)-1]
	if _, ok := d.child(parent, unit); ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateEntry, s)
	}
	return d.add(parent, unit)
}

// Entry returns the string for c.
func (d *Dictionary) Entry(c Code) ([]byte, bool) {
	if !d.defined(c) {
		return nil, false
	}
	return d.appendString(nil, c), true
}
