package crc32

import "sync"

// Table holds the partial remainder of every byte value for one polynomial.
// It is never modified after MakeTable returns.
type Table [256]uint32

// defaultTable is built on first use.
var defaultTable = sync.OnceValue(func() *Table {
	return MakeTable(DefaultPolynomial)
})

// MakeTable computes the lookup table for the bit-reversed polynomial poly.
// Entry i is the result of eight reduction steps starting from i, so the
// table depends on poly only.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for i := range t {
		r := uint32(i)
		for range 8 {
			r = reduce(r, poly)
		}

		t[i] = r
	}

	return t
}

// reduce performs one bit of polynomial division.
func reduce(r, poly uint32) uint32 {
	return (r >> 1) ^ (poly & -(r & 1))
}
