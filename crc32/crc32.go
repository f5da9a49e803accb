// Package crc32 implements the 32-bit cyclic redundancy check.
//
// The package-level functions use DefaultPolynomial with a lookup table
// built on first use. NewEngine selects another polynomial, or the
// arithmetic path that reduces every byte bit by bit without a table.
//
// Every entry point accepts a seed. The seed is the checksum of the bytes
// before this call, so checksums can be chained:
//
//	crc := crc32.Hash(part1, crc32.DefaultSeed)
//	crc = crc32.Hash(part2, crc)
//
// None of the functions validate their input and none of them fail.
package crc32

import "hash"

// Size of a CRC32 checksum in bytes.
const Size = 4

// Hash returns the checksum of data continuing from seed.
func Hash(data []byte, seed uint32) uint32 {
	return std.Hash(data, seed)
}

// HashText returns the checksum of the NUL-terminated text continuing from seed.
func HashText(text []byte, seed uint32) uint32 {
	return std.HashText(text, seed)
}

// HashConst returns the checksum of s continuing from seed through the
// pure evaluation path.
func HashConst(s string, seed uint32) uint32 {
	return std.HashConst(s, seed)
}

// Update returns the checksum crc extended by data. It is Hash with the
// arguments in chaining order.
func Update(crc uint32, data []byte) uint32 {
	return std.Hash(data, crc)
}

// Sum returns the checksum of data with DefaultSeed.
func Sum(data []byte) uint32 {
	return std.Hash(data, DefaultSeed)
}

// New returns a streaming hash.Hash32 starting from seed.
func New(seed uint32) hash.Hash32 {
	return std.New(seed)
}
