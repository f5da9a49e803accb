// Package djb2 implements Daniel J. Bernstein's string hashes.
//
// DJB2 folds every byte as basis*33 + b, DJB2A as basis*33 ^ b. Both start
// from DefaultBasis unless another basis is given. Passing a previous
// result as the basis continues the hash over more bytes.
package djb2

import "hash"

// DefaultBasis is the initial value of both hashes.
const DefaultBasis = 0x1505

// Size of a DJB2 hash in bytes.
const Size = 4

// Hash returns the DJB2 hash of data starting from basis.
func Hash(data []byte, basis uint32) uint32 {
	for _, b := range data {
		basis += (basis << 5) + uint32(b)
	}

	return basis
}

// HashText returns the DJB2 hash of the NUL-terminated text starting from
// basis. A slice without a NUL ends at its length.
func HashText(text []byte, basis uint32) uint32 {
	for _, b := range text {
		if b == 0 {
			break
		}

		basis += (basis << 5) + uint32(b)
	}

	return basis
}

// HashConst is the pure recursive form of Hash over s.
func HashConst(s string, basis uint32) uint32 {
	if len(s) == 0 {
		return basis
	}

	return HashConst(s[1:], basis+(basis<<5)+uint32(s[0]))
}

// Sum returns the DJB2 hash of data with DefaultBasis.
func Sum(data []byte) uint32 {
	return Hash(data, DefaultBasis)
}

// New returns a streaming DJB2 hash.Hash32 starting from basis.
func New(basis uint32) hash.Hash32 {
	return &digest{basis: basis, h: basis, fold: Hash}
}
