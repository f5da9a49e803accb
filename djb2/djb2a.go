package djb2

import "hash"

// HashA returns the DJB2A hash of data starting from basis.
func HashA(data []byte, basis uint32) uint32 {
	for _, b := range data {
		basis = (basis + (basis << 5)) ^ uint32(b)
	}

	return basis
}

// HashTextA returns the DJB2A hash of the NUL-terminated text starting from basis.
func HashTextA(text []byte, basis uint32) uint32 {
	for _, b := range text {
		if b == 0 {
			break
		}

		basis = (basis + (basis << 5)) ^ uint32(b)
	}

	return basis
}

// HashConstA is the pure recursive form of HashA over s.
func HashConstA(s string, basis uint32) uint32 {
	if len(s) == 0 {
		return basis
	}

	return HashConstA(s[1:], (basis+(basis<<5))^uint32(s[0]))
}

// SumA returns the DJB2A hash of data with DefaultBasis.
func SumA(data []byte) uint32 {
	return HashA(data, DefaultBasis)
}

// NewA returns a streaming DJB2A hash.Hash32 starting from basis.
func NewA(basis uint32) hash.Hash32 {
	return &digest{basis: basis, h: basis, fold: HashA}
}
