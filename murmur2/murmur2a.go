package murmur2

import (
	"hash"

	"github.com/kalbasit/fasthash/internal/cstr"
	"github.com/kalbasit/fasthash/internal/le"
)

// HashA returns the MurMur2A hash of data. The length is truncated to 32 bits.
func (e *Engine) HashA(data []byte, seed uint32) uint32 {
	m := e.moduloA
	n := uint32(len(data)) //nolint:gosec // G115
	h := seed

	for len(data) >= 4 {
		h = h*m ^ scramble(le.Uint32(data), m)
		data = data[4:]
	}

	return finalizeA(h, tailWord(data), n, m)
}

// HashTextA returns the MurMur2A hash of the NUL-terminated text.
func (e *Engine) HashTextA(text []byte, seed uint32) uint32 {
	return e.HashA(cstr.Trim(text), seed)
}

// HashConstA returns the MurMur2A hash of s through the pure evaluation path.
func (e *Engine) HashConstA(s string, seed uint32) uint32 {
	return finalizeA(bodyConstA(s, seed, e.moduloA), tailConst(s[len(s)&^3:]), uint32(len(s)), e.moduloA) //nolint:gosec // G115
}

// NewA returns a streaming MurMur2A hash.Hash32 with seed.
func (e *Engine) NewA(seed uint32) hash.Hash32 {
	return &digestA{engine: e, seed: seed, h: seed}
}

func bodyConstA(s string, h, m uint32) uint32 {
	if len(s) < 4 {
		return h
	}

	return bodyConstA(s[4:], h*m^scramble(word(s), m), m)
}

// finalizeA folds the tail word and then the length, each as a scrambled
// word, before the common final mix. The tail fold happens even when
// there are no tail bytes.
func finalizeA(h, tail, n, m uint32) uint32 {
	h = h*m ^ scramble(tail, m)
	h = h*m ^ scramble(n, m)

	return finalize(h, m)
}

// tailWord assembles up to three trailing bytes little-endian.
func tailWord(b []byte) uint32 {
	var t uint32

	switch len(b) {
	case 3:
		t ^= uint32(b[2]) << 16
		fallthrough
	case 2:
		t ^= uint32(b[1]) << 8
		fallthrough
	case 1:
		t ^= uint32(b[0])
	}

	return t
}

func tailConst(s string) uint32 {
	switch len(s) {
	case 3:
		return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16
	case 2:
		return uint32(s[0]) | uint32(s[1])<<8
	case 1:
		return uint32(s[0])
	default:
		return 0
	}
}

// HashA returns the MurMur2A hash of data with seed.
func HashA(data []byte, seed uint32) uint32 {
	return std.HashA(data, seed)
}

// HashTextA returns the MurMur2A hash of the NUL-terminated text with seed.
func HashTextA(text []byte, seed uint32) uint32 {
	return std.HashTextA(text, seed)
}

// HashConstA returns the MurMur2A hash of s through the pure evaluation path.
func HashConstA(s string, seed uint32) uint32 {
	return std.HashConstA(s, seed)
}

// SumA returns the MurMur2A hash of data with DefaultSeed.
func SumA(data []byte) uint32 {
	return std.HashA(data, DefaultSeed)
}

// NewA returns a streaming MurMur2A hash.Hash32 with seed.
func NewA(seed uint32) hash.Hash32 {
	return std.NewA(seed)
}
