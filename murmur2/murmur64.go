package murmur2

import (
	"github.com/kalbasit/fasthash/internal/cstr"
	"github.com/kalbasit/fasthash/internal/le"
)

// Hash64 returns the MurMur2-64 hash of data.
func (e *Engine) Hash64(data []byte, seed uint64) uint64 {
	m := e.modulo64
	h := seed ^ uint64(len(data))*m

	for len(data) >= 8 {
		h = (h ^ scramble64(le.Uint64(data), m)) * m
		data = data[8:]
	}

	switch len(data) {
	case 7:
		h ^= uint64(data[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(data[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(data[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(data[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(data[0])
		h *= m
	}

	return finalize64(h, m)
}

// HashText64 returns the MurMur2-64 hash of the NUL-terminated text.
func (e *Engine) HashText64(text []byte, seed uint64) uint64 {
	return e.Hash64(cstr.Trim(text), seed)
}

// HashConst64 returns the MurMur2-64 hash of s through the pure evaluation path.
func (e *Engine) HashConst64(s string, seed uint64) uint64 {
	return foldConst64(s, seed^uint64(len(s))*e.modulo64, e.modulo64)
}

func foldConst64(s string, h, m uint64) uint64 {
	if len(s) >= 8 {
		return foldConst64(s[8:], (h^scramble64(word64(s), m))*m, m)
	}

	if len(s) == 0 {
		return finalize64(h, m)
	}

	if len(s) == 1 {
		return foldConst64(s[:0], (h^uint64(s[0]))*m, m)
	}

	// The highest remaining byte goes in at bit 8*(len-1).
	return foldConst64(s[:len(s)-1], h^uint64(s[len(s)-1])<<(8*(len(s)-1)), m)
}

func scramble64(k, m uint64) uint64 {
	k *= m
	k ^= k >> 47

	return k * m
}

func finalize64(h, m uint64) uint64 {
	h ^= h >> 47
	h *= m

	return h ^ h>>47
}

func word64(s string) uint64 {
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// Hash64 returns the MurMur2-64 hash of data with seed.
func Hash64(data []byte, seed uint64) uint64 {
	return std.Hash64(data, seed)
}

// HashText64 returns the MurMur2-64 hash of the NUL-terminated text with seed.
func HashText64(text []byte, seed uint64) uint64 {
	return std.HashText64(text, seed)
}

// HashConst64 returns the MurMur2-64 hash of s through the pure evaluation path.
func HashConst64(s string, seed uint64) uint64 {
	return std.HashConst64(s, seed)
}

// Sum64 returns the MurMur2-64 hash of data with DefaultSeed.
func Sum64(data []byte) uint64 {
	return std.Hash64(data, DefaultSeed)
}
