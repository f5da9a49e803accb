// Package murmur2 implements Austin Appleby's MurMur2 family: the 32-bit
// MurMur2, the MurMur2A variant and the 64-bit MurMur2-64.
//
// MurMur2 and MurMur2-64 mix the input length into the state before the
// first byte, so they need the whole input at once. MurMur2A mixes the
// length after the last byte and therefore also has a streaming form.
// MurMur2A also scrambles its tail bytes as a full word and always
// performs one extra multiply before the length, so its output differs
// from MurMur2 for every input.
//
// Words are read little-endian on every host.
package murmur2

import (
	"github.com/kalbasit/fasthash/internal/cstr"
	"github.com/kalbasit/fasthash/internal/le"
)

// Engine computes the MurMur2 family for one set of multipliers. It is
// immutable after NewEngine and safe for concurrent use.
type Engine struct {
	modulo   uint32
	moduloA  uint32
	modulo64 uint64
}

var std = Engine{modulo: DefaultModulo, moduloA: DefaultModuloA, modulo64: DefaultModulo64}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Engine{modulo: cfg.modulo, moduloA: cfg.moduloA, modulo64: cfg.modulo64}, nil
}

// Modulo returns the MurMur2 multiplier.
func (e *Engine) Modulo() uint32 {
	return e.modulo
}

// ModuloA returns the MurMur2A multiplier.
func (e *Engine) ModuloA() uint32 {
	return e.moduloA
}

// Modulo64 returns the 64-bit multiplier.
func (e *Engine) Modulo64() uint64 {
	return e.modulo64
}

// Hash returns the MurMur2 hash of data. The length is truncated to 32 bits.
func (e *Engine) Hash(data []byte, seed uint32) uint32 {
	m := e.modulo
	h := seed ^ uint32(len(data)) //nolint:gosec // G115

	for len(data) >= 4 {
		h = h*m ^ scramble(le.Uint32(data), m)
		data = data[4:]
	}

	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= m
	}

	return finalize(h, m)
}

// HashText returns the MurMur2 hash of the NUL-terminated text.
func (e *Engine) HashText(text []byte, seed uint32) uint32 {
	return e.Hash(cstr.Trim(text), seed)
}

// HashConst returns the MurMur2 hash of s through the pure evaluation path.
func (e *Engine) HashConst(s string, seed uint32) uint32 {
	return foldConst(s, seed^uint32(len(s)), e.modulo) //nolint:gosec // G115
}

// foldConst consumes whole words from the front, then the tail from its
// last byte down, then finalizes.
func foldConst(s string, h, m uint32) uint32 {
	switch len(s) {
	case 0:
		return finalize(h, m)
	case 1:
		return foldConst(s[:0], (h^uint32(s[0]))*m, m)
	case 2:
		return foldConst(s[:1], h^uint32(s[1])<<8, m)
	case 3:
		return foldConst(s[:2], h^uint32(s[2])<<16, m)
	default:
		return foldConst(s[4:], h*m^scramble(word(s), m), m)
	}
}

// scramble mixes one word before it is folded into the state.
func scramble(k, m uint32) uint32 {
	k *= m
	k ^= k >> 24

	return k * m
}

func finalize(h, m uint32) uint32 {
	h ^= h >> 13
	h *= m

	return h ^ h>>15
}

// word reads s[0:4] little-endian.
func word(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// Hash returns the MurMur2 hash of data with seed.
func Hash(data []byte, seed uint32) uint32 {
	return std.Hash(data, seed)
}

// HashText returns the MurMur2 hash of the NUL-terminated text with seed.
func HashText(text []byte, seed uint32) uint32 {
	return std.HashText(text, seed)
}

// HashConst returns the MurMur2 hash of s through the pure evaluation path.
func HashConst(s string, seed uint32) uint32 {
	return std.HashConst(s, seed)
}

// Sum returns the MurMur2 hash of data with DefaultSeed.
func Sum(data []byte) uint32 {
	return std.Hash(data, DefaultSeed)
}
