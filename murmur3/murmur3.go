// Package murmur3 implements the 32-bit MurMur3 hash by Austin Appleby.
//
// Every 4-byte word is multiplied, rotated and multiplied again before it
// is folded into the state, which is rotated and offset in turn. The 0-3
// trailing bytes are scrambled the same way but folded without the state
// rotation. The length is mixed in last, followed by the avalanche.
//
// Words are read little-endian on every host. NewEngine builds variants
// with other mixing constants.
package murmur3

import (
	"hash"
	"math/bits"

	"github.com/kalbasit/fasthash/internal/cstr"
	"github.com/kalbasit/fasthash/internal/le"
)

// Size of a MurMur3 hash in bytes.
const Size = 4

// Engine computes MurMur3 for one set of constants. It is immutable after
// NewEngine and safe for concurrent use.
type Engine struct {
	c1, c2, c3 uint32
	f1, f2     uint32
}

var std = Engine{c1: DefaultC1, c2: DefaultC2, c3: DefaultC3, f1: DefaultF1, f2: DefaultF2}

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

	return &Engine{c1: cfg.c1, c2: cfg.c2, c3: cfg.c3, f1: cfg.f1, f2: cfg.f2}, nil
}

// Hash returns the hash of data with seed. The length is truncated to 32 bits.
func (e *Engine) Hash(data []byte, seed uint32) uint32 {
	n := uint32(len(data)) //nolint:gosec // G115
	h := seed

	for len(data) >= 4 {
		h = e.mix(h, le.Uint32(data))
		data = data[4:]
	}

	var k uint32

	switch len(data) {
	case 3:
		k ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(data[0])
		h ^= e.scramble(k)
	}

	return e.finalize(h, n)
}

// HashText returns the hash of the NUL-terminated text with seed.
func (e *Engine) HashText(text []byte, seed uint32) uint32 {
	return e.Hash(cstr.Trim(text), seed)
}

// HashConst returns the hash of s through the pure evaluation path.
func (e *Engine) HashConst(s string, seed uint32) uint32 {
	return e.finalize(e.tailConst(s[len(s)&^3:], e.bodyConst(s, seed)), uint32(len(s))) //nolint:gosec // G115
}

// New returns a streaming hash.Hash32 with seed.
func (e *Engine) New(seed uint32) hash.Hash32 {
	return &digest{engine: e, seed: seed, h: seed}
}

func (e *Engine) scramble(k uint32) uint32 {
	return bits.RotateLeft32(k*e.c1, 15) * e.c2
}

// mix folds one whole word into the state.
func (e *Engine) mix(h, k uint32) uint32 {
	return bits.RotateLeft32(h^e.scramble(k), 13)*5 + e.c3
}

// tail folds up to three trailing bytes, already assembled into k.
func (e *Engine) tail(h, k uint32, n int) uint32 {
	if n == 0 {
		return h
	}

	return h ^ e.scramble(k)
}

func (e *Engine) finalize(h, n uint32) uint32 {
	h ^= n
	h ^= h >> 16
	h *= e.f1
	h ^= h >> 13
	h *= e.f2

	return h ^ h>>16
}

func (e *Engine) bodyConst(s string, h uint32) uint32 {
	if len(s) < 4 {
		return h
	}

	return e.bodyConst(s[4:], e.mix(h, uint32(s[0])|uint32(s[1])<<8|uint32(s[2])<<16|uint32(s[3])<<24))
}

func (e *Engine) tailConst(s string, h uint32) uint32 {
	switch len(s) {
	case 3:
		return e.tail(h, uint32(s[0])|uint32(s[1])<<8|uint32(s[2])<<16, 3)
	case 2:
		return e.tail(h, uint32(s[0])|uint32(s[1])<<8, 2)
	case 1:
		return e.tail(h, uint32(s[0]), 1)
	default:
		return h
	}
}

// Hash returns the MurMur3 hash of data with seed.
func Hash(data []byte, seed uint32) uint32 {
	return std.Hash(data, seed)
}

// HashText returns the MurMur3 hash of the NUL-terminated text with seed.
func HashText(text []byte, seed uint32) uint32 {
	return std.HashText(text, seed)
}

// HashConst returns the MurMur3 hash of s through the pure evaluation path.
func HashConst(s string, seed uint32) uint32 {
	return std.HashConst(s, seed)
}

// Sum returns the MurMur3 hash of data with DefaultSeed.
func Sum(data []byte) uint32 {
	return std.Hash(data, DefaultSeed)
}

// New returns a streaming MurMur3 hash.Hash32 with seed.
func New(seed uint32) hash.Hash32 {
	return std.New(seed)
}
