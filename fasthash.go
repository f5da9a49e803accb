package fasthash

import (
	"fmt"
	"hash"

	"github.com/kalbasit/fasthash/crc32"
	"github.com/kalbasit/fasthash/djb2"
	"github.com/kalbasit/fasthash/fnv1a"
	"github.com/kalbasit/fasthash/murmur2"
	"github.com/kalbasit/fasthash/murmur3"
)

// entry binds an Algorithm to its package, widened to 64 bits.
type entry struct {
	hash func([]byte, uint64) uint64
	text func([]byte, uint64) uint64
	pure func(string, uint64) uint64
	new  func(uint64) hash.Hash // nil when not streamable
	seed uint64
}

var registry = [...]entry{
	CRC32: {
		hash: widen(crc32.Hash),
		text: widen(crc32.HashText),
		pure: widen(crc32.HashConst),
		new:  func(s uint64) hash.Hash { return crc32.New(uint32(s)) },
		seed: crc32.DefaultSeed,
	},
	DJB2: {
		hash: widen(djb2.Hash),
		text: widen(djb2.HashText),
		pure: widen(djb2.HashConst),
		new:  func(s uint64) hash.Hash { return djb2.New(uint32(s)) },
		seed: djb2.DefaultBasis,
	},
	DJB2A: {
		hash: widen(djb2.HashA),
		text: widen(djb2.HashTextA),
		pure: widen(djb2.HashConstA),
		new:  func(s uint64) hash.Hash { return djb2.NewA(uint32(s)) },
		seed: djb2.DefaultBasis,
	},
	FNV1A: {
		hash: widen(fnv1a.Hash32),
		text: widen(fnv1a.HashText32),
		pure: widen(fnv1a.HashConst32),
		new:  func(s uint64) hash.Hash { return fnv1a.New32(uint32(s)) },
		seed: fnv1a.DefaultBasis32,
	},
	FNV1A64: {
		hash: fnv1a.Hash64,
		text: fnv1a.HashText64,
		pure: fnv1a.HashConst64,
		new:  func(s uint64) hash.Hash { return fnv1a.New64(s) },
		seed: fnv1a.DefaultBasis64,
	},
	MurMur2: {
		hash: widen(murmur2.Hash),
		text: widen(murmur2.HashText),
		pure: widen(murmur2.HashConst),
		seed: murmur2.DefaultSeed,
	},
	MurMur2A: {
		hash: widen(murmur2.HashA),
		text: widen(murmur2.HashTextA),
		pure: widen(murmur2.HashConstA),
		new:  func(s uint64) hash.Hash { return murmur2.NewA(uint32(s)) },
		seed: murmur2.DefaultSeed,
	},
	MurMur2_64: {
		hash: murmur2.Hash64,
		text: murmur2.HashText64,
		pure: murmur2.HashConst64,
		seed: murmur2.DefaultSeed,
	},
	MurMur3: {
		hash: widen(murmur3.Hash),
		text: widen(murmur3.HashText),
		pure: widen(murmur3.HashConst),
		new:  func(s uint64) hash.Hash { return murmur3.New(uint32(s)) },
		seed: murmur3.DefaultSeed,
	},
}

// widen adapts a 32-bit entry point: the seed is truncated to its low 32
// bits and the result is zero-extended.
func widen[In []byte | string](f func(In, uint32) uint32) func(In, uint64) uint64 {
	return func(in In, seed uint64) uint64 {
		return uint64(f(in, uint32(seed))) //nolint:gosec // G115
	}
}

func lookup(a Algorithm) (*entry, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return &registry[a], nil
}

// DefaultSeed returns the documented initial basis or seed of a, or 0 for
// an unknown algorithm.
func DefaultSeed(a Algorithm) uint64 {
	if !a.Valid() {
		return 0
	}

	return registry[a].seed
}

// Hash returns the hash of data under a. For 32-bit algorithms only the
// low 32 bits of seed are used and the result is zero-extended.
func Hash(a Algorithm, data []byte, seed uint64) (uint64, error) {
	e, err := lookup(a)
	if err != nil {
		return 0, err
	}

	return e.hash(data, seed), nil
}

// HashText returns the hash of the NUL-terminated text under a.
func HashText(a Algorithm, text []byte, seed uint64) (uint64, error) {
	e, err := lookup(a)
	if err != nil {
		return 0, err
	}

	return e.text(text, seed), nil
}

// HashConst returns the hash of s under a through the pure evaluation path.
func HashConst(a Algorithm, s string, seed uint64) (uint64, error) {
	e, err := lookup(a)
	if err != nil {
		return 0, err
	}

	return e.pure(s, seed), nil
}

// New returns a streaming digest for a starting from seed. The digest
// also implements hash.Hash32 or hash.Hash64 according to a.Width().
func New(a Algorithm, seed uint64) (hash.Hash, error) {
	e, err := lookup(a)
	if err != nil {
		return nil, err
	}

	if e.new == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStreamable, a)
	}

	return e.new(seed), nil
}
