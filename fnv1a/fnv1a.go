// Package fnv1a implements the 32-bit and 64-bit Fowler-Noll-Vo 1a hashes.
//
// Each byte is XORed into the state, which is then multiplied by the FNV
// prime. The multiplication wraps modulo 2^32 or 2^64; the wraparound is
// part of the algorithm. Passing a previous result as the basis continues
// the hash over more bytes.
//
// Package-level functions use the published primes. NewEngine32 and
// NewEngine64 build variants with other primes.
package fnv1a

import "hash"

// Engine32 computes 32-bit FNV-1a hashes with a fixed prime.
type Engine32 struct {
	prime uint32
}

var std32 = Engine32{prime: DefaultPrime32}

// NewEngine32 creates an Engine32 with the given options.
func NewEngine32(opts ...Option) (*Engine32, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Engine32{prime: cfg.prime32}, nil
}

// Prime returns the multiplier.
func (e *Engine32) Prime() uint32 {
	return e.prime
}

// Hash returns the hash of data starting from basis.
func (e *Engine32) Hash(data []byte, basis uint32) uint32 {
	prime := e.prime
	for _, b := range data {
		basis = (basis ^ uint32(b)) * prime
	}

	return basis
}

// HashText returns the hash of the NUL-terminated text starting from basis.
func (e *Engine32) HashText(text []byte, basis uint32) uint32 {
	prime := e.prime
	for _, b := range text {
		if b == 0 {
			break
		}

		basis = (basis ^ uint32(b)) * prime
	}

	return basis
}

// HashConst is the pure recursive form of Hash over s.
func (e *Engine32) HashConst(s string, basis uint32) uint32 {
	return const32(s, basis, e.prime)
}

// New returns a streaming hash.Hash32 starting from basis.
func (e *Engine32) New(basis uint32) hash.Hash32 {
	return &digest32{engine: e, basis: basis, h: basis}
}

func const32(s string, basis, prime uint32) uint32 {
	if len(s) == 0 {
		return basis
	}

	return const32(s[1:], (basis^uint32(s[0]))*prime, prime)
}

// Hash32 returns the 32-bit hash of data starting from basis.
func Hash32(data []byte, basis uint32) uint32 {
	return std32.Hash(data, basis)
}

// HashText32 returns the 32-bit hash of the NUL-terminated text starting from basis.
func HashText32(text []byte, basis uint32) uint32 {
	return std32.HashText(text, basis)
}

// HashConst32 returns the 32-bit hash of s through the pure evaluation path.
func HashConst32(s string, basis uint32) uint32 {
	return std32.HashConst(s, basis)
}

// Sum32 returns the 32-bit hash of data with DefaultBasis32.
func Sum32(data []byte) uint32 {
	return std32.Hash(data, DefaultBasis32)
}

// New32 returns a streaming 32-bit hash starting from basis.
func New32(basis uint32) hash.Hash32 {
	return std32.New(basis)
}
