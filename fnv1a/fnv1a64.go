package fnv1a

import "hash"

// Engine64 computes 64-bit FNV-1a hashes with a fixed prime.
type Engine64 struct {
	prime uint64
}

var std64 = Engine64{prime: DefaultPrime64}

// NewEngine64 creates an Engine64 with the given options.
func NewEngine64(opts ...Option) (*Engine64, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Engine64{prime: cfg.prime64}, nil
}

// Prime returns the multiplier.
func (e *Engine64) Prime() uint64 {
	return e.prime
}

// Hash returns the hash of data starting from basis.
func (e *Engine64) Hash(data []byte, basis uint64) uint64 {
	prime := e.prime
	for _, b := range data {
		basis = (basis ^ uint64(b)) * prime
	}

	return basis
}

// HashText returns the hash of the NUL-terminated text starting from basis.
func (e *Engine64) HashText(text []byte, basis uint64) uint64 {
	prime := e.prime
	for _, b := range text {
		if b == 0 {
			break
		}

		basis = (basis ^ uint64(b)) * prime
	}

	return basis
}

// HashConst is the pure recursive form of Hash over s.
func (e *Engine64) HashConst(s string, basis uint64) uint64 {
	return const64(s, basis, e.prime)
}

// New returns a streaming hash.Hash64 starting from basis.
func (e *Engine64) New(basis uint64) hash.Hash64 {
	return &digest64{engine: e, basis: basis, h: basis}
}

func const64(s string, basis, prime uint64) uint64 {
	if len(s) == 0 {
		return basis
	}

	return const64(s[1:], (basis^uint64(s[0]))*prime, prime)
}

// Hash64 returns the 64-bit hash of data starting from basis.
func Hash64(data []byte, basis uint64) uint64 {
	return std64.Hash(data, basis)
}

// HashText64 returns the 64-bit hash of the NUL-terminated text starting from basis.
func HashText64(text []byte, basis uint64) uint64 {
	return std64.HashText(text, basis)
}

// HashConst64 returns the 64-bit hash of s through the pure evaluation path.
func HashConst64(s string, basis uint64) uint64 {
	return std64.HashConst(s, basis)
}

// Sum64 returns the 64-bit hash of data with DefaultBasis64.
func Sum64(data []byte) uint64 {
	return std64.Hash(data, DefaultBasis64)
}

// New64 returns a streaming 64-bit hash starting from basis.
func New64(basis uint64) hash.Hash64 {
	return std64.New(basis)
}
