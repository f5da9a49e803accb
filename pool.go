package fasthash

import (
	"hash"
	"sync"
)

// DigestPool is a pool of digests of one algorithm and seed, for reuse in
// high-throughput scenarios.
type DigestPool struct {
	pool sync.Pool
	alg  Algorithm
}

// NewDigestPool creates a DigestPool. It fails with ErrUnknownAlgorithm or
// ErrNotStreamable when New would.
func NewDigestPool(alg Algorithm, seed uint64) (*DigestPool, error) {
	// Validate by creating a test digest
	h, err := New(alg, seed)
	if err != nil {
		return nil, err
	}

	newDigest := registry[alg].new

	p := &DigestPool{
		pool: sync.Pool{
			New: func() any { return newDigest(seed) },
		},
		alg: alg,
	}
	p.pool.Put(h)

	return p, nil
}

// Algorithm returns the algorithm of the pooled digests.
func (p *DigestPool) Algorithm() Algorithm {
	return p.alg
}

// Get retrieves a reset digest from the pool, or creates a new one if the
// pool is empty.
func (p *DigestPool) Get() hash.Hash {
	h := p.pool.Get().(hash.Hash) //nolint:forcetypeassert
	h.Reset()

	return h
}

// Put returns a digest to the pool for reuse.
// The digest should not be used after being returned to the pool.
func (p *DigestPool) Put(h hash.Hash) {
	h.Reset()
	p.pool.Put(h)
}

// Sum64 hashes data with a pooled digest. The result is zero-extended for
// 32-bit algorithms.
func (p *DigestPool) Sum64(data []byte) uint64 {
	h := p.Get()
	defer p.Put(h)

	_, _ = h.Write(data)

	switch d := h.(type) {
	case hash.Hash64:
		return d.Sum64()
	case hash.Hash32:
		return uint64(d.Sum32())
	default:
		return 0
	}
}
