package crc32

import "hash"

// Engine computes CRC32 checksums for one polynomial. It is immutable after
// NewEngine and safe for concurrent use.
type Engine struct {
	table      func() *Table // nil selects the arithmetic path
	polynomial uint32
}

// std backs the package-level functions.
var std = Engine{table: defaultTable, polynomial: DefaultPolynomial}

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

	e := &Engine{polynomial: cfg.polynomial}

	switch {
	case cfg.noTable:
	case cfg.polynomial == DefaultPolynomial:
		e.table = defaultTable
	default:
		t := MakeTable(cfg.polynomial)
		e.table = func() *Table { return t }
	}

	return e, nil
}

// Polynomial returns the bit-reversed polynomial.
func (e *Engine) Polynomial() uint32 {
	return e.polynomial
}

// Table returns the lookup table, or nil for an arithmetic engine.
func (e *Engine) Table() *Table {
	if e.table == nil {
		return nil
	}

	return e.table()
}

// Hash returns the checksum of data continuing from seed. Passing the
// result of a previous call as seed chains the two inputs.
func (e *Engine) Hash(data []byte, seed uint32) uint32 {
	return ^e.update(^seed, data)
}

// Update returns the checksum crc extended by data.
func (e *Engine) Update(crc uint32, data []byte) uint32 {
	return e.Hash(data, crc)
}

// HashText returns the checksum of the NUL-terminated text continuing from
// seed. Bytes are folded until the first NUL or the end of the slice.
func (e *Engine) HashText(text []byte, seed uint32) uint32 {
	crc := ^seed

	if t := e.Table(); t != nil {
		for _, b := range text {
			if b == 0 {
				break
			}

			crc = (crc >> 8) ^ t[byte(crc)^b]
		}

		return ^crc
	}

	poly := e.polynomial
	for _, b := range text {
		if b == 0 {
			break
		}

		crc ^= uint32(b)
		for range 8 {
			crc = reduce(crc, poly)
		}
	}

	return ^crc
}

// HashConst returns the checksum of s continuing from seed. It is a pure
// function: no table, no loops, no mutable state. The result equals Hash
// over the same bytes.
func (e *Engine) HashConst(s string, seed uint32) uint32 {
	return ^foldConst(s, ^seed, e.polynomial)
}

// New returns a streaming hash.Hash32 starting from seed.
func (e *Engine) New(seed uint32) hash.Hash32 {
	return &digest{engine: e, seed: seed, crc: ^seed}
}

// update folds data into the inverted register crc.
func (e *Engine) update(crc uint32, data []byte) uint32 {
	if t := e.Table(); t != nil {
		// Unroll 4x; the register stays in a local.
		for len(data) >= 4 {
			crc = (crc >> 8) ^ t[byte(crc)^data[0]]
			crc = (crc >> 8) ^ t[byte(crc)^data[1]]
			crc = (crc >> 8) ^ t[byte(crc)^data[2]]
			crc = (crc >> 8) ^ t[byte(crc)^data[3]]
			data = data[4:]
		}

		for _, b := range data {
			crc = (crc >> 8) ^ t[byte(crc)^b]
		}

		return crc
	}

	poly := e.polynomial
	for _, b := range data {
		crc ^= uint32(b)
		for range 8 {
			crc = reduce(crc, poly)
		}
	}

	return crc
}

func foldConst(s string, crc, poly uint32) uint32 {
	if len(s) == 0 {
		return crc
	}

	return foldConst(s[1:], reduceN(crc^uint32(s[0]), poly, 8), poly)
}

func reduceN(r, poly uint32, n int) uint32 {
	if n == 0 {
		return r
	}

	return reduceN(reduce(r, poly), poly, n-1)
}
