package murmur2

import "github.com/kalbasit/fasthash/internal/le"

// Size of a 32-bit MurMur2 hash in bytes.
const Size = 4

// digestA streams MurMur2A. Whole words are folded as they complete; up to
// three pending bytes wait in tail until more input or Sum32.
type digestA struct {
	engine *Engine
	seed   uint32
	h      uint32
	n      uint32 // bytes written, truncated like the one-shot length
	tail   [4]byte
	ntail  int
}

func (d *digestA) Size() int      { return Size }
func (d *digestA) BlockSize() int { return 4 }

func (d *digestA) Reset() {
	d.h = d.seed
	d.n = 0
	d.ntail = 0
}

func (d *digestA) Write(p []byte) (int, error) {
	written := len(p)
	m := d.engine.moduloA
	d.n += uint32(written) //nolint:gosec // G115

	if d.ntail > 0 {
		c := copy(d.tail[d.ntail:], p)
		d.ntail += c
		p = p[c:]

		if d.ntail < 4 {
			return written, nil
		}

		d.h = d.h*m ^ scramble(le.Uint32(d.tail[:]), m)
		d.ntail = 0
	}

	for len(p) >= 4 {
		d.h = d.h*m ^ scramble(le.Uint32(p), m)
		p = p[4:]
	}

	d.ntail = copy(d.tail[:], p)

	return written, nil
}

func (d *digestA) Sum32() uint32 {
	return finalizeA(d.h, tailWord(d.tail[:d.ntail]), d.n, d.engine.moduloA)
}

func (d *digestA) Sum(in []byte) []byte {
	s := d.Sum32()

	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
