package murmur3

import "github.com/kalbasit/fasthash/internal/le"

// digest streams MurMur3. The length only enters at finalization, so
// whole words are folded as they complete.
type digest struct {
	engine *Engine
	seed   uint32
	h      uint32
	n      uint32
	tail   [4]byte
	ntail  int
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 4 }

func (d *digest) Reset() {
	d.h = d.seed
	d.n = 0
	d.ntail = 0
}

func (d *digest) Write(p []byte) (int, error) {
	written := len(p)
	d.n += uint32(written) //nolint:gosec // G115

	if d.ntail > 0 {
		c := copy(d.tail[d.ntail:], p)
		d.ntail += c
		p = p[c:]

		if d.ntail < 4 {
			return written, nil
		}

		d.h = d.engine.mix(d.h, le.Uint32(d.tail[:]))
		d.ntail = 0
	}

	for len(p) >= 4 {
		d.h = d.engine.mix(d.h, le.Uint32(p))
		p = p[4:]
	}

	d.ntail = copy(d.tail[:], p)

	return written, nil
}

func (d *digest) Sum32() uint32 {
	var k uint32
	for i := d.ntail - 1; i >= 0; i-- {
		k = k<<8 | uint32(d.tail[i])
	}

	return d.engine.finalize(d.engine.tail(d.h, k, d.ntail), d.n)
}

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()

	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
