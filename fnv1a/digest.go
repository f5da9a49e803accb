package fnv1a

type digest32 struct {
	engine *Engine32
	basis  uint32
	h      uint32
}

func (d *digest32) Size() int      { return 4 }
func (d *digest32) BlockSize() int { return 1 }
func (d *digest32) Reset()         { d.h = d.basis }
func (d *digest32) Sum32() uint32  { return d.h }

func (d *digest32) Write(p []byte) (int, error) {
	d.h = d.engine.Hash(p, d.h)

	return len(p), nil
}

func (d *digest32) Sum(in []byte) []byte {
	return append(in, byte(d.h>>24), byte(d.h>>16), byte(d.h>>8), byte(d.h))
}

type digest64 struct {
	engine *Engine64
	basis  uint64
	h      uint64
}

func (d *digest64) Size() int      { return 8 }
func (d *digest64) BlockSize() int { return 1 }
func (d *digest64) Reset()         { d.h = d.basis }
func (d *digest64) Sum64() uint64  { return d.h }

func (d *digest64) Write(p []byte) (int, error) {
	d.h = d.engine.Hash(p, d.h)

	return len(p), nil
}

func (d *digest64) Sum(in []byte) []byte {
	h := d.h

	return append(in,
		byte(h>>56), byte(h>>48), byte(h>>40), byte(h>>32),
		byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}
