package crc32

// digest streams bytes into an Engine.
type digest struct {
	engine *Engine
	seed   uint32
	crc    uint32 // inverted register
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { d.crc = ^d.seed }
func (d *digest) Sum32() uint32  { return ^d.crc }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = d.engine.update(d.crc, p)

	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()

	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
