package djb2

// digest chains fold over successive writes; both hashes carry their
// whole state in the basis.
type digest struct {
	basis uint32
	h     uint32
	fold  func([]byte, uint32) uint32
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return 1 }
func (d *digest) Reset()         { d.h = d.basis }
func (d *digest) Sum32() uint32  { return d.h }

func (d *digest) Write(p []byte) (int, error) {
	d.h = d.fold(p, d.h)

	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	return append(in, byte(d.h>>24), byte(d.h>>16), byte(d.h>>8), byte(d.h))
}
