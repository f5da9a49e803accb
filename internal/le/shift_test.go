package le

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The shift loader runs here whatever the build tags select, and must agree
// with the compiled-in loader at every offset.
func TestShiftLoadersAtEveryOffset(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = byte(i*53 + 7)
	}

	for off := 0; off+8 <= len(buf); off++ {
		b := buf[off:]

		assert.Equal(t, binary.LittleEndian.Uint32(b), shift32(b), "offset %d", off)
		assert.Equal(t, binary.LittleEndian.Uint64(b), shift64(b), "offset %d", off)
		assert.Equal(t, shift32(b), Uint32(b), "offset %d", off)
		assert.Equal(t, shift64(b), Uint64(b), "offset %d", off)
	}
}

func TestShiftLoadersShortSlicePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { shift32(make([]byte, 3)) })
	assert.Panics(t, func() { shift64(make([]byte, 7)) })
}
