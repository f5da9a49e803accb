package fnv1a_test

import (
	"crypto/rand"
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fasthash/fnv1a"
)

const testBasis = 0x9747B28C

var vectors = []struct {
	in       string
	h32      uint32
	h64      uint64
	seeded32 uint32
	seeded64 uint64
}{
	{"", 0x811C9DC5, 0xCBF29CE484222325, 0x9747B28C, 0x000000009747B28C},
	{"a", 0xE40C292C, 0xAF63DC4C8601EC8C, 0x12DEAB17, 0x47B2EE010ED508B7},
	{"ab", 0x4D2505CA, 0x089C4407B545986A, 0x2987E92F, 0xAA1340CC33FE01EF},
	{"abc", 0x1A47E90B, 0xE71FA2190541574B, 0xACF442A4, 0xFCB8A6FC589CA0E4},
	{"abcd", 0xCE3479BD, 0xFC179F83EE0724DD, 0x04851440, 0x0A643ECA9224B980},
	{"abcdefgh", 0x76DAAA8D, 0x25DA8C1836A8D66D, 0x058647D4, 0x9D79A346E4625554},
	{"123456789", 0xBB86B11C, 0x06D5573923C6CDFC, 0x3518E717, 0x467C067A87D8D937},
	{"test", 0xAFD071E5, 0xF9E6E6EF197C2B25, 0x704F1228, 0xD464B023F6C8BC48},
	{"hello, world", 0x4D0EA41D, 0x17A1A4F267BE633D, 0xF0582D64, 0x261B31C563C99AA4},
}

func TestVectors(t *testing.T) {
	t.Parallel()

	for _, v := range vectors {
		assert.Equal(t, v.h32, fnv1a.Sum32([]byte(v.in)), "Sum32(%q)", v.in)
		assert.Equal(t, v.h64, fnv1a.Sum64([]byte(v.in)), "Sum64(%q)", v.in)
		assert.Equal(t, v.seeded32, fnv1a.Hash32([]byte(v.in), testBasis), "Hash32(%q, basis)", v.in)
		assert.Equal(t, v.seeded64, fnv1a.Hash64([]byte(v.in), testBasis), "Hash64(%q, basis)", v.in)
	}
}

func TestEmptyInputKeepsBasis(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(fnv1a.DefaultBasis32), fnv1a.Sum32(nil))
	assert.Equal(t, uint64(fnv1a.DefaultBasis64), fnv1a.Sum64(nil))
}

func TestEvaluationPaths(t *testing.T) {
	t.Parallel()

	for _, v := range vectors {
		text := []byte(v.in + "\x00")

		assert.Equal(t, v.h32, fnv1a.HashText32(text, fnv1a.DefaultBasis32), "HashText32(%q)", v.in)
		assert.Equal(t, v.h32, fnv1a.HashConst32(v.in, fnv1a.DefaultBasis32), "HashConst32(%q)", v.in)
		assert.Equal(t, v.h64, fnv1a.HashText64(text, fnv1a.DefaultBasis64), "HashText64(%q)", v.in)
		assert.Equal(t, v.h64, fnv1a.HashConst64(v.in, fnv1a.DefaultBasis64), "HashConst64(%q)", v.in)
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	t.Parallel()

	data := make([]byte, 1024)
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 7, 8, 9, 100, len(data)} {
		h32 := fnv.New32a()
		_, _ = h32.Write(data[:n])
		assert.Equal(t, h32.Sum32(), fnv1a.Sum32(data[:n]), "length %d", n)

		h64 := fnv.New64a()
		_, _ = h64.Write(data[:n])
		assert.Equal(t, h64.Sum64(), fnv1a.Sum64(data[:n]), "length %d", n)
	}
}

func TestChaining(t *testing.T) {
	t.Parallel()

	first := fnv1a.Sum32([]byte("hello, "))
	assert.Equal(t, uint32(0x4D0EA41D), fnv1a.Hash32([]byte("world"), first))

	first64 := fnv1a.Sum64([]byte("hello, "))
	assert.Equal(t, uint64(0x17A1A4F267BE633D), fnv1a.Hash64([]byte("world"), first64))
}

func TestCustomPrime(t *testing.T) {
	t.Parallel()

	e32, err := fnv1a.NewEngine32(fnv1a.WithPrime32(0x01000197))
	require.NoError(t, err)

	e64, err := fnv1a.NewEngine64(fnv1a.WithPrime64(0x100000001B5))
	require.NoError(t, err)

	in := "custom prime"

	assert.Equal(t, uint32(0x01000197), e32.Prime())
	assert.NotEqual(t, fnv1a.Sum32([]byte(in)), e32.Hash([]byte(in), fnv1a.DefaultBasis32))
	assert.Equal(t, e32.Hash([]byte(in), 1), e32.HashConst(in, 1))
	assert.Equal(t, e32.Hash([]byte(in), 1), e32.HashText([]byte(in), 1))

	assert.Equal(t, uint64(0x100000001B5), e64.Prime())
	assert.NotEqual(t, fnv1a.Sum64([]byte(in)), e64.Hash([]byte(in), fnv1a.DefaultBasis64))
	assert.Equal(t, e64.Hash([]byte(in), 1), e64.HashConst(in, 1))
	assert.Equal(t, e64.Hash([]byte(in), 1), e64.HashText([]byte(in), 1))
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	_, err := fnv1a.NewEngine32(fnv1a.WithPrime32(0x01000192))
	require.ErrorIs(t, err, fnv1a.ErrEvenPrime)

	_, err = fnv1a.NewEngine64(fnv1a.WithPrime64(2))
	require.ErrorIs(t, err, fnv1a.ErrEvenPrime)

	e, err := fnv1a.NewEngine64()
	require.NoError(t, err)
	assert.Equal(t, uint64(fnv1a.DefaultPrime64), e.Prime())
}

func TestDigest(t *testing.T) {
	t.Parallel()

	data := []byte("hello, world")

	for split := 0; split <= len(data); split++ {
		d32 := fnv1a.New32(testBasis)
		_, _ = d32.Write(data[:split])
		_, _ = d32.Write(data[split:])
		assert.Equal(t, uint32(0xF0582D64), d32.Sum32(), "split at %d", split)

		d64 := fnv1a.New64(fnv1a.DefaultBasis64)
		_, _ = d64.Write(data[:split])
		_, _ = d64.Write(data[split:])
		assert.Equal(t, uint64(0x17A1A4F267BE633D), d64.Sum64(), "split at %d", split)
	}

	d := fnv1a.New64(fnv1a.DefaultBasis64)
	_, _ = d.Write([]byte("junk"))
	d.Reset()

	assert.Equal(t, []byte{0xCB, 0xF2, 0x9C, 0xE4, 0x84, 0x22, 0x23, 0x25}, d.Sum(nil))
	assert.Equal(t, 8, d.Size())
	assert.Equal(t, 4, fnv1a.New32(0).Size())
}
