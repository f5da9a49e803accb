package crc32_test

import (
	"crypto/rand"
	stdcrc32 "hash/crc32"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fasthash/crc32"
)

const testSeed = 0x9747B28C

var vectors = []struct {
	in     string
	want   uint32
	seeded uint32
}{
	{"", 0x00000000, 0x9747B28C},
	{"a", 0xE8B7BE43, 0x0C2E36FA},
	{"ab", 0x9E83486D, 0x2CDADACD},
	{"abc", 0x352441C2, 0xE340BBB8},
	{"abcd", 0xED82CD11, 0x5D8431C9},
	{"abcde", 0x8587D865, 0x0D3F847F},
	{"abcdef", 0x4B8E39EF, 0xB66478C9},
	{"abcdefg", 0x312A6AA6, 0xE3DA051A},
	{"abcdefgh", 0xAEEF2A50, 0x6CEA2598},
	{"abcdefghi", 0x8DA988AF, 0x18D4C722},
	{"123456789", 0xCBF43926, 0x5E8976AB},
	{"test", 0xD87F7E0C, 0x687982D4},
	{"The quick brown fox jumps over the lazy dog", 0x414FA339, 0x376C177F},
}

func engines(t *testing.T) map[string]*crc32.Engine {
	t.Helper()

	table, err := crc32.NewEngine()
	require.NoError(t, err)

	arith, err := crc32.NewEngine(crc32.WithoutTable())
	require.NoError(t, err)

	return map[string]*crc32.Engine{"table": table, "arithmetic": arith}
}

func TestHashVectors(t *testing.T) {
	t.Parallel()

	for _, v := range vectors {
		assert.Equal(t, v.want, crc32.Sum([]byte(v.in)), "Sum(%q)", v.in)
		assert.Equal(t, v.want, crc32.Hash([]byte(v.in), crc32.DefaultSeed), "Hash(%q)", v.in)
		assert.Equal(t, v.seeded, crc32.Hash([]byte(v.in), testSeed), "Hash(%q, seed)", v.in)
	}
}

// TestEvaluationPaths checks that counted, text and pure paths agree on
// every engine.
func TestEvaluationPaths(t *testing.T) {
	t.Parallel()

	for name, e := range engines(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for _, v := range vectors {
				for _, seed := range []uint32{crc32.DefaultSeed, testSeed} {
					want := crc32.Hash([]byte(v.in), seed)

					assert.Equal(t, want, e.Hash([]byte(v.in), seed), "Hash(%q)", v.in)
					assert.Equal(t, want, e.HashText([]byte(v.in+"\x00"), seed), "HashText(%q)", v.in)
					assert.Equal(t, want, e.HashConst(v.in, seed), "HashConst(%q)", v.in)
				}
			}
		})
	}
}

func TestHashTextStopsAtTerminator(t *testing.T) {
	t.Parallel()

	want := crc32.Sum([]byte("abc"))

	assert.Equal(t, want, crc32.HashText([]byte("abc\x00def"), 0))
	assert.Equal(t, want, crc32.HashText([]byte("abc"), 0))
	assert.Equal(t, uint32(0), crc32.HashText([]byte{0, 'x'}, 0))
}

func TestMatchesStandardLibrary(t *testing.T) {
	t.Parallel()

	data := make([]byte, 4096+3)
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 3, 4, 5, 63, 64, 1000, len(data)} {
		assert.Equal(t, stdcrc32.Update(testSeed, stdcrc32.IEEETable, data[:n]), crc32.Hash(data[:n], testSeed), "length %d", n)
		assert.Equal(t, stdcrc32.ChecksumIEEE(data[:n]), crc32.Sum(data[:n]), "length %d", n)
	}
}

func TestMakeTable(t *testing.T) {
	t.Parallel()

	for _, poly := range []uint32{stdcrc32.IEEE, stdcrc32.Castagnoli, stdcrc32.Koopman} {
		want := stdcrc32.MakeTable(poly)
		got := crc32.MakeTable(poly)

		assert.Equal(t, want[:], got[:], "polynomial %#08x", poly)
	}
}

func TestCustomPolynomial(t *testing.T) {
	t.Parallel()

	for _, opts := range [][]crc32.Option{
		{crc32.WithPolynomial(stdcrc32.Castagnoli)},
		{crc32.WithPolynomial(stdcrc32.Castagnoli), crc32.WithoutTable()},
	} {
		e, err := crc32.NewEngine(opts...)
		require.NoError(t, err)

		assert.Equal(t, uint32(stdcrc32.Castagnoli), e.Polynomial())
		assert.Equal(t, uint32(0xE3069283), e.Hash([]byte("123456789"), 0))
		assert.Equal(t, uint32(0xE3069283), e.HashConst("123456789", 0))
		assert.NotEqual(t, crc32.Sum([]byte("123456789")), e.Hash([]byte("123456789"), 0))
	}
}

func TestEngineTable(t *testing.T) {
	t.Parallel()

	e := engines(t)

	other, err := crc32.NewEngine(crc32.WithPolynomial(crc32.DefaultPolynomial))
	require.NoError(t, err)

	require.NotNil(t, e["table"].Table())
	assert.Nil(t, e["arithmetic"].Table())
	assert.Same(t, e["table"].Table(), other.Table(), "default polynomial shares one table")
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []crc32.Option
		wantErr error
	}{
		{name: "valid default", opts: nil},
		{name: "valid custom", opts: []crc32.Option{crc32.WithPolynomial(0x82F63B78)}},
		{name: "valid arithmetic", opts: []crc32.Option{crc32.WithoutTable()}},
		{name: "zero polynomial", opts: []crc32.Option{crc32.WithPolynomial(0)}, wantErr: crc32.ErrZeroPolynomial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := crc32.NewEngine(tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, e)
		})
	}
}

func TestChaining(t *testing.T) {
	t.Parallel()

	a, b := []byte("hello, "), []byte("world")

	assert.Equal(t, crc32.Sum([]byte("hello, world")), crc32.Hash(b, crc32.Sum(a)))
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	data := []byte("123456789")

	crc := uint32(crc32.DefaultSeed)
	for i := range data {
		crc = crc32.Update(crc, data[i:i+1])
	}

	assert.Equal(t, uint32(0xCBF43926), crc)

	for name, e := range engines(t) {
		got := e.Update(e.Update(0, data[:4]), data[4:])
		assert.Equal(t, e.Hash(data, 0), got, name)
		assert.Equal(t, stdcrc32.Update(0, stdcrc32.IEEETable, data), got, name)
	}
}

func TestDigest(t *testing.T) {
	t.Parallel()

	data := []byte("The quick brown fox jumps over the lazy dog")

	for name, e := range engines(t) {
		for split := 0; split <= len(data); split++ {
			d := e.New(testSeed)
			_, _ = d.Write(data[:split])
			_, _ = d.Write(data[split:])

			assert.Equal(t, uint32(0x376C177F), d.Sum32(), "%s split at %d", name, split)
		}
	}

	d := crc32.New(0)
	_, _ = d.Write([]byte("junk"))
	d.Reset()
	_, _ = d.Write([]byte("123456789"))

	assert.Equal(t, crc32.Size, d.Size())
	assert.Equal(t, 1, d.BlockSize())
	assert.Equal(t, []byte{0xCB, 0xF4, 0x39, 0x26}, d.Sum(nil))
}

// TestConcurrentUse hashes from many goroutines while the default table
// is being built.
func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup

	const workers = 10

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, v := range vectors {
				if got := crc32.Sum([]byte(v.in)); got != v.want {
					t.Errorf("Sum(%q) = %#08x, want %#08x", v.in, got, v.want)
				}
			}
		}()
	}

	wg.Wait()
}
