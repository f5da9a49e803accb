package fasthash

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAlgorithm is returned for an Algorithm value or name that
	// does not exist.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrNotStreamable is returned by New for algorithms that need the
	// whole input up front.
	ErrNotStreamable = errors.New("algorithm cannot be streamed")
)

// Algorithm identifies one hash algorithm.
type Algorithm uint8

const (
	CRC32 Algorithm = iota + 1
	DJB2
	DJB2A
	FNV1A
	FNV1A64
	MurMur2
	MurMur2A
	MurMur2_64 //nolint:revive // matches the published name
	MurMur3
)

var names = [...]string{
	CRC32:      "crc32",
	DJB2:       "djb2",
	DJB2A:      "djb2a",
	FNV1A:      "fnv1a",
	FNV1A64:    "fnv1a64",
	MurMur2:    "murmur2",
	MurMur2A:   "murmur2a",
	MurMur2_64: "murmur2_64",
	MurMur3:    "murmur3",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(names)-1)
	for a := CRC32; a <= MurMur3; a++ {
		algs = append(algs, a)
	}

	return algs
}

// ParseAlgorithm returns the Algorithm with the given name. Matching is
// case-insensitive and ignores '-' versus '_'.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")

	for a := CRC32; a <= MurMur3; a++ {
		if names[a] == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= CRC32 && a <= MurMur3
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}

	return names[a]
}

// Width returns the result width in bits: 32 or 64. It returns 0 for an
// unknown algorithm.
func (a Algorithm) Width() int {
	switch a {
	case FNV1A64, MurMur2_64:
		return 64
	case CRC32, DJB2, DJB2A, FNV1A, MurMur2, MurMur2A, MurMur3:
		return 32
	default:
		return 0
	}
}

// Streamable reports whether New can build a digest for a.
func (a Algorithm) Streamable() bool {
	return a.Valid() && a != MurMur2 && a != MurMur2_64
}
