//go:build !(386 || amd64 || arm64 || ppc64le) || purego

package le

// Native is false when words are assembled byte by byte.
const Native = false

// Uint32 returns b[0:4] as a little-endian uint32.
func Uint32(b []byte) uint32 {
	return shift32(b)
}

// Uint64 returns b[0:8] as a little-endian uint64.
func Uint64(b []byte) uint64 {
	return shift64(b)
}
