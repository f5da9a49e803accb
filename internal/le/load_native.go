//go:build (386 || amd64 || arm64 || ppc64le) && !purego

package le

import "unsafe"

// Native is true when words are loaded straight from memory.
const Native = true

// Uint32 returns b[0:4] as a little-endian uint32.
func Uint32(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Uint64 returns b[0:8] as a little-endian uint64.
func Uint64(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(unsafe.SliceData(b)))
}
