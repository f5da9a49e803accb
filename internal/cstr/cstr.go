// Package cstr handles NUL-terminated text held in byte slices.
package cstr

import "bytes"

// Len returns the number of bytes before the first NUL in text. A slice
// without a NUL is taken to end at len(text).
func Len(text []byte) int {
	if n := bytes.IndexByte(text, 0); n >= 0 {
		return n
	}

	return len(text)
}

// Trim returns text cut at its terminator.
func Trim(text []byte) []byte {
	return text[:Len(text)]
}
