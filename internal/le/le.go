// Package le loads little-endian words from byte slices independently of
// the host byte order.
//
// Two implementations exist and exactly one is compiled in. On 386, amd64,
// arm64 and ppc64le, which are little-endian and load unaligned words in
// hardware, the word is read directly from memory. Everywhere else, or when
// built with the purego tag, it is assembled byte by byte with shifts.
// Native reports which one was chosen. The shift form is tested on every
// host; run the tests with -tags purego to make it the compiled-in loader.
//
// Callers must guarantee that the slice holds at least the word width.
// Lengths are not checked.
package le
