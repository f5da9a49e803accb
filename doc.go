// Package fasthash provides fast non-cryptographic hashes and checksums for
// fingerprinting byte buffers and identifiers.
//
// # Overview
//
// Each algorithm lives in its own package and has no dependency on the
// others:
//   - crc32: table-driven or arithmetic CRC32 for any bit-reversed polynomial
//   - djb2: DJB2 and DJB2A
//   - fnv1a: 32-bit and 64-bit FNV-1a
//   - murmur2: MurMur2, MurMur2A and MurMur2-64
//   - murmur3: 32-bit MurMur3
//
// Every algorithm offers the same three evaluation paths, which return the
// same value for the same bytes and seed:
//   - Hash: a counted byte slice
//   - HashText: NUL-terminated text (the slice end counts as the terminator)
//   - HashConst: a string, through a pure recursive form with no loops and no
//     mutable state
//
// # Quick Start
//
// Direct calls into an algorithm package:
//
//	sum := murmur3.Hash([]byte("player_name"), murmur3.DefaultSeed)
//	crc := crc32.Sum(payload)
//
// Chaining a basis across buffers:
//
//	h := fnv1a.Sum32(header)
//	h = fnv1a.Hash32(body, h)
//
// Selecting an algorithm at run time:
//
//	alg, _ := fasthash.ParseAlgorithm("murmur2a")
//	sum, _ := fasthash.Hash(alg, data, fasthash.DefaultSeed(alg))
//
// # Streaming
//
// CRC32, DJB2, DJB2A, FNV-1a, MurMur2A and MurMur3 carry all state forward
// or mix the length last, so they are available as hash.Hash values through
// New. MurMur2 and MurMur2-64 seed the state with the total length and can
// only hash a complete buffer. DigestPool recycles digests in
// high-throughput code.
//
// # Thread Safety
//
// All functions are pure. Engines are immutable and may be shared by any
// number of goroutines; the only shared table (CRC32) is read-only once
// built. Digests hold per-stream state and belong to one goroutine at a
// time.
//
// # Non-goals
//
// None of these hashes resist deliberate collisions. Do not use them for
// authentication or integrity against an attacker.
package fasthash
