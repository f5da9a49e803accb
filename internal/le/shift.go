package le

// shift32 assembles b[0:4] with shifts. It is correct on every host and
// at every alignment.
func shift32(b []byte) uint32 {
	_ = b[3]

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// shift64 assembles b[0:8] with shifts.
func shift64(b []byte) uint64 {
	_ = b[7]

	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
