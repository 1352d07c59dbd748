package extract

import "encoding/binary"

// byteReader wraps an immutable buffer with bounds-checked little-endian
// reads at arbitrary offsets. Every offset computed from an untrusted header
// field goes through these accessors; a false result means the field pointed
// outside the buffer.
type byteReader struct {
	data []byte
}

func (r byteReader) size() int {
	return len(r.data)
}

// u16 reads a little-endian uint16 at off.
func (r byteReader) u16(off int) (uint16, bool) {
	if off < 0 || off+2 > len(r.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(r.data[off:]), true
}

// u32 reads a little-endian uint32 at off.
func (r byteReader) u32(off int) (uint32, bool) {
	if off < 0 || off+4 > len(r.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(r.data[off:]), true
}

// bytes returns the n-byte slice starting at off. The slice aliases the
// underlying buffer; callers must not mutate it.
func (r byteReader) bytes(off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off+n > len(r.data) {
		return nil, false
	}
	return r.data[off : off+n], true
}
