package extract

import "fmt"

// ZIP record signatures and fixed sizes, per the PKWARE APPNOTE layout.
const (
	zipEOCDSignature       = 0x06054b50
	zipCentralDirSignature = 0x02014b50
	zipLocalSignature      = 0x04034b50

	zipEOCDMinSize       = 22
	zipMaxCommentSize    = 65535
	zipCentralHeaderSize = 46
	zipLocalHeaderSize   = 30

	zipMethodStored  = 0
	zipMethodDeflate = 8
)

// zipEntry is one resolved archive entry: its compression method and the
// exact byte range of its compressed payload.
type zipEntry struct {
	method  uint16
	payload []byte
}

// findZipEntry locates the named entry in a ZIP buffer by walking the
// central directory. The first entry matching the target path wins,
// deterministic by directory order. A payload slice aliases the input
// buffer; nothing is copied.
func findZipEntry(data []byte, name string) (zipEntry, error) {
	r := byteReader{data}

	eocd, err := findEndOfCentralDirectory(r)
	if err != nil {
		return zipEntry{}, err
	}

	off := int(eocd.centralDirOffset)
	for i := 0; i < int(eocd.totalEntries); i++ {
		sig, ok := r.u32(off)
		if !ok || sig != zipCentralDirSignature {
			return zipEntry{}, fmt.Errorf("central directory record %d: bad signature: %w", i, ErrCorruptArchive)
		}

		method, _ := r.u16(off + 10)
		compressedSize, _ := r.u32(off + 20)
		nameLen, _ := r.u16(off + 28)
		extraLen, _ := r.u16(off + 30)
		commentLen, _ := r.u16(off + 32)
		localOffset, ok := r.u32(off + 42)
		if !ok {
			return zipEntry{}, fmt.Errorf("central directory record %d: truncated: %w", i, ErrCorruptArchive)
		}

		nameBytes, ok := r.bytes(off+zipCentralHeaderSize, int(nameLen))
		if !ok {
			return zipEntry{}, fmt.Errorf("central directory record %d: name out of range: %w", i, ErrCorruptArchive)
		}

		if string(nameBytes) == name {
			payload, err := resolveLocalPayload(r, int(localOffset), int(compressedSize))
			if err != nil {
				return zipEntry{}, err
			}
			return zipEntry{method: method, payload: payload}, nil
		}

		off += zipCentralHeaderSize + int(nameLen) + int(extraLen) + int(commentLen)
	}

	return zipEntry{}, fmt.Errorf("%q: %w", name, ErrMissingEntry)
}

// zipEndOfCentralDirectory holds the two fields the walker needs from the
// trailer record.
type zipEndOfCentralDirectory struct {
	centralDirOffset uint32
	totalEntries     uint16
}

// findEndOfCentralDirectory scans backward from the end of the buffer for
// the EOCD signature. The record is 22 bytes plus a comment of at most
// 65535 bytes, so the scan is bounded to the last 65557 bytes; reaching
// that bound (or the start of the buffer) without a match means the buffer
// is not a ZIP archive.
func findEndOfCentralDirectory(r byteReader) (zipEndOfCentralDirectory, error) {
	start := r.size() - zipEOCDMinSize
	floor := r.size() - zipEOCDMinSize - zipMaxCommentSize
	if floor < 0 {
		floor = 0
	}

	for off := start; off >= floor; off-- {
		sig, ok := r.u32(off)
		if !ok || sig != zipEOCDSignature {
			continue
		}
		totalEntries, _ := r.u16(off + 10)
		centralDirOffset, ok := r.u32(off + 16)
		if !ok {
			continue
		}
		return zipEndOfCentralDirectory{
			centralDirOffset: centralDirOffset,
			totalEntries:     totalEntries,
		}, nil
	}

	return zipEndOfCentralDirectory{}, fmt.Errorf("end of central directory not found: %w", ErrCorruptArchive)
}

// resolveLocalPayload reads the local file header at localOffset and returns
// the compressed payload that immediately follows it. The local header
// carries its own name/extra lengths, which can differ from the central
// directory's copies.
func resolveLocalPayload(r byteReader, localOffset, compressedSize int) ([]byte, error) {
	sig, ok := r.u32(localOffset)
	if !ok || sig != zipLocalSignature {
		return nil, fmt.Errorf("local file header: bad signature: %w", ErrCorruptArchive)
	}

	nameLen, _ := r.u16(localOffset + 26)
	extraLen, ok := r.u16(localOffset + 28)
	if !ok {
		return nil, fmt.Errorf("local file header: truncated: %w", ErrCorruptArchive)
	}

	dataOffset := localOffset + zipLocalHeaderSize + int(nameLen) + int(extraLen)
	payload, ok := r.bytes(dataOffset, compressedSize)
	if !ok {
		return nil, fmt.Errorf("entry payload out of range: %w", ErrCorruptArchive)
	}
	return payload, nil
}
