package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// decompressEntry turns one archive entry's compressed byte range into its
// decompressed form. Stored entries pass through unchanged; deflated entries
// go through a raw-DEFLATE reader (no zlib/gzip wrapper). The reader is fed
// only the declared payload range, so a stream that claims to continue past
// the entry boundary hits EOF instead of neighboring bytes.
func decompressEntry(method uint16, payload []byte) ([]byte, error) {
	switch method {
	case zipMethodStored:
		return payload, nil
	case zipMethodDeflate:
		fr := flate.NewReader(bytes.NewReader(payload))
		defer fr.Close()
		out, err := io.ReadAll(fr)
		if err != nil {
			return nil, fmt.Errorf("inflate entry: %v: %w", err, ErrCorruptArchive)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("compression method %d: %w", method, ErrDecompressionUnsupported)
	}
}
