package extract

import "errors"

// Error kinds surfaced by Extract. Decoders wrap these with context via
// fmt.Errorf("...: %w", ...); callers match with errors.Is.
var (
	// ErrCorruptArchive means a ZIP structural invariant was violated
	// (missing end-of-central-directory record, bad signature, offsets
	// pointing outside the buffer).
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrMissingEntry means the archive is well-formed but the required
	// internal path is absent.
	ErrMissingEntry = errors.New("missing archive entry")

	// ErrDecompressionUnsupported means the entry uses a compression
	// method other than stored or deflate.
	ErrDecompressionUnsupported = errors.New("decompression unsupported")

	// ErrCorruptDocument means the decompressed document XML failed to parse.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrEmptyExtraction means the decode succeeded structurally but
	// produced no non-whitespace text (e.g. an image-only PDF). Callers
	// should prompt for a different file rather than report a hard failure.
	ErrEmptyExtraction = errors.New("no text found in document")

	// ErrUnknownFormat means the format tag has no registered decoder.
	// Callers normally reject unrecognized extensions before calling Extract.
	ErrUnknownFormat = errors.New("unknown document format")
)
