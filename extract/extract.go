// Package extract turns uploaded document bytes (PDF, DOCX, RTF, plain text)
// into normalized plain text without external parsing libraries. Extraction
// is a pure function of the input buffer: no shared mutable state, no I/O,
// deterministic for a given byte sequence. The input buffer is never retained
// past the call.
package extract

import (
	"fmt"
	"strings"

	"doc-text/config"
)

// ExtractedText is the engine's only externally visible output. Warnings
// record recoverable anomalies (a dropped empty paragraph, a fallback path
// taken) without failing the whole extraction.
type ExtractedText struct {
	Body     string
	Warnings []string
}

// Decoder defines the interface for turning one format's raw bytes into text
type Decoder interface {
	// DecodeText takes raw file bytes and returns extracted text plus any
	// recoverable-anomaly warnings
	DecodeText(data []byte) (string, []string, error)
}

// DecoderRegistry holds decoders for the supported document formats
type DecoderRegistry struct {
	decoders map[config.Format]Decoder
}

// NewDecoderRegistry creates a new registry with built-in decoders
func NewDecoderRegistry() *DecoderRegistry {
	reg := &DecoderRegistry{
		decoders: make(map[config.Format]Decoder),
	}
	reg.registerBuiltIns()
	return reg
}

// registerBuiltIns registers the built-in decoders for supported formats
func (r *DecoderRegistry) registerBuiltIns() {
	// Markdown is decoded as plain text: the consumer is a keyword matcher
	// and markup punctuation is harmless.
	r.decoders[config.FormatText] = &PlainTextDecoder{}
	r.decoders[config.FormatMarkdown] = &PlainTextDecoder{}

	r.decoders[config.FormatRTF] = &RTFDecoder{}
	r.decoders[config.FormatPDF] = &PDFDecoder{}
	r.decoders[config.FormatDOCX] = &DOCXDecoder{}
}

// GetDecoder returns the decoder registered for a format tag
func (r *DecoderRegistry) GetDecoder(format config.Format) (Decoder, bool) {
	decoder, exists := r.decoders[format]
	return decoder, exists
}

// Extract dispatches to exactly one decoder for the declared format, runs
// the shared sanitizer over its output, and returns the result. A decode
// that succeeds structurally but yields no non-whitespace text is reported
// as ErrEmptyExtraction so callers can prompt for a different file.
func (r *DecoderRegistry) Extract(data []byte, format config.Format) (ExtractedText, error) {
	decoder, ok := r.decoders[format]
	if !ok {
		return ExtractedText{}, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	raw, warnings, err := decoder.DecodeText(data)
	if err != nil {
		return ExtractedText{}, err
	}

	body := SanitizeText(raw)
	if strings.TrimSpace(body) == "" {
		return ExtractedText{}, ErrEmptyExtraction
	}

	return ExtractedText{Body: body, Warnings: warnings}, nil
}

var defaultRegistry = NewDecoderRegistry()

// Extract runs the default registry. See DecoderRegistry.Extract.
func Extract(data []byte, format config.Format) (ExtractedText, error) {
	return defaultRegistry.Extract(data, format)
}

// PlainTextDecoder passes text and markdown buffers through unchanged; the
// shared sanitizer does the normalization.
type PlainTextDecoder struct{}

// DecodeText implements the Decoder interface for plain text files
func (d *PlainTextDecoder) DecodeText(data []byte) (string, []string, error) {
	return string(data), nil, nil
}
