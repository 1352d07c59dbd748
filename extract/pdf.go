package extract

import (
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/text/encoding/charmap"
)

// Caps for the best-effort FlateDecode stream expansion.
const (
	maxInflatedStreams   = 512
	maxInflatedStreamLen = 8 << 20 // 8 MiB per stream
)

// PDFDecoder extracts visible text from .pdf files, best-effort. It scans
// for the two text-showing operator forms (literal shows and array shows)
// in the order they appear in the byte stream. That order is not guaranteed
// to match visual reading order for multi-column layouts; this is a known,
// accepted approximation.
type PDFDecoder struct{}

// DecodeText implements the Decoder interface for PDF files
func (d *PDFDecoder) DecodeText(data []byte) (string, []string, error) {
	// Content streams are byte-oriented, not Unicode. Decoding as Latin-1
	// maps every byte to exactly one rune, so string boundaries survive.
	src := latin1String(data)

	lines := tokenizeContent(src)

	// FlateDecode content streams hide their operators behind zlib framing;
	// inflate each stream segment and scan those bytes too.
	for _, seg := range inflatedStreams(data) {
		lines = append(lines, tokenizeContent(latin1String(seg))...)
	}

	if len(lines) == 0 {
		// A plain-text file misidentified as PDF has no operators either;
		// return it verbatim rather than failing. Binary buffers (image-only
		// PDFs) do not qualify and end up as an empty extraction.
		if looksLikeText(src) {
			return src, []string{"no text-showing operators found; returning raw content"}, nil
		}
		return "", []string{"no text-showing operators found"}, nil
	}

	return strings.Join(lines, "\n"), nil, nil
}

// latin1String decodes a byte buffer as ISO 8859-1 text (one rune per byte).
func latin1String(data []byte) string {
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(out)
}

// tokenizeContent scans decoded content bytes for text-showing tokens and
// returns one line per recognized token.
func tokenizeContent(src string) []string {
	var lines []string
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(':
			text, next, ok := scanStringLiteral(src, i)
			if !ok {
				// Unclosed literal: resync at the next byte so tokens
				// later in the buffer are still collected.
				continue
			}
			if after, matched := operatorAt(src, next, "Tj"); matched {
				lines = append(lines, text)
				i = after - 1
			} else {
				i = next - 1
			}
		case '[':
			if text, next, ok := scanArrayShow(src, i); ok {
				lines = append(lines, text)
				i = next - 1
			}
			// Otherwise keep scanning inside the bracket: any literal in
			// there is only emitted if it turns out to be a simple show.
		}
	}
	return lines
}

// scanStringLiteral parses a parenthesized PDF string literal starting at
// src[start] == '(' and returns the unescaped body and the index just past
// the closing parenthesis. Balanced unescaped parentheses inside the body
// are legal and kept literally.
func scanStringLiteral(src string, start int) (string, int, bool) {
	var out strings.Builder
	depth := 1
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch c {
		case '\\':
			if i+1 >= len(src) {
				return "", 0, false
			}
			out.WriteByte(unescapePDF(src[i+1]))
			i += 2
			continue
		case '(':
			depth++
			out.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				return out.String(), i + 1, true
			}
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
		i++
	}
	return "", 0, false
}

// unescapePDF maps the character after a backslash in a string literal.
// Unknown escapes keep the escaped character itself.
func unescapePDF(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'f':
		return '\f'
	default:
		// covers \( \) \\ and anything else
		return c
	}
}

// scanArrayShow parses a bracketed array of string literals interleaved with
// numeric kerning adjustments, starting at src[start] == '['. If the array is
// immediately followed by the TJ operator, the concatenated string segments
// are returned as one line. Any non-string, non-numeric element disqualifies
// the array.
func scanArrayShow(src string, start int) (string, int, bool) {
	var out strings.Builder
	i := start + 1
	for i < len(src) {
		c := src[i]
		switch {
		case c == ']':
			after, matched := operatorAt(src, i+1, "TJ")
			if !matched {
				return "", 0, false
			}
			return out.String(), after, true
		case c == '(':
			text, next, ok := scanStringLiteral(src, i)
			if !ok {
				return "", 0, false
			}
			out.WriteString(text)
			i = next
		case isPDFWhitespace(c) || isNumericChar(c):
			i++
		default:
			return "", 0, false
		}
	}
	return "", 0, false
}

// operatorAt skips whitespace from position i and reports whether the named
// operator follows, delimited on its right. Returns the index just past it.
func operatorAt(src string, i int, op string) (int, bool) {
	for i < len(src) && isPDFWhitespace(src[i]) {
		i++
	}
	if i+len(op) > len(src) || src[i:i+len(op)] != op {
		return 0, false
	}
	end := i + len(op)
	if end < len(src) && isRegularChar(src[end]) {
		return 0, false
	}
	return end, true
}

func isPDFWhitespace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isNumericChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
}

// isRegularChar reports whether c would extend an operator token.
func isRegularChar(c byte) bool {
	return !isPDFWhitespace(c) && !strings.ContainsRune("()<>[]{}/%", rune(c))
}

// inflatedStreams finds stream…endstream segments and returns the inflated
// bytes of those that carry zlib framing (FlateDecode). Anything that fails
// to inflate is skipped; this path is purely additive.
func inflatedStreams(data []byte) [][]byte {
	var segments [][]byte
	streamWord := []byte("stream")
	endWord := []byte("endstream")

	off := 0
	for len(segments) < maxInflatedStreams {
		idx := bytes.Index(data[off:], streamWord)
		if idx < 0 {
			break
		}
		begin := off + idx + len(streamWord)
		// The stream keyword is followed by CRLF or LF before the data.
		if begin < len(data) && data[begin] == '\r' {
			begin++
		}
		if begin < len(data) && data[begin] == '\n' {
			begin++
		}
		endIdx := bytes.Index(data[begin:], endWord)
		if endIdx < 0 {
			break
		}
		raw := data[begin : begin+endIdx]
		off = begin + endIdx + len(endWord)

		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		inflated, err := io.ReadAll(io.LimitReader(zr, maxInflatedStreamLen))
		zr.Close()
		if err != nil || len(inflated) == 0 {
			continue
		}
		segments = append(segments, inflated)
	}
	return segments
}

// looksLikeText reports whether a decoded buffer is predominantly printable,
// which is what a misnamed plain-text upload looks like.
func looksLikeText(src string) bool {
	if len(src) == 0 {
		return false
	}
	printable := 0
	total := 0
	for _, r := range src {
		total++
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r < 0x7f) || unicode.IsLetter(r) {
			printable++
		}
	}
	return printable*100 >= total*85
}
