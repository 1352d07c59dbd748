package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	// \'XX hex-escaped characters (code page 1252 in practice)
	rtfHexEscapeRegex = regexp.MustCompile(`\\'[0-9a-fA-F]{2}`)

	// Paragraph and line breaks, converted before the generic strip so the
	// break survives as a newline.
	rtfBreakRegex = regexp.MustCompile(`\\(?:par|line)\b ?`)
	rtfTabRegex   = regexp.MustCompile(`\\tab\b ?`)

	// Control words: backslash, letters, optional numeric parameter, and the
	// single space that terminates the word when present.
	rtfControlWordRegex = regexp.MustCompile(`\\[a-zA-Z]+(?:-?\d+)? ?`)

	// Control symbols: backslash followed by a single non-letter.
	rtfControlSymbolRegex = regexp.MustCompile(`\\[^a-zA-Z]`)

	// Escaped literals are protected with placeholder bytes before the strip
	// passes and restored afterward, so \\ \{ \} come through as characters
	// instead of being removed as control symbols or group braces.
	rtfProtectLiterals = strings.NewReplacer(`\\`, "\x00", `\{`, "\x01", `\}`, "\x02")
	rtfRestoreLiterals = strings.NewReplacer("\x00", `\`, "\x01", "{", "\x02", "}")
)

// rtfDestinations are group types that carry document machinery rather than
// body text; their whole brace-delimited group is removed.
var rtfDestinations = []string{
	"fonttbl", "colortbl", "stylesheet", "info", "generator", "pict",
	"object", "themedata", "listtable", "listoverridetable",
	"header", "footer",
}

// RTFDecoder extracts plain text from .rtf files (Rich Text Format).
// Best-effort stripping: RTF control groups rarely nest pathologically in
// resume documents, so a lightweight removal pass is enough.
type RTFDecoder struct{}

// DecodeText implements the Decoder interface for RTF files
func (d *RTFDecoder) DecodeText(data []byte) (string, []string, error) {
	text := string(data)

	text = rtfProtectLiterals.Replace(text)
	text = removeDestinationGroups(text)

	// Decode \'XX hex escapes before any other backslash handling; resumes
	// saved by Word use code page 1252 for these.
	text = rtfHexEscapeRegex.ReplaceAllStringFunc(text, func(esc string) string {
		b := hexByte(esc[2], esc[3])
		return string(charmap.Windows1252.DecodeByte(b))
	})

	text = rtfBreakRegex.ReplaceAllString(text, "\n")
	text = rtfTabRegex.ReplaceAllString(text, "\t")
	text = rtfControlWordRegex.ReplaceAllString(text, "")
	text = rtfControlSymbolRegex.ReplaceAllString(text, "")

	// Collapse leftover group braces
	text = strings.ReplaceAll(text, "{", "")
	text = strings.ReplaceAll(text, "}", "")

	text = rtfRestoreLiterals.Replace(text)

	return text, nil, nil
}

// removeDestinationGroups drops {\*…} groups and the named non-text
// destinations, walking a brace counter so nested subgroups inside a
// destination go with it. Unterminated groups are truncated at end of input.
func removeDestinationGroups(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] == '{' && isDestinationStart(text[i:]) {
			depth := 0
			j := i
			for ; j < len(text); j++ {
				switch text[j] {
				case '\\':
					j++ // skip escaped character
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
			}
			i = j + 1
			continue
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String()
}

// isDestinationStart reports whether s begins a group whose control word
// names a non-text destination.
func isDestinationStart(s string) bool {
	if len(s) < 3 || s[0] != '{' || s[1] != '\\' {
		return false
	}
	rest := s[2:]
	if rest[0] == '*' {
		return true
	}
	for _, dest := range rtfDestinations {
		if strings.HasPrefix(rest, dest) {
			return true
		}
	}
	return false
}

func hexByte(hi, lo byte) byte {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
