package extract

import (
	"regexp"
	"strings"
)

var (
	// Control characters other than tab and newline (CR is normalized first)
	controlCharRegex = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)

	// Runs of spaces/tabs; a lone tab survives
	spaceRunRegex = regexp.MustCompile(`[ \t]{2,}`)

	// Standalone page-number lines ("3", "Page 3", "3 of 12", "3/12")
	pageNumberRegex = regexp.MustCompile(`(?i)^\s*(?:page\s+)?\d{1,4}(?:\s*(?:of|/)\s*\d{1,4})?\s*$`)

	// Metadata-label lines that PDF producers leave in extracted text
	metadataLabelRegex = regexp.MustCompile(`(?i)^\s*(?:title|author|subject|keywords|creator|producer|creationdate|moddate):`)

	// Runs of blank lines beyond one
	blankLineRunRegex = regexp.MustCompile(`\n{3,}`)
)

// SanitizeText is the shared final pass every decoder's output goes through:
// line endings normalized to LF, page-number and metadata-label lines
// stripped, whitespace runs collapsed, blank-line runs reduced to at most
// one. Idempotent: sanitizing already-sanitized text is a no-op.
func SanitizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = controlCharRegex.ReplaceAllString(text, "")
	text = spaceRunRegex.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line != "" && (pageNumberRegex.MatchString(line) || metadataLabelRegex.MatchString(line)) {
			continue
		}
		kept = append(kept, line)
	}

	text = strings.Join(kept, "\n")
	text = blankLineRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
