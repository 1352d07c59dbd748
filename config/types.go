package config

import (
	"path/filepath"
	"strings"
)

// Format identifies one of the document formats the engine can decode.
// The caller chooses the format from the file name; the engine never
// sniffs magic bytes.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatRTF      Format = "rtf"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// extensionFormats maps file extensions (without dot) to their format tag
var extensionFormats = map[string]Format{
	"txt":      FormatText,
	"text":     FormatText,
	"log":      FormatText,
	"md":       FormatMarkdown,
	"markdown": FormatMarkdown,
	"rtf":      FormatRTF,
	"pdf":      FormatPDF,
	"docx":     FormatDOCX,
}

// FormatForFile returns the format tag for a file name based on its
// extension. The second result is false for unrecognized extensions.
func FormatForFile(filename string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	format, ok := extensionFormats[ext]
	return format, ok
}

// ParseFormat validates a format tag given directly (e.g. via --format).
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(s)) {
	case FormatText, FormatMarkdown, FormatRTF, FormatPDF, FormatDOCX:
		return Format(strings.ToLower(s)), true
	}
	return "", false
}

// SupportedExtensions lists the recognized file extensions, for usage output.
func SupportedExtensions() []string {
	return []string{"txt", "text", "log", "md", "markdown", "rtf", "pdf", "docx"}
}
