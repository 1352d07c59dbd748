package extract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// documentXMLPath is the main document part inside a DOCX archive.
const documentXMLPath = "word/document.xml"

// paragraphNewlineRegex collapses newline runs produced by explicit break
// elements inside a single paragraph.
var paragraphNewlineRegex = regexp.MustCompile(`\n{2,}`)

// DOCXDecoder extracts paragraph text from .docx files (Office Open XML).
// It depends on the ZIP walker and the inflate adapter for the container;
// the XML itself is walked token by token.
type DOCXDecoder struct{}

// DecodeText implements the Decoder interface for DOCX files
func (d *DOCXDecoder) DecodeText(data []byte) (string, []string, error) {
	entry, err := findZipEntry(data, documentXMLPath)
	if err != nil {
		return "", nil, err
	}

	docXML, err := decompressEntry(entry.method, entry.payload)
	if err != nil {
		return "", nil, err
	}

	return assembleParagraphs(docXML)
}

// assembleParagraphs walks the document XML and reconstructs paragraph text.
// Within a paragraph, character data from any descendant element is kept (so
// nested formatting wrappers do not lose inner runs), an explicit tab element
// becomes a tab and an explicit break becomes a newline. Property subtrees
// (w:pPr, w:rPr) are skipped entirely: tab-stop definitions also use a "tab"
// element but carry no text.
func assembleParagraphs(docXML []byte) (string, []string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var paragraphs []string
	var warnings []string
	var current strings.Builder
	inParagraph := false
	skipDepth := 0
	emptyParagraphs := 0

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("parse document XML: %v: %w", err, ErrCorruptDocument)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 {
				skipDepth++
				continue
			}
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "pPr", "rPr":
				if inParagraph {
					skipDepth = 1
				}
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					current.WriteByte('\n')
				}
			}

		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				text := paragraphNewlineRegex.ReplaceAllString(current.String(), "\n")
				text = strings.TrimRight(text, " \t\n")
				if strings.TrimSpace(text) == "" {
					emptyParagraphs++
					continue
				}
				paragraphs = append(paragraphs, text)
			}

		case xml.CharData:
			if inParagraph && skipDepth == 0 {
				current.Write(t)
			}
		}
	}

	if emptyParagraphs > 0 && len(paragraphs) > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d empty paragraph(s)", emptyParagraphs))
	}

	return strings.Join(paragraphs, "\n"), warnings, nil
}
