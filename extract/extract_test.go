package extract

import (
	"errors"
	"strings"
	"testing"

	"doc-text/config"
)

func TestExtractDocxRoundTrip(t *testing.T) {
	// Minimal hand-built ZIP: one stored word/document.xml with a single
	// paragraph "Hello\tWorld".
	xml := wrapDocumentXML(paragraph(
		textRun("Hello") + "<w:r><w:tab/></w:r>" + textRun("World"),
	))
	archive := buildZip(t, zipTestEntry{name: "word/document.xml", method: zipMethodStored, data: xml})

	result, err := Extract(archive, config.FormatDOCX)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Body != "Hello\tWorld" {
		t.Errorf("Body = %q, want %q", result.Body, "Hello\tWorld")
	}
}

func TestExtractDocxParagraphsBecomeLines(t *testing.T) {
	paragraphs := []string{
		"Jane Doe",
		"Senior Platform Engineer",
		"Led migration of billing services to Kubernetes",
		"Mentored four junior engineers",
	}
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(paragraph(textRun(p)))
	}
	archive := buildZip(t, zipTestEntry{
		name:   "word/document.xml",
		method: zipMethodDeflate,
		data:   deflateBytes(t, wrapDocumentXML(body.String())),
	})

	result, err := Extract(archive, config.FormatDOCX)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	lines := strings.Split(result.Body, "\n")
	if len(lines) != len(paragraphs) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(paragraphs), result.Body)
	}
	for i, want := range paragraphs {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestExtractDocxCorruptArchive(t *testing.T) {
	_, err := Extract([]byte("not a zip at all"), config.FormatDOCX)
	if !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("err = %v, want ErrCorruptArchive", err)
	}
}

func TestExtractDocxCorruptDocumentXML(t *testing.T) {
	archive := buildZip(t, zipTestEntry{
		name:   "word/document.xml",
		method: zipMethodStored,
		data:   []byte("<w:document><w:body><w:p>unclosed"),
	})

	_, err := Extract(archive, config.FormatDOCX)
	if !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("err = %v, want ErrCorruptDocument", err)
	}
}

func TestExtractPlainText(t *testing.T) {
	result, err := Extract([]byte("line one\r\nline two\r\n"), config.FormatText)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Body != "line one\nline two" {
		t.Errorf("Body = %q", result.Body)
	}
}

func TestExtractMarkdownKeptVerbatim(t *testing.T) {
	src := "# Jane Doe\n\n- Go\n- Postgres"
	result, err := Extract([]byte(src), config.FormatMarkdown)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(result.Body, "# Jane Doe") {
		t.Errorf("Body = %q, markdown markup should be preserved", result.Body)
	}
}

func TestExtractEmptyExtraction(t *testing.T) {
	_, err := Extract([]byte("   \n\t \n  "), config.FormatText)
	if !errors.Is(err, ErrEmptyExtraction) {
		t.Fatalf("err = %v, want ErrEmptyExtraction", err)
	}
}

func TestExtractImageOnlyPDFEmptyExtraction(t *testing.T) {
	var data strings.Builder
	data.WriteString("%PDF-1.3\n")
	for i := 0; i < 4; i++ {
		for b := 0; b < 256; b++ {
			data.WriteByte(byte(b))
		}
	}

	_, err := Extract([]byte(data.String()), config.FormatPDF)
	if !errors.Is(err, ErrEmptyExtraction) {
		t.Fatalf("err = %v, want ErrEmptyExtraction", err)
	}
}

func TestExtractPDFSimpleShow(t *testing.T) {
	result, err := Extract([]byte("%PDF-1.4\nBT (Hello) Tj ET\n"), config.FormatPDF)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Body != "Hello" {
		t.Errorf("Body = %q, want %q", result.Body, "Hello")
	}
}

func TestExtractRTF(t *testing.T) {
	result, err := Extract([]byte(`{\rtf1 Objective\par Build reliable systems}`), config.FormatRTF)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "Objective\nBuild reliable systems"
	if result.Body != want {
		t.Errorf("Body = %q, want %q", result.Body, want)
	}
}

func TestExtractUnknownFormat(t *testing.T) {
	_, err := Extract([]byte("data"), config.Format("xlsx"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	archive := buildZip(t, zipTestEntry{
		name:   "word/document.xml",
		method: zipMethodDeflate,
		data:   deflateBytes(t, wrapDocumentXML(paragraph(textRun("same in, same out")))),
	})

	first, err := Extract(archive, config.FormatDOCX)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Extract(archive, config.FormatDOCX)
		if err != nil {
			t.Fatalf("Extract repeat %d: %v", i, err)
		}
		if again.Body != first.Body {
			t.Fatalf("repeat %d: Body = %q, want %q", i, again.Body, first.Body)
		}
	}
}

func TestGetDecoderCoversAllFormats(t *testing.T) {
	reg := NewDecoderRegistry()
	for _, format := range []config.Format{
		config.FormatText, config.FormatMarkdown, config.FormatRTF,
		config.FormatPDF, config.FormatDOCX,
	} {
		if _, ok := reg.GetDecoder(format); !ok {
			t.Errorf("no decoder registered for %q", format)
		}
	}
}
