package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestPDFSimpleShow(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\nBT /F1 12 Tf (Hello) Tj ET\nendobj\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "Hello" {
		t.Errorf("text = %q, want %q", text, "Hello")
	}
}

func TestPDFArrayShow(t *testing.T) {
	data := []byte("%PDF-1.4\nBT [(Hel) -20 (lo)] TJ ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "Hello" {
		t.Errorf("text = %q, want %q (kerning numbers ignored)", text, "Hello")
	}
}

func TestPDFTokensInByteOrder(t *testing.T) {
	data := []byte("%PDF-1.4\nBT (First line) Tj ET\nBT [(Sec) 3 (ond)] TJ ET\nBT (Third) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	want := "First line\nSecond\nThird"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestPDFStringEscapes(t *testing.T) {
	data := []byte(`%PDF-1.4` + "\n" + `BT (a\(b\)c \\ d\te) Tj ET` + "\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	want := "a(b)c \\ d\te"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestPDFBalancedParensInLiteral(t *testing.T) {
	data := []byte("%PDF-1.4\nBT (outer (inner) outer) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	want := "outer (inner) outer"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestPDFLiteralWithoutOperatorIgnored(t *testing.T) {
	// A literal that is not followed by Tj is not a text-showing token.
	data := []byte("%PDF-1.4\n(/Producer value) Td\nBT (Shown) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "Shown" {
		t.Errorf("text = %q, want %q", text, "Shown")
	}
}

func TestPDFArrayWithNonStringElementIgnored(t *testing.T) {
	data := []byte("%PDF-1.4\n[/Name (not a show)] TJ\nBT (Real) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "Real" {
		t.Errorf("text = %q, want %q", text, "Real")
	}
}

func TestPDFUnclosedLiteralDoesNotTruncateScan(t *testing.T) {
	// An unterminated string literal must not swallow the rest of the scan.
	data := []byte("%PDF-1.4\n(never closed BT (Later) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "Later" {
		t.Errorf("text = %q, want %q (tokens after the bad literal must survive)", text, "Later")
	}
}

func TestPDFFlateDecodeStream(t *testing.T) {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write([]byte("BT (Compressed content) Tj ET")); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	var data bytes.Buffer
	data.WriteString("%PDF-1.4\n4 0 obj\n<< /Filter /FlateDecode >>\nstream\n")
	data.Write(compressed.Bytes())
	data.WriteString("\nendstream\nendobj\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data.Bytes())
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if !strings.Contains(text, "Compressed content") {
		t.Errorf("text = %q, want it to contain %q", text, "Compressed content")
	}
}

func TestPDFVerbatimFallbackForPlainText(t *testing.T) {
	data := []byte("This is an ordinary text file that was uploaded with a .pdf name.\nIt has no operators at all.")

	text, warnings, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != string(data) {
		t.Errorf("text = %q, want verbatim input", text)
	}
	if len(warnings) == 0 {
		t.Error("expected a fallback warning")
	}
}

func TestPDFBinaryNoTokensYieldsNothing(t *testing.T) {
	// An image-only PDF: binary payload, zero text-showing operators.
	var data bytes.Buffer
	data.WriteString("%PDF-1.3\n")
	for i := 0; i < 4; i++ {
		for b := 0; b < 256; b++ {
			data.WriteByte(byte(b))
		}
	}

	text, _, err := (&PDFDecoder{}).DecodeText(data.Bytes())
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty (binary buffer must not fall back to verbatim)", text)
	}
}

func TestPDFLatin1HighBytesSurvive(t *testing.T) {
	// 0xe9 is é in Latin-1; byte-oriented decoding must keep it.
	data := []byte("%PDF-1.4\nBT (r\xe9sum\xe9) Tj ET\n")

	text, _, err := (&PDFDecoder{}).DecodeText(data)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if text != "résumé" {
		t.Errorf("text = %q, want %q", text, "résumé")
	}
}
