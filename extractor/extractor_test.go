package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildDocx assembles a minimal OOXML package holding the given
// word/document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// buildPDF writes a single-page PDF showing the given text. Object
// offsets are tracked while writing so the xref table is exact.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	writeObj(fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))
	writeObj("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefPos := buf.Len()
	buf.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)+1))
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	buf.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos))
	return buf.Bytes()
}

func TestExtractRejectsUnsupportedMimeTypes(t *testing.T) {
	testCases := []string{
		"text/plain",
		"image/png",
		"application/msword", // legacy .doc is not supported
		"",
	}
	for _, mimeType := range testCases {
		_, err := Extract([]byte("irrelevant"), mimeType)
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Fatalf("mime %q: expected ErrUnsupportedFileType, got %v", mimeType, err)
		}
	}
}

func TestSupportedMimeType(t *testing.T) {
	assert.True(t, SupportedMimeType(MimePDF))
	assert.True(t, SupportedMimeType(MimeDOCX))
	assert.True(t, SupportedMimeType("application/pdf; charset=binary"))
	assert.False(t, SupportedMimeType("text/html"))
	assert.False(t, SupportedMimeType(""))
}

func TestExtractDocxReturnsParagraphText(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	data := buildDocx(t, docXML)
	text, err := Extract(data, MimeDOCX)
	assert.NoError(t, err)
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "Second paragraph.")
}

func TestExtractDocxIsDeterministic(t *testing.T) {
	docXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Stable text</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, docXML)

	first, err := Extract(data, MimeDOCX)
	assert.NoError(t, err)
	second, err := Extract(data, MimeDOCX)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractPDFReturnsText(t *testing.T) {
	data := buildPDF(t, "Hello from a real page")

	text, err := Extract(data, MimePDF)
	assert.NoError(t, err)
	assert.Contains(t, text, "Hello")
}

func TestExtractPDFIsDeterministic(t *testing.T) {
	data := buildPDF(t, "Stable content")

	first, err := Extract(data, MimePDF)
	assert.NoError(t, err)
	second, err := Extract(data, MimePDF)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractDocxWithoutTextFailsAsEmpty(t *testing.T) {
	docXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p></w:p></w:body></w:document>`
	data := buildDocx(t, docXML)

	_, err := Extract(data, MimeDOCX)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestExtractEmptyPayloadFailsAsEmpty(t *testing.T) {
	_, err := Extract(nil, MimePDF)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument for empty pdf payload, got %v", err)
	}

	_, err = Extract(nil, MimeDOCX)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument for empty docx payload, got %v", err)
	}
}

func TestExtractDocxTruncatedXMLFailsAsEmpty(t *testing.T) {
	// document.xml ends mid-tag; the result must be a failure, never the
	// raw markup passed off as extracted text.
	docXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p><w:p><w:r><w:t>trunc`
	data := buildDocx(t, docXML)

	text, err := Extract(data, MimeDOCX)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument for truncated document.xml, got %v", err)
	}
	assert.NotContains(t, text, "<w:")
}

func TestStripDocxXMLInsertsBreaks(t *testing.T) {
	raw := `<w:body><w:p><w:r><w:t>one</w:t></w:r></w:p><w:p><w:r><w:t>two</w:t></w:r></w:p></w:body>`
	text, err := stripDocxXML(raw)
	assert.NoError(t, err)
	assert.Equal(t, "one\ntwo", text)
}
