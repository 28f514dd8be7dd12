package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedFileType is returned for any MIME type other than PDF
	// or DOCX, before any parsing is attempted.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrEmptyDocument is returned when the parser ran but produced no
	// text. For PDFs this usually means a scanned image without an OCR
	// layer.
	ErrEmptyDocument = errors.New("document is empty or has no extractable text")
)

// SupportedMimeType reports whether the declared MIME type can be
// extracted at all. The check runs at the boundary so unsupported uploads
// are rejected without touching the parsers.
func SupportedMimeType(mimeType string) bool {
	switch normalizeMimeType(mimeType) {
	case MimePDF, MimeDOCX:
		return true
	}
	return false
}

// Extract converts an uploaded file's bytes into plain text based on the
// declared MIME type. It is a pure transformation: no network or storage
// access, no internal timeout. Size and wall-time bounds are the caller's
// responsibility.
func Extract(data []byte, declaredMimeType string) (string, error) {
	switch normalizeMimeType(declaredMimeType) {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return "", ErrUnsupportedFileType
	}
}

func normalizeMimeType(mimeType string) string {
	// Strip parameters like "; charset=..." before matching.
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func extractPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml not found in docx package")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	text, err := stripDocxXML(string(raw))
	if err != nil {
		// Truncated or corrupt XML means the text cannot be recovered;
		// raw markup must never be passed off as extracted content.
		return "", fmt.Errorf("%w: malformed document.xml: %v", ErrEmptyDocument, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// stripDocxXML walks the OOXML token stream collecting character data and
// inserting line breaks at paragraph and break boundaries. Any decode
// error besides EOF is returned to the caller.
func stripDocxXML(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}
