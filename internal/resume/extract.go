// Package resume extracts plain text from uploaded resume files.
package resume

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned for content without the PDF header
var ErrNotPDF = errors.New("file is not a PDF")

// Extractor turns resume content into searchable text.
type Extractor interface {
	ExtractText(ctx context.Context, content []byte) (string, error)
}

// IsPDF reports whether content starts with the PDF magic number
func IsPDF(content []byte) bool {
	return bytes.HasPrefix(content, []byte("%PDF-"))
}

// PDFExtractor reads the text layer of PDF documents. Scanned documents yield empty text.
type PDFExtractor struct{}

// ExtractText implements Extractor
func (PDFExtractor) ExtractText(ctx context.Context, content []byte) (text string, err error) {
	if !IsPDF(content) {
		return "", ErrNotPDF
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// the parser panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return normalizeSpace(buf.String()), nil
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
