package textdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor turns a statement file into a page-structured Document. The
// interface exists so parsers can be tested against synthetic documents
// without real statement files.
type Extractor interface {
	Extract(path string) (*Document, error)
}

// PDFExtractor extracts per-page plain text from a PDF file.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract reads the PDF at path and returns its pages as plain text.
func (e *PDFExtractor) Extract(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	return NewDocument(pages), nil
}

// PlainTextExtractor reads a text file that already holds extracted
// statement text, such as pdftotext output. Form feeds separate pages.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a PlainTextExtractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract reads the file at path and splits it into pages on form feeds.
func (e *PlainTextExtractor) Extract(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file %s: %w", path, err)
	}
	return NewDocument(strings.Split(string(data), "\f")), nil
}

// ForPath selects an extractor from the file extension: PDF for .pdf,
// plain text for everything else.
func ForPath(path string) Extractor {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFExtractor()
	}
	return NewPlainTextExtractor()
}

// MockExtractor returns predefined pages or an error, for tests.
type MockExtractor struct {
	Pages []string
	Err   error
}

// Extract returns the mock pages or error.
func (e *MockExtractor) Extract(path string) (*Document, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return NewDocument(e.Pages), nil
}
