// Package extract converts uploaded document files into plain text.
// Supported formats: pdf, txt, docx, and best-effort doc. No structure is
// preserved beyond paragraph concatenation.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromFile extracts text from a file, dispatching on extension
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	case ".txt", ".text":
		return fromTxt(path)
	case ".doc":
		// Legacy .doc has no dedicated parser; some exports are readable
		// as plain text.
		text, err := fromTxt(path)
		if err != nil {
			return "", fmt.Errorf("unable to extract text from .doc file, consider converting to .docx: %w", err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", ext)
	}
}

// fromTxt reads a plain text file
func fromTxt(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(content), nil
}

// fromPDF extracts text page by page, joining pages with blank lines
func fromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n\n"), nil
}

// ValidateSize checks a file against a size cap in megabytes
func ValidateSize(path string, maxSizeMB int64) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	maxBytes := maxSizeMB * 1024 * 1024
	if info.Size() > maxBytes {
		return fmt.Errorf("file too large: %.1fMB (max %dMB)", float64(info.Size())/(1024*1024), maxSizeMB)
	}
	return nil
}
