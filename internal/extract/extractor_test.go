package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromFileTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "release.txt")
	content := "Acme Corp announces record quarterly results.\n\nRevenue rose 20%."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if text != content {
		t.Errorf("extracted text mismatch: %q", text)
	}
}

func TestFromFileDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")
	writeTestDocx(t, path, []string{"Quarterly Report", "Revenue increased by 20% year over year.", ""})

	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	want := "Quarterly Report\n\nRevenue increased by 20% year over year."
	if text != want {
		t.Errorf("docx text = %q, want %q", text, want)
	}
}

func TestFromFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slides.pptx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := FromFile(path); err == nil {
		t.Error("unsupported extension should fail")
	}
}

func TestFromFileDocFallsBackToPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.doc")
	if err := os.WriteFile(path, []byte("Plain text saved with a .doc name."), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if !strings.Contains(text, "Plain text") {
		t.Errorf("unexpected .doc extraction: %q", text)
	}
}

func TestValidateSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateSize(path, 10); err != nil {
		t.Errorf("2MB file under a 10MB cap rejected: %v", err)
	}
	if err := ValidateSize(path, 1); err == nil {
		t.Error("2MB file over a 1MB cap should be rejected")
	}
}

// writeTestDocx builds a minimal docx container with one paragraph per
// entry in paragraphs.
func writeTestDocx(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>")
		body.WriteString(p)
		body.WriteString("</w:t></w:r></w:p>")
	}
	body.WriteString(`</w:body></w:document>`)

	entry, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entry.Write([]byte(body.String())); err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
