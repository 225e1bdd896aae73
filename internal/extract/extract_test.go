package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestFromBytes_TextTitleAndBody(t *testing.T) {
	res, err := FromBytes(context.Background(), []byte("Title Line\nBody line 1\nBody line 2\n"), "paper.txt")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if res.Title == nil || *res.Title != "Title Line" {
		t.Fatalf("expected title %q, got %v", "Title Line", res.Title)
	}
	if res.Body != "Body line 1\nBody line 2\n" {
		t.Fatalf("unexpected body: %q", res.Body)
	}
}

func TestFromBytes_TextSingleLine(t *testing.T) {
	res, err := FromBytes(context.Background(), []byte("  Only a title  "), "paper.txt")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if res.Title == nil || *res.Title != "Only a title" {
		t.Fatalf("expected trimmed title, got %v", res.Title)
	}
	if res.Body != "" {
		t.Fatalf("expected empty body for single-line file, got %q", res.Body)
	}
}

func TestFromBytes_UnsupportedExtension(t *testing.T) {
	_, err := FromBytes(context.Background(), []byte("data"), "notes.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestFromBytes_MalformedPDF(t *testing.T) {
	_, err := FromBytes(context.Background(), []byte("not a pdf at all"), "paper.pdf")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestFromBytes_Docx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?><w:document xmlns:w="x"><w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body></w:document>`)

	res, err := FromBytes(context.Background(), data, "paper.docx")
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if res.Title != nil {
		t.Fatalf("expected nil title for docx, got %q", *res.Title)
	}
	if res.Body != "First paragraph\nSecond paragraph" {
		t.Fatalf("unexpected body: %q", res.Body)
	}
}

func TestFromBytes_DocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<x/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = FromBytes(context.Background(), buf.Bytes(), "paper.docx")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
}

func TestAllowedExtension(t *testing.T) {
	for _, name := range []string{"a.txt", "b.PDF", "c.docx"} {
		if !AllowedExtension(name) {
			t.Fatalf("expected %s to be allowed", name)
		}
	}
	for _, name := range []string{"a.zip", "b.exe", "noext"} {
		if AllowedExtension(name) {
			t.Fatalf("expected %s to be rejected", name)
		}
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
