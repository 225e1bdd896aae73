package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat means the declared extension is outside the accepted set.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtraction means the payload could not be parsed as the declared format.
	ErrExtraction = errors.New("extraction failed")
)

// Result is the title/body pair pulled out of an uploaded document.
// Title is nil when the format carries no determinable title.
type Result struct {
	Title *string
	Body  string
}

// AllowedExtension reports whether the declared file extension is in the
// accepted set. Callers use it to reject uploads before any bytes are stored.
func AllowedExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".pdf", ".docx":
		return true
	default:
		return false
	}
}

// FromBytes extracts a title and body from an in-memory payload based on the
// declared file extension. Accepted extensions are .txt, .pdf and .docx.
func FromBytes(ctx context.Context, data []byte, fileName string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt":
		return extractText(data), nil
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

// extractText treats the first line as the title and the remainder as the body.
// A single-line file yields an empty body.
func extractText(data []byte) Result {
	lines := strings.Split(string(data), "\n")
	title := strings.TrimSpace(lines[0])

	var res Result
	if title != "" {
		res.Title = &title
	}
	if len(lines) > 1 {
		res.Body = strings.Join(lines[1:], "\n")
	}
	return res
}

func extractPDF(data []byte) (res Result, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: pdf: %v", ErrExtraction, rec)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: pdf: %v", ErrExtraction, err)
	}

	if title, ok := pdfInfoTitle(pdfReader); ok {
		res.Title = &title
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Result{}, fmt.Errorf("%w: pdf text: %v", ErrExtraction, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Result{}, fmt.Errorf("%w: pdf text: %v", ErrExtraction, err)
	}
	res.Body = buf.String()
	return res, nil
}

// pdfInfoTitle reads the Title entry of the document information dictionary.
func pdfInfoTitle(r *pdf.Reader) (string, bool) {
	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return "", false
	}
	title := info.Key("Title")
	if title.Kind() != pdf.String {
		return "", false
	}
	text := strings.TrimSpace(title.Text())
	if text == "" {
		return "", false
	}
	return text, true
}

func extractDOCX(data []byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, fmt.Errorf("%w: empty docx data", ErrExtraction)
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return Result{}, fmt.Errorf("%w: docx: %v", ErrExtraction, err)
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
		return Result{}, fmt.Errorf("%w: document.xml file not found", ErrExtraction)
	}

	rc, err := docFile.Open()
	if err != nil {
		return Result{}, fmt.Errorf("%w: docx: %v", ErrExtraction, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return Result{}, fmt.Errorf("%w: docx: %v", ErrExtraction, err)
	}

	return Result{Body: stripDocxXML(string(raw))}, nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
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
	return strings.TrimSpace(buf.String())
}
