// Package extract turns uploaded document bytes into plain text.
//
// Supported formats, chosen by file extension:
//   - .txt               UTF-8 text, passed through
//   - .pdf               per-page plain text
//   - .docx              paragraph text, one paragraph per line
//   - .png, .jpg, .jpeg  OCR through an injected text detector
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Lllllllleong/legaldocassistant/internal/apperr"
)

// Placeholder texts returned for images instead of OCR output.
const (
	NoTextInImage         = "No text found in image"
	ImageNeedsCredentials = "Image processing requires GCP credentials."
	// ImageFailedPrefix is followed by the error of a failed OCR call.
	ImageFailedPrefix     = "Image processing failed: "
)

type Format string

const (
	FormatText  Format = "text"
	FormatPDF   Format = "pdf"
	FormatDocx  Format = "docx"
	FormatImage Format = "image"
)

// OCR detects text in an image. An empty string means no text was found.
type OCR interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

// Result is the outcome of a successful extraction.
type Result struct {
	Text   string
	Format Format
	// PageCount is set for PDFs when the page tree could be read.
	PageCount int
}

// Extractor dispatches on file extension. A nil OCR means image OCR is not configured.
type Extractor struct {
	ocr OCR
}

func New(ocr OCR) *Extractor {
	return &Extractor{ocr: ocr}
}

// FileType returns the lower-cased extension of filename, including the dot.
func FileType(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// Detect returns the document format for filename.
func Detect(filename string) (Format, error) {
	switch ext := FileType(filename); ext {
	case ".txt":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	case ".png", ".jpg", ".jpeg":
		return FormatImage, nil
	default:
		return "", apperr.New(apperr.ErrUnsupportedType, fmt.Sprintf("Unsupported file type: %s", ext), nil)
	}
}

// Extract returns the text of content. Parse failures are reported as
// apperr.ErrExtractionFailed; unknown extensions as apperr.ErrUnsupportedType.
func (e *Extractor) Extract(ctx context.Context, content []byte, filename string) (*Result, error) {
	format, err := Detect(filename)
	if err != nil {
		return nil, err
	}

	slog.Debug("Extracting document text", "filename", filename, "format", format, "bytes", len(content))

	res := &Result{Format: format}
	switch format {
	case FormatText:
		res.Text, err = extractText(content)
	case FormatPDF:
		res.Text, err = extractPDF(content)
		if err == nil {
			res.PageCount = pdfPageCount(content)
		}
	case FormatDocx:
		res.Text, err = extractDocx(content)
	case FormatImage:
		res.Text, err = e.extractImage(ctx, content)
	}
	if err != nil {
		return nil, apperr.New(apperr.ErrExtractionFailed, "Text extraction failed", err)
	}
	return res, nil
}

func extractText(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(content), nil
}
