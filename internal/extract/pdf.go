package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// The service may run on a read-only filesystem; pdfcpu must not try to
	// create its user configuration directory.
	api.DisableConfigDir()
}

// extractPDF concatenates the plain text of every page. Pages without a
// content stream contribute nothing.
func extractPDF(content []byte) (text string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read text of page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// pdfPageCount validates the document in relaxed mode and returns its page
// count, or 0 when pdfcpu cannot read it.
func pdfPageCount(content []byte) int {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	count, err := api.PageCount(bytes.NewReader(content), conf)
	if err != nil {
		slog.Warn("Could not determine PDF page count", "error", err)
		return 0
	}
	return count
}
