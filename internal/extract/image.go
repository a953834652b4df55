package extract

import (
	"context"
	"log/slog"
)

// extractImage runs OCR on an image. A failed OCR call is not an extraction
// error: its message becomes the document text and analysis continues.
func (e *Extractor) extractImage(ctx context.Context, content []byte) (string, error) {
	if e.ocr == nil {
		slog.Warn("Image uploaded but OCR is not configured.")
		return ImageNeedsCredentials, nil
	}

	text, err := e.ocr.DetectText(ctx, content)
	if err != nil {
		slog.Error("Vision API call failed. Check service account permissions.", "error", err)
		return ImageFailedPrefix + err.Error(), nil
	}
	if text == "" {
		return NoTextInImage, nil
	}
	return text, nil
}
