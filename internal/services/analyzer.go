package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lllllllleong/legaldocassistant/internal/apperr"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/extract"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
	"github.com/Lllllllleong/legaldocassistant/internal/prompt"
)

// Model is the generative-language service.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Chat continues a conversation: history holds the prior turns and message
	// is sent as the next user turn.
	Chat(ctx context.Context, history []models.ChatTurn, message string) (string, error)
}

// TextExtractor turns uploaded bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, filename string) (*extract.Result, error)
}

// Analysis is the result of one analyze request. Storage and Metadata never
// influence Response.
type Analysis struct {
	Response models.AnalyzeResponse
	Storage  Outcome[string]
	Metadata Outcome[struct{}]
}

// Analyzer runs Validate -> Extract -> Build Prompt -> Invoke Model -> Persist.
type Analyzer struct {
	cfg       config.Config
	extractor TextExtractor
	model     Model
	uploader  *Uploader
	metadata  *MetadataLogger

	newID func() string
	now   func() time.Time
}

// NewAnalyzer wires the orchestrator. model may be nil when no API key is configured.
func NewAnalyzer(cfg config.Config, extractor TextExtractor, model Model, uploader *Uploader, metadata *MetadataLogger) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		extractor: extractor,
		model:     model,
		uploader:  uploader,
		metadata:  metadata,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Analyze processes one submission. Returned errors are *apperr.Error values.
func (a *Analyzer) Analyze(ctx context.Context, sub models.Submission) (*Analysis, error) {
	if sub.Filename == "" {
		return nil, apperr.Invalid("No file selected.")
	}
	if len(sub.Content) == 0 {
		return nil, apperr.Invalid("Uploaded file is empty.")
	}
	if !a.cfg.GeminiConfigured() {
		slog.Error("GEMINI_API_KEY environment variable is not set.")
		return nil, apperr.ConfigMissing("GEMINI_API_KEY not configured.")
	}
	if a.model == nil {
		return nil, apperr.ConfigMissing("Gemini client is not available.")
	}

	language := sub.Language
	if strings.TrimSpace(language) == "" {
		language = config.DefaultLanguage
	}
	logCtx := slog.With("filename", sub.Filename, "language", language)
	logCtx.Info("Processing document.", "bytes", len(sub.Content))

	extracted, err := a.extractor.Extract(ctx, sub.Content, sub.Filename)
	if err != nil {
		logCtx.Error("Text extraction failed", "error", err)
		return nil, err
	}
	if strings.TrimSpace(extracted.Text) == "" {
		logCtx.Warn("No text could be extracted from the file.")
		return nil, apperr.Invalid("No text could be extracted from the file.")
	}
	logCtx.Info("Text extraction successful.", "characters", len([]rune(extracted.Text)), "format", extracted.Format, "pageCount", extracted.PageCount)

	logCtx.Info("Waiting for Gemini API response.")
	analysis, err := a.model.Generate(ctx, prompt.Analysis(language, extracted.Text))
	if err != nil {
		logCtx.Error("Gemini analysis failed", "error", err)
		return nil, apperr.New(apperr.ErrUpstream, "Gemini analysis failed", err)
	}
	logCtx.Info("AI analysis generated successfully.")

	documentID := a.newID()
	result := &Analysis{
		Response: models.AnalyzeResponse{
			Analysis:     analysis,
			DocumentText: extracted.Text,
			DocumentID:   documentID,
			Status:       "success",
		},
	}
	result.Storage, result.Metadata = a.persist(ctx, documentID, sub)
	return result, nil
}

// persist stores the file and, only when that produced a location, logs its metadata.
func (a *Analyzer) persist(ctx context.Context, documentID string, sub models.Submission) (Outcome[string], Outcome[struct{}]) {
	storage := a.uploader.Upload(ctx, sub.Content, sub.Filename, documentID)
	location, ok := storage.Get()
	if !ok {
		return storage, skipped[struct{}]()
	}

	sum := sha256.Sum256(sub.Content)
	rec := models.MetadataRecord{
		DocumentID:      documentID,
		Filename:        sub.Filename,
		FileType:        extract.FileType(sub.Filename),
		FileSize:        int64(len(sub.Content)),
		UploadTimestamp: a.now().UTC(),
		Status:          models.StatusUploaded,
		StoragePath:     location,
		FileHash:        hex.EncodeToString(sum[:]),
	}
	return storage, a.metadata.Log(ctx, rec)
}
