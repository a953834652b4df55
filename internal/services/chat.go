package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Lllllllleong/legaldocassistant/internal/apperr"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
	"github.com/Lllllllleong/legaldocassistant/internal/prompt"
)

// Chatter continues a conversation whose full history is supplied by the caller.
type Chatter struct {
	cfg   config.Config
	model Model
}

func NewChatter(cfg config.Config, model Model) *Chatter {
	return &Chatter{cfg: cfg, model: model}
}

// Reply sends the last turn of req.History as a new question, with every
// earlier turn as context. History is never truncated.
func (c *Chatter) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	if !c.cfg.GeminiConfigured() {
		slog.Error("GEMINI_API_KEY environment variable is not set.")
		return "", apperr.ConfigMissing("GEMINI_API_KEY not configured.")
	}
	if c.model == nil {
		return "", apperr.ConfigMissing("Gemini client is not available.")
	}
	if len(req.History) == 0 {
		return "", apperr.Invalid("No chat history provided.")
	}

	last := len(req.History) - 1
	question := req.History[last].FirstText()
	if strings.TrimSpace(question) == "" {
		return "", apperr.Invalid("The last chat turn has no text.")
	}

	language := req.Language
	if strings.TrimSpace(language) == "" {
		language = config.DefaultLanguage
	}

	slog.Info("Waiting for Gemini API response.", "turns", len(req.History), "language", language)
	reply, err := c.model.Chat(ctx, req.History[:last], prompt.Chat(language, question))
	if err != nil {
		slog.Error("Gemini chat failed", "error", err)
		return "", apperr.New(apperr.ErrUpstream, "Gemini chat failed", err)
	}
	slog.Info("AI chat response generated successfully.")
	return reply, nil
}
