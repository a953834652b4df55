package gcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

// ErrEmptyResponse is returned when the model produced no text candidate.
var ErrEmptyResponse = errors.New("gemini returned no text")

// GeminiClient wraps a single configured generative model used for both
// one-shot analysis and chat continuation.
type GeminiClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiClient creates a Gemini client authenticated with an API key.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" || modelName == "" {
		return nil, fmt.Errorf("NewGeminiClient: apiKey and modelName cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &GeminiClient{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

// Generate sends a single prompt and returns the reply text.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content from gemini: %w", err)
	}
	return responseText(resp, g.modelName)
}

// Chat starts a session seeded with history and sends message as the next user turn.
func (g *GeminiClient) Chat(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
	session := g.model.StartChat()
	session.History = toContents(history)

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message to gemini: %w", err)
	}
	return responseText(resp, g.modelName)
}

func (g *GeminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func toContents(history []models.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.Text(p.Text))
		}
		contents = append(contents, &genai.Content{
			Role:  normalizeRole(turn.Role),
			Parts: parts,
		})
	}
	return contents
}

func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "model", "assistant":
		return "model"
	default:
		return "user"
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse, modelName string) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	var textParts int
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
			textParts++
		}
	}
	if textParts == 0 {
		return "", ErrEmptyResponse
	}
	if textParts > 1 {
		slog.Debug("Gemini response contained several text parts; they have been concatenated.", "parts", textParts, "model", modelName)
	}
	return sb.String(), nil
}
