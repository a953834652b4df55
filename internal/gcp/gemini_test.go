package gcp

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

func TestToContents(t *testing.T) {
	history := []models.ChatTurn{
		{Role: "user", Parts: []models.ChatPart{{Text: "Here is my lease."}}},
		{Role: "model", Parts: []models.ChatPart{{Text: "### Summary"}, {Text: "..."}}},
		{Role: "", Parts: []models.ChatPart{{Text: "Thanks"}}},
	}

	contents := toContents(history)

	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, []genai.Part{genai.Text("Here is my lease.")}, contents[0].Parts)
	assert.Equal(t, "model", contents[1].Role)
	assert.Len(t, contents[1].Parts, 2)
	assert.Equal(t, "user", contents[2].Role)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "model", normalizeRole("assistant"))
	assert.Equal(t, "model", normalizeRole(" Model "))
	assert.Equal(t, "user", normalizeRole("user"))
	assert.Equal(t, "user", normalizeRole("system"))
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("### Summary\n"), genai.Text("A lease.")}},
		}},
	}

	text, err := responseText(resp, "test-model")

	require.NoError(t, err)
	assert.Equal(t, "### Summary\nA lease.", text)
}

func TestResponseTextEmpty(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"no text parts": {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}}},
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := responseText(resp, "test-model")
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}
