package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lllllllleong/legaldocassistant/internal/apperr"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

func userTurn(text string) models.ChatTurn {
	return models.ChatTurn{Role: "user", Parts: []models.ChatPart{{Text: text}}}
}

func TestReply_Section420(t *testing.T) {
	model := &fakeModel{reply: "It concerns cheating."}
	c := NewChatter(configured(), model)

	reply, err := c.Reply(context.Background(), models.ChatRequest{
		History: []models.ChatTurn{userTurn("What is Section 420?")},
	})

	require.NoError(t, err)
	assert.Equal(t, "It concerns cheating.", reply)
	assert.Empty(t, model.history)
	assert.Equal(t, "Based on the document context I provided earlier, answer this question in English: What is Section 420?", model.message)
}

func TestReply_SeedsPriorTurns(t *testing.T) {
	model := &fakeModel{reply: "Yes."}
	c := NewChatter(configured(), model)
	history := []models.ChatTurn{
		userTurn("Analyze my lease."),
		{Role: "model", Parts: []models.ChatPart{{Text: "### Summary ..."}}},
		userTurn("Is clause 4 enforceable?"),
	}

	_, err := c.Reply(context.Background(), models.ChatRequest{History: history, Language: "Marathi"})

	require.NoError(t, err)
	assert.Equal(t, history[:2], model.history)
	assert.True(t, strings.HasSuffix(model.message, "in Marathi: Is clause 4 enforceable?"))
}

func TestReply_DoesNotTruncateHistory(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	c := NewChatter(configured(), model)
	long := strings.Repeat("z", 40000)
	history := make([]models.ChatTurn, 0, 101)
	for i := 0; i < 100; i++ {
		history = append(history, userTurn(long))
	}
	history = append(history, userTurn("Summarize."))

	_, err := c.Reply(context.Background(), models.ChatRequest{History: history})

	require.NoError(t, err)
	require.Len(t, model.history, 100)
	assert.Equal(t, long, model.history[99].FirstText())
}

func TestReply_Validation(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.Config
		req    models.ChatRequest
		kind   error
		status int
	}{
		{name: "missing key", cfg: config.Config{}, req: models.ChatRequest{History: []models.ChatTurn{userTurn("hi")}}, kind: apperr.ErrConfigMissing, status: http.StatusInternalServerError},
		{name: "empty history", cfg: configured(), req: models.ChatRequest{}, kind: apperr.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "last turn without parts", cfg: configured(), req: models.ChatRequest{History: []models.ChatTurn{{Role: "user"}}}, kind: apperr.ErrInvalidInput, status: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := &fakeModel{}
			_, err := NewChatter(tc.cfg, model).Reply(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.status, apperr.StatusCode(err))
			assert.Empty(t, model.message)
		})
	}
}

func TestReply_ModelFailure(t *testing.T) {
	c := NewChatter(configured(), &fakeModel{err: errBoom})

	_, err := c.Reply(context.Background(), models.ChatRequest{History: []models.ChatTurn{userTurn("hi")}})

	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusCode(err))
}
