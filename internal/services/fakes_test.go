package services

import (
	"context"
	"errors"

	"github.com/Lllllllleong/legaldocassistant/internal/models"
)

type fakeModel struct {
	reply string
	err   error

	prompts []string
	history []models.ChatTurn
	message string
}

func (m *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func (m *fakeModel) Chat(_ context.Context, history []models.ChatTurn, message string) (string, error) {
	m.history = history
	m.message = message
	return m.reply, m.err
}

type fakeStore struct {
	err     error
	objects map[string][]byte
}

func (s *fakeStore) Put(_ context.Context, objectName string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[objectName] = data
	return "gs://test-bucket/" + objectName, nil
}

type fakeSink struct {
	name    string
	err     error
	records []models.MetadataRecord
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Record(_ context.Context, rec models.MetadataRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

var errBoom = errors.New("boom")

type fakeOCR struct {
	text string
	err  error
}

func (o *fakeOCR) DetectText(_ context.Context, _ []byte) (string, error) {
	return o.text, o.err
}
