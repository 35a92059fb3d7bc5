package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"yolo-transcript/internal/app/api/assemblyai"
)

// MockSpeechToText is a testify mock of the speech-to-text client
type MockSpeechToText struct {
	mock.Mock
}

// NewMockSpeechToText creates a MockSpeechToText bound to t
func NewMockSpeechToText(t *testing.T) *MockSpeechToText {
	m := &MockSpeechToText{}
	m.Test(t)
	return m
}

func (m *MockSpeechToText) Upload(ctx context.Context, r io.Reader) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

func (m *MockSpeechToText) CreateTranscript(ctx context.Context, params assemblyai.TranscriptParams) (*assemblyai.Transcript, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assemblyai.Transcript), args.Error(1)
}

func (m *MockSpeechToText) GetTranscript(ctx context.Context, id string) (*assemblyai.Transcript, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assemblyai.Transcript), args.Error(1)
}

func (m *MockSpeechToText) GetUtterances(ctx context.Context, id string) ([]assemblyai.Utterance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assemblyai.Utterance), args.Error(1)
}

func (m *MockSpeechToText) GetSentiment(ctx context.Context, id string) ([]assemblyai.SentimentResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assemblyai.SentimentResult), args.Error(1)
}
