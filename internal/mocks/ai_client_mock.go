package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"storyteller/internal/ai"
)

// MockTextGenerator is a mock type for the ai.TextGenerator interface
type MockTextGenerator struct {
	mock.Mock
}

func (_m *MockTextGenerator) GenerateText(ctx context.Context, systemPrompt string, userInput string) (string, error) {
	ret := _m.Called(ctx, systemPrompt, userInput)
	return ret.String(0), ret.Error(1)
}

// NewMockTextGenerator creates a new instance of MockTextGenerator and
// registers the testing interface on the mock.
func NewMockTextGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockTextGenerator {
	m := &MockTextGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.TextGenerator = (*MockTextGenerator)(nil)

// MockImageGenerator is a mock type for the ai.ImageGenerator interface
type MockImageGenerator struct {
	mock.Mock
}

func (_m *MockImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

func NewMockImageGenerator(t interface {
	mock.TestingT
	Helper()
}) *MockImageGenerator {
	m := &MockImageGenerator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.ImageGenerator = (*MockImageGenerator)(nil)

// MockTranscriber is a mock type for the ai.Transcriber interface
type MockTranscriber struct {
	mock.Mock
}

func (_m *MockTranscriber) Transcribe(ctx context.Context, audio io.Reader, filename string, language string) (string, error) {
	ret := _m.Called(ctx, audio, filename, language)
	return ret.String(0), ret.Error(1)
}

func NewMockTranscriber(t interface {
	mock.TestingT
	Helper()
}) *MockTranscriber {
	m := &MockTranscriber{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.Transcriber = (*MockTranscriber)(nil)

// MockSpeechSynthesizer is a mock type for the ai.SpeechSynthesizer interface
type MockSpeechSynthesizer struct {
	mock.Mock
}

func (_m *MockSpeechSynthesizer) Synthesize(ctx context.Context, text string, voiceName string) ([]byte, error) {
	ret := _m.Called(ctx, text, voiceName)
	var audio []byte
	if ret.Get(0) != nil {
		audio = ret.Get(0).([]byte)
	}
	return audio, ret.Error(1)
}

func NewMockSpeechSynthesizer(t interface {
	mock.TestingT
	Helper()
}) *MockSpeechSynthesizer {
	m := &MockSpeechSynthesizer{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.SpeechSynthesizer = (*MockSpeechSynthesizer)(nil)
