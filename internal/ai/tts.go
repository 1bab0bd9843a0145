package ai

import (
	"context"
	"fmt"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// SpeechSynthesizer turns narration text into MP3 audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceName string) ([]byte, error)
}

// TTSClient wraps Google Cloud Text-to-Speech. Credentials come from the
// GOOGLE_APPLICATION_CREDENTIALS environment the client library reads itself.
type TTSClient struct {
	client *texttospeech.Client
	mock   bool
}

func NewTTSClient(ctx context.Context, mock bool) (*TTSClient, error) {
	if mock {
		return &TTSClient{mock: true}, nil
	}
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create tts client: %w", err)
	}
	return &TTSClient{client: client}, nil
}

func (t *TTSClient) Synthesize(ctx context.Context, text, voiceName string) ([]byte, error) {
	if t.mock {
		return []byte("mock-mp3"), nil
	}

	resp, err := t.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			// 语音名与languageCode必须精确匹配，以语音名推导为准
			LanguageCode: VoiceLanguageCode(voiceName),
			Name:         voiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if len(resp.GetAudioContent()) == 0 {
		return nil, ErrEmptyResult
	}
	return resp.GetAudioContent(), nil
}

func (t *TTSClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// VoiceLanguageCode 从语音名推导语言代码，如 "en-US-Studio-O" → "en-US"。
func VoiceLanguageCode(voiceName string) string {
	parts := strings.Split(voiceName, "-")
	if len(parts) < 2 {
		return "en-US"
	}
	return parts[0] + "-" + parts[1]
}
