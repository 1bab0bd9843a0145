package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"

	"storyteller/internal/config"
)

// TextGenerator generates story text from a system prompt and user input.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userInput string) (string, error)
}

// ImageGenerator produces a single illustration URL for a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, language string) (string, error)
}

// ErrEmptyResult upstream replied without a usable payload (no URL, no text).
var ErrEmptyResult = errors.New("upstream returned no usable result")

// Client wraps the OpenAI upstreams: chat completions through the eino
// chat-model component, images and transcription through go-openai.
type Client struct {
	chat    *einoopenai.ChatModel
	api     *openai.Client
	cfg     config.OpenAIConfig
	timeout time.Duration
}

func New(ctx context.Context, cfg config.OpenAIConfig) (*Client, error) {
	if cfg.TimeoutSec <= 0 {
		cfg.TimeoutSec = 120
	}
	c := &Client{cfg: cfg, timeout: time.Duration(cfg.TimeoutSec) * time.Second}
	if cfg.Mock {
		return c, nil
	}
	if cfg.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	temperature := float32(0.7)
	maxTokens := 1500
	chatCfg := &einoopenai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		Model:       cfg.ChatModel,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
		Timeout:     c.timeout,
	}
	if cfg.BaseURL != "" {
		chatCfg.BaseURL = cfg.BaseURL
	}
	chat, err := einoopenai.NewChatModel(ctx, chatCfg)
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	c.chat = chat

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	return c, nil
}

func (c *Client) GenerateText(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if c.cfg.Mock {
		return mockStoryText, nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.chat.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userInput),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", ErrEmptyResult
	}
	return msg.Content, nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Mock {
		// 1x1 PNG pixel base64
		pixel := "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="
		return "data:image/png;base64," + pixel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  prompt,
		Size:    openai.CreateImageSize1024x1024,
		Quality: openai.CreateImageQualityStandard,
		N:       1,
		Style:   openai.CreateImageStyleVivid,
	})
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyResult
	}
	return resp.Data[0].URL, nil
}

func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename, language string) (string, error) {
	if c.cfg.Mock {
		return "mock transcription", nil
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.WhisperModel,
		Reader:   audio,
		FilePath: filename,
		Language: language,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text, nil
}

// mockStoryText 本地联调用的固定五帧故事
const mockStoryText = `1. Once upon a time, a small fox found a glowing seed at the edge of the forest.

2. The fox planted the seed in the garden and watered it every morning.

3. One night the seed burst open, and a silver tree floated up into the sky.

4. The fox climbed its branches and sailed over the sleepy town below.

5. At sunrise the tree set the fox gently back home, and the garden sparkled with new seeds.`
