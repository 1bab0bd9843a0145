package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storyteller/internal/config"
	"storyteller/internal/mocks"
	"storyteller/internal/model"
)

// imageFunc 按提示词定制返回，便于在并发测试里区分每一帧
type imageFunc func(ctx context.Context, prompt string) (string, error)

func (f imageFunc) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func testStoryConfig() config.StoryConfig {
	return config.StoryConfig{
		ImageStaggerMs:  0,
		DefaultLanguage: "English (US)",
		DefaultVoice:    "en-US-Standard-C",
		DefaultStyle:    "Disney/Pixar 3D Animation",
	}
}

const testStoryText = "Once there was a fox in the deep forest.\n\n" +
	"It dreamed of flying through the clouds.\n\n" +
	"One day it wandered into a little village.\n\n" +
	"At night it curled up inside a cozy bedroom.\n\n" +
	"By morning it sailed away across the ocean."

func TestGenerateStory(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(testStoryText, nil)

	images := imageFunc(func(_ context.Context, prompt string) (string, error) {
		return "https://images.test/" + fmt.Sprint(len(prompt)), nil
	})

	svc := NewStoryService(text, images, testStoryConfig())
	resp, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	require.NoError(t, err)

	assert.Equal(t, "Once there was a fox in the deep forest", resp.Title)
	assert.Len(t, resp.Frames, 5)
	for i, f := range resp.Frames {
		assert.Equal(t, i+1, f.ID)
		assert.True(t, strings.HasPrefix(f.ImageURL, "https://images.test/"), "frame %d", i+1)
	}

	// 缺省字段由配置补齐
	assert.Equal(t, "English (US)", resp.Language)
	assert.Equal(t, "en-US-Standard-C", resp.TTSVoiceName)
	assert.Equal(t, "Disney/Pixar 3D Animation", resp.AnimationStyle)
	text.AssertExpectations(t)
}

func TestGenerateStoryUsesTextField(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.MatchedBy(func(input string) bool {
		return strings.Contains(input, "a brave turtle")
	})).Return("A brave turtle swam.", nil)

	images := imageFunc(func(context.Context, string) (string, error) {
		return "https://images.test/1", nil
	})

	svc := NewStoryService(text, images, testStoryConfig())
	resp, err := svc.GenerateStory(context.Background(), model.StoryRequest{Text: "a brave turtle"})
	require.NoError(t, err)
	assert.Len(t, resp.Frames, 1)
	text.AssertExpectations(t)
}

func TestGenerateStoryEmptyPrompt(t *testing.T) {
	svc := NewStoryService(mocks.NewMockTextGenerator(t), mocks.NewMockImageGenerator(t), testStoryConfig())

	_, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "   "})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestGenerateStoryTextFailure(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("upstream down"))

	svc := NewStoryService(text, mocks.NewMockImageGenerator(t), testStoryConfig())
	_, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
	assert.NotErrorIs(t, err, ErrEmptyPrompt)
}

func TestGenerateStoryNoFrames(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("   \n\n  ", nil)

	svc := NewStoryService(text, mocks.NewMockImageGenerator(t), testStoryConfig())
	_, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestGenerateStoryFallbackOnImageFailure(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(testStoryText, nil)

	// 第二帧（天空场景）失败，其余成功
	images := imageFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "flying through the clouds") {
			return "", errors.New("rate limited")
		}
		return "https://images.test/ok", nil
	})

	svc := NewStoryService(text, images, testStoryConfig())
	resp, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	require.NoError(t, err, "illustration failure must not fail the story")
	require.Len(t, resp.Frames, 5)

	assert.Contains(t, resp.Frames[1].ImageURL, "placehold.co/1024x1024/64B5F6")
	for i, f := range resp.Frames {
		if i == 1 {
			continue
		}
		assert.Equal(t, "https://images.test/ok", f.ImageURL, "frame %d", i+1)
	}
}

func TestGenerateStoryEmptyURLFallback(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("A fox walked in the forest.", nil)

	images := imageFunc(func(context.Context, string) (string, error) {
		return "   ", nil
	})

	svc := NewStoryService(text, images, testStoryConfig())
	resp, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	require.NoError(t, err)
	assert.Contains(t, resp.Frames[0].ImageURL, "placehold.co/1024x1024/8BC34A")
}

func TestGenerateStoryFrameOrderUnderSkewedLatency(t *testing.T) {
	frameTexts := strings.Split(testStoryText, "\n\n")

	text := mocks.NewMockTextGenerator(t)
	text.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(testStoryText, nil)

	// 越靠前的帧越慢，验证结果仍按帧序归位
	images := imageFunc(func(_ context.Context, prompt string) (string, error) {
		for i, ft := range frameTexts {
			if strings.HasSuffix(prompt, ": "+ft) {
				time.Sleep(time.Duration(len(frameTexts)-i) * 10 * time.Millisecond)
				return fmt.Sprintf("https://images.test/frame-%d", i+1), nil
			}
		}
		return "", errors.New("unexpected prompt")
	})

	svc := NewStoryService(text, images, testStoryConfig())
	resp, err := svc.GenerateStory(context.Background(), model.StoryRequest{Prompt: "a fox"})
	require.NoError(t, err)
	require.Len(t, resp.Frames, len(frameTexts))

	for i, f := range resp.Frames {
		assert.Equal(t, fmt.Sprintf("https://images.test/frame-%d", i+1), f.ImageURL)
	}
}

func TestStoryTitle(t *testing.T) {
	assert.Equal(t, "Magical Story", storyTitle(nil))
	assert.Equal(t, "Magical Story", storyTitle([]model.StoryFrame{{Text: "."}}))
	assert.Equal(t, "A fox woke up", storyTitle([]model.StoryFrame{{Text: "A fox woke up. It yawned."}}))
	assert.Equal(t, "No period here", storyTitle([]model.StoryFrame{{Text: "No period here"}}))
}
