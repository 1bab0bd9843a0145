package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"storyteller/internal/ai"
	"storyteller/internal/config"
	"storyteller/internal/model"
	"storyteller/internal/prompt"
)

var (
	// ErrEmptyPrompt 请求未携带任何故事提示
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrNoFrames 上游返回的故事文本切不出任何一帧
	ErrNoFrames = errors.New("story generation returned no frames")
)

const storySystemPromptFormat = `You are a multilingual children's story writer. Your task is to:
1. Take the user's input (which may be in any language)
2. Convert it into a 5-frame story suitable for children
3. Write the final story in %s language
4. If the input is in a different language than %s, translate it naturally while maintaining the story's essence
5. Make the story whimsical and magical with cultural elements appropriate for %s speakers
6. Each frame should be a key moment in the story

Format your response as 5 separate paragraphs, each representing one frame of the story.`

// StoryService story generation pipeline: text → frames → per-frame illustrations.
type StoryService struct {
	text    ai.TextGenerator
	images  ai.ImageGenerator
	stagger time.Duration
	cfg     config.StoryConfig
}

func NewStoryService(text ai.TextGenerator, images ai.ImageGenerator, cfg config.StoryConfig) *StoryService {
	if cfg.ImageStaggerMs < 0 {
		cfg.ImageStaggerMs = 0
	}
	return &StoryService{
		text:    text,
		images:  images,
		stagger: time.Duration(cfg.ImageStaggerMs) * time.Millisecond,
		cfg:     cfg,
	}
}

// GenerateStory runs the whole pipeline for one request. Only text-generation
// failure and validation failure are returned as errors; every illustration
// failure is absorbed into a placeholder image.
func (s *StoryService) GenerateStory(ctx context.Context, req model.StoryRequest) (*model.StoryResponse, error) {
	input := strings.TrimSpace(req.Prompt)
	if input == "" {
		input = strings.TrimSpace(req.Text)
	}
	if input == "" {
		return nil, ErrEmptyPrompt
	}
	s.applyDefaults(&req)

	languageCode := prompt.LanguageCode(req.Language)
	logrus.WithFields(logrus.Fields{
		"language": req.Language,
		"voice":    req.VoiceName,
		"style":    req.AnimationStyle,
	}).Info("story generation request")

	systemPrompt := fmt.Sprintf(storySystemPromptFormat, languageCode, languageCode, req.Language)
	userInput := fmt.Sprintf("Please create a children's story in %s based on this input: %q", languageCode, input)

	storyText, err := s.text.GenerateText(ctx, systemPrompt, userInput)
	if err != nil {
		return nil, fmt.Errorf("generate story text: %w", err)
	}

	frames := SegmentFrames(storyText)
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	s.illustrate(ctx, frames, req.AnimationStyle, req.Language)

	return &model.StoryResponse{
		Title:          storyTitle(frames),
		Frames:         frames,
		Language:       req.Language,
		TTSVoiceName:   req.VoiceName,
		AnimationStyle: req.AnimationStyle,
	}, nil
}

// illustrate dispatches one illustration task per frame. Task i waits
// i*stagger before issuing its request so the outbound rate stays under the
// upstream limit without serializing total latency. Every task settles as a
// success: failures are converted to placeholders inside the task, and each
// task writes only its own index, so frame order is always segmentation order.
func (s *StoryService) illustrate(ctx context.Context, frames []model.StoryFrame, styleID, language string) {
	logrus.WithField("frames", len(frames)).Info("generating frame illustrations")

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range frames {
		eg.Go(func() error {
			if err := sleepCtx(egCtx, time.Duration(i)*s.stagger); err != nil {
				frames[i].ImageURL = s.fallbackImage(i, frames[i].Text, "cancelled before dispatch")
				return nil
			}
			frames[i].ImageURL = s.frameImage(egCtx, i, frames[i].Text, styleID, language)
			return nil
		})
	}
	_ = eg.Wait()
}

// frameImage resolves one frame to an image URL, real or placeholder.
func (s *StoryService) frameImage(ctx context.Context, index int, text, styleID, language string) string {
	clean := strings.TrimSpace(strings.TrimPrefix(text, fmt.Sprintf("Frame %d:", index+1)))

	imagePrompt := prompt.Compose(clean, styleID, language)
	logrus.WithFields(logrus.Fields{"frame": index + 1, "style": styleID}).Debug("requesting illustration")

	url, err := s.images.GenerateImage(ctx, imagePrompt)
	if err != nil {
		return s.fallbackImage(index, clean, err.Error())
	}
	if strings.TrimSpace(url) == "" {
		return s.fallbackImage(index, clean, "empty url in response")
	}
	return url
}

func (s *StoryService) fallbackImage(index int, text, reason string) string {
	scene := prompt.Classify(text)
	logrus.WithFields(logrus.Fields{
		"frame":  index + 1,
		"scene":  scene,
		"reason": reason,
	}).Warn("illustration failed, using placeholder")
	return prompt.Placeholder(text, scene, index)
}

func (s *StoryService) applyDefaults(req *model.StoryRequest) {
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}
	if req.VoiceName == "" {
		req.VoiceName = s.cfg.DefaultVoice
	}
	if req.AnimationStyle == "" {
		req.AnimationStyle = s.cfg.DefaultStyle
	}
}

// storyTitle 取第一帧的首句作为标题
func storyTitle(frames []model.StoryFrame) string {
	if len(frames) == 0 {
		return "Magical Story"
	}
	title := strings.TrimSpace(strings.SplitN(frames[0].Text, ".", 2)[0])
	if title == "" {
		return "Magical Story"
	}
	return title
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
