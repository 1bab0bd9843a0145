package service

import (
	"context"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"storyteller/internal/ai"
	"storyteller/internal/config"
	"storyteller/internal/model"
	"storyteller/internal/prompt"
)

// ImageResult 单图生成结果。Fallback 为 true 时 URL 指向占位图。
type ImageResult struct {
	URL      string
	Fallback bool
	Message  string
}

// ImageService 单图生成：合成提示词、调用图片服务、失败时本地兜底。
// 成功结果按 (风格, 语言, 提示词) 缓存，避免相同请求重复计费。
type ImageService struct {
	images ai.ImageGenerator
	cache  *cache.Cache
	cfg    config.StoryConfig
}

func NewImageService(images ai.ImageGenerator, cfg config.StoryConfig) *ImageService {
	return &ImageService{
		images: images,
		cache:  cache.New(30*time.Minute, 1*time.Hour),
		cfg:    cfg,
	}
}

func (s *ImageService) GenerateImage(ctx context.Context, req model.ImageRequest) (*ImageResult, error) {
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if req.Language == "" {
		req.Language = s.cfg.DefaultLanguage
	}
	if req.AnimationStyle == "" {
		req.AnimationStyle = s.cfg.DefaultStyle
	}

	key := req.AnimationStyle + "|" + req.Language + "|" + req.Prompt
	if cached, ok := s.cache.Get(key); ok {
		logrus.WithField("style", req.AnimationStyle).Debug("image cache hit")
		return cached.(*ImageResult), nil
	}

	enhanced := prompt.Compose(req.Prompt, req.AnimationStyle, req.Language)
	logrus.WithFields(logrus.Fields{
		"style":    req.AnimationStyle,
		"language": req.Language,
	}).Info("generating single image")

	url, err := s.images.GenerateImage(ctx, enhanced)
	if err != nil {
		return s.fallback(req.Prompt, "Using placeholder image (image service error - check your API key or billing)", err), nil
	}
	if strings.TrimSpace(url) == "" {
		return s.fallback(req.Prompt, "Generated fallback image - upstream didn't return a valid URL", nil), nil
	}

	result := &ImageResult{URL: url}
	// 兜底结果不进缓存，避免把一次上游故障固化半小时
	s.cache.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

func (s *ImageService) fallback(promptText, message string, cause error) *ImageResult {
	scene := prompt.Classify(promptText)
	logrus.WithFields(logrus.Fields{
		"scene": scene,
		"error": cause,
	}).Warn("single image generation failed, using placeholder")
	return &ImageResult{
		URL:      prompt.Placeholder(promptText, scene, 0),
		Fallback: true,
		Message:  message,
	}
}
