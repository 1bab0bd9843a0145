package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	einotool "github.com/cloudwego/eino/components/tool"

	"storyteller/internal/ai"
	"storyteller/internal/config"
	"storyteller/internal/model"
	"storyteller/internal/service"
	"storyteller/internal/tools"
)

const maxAudioUploadBytes = 25 * 1024 * 1024

func main() {
	// 初始化配置与日志
	cfg := config.Load()
	initLogger(cfg)

	ctx := context.Background()

	// 初始化上游客户端
	aiClient, err := ai.New(ctx, cfg.OpenAI)
	if err != nil {
		logrus.Fatalf("初始化AI客户端失败: %v", err)
	}
	var synthesizer ai.SpeechSynthesizer
	ttsClient, err := ai.NewTTSClient(ctx, cfg.OpenAI.Mock)
	if err != nil {
		// TTS凭证缺失不阻止启动，对应接口返回错误即可
		logrus.Warnf("初始化TTS客户端失败，/api/tts 不可用: %v", err)
		ttsClient = nil
	} else {
		synthesizer = ttsClient
	}

	// 初始化服务与工具
	storyService := service.NewStoryService(aiClient, aiClient, cfg.Story)
	imageService := service.NewImageService(aiClient, cfg.Story)
	storyTool := tools.NewStoryTool(storyService)
	imageTool := tools.NewImageTool(imageService)

	router := newRouter(storyService, imageService, aiClient, synthesizer, storyTool, imageTool)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// 在goroutine中启动服务器
	go func() {
		logrus.Infof("服务器启动在 :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("启动服务器失败: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("关闭服务器...")

	// 优雅关闭服务器
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("服务器关闭失败: %v", err)
	}
	if ttsClient != nil {
		_ = ttsClient.Close()
	}
	logrus.Info("服务器已关闭")
}

func initLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func newRouter(
	storyService *service.StoryService,
	imageService *service.ImageService,
	transcriber ai.Transcriber,
	tts ai.SpeechSynthesizer,
	storyTool *tools.StoryTool,
	imageTool *tools.ImageTool,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), cors.Default())

	router.GET("/health", handleHealth)
	router.GET("/api/health", handleHealth)

	api := router.Group("/api")
	api.POST("/generate-story", handleGenerateStory(storyService))
	api.POST("/generate-image", handleGenerateImage(imageService))
	api.POST("/transcribe", handleTranscribe(transcriber))
	api.POST("/tts", handleTTS(tts))

	// 工具路由：把流水线直接暴露为eino工具调用
	router.POST("/tools/story-generate", handleTool(storyTool))
	router.POST("/tools/image-generate", handleTool(imageTool))

	return router
}

// requestLogger 为每个请求生成request_id并记录访问日志
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Next()
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		}).Info("request completed")
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerateStory 处理故事生成请求
func handleGenerateStory(svc *service.StoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.StoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求格式"})
			return
		}

		resp, err := svc.GenerateStory(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyPrompt):
				c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
			case errors.Is(err, service.ErrNoFrames):
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate story"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate story"})
			}
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleGenerateImage 处理单图生成请求。
// 成功时直接返回图片URL字符串，兜底时返回带success:false的对象，两种形态刻意不同。
func handleGenerateImage(svc *service.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求格式"})
			return
		}

		result, err := svc.GenerateImage(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, service.ErrEmptyPrompt) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate image"})
			return
		}

		if result.Fallback {
			c.JSON(http.StatusOK, model.ImageFallback{
				ImageURL: result.URL,
				Success:  false,
				Message:  result.Message,
			})
			return
		}
		c.JSON(http.StatusOK, result.URL)
	}
}

// handleTranscribe 处理语音转写请求，接收multipart音频文件
func handleTranscribe(transcriber ai.Transcriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultPostForm("language", "en")

		fileHeader, err := c.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
			return
		}
		if fileHeader.Size == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Empty audio file"})
			return
		}
		if fileHeader.Size > maxAudioUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Audio file too large (max 25MB)"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audio file"})
			return
		}
		defer file.Close()

		text, err := transcriber.Transcribe(c.Request.Context(), file, fileHeader.Filename, language)
		if err != nil {
			logrus.WithError(err).Error("transcription failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}

// handleTTS 处理语音合成请求，返回MP3音频
func handleTTS(tts ai.SpeechSynthesizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tts == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "tts is not configured"})
			return
		}

		var req model.TTSRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required for TTS"})
			return
		}
		if req.VoiceName == "" {
			req.VoiceName = "en-US-Studio-O"
		}

		audio, err := tts.Synthesize(c.Request.Context(), req.Text, req.VoiceName)
		if err != nil {
			logrus.WithError(err).Error("speech synthesis failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate speech"})
			return
		}
		c.Data(http.StatusOK, "audio/mpeg", audio)
	}
}

// handleTool 通用的eino工具调用入口，请求体原样作为工具参数
func handleTool(tool einotool.InvokableTool) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求格式"})
			return
		}

		result, err := tool.InvokableRun(c.Request.Context(), string(body))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("执行工具失败: %v", err)})
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(result))
	}
}
