package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config 应用配置，全部来自环境变量（可选 .env 文件）。
type Config struct {
	AppEnv   string `env:"APP_ENV" env-default:"development"`
	Port     string `env:"PORT" env-default:"3001"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	OpenAI OpenAIConfig
	Story  StoryConfig
}

// OpenAIConfig 上游模型服务配置。
type OpenAIConfig struct {
	APIKey       string `env:"OPENAI_API_KEY" env-default:""`
	BaseURL      string `env:"OPENAI_BASE_URL" env-default:""`
	ChatModel    string `env:"CHAT_MODEL" env-default:"gpt-4"`
	ImageModel   string `env:"IMAGE_MODEL" env-default:"dall-e-3"`
	WhisperModel string `env:"WHISPER_MODEL" env-default:"whisper-1"`
	TimeoutSec   int    `env:"OPENAI_TIMEOUT_SEC" env-default:"120"`
	// Mock 为 true 时不访问任何上游服务，返回固定结果，便于本地联调
	Mock bool `env:"AI_MOCK" env-default:"false"`
}

// StoryConfig 故事流水线配置与请求默认值。
type StoryConfig struct {
	// ImageStaggerMs 每一帧插画请求的错峰间隔，用于限制对上游图片服务的请求速率
	ImageStaggerMs  int    `env:"IMAGE_STAGGER_MS" env-default:"2000"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" env-default:"English (US)"`
	DefaultVoice    string `env:"DEFAULT_VOICE" env-default:"en-US-Standard-C"`
	DefaultStyle    string `env:"DEFAULT_ANIMATION_STYLE" env-default:"Disney/Pixar 3D Animation"`
}

// Load 从环境变量加载配置，.env 文件不存在时忽略。
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	return &cfg
}
