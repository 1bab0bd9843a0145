package model

// StoryRequest 故事生成请求
type StoryRequest struct {
	Prompt         string `json:"prompt"`         // 用户输入的故事提示
	Text           string `json:"text"`           // 兼容旧客户端的提示字段
	Language       string `json:"language"`       // 目标语言显示名，如 "English (US)"
	VoiceName      string `json:"voiceName"`      // TTS 语音名
	AnimationStyle string `json:"animationStyle"` // 动画风格名
}

// StoryFrame 故事的一帧，对应一张插画
type StoryFrame struct {
	ID       int    `json:"id"`                 // 从1开始的帧序号
	Text     string `json:"text"`               // 帧文本，已去除序号前缀
	ImageURL string `json:"imageURL,omitempty"` // 插画地址，编排完成后必定非空
}

// StoryResponse 故事生成响应
type StoryResponse struct {
	Title          string       `json:"title"`
	Frames         []StoryFrame `json:"frames"`
	Language       string       `json:"language"`
	TTSVoiceName   string       `json:"ttsVoiceName"`
	AnimationStyle string       `json:"animationStyle"`
}

// ImageRequest 单图生成请求
type ImageRequest struct {
	Prompt         string `json:"prompt"`
	Language       string `json:"language"`
	AnimationStyle string `json:"animationStyle"`
}

// ImageFallback 单图生成失败时的兜底响应。
// 成功时接口直接返回图片URL字符串，两种响应形态是有意不同的。
type ImageFallback struct {
	ImageURL string `json:"imageUrl"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// TTSRequest 语音合成请求
type TTSRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode"`
	VoiceName    string `json:"voiceName"`
}
