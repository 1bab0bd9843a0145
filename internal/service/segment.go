package service

import (
	"regexp"
	"strings"

	"storyteller/internal/model"
)

// ordinalPrefix 段首的序号标记，如 "1." 或 "2)"
var ordinalPrefix = regexp.MustCompile(`^\d+[.)]\s*`)

// SegmentFrames 将生成的故事文本按空行切分为有序的帧列表。
// 空段被丢弃，段首序号被剥离，帧序号按出现顺序从1开始。
// 空输入得到空列表，零帧视为生成失败，由调用方处理。
func SegmentFrames(raw string) []model.StoryFrame {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	frames := make([]model.StoryFrame, 0, 5)
	for _, part := range strings.Split(normalized, "\n\n") {
		text := strings.TrimSpace(ordinalPrefix.ReplaceAllString(strings.TrimSpace(part), ""))
		if text == "" {
			continue
		}
		frames = append(frames, model.StoryFrame{ID: len(frames) + 1, Text: text})
	}
	return frames
}
