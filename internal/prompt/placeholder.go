package prompt

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	placeholderBase    = "https://placehold.co/1024x1024"
	placeholderSnippet = 60 // 占位图上展示的帧文本最大长度
	defaultSceneColor  = "9C89B8"
)

// sceneColors 场景类别 → 占位图背景色
var sceneColors = map[SceneType]string{
	SceneForest: "8BC34A",
	SceneSky:    "64B5F6",
	SceneTown:   "E57373",
	SceneHome:   "FFB74D",
	SceneWater:  "4DD0E1",
}

// Placeholder 为生成失败的帧构造确定性的占位图地址。
// 不发起任何网络调用，永不失败；相同输入必得到相同地址。
func Placeholder(frameText string, scene SceneType, frameIndex int) string {
	color, ok := sceneColors[scene]
	if !ok {
		color = defaultSceneColor
	}

	snippet := strings.TrimSpace(frameText)
	if runes := []rune(snippet); len(runes) > placeholderSnippet {
		snippet = strings.TrimSpace(string(runes[:placeholderSnippet]))
	}
	if snippet == "" {
		snippet = fmt.Sprintf("Story Scene %d", frameIndex+1)
	}

	title := strings.ReplaceAll(capitalize(string(scene)), " ", "+")
	text := "Ghibli+" + title + ":+" + url.QueryEscape(snippet)
	return fmt.Sprintf("%s/%s/FFFFFF?text=%s", placeholderBase, color, text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
