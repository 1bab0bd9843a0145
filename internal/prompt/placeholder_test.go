package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderColors(t *testing.T) {
	tests := []struct {
		scene SceneType
		color string
	}{
		{SceneForest, "8BC34A"},
		{SceneSky, "64B5F6"},
		{SceneTown, "E57373"},
		{SceneHome, "FFB74D"},
		{SceneWater, "4DD0E1"},
		{SceneMagical, "9C89B8"},
	}
	for _, tt := range tests {
		got := Placeholder("a scene", tt.scene, 0)
		assert.Contains(t, got, "https://placehold.co/1024x1024/"+tt.color+"/FFFFFF", string(tt.scene))
	}
}

func TestPlaceholderDeterministic(t *testing.T) {
	first := Placeholder("The fox sailed away", SceneWater, 2)
	second := Placeholder("The fox sailed away", SceneWater, 2)
	assert.Equal(t, first, second)
}

func TestPlaceholderTitleAndSnippet(t *testing.T) {
	got := Placeholder("a quiet pond", SceneWater, 0)
	assert.Contains(t, got, "text=Ghibli+Water:+")
	assert.Contains(t, got, "a+quiet+pond")

	got = Placeholder("something", SceneMagical, 0)
	assert.Contains(t, got, "Magical+landscape:+")
}

func TestPlaceholderTruncatesLongText(t *testing.T) {
	long := strings.Repeat("abcde ", 30)
	got := Placeholder(long, SceneForest, 0)
	// 只保留前60个字符
	assert.NotContains(t, got, strings.Repeat("abcde+", 11))
	assert.Contains(t, got, "abcde+abcde")
}

func TestPlaceholderEmptyText(t *testing.T) {
	got := Placeholder("   ", SceneMagical, 3)
	assert.Contains(t, got, "Story+Scene+4")
}
