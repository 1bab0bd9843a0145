package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SceneType
	}{
		{"forest keyword", "A fox wandered deep into the forest", SceneForest},
		{"sky keyword", "The kite soared above the clouds", SceneSky},
		{"town keyword", "They strolled through the village market", SceneTown},
		{"home keyword", "Grandma was baking in the kitchen", SceneHome},
		{"water keyword", "A little boat drifted on the lake", SceneWater},
		{"no match", "Two friends shared a secret", SceneMagical},
		{"case insensitive", "THE OLD TREE WHISPERED", SceneForest},
		{"empty text", "", SceneMagical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// 多类别同时命中时按固定优先级消歧：forest > sky > town > home > water
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want SceneType
	}{
		{"forest beats water", "a tree grew beside the ocean", SceneForest},
		{"forest beats sky", "birds nested in the tall tree", SceneForest},
		{"sky beats town", "clouds hung over the city", SceneSky},
		{"town beats home via house", "the house at the end of the road", SceneTown},
		{"home wins without town words", "she stayed inside her cozy bedroom", SceneHome},
		{"water only", "waves rolled onto the beach", SceneWater},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}
