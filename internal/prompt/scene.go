package prompt

import "strings"

// SceneType 帧文本所属的粗粒度场景类别
type SceneType string

const (
	SceneForest  SceneType = "forest"
	SceneSky     SceneType = "sky"
	SceneTown    SceneType = "town"
	SceneHome    SceneType = "home"
	SceneWater   SceneType = "water"
	SceneMagical SceneType = "magical landscape"
)

// 关键词按类别优先级排列，先命中者生效：forest > sky > town > home > water。
// 同一文本命中多个类别时以此顺序消歧，顺序不可调整。
var sceneKeywords = []struct {
	scene SceneType
	words []string
}{
	{SceneForest, []string{"forest", "tree", "wood", "garden", "plant", "flower", "leaf", "grass", "bush"}},
	{SceneSky, []string{"sky", "cloud", "fly", "float", "bird", "wind", "air", "soar", "glide"}},
	{SceneTown, []string{"town", "village", "city", "street", "shop", "market", "building", "house", "home"}},
	{SceneHome, []string{"inside", "room", "kitchen", "bedroom", "home", "house", "interior", "indoors", "living"}},
	{SceneWater, []string{"water", "sea", "ocean", "lake", "river", "stream", "pond", "beach", "shore", "swim", "boat"}},
}

// Classify 从帧文本推断场景类别。大小写不敏感，无匹配时返回 SceneMagical。
func Classify(text string) SceneType {
	lower := strings.ToLower(text)
	for _, entry := range sceneKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return entry.scene
			}
		}
	}
	return SceneMagical
}
