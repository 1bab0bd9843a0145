package prompt

import "fmt"

// atmosphereStyle 所有插画共用的光影氛围描述
const atmosphereStyle = "soft color palette, diffused lighting, magical atmosphere, painterly quality"

// Compose 将帧文本、动画风格与语言文化元素合成为一条完整的图片生成提示词。
// 拼接顺序固定：画风、角色、背景、氛围、文化收尾、原始帧文本。
func Compose(frameText, styleID, languageName string) string {
	scene := Classify(frameText)
	style := StyleProfile(styleID)
	culture := CultureProfile(languageName)

	return fmt.Sprintf("%s, %s, %s, %s, child-friendly magical scene with %s elements: %s",
		style.Base,
		style.Character,
		backgroundFragment(scene, culture),
		atmosphereStyle,
		culture.Cultural,
		frameText,
	)
}

// backgroundFragment 按场景类别选取背景描述，文化词片段嵌入其中。
func backgroundFragment(scene SceneType, culture CulturalProfile) string {
	switch scene {
	case SceneForest:
		return fmt.Sprintf("lush detailed forest background with %s elements, magical vegetation", culture.Nature)
	case SceneSky:
		return fmt.Sprintf("expansive cloud-filled sky, %s features, distant views", culture.Sky)
	case SceneTown:
		return fmt.Sprintf("charming %s inspired village, %s details", culture.Architecture, culture.Buildings)
	case SceneHome:
		return fmt.Sprintf("cozy %s interior, %s elements, warm lighting", culture.Interior, culture.Decor)
	case SceneWater:
		return fmt.Sprintf("shimmering water reflections, %s elements, gentle waves", culture.Water)
	default:
		return fmt.Sprintf("%s landscape, %s features", culture.Landscape, culture.Features)
	}
}
