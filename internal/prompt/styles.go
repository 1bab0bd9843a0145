package prompt

// AnimationStyleProfile 动画风格对应的画风与角色描述片段
type AnimationStyleProfile struct {
	Base      string // 画风整体描述
	Character string // 角色刻画描述
}

// 印度地方语种电视动画共用同一套描述
var indianRegionalTVStyle = AnimationStyleProfile{
	Base:      "Indian regional TV animation style, vibrant colors, traditional elements, cultural motifs",
	Character: "with characters featuring regional traditional clothing, expressive features, and local cultural elements",
}

var japaneseAnimeStyle = AnimationStyleProfile{
	Base:      "Japanese anime style, vibrant colors, dynamic composition, detailed backgrounds",
	Character: "with characters featuring large expressive eyes, stylized proportions, and emotional expressions",
}

var claymationStyle = AnimationStyleProfile{
	Base:      "Claymation stop-motion style, textured surfaces, warm lighting, handcrafted appearance",
	Character: "with characters featuring rounded shapes, visible texture, and charming imperfections",
}

// defaultStyleProfile 未收录风格的兜底描述
var defaultStyleProfile = AnimationStyleProfile{
	Base:      "High-quality animation style, vibrant colors, detailed artwork, professional animation",
	Character: "with expressive characters featuring detailed features, appropriate cultural elements, and engaging aesthetics",
}

// styleProfiles 纯配置数据：新增风格只改这张表，不改任何逻辑。
var styleProfiles = map[string]AnimationStyleProfile{
	"Disney/Pixar 3D Animation": {
		Base:      "Disney/Pixar 3D animation style, vibrant colors, soft lighting",
		Character: "with expressive characters featuring big eyes, detailed textures, and fluid movements",
	},
	"Japanese Anime":       japaneseAnimeStyle,
	"Anime (Ghibli, Toei)": japaneseAnimeStyle,
	"Studio Ghibli": {
		Base:      "Studio Ghibli anime style, hand-drawn, watercolor textures, soft lighting",
		Character: "with whimsical characters featuring large expressive eyes, simple but emotive facial features",
	},
	"European Fairy Tale": {
		Base:      "Classic European fairy tale illustration style, rich colors, detailed artwork, storybook quality",
		Character: "with characters featuring traditional fairy tale designs, elegant proportions, and classic attire",
	},
	"Claymation":          claymationStyle,
	"Aardman Stop-motion": claymationStyle,
	"Franco-Belgian Comics/Cartoons": {
		Base:      "Franco-Belgian comic book style, clean lines, bright colors, European illustration",
		Character: "with characters featuring expressive faces, dynamic poses, and European comic aesthetics",
	},
	"Bollywood Animation": {
		Base:      "Bollywood animation style, vibrant colors, ornate details, Indian cultural elements",
		Character: "with characters featuring traditional Indian clothing, expressive eyes, and colorful designs",
	},
	"Donghua (Chinese anime)": {
		Base:      "Chinese donghua animation style, elegant lines, traditional elements, soft colors",
		Character: "with characters featuring graceful movements, traditional elements, and Chinese aesthetic principles",
	},
	"K-animation, Webtoons": {
		Base:      "Korean animation style, modern aesthetics, clean lines, contemporary colors",
		Character: "with characters featuring modern Korean design, expressive features, and K-pop inspired elements",
	},
	"Arabic 2D Cartoons (Freej, Mansour)": {
		Base:      "Arabic 2D cartoon style, bright colors, Middle Eastern elements, traditional motifs",
		Character: "with characters featuring traditional Arabic clothing, expressive eyes, and Middle Eastern cultural elements",
	},
	"Gujarati Folk Animation": {
		Base:      "Gujarati folk animation style, traditional Indian elements, bright colors, cultural motifs",
		Character: "with characters featuring traditional Gujarati clothing, folk art elements, and Indian cultural aesthetics",
	},
	"Brazilian Animation": {
		Base:      "Brazilian animation style, tropical colors, vibrant aesthetics, Latin American elements",
		Character: "with characters featuring colorful clothing, expressive features, and Brazilian cultural elements",
	},
	"Australian TV Animation": {
		Base:      "Australian TV animation style, bright colors, outback elements, Australian cultural references",
		Character: "with characters featuring Australian aesthetics, outdoor elements, and local cultural references",
	},
	"Indian TV Animation": {
		Base:      "Indian TV animation style, vibrant colors, traditional elements, Indian cultural motifs",
		Character: "with characters featuring traditional Indian clothing, expressive eyes, and Indian cultural elements",
	},
	"Tamil TV Animation":     indianRegionalTVStyle,
	"Telugu TV Animation":    indianRegionalTVStyle,
	"Malayalam TV Animation": indianRegionalTVStyle,
	"Marathi TV Animation":   indianRegionalTVStyle,
	"Kannada TV Animation":   indianRegionalTVStyle,
	"Bengali TV Animation":   indianRegionalTVStyle,
	"Punjabi TV Animation":   indianRegionalTVStyle,
	"Spanish-language Animation": {
		Base:      "Spanish animation style, warm colors, Mediterranean elements, Spanish cultural references",
		Character: "with characters featuring Spanish aesthetics, traditional elements, and Iberian cultural motifs",
	},
	"Classic German Animation": {
		Base:      "Classic German animation style, fairy tale elements, traditional European aesthetics",
		Character: "with characters featuring Germanic design elements, traditional clothing, and fairy tale aesthetics",
	},
	"Finnish Animation (Moomins)": {
		Base:      "Finnish animation style, Nordic elements, soft colors, Scandinavian aesthetics",
		Character: "with characters featuring Nordic design, natural elements, and Scandinavian cultural references",
	},
	"Czech Stop-motion": {
		Base:      "Czech stop-motion style, handcrafted appearance, Eastern European elements",
		Character: "with characters featuring stop-motion textures, traditional elements, and Czech cultural motifs",
	},
	"Soviet/Russian Animation": {
		Base:      "Soviet/Russian animation style, traditional elements, folk art influences",
		Character: "with characters featuring Russian folk elements, traditional clothing, and Slavic cultural motifs",
	},
	"Polish Animated Films": {
		Base:      "Polish animation style, traditional elements, Eastern European aesthetics",
		Character: "with characters featuring Polish cultural elements, traditional clothing, and regional motifs",
	},
	"Hungarian Animated Films": {
		Base:      "Hungarian animation style, Central European elements, traditional motifs",
		Character: "with characters featuring Hungarian cultural elements, traditional designs, and regional aesthetics",
	},
	"Thai Animated Films": {
		Base:      "Thai animation style, Southeast Asian elements, Buddhist influences, tropical colors",
		Character: "with characters featuring Thai traditional clothing, temple elements, and Southeast Asian cultural motifs",
	},
	"Vietnamese Animated Films": {
		Base:      "Vietnamese animation style, Southeast Asian elements, traditional motifs, tropical aesthetics",
		Character: "with characters featuring Vietnamese cultural elements, traditional clothing, and regional designs",
	},
	"Turkish Animated Films": {
		Base:      "Turkish animation style, Middle Eastern elements, Ottoman influences, rich colors",
		Character: "with characters featuring Turkish cultural elements, traditional clothing, and Anatolian motifs",
	},
	"Israeli Animation": {
		Base:      "Israeli animation style, Middle Eastern elements, modern aesthetics, Mediterranean influences",
		Character: "with characters featuring Israeli cultural elements, diverse backgrounds, and Middle Eastern motifs",
	},
	"Hong Kong Animated Films": {
		Base:      "Hong Kong animation style, urban elements, Chinese cultural influences, modern aesthetics",
		Character: "with characters featuring Hong Kong cultural elements, urban backgrounds, and Cantonese cultural motifs",
	},
	"Indonesian Animated Films": {
		Base:      "Indonesian animation style, tropical elements, archipelago influences, Southeast Asian motifs",
		Character: "with characters featuring Indonesian cultural elements, traditional clothing, and island aesthetics",
	},
	"Malaysian Animated Films": {
		Base:      "Malaysian animation style, tropical elements, multicultural influences, Southeast Asian aesthetics",
		Character: "with characters featuring Malaysian cultural elements, diverse backgrounds, and regional motifs",
	},
	"Filipino Animated Films": {
		Base:      "Filipino animation style, tropical elements, island influences, Southeast Asian motifs",
		Character: "with characters featuring Filipino cultural elements, traditional clothing, and archipelago aesthetics",
	},
}

// StyleProfile 按风格名查询描述片段，未收录的风格返回兜底描述，永不失败。
func StyleProfile(styleID string) AnimationStyleProfile {
	if p, ok := styleProfiles[styleID]; ok {
		return p
	}
	return defaultStyleProfile
}
