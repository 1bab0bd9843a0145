package prompt

// CulturalProfile 按语言划分的文化元素词片段，供背景描述与提示词收尾使用
type CulturalProfile struct {
	Nature       string
	Sky          string
	Architecture string
	Buildings    string
	Interior     string
	Decor        string
	Water        string
	Landscape    string
	Features     string
	Cultural     string
}

// defaultCultureProfile 未收录语言的中性兜底
var defaultCultureProfile = CulturalProfile{
	Nature:       "diverse",
	Sky:          "beautiful",
	Architecture: "charming",
	Buildings:    "interesting",
	Interior:     "cozy",
	Decor:        "comfortable",
	Water:        "peaceful",
	Landscape:    "magical",
	Features:     "unique",
	Cultural:     "diverse",
}

var cultureProfiles = map[string]CulturalProfile{
	"English (US)": {
		Nature:       "North American wilderness",
		Sky:          "vast open American",
		Architecture: "modern American suburban",
		Buildings:    "contemporary neighborhood",
		Interior:     "American home",
		Decor:        "modern comfortable",
		Water:        "American lakes and rivers",
		Landscape:    "rolling American countryside",
		Features:     "diverse natural",
		Cultural:     "American",
	},
	"Spanish (Spain)": {
		Nature:       "Mediterranean",
		Sky:          "Spanish coastal",
		Architecture: "Spanish Mediterranean",
		Buildings:    "terracotta roofs and stucco walls",
		Interior:     "Spanish villa",
		Decor:        "terracotta and blue tile",
		Water:        "Mediterranean Sea",
		Landscape:    "Spanish countryside with olive groves",
		Features:     "rolling hills and vineyards",
		Cultural:     "Spanish flamenco and festival",
	},
	"French (France)": {
		Nature:       "French countryside",
		Sky:          "Parisian",
		Architecture: "French provincial",
		Buildings:    "Parisian apartments and cafes",
		Interior:     "French chateau",
		Decor:        "elegant French provincial",
		Water:        "Seine river",
		Landscape:    "French countryside with lavender fields",
		Features:     "vineyards and chateaus",
		Cultural:     "French artistic and cafe",
	},
	"Japanese (Japan)": {
		Nature:       "Japanese garden",
		Sky:          "Mount Fuji backdrop",
		Architecture: "traditional Japanese",
		Buildings:    "pagodas and torii gates",
		Interior:     "traditional Japanese",
		Decor:        "tatami mats and shoji screens",
		Water:        "koi ponds and gentle streams",
		Landscape:    "Japanese mountainside with cherry blossoms",
		Features:     "zen gardens and stone paths",
		Cultural:     "kimono and festival",
	},
	"Hindi (India)": {
		Nature:       "Indian tropical",
		Sky:          "monsoon clouds and bright sun",
		Architecture: "Indian palace",
		Buildings:    "colorful facades and ornate details",
		Interior:     "Indian home",
		Decor:        "colorful textiles and ornate patterns",
		Water:        "sacred rivers",
		Landscape:    "vibrant Indian countryside",
		Features:     "ancient temples and colorful markets",
		Cultural:     "festival and traditional clothing",
	},
	"Arabic (Various)": {
		Nature:       "desert oasis",
		Sky:          "desert sunset",
		Architecture: "Middle Eastern",
		Buildings:    "domes and intricate geometric patterns",
		Interior:     "Middle Eastern palace",
		Decor:        "ornate rugs and lanterns",
		Water:        "oasis pools",
		Landscape:    "desert with palm trees",
		Features:     "sand dunes and ancient cities",
		Cultural:     "traditional Middle Eastern",
	},
}

// CultureProfile 按语言显示名查询文化元素，未收录的语言返回中性兜底，永不失败。
func CultureProfile(languageName string) CulturalProfile {
	if p, ok := cultureProfiles[languageName]; ok {
		return p
	}
	return defaultCultureProfile
}
