package prompt

// languageCodes 语言显示名 → 写作语言。同一语言的地区变体映射到同一写作语言。
var languageCodes = map[string]string{
	"English (US)":        "English",
	"English (UK)":        "English",
	"English (Australia)": "English",
	"English (India)":     "English",

	"Spanish (Spain)":        "Spanish",
	"Spanish (Spain/LatAm)":  "Spanish",
	"French (France)":        "French",
	"French (France/Canada)": "French",
	"Chinese (Mandarin)":     "Chinese",
	"Chinese (Cantonese)":    "Cantonese",
	"Portuguese (Brazil)":    "Portuguese",
	"Portuguese (Portugal)":  "Portuguese",

	"Arabic":     "Arabic",
	"Hindi":      "Hindi",
	"Japanese":   "Japanese",
	"Korean":     "Korean",
	"German":     "German",
	"Italian":    "Italian",
	"Dutch":      "Dutch",
	"Russian":    "Russian",
	"Turkish":    "Turkish",
	"Thai":       "Thai",
	"Vietnamese": "Vietnamese",
	"Indonesian": "Indonesian",
	"Malay":      "Malay",
	"Filipino":   "Filipino",

	"Gujarati":  "Gujarati",
	"Bengali":   "Bengali",
	"Tamil":     "Tamil",
	"Telugu":    "Telugu",
	"Kannada":   "Kannada",
	"Malayalam": "Malayalam",
	"Marathi":   "Marathi",
	"Punjabi":   "Punjabi",
	"Urdu":      "Urdu",
	"Nepali":    "Nepali",
	"Sinhala":   "Sinhala",

	"French":     "French",
	"Spanish":    "Spanish",
	"Polish":     "Polish",
	"Czech":      "Czech",
	"Slovak":     "Slovak",
	"Hungarian":  "Hungarian",
	"Romanian":   "Romanian",
	"Bulgarian":  "Bulgarian",
	"Croatian":   "Croatian",
	"Serbian":    "Serbian",
	"Slovenian":  "Slovenian",
	"Macedonian": "Macedonian",
	"Ukrainian":  "Ukrainian",
	"Greek":      "Greek",
	"Hebrew":     "Hebrew",
	"Finnish":    "Finnish",
	"Swedish":    "Swedish",
	"Norwegian":  "Norwegian",
	"Danish":     "Danish",
	"Icelandic":  "Icelandic",
	"Estonian":   "Estonian",
	"Latvian":    "Latvian",
	"Lithuanian": "Lithuanian",
	"Maltese":    "Maltese",
	"Welsh":      "Welsh",
	"Catalan":    "Catalan",
	"Galician":   "Galician",
	"Albanian":   "Albanian",
	"Armenian":   "Armenian",
	"Georgian":   "Georgian",
	"Uzbek":      "Uzbek",

	"Afrikaans": "Afrikaans",
	"Amharic":   "Amharic",
	"Swahili":   "Swahili",

	"Burmese":   "Burmese",
	"Khmer":     "Khmer",
	"Sundanese": "Sundanese",
}

// LanguageCode 语言显示名转为故事写作语言，未收录时回退到 English。
func LanguageCode(languageName string) string {
	if code, ok := languageCodes[languageName]; ok {
		return code
	}
	return "English"
}
