package golingo

import "strings"

// LanguageNames maps short language codes to human-readable display names.
// Pack names default to these when the caller does not supply one.
var LanguageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"pl": "Polish",
	"ru": "Russian",
	"uk": "Ukrainian",
	"tr": "Turkish",
	"el": "Greek",
	"cs": "Czech",
	"sv": "Swedish",
	"da": "Danish",
	"nb": "Norwegian Bokmål",
	"fi": "Finnish",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"th": "Thai",
	"vi": "Vietnamese",
	"id": "Indonesian",
	"hi": "Hindi",
	"ar": "Arabic",
	"he": "Hebrew",
	"fa": "Persian",
	"ur": "Urdu",
	"sw": "Swahili",
}

// RTLLanguages contains language codes that use right-to-left text direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// GetLanguageName returns the display name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[NormalizeLang(code)]; ok {
		return name
	}
	return code
}

// NormalizeLang lowercases a language code and strips any region suffix
// (e.g., "es-MX" and "es_MX" both normalize to "es").
func NormalizeLang(code string) string {
	code = strings.ReplaceAll(code, "-", "_")
	base := strings.Split(code, "_")[0]
	return strings.ToLower(strings.TrimSpace(base))
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(code string) string {
	if RTLLanguages[NormalizeLang(code)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(code string) bool {
	return GetDirection(code) == "rtl"
}
