// Package i18n supplies locale-appropriate labels for catalog item ids.
// The engine itself never carries display strings.
package i18n

import "strings"

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// ParseLanguage parses user/config input, defaulting to English.
func ParseLanguage(input string) Language {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "ar", "arabic":
		return LangArabic
	default:
		return LangEnglish
	}
}

var english = map[string]string{
	"fajr":           "Fajr",
	"dhuhr":          "Dhuhr",
	"asr":            "Asr",
	"maghrib":        "Maghrib",
	"isha":           "Isha",
	"morning_athkar": "Morning Athkar",
	"evening_athkar": "Evening Athkar",
	"quran_day":      "Quran Reading",
	"quran_tarawih":  "Tarawih Reading",

	"in_time": "Prayed in time",
	"athkar":  "Athkar read",
	"sunna":   "Sunna prayers completed",
	"pages":   "Pages read",
}

var arabic = map[string]string{
	"fajr":           "الفجر",
	"dhuhr":          "الظهر",
	"asr":            "العصر",
	"maghrib":        "المغرب",
	"isha":           "العشاء",
	"morning_athkar": "أذكار الصباح",
	"evening_athkar": "أذكار المساء",
	"quran_day":      "قراءة القرآن",
	"quran_tarawih":  "قراءة التراويح",

	"in_time": "الصلاة في وقتها",
	"athkar":  "قراءة الأذكار",
	"sunna":   "السنن المؤكدة المكتملة",
	"pages":   "الصفحات المقروءة",
}

// Label returns the display label for a key in the given language. Unknown
// keys fall back to the key itself so new catalog ids degrade gracefully.
func Label(lang Language, key string) string {
	var m map[string]string
	switch lang {
	case LangArabic:
		m = arabic
	default:
		m = english
	}
	if s, ok := m[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}
