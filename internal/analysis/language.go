package analysis

import "regexp"

// HindiPlaceholder replaces Devanagari runs in TranslateHindi output.
const HindiPlaceholder = "[Translated from Hindi]"

// mixedLanguageWordThreshold is the number of Latin words a Devanagari document
// must exceed to be reported as mixed.
const mixedLanguageWordThreshold = 50

var (
	devanagariChar = regexp.MustCompile(`[\x{0900}-\x{097F}]`)
	devanagariRun  = regexp.MustCompile(`[\x{0900}-\x{097F}]+`)
	latinWord      = regexp.MustCompile(`[a-zA-Z]+`)
)

// DetectLanguage reports english, hindi or mixed from Devanagari presence and
// the number of ASCII letter runs.
func DetectLanguage(text string) Language {
	if !devanagariChar.MatchString(text) {
		return LanguageEnglish
	}
	if len(latinWord.FindAllStringIndex(text, -1)) > mixedLanguageWordThreshold {
		return LanguageMixed
	}
	return LanguageHindi
}

// TranslateHindi is a placeholder translation: every maximal Devanagari run is
// replaced by HindiPlaceholder. Everything else is returned unchanged.
func TranslateHindi(text string) string {
	return devanagariRun.ReplaceAllLiteralString(text, HindiPlaceholder)
}
