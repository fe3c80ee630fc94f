package domain

import "strings"

type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage accepts "es", "en" or a tag such as "en-US"; anything else is Spanish.
func ParseLanguage(s string) Language {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return LanguageEN
	}
	return LanguageES
}

type LocalizedText struct {
	ES string `json:"es" yaml:"es"`
	EN string `json:"en" yaml:"en"`
}

func L(es, en string) LocalizedText {
	return LocalizedText{ES: es, EN: en}
}

// Resolve picks the text for lang, falling back to Spanish.
func (t LocalizedText) Resolve(lang Language) string {
	if lang == LanguageEN && t.EN != "" {
		return t.EN
	}
	return t.ES
}
