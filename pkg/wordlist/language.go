// Package wordlist supplies the 2048-word lists mnemonics are encoded with.
package wordlist

import (
	"fmt"
	"strings"
)

// Language identifies a built-in word list.
type Language int

const (
	English Language = iota
	French
	Italian
	Spanish
	Czech
	Japanese
	Korean
	ChineseSimplified
	ChineseTraditional
)

// Languages lists every built-in language.
var Languages = []Language{
	English, French, Italian, Spanish, Czech,
	Japanese, Korean, ChineseSimplified, ChineseTraditional,
}

var languageNames = map[Language]string{
	English:            "english",
	French:             "french",
	Italian:            "italian",
	Spanish:            "spanish",
	Czech:              "czech",
	Japanese:           "japanese",
	Korean:             "korean",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("language(%d)", int(l))
}

// ParseLanguage accepts a language name or a short code ("en", "fr", "zh-cn", ...).
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "english", "en", "":
		return English, nil
	case "french", "fr":
		return French, nil
	case "italian", "it":
		return Italian, nil
	case "spanish", "es":
		return Spanish, nil
	case "czech", "cs":
		return Czech, nil
	case "japanese", "ja", "jp":
		return Japanese, nil
	case "korean", "ko":
		return Korean, nil
	case "chinese_simplified", "zh-cn", "zh-hans":
		return ChineseSimplified, nil
	case "chinese_traditional", "zh-tw", "zh-hant":
		return ChineseTraditional, nil
	default:
		return 0, fmt.Errorf("unknown language %q", s)
	}
}
