package bip39

import "strings"

// PhraseSeparator joins mnemonic words.
const PhraseSeparator = " "

// Word-count bounds accepted by IsPhraseShapeValid.
const (
	MinPhraseWords = 12
	MaxPhraseWords = 24
)

// JoinPhrase joins words with a single ASCII space.
func JoinPhrase(words []string) string {
	return strings.Join(words, PhraseSeparator)
}

// IsPhraseShapeValid reports whether phrase has 12 to 24 words and a
// word count divisible by 3. Words are counted by splitting on single
// spaces, so repeated spaces produce empty words that count too.
//
// It does not check that the words exist in any list or that the
// checksum matches.
func IsPhraseShapeValid(phrase string) bool {
	n := len(strings.Split(phrase, PhraseSeparator))
	return n >= MinPhraseWords && n <= MaxPhraseWords && n%3 == 0
}
