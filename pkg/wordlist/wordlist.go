package wordlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/text/unicode/norm"
)

// builtin returns the raw word slice for a language.
func builtin(lang Language) ([]string, error) {
	switch lang {
	case English:
		return wordlists.English, nil
	case French:
		return wordlists.French, nil
	case Italian:
		return wordlists.Italian, nil
	case Spanish:
		return wordlists.Spanish, nil
	case Czech:
		return wordlists.Czech, nil
	case Japanese:
		return wordlists.Japanese, nil
	case Korean:
		return wordlists.Korean, nil
	case ChineseSimplified:
		return wordlists.ChineseSimplified, nil
	case ChineseTraditional:
		return wordlists.ChineseTraditional, nil
	default:
		return nil, fmt.Errorf("no word list for %s", lang)
	}
}

// Load returns the built-in list for lang.
func Load(lang Language) (*bip39.WordList, error) {
	words, err := builtin(lang)
	if err != nil {
		return nil, err
	}
	list, err := bip39.NewWordList(normalize(words))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", lang, err)
	}
	return list, nil
}

// ReadWords splits text on newlines and trims every entry.
// Empty text yields one empty entry, so it fails with a count of 1.
func ReadWords(text string) ([]string, error) {
	parts := strings.Split(text, "\n")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		words = append(words, strings.TrimSpace(p))
	}
	if len(words) != bip39.WordListSize {
		return nil, &bip39.InvalidWordsCountError{Count: len(words)}
	}
	return words, nil
}

// Parse builds a list from newline-separated text.
func Parse(text string) (*bip39.WordList, error) {
	words, err := ReadWords(text)
	if err != nil {
		return nil, err
	}
	return bip39.NewWordList(normalize(words))
}

// LoadFile reads a newline-separated list from path. A single trailing
// line terminator is ignored.
func LoadFile(path string) (*bip39.WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error when reading file: %w", err)
	}
	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	list, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	return list, nil
}

// Fingerprint identifies a list by the BLAKE3 hash of its newline-joined words.
func Fingerprint(list *bip39.WordList) types.Hash {
	return crypto.Hash([]byte(list.Text()))
}

func normalize(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = norm.NFKD.String(w)
	}
	return out
}
