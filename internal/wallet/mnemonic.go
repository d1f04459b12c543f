// Package wallet derives HD keys from mnemonics and keeps mnemonic entropy
// in an encrypted keystore.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// DefaultWords is the word count of generated mnemonics.
const DefaultWords = 24

// ErrInvalidPhrase is returned for phrases that fail the shape check.
var ErrInvalidPhrase = errors.New("invalid mnemonic phrase")

// GenerateMnemonic creates a new mnemonic of the given word count from list.
func GenerateMnemonic(list *bip39.WordList, words int) (*bip39.Mnemonic, error) {
	size, err := bip39.EntropySizeFromWords(words)
	if err != nil {
		return nil, err
	}
	m, err := bip39.GenerateMnemonic(size, list)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return m, nil
}

// ValidatePhrase checks the word count of a phrase. Word membership and the
// checksum are not verified.
func ValidatePhrase(phrase string) error {
	if !bip39.IsPhraseShapeValid(phrase) {
		n := len(strings.Split(phrase, bip39.PhraseSeparator))
		return fmt.Errorf("%w: %d words, want 12-24 in steps of 3", ErrInvalidPhrase, n)
	}
	return nil
}
