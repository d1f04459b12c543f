package bip39

import (
	"fmt"
)

// Mnemonic is the word sequence encoding an Entropy.
type Mnemonic struct {
	words   []string
	entropy Entropy
}

// NewMnemonic encodes e with the words of list.
func NewMnemonic(e Entropy, list *WordList) (*Mnemonic, error) {
	if !validEntropyBits(e.Bits()) {
		return nil, ErrInvalidEntropy
	}
	if list == nil || list.Len() != WordListSize {
		n := 0
		if list != nil {
			n = list.Len()
		}
		return nil, &InvalidWordsCountError{Count: n}
	}

	indices, err := e.WordIndices()
	if err != nil {
		return nil, fmt.Errorf("word indices: %w", err)
	}
	words, err := list.Resolve(indices)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}
	return &Mnemonic{words: words, entropy: e}, nil
}

// GenerateMnemonic encodes freshly generated entropy of the given size.
func GenerateMnemonic(size EntropySize, list *WordList) (*Mnemonic, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidEntropy, int(size))
	}
	return NewMnemonic(GenerateEntropy(size), list)
}

// Words returns a copy of the mnemonic words.
func (m *Mnemonic) Words() []string {
	cp := make([]string, len(m.words))
	copy(cp, m.words)
	return cp
}

// WordCount returns the number of words.
func (m *Mnemonic) WordCount() int {
	return len(m.words)
}

// Phrase returns the words joined by single spaces.
func (m *Mnemonic) Phrase() string {
	return JoinPhrase(m.words)
}

// Entropy returns the entropy the mnemonic was built from.
func (m *Mnemonic) Entropy() Entropy {
	return m.entropy
}

// Seed derives the seed for this mnemonic's phrase.
func (m *Mnemonic) Seed(passphrase string) Seed {
	return DeriveSeed(m.Phrase(), passphrase)
}

func (m *Mnemonic) String() string {
	return m.Phrase()
}
