package bip39

import (
	"strings"
)

// WordListSize is the number of words every list must hold (2^BitsPerWord).
const WordListSize = 1 << BitsPerWord

// WordList is an ordered, immutable list of WordListSize distinct words.
// The zero value is empty and resolves nothing.
type WordList struct {
	words []string
	index map[string]WordIndex
}

// NewWordList copies words into a WordList.
func NewWordList(words []string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, &InvalidWordsCountError{Count: len(words)}
	}

	wl := &WordList{
		words: make([]string, WordListSize),
		index: make(map[string]WordIndex, WordListSize),
	}
	for i, w := range words {
		if first, ok := wl.index[w]; ok {
			return nil, &DuplicateWordError{Word: w, First: int(first), Again: i}
		}
		wl.words[i] = w
		wl.index[w] = WordIndex(i)
	}
	return wl, nil
}

// Len returns the number of words in the list.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Word returns the word at index i.
func (wl *WordList) Word(i WordIndex) (string, error) {
	if int(i) >= len(wl.words) {
		return "", &WordNotFoundError{Index: i}
	}
	return wl.words[i], nil
}

// Resolve maps every index to its word, stopping at the first miss.
func (wl *WordList) Resolve(indices []WordIndex) ([]string, error) {
	words := make([]string, 0, len(indices))
	for _, i := range indices {
		w, err := wl.Word(i)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Contains reports whether word is in the list.
func (wl *WordList) Contains(word string) bool {
	_, ok := wl.index[word]
	return ok
}

// Index returns the position of word in the list.
func (wl *WordList) Index(word string) (WordIndex, bool) {
	i, ok := wl.index[word]
	return i, ok
}

// Words returns a copy of the list in order.
func (wl *WordList) Words() []string {
	cp := make([]string, len(wl.words))
	copy(cp, wl.words)
	return cp
}

// Text returns the list as newline-separated text.
func (wl *WordList) Text() string {
	return strings.Join(wl.words, "\n")
}
