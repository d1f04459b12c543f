package bip39

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the encoding pipeline.
var (
	// ErrInvalidEntropy is returned for entropy outside 128-256 bits or not a multiple of 32 bits.
	ErrInvalidEntropy = errors.New("entropy not valid: it should be between 128 and 256 bits and a multiple of 32")

	// ErrHexDecode is returned when a hex string cannot be decoded.
	ErrHexDecode = errors.New("hex decode")

	// ErrBitRead is returned when the bit cursor runs past the end of its buffer.
	ErrBitRead = errors.New("bit read")

	// ErrInvalidWordsCount matches any InvalidWordsCountError.
	ErrInvalidWordsCount = errors.New("invalid words count")

	// ErrWordNotFound matches any WordNotFoundError.
	ErrWordNotFound = errors.New("word not found")
)

// InvalidWordsCountError reports a word list that does not hold exactly WordListSize entries.
type InvalidWordsCountError struct {
	Count int
}

func (e *InvalidWordsCountError) Error() string {
	return fmt.Sprintf("the words count (%d) is not valid", e.Count)
}

// Is lets errors.Is(err, ErrInvalidWordsCount) match.
func (e *InvalidWordsCountError) Is(target error) bool {
	return target == ErrInvalidWordsCount
}

// WordNotFoundError reports an index with no word in the list.
type WordNotFoundError struct {
	Index WordIndex
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("no word found at selected index %d", e.Index)
}

// Is lets errors.Is(err, ErrWordNotFound) match.
func (e *WordNotFoundError) Is(target error) bool {
	return target == ErrWordNotFound
}

// DuplicateWordError reports a word that appears twice in a list.
type DuplicateWordError struct {
	Word  string
	First int
	Again int
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("duplicate word %q at index %d (first seen at %d)", e.Word, e.Again, e.First)
}
