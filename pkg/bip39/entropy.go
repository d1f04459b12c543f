// Package bip39 encodes entropy into BIP-39 mnemonic phrases and derives
// binary seeds from phrases.
//
// Encoding: entropy -> entropy||checksum byte -> 11-bit word indices -> words.
// Seed derivation: PBKDF2-HMAC-SHA512(NFKD(phrase), "mnemonic"+NFKD(passphrase)).
package bip39

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	bitsPerByte = 8

	// EntropyMultiple is the bit granularity entropy must respect.
	EntropyMultiple = 32

	// MinEntropyBits and MaxEntropyBits bound the accepted entropy length.
	MinEntropyBits = 128
	MaxEntropyBits = 256
)

// EntropySize enumerates the legal entropy lengths in bits.
type EntropySize int

const (
	Bits128 EntropySize = 128
	Bits160 EntropySize = 160
	Bits192 EntropySize = 192
	Bits224 EntropySize = 224
	Bits256 EntropySize = 256
)

// EntropySizes lists every legal size, smallest first.
var EntropySizes = []EntropySize{Bits128, Bits160, Bits192, Bits224, Bits256}

// Bits returns the size in bits.
func (s EntropySize) Bits() int {
	return int(s)
}

// Bytes returns the size in bytes.
func (s EntropySize) Bytes() int {
	return int(s) / bitsPerByte
}

// WordCount returns the number of words a mnemonic of this size has.
func (s EntropySize) WordCount() int {
	return (int(s) + int(s)/EntropyMultiple) / BitsPerWord
}

// Valid reports whether s is one of the enumerated sizes.
func (s EntropySize) Valid() bool {
	return validEntropyBits(int(s))
}

func (s EntropySize) String() string {
	return fmt.Sprintf("%d bits", int(s))
}

// EntropySizeFromWords maps a mnemonic word count to its entropy size.
func EntropySizeFromWords(words int) (EntropySize, error) {
	switch words {
	case 12:
		return Bits128, nil
	case 15:
		return Bits160, nil
	case 18:
		return Bits192, nil
	case 21:
		return Bits224, nil
	case 24:
		return Bits256, nil
	default:
		return 0, fmt.Errorf("word count %d must be one of 12, 15, 18, 21, 24", words)
	}
}

func validEntropyBits(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%EntropyMultiple == 0
}

// Entropy is a validated, immutable entropy buffer.
type Entropy struct {
	b []byte
}

// GenerateEntropy fills a new entropy buffer from crypto/rand.
// It panics if size is not one of the enumerated sizes or the system
// random source fails, neither of which a caller can recover from.
func GenerateEntropy(size EntropySize) Entropy {
	e, err := GenerateEntropyFrom(rand.Reader, size)
	if err != nil {
		panic(err)
	}
	return e
}

// GenerateEntropyFrom fills a new entropy buffer from r.
func GenerateEntropyFrom(r io.Reader, size EntropySize) (Entropy, error) {
	if !size.Valid() {
		return Entropy{}, fmt.Errorf("%w: %d bits", ErrInvalidEntropy, int(size))
	}
	b := make([]byte, size.Bytes())
	if _, err := io.ReadFull(r, b); err != nil {
		return Entropy{}, fmt.Errorf("read entropy: %w", err)
	}
	return Entropy{b: b}, nil
}

// EntropyFromBytes validates b and copies it into a new Entropy.
func EntropyFromBytes(b []byte) (Entropy, error) {
	if !validEntropyBits(len(b) * bitsPerByte) {
		return Entropy{}, ErrInvalidEntropy
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Entropy{b: cp}, nil
}

// EntropyFromHex decodes s and validates the result.
func EntropyFromHex(s string) (Entropy, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Entropy{}, fmt.Errorf("%w: %v", ErrHexDecode, err)
	}
	return EntropyFromBytes(b)
}

// Bits returns the entropy length in bits.
func (e Entropy) Bits() int {
	return len(e.b) * bitsPerByte
}

// Size returns the entropy length as an EntropySize.
func (e Entropy) Size() EntropySize {
	return EntropySize(e.Bits())
}

// Bytes returns a copy of the raw entropy.
func (e Entropy) Bytes() []byte {
	cp := make([]byte, len(e.b))
	copy(cp, e.b)
	return cp
}

// Hex returns the lowercase hex encoding of the entropy.
func (e Entropy) Hex() string {
	return hex.EncodeToString(e.b)
}

// IsZero reports whether e is the zero value (never validated).
func (e Entropy) IsZero() bool {
	return len(e.b) == 0
}

// Equal reports whether two entropy buffers hold the same bytes.
func (e Entropy) Equal(other Entropy) bool {
	return bytes.Equal(e.b, other.b)
}
