package bip39

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// Seed derivation parameters.
const (
	SeedSize       = 64
	SeedIterations = 2048
	SaltPrefix     = "mnemonic"
)

// Seed is the 512-bit key material derived from a phrase.
type Seed [SeedSize]byte

// DeriveSeed runs PBKDF2-HMAC-SHA512 over the NFKD form of phrase, salted
// with "mnemonic" followed by the NFKD form of passphrase. An empty
// passphrase means none.
func DeriveSeed(phrase, passphrase string) Seed {
	password := norm.NFKD.Bytes([]byte(phrase))
	salt := append([]byte(SaltPrefix), norm.NFKD.Bytes([]byte(passphrase))...)

	var s Seed
	copy(s[:], pbkdf2.Key(password, salt, SeedIterations, SeedSize, sha512.New))
	return s
}

// SeedFromHex parses a 128-character hex seed.
func SeedFromHex(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrHexDecode, err)
	}
	if len(b) != SeedSize {
		return Seed{}, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(b))
	}
	var seed Seed
	copy(seed[:], b)
	return seed, nil
}

// Hex returns the 128-character lowercase hex encoding.
func (s Seed) Hex() string {
	return hex.EncodeToString(s[:])
}

// Bytes returns a copy of the seed as a slice.
func (s Seed) Bytes() []byte {
	b := make([]byte, SeedSize)
	copy(b, s[:])
	return b
}

func (s Seed) String() string {
	return s.Hex()
}
