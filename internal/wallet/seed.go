package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = bip39.SeedSize

// SeedFromMnemonic derives a 512-bit seed from a phrase and optional passphrase.
func SeedFromMnemonic(phrase, passphrase string) ([]byte, error) {
	if err := ValidatePhrase(phrase); err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	seed := bip39.DeriveSeed(phrase, passphrase)
	return seed.Bytes(), nil
}
