package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if cfg.Mnemonic.WordListFile == "" {
		if _, err := wordlist.ParseLanguage(cfg.Mnemonic.Language); err != nil {
			return fmt.Errorf("language: %w", err)
		}
	}
	if _, err := bip39.EntropySizeFromWords(cfg.Mnemonic.Words); err != nil {
		return fmt.Errorf("words: %w", err)
	}

	k := cfg.Keystore
	if k.Iterations < 1 {
		return fmt.Errorf("keystore.iterations must be at least 1")
	}
	if k.Parallelism < 1 {
		return fmt.Errorf("keystore.parallelism must be at least 1")
	}
	if k.Memory < 8*uint32(k.Parallelism) {
		return fmt.Errorf("keystore.memory must be at least %d KiB", 8*uint32(k.Parallelism))
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be one of %s", strings.Join(log.LevelNames(), ", "))
	}
	return nil
}
