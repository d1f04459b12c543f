// Package config handles klingnet-mnemonic configuration.
//
// Settings are layered: built-in defaults, then the config file, then
// command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime configuration.
type Config struct {
	DataDir string `conf:"datadir"`

	// Mnemonic encoding
	Mnemonic MnemonicConfig

	// Encrypted keystore
	Keystore KeystoreConfig

	// Logging
	Log LogConfig
}

// MnemonicConfig selects the word list and default mnemonic length.
type MnemonicConfig struct {
	Language     string `conf:"language"`
	WordListFile string `conf:"wordlist.file"` // Overrides Language when set.
	Words        int    `conf:"words"`
}

// KeystoreConfig holds the Argon2id cost used for new wallets.
// Existing wallets keep the parameters they were written with.
type KeystoreConfig struct {
	Memory      uint32 `conf:"keystore.memory"` // KiB
	Iterations  uint32 `conf:"keystore.iterations"`
	Parallelism uint8  `conf:"keystore.parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-mnemonic
//	macOS:   ~/Library/Application Support/KlingnetMnemonic
//	Windows: %APPDATA%\KlingnetMnemonic
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetMnemonic")
	default:
		return filepath.Join(home, ".klingnet-mnemonic")
	}
}

// KeystoreDir returns the keystore database directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "mnemonic.conf")
}
