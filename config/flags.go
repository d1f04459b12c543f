package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Version is the klingnet-mnemonic release.
const Version = "0.1.0"

// ErrHelp is returned by Load when --help or --version was handled.
var ErrHelp = errors.New("help requested")

// Flags holds parsed global command-line flags.
type Flags struct {
	Help    bool
	Version bool

	DataDir  string
	Config   string
	Lang     string
	WordList string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Command and its arguments (everything after the global flags).
	Command string
	Args    []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses the global flags that precede the command.
// Parsing stops at the first non-flag argument, which names the command.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")
	fs.StringVar(&f.Lang, "lang", "", "Word list language")
	fs.StringVar(&f.WordList, "wordlist", "", "Custom word list file")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return nil, err
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")

	rest := fs.Args()
	if len(rest) > 0 {
		f.Command = rest[0]
		f.Args = rest[1:]
	}
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Lang != "" {
		cfg.Mnemonic.Language = f.Lang
		// An explicit language wins over a list file from the config file.
		if f.WordList == "" {
			cfg.Mnemonic.WordListFile = ""
		}
	}
	if f.WordList != "" {
		cfg.Mnemonic.WordListFile = f.WordList
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the top-level help text to w.
func PrintUsage(w io.Writer) {
	usage := `klingnet-mnemonic - BIP-39 mnemonic encoder and keystore

Usage:
  klingnet-mnemonic [global options] <command> [command options]

Commands:
  generate   Generate a random mnemonic
  encode     Encode hex entropy as a mnemonic
  seed       Derive the 512-bit seed of a phrase
  master     Derive the BIP-32 master key of a phrase
  check      Check the word count of a phrase
  wordlist   Show word list details and look up words
  wallet     Manage encrypted wallets (create, import, list, show, delete)

Global Options:
  --help, -h      Show this help message
  --version, -v   Show version information
  --datadir       Data directory (default: ~/.klingnet-mnemonic)
  --config, -c    Config file path (default: <datadir>/mnemonic.conf)
  --lang          Word list language (default: english)
  --wordlist      Custom word list file (overrides --lang)
  --log-level     Log level: debug, info, warn, error (default: info)
  --log-file      Log file path (default: stderr only)
  --log-json      Output logs as JSON

Examples:
  klingnet-mnemonic generate --words 12
  klingnet-mnemonic --lang japanese encode --entropy 00000000000000000000000000000000
  klingnet-mnemonic seed --phrase "legal winner thank year wave sausage worth useful legal winner thank yellow"
  klingnet-mnemonic wallet create --name savings
`
	fmt.Fprint(w, usage)
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file
// 3. Command-line flags
//
// It returns ErrHelp after printing help or version information.
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("parse flags: %w", err)
	}
	if flags.Help {
		PrintUsage(os.Stdout)
		return nil, flags, ErrHelp
	}
	if flags.Version {
		fmt.Printf("klingnet-mnemonic version %s\n", Version)
		return nil, flags, ErrHelp
	}

	cfg := Default()
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}

// EnsureDataDirs creates the data directory structure and a default config
// file if they don't already exist. It is idempotent.
func EnsureDataDirs(cfg *Config) error {
	dirs := []string{
		cfg.DataDir,
		cfg.KeystoreDir(),
		cfg.LogsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}

	return nil
}
