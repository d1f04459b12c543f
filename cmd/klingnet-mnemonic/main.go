// klingnet-mnemonic encodes entropy as BIP-39 mnemonics, derives seeds and
// master keys, and keeps mnemonics in an encrypted keystore.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/klingnet-mnemonic/config"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		return
	}
	if err != nil {
		fatal("%v", err)
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	if flags.Command == "" {
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	args := flags.Args
	switch flags.Command {
	case "generate":
		cmdGenerate(cfg, args)
	case "encode":
		cmdEncode(cfg, args)
	case "seed":
		cmdSeed(args)
	case "master":
		cmdMaster(args)
	case "check":
		cmdCheck(args)
	case "wordlist":
		cmdWordList(cfg, args)
	case "wallet":
		cmdWallet(cfg, args)
	case "help":
		config.PrintUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", flags.Command)
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}
}

// loadWordList resolves the configured word list and a label for it.
// A custom file is labelled "custom".
func loadWordList(cfg *config.Config) (*bip39.WordList, string, error) {
	if path := cfg.Mnemonic.WordListFile; path != "" {
		list, err := wordlist.LoadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("load word list: %w", err)
		}
		log.WordList.Debug().
			Str("file", path).
			Str("fingerprint", wordlist.Fingerprint(list).Short()).
			Msg("Custom word list loaded")
		return list, "custom", nil
	}

	lang, err := wordlist.ParseLanguage(cfg.Mnemonic.Language)
	if err != nil {
		return nil, "", err
	}
	list, err := wordlist.Load(lang)
	if err != nil {
		return nil, "", fmt.Errorf("load word list: %w", err)
	}
	log.WordList.Debug().
		Str("language", lang.String()).
		Str("fingerprint", wordlist.Fingerprint(list).Short()).
		Msg("Word list loaded")
	return list, lang.String(), nil
}

// mustLoadWordList is loadWordList for commands that hold no resources.
func mustLoadWordList(cfg *config.Config) (*bip39.WordList, string) {
	list, label, err := loadWordList(cfg)
	if err != nil {
		fatal("%v", err)
	}
	return list, label
}

// ── Mnemonic commands ───────────────────────────────────────────────────

func cmdGenerate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	words := fs.Int("words", cfg.Mnemonic.Words, "Number of words (12, 15, 18, 21, 24)")
	showEntropy := fs.Bool("show-entropy", false, "Also print the entropy as hex")
	fs.Parse(args)

	list, _ := mustLoadWordList(cfg)
	m, err := wallet.GenerateMnemonic(list, *words)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(m.Phrase())
	if *showEntropy {
		fmt.Printf("entropy: %s\n", m.Entropy().Hex())
	}
}

func cmdEncode(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	entropyHex := fs.String("entropy", "", "Entropy as hex (16 to 32 bytes, multiple of 4)")
	fs.Parse(args)

	if *entropyHex == "" {
		fatal("Usage: klingnet-mnemonic encode --entropy <hex>")
	}

	e, err := bip39.EntropyFromHex(strings.TrimPrefix(*entropyHex, "0x"))
	if err != nil {
		fatal("%v", err)
	}
	list, _ := mustLoadWordList(cfg)
	m, err := bip39.NewMnemonic(e, list)
	if err != nil {
		fatal("encode mnemonic: %v", err)
	}
	fmt.Println(m.Phrase())
}

// phraseFlags registers the flags shared by commands that take a phrase.
type phraseFlags struct {
	phrase     *string
	passphrase *string
	prompt     *bool
}

func addPhraseFlags(fs *flag.FlagSet) phraseFlags {
	return phraseFlags{
		phrase:     fs.String("phrase", "", "Mnemonic phrase (prompted when omitted)"),
		passphrase: fs.String("passphrase", "", "Optional passphrase"),
		prompt:     fs.Bool("passphrase-prompt", false, "Prompt for the passphrase without echo"),
	}
}

// resolve returns the phrase and passphrase, prompting where needed.
func (p phraseFlags) resolve() (string, string) {
	phrase := *p.phrase
	if phrase == "" {
		b, err := readPassword("Enter mnemonic phrase: ")
		if err != nil {
			fatal("read phrase: %v", err)
		}
		phrase = strings.TrimSpace(string(b))
	}
	if err := wallet.ValidatePhrase(phrase); err != nil {
		fatal("%v", err)
	}

	passphrase := *p.passphrase
	if *p.prompt {
		b, err := readPassword("Enter passphrase: ")
		if err != nil {
			fatal("read passphrase: %v", err)
		}
		passphrase = string(b)
	}
	return phrase, passphrase
}

func cmdSeed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	pf := addPhraseFlags(fs)
	fs.Parse(args)

	phrase, passphrase := pf.resolve()

	done := log.Benchmark("seed derivation")
	seed, err := wallet.SeedFromMnemonic(phrase, passphrase)
	done()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(hex.EncodeToString(seed))
}

func cmdMaster(args []string) {
	fs := flag.NewFlagSet("master", flag.ExitOnError)
	pf := addPhraseFlags(fs)
	path := fs.String("path", "m", "Derivation path, e.g. m/44'/0'/0'")
	neuter := fs.Bool("public", false, "Print the extended public key only")
	fs.Parse(args)

	indices, err := wallet.ParsePath(*path)
	if err != nil {
		fatal("%v", err)
	}

	phrase, passphrase := pf.resolve()
	seed, err := wallet.SeedFromMnemonic(phrase, passphrase)
	if err != nil {
		fatal("%v", err)
	}
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		fatal("%v", err)
	}
	key, err := master.DerivePath(indices...)
	if err != nil {
		fatal("%v", err)
	}
	if *neuter {
		key = key.Neuter()
	} else if _, err := key.PrivateKey(); err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Path:       %s\n", *path)
	fmt.Printf("Depth:      %d\n", key.Depth())
	fmt.Printf("Extended:   %s\n", key.String())
	fmt.Printf("Public key: %s\n", hex.EncodeToString(key.PublicKeyBytes()))
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	phrase := fs.String("phrase", "", "Mnemonic phrase")
	fs.Parse(args)

	if err := wallet.ValidatePhrase(*phrase); err != nil {
		fmt.Println("invalid")
		log.CLI.Debug().Err(err).Msg("Phrase rejected")
		os.Exit(1)
	}
	fmt.Println("valid")
}

func cmdWordList(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("wordlist", flag.ExitOnError)
	index := fs.Int("index", -1, "Print the word at this index")
	word := fs.String("word", "", "Print the index of this word")
	dump := fs.Bool("dump", false, "Print every word, one per line")
	fs.Parse(args)

	list, label := mustLoadWordList(cfg)

	switch {
	case *index >= 0:
		if *index >= bip39.WordListSize {
			fatal("index %d out of range [0, %d)", *index, bip39.WordListSize)
		}
		w, err := list.Word(bip39.WordIndex(*index))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(w)
	case *word != "":
		i, ok := list.Index(norm.NFKD.String(*word))
		if !ok {
			fatal("word %q is not in the %s list", *word, label)
		}
		fmt.Println(i)
	case *dump:
		fmt.Println(list.Text())
	default:
		fmt.Printf("List:        %s\n", label)
		fmt.Printf("Words:       %d\n", list.Len())
		fmt.Printf("Fingerprint: %s\n", wordlist.Fingerprint(list))
	}
}

// ── Wallet commands ─────────────────────────────────────────────────────

const walletUsage = "Usage: klingnet-mnemonic wallet <create|import|list|show|delete> [flags]"

func cmdWallet(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fatal(walletUsage)
	}

	if err := config.EnsureDataDirs(cfg); err != nil {
		fatal("%v", err)
	}
	db, err := storage.NewBadger(cfg.KeystoreDir())
	if err != nil {
		fatal("open keystore: %v", err)
	}
	defer db.Close()

	ks, err := wallet.NewKeystore(db, wallet.EncryptionParams{
		Memory:      cfg.Keystore.Memory,
		Iterations:  cfg.Keystore.Iterations,
		Parallelism: cfg.Keystore.Parallelism,
	})
	if err != nil {
		fatal("%v", err)
	}

	// fatal skips deferred calls; subcommands return errors so the
	// database is closed before exit.
	var cmdErr error
	switch args[0] {
	case "create":
		cmdErr = cmdWalletCreate(cfg, ks, args[1:])
	case "import":
		cmdErr = cmdWalletImport(cfg, ks, args[1:])
	case "list":
		cmdErr = cmdWalletList(ks)
	case "show":
		cmdErr = cmdWalletShow(cfg, ks, args[1:])
	case "delete":
		cmdErr = cmdWalletDelete(ks, args[1:])
	default:
		cmdErr = fmt.Errorf("unknown wallet command: %s\n%s", args[0], walletUsage)
	}
	if errors.Is(cmdErr, flag.ErrHelp) {
		return
	}
	if cmdErr != nil {
		db.Close()
		fatal("%v", cmdErr)
	}
}

func cmdWalletCreate(cfg *config.Config, ks *wallet.Keystore, args []string) error {
	fs := flag.NewFlagSet("wallet create", flag.ContinueOnError)
	name := fs.String("name", "", "Wallet name")
	words := fs.Int("words", cfg.Mnemonic.Words, "Number of words (12, 15, 18, 21, 24)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("usage: klingnet-mnemonic wallet create --name <name> [--words N]")
	}

	list, label, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	m, err := wallet.GenerateMnemonic(list, *words)
	if err != nil {
		return err
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}
	if err := ks.Create(*name, m, label, list, password); err != nil {
		return fmt.Errorf("create wallet: %w", err)
	}

	fmt.Println("Mnemonic (write this down!):")
	fmt.Printf("  %s\n\n", m.Phrase())
	fmt.Printf("Wallet %q created.\n", *name)
	return nil
}

func cmdWalletImport(cfg *config.Config, ks *wallet.Keystore, args []string) error {
	fs := flag.NewFlagSet("wallet import", flag.ContinueOnError)
	name := fs.String("name", "", "Wallet name")
	entropyHex := fs.String("entropy", "", "Entropy as hex (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("usage: klingnet-mnemonic wallet import --name <name> [--entropy <hex>]")
	}

	raw := *entropyHex
	if raw == "" {
		b, err := readPassword("Enter entropy (hex): ")
		if err != nil {
			return fmt.Errorf("read entropy: %w", err)
		}
		raw = strings.TrimSpace(string(b))
	}
	e, err := bip39.EntropyFromHex(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return err
	}

	list, label, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	m, err := bip39.NewMnemonic(e, list)
	if err != nil {
		return fmt.Errorf("encode mnemonic: %w", err)
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}
	if err := ks.Create(*name, m, label, list, password); err != nil {
		return fmt.Errorf("import wallet: %w", err)
	}
	fmt.Printf("Wallet %q imported (%d words).\n", *name, m.WordCount())
	return nil
}

func cmdWalletList(ks *wallet.Keystore) error {
	names, err := ks.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No wallets found.")
		return nil
	}
	for _, name := range names {
		info, err := ks.Info(name)
		if err != nil {
			fmt.Printf("  %-20s (unreadable: %v)\n", name, err)
			continue
		}
		fmt.Printf("  %-20s %2d words  %-20s %s\n",
			info.Name, info.Words, info.Language, info.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func cmdWalletShow(cfg *config.Config, ks *wallet.Keystore, args []string) error {
	fs := flag.NewFlagSet("wallet show", flag.ContinueOnError)
	name := fs.String("name", "", "Wallet name")
	reveal := fs.Bool("reveal", false, "Decrypt and print the mnemonic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("usage: klingnet-mnemonic wallet show --name <name> [--reveal]")
	}

	info, err := ks.Info(*name)
	if err != nil {
		return err
	}
	fmt.Printf("Name:        %s\n", info.Name)
	fmt.Printf("Language:    %s\n", info.Language)
	fmt.Printf("Words:       %d\n", info.Words)
	fmt.Printf("Word list:   %s\n", info.ListFingerprint)
	fmt.Printf("Created:     %s\n", info.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	if !*reveal {
		return nil
	}

	list, _, err := loadWordList(cfg)
	if err != nil {
		return err
	}
	password, err := readPassword("Enter password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	m, err := ks.Load(*name, list, password)
	if err != nil {
		return err
	}
	fmt.Printf("Mnemonic:    %s\n", m.Phrase())
	return nil
}

func cmdWalletDelete(ks *wallet.Keystore, args []string) error {
	fs := flag.NewFlagSet("wallet delete", flag.ContinueOnError)
	name := fs.String("name", "", "Wallet name")
	all := fs.Bool("all", false, "Delete every wallet")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *all:
		if err := ks.DeleteAll(); err != nil {
			return err
		}
		fmt.Println("All wallets deleted.")
	case *name != "":
		if err := ks.Delete(*name); err != nil {
			return err
		}
		fmt.Printf("Wallet %q deleted.\n", *name)
	default:
		return errors.New("usage: klingnet-mnemonic wallet delete --name <name> | --all")
	}
	return nil
}

// ── Prompts ─────────────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func readNewPassword() ([]byte, error) {
	password, err := readPassword("Enter password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if string(password) != string(confirm) {
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
