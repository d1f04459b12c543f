package wallet

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/internal/storage"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/bip39"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/crypto"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/types"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/wordlist"
)

// KeystorePrefix namespaces wallet records in the database.
var KeystorePrefix = []byte("wallet/")

const recordVersion = 1

// Keystore errors.
var (
	ErrWalletExists   = errors.New("wallet already exists")
	ErrWalletNotFound = errors.New("wallet not found")
	ErrListMismatch   = errors.New("word list does not match the one the wallet was created with")
	ErrCorruptRecord  = errors.New("wallet record is corrupt")
)

// record is the stored form of a wallet. Only the encrypted entropy is
// secret; the phrase and seed are recomputed on load.
type record struct {
	Version          int        `json:"version"`
	Name             string     `json:"name"`
	Language         string     `json:"language"`
	Words            int        `json:"words"`
	ListFingerprint  types.Hash `json:"list_fingerprint"`
	CreatedAt        time.Time  `json:"created_at"`
	EncryptedEntropy []byte     `json:"encrypted_entropy"`
	Checksum         types.Hash `json:"checksum"`
}

func (r *record) checksum() types.Hash {
	var words, created [8]byte
	binary.BigEndian.PutUint64(words[:], uint64(r.Words))
	binary.BigEndian.PutUint64(created[:], uint64(r.CreatedAt.UnixNano()))
	return crypto.HashParts(
		[]byte(r.Name),
		[]byte(r.Language),
		words[:],
		r.ListFingerprint[:],
		created[:],
		r.EncryptedEntropy,
	)
}

// Info is the public metadata of a stored wallet.
type Info struct {
	Name            string
	Language        string
	Words           int
	ListFingerprint types.Hash
	CreatedAt       time.Time
}

// Keystore keeps encrypted mnemonic entropy in a storage.DB.
type Keystore struct {
	db     *storage.PrefixDB
	params EncryptionParams
}

// NewKeystore creates a keystore over db. Records are encrypted with params.
func NewKeystore(db storage.DB, params EncryptionParams) (*Keystore, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("keystore params: %w", err)
	}
	return &Keystore{
		db:     storage.NewPrefixDB(db, KeystorePrefix),
		params: params,
	}, nil
}

// ValidateName rejects names that cannot be used as record keys.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("wallet name must not be empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("wallet name longer than 64 characters")
	}
	if strings.ContainsAny(name, "/\x00") {
		return fmt.Errorf("wallet name %q contains '/' or NUL", name)
	}
	return nil
}

// Create stores m under name, encrypted with password. language labels the
// list m was encoded with; list is fingerprinted so Load can detect a
// different list.
func (ks *Keystore) Create(name string, m *bip39.Mnemonic, language string, list *bip39.WordList, password []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %q", ErrWalletExists, name)
	}

	entropy := m.Entropy().Bytes()
	defer wipe(entropy)

	done := log.Benchmark("keystore encrypt")
	encrypted, err := Encrypt(entropy, password, []byte(name), ks.params)
	done()
	if err != nil {
		return fmt.Errorf("encrypt entropy: %w", err)
	}

	rec := &record{
		Version:          recordVersion,
		Name:             name,
		Language:         language,
		Words:            m.WordCount(),
		ListFingerprint:  wordlist.Fingerprint(list),
		CreatedAt:        time.Now().UTC(),
		EncryptedEntropy: encrypted,
	}
	rec.Checksum = rec.checksum()

	if err := ks.put(rec); err != nil {
		return err
	}
	wl := log.WithWallet(name)
	wl.Info().
		Str("language", language).
		Int("words", rec.Words).
		Str("list", rec.ListFingerprint.Short()).
		Msg("Wallet created")
	return nil
}

// Load decrypts the wallet and re-encodes its mnemonic with list.
func (ks *Keystore) Load(name string, list *bip39.WordList, password []byte) (*bip39.Mnemonic, error) {
	rec, err := ks.get(name)
	if err != nil {
		return nil, err
	}
	if fp := wordlist.Fingerprint(list); fp != rec.ListFingerprint {
		return nil, fmt.Errorf("%w: wallet %q uses %s list %s, got %s",
			ErrListMismatch, name, rec.Language, rec.ListFingerprint.Short(), fp.Short())
	}

	entropy, err := Decrypt(rec.EncryptedEntropy, password, []byte(name))
	if err != nil {
		wl := log.WithWallet(name)
		wl.Warn().Err(err).Msg("Wallet decryption failed")
		return nil, fmt.Errorf("decrypt wallet: %w", err)
	}
	defer wipe(entropy)

	e, err := bip39.EntropyFromBytes(entropy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	m, err := bip39.NewMnemonic(e, list)
	if err != nil {
		return nil, fmt.Errorf("encode mnemonic: %w", err)
	}
	if m.WordCount() != rec.Words {
		return nil, fmt.Errorf("%w: %d words stored, %d decoded", ErrCorruptRecord, rec.Words, m.WordCount())
	}
	wl := log.WithWallet(name)
	wl.Debug().Msg("Wallet unlocked")
	return m, nil
}

// Info returns the metadata of a wallet without decrypting it.
func (ks *Keystore) Info(name string) (*Info, error) {
	rec, err := ks.get(name)
	if err != nil {
		return nil, err
	}
	return rec.info(), nil
}

// List returns the names of all wallets, sorted.
func (ks *Keystore) List() ([]string, error) {
	var names []string
	err := ks.db.ForEach(nil, func(key, _ []byte) error {
		names = append(names, string(key))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return names, nil
}

// Delete removes a wallet.
func (ks *Keystore) Delete(name string) error {
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	if err := ks.db.Delete([]byte(name)); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	wl := log.WithWallet(name)
	wl.Info().Msg("Wallet deleted")
	return nil
}

// DeleteAll removes every wallet in the keystore.
func (ks *Keystore) DeleteAll() error {
	if err := ks.db.DeleteAll(); err != nil {
		return fmt.Errorf("delete wallets: %w", err)
	}
	log.Wallet.Info().Msg("All wallets deleted")
	return nil
}

func (r *record) info() *Info {
	return &Info{
		Name:            r.Name,
		Language:        r.Language,
		Words:           r.Words,
		ListFingerprint: r.ListFingerprint,
		CreatedAt:       r.CreatedAt,
	}
}

func (ks *Keystore) put(rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := ks.db.Put([]byte(rec.Name), data); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func (ks *Keystore) get(name string) (*record, error) {
	data, err := ks.db.Get([]byte(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrWalletNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrCorruptRecord, err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("unsupported wallet version: %d", rec.Version)
	}
	if rec.ListFingerprint.IsZero() {
		return nil, fmt.Errorf("%w: no word list fingerprint for %q", ErrCorruptRecord, name)
	}
	if rec.Name != name || rec.checksum() != rec.Checksum {
		return nil, fmt.Errorf("%w: checksum mismatch for %q", ErrCorruptRecord, name)
	}
	return &rec, nil
}
