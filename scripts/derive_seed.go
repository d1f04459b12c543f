// derive_seed.go prints the seed, master key and pubkey for a mnemonic file.
// Usage: go run scripts/derive_seed.go <phrasefile> [passphrase]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/wallet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_seed <phrasefile> [passphrase]")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var passphrase string
	if len(os.Args) > 2 {
		passphrase = os.Args[2]
	}
	phrase := strings.TrimSpace(string(data))
	seed, err := wallet.SeedFromMnemonic(phrase, passphrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := master.PrivateKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("seed=%s\n", hex.EncodeToString(seed))
	fmt.Printf("xprv=%s\n", master.String())
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(key.PublicKey()))
}
