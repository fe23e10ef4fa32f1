// fingerprint re-derives the master key fingerprint and xpub from a BIP39
// mnemonic so a transcribed backup can be checked offline.
//
// Usage:
//
//	go run ./scripts/fingerprint "your 24 word seed phrase here"
//
// Or with stdin:
//
//	go run ./scripts/fingerprint < output/seed_words_for_coldcard.txt
//
// The BIP39 passphrase is always empty, matching what keygen generates.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/complex-gh/keygen"
)

func main() {
	var mnemonic string

	if len(os.Args) > 1 {
		mnemonic = strings.Join(os.Args[1:], " ")
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mnemonic = strings.Join(strings.Fields(string(b)), " ")
	}

	if mnemonic == "" {
		fmt.Fprintln(os.Stderr, "Usage: fingerprint \"24 word seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: fingerprint < seed_words_for_coldcard.txt")
		os.Exit(1)
	}

	fp, xpub, err := derive(mnemonic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (master fingerprint)\n", fp)
	fmt.Printf("%s (master xpub at m)\n", xpub)
}

func derive(phrase string) (fingerprint, xpub string, err error) {
	m, err := keygen.ParseMnemonic(phrase)
	if err != nil {
		return "", "", err
	}
	master, err := keygen.DeriveMasterKey(m.Seed(""), nil)
	if err != nil {
		return "", "", err
	}
	fingerprint, err = master.Fingerprint()
	if err != nil {
		return "", "", err
	}
	xpub, err = master.PublicString()
	if err != nil {
		return "", "", err
	}
	return fingerprint, xpub, nil
}
