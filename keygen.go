// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package keygen generates a BIP39 seed phrase and BIP32 master key on an
// air-gapped machine and renders the backup documents used to engrave a metal
// plate and to import the phrase into a hardware wallet.
//
// Entropy, mnemonic encoding, seed stretching and HD key derivation are all
// done by audited libraries (go-bip39, btcutil/hdkeychain). This package only
// wires them together, cross-checks their outputs and formats the results.
package keygen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// EntropyBits is the entropy size of a generated mnemonic.
	EntropyBits = 256

	// EntropySize is EntropyBits in bytes.
	EntropySize = EntropyBits / 8

	// WordCount is the number of words in a generated mnemonic.
	WordCount = 24

	// SeedSize is the length of a BIP39 seed in bytes (512 bits).
	SeedSize = 64
)

// NewEntropy returns EntropySize bytes of secure randomness. When r is nil the
// bytes come from go-bip39, which reads the operating system CSPRNG. A non-nil
// r is read in full; a short read is an error.
func NewEntropy(r io.Reader) ([]byte, error) {
	if r == nil {
		entropy, err := bip39.NewEntropy(EntropyBits)
		if err != nil {
			return nil, stageErr(StageEntropy, fmt.Errorf("could not generate entropy: %w", err))
		}
		return entropy, nil
	}

	entropy := make([]byte, EntropySize)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, stageErr(StageEntropy, fmt.Errorf("could not read entropy: %w", err))
	}
	return entropy, nil
}

// Mnemonic is a checksummed BIP39 word sequence.
type Mnemonic struct {
	phrase string
	words  []string
}

// NewMnemonic encodes entropy as a BIP39 mnemonic. 32 bytes of entropy give
// 24 words.
func NewMnemonic(entropy []byte) (*Mnemonic, error) {
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, stageErr(StageEncoding, fmt.Errorf("could not create a mnemonic set of words: %w", err))
	}
	return &Mnemonic{phrase: phrase, words: strings.Fields(phrase)}, nil
}

// ParseMnemonic validates a phrase (word count, word list membership and
// checksum) and returns it as a Mnemonic. Surrounding and repeated whitespace
// is ignored.
func ParseMnemonic(phrase string) (*Mnemonic, error) {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil, stageErr(StageEncoding, fmt.Errorf("mnemonic required"))
	}
	normalized := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(normalized) {
		return nil, stageErr(StageEncoding, fmt.Errorf("invalid mnemonic phrase"))
	}
	return &Mnemonic{phrase: normalized, words: words}, nil
}

// Words returns a copy of the words in order.
func (m *Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// String returns the space separated phrase.
func (m *Mnemonic) String() string {
	return m.phrase
}

// Entropy decodes the mnemonic back to the entropy it was created from.
func (m *Mnemonic) Entropy() ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(m.phrase)
	if err != nil {
		return nil, stageErr(StageEncoding, fmt.Errorf("could not decode mnemonic: %w", err))
	}
	return entropy, nil
}

// Seed stretches the mnemonic and passphrase into a 64-byte seed using
// PBKDF2-SHA512 as specified in BIP39. An empty passphrase is valid.
func (m *Mnemonic) Seed(passphrase string) []byte {
	return bip39.NewSeed(m.phrase, passphrase)
}

// verifyRoundTrip checks that m decodes back to entropy.
func verifyRoundTrip(m *Mnemonic, entropy []byte) error {
	decoded, err := m.Entropy()
	if err != nil {
		return err
	}
	defer wipe(decoded)
	if !bytes.Equal(decoded, entropy) {
		return stageErr(StageEncoding, fmt.Errorf("mnemonic does not decode to its entropy"))
	}
	return nil
}

// wipe zeroes b in place.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
